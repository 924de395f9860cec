package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid/pie"
)

var pieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Generate a pie chart",
	Args:  cobra.NoArgs,
	RunE:  runPie,
}

func runPie(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(pie.FromRawMermaid(text))
	}

	chart, err := buildPie(cmd)
	if err != nil {
		return err
	}
	if chart.Theme == nil {
		chart.Theme = themeConfig()
	}
	return emit(chart)
}

func buildPie(cmd *cobra.Command) (*pie.Chart, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodePie(data, format)
	}

	builder := pie.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}
	if showData, _ := cmd.Flags().GetBool("show-data"); showData {
		builder.ShowData(true)
	}

	slices, _ := cmd.Flags().GetStringArray("data")
	for _, spec := range slices {
		slice, err := specparse.PieSlice(spec)
		if err != nil {
			return nil, err
		}
		builder.Data(slice.Label, slice.Value)
	}

	return builder.Build(), nil
}

func decodePie(data []byte, format string) (*pie.Chart, error) {
	switch format {
	case "json":
		return pie.FromJSON(data)
	case "toml":
		return pie.FromTOML(data)
	default:
		return pie.FromYAML(data)
	}
}

func init() {
	addInputFlags(pieCmd)
	pieCmd.Flags().String("title", "", "Chart title")
	pieCmd.Flags().Bool("show-data", false, "Show values next to the legend")
	pieCmd.Flags().StringArray("data", nil, `Add slice: "label:value"`)
}
