package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid/journey"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Generate a user journey diagram",
	Args:  cobra.NoArgs,
	RunE:  runJourney,
}

func runJourney(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(journey.FromRawMermaid(text))
	}

	diagram, err := buildJourney(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildJourney(cmd *cobra.Command) (*journey.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeJourney(data, format)
	}

	builder := journey.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}

	// Each --section opens a new section; tasks land in the one most
	// recently opened. Tasks before any section go into a default one.
	sections, _ := cmd.Flags().GetStringArray("section")
	if len(sections) > 0 {
		builder.Section(sections[0])
	}

	tasks, _ := cmd.Flags().GetStringArray("task")
	for _, spec := range tasks {
		task, err := specparse.JourneyTask(spec)
		if err != nil {
			return nil, err
		}
		builder.Task(task.Name, task.Score, task.Actors...)
	}

	if len(sections) > 1 {
		for _, name := range sections[1:] {
			builder.Section(name)
		}
	}

	return builder.Build(), nil
}

func decodeJourney(data []byte, format string) (*journey.Diagram, error) {
	switch format {
	case "json":
		return journey.FromJSON(data)
	case "toml":
		return journey.FromTOML(data)
	default:
		return journey.FromYAML(data)
	}
}

func init() {
	addInputFlags(journeyCmd)
	journeyCmd.Flags().String("title", "", "Diagram title")
	journeyCmd.Flags().StringArray("section", nil, "Start a new section")
	journeyCmd.Flags().StringArray("task", nil, `Add task: "name:score" or "name:score:actor1,actor2"`)
}
