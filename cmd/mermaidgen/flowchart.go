package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/flowchart"
)

var flowchartCmd = &cobra.Command{
	Use:   "flowchart",
	Short: "Generate a flowchart diagram",
	Args:  cobra.NoArgs,
	RunE:  runFlowchart,
}

func runFlowchart(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(flowchart.FromRawMermaid(text))
	}

	diagram, err := buildFlowchart(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildFlowchart(cmd *cobra.Command) (*flowchart.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeFlowchart(data, format)
	}

	builder := flowchart.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}
	if dirFlag, _ := cmd.Flags().GetString("direction"); dirFlag != "" {
		dir, err := mermaid.ParseDirection(dirFlag)
		if err != nil {
			return nil, mermaid.Wrap(mermaid.KindParse, err, "parsing --direction")
		}
		builder.Direction(dir)
	}

	nodes, _ := cmd.Flags().GetStringArray("node")
	for _, spec := range nodes {
		node, err := specparse.FlowchartNode(spec)
		if err != nil {
			return nil, err
		}
		builder.Node(node)
	}

	links, _ := cmd.Flags().GetStringArray("link")
	for _, spec := range links {
		link, err := specparse.FlowchartLink(spec)
		if err != nil {
			return nil, err
		}
		builder.Link(link)
	}

	subgraphs, _ := cmd.Flags().GetStringArray("subgraph")
	for _, spec := range subgraphs {
		sg, err := specparse.FlowchartSubgraph(spec)
		if err != nil {
			return nil, err
		}
		builder.Subgraph(sg)
	}

	return builder.Build(), nil
}

func decodeFlowchart(data []byte, format string) (*flowchart.Diagram, error) {
	switch format {
	case "json":
		return flowchart.FromJSON(data)
	case "toml":
		return flowchart.FromTOML(data)
	default:
		return flowchart.FromYAML(data)
	}
}

func init() {
	addInputFlags(flowchartCmd)
	flowchartCmd.Flags().String("title", "", "Diagram title")
	flowchartCmd.Flags().String("direction", "TB", "Flow direction (TB, BT, LR, RL)")
	flowchartCmd.Flags().StringArrayP("node", "n", nil, `Add node: "id[:label[:shape]]"`)
	flowchartCmd.Flags().StringArrayP("link", "l", nil, `Add link: "from->to[:style[:label]]"`)
	flowchartCmd.Flags().StringArray("subgraph", nil, `Add subgraph: "id[:title[:node1,node2,...]]"`)
}
