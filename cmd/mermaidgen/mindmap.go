package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/mindmap"
)

var mindmapCmd = &cobra.Command{
	Use:   "mindmap",
	Short: "Generate a mindmap diagram",
	Args:  cobra.NoArgs,
	RunE:  runMindmap,
}

func runMindmap(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(mindmap.FromRawMermaid(text))
	}

	diagram, err := buildMindmap(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildMindmap(cmd *cobra.Command) (*mindmap.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeMindmap(data, format)
	}

	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = "Root"
	}
	builder := mindmap.NewBuilder(root)

	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}
	if shapeFlag, _ := cmd.Flags().GetString("shape"); shapeFlag != "" {
		shape, err := mindmap.ParseShape(shapeFlag)
		if err != nil {
			return nil, mermaid.Wrap(mermaid.KindParse, err, "parsing --shape")
		}
		builder.RootShape(shape)
	}

	children, _ := cmd.Flags().GetStringArray("child")
	for _, text := range children {
		builder.Child(text)
	}

	diagram := builder.Build()

	// --node attaches under a named parent anywhere in the tree.
	nodes, _ := cmd.Flags().GetStringArray("node")
	for _, spec := range nodes {
		parent, node, err := specparse.MindmapNode(spec)
		if err != nil {
			return nil, err
		}
		if !attachMindmapNode(&diagram.Root, parent, node) {
			return nil, mermaid.Errorf(mermaid.KindInvalidSpec,
				"no node %q to attach %q under", parent, node.Text)
		}
	}

	return diagram, nil
}

// attachMindmapNode walks the tree depth-first and appends the node
// under the first match for the parent text.
func attachMindmapNode(current *mindmap.Node, parent string, node mindmap.Node) bool {
	if current.Text == parent {
		current.Children = append(current.Children, node)
		return true
	}
	for i := range current.Children {
		if attachMindmapNode(&current.Children[i], parent, node) {
			return true
		}
	}
	return false
}

func decodeMindmap(data []byte, format string) (*mindmap.Diagram, error) {
	switch format {
	case "json":
		return mindmap.FromJSON(data)
	case "toml":
		return mindmap.FromTOML(data)
	default:
		return mindmap.FromYAML(data)
	}
}

func init() {
	addInputFlags(mindmapCmd)
	mindmapCmd.Flags().String("title", "", "Diagram title")
	mindmapCmd.Flags().String("root", "", "Root node text")
	mindmapCmd.Flags().String("shape", "", "Root node shape (default, square, rounded, circle, bang, cloud, hexagon)")
	mindmapCmd.Flags().StringArray("child", nil, "Add child node under the root")
	mindmapCmd.Flags().StringArray("node", nil, `Add node under a parent: "parent:text[:shape]"`)
}
