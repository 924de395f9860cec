package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid/er"
)

var erCmd = &cobra.Command{
	Use:   "er",
	Short: "Generate an entity-relationship diagram",
	Args:  cobra.NoArgs,
	RunE:  runER,
}

func runER(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(er.FromRawMermaid(text))
	}

	diagram, err := buildERDiagram(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildERDiagram(cmd *cobra.Command) (*er.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeER(data, format)
	}

	builder := er.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}

	entities, _ := cmd.Flags().GetStringArray("entity")
	for _, spec := range entities {
		entity, err := specparse.Entity(spec)
		if err != nil {
			return nil, err
		}
		builder.Entity(entity.Name, entity.Attributes...)
	}

	relationships, _ := cmd.Flags().GetStringArray("relationship")
	for _, spec := range relationships {
		rel, err := specparse.ERRelationship(spec)
		if err != nil {
			return nil, err
		}
		builder.Relationship(rel)
	}

	return builder.Build(), nil
}

func decodeER(data []byte, format string) (*er.Diagram, error) {
	switch format {
	case "json":
		return er.FromJSON(data)
	case "toml":
		return er.FromTOML(data)
	default:
		return er.FromYAML(data)
	}
}

func init() {
	addInputFlags(erCmd)
	erCmd.Flags().String("title", "", "Diagram title")
	erCmd.Flags().StringArray("entity", nil, `Add entity: "name" or "name:attr:type[:KEY],..."`)
	erCmd.Flags().StringArray("relationship", nil, `Add relationship: "from->to[:type[:label]]"`)
}
