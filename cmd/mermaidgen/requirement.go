package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toozej/mermaidgen/internal/specparse"
	"github.com/toozej/mermaidgen/pkg/mermaid/requirement"
)

var requirementCmd = &cobra.Command{
	Use:   "requirement",
	Short: "Generate a requirement diagram",
	Args:  cobra.NoArgs,
	RunE:  runRequirement,
}

func runRequirement(cmd *cobra.Command, args []string) error {
	if text, ok := rawMermaid(cmd); ok {
		return emit(requirement.FromRawMermaid(text))
	}

	diagram, err := buildRequirement(cmd)
	if err != nil {
		return err
	}
	if diagram.Theme == nil {
		diagram.Theme = themeConfig()
	}
	return emit(diagram)
}

func buildRequirement(cmd *cobra.Command) (*requirement.Diagram, error) {
	if data, format, ok, err := readSpec(cmd); ok {
		if err != nil {
			return nil, err
		}
		return decodeRequirement(data, format)
	}

	builder := requirement.NewBuilder()
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		builder.Title(title)
	}

	requirements, _ := cmd.Flags().GetStringArray("requirement")
	for _, spec := range requirements {
		req, err := specparse.Requirement(spec)
		if err != nil {
			return nil, err
		}
		builder.Requirement(req)
	}

	elements, _ := cmd.Flags().GetStringArray("element")
	for _, spec := range elements {
		elem, err := specparse.Element(spec)
		if err != nil {
			return nil, err
		}
		builder.Element(elem)
	}

	relationships, _ := cmd.Flags().GetStringArray("relationship")
	for _, spec := range relationships {
		rel, err := specparse.ReqRelationship(spec)
		if err != nil {
			return nil, err
		}
		builder.Relationship(rel.From, rel.To, rel.Type)
	}

	return builder.Build(), nil
}

func decodeRequirement(data []byte, format string) (*requirement.Diagram, error) {
	switch format {
	case "json":
		return requirement.FromJSON(data)
	case "toml":
		return requirement.FromTOML(data)
	default:
		return requirement.FromYAML(data)
	}
}

func init() {
	addInputFlags(requirementCmd)
	requirementCmd.Flags().String("title", "", "Diagram title")
	requirementCmd.Flags().StringArray("requirement", nil, `Add requirement: "id:name" or "id:name:text:risk:verify"`)
	requirementCmd.Flags().StringArray("element", nil, `Add element: "id:name"`)
	requirementCmd.Flags().StringArray("relationship", nil, `Add relationship: "from->to[:type]"`)
}
