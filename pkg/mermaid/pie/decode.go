package pie

import "github.com/toozej/mermaidgen/pkg/mermaid"

// FromJSON builds a chart from a JSON document.
func FromJSON(data []byte) (*Chart, error) {
	var chart Chart
	if err := mermaid.DecodeJSON(data, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// FromYAML builds a chart from a YAML document.
func FromYAML(data []byte) (*Chart, error) {
	var chart Chart
	if err := mermaid.DecodeYAML(data, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// FromTOML builds a chart from a TOML document.
func FromTOML(data []byte) (*Chart, error) {
	var chart Chart
	if err := mermaid.DecodeTOML(data, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// FromRawMermaid wraps literal pie chart text without interpreting it.
func FromRawMermaid(text string) mermaid.Diagram {
	return mermaid.NewRaw("pie", text)
}
