package flowchart

import "github.com/toozej/mermaidgen/pkg/mermaid"

// FromJSON builds a diagram from a JSON document.
func FromJSON(data []byte) (*Diagram, error) {
	var d Diagram
	if err := mermaid.DecodeJSON(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FromYAML builds a diagram from a YAML document.
func FromYAML(data []byte) (*Diagram, error) {
	var d Diagram
	if err := mermaid.DecodeYAML(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FromTOML builds a diagram from a TOML document.
func FromTOML(data []byte) (*Diagram, error) {
	var d Diagram
	if err := mermaid.DecodeTOML(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FromRawMermaid wraps literal flowchart text without interpreting it.
func FromRawMermaid(text string) mermaid.Diagram {
	return mermaid.NewRaw("flowchart", text)
}
