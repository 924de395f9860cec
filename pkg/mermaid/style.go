package mermaid

import "strings"

// Style is a sparse set of CSS-like attributes applied to flowchart nodes,
// links and class definitions. Absent fields are omitted from the rendered
// output.
type Style struct {
	Fill            string `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty"`
	Color           string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Stroke          string `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth     string `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty" toml:"stroke_width,omitempty"`
	StrokeDasharray string `json:"stroke_dasharray,omitempty" yaml:"stroke_dasharray,omitempty" toml:"stroke_dasharray,omitempty"`
}

// ToCSS renders the style as a comma-joined key:value list in a fixed field
// order, e.g. "fill:#f9f,stroke:#333".
func (s Style) ToCSS() string {
	var parts []string
	if s.Fill != "" {
		parts = append(parts, "fill:"+s.Fill)
	}
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color)
	}
	if s.Stroke != "" {
		parts = append(parts, "stroke:"+s.Stroke)
	}
	if s.StrokeWidth != "" {
		parts = append(parts, "stroke-width:"+s.StrokeWidth)
	}
	if s.StrokeDasharray != "" {
		parts = append(parts, "stroke-dasharray:"+s.StrokeDasharray)
	}
	return strings.Join(parts, ",")
}

// IsEmpty reports whether every attribute is absent.
func (s Style) IsEmpty() bool {
	return s == Style{}
}
