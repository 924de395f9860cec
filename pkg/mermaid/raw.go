package mermaid

// Raw is a passthrough diagram: user-supplied Mermaid text kept verbatim.
// The diagram packages return it from their FromRawMermaid constructors so
// hand-written scripts flow through the same rendering and output paths as
// generated ones.
type Raw struct {
	Kind string
	Text string
}

// NewRaw wraps literal Mermaid text under the given diagram type.
func NewRaw(kind, text string) *Raw {
	return &Raw{Kind: kind, Text: text}
}

func (r *Raw) ToMermaid() string   { return r.Text }
func (r *Raw) DiagramType() string { return r.Kind }
func (r *Raw) Title() string       { return "" }
func (r *Raw) Config() *Config     { return nil }
