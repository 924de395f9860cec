// Package mermaid provides the shared primitives for building Mermaid diagrams:
// the Diagram interface implemented by every diagram kind, theme/configuration
// types, CSS-like styles, flow directions, and identifier normalization.
//
// The concrete diagram models live in the subpackages (er, flowchart, journey,
// mindmap, pie, requirement, sequence, state); each exposes a fluent builder,
// JSON/YAML/TOML constructors, and a raw-Mermaid passthrough constructor.
package mermaid

// Diagram is the capability set shared by every diagram model.
// Producing Mermaid text is a pure transformation: a valid model always
// serializes, so none of these methods return an error.
type Diagram interface {
	// ToMermaid returns the diagram-type keyword line followed by the body.
	// If the model was built from raw Mermaid text, that text is returned
	// verbatim and all other fields are ignored.
	ToMermaid() string

	// DiagramType returns the Mermaid keyword for this diagram kind,
	// e.g. "flowchart" or "stateDiagram-v2".
	DiagramType() string

	// Title returns the optional diagram title, or "" when unset.
	Title() string

	// Config returns the optional theme configuration, or nil when unset.
	Config() *Config
}

// BuildScript assembles the complete Mermaid script for a diagram. When the
// diagram carries a Config, a one-line %%{init: ...}%% directive is prepended;
// otherwise the script is exactly the ToMermaid output.
func BuildScript(d Diagram) string {
	if cfg := d.Config(); cfg != nil {
		return cfg.InitDirective() + "\n" + d.ToMermaid()
	}
	return d.ToMermaid()
}
