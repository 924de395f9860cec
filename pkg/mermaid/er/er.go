// Package er models Mermaid entity-relationship diagrams.
package er

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Cardinality is one end of a relationship. Each value renders a different
// glyph depending on which side of the relationship line it sits.
type Cardinality string

const (
	ExactlyOne Cardinality = "exactly-one"
	ZeroOrOne  Cardinality = "zero-or-one"
	ZeroOrMore Cardinality = "zero-or-more"
	OneOrMore  Cardinality = "one-or-more"
)

// LeftGlyph renders the cardinality as it appears left of the line.
func (c Cardinality) LeftGlyph() string {
	switch c {
	case ZeroOrOne:
		return "|o"
	case ZeroOrMore:
		return "}o"
	case OneOrMore:
		return "}|"
	default:
		return "||"
	}
}

// RightGlyph renders the mirrored glyph for the right of the line.
func (c Cardinality) RightGlyph() string {
	switch c {
	case ZeroOrOne:
		return "o|"
	case ZeroOrMore:
		return "o{"
	case OneOrMore:
		return "|{"
	default:
		return "||"
	}
}

// ParseCardinality accepts either the symbolic names or the common shorthand
// used on the command line.
func ParseCardinality(s string) (Cardinality, error) {
	switch strings.ToLower(s) {
	case "exactly-one", "one", "1":
		return ExactlyOne, nil
	case "zero-or-one", "0..1":
		return ZeroOrOne, nil
	case "zero-or-more", "many", "0..*":
		return ZeroOrMore, nil
	case "one-or-more", "1..*":
		return OneOrMore, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid cardinality %q", s)
}

// KeyType marks an attribute as a primary, foreign or unique key.
type KeyType string

const (
	PrimaryKey KeyType = "PK"
	ForeignKey KeyType = "FK"
	UniqueKey  KeyType = "UK"
)

// Attribute is one typed field of an entity.
type Attribute struct {
	Type    string  `json:"type" yaml:"type" toml:"type"`
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Key     KeyType `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Comment string  `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
}

// Entity is a named box with zero or more attributes. Braces are always
// emitted, even for attribute-less entities.
type Entity struct {
	Name       string      `json:"name" yaml:"name" toml:"name"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
}

// Relationship is a line between two entities. Identifying relationships
// render a solid line, non-identifying a dotted one.
type Relationship struct {
	From        string      `json:"from" yaml:"from" toml:"from"`
	To          string      `json:"to" yaml:"to" toml:"to"`
	FromCard    Cardinality `json:"fromCardinality,omitempty" yaml:"fromCardinality,omitempty" toml:"fromCardinality,omitempty"`
	ToCard      Cardinality `json:"toCardinality,omitempty" yaml:"toCardinality,omitempty" toml:"toCardinality,omitempty"`
	Identifying bool        `json:"identifying,omitempty" yaml:"identifying,omitempty" toml:"identifying,omitempty"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}

// Diagram is an entity-relationship diagram. Entity and relationship names
// are emitted as written; the ER grammar treats them as display text.
type Diagram struct {
	DiagramTitle  string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Entities      []Entity        `json:"entities,omitempty" yaml:"entities,omitempty" toml:"entities,omitempty"`
	Relationships []Relationship  `json:"relationships,omitempty" yaml:"relationships,omitempty" toml:"relationships,omitempty"`
	Theme         *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "erDiagram" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("erDiagram")
	for _, e := range d.Entities {
		fmt.Fprintf(&b, "\n    %s{", e.Name)
		for _, a := range e.Attributes {
			b.WriteString("\n        ")
			b.WriteString(a.render())
		}
		b.WriteString("\n    }")
	}
	for _, r := range d.Relationships {
		b.WriteString("\n    ")
		b.WriteString(r.render())
	}
	return b.String()
}

func (a Attribute) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", a.Type, a.Name)
	if a.Key != "" {
		fmt.Fprintf(&b, " %s", a.Key)
	}
	if a.Comment != "" {
		fmt.Fprintf(&b, " %q", a.Comment)
	}
	return b.String()
}

func (r Relationship) render() string {
	line := ".."
	if r.Identifying {
		line = "--"
	}
	s := fmt.Sprintf("%s%s%s%s%s", r.From, r.FromCard.LeftGlyph(), line, r.ToCard.RightGlyph(), r.To)
	if r.Label != "" {
		s += fmt.Sprintf(" : %q", r.Label)
	}
	return s
}
