// Package mindmap models Mermaid mindmaps as a recursive node tree.
package mindmap

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Shape selects the decoration around a node's text.
type Shape string

const (
	ShapeDefault Shape = "default"
	ShapeSquare  Shape = "square"
	ShapeRounded Shape = "rounded"
	ShapeCircle  Shape = "circle"
	ShapeBang    Shape = "bang"
	ShapeCloud   Shape = "cloud"
	ShapeHexagon Shape = "hexagon"
)

// Wrap surrounds text with the shape's delimiters.
func (s Shape) Wrap(text string) string {
	switch s {
	case ShapeSquare:
		return "[" + text + "]"
	case ShapeRounded:
		return "(" + text + ")"
	case ShapeCircle:
		return "((" + text + "))"
	case ShapeBang:
		return "))" + text + "(("
	case ShapeCloud:
		return ")" + text + "("
	case ShapeHexagon:
		return "{{" + text + "}}"
	default:
		return text
	}
}

// ParseShape accepts the shape names and their common aliases.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(s) {
	case "", "default", "plain":
		return ShapeDefault, nil
	case "square", "rect":
		return ShapeSquare, nil
	case "rounded":
		return ShapeRounded, nil
	case "circle":
		return ShapeCircle, nil
	case "bang", "explosion":
		return ShapeBang, nil
	case "cloud":
		return ShapeCloud, nil
	case "hexagon":
		return ShapeHexagon, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid mindmap shape %q", s)
}

// Node is one entry in the tree. Icon and Class render as follow-up lines at
// the node's own indentation.
type Node struct {
	Text     string `json:"text" yaml:"text" toml:"text"`
	Shape    Shape  `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

func (n Node) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(b, "\n%s%s", indent, n.Shape.Wrap(n.Text))
	if n.Icon != "" {
		fmt.Fprintf(b, "\n%s::icon(%s)", indent, n.Icon)
	}
	if n.Class != "" {
		fmt.Fprintf(b, "\n%s::::%s", indent, n.Class)
	}
	for _, c := range n.Children {
		c.render(b, depth+1)
	}
}

// Diagram is a mindmap: a single root node whose subtree renders with
// indentation equal to depth.
type Diagram struct {
	DiagramTitle string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Root         Node            `json:"root" yaml:"root" toml:"root"`
	Theme        *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "mindmap" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("mindmap")
	d.Root.render(&b, 1)
	return b.String()
}
