// Package flowchart models Mermaid flowcharts.
//
// Node, link and subgraph identifiers are normalized on output (lowercase,
// unsafe characters replaced by underscores); labels and titles are emitted
// as written.
package flowchart

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Shape selects the outline drawn around a node label.
type Shape string

const (
	Rectangle        Shape = "rectangle"
	Rounded          Shape = "rounded"
	Stadium          Shape = "stadium"
	Subroutine       Shape = "subroutine"
	Cylinder         Shape = "cylinder"
	Circle           Shape = "circle"
	Asymmetric       Shape = "asymmetric"
	Rhombus          Shape = "rhombus"
	Hexagon          Shape = "hexagon"
	Parallelogram    Shape = "parallelogram"
	ParallelogramAlt Shape = "parallelogram-alt"
	Trapezoid        Shape = "trapezoid"
	TrapezoidAlt     Shape = "trapezoid-alt"
	DoubleCircle     Shape = "double-circle"
)

// Wrap surrounds a label with the shape's delimiters. Labels are always
// quoted so punctuation survives.
func (s Shape) Wrap(label string) string {
	switch s {
	case Rounded:
		return fmt.Sprintf("(%q)", label)
	case Stadium:
		return fmt.Sprintf("([%q])", label)
	case Subroutine:
		return fmt.Sprintf("[[%q]]", label)
	case Cylinder:
		return fmt.Sprintf("[(%q)]", label)
	case Circle:
		return fmt.Sprintf("((%q))", label)
	case Asymmetric:
		return fmt.Sprintf(">%q]", label)
	case Rhombus:
		return fmt.Sprintf("{%q}", label)
	case Hexagon:
		return fmt.Sprintf("{{%q}}", label)
	case Parallelogram:
		return fmt.Sprintf("[/%q/]", label)
	case ParallelogramAlt:
		return fmt.Sprintf(`[\%q\]`, label)
	case Trapezoid:
		return fmt.Sprintf(`[/%q\]`, label)
	case TrapezoidAlt:
		return fmt.Sprintf(`[\%q/]`, label)
	case DoubleCircle:
		return fmt.Sprintf("(((%q)))", label)
	default:
		return fmt.Sprintf("[%q]", label)
	}
}

// ParseShape accepts shape names and their common aliases.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(s) {
	case "", "rectangle", "rect":
		return Rectangle, nil
	case "rounded", "round":
		return Rounded, nil
	case "stadium":
		return Stadium, nil
	case "subroutine":
		return Subroutine, nil
	case "cylinder", "db", "database":
		return Cylinder, nil
	case "circle":
		return Circle, nil
	case "asymmetric", "flag":
		return Asymmetric, nil
	case "rhombus", "diamond", "decision":
		return Rhombus, nil
	case "hexagon", "hex":
		return Hexagon, nil
	case "parallelogram", "para":
		return Parallelogram, nil
	case "parallelogram-alt", "para-alt":
		return ParallelogramAlt, nil
	case "trapezoid", "trap":
		return Trapezoid, nil
	case "trapezoid-alt", "trap-alt":
		return TrapezoidAlt, nil
	case "double-circle", "doublecircle":
		return DoubleCircle, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid node shape %q", s)
}

// Node is one vertex. Class renders as a `:::class` suffix; Href adds a
// click line after the links.
type Node struct {
	ID    string         `json:"id" yaml:"id" toml:"id"`
	Label string         `json:"label" yaml:"label" toml:"label"`
	Shape Shape          `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Class string         `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Href  string         `json:"href,omitempty" yaml:"href,omitempty" toml:"href,omitempty"`
	Style *mermaid.Style `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

func (n Node) render() string {
	s := mermaid.NormalizeID(n.ID) + n.Shape.Wrap(n.Label)
	if n.Class != "" {
		s += ":::" + n.Class
	}
	return s
}

// LinkStyle selects the line drawn between two nodes.
type LinkStyle string

const (
	Arrow     LinkStyle = "arrow"
	Dotted    LinkStyle = "dotted"
	Thick     LinkStyle = "thick"
	Invisible LinkStyle = "invisible"
	Open      LinkStyle = "open"
)

// ParseLinkStyle accepts style names and their common aliases.
func ParseLinkStyle(s string) (LinkStyle, error) {
	switch strings.ToLower(s) {
	case "", "arrow", "solid":
		return Arrow, nil
	case "dotted", "dashed":
		return Dotted, nil
	case "thick", "bold":
		return Thick, nil
	case "invisible", "hidden":
		return Invisible, nil
	case "open", "line":
		return Open, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid link style %q", s)
}

// Head is an arrow terminator glyph.
type Head string

const (
	HeadArrow  Head = "arrow"
	HeadCircle Head = "circle"
	HeadCross  Head = "cross"
	HeadNone   Head = "none"
)

func (h Head) left() string {
	switch h {
	case HeadArrow:
		return "<"
	case HeadCircle:
		return "o"
	case HeadCross:
		return "x"
	}
	return ""
}

func (h Head) right() string {
	switch h {
	case HeadArrow:
		return ">"
	case HeadCircle:
		return "o"
	case HeadCross:
		return "x"
	}
	return ""
}

// Link is an edge between two nodes. The zero value of Head means an arrow
// terminator; the zero value of Tail means no terminator.
type Link struct {
	From  string    `json:"from" yaml:"from" toml:"from"`
	To    string    `json:"to" yaml:"to" toml:"to"`
	Style LinkStyle `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
	Label string    `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Head  Head      `json:"head,omitempty" yaml:"head,omitempty" toml:"head,omitempty"`
	Tail  Head      `json:"tail,omitempty" yaml:"tail,omitempty" toml:"tail,omitempty"`
}

// Arrow composes the tail glyph, line body and head glyph. Invisible links
// never carry terminators, and open links drop any glyph that would turn
// the plain line back into an arrow.
func (l Link) Arrow() string {
	head := l.Head
	if head == "" {
		head = HeadArrow
	}
	switch l.Style {
	case Dotted:
		return l.Tail.left() + "-.-" + head.right()
	case Thick:
		return l.Tail.left() + "==" + head.right()
	case Invisible:
		return "~~~"
	case Open:
		return "---"
	default:
		return l.Tail.left() + "--" + head.right()
	}
}

func (l Link) render() string {
	from := mermaid.NormalizeID(l.From)
	to := mermaid.NormalizeID(l.To)
	if l.Label != "" {
		return fmt.Sprintf("%s %s|%s| %s", from, l.Arrow(), l.Label, to)
	}
	return fmt.Sprintf("%s %s %s", from, l.Arrow(), to)
}

// Subgraph groups nodes by id, with optional nested subgraphs and an inner
// direction.
type Subgraph struct {
	ID        string             `json:"id" yaml:"id" toml:"id"`
	SubTitle  string             `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Nodes     []string           `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Direction *mermaid.Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Subgraphs []Subgraph         `json:"subgraphs,omitempty" yaml:"subgraphs,omitempty" toml:"subgraphs,omitempty"`
}

// claims collects the node ids owned by this subgraph and all nested ones.
func (s Subgraph) claims(into map[string]bool) {
	for _, id := range s.Nodes {
		into[id] = true
	}
	for _, nested := range s.Subgraphs {
		nested.claims(into)
	}
}

// NodeStyle applies inline CSS to one node via a style line.
type NodeStyle struct {
	Target string        `json:"target" yaml:"target" toml:"target"`
	Style  mermaid.Style `json:"style" yaml:"style" toml:"style"`
}

// ClassDef declares a named style class.
type ClassDef struct {
	Name  string        `json:"name" yaml:"name" toml:"name"`
	Style mermaid.Style `json:"style" yaml:"style" toml:"style"`
}

// ClassAssignment attaches a class to one or more nodes.
type ClassAssignment struct {
	Class string   `json:"class" yaml:"class" toml:"class"`
	Nodes []string `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// LinkStyleDef styles the link at a zero-based index.
type LinkStyleDef struct {
	Index int           `json:"index" yaml:"index" toml:"index"`
	Style mermaid.Style `json:"style" yaml:"style" toml:"style"`
}

// Diagram is a flowchart. Nodes claimed by a subgraph render inside their
// innermost claimant; everything else renders at the top level.
type Diagram struct {
	DiagramTitle string            `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Direction    mermaid.Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Nodes        []Node            `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Links        []Link            `json:"links,omitempty" yaml:"links,omitempty" toml:"links,omitempty"`
	Subgraphs    []Subgraph        `json:"subgraphs,omitempty" yaml:"subgraphs,omitempty" toml:"subgraphs,omitempty"`
	Styles       []NodeStyle       `json:"styles,omitempty" yaml:"styles,omitempty" toml:"styles,omitempty"`
	ClassDefs    []ClassDef        `json:"classDefs,omitempty" yaml:"classDefs,omitempty" toml:"classDefs,omitempty"`
	Classes      []ClassAssignment `json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
	LinkStyles   []LinkStyleDef    `json:"linkStyles,omitempty" yaml:"linkStyles,omitempty" toml:"linkStyles,omitempty"`
	Theme        *mermaid.Config   `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "flowchart" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s", d.Direction.String())

	claimed := map[string]bool{}
	for _, sg := range d.Subgraphs {
		sg.claims(claimed)
	}
	for _, n := range d.Nodes {
		if !claimed[n.ID] {
			fmt.Fprintf(&b, "\n    %s", n.render())
		}
	}
	for _, sg := range d.Subgraphs {
		d.renderSubgraph(&b, sg, 1)
	}
	for _, l := range d.Links {
		fmt.Fprintf(&b, "\n    %s", l.render())
	}
	for _, n := range d.Nodes {
		if n.Href != "" {
			fmt.Fprintf(&b, "\n    click %s %q", mermaid.NormalizeID(n.ID), n.Href)
		}
	}
	for _, ns := range d.Styles {
		if css := ns.Style.ToCSS(); css != "" {
			fmt.Fprintf(&b, "\n    style %s %s", mermaid.NormalizeID(ns.Target), css)
		}
	}
	for _, cd := range d.ClassDefs {
		fmt.Fprintf(&b, "\n    classDef %s %s", cd.Name, cd.Style.ToCSS())
	}
	for _, ca := range d.Classes {
		ids := make([]string, len(ca.Nodes))
		for i, id := range ca.Nodes {
			ids[i] = mermaid.NormalizeID(id)
		}
		fmt.Fprintf(&b, "\n    class %s %s", strings.Join(ids, ","), ca.Class)
	}
	for _, ls := range d.LinkStyles {
		fmt.Fprintf(&b, "\n    linkStyle %d %s", ls.Index, ls.Style.ToCSS())
	}
	return b.String()
}

func (d *Diagram) renderSubgraph(b *strings.Builder, sg Subgraph, depth int) {
	indent := strings.Repeat("    ", depth)
	title := sg.SubTitle
	if title == "" {
		title = sg.ID
	}
	fmt.Fprintf(b, "\n%ssubgraph %s [%q]", indent, mermaid.NormalizeID(sg.ID), title)
	if sg.Direction != nil {
		fmt.Fprintf(b, "\n%s    direction %s", indent, sg.Direction.String())
	}

	// A node listed here but also claimed by a nested subgraph renders only
	// in the innermost claimant.
	nested := map[string]bool{}
	for _, inner := range sg.Subgraphs {
		inner.claims(nested)
	}
	for _, n := range d.Nodes {
		if contains(sg.Nodes, n.ID) && !nested[n.ID] {
			fmt.Fprintf(b, "\n%s    %s", indent, n.render())
		}
	}
	for _, inner := range sg.Subgraphs {
		d.renderSubgraph(b, inner, depth+1)
	}
	fmt.Fprintf(b, "\n%send", indent)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
