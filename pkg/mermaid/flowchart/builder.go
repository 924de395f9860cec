package flowchart

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates a flowchart in call order.
type Builder struct {
	diagram Diagram
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Title(title string) *Builder {
	b.diagram.DiagramTitle = title
	return b
}

func (b *Builder) Direction(dir mermaid.Direction) *Builder {
	b.diagram.Direction = dir
	return b
}

func (b *Builder) Node(node Node) *Builder {
	b.diagram.Nodes = append(b.diagram.Nodes, node)
	return b
}

// NodeSimple appends a rectangle node.
func (b *Builder) NodeSimple(id, label string) *Builder {
	return b.Node(Node{ID: id, Label: label})
}

func (b *Builder) NodeWithShape(id, label string, shape Shape) *Builder {
	return b.Node(Node{ID: id, Label: label, Shape: shape})
}

func (b *Builder) Link(link Link) *Builder {
	b.diagram.Links = append(b.diagram.Links, link)
	return b
}

// LinkSimple appends a default arrow link.
func (b *Builder) LinkSimple(from, to string) *Builder {
	return b.Link(Link{From: from, To: to})
}

func (b *Builder) LinkWithLabel(from, to, label string) *Builder {
	return b.Link(Link{From: from, To: to, Label: label})
}

func (b *Builder) LinkWithStyle(from, to string, style LinkStyle) *Builder {
	return b.Link(Link{From: from, To: to, Style: style})
}

func (b *Builder) Subgraph(sg Subgraph) *Builder {
	b.diagram.Subgraphs = append(b.diagram.Subgraphs, sg)
	return b
}

func (b *Builder) Style(target string, style mermaid.Style) *Builder {
	b.diagram.Styles = append(b.diagram.Styles, NodeStyle{Target: target, Style: style})
	return b
}

func (b *Builder) ClassDef(name string, style mermaid.Style) *Builder {
	b.diagram.ClassDefs = append(b.diagram.ClassDefs, ClassDef{Name: name, Style: style})
	return b
}

func (b *Builder) ClassAssignment(class string, nodes ...string) *Builder {
	b.diagram.Classes = append(b.diagram.Classes, ClassAssignment{Class: class, Nodes: nodes})
	return b
}

func (b *Builder) LinkStyle(index int, style mermaid.Style) *Builder {
	b.diagram.LinkStyles = append(b.diagram.LinkStyles, LinkStyleDef{Index: index, Style: style})
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.Nodes = append([]Node(nil), b.diagram.Nodes...)
	d.Links = append([]Link(nil), b.diagram.Links...)
	d.Subgraphs = append([]Subgraph(nil), b.diagram.Subgraphs...)
	d.Styles = append([]NodeStyle(nil), b.diagram.Styles...)
	d.ClassDefs = append([]ClassDef(nil), b.diagram.ClassDefs...)
	d.Classes = append([]ClassAssignment(nil), b.diagram.Classes...)
	d.LinkStyles = append([]LinkStyleDef(nil), b.diagram.LinkStyles...)
	return &d
}
