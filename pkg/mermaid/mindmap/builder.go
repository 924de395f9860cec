package mindmap

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder assembles a mindmap around its root node. Children attach to the
// root; deeper trees are composed with NewNode and ChildNode.
type Builder struct {
	diagram Diagram
}

func NewBuilder(rootText string) *Builder {
	return &Builder{diagram: Diagram{Root: Node{Text: rootText}}}
}

func (b *Builder) Title(title string) *Builder {
	b.diagram.DiagramTitle = title
	return b
}

func (b *Builder) RootShape(shape Shape) *Builder {
	b.diagram.Root.Shape = shape
	return b
}

func (b *Builder) RootIcon(icon string) *Builder {
	b.diagram.Root.Icon = icon
	return b
}

// Child appends a plain child node to the root.
func (b *Builder) Child(text string) *Builder {
	b.diagram.Root.Children = append(b.diagram.Root.Children, Node{Text: text})
	return b
}

// ChildWithShape appends a shaped child node to the root.
func (b *Builder) ChildWithShape(text string, shape Shape) *Builder {
	b.diagram.Root.Children = append(b.diagram.Root.Children, Node{Text: text, Shape: shape})
	return b
}

// ChildNode appends a prebuilt subtree to the root.
func (b *Builder) ChildNode(node Node) *Builder {
	b.diagram.Root.Children = append(b.diagram.Root.Children, node)
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.Root.Children = append([]Node(nil), b.diagram.Root.Children...)
	return &d
}
