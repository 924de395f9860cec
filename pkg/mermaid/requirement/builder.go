package requirement

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates requirement blocks, elements and relationships in call
// order.
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

func (b *Builder) Requirement(req Requirement) *Builder {
	b.diagram.Requirements = append(b.diagram.Requirements, req)
	return b
}

func (b *Builder) Element(elem Element) *Builder {
	b.diagram.Elements = append(b.diagram.Elements, elem)
	return b
}

func (b *Builder) Relationship(from, to string, relType RelationType) *Builder {
	b.diagram.Relationships = append(b.diagram.Relationships, Relationship{From: from, To: to, Type: relType})
	return b
}

// Satisfies records that an element satisfies a requirement.
func (b *Builder) Satisfies(element, req string) *Builder {
	return b.Relationship(element, req, Satisfies)
}

// Verifies records that an element verifies a requirement.
func (b *Builder) Verifies(element, req string) *Builder {
	return b.Relationship(element, req, Verifies)
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.Requirements = append([]Requirement(nil), b.diagram.Requirements...)
	d.Elements = append([]Element(nil), b.diagram.Elements...)
	d.Relationships = append([]Relationship(nil), b.diagram.Relationships...)
	return &d
}
