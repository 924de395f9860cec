package er

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates entities and relationships in call order.
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

func (b *Builder) Entity(name string, attrs ...Attribute) *Builder {
	b.diagram.Entities = append(b.diagram.Entities, Entity{Name: name, Attributes: attrs})
	return b
}

func (b *Builder) Relationship(rel Relationship) *Builder {
	b.diagram.Relationships = append(b.diagram.Relationships, rel)
	return b
}

// OneToMany is the common case: identifying line, exactly-one on the owning
// side and zero-or-more on the other.
func (b *Builder) OneToMany(from, to, label string) *Builder {
	return b.Relationship(Relationship{
		From:        from,
		To:          to,
		FromCard:    ExactlyOne,
		ToCard:      ZeroOrMore,
		Identifying: true,
		Label:       label,
	})
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.Entities = append([]Entity(nil), b.diagram.Entities...)
	d.Relationships = append([]Relationship(nil), b.diagram.Relationships...)
	return &d
}
