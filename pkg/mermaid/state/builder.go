package state

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates a state diagram in call order.
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

func (b *Builder) State(id string) *Builder {
	b.diagram.States = append(b.diagram.States, State{ID: id})
	return b
}

func (b *Builder) StateWithDescription(id, description string) *Builder {
	b.diagram.States = append(b.diagram.States, State{ID: id, Description: description})
	return b
}

func (b *Builder) Transition(from, to string) *Builder {
	b.diagram.Transitions = append(b.diagram.Transitions, Transition{From: from, To: to})
	return b
}

func (b *Builder) TransitionWithLabel(from, to, label string) *Builder {
	b.diagram.Transitions = append(b.diagram.Transitions, Transition{From: from, To: to, Label: label})
	return b
}

// Start adds a transition from the initial pseudostate.
func (b *Builder) Start(to string) *Builder {
	b.diagram.Transitions = append(b.diagram.Transitions, FromStart(to))
	return b
}

// End adds a transition into the final pseudostate.
func (b *Builder) End(from string) *Builder {
	b.diagram.Transitions = append(b.diagram.Transitions, ToEnd(from))
	return b
}

func (b *Builder) Choice(choice Choice) *Builder {
	b.diagram.Choices = append(b.diagram.Choices, choice)
	return b
}

func (b *Builder) Fork(fork Fork) *Builder {
	b.diagram.Forks = append(b.diagram.Forks, fork)
	return b
}

func (b *Builder) Join(join Join) *Builder {
	b.diagram.Joins = append(b.diagram.Joins, join)
	return b
}

func (b *Builder) Composite(composite Composite) *Builder {
	b.diagram.Composites = append(b.diagram.Composites, composite)
	return b
}

func (b *Builder) Concurrent(concurrent Concurrent) *Builder {
	b.diagram.Concurrents = append(b.diagram.Concurrents, concurrent)
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.States = append([]State(nil), b.diagram.States...)
	d.Composites = append([]Composite(nil), b.diagram.Composites...)
	d.Concurrents = append([]Concurrent(nil), b.diagram.Concurrents...)
	d.Choices = append([]Choice(nil), b.diagram.Choices...)
	d.Forks = append([]Fork(nil), b.diagram.Forks...)
	d.Joins = append([]Join(nil), b.diagram.Joins...)
	d.Transitions = append([]Transition(nil), b.diagram.Transitions...)
	return &d
}
