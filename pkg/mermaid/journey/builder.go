package journey

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates a journey section by section. Tasks attach to the most
// recently opened section; a task added before any section opens an implicit
// "Default" section.
type Builder struct {
	diagram Diagram
	open    *Section
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Title(title string) *Builder {
	b.diagram.DiagramTitle = title
	return b
}

// Section flushes the previously open section and starts a new one.
func (b *Builder) Section(name string) *Builder {
	b.flush()
	b.open = &Section{Name: name}
	return b
}

// Task appends a task to the open section, clamping the score into [0, 5].
func (b *Builder) Task(name string, score int, actors ...string) *Builder {
	if b.open == nil {
		b.open = &Section{Name: "Default"}
	}
	b.open.Tasks = append(b.open.Tasks, NewTask(name, score, actors...))
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

// Build flushes the open section and returns the finished diagram.
func (b *Builder) Build() *Diagram {
	b.flush()
	d := b.diagram
	d.Sections = append([]Section(nil), b.diagram.Sections...)
	return &d
}

func (b *Builder) flush() {
	if b.open != nil {
		b.diagram.Sections = append(b.diagram.Sections, *b.open)
		b.open = nil
	}
}
