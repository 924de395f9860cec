package sequence

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates a sequence diagram in call order.
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

func (b *Builder) Autonumber(enabled bool) *Builder {
	b.diagram.Autonumber = enabled
	return b
}

func (b *Builder) Actor(id string) *Builder {
	b.diagram.Participants = append(b.diagram.Participants, Participant{ID: id, Type: TypeActor})
	return b
}

func (b *Builder) ActorWithLabel(id, label string) *Builder {
	b.diagram.Participants = append(b.diagram.Participants, Participant{ID: id, Label: label, Type: TypeActor})
	return b
}

func (b *Builder) Participant(id string) *Builder {
	b.diagram.Participants = append(b.diagram.Participants, Participant{ID: id, Type: TypeParticipant})
	return b
}

func (b *Builder) ParticipantWithLabel(id, label string) *Builder {
	b.diagram.Participants = append(b.diagram.Participants, Participant{ID: id, Label: label, Type: TypeParticipant})
	return b
}

func (b *Builder) Box(box Box) *Builder {
	b.diagram.Boxes = append(b.diagram.Boxes, box)
	return b
}

func (b *Builder) Message(msg Message) *Builder {
	b.diagram.Messages = append(b.diagram.Messages, msg)
	return b
}

// Say appends a default-arrow message with text.
func (b *Builder) Say(from, to, text string) *Builder {
	return b.Message(Message{From: from, To: to, Text: text})
}

func (b *Builder) Note(note Note) *Builder {
	b.diagram.Notes = append(b.diagram.Notes, note)
	return b
}

func (b *Builder) NoteOver(participant, text string) *Builder {
	return b.Note(Note{Position: NoteOver, Over: []string{participant}, Text: text})
}

func (b *Builder) NoteLeft(participant, text string) *Builder {
	return b.Note(Note{Position: NoteLeft, Over: []string{participant}, Text: text})
}

func (b *Builder) NoteRight(participant, text string) *Builder {
	return b.Note(Note{Position: NoteRight, Over: []string{participant}, Text: text})
}

func (b *Builder) Logic(block Logic) *Builder {
	b.diagram.Logic = append(b.diagram.Logic, block)
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.diagram.Theme = cfg
	return b
}

func (b *Builder) Build() *Diagram {
	d := b.diagram
	d.Participants = append([]Participant(nil), b.diagram.Participants...)
	d.Boxes = append([]Box(nil), b.diagram.Boxes...)
	d.Messages = append([]Message(nil), b.diagram.Messages...)
	d.Notes = append([]Note(nil), b.diagram.Notes...)
	d.Logic = append([]Logic(nil), b.diagram.Logic...)
	return &d
}
