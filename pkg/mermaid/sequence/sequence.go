// Package sequence models Mermaid sequence diagrams.
package sequence

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// ParticipantType distinguishes actor stick figures from plain participant
// boxes. The zero value renders as actor.
type ParticipantType string

const (
	TypeActor       ParticipantType = "actor"
	TypeParticipant ParticipantType = "participant"
)

func (t ParticipantType) keyword() string {
	if t == TypeParticipant {
		return "participant"
	}
	return "actor"
}

// Participant is a lifeline. An optional label renders via the `as` alias.
type Participant struct {
	ID    string          `json:"id" yaml:"id" toml:"id"`
	Label string          `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Type  ParticipantType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

func (p Participant) render() string {
	if p.Label != "" {
		return fmt.Sprintf("%s %s as %s", p.Type.keyword(), p.ID, p.Label)
	}
	return fmt.Sprintf("%s %s", p.Type.keyword(), p.ID)
}

// Box groups participants visually. Members reference participant ids.
type Box struct {
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Color   string   `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Members []string `json:"members" yaml:"members" toml:"members"`
}

func (b Box) contains(id string) bool {
	for _, m := range b.Members {
		if m == id {
			return true
		}
	}
	return false
}

// MessageType selects the arrow between two lifelines. The zero value
// renders as the solid arrowhead `->>`.
type MessageType string

const (
	Solid       MessageType = "solid"
	Dotted      MessageType = "dotted"
	SolidArrow  MessageType = "solid-arrow"
	DottedArrow MessageType = "dotted-arrow"
	SolidCross  MessageType = "solid-cross"
	DottedCross MessageType = "dotted-cross"
	SolidOpen   MessageType = "solid-open"
	DottedOpen  MessageType = "dotted-open"
)

// Arrow returns the Mermaid glyph for the message type.
func (t MessageType) Arrow() string {
	switch t {
	case Solid:
		return "->"
	case Dotted:
		return "-->"
	case DottedArrow:
		return "-->>"
	case SolidCross:
		return "-x"
	case DottedCross:
		return "--x"
	case SolidOpen:
		return "-)"
	case DottedOpen:
		return "--)"
	default:
		return "->>"
	}
}

// ParseMessageType accepts type names case-insensitively, with the sync and
// async aliases.
func ParseMessageType(s string) (MessageType, error) {
	switch strings.ToLower(s) {
	case "solid", "sync":
		return Solid, nil
	case "dotted", "reply":
		return Dotted, nil
	case "", "solid-arrow", "solidarrow", "async":
		return SolidArrow, nil
	case "dotted-arrow", "dottedarrow", "async-reply":
		return DottedArrow, nil
	case "solid-cross", "solidcross":
		return SolidCross, nil
	case "dotted-cross", "dottedcross":
		return DottedCross, nil
	case "solid-open", "solidopen":
		return SolidOpen, nil
	case "dotted-open", "dottedopen":
		return DottedOpen, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid message type %q", s)
}

// Message is one arrow between lifelines. Shorthand activation appends +/-
// to the arrow; otherwise activation renders as separate activate and
// deactivate lines around the message.
type Message struct {
	From       string      `json:"from" yaml:"from" toml:"from"`
	To         string      `json:"to" yaml:"to" toml:"to"`
	Type       MessageType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Text       string      `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Activate   bool        `json:"activate,omitempty" yaml:"activate,omitempty" toml:"activate,omitempty"`
	Deactivate bool        `json:"deactivate,omitempty" yaml:"deactivate,omitempty" toml:"deactivate,omitempty"`
	Shorthand  bool        `json:"shorthandActivation,omitempty" yaml:"shorthandActivation,omitempty" toml:"shorthandActivation,omitempty"`
}

// render may emit multiple lines; continuation lines carry one level of
// indentation so the first line alone needs a caller prefix.
func (m Message) render() string {
	arrow := m.Type.Arrow()
	if m.Shorthand {
		switch {
		case m.Activate && m.Deactivate:
			arrow += "+-"
		case m.Activate:
			arrow += "+"
		case m.Deactivate:
			arrow += "-"
		}
	}

	var b strings.Builder
	if !m.Shorthand && m.Activate {
		fmt.Fprintf(&b, "activate %s\n    ", m.To)
	}
	if m.Text != "" {
		fmt.Fprintf(&b, "%s%s%s: %s", m.From, arrow, m.To, m.Text)
	} else {
		fmt.Fprintf(&b, "%s%s%s", m.From, arrow, m.To)
	}
	if !m.Shorthand && m.Deactivate {
		fmt.Fprintf(&b, "\n    deactivate %s", m.To)
	}
	return b.String()
}

// NotePosition places a note relative to its lifelines. The zero value
// renders as over.
type NotePosition string

const (
	NoteLeft  NotePosition = "left"
	NoteRight NotePosition = "right"
	NoteOver  NotePosition = "over"
)

// ParseNotePosition accepts position names case-insensitively.
func ParseNotePosition(s string) (NotePosition, error) {
	switch strings.ToLower(s) {
	case "left":
		return NoteLeft, nil
	case "right":
		return NoteRight, nil
	case "", "over":
		return NoteOver, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid note position %q", s)
}

// Note annotates one or more lifelines.
type Note struct {
	Position NotePosition `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Over     []string     `json:"over" yaml:"over" toml:"over"`
	Text     string       `json:"text" yaml:"text" toml:"text"`
}

func (n Note) render() string {
	position := "over"
	switch n.Position {
	case NoteLeft:
		position = "left of"
	case NoteRight:
		position = "right of"
	}
	return fmt.Sprintf("Note %s %s: %s", position, strings.Join(n.Over, ","), n.Text)
}

// LogicType selects the grouping keyword of a logic block.
type LogicType string

const (
	Alt      LogicType = "alt"
	Opt      LogicType = "opt"
	Loop     LogicType = "loop"
	Par      LogicType = "par"
	Critical LogicType = "critical"
	Break    LogicType = "break"
)

func (t LogicType) keyword() string {
	if t == "" {
		return "alt"
	}
	return string(t)
}

// ParseLogicType accepts keywords and their long-form aliases.
func ParseLogicType(s string) (LogicType, error) {
	switch strings.ToLower(s) {
	case "alt", "alternative":
		return Alt, nil
	case "opt", "optional":
		return Opt, nil
	case "loop":
		return Loop, nil
	case "par", "parallel":
		return Par, nil
	case "critical":
		return Critical, nil
	case "break":
		return Break, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid logic type %q", s)
}

// ElseBlock is one alternative branch inside a logic block.
type ElseBlock struct {
	Condition string    `json:"condition,omitempty" yaml:"condition,omitempty" toml:"condition,omitempty"`
	Messages  []Message `json:"messages" yaml:"messages" toml:"messages"`
}

// Logic is a grouped block of messages (alt, opt, loop, par, critical or
// break) with optional else branches.
type Logic struct {
	Type      LogicType   `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Condition string      `json:"condition" yaml:"condition" toml:"condition"`
	Messages  []Message   `json:"messages,omitempty" yaml:"messages,omitempty" toml:"messages,omitempty"`
	Else      []ElseBlock `json:"else,omitempty" yaml:"else,omitempty" toml:"else,omitempty"`
}

func (l Logic) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", l.Type.keyword(), l.Condition)
	for _, m := range l.Messages {
		fmt.Fprintf(&b, "\n    %s", m.render())
	}
	for _, e := range l.Else {
		if e.Condition != "" {
			fmt.Fprintf(&b, "\nelse %s", e.Condition)
		} else {
			b.WriteString("\nelse")
		}
		for _, m := range e.Messages {
			fmt.Fprintf(&b, "\n    %s", m.render())
		}
	}
	b.WriteString("\nend")
	return b.String()
}

// Diagram is a sequence diagram: participants, boxes, messages, notes and
// logic blocks, rendered in that order.
type Diagram struct {
	DiagramTitle string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Autonumber   bool            `json:"autonumber,omitempty" yaml:"autonumber,omitempty" toml:"autonumber,omitempty"`
	Participants []Participant   `json:"participants,omitempty" yaml:"participants,omitempty" toml:"participants,omitempty"`
	Boxes        []Box           `json:"boxes,omitempty" yaml:"boxes,omitempty" toml:"boxes,omitempty"`
	Messages     []Message       `json:"messages,omitempty" yaml:"messages,omitempty" toml:"messages,omitempty"`
	Notes        []Note          `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	Logic        []Logic         `json:"logic,omitempty" yaml:"logic,omitempty" toml:"logic,omitempty"`
	Theme        *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "sequenceDiagram" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("sequenceDiagram")
	if d.Autonumber {
		b.WriteString("\n    autonumber")
	}

	// Participants claimed by a box render inside it, not at the top level.
	for _, p := range d.Participants {
		if !d.inAnyBox(p.ID) {
			fmt.Fprintf(&b, "\n    %s", p.render())
		}
	}
	for _, box := range d.Boxes {
		if box.Color != "" {
			fmt.Fprintf(&b, "\n    box %s %s", box.Color, box.Title)
		} else {
			fmt.Fprintf(&b, "\n    box %s", box.Title)
		}
		for _, p := range d.Participants {
			if box.contains(p.ID) {
				fmt.Fprintf(&b, "\n        %s", p.render())
			}
		}
		b.WriteString("\n    end")
	}

	for _, m := range d.Messages {
		fmt.Fprintf(&b, "\n    %s", m.render())
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&b, "\n    %s", n.render())
	}
	for _, l := range d.Logic {
		for _, line := range strings.Split(l.render(), "\n") {
			fmt.Fprintf(&b, "\n    %s", line)
		}
	}
	return b.String()
}

func (d *Diagram) inAnyBox(id string) bool {
	for _, box := range d.Boxes {
		if box.contains(id) {
			return true
		}
	}
	return false
}
