package sequence

import (
	"strings"
	"testing"
)

func TestMessageRender(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		expected string
	}{
		{
			name:     "default arrow",
			msg:      Message{From: "Alice", To: "Bob", Text: "Hello"},
			expected: "Alice->>Bob: Hello",
		},
		{
			name:     "no text",
			msg:      Message{From: "A", To: "B", Type: Solid},
			expected: "A->B",
		},
		{
			name:     "shorthand activation with dotted arrow",
			msg:      Message{From: "Alice", To: "Bob", Type: DottedArrow, Text: "async call", Activate: true, Shorthand: true},
			expected: "Alice-->>+Bob: async call",
		},
		{
			name:     "shorthand deactivation",
			msg:      Message{From: "Bob", To: "Alice", Text: "response", Deactivate: true, Shorthand: true},
			expected: "Bob->>-Alice: response",
		},
		{
			name:     "explicit activation lines",
			msg:      Message{From: "A", To: "B", Text: "work", Activate: true, Deactivate: true},
			expected: "activate B\n    A->>B: work\n    deactivate B",
		},
		{
			name:     "cross arrow",
			msg:      Message{From: "A", To: "B", Type: SolidCross, Text: "failed"},
			expected: "A-xB: failed",
		},
		{
			name:     "open arrow",
			msg:      Message{From: "A", To: "B", Type: SolidOpen, Text: "async"},
			expected: "A-)B: async",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.render(); got != tt.expected {
				t.Errorf("render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestArrowGlyphs(t *testing.T) {
	tests := []struct {
		msgType  MessageType
		expected string
	}{
		{Solid, "->"},
		{Dotted, "-->"},
		{SolidArrow, "->>"},
		{DottedArrow, "-->>"},
		{SolidCross, "-x"},
		{DottedCross, "--x"},
		{SolidOpen, "-)"},
		{DottedOpen, "--)"},
	}
	for _, tt := range tests {
		if got := tt.msgType.Arrow(); got != tt.expected {
			t.Errorf("%s.Arrow() = %q, want %q", tt.msgType, got, tt.expected)
		}
	}
}

func TestDiagramToMermaid(t *testing.T) {
	d := NewBuilder().
		Autonumber(true).
		Actor("User").
		Participant("Server").
		Say("User", "Server", "Request").
		Message(Message{From: "Server", To: "User", Type: DottedArrow, Text: "Response"}).
		NoteRight("User", "waits here").
		Build()

	expected := "sequenceDiagram\n" +
		"    autonumber\n" +
		"    actor User\n" +
		"    participant Server\n" +
		"    User->>Server: Request\n" +
		"    Server-->>User: Response\n" +
		"    Note right of User: waits here"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestBoxClaimsParticipants(t *testing.T) {
	d := NewBuilder().
		ParticipantWithLabel("C", "Client").
		ParticipantWithLabel("S", "Server").
		Box(Box{Title: "Backend", Color: "rgb(200,255,200)", Members: []string{"S"}}).
		Say("C", "S", "Request").
		Build()

	expected := "sequenceDiagram\n" +
		"    participant C as Client\n" +
		"    box rgb(200,255,200) Backend\n" +
		"        participant S as Server\n" +
		"    end\n" +
		"    C->>S: Request"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestLogicBlocks(t *testing.T) {
	d := NewBuilder().
		Participant("A").
		Participant("B").
		Logic(Logic{
			Type:      Alt,
			Condition: "Success",
			Messages:  []Message{{From: "A", To: "B", Text: "OK"}},
			Else: []ElseBlock{
				{Condition: "Failure", Messages: []Message{{From: "A", To: "B", Text: "Error"}}},
			},
		}).
		Build()

	got := d.ToMermaid()
	expected := "sequenceDiagram\n" +
		"    participant A\n" +
		"    participant B\n" +
		"    alt Success\n" +
		"        A->>B: OK\n" +
		"    else Failure\n" +
		"        A->>B: Error\n" +
		"    end"
	if got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestNoteOverMultiple(t *testing.T) {
	n := Note{Position: NoteOver, Over: []string{"Alice", "Bob"}, Text: "Shared note"}
	if got := n.render(); got != "Note over Alice,Bob: Shared note" {
		t.Errorf("render() = %q", got)
	}
}

func TestParseMessageType(t *testing.T) {
	tests := []struct {
		in       string
		expected MessageType
		wantErr  bool
	}{
		{"sync", Solid, false},
		{"async", SolidArrow, false},
		{"dotted-arrow", DottedArrow, false},
		{"", SolidArrow, false},
		{"wavy", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMessageType(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseMessageType(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseMessageType(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestDecodeMatchesBuilder(t *testing.T) {
	want := NewBuilder().
		Autonumber(true).
		Actor("A").
		Participant("B").
		Say("A", "B", "Hello").
		Build().ToMermaid()

	doc := "autonumber: true\nparticipants:\n" +
		"  - id: A\n    type: actor\n" +
		"  - id: B\n    type: participant\n" +
		"messages:\n  - from: A\n    to: B\n    text: Hello\n"
	d, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if got := d.ToMermaid(); got != want {
		t.Errorf("ToMermaid() = %q, want %q", got, want)
	}

	if !strings.Contains(want, "A->>B: Hello") {
		t.Errorf("builder output missing message: %q", want)
	}
}
