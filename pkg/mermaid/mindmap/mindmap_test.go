package mindmap

import (
	"strings"
	"testing"
)

func TestShapeWrap(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected string
	}{
		{ShapeDefault, "idea"},
		{ShapeSquare, "[idea]"},
		{ShapeRounded, "(idea)"},
		{ShapeCircle, "((idea))"},
		{ShapeBang, "))idea(("},
		{ShapeCloud, ")idea("},
		{ShapeHexagon, "{{idea}}"},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			if got := tt.shape.Wrap("idea"); got != tt.expected {
				t.Errorf("Wrap() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDiagramToMermaid(t *testing.T) {
	d := NewBuilder("Project").
		RootShape(ShapeCircle).
		ChildNode(Node{
			Text:  "Backend",
			Icon:  "fa fa-server",
			Class: "infra",
			Children: []Node{
				{Text: "API", Shape: ShapeSquare},
			},
		}).
		Child("Frontend").
		Build()

	expected := "mindmap\n" +
		"    ((Project))\n" +
		"        Backend\n" +
		"        ::icon(fa fa-server)\n" +
		"        ::::infra\n" +
		"            [API]\n" +
		"        Frontend"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestNestingDepth(t *testing.T) {
	d := NewBuilder("L1").
		ChildNode(Node{Text: "L2", Children: []Node{
			{Text: "L3", Children: []Node{{Text: "L4"}}},
		}}).
		Build()

	lines := strings.Split(d.ToMermaid(), "\n")
	wantIndent := map[string]int{"L1": 4, "L2": 8, "L3": 12, "L4": 16}
	for _, line := range lines[1:] {
		text := strings.TrimLeft(line, " ")
		if got := len(line) - len(text); got != wantIndent[text] {
			t.Errorf("node %s indented %d spaces, want %d", text, got, wantIndent[text])
		}
	}
}

func TestDecodeMatchesBuilder(t *testing.T) {
	want := NewBuilder("Main").Child("Sub1").Child("Sub2").Build().ToMermaid()

	d, err := FromYAML([]byte("root:\n  text: Main\n  children:\n    - text: Sub1\n    - text: Sub2\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if got := d.ToMermaid(); got != want {
		t.Errorf("ToMermaid() = %q, want %q", got, want)
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("rect"); err != nil || s != ShapeSquare {
		t.Errorf("ParseShape(rect) = %v, %v", s, err)
	}
	if _, err := ParseShape("triangle"); err == nil {
		t.Error("expected error for unknown shape")
	}
}
