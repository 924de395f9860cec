package flowchart

import (
	"strings"
	"testing"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

func TestShapeWrap(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected string
	}{
		{Rectangle, `["Test"]`},
		{Rounded, `("Test")`},
		{Stadium, `(["Test"])`},
		{Subroutine, `[["Test"]]`},
		{Cylinder, `[("Test")]`},
		{Circle, `(("Test"))`},
		{Asymmetric, `>"Test"]`},
		{Rhombus, `{"Test"}`},
		{Hexagon, `{{"Test"}}`},
		{Parallelogram, `[/"Test"/]`},
		{ParallelogramAlt, `[\"Test"\]`},
		{Trapezoid, `[/"Test"\]`},
		{TrapezoidAlt, `[\"Test"/]`},
		{DoubleCircle, `((("Test")))`},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			if got := tt.shape.Wrap("Test"); got != tt.expected {
				t.Errorf("Wrap() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLinkArrows(t *testing.T) {
	tests := []struct {
		name     string
		link     Link
		expected string
	}{
		{"default arrow", Link{From: "A", To: "B"}, "a --> b"},
		{"label", Link{From: "A", To: "B", Label: "connects"}, "a -->|connects| b"},
		{"dotted", Link{From: "A", To: "B", Style: Dotted}, "a -.-> b"},
		{"thick", Link{From: "A", To: "B", Style: Thick}, "a ==> b"},
		{"invisible ignores heads", Link{From: "A", To: "B", Style: Invisible, Tail: HeadCross}, "a ~~~ b"},
		{"open strips arrow glyphs", Link{From: "A", To: "B", Style: Open, Head: HeadArrow}, "a --- b"},
		{"circle head", Link{From: "A", To: "B", Head: HeadCircle}, "a --o b"},
		{"cross head with arrow tail", Link{From: "A", To: "B", Head: HeadCross, Tail: HeadArrow}, "a <--x b"},
		{"headless", Link{From: "A", To: "B", Head: HeadNone}, "a -- b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.link.render(); got != tt.expected {
				t.Errorf("render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDiagramToMermaid(t *testing.T) {
	d := NewBuilder().
		Direction(mermaid.LeftRight).
		NodeWithShape("A", "Start", Stadium).
		NodeWithShape("B", "End", Stadium).
		LinkSimple("A", "B").
		Build()

	expected := "flowchart LR\n" +
		"    a([\"Start\"])\n" +
		"    b([\"End\"])\n" +
		"    a --> b"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestSubgraphClaimsNodes(t *testing.T) {
	d := NewBuilder().
		NodeSimple("A", "Node A").
		NodeSimple("B", "Node B").
		NodeSimple("C", "Node C").
		Subgraph(Subgraph{ID: "sg1", SubTitle: "Group 1", Nodes: []string{"A", "B"}}).
		LinkSimple("A", "B").
		LinkSimple("B", "C").
		Build()

	expected := "flowchart TB\n" +
		"    c[\"Node C\"]\n" +
		"    subgraph sg1 [\"Group 1\"]\n" +
		"        a[\"Node A\"]\n" +
		"        b[\"Node B\"]\n" +
		"    end\n" +
		"    a --> b\n" +
		"    b --> c"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestNestedSubgraphs(t *testing.T) {
	lr := mermaid.LeftRight
	d := NewBuilder().
		NodeSimple("A", "Node A").
		NodeSimple("B", "Node B").
		Subgraph(Subgraph{
			ID:       "outer",
			SubTitle: "Outer",
			Nodes:    []string{"A", "B"},
			Subgraphs: []Subgraph{
				{ID: "inner", SubTitle: "Inner", Nodes: []string{"B"}, Direction: &lr,
					Subgraphs: []Subgraph{{ID: "deepest"}}},
			},
		}).
		Build()

	expected := "flowchart TB\n" +
		"    subgraph outer [\"Outer\"]\n" +
		"        a[\"Node A\"]\n" +
		"        subgraph inner [\"Inner\"]\n" +
		"            direction LR\n" +
		"            b[\"Node B\"]\n" +
		"            subgraph deepest [\"deepest\"]\n" +
		"            end\n" +
		"        end\n" +
		"    end"
	got := d.ToMermaid()
	if got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
	if n := strings.Count(got, "end"); n != 3 {
		t.Errorf("expected 3 end markers, got %d", n)
	}
}

func TestStyleAndClassLines(t *testing.T) {
	d := NewBuilder().
		Node(Node{ID: "A", Label: "Styled", Class: "highlight", Href: "https://example.com"}).
		NodeSimple("B", "Plain").
		LinkSimple("A", "B").
		Style("A", mermaid.Style{Fill: "#f9f", Stroke: "#333"}).
		ClassDef("highlight", mermaid.Style{Fill: "#f9f"}).
		ClassAssignment("highlight", "A", "B").
		LinkStyle(0, mermaid.Style{Stroke: "#ff0000", StrokeWidth: "2px"}).
		Build()

	got := d.ToMermaid()
	for _, want := range []string{
		"a[\"Styled\"]:::highlight",
		"click a \"https://example.com\"",
		"style a fill:#f9f,stroke:#333",
		"classDef highlight fill:#f9f",
		"class a,b highlight",
		"linkStyle 0 stroke:#ff0000,stroke-width:2px",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestParseShapeAliases(t *testing.T) {
	tests := []struct {
		in       string
		expected Shape
	}{
		{"diamond", Rhombus},
		{"db", Cylinder},
		{"", Rectangle},
		{"round", Rounded},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if err != nil {
			t.Errorf("ParseShape(%q): %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
	if _, err := ParseShape("blob"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestDecodeMatchesBuilder(t *testing.T) {
	want := NewBuilder().
		Direction(mermaid.LeftRight).
		NodeWithShape("A", "Start", Stadium).
		NodeWithShape("B", "End", Stadium).
		LinkSimple("A", "B").
		Build().ToMermaid()

	doc := `{
		"direction": "LR",
		"nodes": [
			{"id": "A", "label": "Start", "shape": "stadium"},
			{"id": "B", "label": "End", "shape": "stadium"}
		],
		"links": [{"from": "A", "to": "B"}]
	}`
	d, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got := d.ToMermaid(); got != want {
		t.Errorf("ToMermaid() = %q, want %q", got, want)
	}
}
