package state

import (
	"strings"
	"testing"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

func TestTransitionRender(t *testing.T) {
	tests := []struct {
		name     string
		tr       Transition
		expected string
	}{
		{"ids lowercased", Transition{From: "A", To: "B"}, "a --> b"},
		{"label preserved", Transition{From: "A", To: "B", Label: "event"}, "a --> b : event"},
		{"start marker untouched", FromStart("Init"), "[*] --> init"},
		{"end marker untouched", ToEnd("Final"), "final --> [*]"},
		{"spaces normalized", Transition{From: "User Auth", To: "Done"}, "user_auth --> done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.render(); got != tt.expected {
				t.Errorf("render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDiagramToMermaid(t *testing.T) {
	d := NewBuilder().
		Direction(mermaid.LeftRight).
		State("Active").
		StateWithDescription("Pending", "Waiting for payment").
		Start("Pending").
		TransitionWithLabel("Pending", "Active", "paid").
		End("Active").
		Build()

	expected := "stateDiagram-v2\n" +
		"    direction LR\n" +
		"    active\n" +
		"    pending: Waiting for payment\n" +
		"    [*] --> pending\n" +
		"    pending --> active : paid\n" +
		"    active --> [*]"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestChoiceForkJoin(t *testing.T) {
	d := NewBuilder().
		Choice(Choice{ID: "decide", Conditions: []ChoiceCondition{
			{Condition: "valid", Target: "Success"},
			{Condition: "invalid", Target: "Failure"},
		}}).
		Fork(Fork{ID: "split", Targets: []string{"A", "B"}}).
		Join(Join{ID: "merge", Sources: []string{"A", "B"}, Target: "Next"}).
		Build()

	got := d.ToMermaid()
	for _, want := range []string{
		"    state decide <<choice>>",
		"        decide --> success: valid",
		"        decide --> failure: invalid",
		"    state split <<fork>>",
		"        split --> a",
		"    state merge <<join>>",
		"        a --> merge",
		"        merge --> next",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCompositeNesting(t *testing.T) {
	d := NewBuilder().
		Composite(Composite{
			ID:        "Outer",
			CompTitle: "Outer State",
			Children: []Composite{
				{ID: "Middle", Children: []Composite{
					{ID: "Inner", States: []State{{ID: "Leaf"}}},
				}},
			},
		}).
		Build()

	expected := "stateDiagram-v2\n" +
		"    direction TB\n" +
		"    state \"Outer State\" as outer {\n" +
		"        state \"Middle\" as middle {\n" +
		"            state \"Inner\" as inner {\n" +
		"                leaf\n" +
		"            }\n" +
		"        }\n" +
		"    }"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
	if n := strings.Count(d.ToMermaid(), "}"); n != 3 {
		t.Errorf("expected 3 closing braces, got %d", n)
	}
}

func TestConcurrentRegions(t *testing.T) {
	d := NewBuilder().
		Concurrent(Concurrent{
			ID:        "Parallel",
			CompTitle: "Parallel Processing",
			Regions: []Region{
				{States: []State{{ID: "A1"}}, Transitions: []Transition{FromStart("A1")}},
				{States: []State{{ID: "B1"}}, Transitions: []Transition{FromStart("B1")}},
			},
		}).
		Build()

	expected := "stateDiagram-v2\n" +
		"    direction TB\n" +
		"    state \"Parallel Processing\" as parallel {\n" +
		"        a1\n" +
		"        [*] --> a1\n" +
		"        --\n" +
		"        b1\n" +
		"        [*] --> b1\n" +
		"    }"
	if got := d.ToMermaid(); got != expected {
		t.Errorf("ToMermaid() = %q, want %q", got, expected)
	}
}

func TestStartEndStatesRenderNothing(t *testing.T) {
	d := NewBuilder().Build()
	d.States = []State{{ID: "[*]"}}
	got := d.ToMermaid()
	if strings.Contains(got, "\n    [*]\n") {
		t.Errorf("standalone marker rendered: %q", got)
	}
}

func TestDecodeMatchesBuilder(t *testing.T) {
	want := NewBuilder().
		Direction(mermaid.LeftRight).
		State("Pending").
		Start("Pending").
		TransitionWithLabel("Pending", "Done", "finish").
		Build().ToMermaid()

	doc := "direction: LR\nstates:\n  - id: Pending\ntransitions:\n" +
		"  - from: \"[*]\"\n    to: Pending\n" +
		"  - from: Pending\n    to: Done\n    label: finish\n"
	d, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if got := d.ToMermaid(); got != want {
		t.Errorf("ToMermaid() = %q, want %q", got, want)
	}
}
