package tui

import (
	"github.com/toozej/mermaidgen/pkg/mermaid"
	"github.com/toozej/mermaidgen/pkg/mermaid/er"
	"github.com/toozej/mermaidgen/pkg/mermaid/flowchart"
	"github.com/toozej/mermaidgen/pkg/mermaid/journey"
	"github.com/toozej/mermaidgen/pkg/mermaid/mindmap"
	"github.com/toozej/mermaidgen/pkg/mermaid/pie"
	"github.com/toozej/mermaidgen/pkg/mermaid/requirement"
	"github.com/toozej/mermaidgen/pkg/mermaid/sequence"
	"github.com/toozej/mermaidgen/pkg/mermaid/state"
)

// Template is one ready-made diagram script shown in the gallery.
type Template struct {
	Name   string
	Kind   string
	Script string
}

// Templates returns the built-in example gallery, one entry per
// diagram kind, generated through the same builders the CLI uses.
func Templates() []Template {
	flow := flowchart.NewBuilder().
		Direction(mermaid.LeftRight).
		NodeWithShape("start", "Start", flowchart.Stadium).
		NodeWithShape("check", "Valid?", flowchart.Rhombus).
		NodeSimple("work", "Process").
		NodeWithShape("done", "Done", flowchart.Stadium).
		LinkSimple("start", "check").
		LinkWithLabel("check", "work", "yes").
		LinkWithLabel("check", "done", "no").
		LinkSimple("work", "done").
		Build()

	seq := sequence.NewBuilder().
		Participant("client").
		Participant("server").
		Say("client", "server", "GET /resource").
		Say("server", "client", "200 OK").
		NoteOver("server", "cache warm").
		Build()

	erd := er.NewBuilder().
		Entity("User",
			er.Attribute{Type: "int", Name: "id", Key: er.PrimaryKey},
			er.Attribute{Type: "string", Name: "email"},
		).
		Entity("Order",
			er.Attribute{Type: "int", Name: "id", Key: er.PrimaryKey},
			er.Attribute{Type: "int", Name: "user_id", Key: er.ForeignKey},
		).
		OneToMany("User", "Order", "places").
		Build()

	st := state.NewBuilder().
		Start("idle").
		TransitionWithLabel("idle", "running", "start").
		TransitionWithLabel("running", "idle", "stop").
		End("running").
		Build()

	jrn := journey.NewBuilder().
		Title("Morning routine").
		Section("Get up").
		Task("Wake up", 3, "Me").
		Task("Coffee", 5, "Me").
		Build()

	mm := mindmap.NewBuilder("Project").
		RootShape(mindmap.ShapeCloud).
		Child("Planning").
		Child("Execution").
		Child("Review").
		Build()

	chart := pie.NewBuilder().
		Title("Time spent").
		Data("Coding", 60).
		Data("Meetings", 25).
		Data("Reviews", 15).
		Build()

	req := requirement.NewBuilder().
		Requirement(requirement.Requirement{
			ID:   "1",
			Name: "fast_startup",
			Text: "the system shall start in under one second",
		}).
		Element(requirement.Element{ID: "boot", Name: "boot_loader"}).
		Satisfies("boot_loader", "fast_startup").
		Build()

	return []Template{
		{Name: "Flowchart: approval flow", Kind: "flowchart", Script: flow.ToMermaid()},
		{Name: "Sequence: request/response", Kind: "sequence", Script: seq.ToMermaid()},
		{Name: "ER: users and orders", Kind: "er", Script: erd.ToMermaid()},
		{Name: "State: start/stop machine", Kind: "state", Script: st.ToMermaid()},
		{Name: "Journey: morning routine", Kind: "journey", Script: jrn.ToMermaid()},
		{Name: "Mindmap: project outline", Kind: "mindmap", Script: mm.ToMermaid()},
		{Name: "Pie: time spent", Kind: "pie", Script: chart.ToMermaid()},
		{Name: "Requirement: fast startup", Kind: "requirement", Script: req.ToMermaid()},
	}
}
