// Package state models Mermaid v2 state diagrams.
//
// State identifiers are normalized on output (lowercase, unsafe characters
// replaced by underscores); the [*] start/end marker is the one exception
// and always passes through untouched.
package state

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// StartEnd is the marker for the initial and final pseudostate.
const StartEnd = "[*]"

func normalize(id string) string {
	if id == StartEnd {
		return id
	}
	return mermaid.NormalizeID(id)
}

// State is one node. A description renders as `id: description`; start and
// end markers render nothing standalone and appear only in transitions.
type State struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

func (s State) render() string {
	if s.ID == StartEnd {
		return ""
	}
	if s.Description != "" {
		return fmt.Sprintf("%s: %s", normalize(s.ID), s.Description)
	}
	return normalize(s.ID)
}

// Transition is an arrow between two states. Either endpoint may be the [*]
// marker.
type Transition struct {
	From  string `json:"from" yaml:"from" toml:"from"`
	To    string `json:"to" yaml:"to" toml:"to"`
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}

// FromStart builds a transition out of the initial pseudostate.
func FromStart(to string) Transition {
	return Transition{From: StartEnd, To: to}
}

// ToEnd builds a transition into the final pseudostate.
func ToEnd(from string) Transition {
	return Transition{From: from, To: StartEnd}
}

func (t Transition) render() string {
	if t.Label != "" {
		return fmt.Sprintf("%s --> %s : %s", normalize(t.From), normalize(t.To), t.Label)
	}
	return fmt.Sprintf("%s --> %s", normalize(t.From), normalize(t.To))
}

// ChoiceCondition pairs a guard condition with its target state.
type ChoiceCondition struct {
	Condition string `json:"condition" yaml:"condition" toml:"condition"`
	Target    string `json:"target" yaml:"target" toml:"target"`
}

// Choice is a <<choice>> pseudostate with its outgoing guarded transitions.
type Choice struct {
	ID         string            `json:"id" yaml:"id" toml:"id"`
	Conditions []ChoiceCondition `json:"conditions,omitempty" yaml:"conditions,omitempty" toml:"conditions,omitempty"`
}

func (c Choice) render(b *strings.Builder, indent string) {
	id := normalize(c.ID)
	fmt.Fprintf(b, "\n%sstate %s <<choice>>", indent, id)
	for _, cond := range c.Conditions {
		fmt.Fprintf(b, "\n%s    %s --> %s: %s", indent, id, normalize(cond.Target), cond.Condition)
	}
}

// Fork is a <<fork>> pseudostate fanning out to its targets.
type Fork struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty" toml:"targets,omitempty"`
}

func (f Fork) render(b *strings.Builder, indent string) {
	id := normalize(f.ID)
	fmt.Fprintf(b, "\n%sstate %s <<fork>>", indent, id)
	for _, target := range f.Targets {
		fmt.Fprintf(b, "\n%s    %s --> %s", indent, id, normalize(target))
	}
}

// Join is a <<join>> pseudostate collecting its sources into one target.
type Join struct {
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty"`
	Target  string   `json:"target" yaml:"target" toml:"target"`
}

func (j Join) render(b *strings.Builder, indent string) {
	id := normalize(j.ID)
	fmt.Fprintf(b, "\n%sstate %s <<join>>", indent, id)
	for _, source := range j.Sources {
		fmt.Fprintf(b, "\n%s    %s --> %s", indent, normalize(source), id)
	}
	fmt.Fprintf(b, "\n%s    %s --> %s", indent, id, normalize(j.Target))
}

// Composite is a state containing its own states, transitions and nested
// composites. The display title falls back to the id.
type Composite struct {
	ID          string       `json:"id" yaml:"id" toml:"id"`
	CompTitle   string       `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	States      []State      `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
	Children    []Composite  `json:"composites,omitempty" yaml:"composites,omitempty" toml:"composites,omitempty"`
}

func (c Composite) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	title := c.CompTitle
	if title == "" {
		title = c.ID
	}
	fmt.Fprintf(b, "\n%sstate %q as %s {", indent, title, normalize(c.ID))
	for _, s := range c.States {
		if line := s.render(); line != "" {
			fmt.Fprintf(b, "\n%s    %s", indent, line)
		}
	}
	for _, child := range c.Children {
		child.render(b, depth+1)
	}
	for _, t := range c.Transitions {
		fmt.Fprintf(b, "\n%s    %s", indent, t.render())
	}
	fmt.Fprintf(b, "\n%s}", indent)
}

// Region is one lane of a concurrent state.
type Region struct {
	States      []State      `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
}

// Concurrent is a state whose regions run in parallel, separated by `--`
// lines.
type Concurrent struct {
	ID        string   `json:"id" yaml:"id" toml:"id"`
	CompTitle string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Regions   []Region `json:"regions,omitempty" yaml:"regions,omitempty" toml:"regions,omitempty"`
}

func (c Concurrent) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("    ", depth)
	title := c.CompTitle
	if title == "" {
		title = c.ID
	}
	fmt.Fprintf(b, "\n%sstate %q as %s {", indent, title, normalize(c.ID))
	for i, region := range c.Regions {
		if i > 0 {
			fmt.Fprintf(b, "\n%s    --", indent)
		}
		for _, s := range region.States {
			if line := s.render(); line != "" {
				fmt.Fprintf(b, "\n%s    %s", indent, line)
			}
		}
		for _, t := range region.Transitions {
			fmt.Fprintf(b, "\n%s    %s", indent, t.render())
		}
	}
	fmt.Fprintf(b, "\n%s}", indent)
}

// Diagram is a v2 state diagram: direction, states, composites, concurrents,
// pseudostates, then transitions.
type Diagram struct {
	DiagramTitle string            `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Direction    mermaid.Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	States       []State           `json:"states,omitempty" yaml:"states,omitempty" toml:"states,omitempty"`
	Composites   []Composite       `json:"composites,omitempty" yaml:"composites,omitempty" toml:"composites,omitempty"`
	Concurrents  []Concurrent      `json:"concurrents,omitempty" yaml:"concurrents,omitempty" toml:"concurrents,omitempty"`
	Choices      []Choice          `json:"choices,omitempty" yaml:"choices,omitempty" toml:"choices,omitempty"`
	Forks        []Fork            `json:"forks,omitempty" yaml:"forks,omitempty" toml:"forks,omitempty"`
	Joins        []Join            `json:"joins,omitempty" yaml:"joins,omitempty" toml:"joins,omitempty"`
	Transitions  []Transition      `json:"transitions,omitempty" yaml:"transitions,omitempty" toml:"transitions,omitempty"`
	Theme        *mermaid.Config   `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "stateDiagram-v2" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2")
	fmt.Fprintf(&b, "\n    direction %s", d.Direction.String())
	for _, s := range d.States {
		if line := s.render(); line != "" {
			fmt.Fprintf(&b, "\n    %s", line)
		}
	}
	for _, c := range d.Composites {
		c.render(&b, 1)
	}
	for _, c := range d.Concurrents {
		c.render(&b, 1)
	}
	for _, c := range d.Choices {
		c.render(&b, "    ")
	}
	for _, f := range d.Forks {
		f.render(&b, "    ")
	}
	for _, j := range d.Joins {
		j.render(&b, "    ")
	}
	for _, t := range d.Transitions {
		fmt.Fprintf(&b, "\n    %s", t.render())
	}
	return b.String()
}
