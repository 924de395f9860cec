// Package journey models Mermaid user-journey diagrams.
package journey

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Task is one step of a journey. The satisfaction score is clamped into
// [0, 5] when the task is constructed.
type Task struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Score  int      `json:"score" yaml:"score" toml:"score"`
	Actors []string `json:"actors,omitempty" yaml:"actors,omitempty" toml:"actors,omitempty"`
}

// NewTask constructs a task with the score clamped into the valid range.
func NewTask(name string, score int, actors ...string) Task {
	return Task{Name: name, Score: clampScore(score), Actors: actors}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}

// Section groups tasks under a heading.
type Section struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Tasks []Task `json:"tasks,omitempty" yaml:"tasks,omitempty" toml:"tasks,omitempty"`
}

// Diagram is a user journey: an optional title followed by sections of
// scored tasks.
type Diagram struct {
	DiagramTitle string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Sections     []Section       `json:"sections,omitempty" yaml:"sections,omitempty" toml:"sections,omitempty"`
	Theme        *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "journey" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

// ToMermaid renders the journey. A task with no actors keeps its trailing
// actor separator, matching the Mermaid grammar.
func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("journey")
	if d.DiagramTitle != "" {
		fmt.Fprintf(&b, "\n    title %s", d.DiagramTitle)
	}
	for _, s := range d.Sections {
		fmt.Fprintf(&b, "\n    section %s", s.Name)
		for _, t := range s.Tasks {
			fmt.Fprintf(&b, "\n        %s: %d : %s", t.Name, t.Score, strings.Join(t.Actors, ", "))
		}
	}
	return b.String()
}

// clamp re-applies score clamping after decoding from a document, so file
// input honors the same bounds as the builder.
func (d *Diagram) clamp() {
	for i := range d.Sections {
		for j := range d.Sections[i].Tasks {
			d.Sections[i].Tasks[j].Score = clampScore(d.Sections[i].Tasks[j].Score)
		}
	}
}
