// Package requirement models Mermaid requirement diagrams.
package requirement

import (
	"fmt"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Risk grades a requirement. The zero value renders as Low.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

func (r Risk) String() string {
	if r == "" {
		return string(RiskLow)
	}
	return string(r)
}

// ParseRisk accepts risk names case-insensitively, with common shorthand.
func ParseRisk(s string) (Risk, error) {
	switch strings.ToLower(s) {
	case "low":
		return RiskLow, nil
	case "medium", "med":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid risk %q", s)
}

// VerifyMethod states how a requirement is verified. The zero value renders
// as Test.
type VerifyMethod string

const (
	VerifyTest          VerifyMethod = "Test"
	VerifyInspection    VerifyMethod = "Inspection"
	VerifyAnalysis      VerifyMethod = "Analysis"
	VerifyDemonstration VerifyMethod = "Demonstration"
)

func (v VerifyMethod) String() string {
	if v == "" {
		return string(VerifyTest)
	}
	return string(v)
}

// ParseVerifyMethod accepts method names case-insensitively, with common
// shorthand.
func ParseVerifyMethod(s string) (VerifyMethod, error) {
	switch strings.ToLower(s) {
	case "test":
		return VerifyTest, nil
	case "inspection", "inspect":
		return VerifyInspection, nil
	case "analysis", "analyze":
		return VerifyAnalysis, nil
	case "demonstration", "demo":
		return VerifyDemonstration, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid verify method %q", s)
}

// Type is the requirement category keyword that opens the block.
type Type string

const (
	TypeRequirement            Type = "requirement"
	TypeFunctionalRequirement  Type = "functionalRequirement"
	TypeInterfaceRequirement   Type = "interfaceRequirement"
	TypePerformanceRequirement Type = "performanceRequirement"
	TypePhysicalRequirement    Type = "physicalRequirement"
	TypeDesignConstraint       Type = "designConstraint"
)

func (t Type) String() string {
	if t == "" {
		return string(TypeRequirement)
	}
	return string(t)
}

// Requirement is one requirement block.
type Requirement struct {
	ID           string       `json:"id" yaml:"id" toml:"id"`
	Name         string       `json:"name" yaml:"name" toml:"name"`
	Text         string       `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Risk         Risk         `json:"risk,omitempty" yaml:"risk,omitempty" toml:"risk,omitempty"`
	VerifyMethod VerifyMethod `json:"verifyMethod,omitempty" yaml:"verifyMethod,omitempty" toml:"verifyMethod,omitempty"`
	Type         Type         `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

func (r Requirement) render(b *strings.Builder) {
	fmt.Fprintf(b, "\n    %s %s {", r.Type.String(), r.Name)
	fmt.Fprintf(b, "\n        id: %s", r.ID)
	if r.Text != "" {
		fmt.Fprintf(b, "\n        text: %s", r.Text)
	}
	fmt.Fprintf(b, "\n        risk: %s", r.Risk.String())
	fmt.Fprintf(b, "\n        verifymethod: %s", r.VerifyMethod.String())
	b.WriteString("\n    }")
}

// ElementType is the element category keyword. The zero value renders as
// element.
type ElementType string

const (
	ElementGeneric    ElementType = "element"
	ElementSimulation ElementType = "simulation"
	ElementTestCase   ElementType = "testCase"
)

func (t ElementType) String() string {
	if t == "" {
		return string(ElementGeneric)
	}
	return string(t)
}

// Element is a design artifact that satisfies or verifies requirements. ID
// renders into the block's type field per the Mermaid grammar.
type Element struct {
	ID     string      `json:"id" yaml:"id" toml:"id"`
	Name   string      `json:"name" yaml:"name" toml:"name"`
	Type   ElementType `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	DocRef string      `json:"docRef,omitempty" yaml:"docRef,omitempty" toml:"docRef,omitempty"`
}

func (e Element) render(b *strings.Builder) {
	fmt.Fprintf(b, "\n    %s %s {", e.Type.String(), e.Name)
	fmt.Fprintf(b, "\n        type: %s", e.ID)
	if e.DocRef != "" {
		fmt.Fprintf(b, "\n        docRef: %s", e.DocRef)
	}
	b.WriteString("\n    }")
}

// RelationType names the arrow between two blocks.
type RelationType string

const (
	Contains  RelationType = "contains"
	Copies    RelationType = "copies"
	Derives   RelationType = "derives"
	Satisfies RelationType = "satisfies"
	Verifies  RelationType = "verifies"
	Refines   RelationType = "refines"
	Traces    RelationType = "traces"
)

func (t RelationType) String() string {
	if t == "" {
		return string(Contains)
	}
	return string(t)
}

// ParseRelationType accepts relation names case-insensitively.
func ParseRelationType(s string) (RelationType, error) {
	switch v := RelationType(strings.ToLower(s)); v {
	case Contains, Copies, Derives, Satisfies, Verifies, Refines, Traces:
		return v, nil
	}
	return "", mermaid.Errorf(mermaid.KindParse, "invalid relationship type %q", s)
}

// Relationship is an arrow between two named blocks.
type Relationship struct {
	From string       `json:"from" yaml:"from" toml:"from"`
	To   string       `json:"to" yaml:"to" toml:"to"`
	Type RelationType `json:"type" yaml:"type" toml:"type"`
}

func (r Relationship) render(b *strings.Builder) {
	fmt.Fprintf(b, "\n    %s - %s -> %s", r.From, r.Type.String(), r.To)
}

// Diagram is a requirement diagram: requirement blocks, element blocks, then
// relationships.
type Diagram struct {
	DiagramTitle  string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Requirements  []Requirement   `json:"requirements,omitempty" yaml:"requirements,omitempty" toml:"requirements,omitempty"`
	Elements      []Element       `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty"`
	Relationships []Relationship  `json:"relationships,omitempty" yaml:"relationships,omitempty" toml:"relationships,omitempty"`
	Theme         *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (d *Diagram) DiagramType() string     { return "requirementDiagram" }
func (d *Diagram) Title() string           { return d.DiagramTitle }
func (d *Diagram) Config() *mermaid.Config { return d.Theme }

func (d *Diagram) ToMermaid() string {
	var b strings.Builder
	b.WriteString("requirementDiagram")
	for _, r := range d.Requirements {
		r.render(&b)
	}
	for _, e := range d.Elements {
		e.render(&b)
	}
	for _, r := range d.Relationships {
		r.render(&b)
	}
	return b.String()
}
