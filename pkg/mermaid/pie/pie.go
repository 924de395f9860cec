// Package pie models Mermaid pie charts.
package pie

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toozej/mermaidgen/pkg/mermaid"
)

// Slice is one labeled datum of the chart.
type Slice struct {
	Label string  `json:"label" yaml:"label" toml:"label"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// Chart is a pie chart: labeled values rendered in insertion order.
type Chart struct {
	ChartTitle string          `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	ShowData   bool            `json:"showData,omitempty" yaml:"showData,omitempty" toml:"showData,omitempty"`
	Slices     []Slice         `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Theme      *mermaid.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
}

func (c *Chart) DiagramType() string     { return "pie" }
func (c *Chart) Title() string           { return c.ChartTitle }
func (c *Chart) Config() *mermaid.Config { return c.Theme }

// ToMermaid renders the chart. Values print with minimal formatting, so whole
// numbers carry no decimal point.
func (c *Chart) ToMermaid() string {
	var b strings.Builder
	b.WriteString("pie")
	if c.ShowData {
		b.WriteString(" showData")
	}
	for _, s := range c.Slices {
		value := strconv.FormatFloat(s.Value, 'f', -1, 64)
		fmt.Fprintf(&b, "\n    %q : %s", s.Label, value)
	}
	return b.String()
}
