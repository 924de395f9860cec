package pie

import "github.com/toozej/mermaidgen/pkg/mermaid"

// Builder accumulates chart fragments. Scalar setters follow last-call-wins;
// Data appends in call order.
type Builder struct {
	chart Chart
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Title(title string) *Builder {
	b.chart.ChartTitle = title
	return b
}

func (b *Builder) ShowData(show bool) *Builder {
	b.chart.ShowData = show
	return b
}

func (b *Builder) Data(label string, value float64) *Builder {
	b.chart.Slices = append(b.chart.Slices, Slice{Label: label, Value: value})
	return b
}

func (b *Builder) Config(cfg *mermaid.Config) *Builder {
	b.chart.Theme = cfg
	return b
}

func (b *Builder) Build() *Chart {
	chart := b.chart
	chart.Slices = append([]Slice(nil), b.chart.Slices...)
	return &chart
}
