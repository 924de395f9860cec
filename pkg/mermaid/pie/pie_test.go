package pie

import (
	"strings"
	"testing"
)

func TestChartToMermaid(t *testing.T) {
	tests := []struct {
		name     string
		chart    *Chart
		expected string
	}{
		{
			name:     "empty chart",
			chart:    NewBuilder().Build(),
			expected: "pie",
		},
		{
			name: "show data with slices",
			chart: NewBuilder().
				ShowData(true).
				Data("A", 50).
				Data("B", 50).
				Build(),
			expected: "pie showData\n" +
				"    \"A\" : 50\n" +
				"    \"B\" : 50",
		},
		{
			name: "fractional values keep minimal formatting",
			chart: NewBuilder().
				Data("Go", 62.5).
				Data("Rust", 37.5).
				Build(),
			expected: "pie\n" +
				"    \"Go\" : 62.5\n" +
				"    \"Rust\" : 37.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.chart.ToMermaid()
			if got != tt.expected {
				t.Errorf("ToMermaid() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestChartDecode(t *testing.T) {
	want := NewBuilder().ShowData(true).Data("A", 50).Data("B", 50).Build().ToMermaid()

	tests := []struct {
		name   string
		decode func() (*Chart, error)
	}{
		{
			name: "json",
			decode: func() (*Chart, error) {
				return FromJSON([]byte(`{"showData": true, "data": [{"label": "A", "value": 50}, {"label": "B", "value": 50}]}`))
			},
		},
		{
			name: "yaml",
			decode: func() (*Chart, error) {
				return FromYAML([]byte("showData: true\ndata:\n  - label: A\n    value: 50\n  - label: B\n    value: 50\n"))
			},
		},
		{
			name: "toml",
			decode: func() (*Chart, error) {
				return FromTOML([]byte("showData = true\n\n[[data]]\nlabel = \"A\"\nvalue = 50\n\n[[data]]\nlabel = \"B\"\nvalue = 50\n"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := tt.decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := chart.ToMermaid(); got != want {
				t.Errorf("ToMermaid() = %q, want %q", got, want)
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		if _, err := FromJSON([]byte(`{"data": [`)); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestRawPassthrough(t *testing.T) {
	text := "pie showData\n    \"A\" : 1"
	raw := FromRawMermaid(text)
	if got := raw.ToMermaid(); got != text {
		t.Errorf("raw text altered: %q", got)
	}
	if !strings.HasPrefix(raw.DiagramType(), "pie") {
		t.Errorf("DiagramType() = %q", raw.DiagramType())
	}
}
