package mermaid

import (
	"errors"
	"strings"
	"testing"
)

type fakeDiagram struct {
	script string
	cfg    *Config
}

func (f fakeDiagram) ToMermaid() string   { return f.script }
func (f fakeDiagram) DiagramType() string { return "fake" }
func (f fakeDiagram) Title() string       { return "" }
func (f fakeDiagram) Config() *Config     { return f.cfg }

func TestBuildScript(t *testing.T) {
	tests := []struct {
		name     string
		diagram  Diagram
		expected string
	}{
		{
			name:     "no config returns body verbatim",
			diagram:  fakeDiagram{script: "pie\n    \"A\" : 1"},
			expected: "pie\n    \"A\" : 1",
		},
		{
			name:    "config prepends init directive",
			diagram: fakeDiagram{script: "flowchart TB", cfg: NewConfig(ThemeDark)},
			expected: "%%{init: {'theme': 'dark'}}%%\n" +
				"flowchart TB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildScript(tt.diagram)
			if got != tt.expected {
				t.Errorf("BuildScript() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"spaces become underscores", "User Authentication", "user_authentication"},
		{"symbols become underscores", "node@#$%", "node____"},
		{"kept punctuation", "svc.api-v2_x", "svc.api-v2_x"},
		{"uppercase lowered", "LoadBalancer", "loadbalancer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeID(tt.in)
			if got != tt.expected {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.expected)
			}
			if again := NormalizeID(got); again != got {
				t.Errorf("NormalizeID not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"TB", TopBottom, false},
		{"td", TopBottom, false},
		{"lr", LeftRight, false},
		{"RL", RightLeft, false},
		{"BT", BottomTop, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDirection(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestInitDirective(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		expected string
	}{
		{
			name:     "theme only",
			cfg:      NewConfig(ThemeForest),
			expected: "%%{init: {'theme': 'forest'}}%%",
		},
		{
			name:     "zero theme falls back to default",
			cfg:      &Config{},
			expected: "%%{init: {'theme': 'default'}}%%",
		},
		{
			name: "theme variables in fixed order",
			cfg: NewConfig(ThemeBase).WithThemeVariables(ThemeVariables{
				PrimaryColor:     "#ff0000",
				PrimaryTextColor: "#ffffff",
				LineColor:        "#00ff00",
			}),
			expected: "%%{init: {'theme': 'base', 'themeVariables': " +
				"{'primaryColor': '#ff0000', 'primaryTextColor': '#ffffff', 'lineColor': '#00ff00'}}}%%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.InitDirective()
			if got != tt.expected {
				t.Errorf("InitDirective() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModeTheme(t *testing.T) {
	if got := ModeLight.Theme(); got != ThemeDefault {
		t.Errorf("ModeLight.Theme() = %v, want %v", got, ThemeDefault)
	}
	if got := ModeDark.Theme(); got != ThemeDark {
		t.Errorf("ModeDark.Theme() = %v, want %v", got, ThemeDark)
	}
	if got := ModeDark.BackgroundColor(); got != "#1e1e1e" {
		t.Errorf("ModeDark.BackgroundColor() = %q", got)
	}
}

func TestStyleToCSS(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{
			name:     "fill only",
			style:    Style{Fill: "#f9f9f9"},
			expected: "fill:#f9f9f9",
		},
		{
			name: "fixed property order",
			style: Style{
				StrokeWidth: "2px",
				Stroke:      "#333",
				Fill:        "#fff",
			},
			expected: "fill:#fff,stroke:#333,stroke-width:2px",
		},
		{
			name:     "empty style",
			style:    Style{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.style.ToCSS()
			if got != tt.expected {
				t.Errorf("ToCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(KindRender, base, "fetching diagram")

	if !errors.Is(err, &Error{Kind: KindRender}) {
		t.Error("expected errors.Is to match on Kind")
	}
	if errors.Is(err, &Error{Kind: KindParse}) {
		t.Error("errors.Is matched the wrong Kind")
	}
	if !errors.Is(err, base) {
		t.Error("expected errors.Is to see the wrapped cause")
	}
	if !strings.Contains(err.Error(), "fetching diagram") {
		t.Errorf("Error() = %q, missing message", err.Error())
	}

	var tagged *Error
	if !errors.As(err, &tagged) {
		t.Fatal("expected errors.As to extract *Error")
	}
	if tagged.Kind != KindRender {
		t.Errorf("Kind = %v, want %v", tagged.Kind, KindRender)
	}

	if Wrap(KindParse, nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}
