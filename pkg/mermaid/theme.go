package mermaid

import (
	"fmt"
	"strings"
)

// Theme selects one of Mermaid's built-in color themes.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeForest  Theme = "forest"
	ThemeDark    Theme = "dark"
	ThemeNeutral Theme = "neutral"
	ThemeBase    Theme = "base"
)

// String returns the theme name, defaulting to "default" for the zero value.
func (t Theme) String() string {
	if t == "" {
		return string(ThemeDefault)
	}
	return string(t)
}

// ParseTheme parses a theme name case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "default":
		return ThemeDefault, nil
	case "forest":
		return ThemeForest, nil
	case "dark":
		return ThemeDark, nil
	case "neutral":
		return ThemeNeutral, nil
	case "base":
		return ThemeBase, nil
	}
	return "", fmt.Errorf("invalid theme: %q", s)
}

// Mode is the display mode selected on the command line. It maps to a theme
// and an optional rendering background color.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode parses "light" or "dark" case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return "", fmt.Errorf("invalid mode: %q (use light or dark)", s)
}

// Theme returns the diagram theme implied by the mode.
func (m Mode) Theme() Theme {
	if m == ModeLight {
		return ThemeDefault
	}
	return ThemeDark
}

// BackgroundColor returns the render background for the mode, or "" when the
// server default should be used.
func (m Mode) BackgroundColor() string {
	if m == ModeLight {
		return ""
	}
	return "#1e1e1e"
}

// ThemeVariables holds sparse per-diagram color overrides. Only set fields are
// emitted into the init directive.
type ThemeVariables struct {
	PrimaryColor     string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty" toml:"primaryColor,omitempty"`
	SecondaryColor   string `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty" toml:"secondaryColor,omitempty"`
	TertiaryColor    string `json:"tertiaryColor,omitempty" yaml:"tertiaryColor,omitempty" toml:"tertiaryColor,omitempty"`
	PrimaryTextColor string `json:"primaryTextColor,omitempty" yaml:"primaryTextColor,omitempty" toml:"primaryTextColor,omitempty"`
	LineColor        string `json:"lineColor,omitempty" yaml:"lineColor,omitempty" toml:"lineColor,omitempty"`
}

// IsEmpty reports whether no override is set.
func (v ThemeVariables) IsEmpty() bool {
	return v == ThemeVariables{}
}

// Config is the optional theme configuration attached to a diagram.
type Config struct {
	Theme          Theme           `json:"theme,omitempty" yaml:"theme,omitempty" toml:"theme,omitempty"`
	ThemeVariables *ThemeVariables `json:"themeVariables,omitempty" yaml:"themeVariables,omitempty" toml:"themeVariables,omitempty"`
}

// NewConfig returns a Config with the given theme and no variable overrides.
func NewConfig(theme Theme) *Config {
	return &Config{Theme: theme}
}

// WithThemeVariables attaches color overrides and returns the config for
// chaining.
func (c *Config) WithThemeVariables(vars ThemeVariables) *Config {
	c.ThemeVariables = &vars
	return c
}

// InitDirective renders the config as a single-line %%{init: ...}%% directive
// understood by mermaid.ink. Theme variables are emitted in a fixed order so
// output is deterministic.
func (c *Config) InitDirective() string {
	parts := []string{fmt.Sprintf("'theme': '%s'", c.Theme.String())}

	if v := c.ThemeVariables; v != nil && !v.IsEmpty() {
		var vars []string
		for _, kv := range []struct{ key, val string }{
			{"primaryColor", v.PrimaryColor},
			{"secondaryColor", v.SecondaryColor},
			{"tertiaryColor", v.TertiaryColor},
			{"primaryTextColor", v.PrimaryTextColor},
			{"lineColor", v.LineColor},
		} {
			if kv.val != "" {
				vars = append(vars, fmt.Sprintf("'%s': '%s'", kv.key, kv.val))
			}
		}
		parts = append(parts, fmt.Sprintf("'themeVariables': {%s}", strings.Join(vars, ", ")))
	}

	return fmt.Sprintf("%%%%{init: {%s}}%%%%", strings.Join(parts, ", "))
}
