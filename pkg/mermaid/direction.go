package mermaid

import (
	"fmt"
	"strings"
)

// Direction controls the layout flow of flowcharts, state diagrams and
// subgraphs.
type Direction string

const (
	TopBottom Direction = "TB"
	BottomTop Direction = "BT"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
)

// DefaultDirection is used when a diagram does not set a direction.
const DefaultDirection = TopBottom

// String returns the Mermaid token for the direction (TB, BT, LR, RL).
// The zero value renders as the default top-to-bottom flow.
func (d Direction) String() string {
	if d == "" {
		return string(DefaultDirection)
	}
	return string(d)
}

// ParseDirection parses a direction token case-insensitively. "TD" is
// accepted as a synonym for TB to match Mermaid's flowchart grammar.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "TB", "TD":
		return TopBottom, nil
	case "BT":
		return BottomTop, nil
	case "LR":
		return LeftRight, nil
	case "RL":
		return RightLeft, nil
	}
	return "", fmt.Errorf("invalid direction: %q", s)
}

// UnmarshalText lets Direction fields in config files accept tb/TD/lr etc.
func (d *Direction) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = ""
		return nil
	}
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
