package mermaid

import "fmt"

// Kind classifies errors produced while building, parsing or delivering
// diagrams.
type Kind string

const (
	// KindParse marks malformed input: bad JSON/YAML/TOML documents or
	// unparseable CLI fragments.
	KindParse Kind = "parse"
	// KindInvalidSpec marks structurally valid input that violates a
	// diagram rule, such as an edge referencing an unknown node.
	KindInvalidSpec Kind = "invalid_spec"
	// KindUnsupportedFormat marks an input format that no bridge handles.
	KindUnsupportedFormat Kind = "unsupported_format"
	// KindRender marks failures talking to the rendering server.
	KindRender Kind = "render"
	// KindClipboard marks failures copying output to the system clipboard.
	KindClipboard Kind = "clipboard"
)

// Error is the error type returned across the diagram packages. The Kind
// field lets callers branch on failure class without string matching.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, &Error{Kind: KindParse}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Errorf builds a classified error from a format string.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a classification and message to an underlying error. It
// returns nil when err is nil.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
