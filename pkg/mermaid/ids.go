package mermaid

import (
	"strings"
	"unicode"
)

// NormalizeID canonicalizes arbitrary label text into a safe Mermaid
// identifier: every character that is not alphanumeric, '_', '.' or '-'
// becomes an underscore, and letters are lowercased. The function is
// idempotent.
//
// Flowchart and state diagrams normalize identifiers before emission; ER and
// sequence diagrams emit identifiers as written, since their grammars treat
// the identifier itself as display text.
func NormalizeID(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
