package render

import "encoding/base64"

// EncodeScript encodes a Mermaid script into the URL-safe unpadded base64
// form that mermaid.ink expects in its path segment.
func EncodeScript(script string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(script))
}

// DecodeScript reverses EncodeScript.
func DecodeScript(encoded string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
