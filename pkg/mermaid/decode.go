package mermaid

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// DecodeJSON unmarshals a JSON document into v, classifying failures as parse
// errors. Unknown fields are ignored so documents can carry annotations.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return Wrap(KindParse, err, "decoding JSON document")
	}
	return nil
}

// DecodeYAML unmarshals a YAML document into v, classifying failures as parse
// errors.
func DecodeYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return Wrap(KindParse, err, "decoding YAML document")
	}
	return nil
}

// DecodeTOML unmarshals a TOML document into v, classifying failures as parse
// errors.
func DecodeTOML(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return Wrap(KindParse, err, "decoding TOML document")
	}
	return nil
}
