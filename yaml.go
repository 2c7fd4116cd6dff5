package jsondoc

import (
	"github.com/goccy/go-yaml"
)

// FromYAML decodes YAML text into a document via plain Go values. It
// accepts full YAML, including constructs the JSON parser rejects, such
// as null and negative numbers.
func FromYAML(d []byte) (Doc, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return Doc{}, err
	}
	return FromAny(v)
}

// ToYAML encodes the document as YAML text.
func ToYAML(d Doc) ([]byte, error) {
	return yaml.Marshal(ToAny(d))
}
