package save

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/s2wiki/pagetools/pkg/errors"
)

// Encode renders v in the given format. JSON is indented with two spaces and
// keeps markup characters unescaped; YAML is derived from the JSON form so
// both formats share field names and order.
func Encode(v any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	switch format {
	case FormatJSON:
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.JSONToYAML(buf.Bytes())
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return out, nil
	}
	return nil, &errors.ValidationError{Field: "format", Value: format, Message: "unsupported format"}
}

// ToJSON converts a document in the given format to JSON.
func ToJSON(data []byte, format Format) ([]byte, error) {
	if format != FormatYAML {
		return data, nil
	}
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return out, nil
}
