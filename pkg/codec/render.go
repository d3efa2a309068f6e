package codec

import (
	"fmt"
	"strings"

	"github.com/aretw0/schemarepl/pkg/schema"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects how records are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, json or yaml)", s)
	}
}

// entry is a stored record together with its index.
type entry struct {
	Index  int            `json:"index" yaml:"index"`
	Record *schema.Schema `json:"record" yaml:"record"`
}

// Render formats a single record.
func Render(rec *schema.Schema, f Format) (string, error) {
	switch f {
	case FormatJSON:
		data, err := json.Marshal(rec)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return rec.String(), nil
	}
}

// RenderEntry formats a record along with the index it was stored at.
// The text form is "(index, {name: value, ...})".
func RenderEntry(index int, rec *schema.Schema, f Format) (string, error) {
	switch f {
	case FormatJSON:
		data, err := json.Marshal(entry{Index: index, Record: rec})
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(entry{Index: index, Record: rec})
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return fmt.Sprintf("(%d, %s)", index, rec.Inline()), nil
	}
}
