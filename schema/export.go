package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Export renders s as indented JSON or as YAML, keeping key order.
func Export(s *Schema, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("failed to export schema: %w", err)
		}

		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("unknown schema format: %d", format)
	}
}
