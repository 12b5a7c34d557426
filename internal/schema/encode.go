package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats lists the encodings accepted by Encode.
var Formats = []string{"yaml", "json", "toml"}

// Encode renders s in the canonical file shape for format ("yaml", "json"
// or "toml"). The output parses back with Parse.
func Encode(s *Schema, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode schema as yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode schema as yaml: %w", err)
		}

		return buf.Bytes(), nil
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode schema as json: %w", err)
		}

		return append(data, '\n'), nil
	case "toml":
		data, err := toml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode schema as toml: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("unsupported schema format %q (use %s)", format, strings.Join(Formats, ", "))
	}
}
