package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bundledschemas "github.com/RookieChen4/git-commit/schemas"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

const (
	defaultSchemaFile = "default.yaml"
	configDirName     = "git-commit"
)

// projectFileNames are looked up in the working directory, in order.
// custom.json is the file name used by earlier releases.
var projectFileNames = []string{
	".git-commit.yaml",
	".git-commit.yml",
	".git-commit.json",
	".git-commit.toml",
	"custom.json",
}

// userFileNames are looked up in ~/.config/git-commit, in order.
var userFileNames = []string{
	"schema.yaml",
	"schema.yml",
	"schema.json",
	"schema.toml",
}

// Load resolves the schema to use.
//
// A non-empty path must point to a readable schema file. Otherwise the first
// existing file among the project and user locations is used, falling back to
// the schema bundled with the binary.
func Load(path string) (*Schema, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed != "" {
		expanded, err := expandHome(trimmed)
		if err != nil {
			return nil, fmt.Errorf("expand schema path %q: %w", trimmed, err)
		}

		return LoadFile(expanded)
	}

	return loadFirst(candidatePaths())
}

// LoadFile reads and parses a schema file. The format is chosen by extension.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file %q: %w", path, err)
	}

	return Parse(path, data)
}

// Default returns the schema bundled with the binary.
func Default() (*Schema, error) {
	data, err := bundledschemas.FS.ReadFile(defaultSchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema %q: %w", defaultSchemaFile, err)
	}

	return Parse("embedded/"+defaultSchemaFile, data)
}

// Parse decodes data according to the extension of name, then normalizes
// and validates the result.
func Parse(name string, data []byte) (*Schema, error) {
	var (
		s   *Schema
		err error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		s, err = decodeYAML(data)
	case ".json":
		s, err = decodeJSON(data)
	case ".toml":
		s, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("schema file %q has unsupported extension", name)
	}

	if err != nil {
		return nil, fmt.Errorf("parse schema file %q: %w", name, err)
	}

	normalize(s)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate schema file %q: %w", name, err)
	}

	s.Source = name
	return s, nil
}

func decodeYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func decodeTOML(data []byte) (*Schema, error) {
	var s Schema
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func decodeJSON(data []byte) (*Schema, error) {
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) == 0 {
		return &Schema{}, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(clean, &top); err != nil {
		return nil, err
	}

	_, hasSteps := top["steps"]
	_, hasMessages := top["messages"]
	if hasMessages && !hasSteps {
		return decodeLegacyJSON(top)
	}

	var s Schema
	if err := json.Unmarshal(clean, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

type legacyMessage struct {
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

type legacyOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// decodeLegacyJSON reads the custom.json layout: a "messages" array of
// {type, placeholder} steps, with option lists stored at the top level under
// the step's type.
func decodeLegacyJSON(top map[string]json.RawMessage) (*Schema, error) {
	var messages []legacyMessage
	if err := json.Unmarshal(top["messages"], &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	s := &Schema{Steps: make([]Step, 0, len(messages))}
	for _, m := range messages {
		s.Steps = append(s.Steps, Step{Key: m.Type, Prompt: m.Placeholder})

		raw, ok := top[strings.TrimSpace(m.Type)]
		if !ok {
			continue
		}

		var options []legacyOption
		if err := json.Unmarshal(raw, &options); err != nil {
			return nil, fmt.Errorf("decode options for %q: %w", m.Type, err)
		}

		if s.Branches == nil {
			s.Branches = make(Branches)
		}

		converted := make([]Option, 0, len(options))
		for _, o := range options {
			converted = append(converted, Option{Label: o.Name, Value: o.Value})
		}
		s.Branches[strings.TrimSpace(m.Type)] = converted
	}

	return s, nil
}

func candidatePaths() []string {
	var paths []string

	if wd, err := os.Getwd(); err == nil {
		for _, name := range projectFileNames {
			paths = append(paths, filepath.Join(wd, name))
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		for _, name := range userFileNames {
			paths = append(paths, filepath.Join(homeDir, ".config", configDirName, name))
		}
	}

	return paths
}

// loadFirst loads the first existing path, or the bundled default when none
// of them exist. A file that exists but fails to parse is an error.
func loadFirst(paths []string) (*Schema, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("stat schema file %q: %w", path, err)
		}

		if info.IsDir() {
			continue
		}

		return LoadFile(path)
	}

	return Default()
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}

	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[2:]), nil
}
