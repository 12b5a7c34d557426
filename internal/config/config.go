package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	configFileName = "config.json"
	configDirName  = "git-commit"
)

// FeatureRegistry defines all known feature flags and their defaults.
var FeatureRegistry = map[string]FeatureDefinition{
	"git-log": {
		Name:        "git-log",
		Description: "Show recent commits next to the wizard",
		Default:     true,
	},
	"tui": {
		Name:        "tui",
		Description: "Full-screen Bubble Tea terminal UI",
		Default:     true,
	},
}

// FeatureDefinition describes a feature flag.
type FeatureDefinition struct {
	Name        string
	Description string
	Default     bool
}

// Config holds git-commit local settings.
type Config struct {
	path       string
	raw        map[string]json.RawMessage
	features   map[string]bool
	schemaPath string
	trimInput  *bool
	commitArgs []string
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from the given path.
//
// If path is empty, it defaults to ~/.config/git-commit/config.json.
// If the file does not exist, a Config with default values is returned.
func LoadFrom(path string) (*Config, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = defaultConfigPath()
	}

	cfg := &Config{
		path:     resolved,
		raw:      make(map[string]json.RawMessage),
		features: make(map[string]bool),
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file %q: %w", resolved, err)
	}

	if err := json.Unmarshal(data, &cfg.raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", resolved, err)
	}

	featuresRaw, ok := cfg.raw["features"]
	if ok {
		var featMap map[string]bool
		if err := json.Unmarshal(featuresRaw, &featMap); err != nil {
			return nil, fmt.Errorf("parse features in config file %q: %w", resolved, err)
		}

		for k, v := range featMap {
			cfg.features[k] = v
		}
	}

	if err := cfg.decodeSetting("schema", &cfg.schemaPath); err != nil {
		return nil, err
	}

	if err := cfg.decodeSetting("trim_input", &cfg.trimInput); err != nil {
		return nil, err
	}

	if err := cfg.decodeSetting("commit_args", &cfg.commitArgs); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeSetting(key string, dst any) error {
	value, ok := c.raw[key]
	if !ok {
		return nil
	}

	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("parse %s in config file %q: %w", key, c.path, err)
	}

	return nil
}

// SchemaPath returns the configured schema file, or "" when unset.
func (c *Config) SchemaPath() string {
	if c == nil {
		return ""
	}

	return strings.TrimSpace(c.schemaPath)
}

// SetSchemaPath stores the schema file to use and persists the config.
// An empty path clears the setting.
func (c *Config) SetSchemaPath(path string) error {
	if c == nil {
		return errors.New("config is nil")
	}

	trimmed := strings.TrimSpace(path)
	c.schemaPath = trimmed
	if trimmed == "" {
		delete(c.raw, "schema")
	} else {
		encoded, err := json.Marshal(trimmed)
		if err != nil {
			return fmt.Errorf("marshal schema path: %w", err)
		}
		c.raw["schema"] = encoded
	}

	return c.save()
}

// TrimInput reports whether answers are trimmed before being recorded.
// Defaults to true.
func (c *Config) TrimInput() bool {
	if c == nil || c.trimInput == nil {
		return true
	}

	return *c.trimInput
}

// CommitArgs returns extra arguments appended to every git commit.
func (c *Config) CommitArgs() []string {
	if c == nil || len(c.commitArgs) == 0 {
		return nil
	}

	args := make([]string, len(c.commitArgs))
	copy(args, c.commitArgs)
	return args
}

// IsFeatureEnabled returns whether a feature flag is enabled.
//
// If the feature has not been explicitly set, the registry default is used.
// Unknown feature names always return false.
func (c *Config) IsFeatureEnabled(name string) bool {
	if c == nil {
		return false
	}

	trimmed := strings.TrimSpace(name)

	if val, ok := c.features[trimmed]; ok {
		return val
	}

	if def, ok := FeatureRegistry[trimmed]; ok {
		return def.Default
	}

	return false
}

// SetFeature sets a feature flag value and persists the config.
func (c *Config) SetFeature(name string, enabled bool) error {
	if c == nil {
		return errors.New("config is nil")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("feature name is required")
	}

	if _, ok := FeatureRegistry[trimmed]; !ok {
		return fmt.Errorf("unknown feature %q", trimmed)
	}

	c.features[trimmed] = enabled

	return c.save()
}

// Features returns a sorted list of all known features with their status.
func (c *Config) Features() []FeatureStatus {
	result := make([]FeatureStatus, 0, len(FeatureRegistry))

	for _, def := range FeatureRegistry {
		result = append(result, FeatureStatus{
			Name:        def.Name,
			Description: def.Description,
			Enabled:     c.IsFeatureEnabled(def.Name),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// FeatureStatus describes the current state of a feature flag.
type FeatureStatus struct {
	Name        string
	Description string
	Enabled     bool
}

func (c *Config) save() error {
	configDir := filepath.Dir(c.path)
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory %q: %w", configDir, err)
	}

	featuresJSON, err := json.Marshal(c.features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}

	c.raw["features"] = featuresJSON

	data, err := json.MarshalIndent(c.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %q: %w", c.path, err)
	}

	return nil
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", configDirName, configFileName)
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName)
}

// Path returns the file the config is read from and saved to.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}

	return c.path
}
