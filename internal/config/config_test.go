package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromReturnsDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if !cfg.IsFeatureEnabled("git-log") {
		t.Fatal("expected git-log feature to be enabled by default")
	}

	if !cfg.TrimInput() {
		t.Fatal("expected trim_input to default to true")
	}

	if cfg.SchemaPath() != "" || cfg.CommitArgs() != nil {
		t.Fatal("expected empty schema path and commit args by default")
	}
}

func TestLoadFromReadsExistingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"features":{"git-log":false},"schema":"~/commit.yaml","trim_input":false,"commit_args":["--signoff"]}`

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("git-log") {
		t.Fatal("expected git-log feature to be disabled")
	}

	if cfg.SchemaPath() != "~/commit.yaml" {
		t.Fatalf("unexpected schema path %q", cfg.SchemaPath())
	}

	if cfg.TrimInput() {
		t.Fatal("expected trim_input=false")
	}

	args := cfg.CommitArgs()
	if len(args) != 1 || args[0] != "--signoff" {
		t.Fatalf("unexpected commit args %v", args)
	}
}

func TestLoadFromReturnsErrorOnInvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(configPath, []byte("{not json}"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error on invalid JSON")
	}
}

func TestLoadFromReturnsErrorOnInvalidFeaturesType(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"features":"not-a-map"}`

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error on invalid features type")
	}
}

func TestSetFeatureEnableAndDisable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected enable to succeed: %v", err)
	}

	if !cfg.IsFeatureEnabled("git-log") {
		t.Fatal("expected git-log to be enabled after SetFeature")
	}

	if err := cfg.SetFeature("git-log", false); err != nil {
		t.Fatalf("expected disable to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("git-log") {
		t.Fatal("expected git-log to be disabled after SetFeature(false)")
	}
}

func TestSetFeaturePersistsToDisk(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	reloaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected reload to succeed: %v", err)
	}

	if !reloaded.IsFeatureEnabled("git-log") {
		t.Fatal("expected git-log to remain enabled after reload")
	}
}

func TestSetFeatureCreatesDirectoryAndFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

func TestSetFeatureRejectsUnknownFeature(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	err = cfg.SetFeature("nonexistent", true)
	if err == nil {
		t.Fatal("expected error for unknown feature")
	}
}

func TestSetFeatureRejectsEmptyName(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	err = cfg.SetFeature("  ", true)
	if err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestSetFeatureRejectsNilConfig(t *testing.T) {
	var cfg *Config

	err := cfg.SetFeature("git-log", true)
	if err == nil {
		t.Fatal("expected error on nil config")
	}
}

func TestIsFeatureEnabledReturnsFalseOnNilConfig(t *testing.T) {
	var cfg *Config

	if cfg.IsFeatureEnabled("git-log") {
		t.Fatal("expected nil config to return false")
	}
}

func TestIsFeatureEnabledReturnsFalseForUnknownFeature(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.IsFeatureEnabled("nonexistent") {
		t.Fatal("expected unknown feature to return false")
	}
}

func TestFeaturesReturnsSortedList(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	features := cfg.Features()
	if len(features) == 0 {
		t.Fatal("expected at least one feature")
	}

	found := false
	for _, f := range features {
		if f.Name == "git-log" {
			found = true
			if !f.Enabled {
				t.Fatal("expected git-log to be enabled by default")
			}

			if f.Description == "" {
				t.Fatal("expected git-log to have a description")
			}
		}
	}

	if !found {
		t.Fatal("expected git-log feature in list")
	}
}

func TestFeaturesReflectsSetState(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	features := cfg.Features()
	for _, f := range features {
		if f.Name == "git-log" && !f.Enabled {
			t.Fatal("expected git-log to show as enabled")
		}
	}
}

func TestConfigPreservesValidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file to be readable: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("expected valid JSON on disk: %v", err)
	}

	features, ok := parsed["features"].(map[string]any)
	if !ok {
		t.Fatal("expected features key in JSON")
	}

	gitLog, ok := features["git-log"].(bool)
	if !ok || !gitLog {
		t.Fatal("expected git-log=true in JSON")
	}
}

func TestLoadUsesDefaultPath(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load() to succeed: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config from Load()")
	}
}

func TestSetFeaturePreservesUnknownTopLevelKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"custom_setting":"keep-me","features":{"git-log":false}}`

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetFeature("git-log", true); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file to be readable: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("expected valid JSON on disk: %v", err)
	}

	customVal, ok := parsed["custom_setting"].(string)
	if !ok || customVal != "keep-me" {
		t.Fatalf("expected custom_setting to be preserved, got %v", parsed["custom_setting"])
	}

	features, ok := parsed["features"].(map[string]any)
	if !ok {
		t.Fatal("expected features key in JSON")
	}

	gitLog, ok := features["git-log"].(bool)
	if !ok || !gitLog {
		t.Fatal("expected git-log=true in JSON")
	}
}

func TestLoadFromReturnsErrorOnInvalidSettingType(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	if err := os.WriteFile(configPath, []byte(`{"commit_args":"--signoff"}`), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error on invalid commit_args type")
	}
}

func TestSetSchemaPathPersistsAndClears(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetSchemaPath(" /tmp/commit.toml "); err != nil {
		t.Fatalf("expected set to succeed: %v", err)
	}

	reloaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("expected reload to succeed: %v", err)
	}

	if reloaded.SchemaPath() != "/tmp/commit.toml" {
		t.Fatalf("expected schema path to persist, got %q", reloaded.SchemaPath())
	}

	if err := reloaded.SetSchemaPath(""); err != nil {
		t.Fatalf("expected clear to succeed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file to be readable: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("expected valid JSON on disk: %v", err)
	}

	if _, ok := parsed["schema"]; ok {
		t.Fatal("expected schema key to be removed")
	}
}

func TestNilConfigSettings(t *testing.T) {
	var cfg *Config

	if cfg.SchemaPath() != "" || !cfg.TrimInput() || cfg.CommitArgs() != nil || cfg.Path() != "" {
		t.Fatal("expected defaults from nil config")
	}

	if err := cfg.SetSchemaPath("x.yaml"); err == nil {
		t.Fatal("expected error on nil config")
	}
}
