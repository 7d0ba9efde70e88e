package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg.Log)
	}
	if cfg.Discord.Token != "" {
		t.Fatalf("expected empty token, got %q", cfg.Discord.Token)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"
format = "json"

[discord]
token = "abc"
id = "42"
prefix = ["!", "/"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Discord.Token != "abc" || cfg.Discord.ID != "42" {
		t.Fatalf("unexpected discord config: %+v", cfg.Discord)
	}
	if len(cfg.Discord.Prefix) != 2 {
		t.Fatalf("unexpected prefix list: %v", cfg.Discord.Prefix)
	}
}
