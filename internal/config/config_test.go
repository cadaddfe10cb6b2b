package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slipstream/internal/config"
	"slipstream/internal/melee"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("reported a missing file as existing")
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Paths.ReplayDir == "" || strings.HasPrefix(cfg.Paths.ReplayDir, "~") {
		t.Fatalf("replay dir not expanded: %q", cfg.Paths.ReplayDir)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[paths]
replay_dir = "/replays"
data_dir = "/data"

[logging]
format = "JSON"
level = "Debug"

[analysis.jump_thresholds]
"Fox" = 3.68
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("existing file reported missing")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Paths.ReplayDir != "/replays" {
		t.Fatalf("replay dir %q", cfg.Paths.ReplayDir)
	}
	if got := cfg.IndexPath(); got != filepath.Join("/data", "index.db") {
		t.Fatalf("index path %q", got)
	}

	th := cfg.Thresholds()
	cutoff, ok := th.Lookup(melee.Fox)
	if !ok {
		t.Fatal("Fox threshold missing after load")
	}
	if cutoff < 3.67 || cutoff > 3.69 {
		t.Fatalf("Fox threshold %v", cutoff)
	}
}

func TestLoadRejectsUnknownCharacter(t *testing.T) {
	path := writeConfig(t, `
[analysis.jump_thresholds]
"Master Hand" = 2.0
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("unknown character accepted")
	}
}

func TestLoadRejectsBadLogSettings(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "xml"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("bad log format accepted")
	}

	path = writeConfig(t, `
[logging]
level = "whisper"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("bad log level accepted")
	}
}

func TestLoadRejectsNonPositiveThreshold(t *testing.T) {
	path := writeConfig(t, `
[analysis.jump_thresholds]
"Fox" = 0.0
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("zero threshold accepted")
	}
}

func TestThresholdsEmptyByDefault(t *testing.T) {
	cfg := config.Default()
	if th := cfg.Thresholds(); th != nil {
		t.Fatalf("default thresholds not empty: %v", th)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "replay_dir") {
		t.Fatal("sample missing replay_dir")
	}

	// the sample must itself load cleanly
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
