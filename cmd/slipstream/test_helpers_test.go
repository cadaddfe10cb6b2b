package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slipstream/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	replayDir  string
	dataDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	replayDir := filepath.Join(base, "replays")
	dataDir := filepath.Join(base, "data")
	for _, dir := range []string{replayDir, dataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	configPath := filepath.Join(homeDir, ".config", "slipstream", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\nreplay_dir = %q\ndata_dir = %q\n\n[analysis.jump_thresholds]\nFox = 3.68\nMarth = 2.4\n",
		replayDir, dataDir,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		baseDir:    base,
		replayDir:  replayDir,
		dataDir:    dataDir,
		configPath: configPath,
	}
}

func (env *cliTestEnv) writeReplay(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(env.replayDir, name)
	if err := os.WriteFile(path, testsupport.MinimalReplay(), 0o644); err != nil {
		t.Fatalf("write replay %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
