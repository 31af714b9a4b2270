package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchCompiled(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestGroundY(t *testing.T) {
	w := WorldConfig{Width: 960, Height: 320, GroundRatio: 0.78}
	if got := w.GroundY(); got != 249 {
		t.Errorf("GroundY() = %f, expected 249", got)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  width: 640\nnotices:\n  duration_ms: 500\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.World.Width != 640 {
		t.Errorf("World.Width = %d, expected 640", cfg.World.Width)
	}
	if cfg.World.Height != Default().World.Height {
		t.Errorf("World.Height = %d, expected default %d", cfg.World.Height, Default().World.Height)
	}
	if cfg.Notices.Duration() != 500*time.Millisecond {
		t.Errorf("Notices.Duration() = %v, expected 500ms", cfg.Notices.Duration())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.World.Width = 0 }, "world size"},
		{"ground ratio above one", func(c *Config) { c.World.GroundRatio = 1.5 }, "ground_ratio"},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }, "tick_rate"},
		{"dust decay of one", func(c *Config) { c.Effects.DustDecay = 1 }, "dust_decay"},
		{"empty best key", func(c *Config) { c.Storage.BestKey = "" }, "best_key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("timing:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q, expected %q", loaded.Path, path)
	}
	if loaded.Config.Timing.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", loaded.Config.Timing.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(bad)
	if err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
	if loaded.Config != Default() {
		t.Error("Load() should return defaults alongside an error")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/scores.db")
	if err != nil || got != "/tmp/scores.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.catrunner/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".catrunner", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("world:\n  width: 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("world:\n  width: 720\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Changes:
		if cfg.World.Width != 720 {
			t.Errorf("reloaded width = %d, expected 720", cfg.World.Width)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config change")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
