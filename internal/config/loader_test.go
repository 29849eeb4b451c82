package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/treasure-map/internal/treasure"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treasure.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// isolate points HOME and the working directory at an empty temp dir so only
// the embedded defaults are found.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 10 {
		t.Errorf("Board.Size = %d, want 10", cfg.Board.Size)
	}
	if cfg.Storage.DBPath != "~/.treasure/games.db" {
		t.Errorf("Storage.DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Journal.Level != "info" {
		t.Errorf("Journal.Level = %q, want info", cfg.Journal.Level)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "board:\n  size: 12\nseed: 77\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 12 || cfg.Seed != 77 {
		t.Errorf("got size=%d seed=%d, want 12/77", cfg.Board.Size, cfg.Seed)
	}
	// Missing sections keep defaults.
	if cfg.Storage.DBPath != Default().Storage.DBPath {
		t.Errorf("Storage.DBPath = %q, want default", cfg.Storage.DBPath)
	}

	rt := cfg.Runtime()
	if rt.Size != 12 || rt.Seed != 77 {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile("configs/treasure.yaml", []byte("board:\n  size: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 7 {
		t.Errorf("Board.Size = %d, want 7", cfg.Board.Size)
	}
}

func TestLoadRejectsSmallBoard(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "board:\n  size: 4\n")

	_, err := Load(path)
	if !treasure.IsInvalidSize(err) {
		t.Errorf("Load() error = %v, want InvalidSizeError", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TREASURE_SIZE", "20")
	t.Setenv("TREASURE_SEED", "5")
	t.Setenv("TREASURE_DB", "/tmp/other.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 20 || cfg.Seed != 5 || cfg.Storage.DBPath != "/tmp/other.db" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadDifficultyPreset(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "board:\n  size: 30\n  difficulty: easy\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("Board.Size = %d, want 5 from easy preset", cfg.Board.Size)
	}
}

func TestLoadUnknownDifficulty(t *testing.T) {
	isolate(t)
	t.Setenv("TREASURE_DIFFICULTY", "nightmare")

	if _, err := Load(""); err == nil {
		t.Error("Load() should reject an unknown difficulty")
	}
}

func TestSizeForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		size   int
		ok     bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 10, true},
		{DifficultyHard, 15, true},
		{"", 0, false},
		{"extreme", 0, false},
	}

	for _, tt := range tests {
		size, ok := SizeForPreset(tt.preset)
		if size != tt.size || ok != tt.ok {
			t.Errorf("SizeForPreset(%q) = %d, %v; want %d, %v", tt.preset, size, ok, tt.size, tt.ok)
		}
		if ok {
			if err := treasure.ValidateSize(size); err != nil {
				t.Errorf("preset %q gives invalid size: %v", tt.preset, err)
			}
		}
	}
}

func TestExpandHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	got, err := ExpandHome("~/.treasure/games.db")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if want := filepath.Join(dir, ".treasure", "games.db"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed an absolute path: %q", got)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", dir},
		{"~/", dir},
		{"~user/games.db", "~user/games.db"},
		{"~user", "~user"},
		{"relative/~/x", "relative/~/x"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Errorf("ExpandHome(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
