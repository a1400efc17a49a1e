package pagebuilder

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.SaveInterval != 10*time.Second {
		t.Errorf("SaveInterval = %v, want 10s", cfg.SaveInterval)
	}
	if cfg.NoticeTTL != 3*time.Second {
		t.Errorf("NoticeTTL = %v, want 3s", cfg.NoticeTTL)
	}
	if cfg.ExportLimit != 10 {
		t.Errorf("ExportLimit = %d, want 10", cfg.ExportLimit)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagebuilder.yml")
	yml := "addr: \":8080\"\nsave_interval: 30s\nstrict_choices: true\nsession_secret: from-file\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PAGEBUILDER_SESSION_SECRET", "from-env")
	t.Setenv("PAGEBUILDER_EXPORT_LIMIT", "3")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SaveInterval != 30*time.Second {
		t.Errorf("SaveInterval = %v, want 30s", cfg.SaveInterval)
	}
	if !cfg.StrictChoices {
		t.Error("StrictChoices should be true")
	}
	if cfg.SessionSecret != "from-env" {
		t.Errorf("SessionSecret = %q, env should win over the file", cfg.SessionSecret)
	}
	if cfg.ExportLimit != 3 {
		t.Errorf("ExportLimit = %d, want 3", cfg.ExportLimit)
	}
	if cfg.DatabasePath != "data/pagebuilder.db" {
		t.Errorf("DatabasePath = %q, want the default", cfg.DatabasePath)
	}
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagebuilder.yml")
	want := DefaultConfig()
	want.SessionSecret = "s3cret"
	want.IdleTTL = 45 * time.Minute
	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error without a session secret")
	}
	cfg.SessionSecret = "x"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.ExportLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a negative export limit")
	}
}
