package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutplan/internal/model"
)

func TestSaveLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config := model.DefaultAppConfig()
	config.KerfWidth = 3.2
	config.Currency = "EUR"
	config.RecentJobs = []string{"/jobs/wardrobe"}

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.KerfWidth != 3.2 {
		t.Errorf("KerfWidth = %v, want 3.2", loaded.KerfWidth)
	}
	if loaded.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", loaded.Currency)
	}
	if len(loaded.RecentJobs) != 1 || loaded.RecentJobs[0] != "/jobs/wardrobe" {
		t.Errorf("RecentJobs = %v, want [/jobs/wardrobe]", loaded.RecentJobs)
	}
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if loaded.KerfWidth != defaults.KerfWidth {
		t.Errorf("KerfWidth = %v, want default %v", loaded.KerfWidth, defaults.KerfWidth)
	}
	if loaded.Currency != defaults.Currency {
		t.Errorf("Currency = %q, want default %q", loaded.Currency, defaults.Currency)
	}
	if !loaded.EnforceWrapRules {
		t.Error("EnforceWrapRules should default to true")
	}
}

func TestLoadAppConfig_NilRecentJobsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"kerf_width": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.RecentJobs == nil {
		t.Error("RecentJobs should never be nil after load")
	}
}

func TestLoadAppConfig_CorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for corrupt config file")
	}
}
