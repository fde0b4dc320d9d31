package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cutplan/internal/model"
)

func writeProps(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseProperties(t *testing.T) {
	path := writeProps(t, `
# job settings
kerf = 3.2
currency=EUR

not a property line
cut_cost=0.01
`)

	props, err := ParseProperties(path)
	if err != nil {
		t.Fatalf("ParseProperties failed: %v", err)
	}
	if len(props) != 3 {
		t.Fatalf("got %d properties, want 3: %v", len(props), props)
	}
	if props["kerf"] != "3.2" {
		t.Errorf("kerf = %q, want 3.2", props["kerf"])
	}
	if props["currency"] != "EUR" {
		t.Errorf("currency = %q, want EUR", props["currency"])
	}
}

func TestParseProperties_MissingFile(t *testing.T) {
	if _, err := ParseProperties(filepath.Join(t.TempDir(), "absent.properties")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyProperties(t *testing.T) {
	config := model.DefaultAppConfig()
	applied := ApplyProperties(config, map[string]string{
		"kerf":               "3.0",
		"cut_cost":           "0.05",
		"side_wrapping_cost": "0.1",
		"currency":           "EUR",
		"enforce_wrap_rules": "nie",
		"unknown_key":        "ignored",
	})

	if applied.KerfWidth != 3.0 {
		t.Errorf("KerfWidth = %v, want 3.0", applied.KerfWidth)
	}
	if applied.CutCostPerMM != 0.05 {
		t.Errorf("CutCostPerMM = %v, want 0.05", applied.CutCostPerMM)
	}
	if applied.WrapCostPerMM != 0.1 {
		t.Errorf("WrapCostPerMM = %v, want 0.1", applied.WrapCostPerMM)
	}
	if applied.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", applied.Currency)
	}
	if applied.EnforceWrapRules {
		t.Error("EnforceWrapRules should be disabled by nie")
	}
}

func TestApplyProperties_MalformedValuesKeepExisting(t *testing.T) {
	config := model.DefaultAppConfig()
	applied := ApplyProperties(config, map[string]string{
		"kerf":     "wide",
		"currency": "",
	})

	if applied.KerfWidth != config.KerfWidth {
		t.Errorf("KerfWidth = %v, want unchanged %v", applied.KerfWidth, config.KerfWidth)
	}
	if applied.Currency != config.Currency {
		t.Errorf("Currency = %q, want unchanged %q", applied.Currency, config.Currency)
	}
}

func TestApplyProperties_PolishBooleans(t *testing.T) {
	config := model.DefaultAppConfig()
	config.EnforceWrapRules = false

	applied := ApplyProperties(config, map[string]string{"enforce_wrap_rules": "tak"})
	if !applied.EnforceWrapRules {
		t.Error("tak should enable wrap rule enforcement")
	}
}
