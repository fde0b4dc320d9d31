package project

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/cutplan/internal/model"
)

// ParseProperties reads a job-level properties file. The format is
// conservative: one key=value per line, '#' starts a comment, lines
// without '=' are ignored.
func ParseProperties(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	props := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return props, scanner.Err()
}

// ApplyProperties overlays recognized job properties onto an AppConfig.
// Unknown keys are left alone for forward compatibility; malformed
// numeric values keep the existing setting.
func ApplyProperties(config model.AppConfig, props map[string]string) model.AppConfig {
	if v, ok := props["kerf"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.KerfWidth = f
		}
	}
	if v, ok := props["cut_cost"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.CutCostPerMM = f
		}
	}
	if v, ok := props["side_wrapping_cost"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.WrapCostPerMM = f
		}
	}
	if v, ok := props["currency"]; ok && v != "" {
		config.Currency = v
	}
	if v, ok := props["enforce_wrap_rules"]; ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "tak":
			config.EnforceWrapRules = true
		case "0", "false", "no", "nie":
			config.EnforceWrapRules = false
		}
	}
	return config
}
