package style

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wsfmt/wsfmt/errs"
)

// basedOnStyleKey is the knob a style file or overlay uses to name its
// parent baseline, chaining through Baseline() and, recursively, through
// other named style files on disk.
const basedOnStyleKey = "BASED_ON_STYLE"

// Load reads a style file (YAML, a flat map of knob name to value, with
// an optional BASED_ON_STYLE key naming a baseline or another style file
// to inherit from) and overlays it onto that baseline, the way the
// teacher's LoadConfig reads sqlcode.yaml into a DatabaseConfig
// (cli/cmd/config.go). path may be empty, in which case only overlay is
// applied to style.Default().
func Load(path string, overlay map[string]any) (Config, error) {
	cfg, err := loadChain(path, map[string]bool{})
	if err != nil {
		return Config{}, err
	}
	if len(overlay) == 0 {
		return cfg, nil
	}
	return cfg.Apply(overlay)
}

func loadChain(path string, visiting map[string]bool) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if visiting[path] {
		return Config{}, errs.ConfigError{Message: "cyclic BASED_ON_STYLE chain at " + path}
	}
	visiting[path] = true

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errs.ConfigError{Message: err.Error()}
	}

	var overrides map[string]any
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, errs.ConfigError{Message: "malformed style file " + path + ": " + err.Error()}
	}
	overrides = normalizeKeys(overrides)

	base := Default()
	if basedOnRaw, ok := overrides[basedOnStyleKey]; ok {
		basedOn, ok := basedOnRaw.(string)
		if !ok {
			return Config{}, errs.ConfigError{Message: basedOnStyleKey + " must be a string"}
		}
		delete(overrides, basedOnStyleKey)

		if known, ok := Baseline(basedOn); ok {
			base = known
		} else {
			base, err = loadChain(basedOn, visiting)
			if err != nil {
				return Config{}, err
			}
		}
	}

	return base.Apply(normalizeKeys(overrides))
}

func normalizeKeys(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[normalizeKey(k)] = v
	}
	return out
}
