package strategy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSweepFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweeps.hcl")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing sweep file: %v", err)
	}
	return path
}

func TestLoadSweepConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadSweepConfig(filepath.Join(t.TempDir(), "nope.hcl"))
		if err != nil {
			t.Fatalf("LoadSweepConfig failed: %v", err)
		}
		if cfg.Fixed.Max != 0 {
			t.Errorf("Fixed.Max = %d, want 0", cfg.Fixed.Max)
		}
		if cfg.Fractions.Enabled || cfg.CumulativeFractions.Enabled {
			t.Error("expected fraction sweeps disabled by default")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config failed validation: %v", err)
		}
	})

	t.Run("loads sweep blocks", func(t *testing.T) {
		path := writeSweepFile(t, `
fixed {
  max = 100
}

fractions {
  enabled = true
  step    = 5
}
`)
		cfg, err := LoadSweepConfig(path)
		if err != nil {
			t.Fatalf("LoadSweepConfig failed: %v", err)
		}
		if cfg.Fixed.Max != 100 {
			t.Errorf("Fixed.Max = %d, want 100", cfg.Fixed.Max)
		}
		if !cfg.Fractions.Enabled || cfg.Fractions.Step != 5 {
			t.Errorf("Fractions = %+v, want enabled with step 5", cfg.Fractions)
		}
		// Absent block still gets usable defaults
		if cfg.CumulativeFractions == nil || cfg.CumulativeFractions.Step != 1 {
			t.Errorf("CumulativeFractions = %+v, want defaulted step 1", cfg.CumulativeFractions)
		}
	})

	t.Run("cumulative starting bet", func(t *testing.T) {
		path := writeSweepFile(t, `
cumulative_fractions {
  enabled      = true
  step         = 10
  starting_bet = 50
}
`)
		cfg, err := LoadSweepConfig(path)
		if err != nil {
			t.Fatalf("LoadSweepConfig failed: %v", err)
		}
		cs := cfg.CumulativeFractions
		if !cs.Enabled || cs.Step != 10 || cs.StartingBet != 50 {
			t.Errorf("CumulativeFractions = %+v, want enabled step 10 starting bet 50", cs)
		}
	})

	t.Run("rejects malformed files", func(t *testing.T) {
		path := writeSweepFile(t, `fractions { enabled = `)
		_, err := LoadSweepConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse") {
			t.Errorf("expected parse error, got: %v", err)
		}
	})
}
