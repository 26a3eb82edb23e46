package strategy

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SweepConfig controls which parameter sweeps Build includes in the catalog.
type SweepConfig struct {
	Fixed               *FixedSweep      `hcl:"fixed,block"`
	Fractions           *FractionSweep   `hcl:"fractions,block"`
	CumulativeFractions *CumulativeSweep `hcl:"cumulative_fractions,block"`
}

// FixedSweep bounds the fixed-stake sweep. Max of zero sweeps every stake up
// to the starting bankroll.
type FixedSweep struct {
	Max int `hcl:"max,optional"`
}

// FractionSweep enables the bankroll-fraction sweep, one strategy per Step
// percent.
type FractionSweep struct {
	Enabled bool `hcl:"enabled,optional"`
	Step    int  `hcl:"step,optional"`
}

// CumulativeSweep enables the cumulative-fraction sweep. StartingBet of zero
// opens each trial at the table minimum.
type CumulativeSweep struct {
	Enabled     bool `hcl:"enabled,optional"`
	Step        int  `hcl:"step,optional"`
	StartingBet int  `hcl:"starting_bet,optional"`
}

// DefaultSweepConfig returns the default sweeps: every fixed stake up to the
// starting bankroll, fraction sweeps off.
func DefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		Fixed:               &FixedSweep{},
		Fractions:           &FractionSweep{Step: 1},
		CumulativeFractions: &CumulativeSweep{Step: 1},
	}
}

// LoadSweepConfig loads sweep configuration from an HCL file. A missing file
// yields the defaults.
func LoadSweepConfig(filename string) (*SweepConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSweepConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SweepConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	if config.Fixed == nil {
		config.Fixed = &FixedSweep{}
	}
	if config.Fractions == nil {
		config.Fractions = &FractionSweep{}
	}
	if config.Fractions.Step == 0 {
		config.Fractions.Step = 1
	}
	if config.CumulativeFractions == nil {
		config.CumulativeFractions = &CumulativeSweep{}
	}
	if config.CumulativeFractions.Step == 0 {
		config.CumulativeFractions.Step = 1
	}

	return &config, nil
}

// Validate validates the sweep configuration.
func (c *SweepConfig) Validate() error {
	if c.Fixed == nil || c.Fractions == nil || c.CumulativeFractions == nil {
		return fmt.Errorf("sweep config missing blocks, use DefaultSweepConfig or LoadSweepConfig")
	}
	if c.Fixed.Max < 0 {
		return fmt.Errorf("fixed sweep max %d must not be negative", c.Fixed.Max)
	}
	if c.Fractions.Step < 1 || c.Fractions.Step > 100 {
		return fmt.Errorf("fraction sweep step %d must be between 1 and 100", c.Fractions.Step)
	}
	if c.CumulativeFractions.Step < 1 || c.CumulativeFractions.Step > 100 {
		return fmt.Errorf("cumulative fraction sweep step %d must be between 1 and 100", c.CumulativeFractions.Step)
	}
	if c.CumulativeFractions.StartingBet < 0 {
		return fmt.Errorf("cumulative fraction starting bet %d must not be negative", c.CumulativeFractions.StartingBet)
	}
	return nil
}
