package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abritton/policy-yield/pkg/constants"
)

func TestValidate(t *testing.T) {
	valid := Simulation{
		Policies:    1000,
		Premium:     3000,
		ClaimAmount: 150000,
		Trials:      10000,
		HazardMin:   0.003,
		HazardMax:   0.017,
	}

	tests := []struct {
		name    string
		modify  func(*Simulation)
		wantErr bool
	}{
		{
			name:    "Valid configuration",
			modify:  func(s *Simulation) {},
			wantErr: false,
		},
		{
			name:    "Zero policies",
			modify:  func(s *Simulation) { s.Policies = 0 },
			wantErr: true,
		},
		{
			name:    "Negative policies",
			modify:  func(s *Simulation) { s.Policies = -5 },
			wantErr: true,
		},
		{
			name:    "Zero trials",
			modify:  func(s *Simulation) { s.Trials = 0 },
			wantErr: true,
		},
		{
			name:    "Negative premium",
			modify:  func(s *Simulation) { s.Premium = -100 },
			wantErr: true,
		},
		{
			name:    "Zero claim amount",
			modify:  func(s *Simulation) { s.ClaimAmount = 0 },
			wantErr: true,
		},
		{
			name:    "Hazard lower bound below zero",
			modify:  func(s *Simulation) { s.HazardMin = -0.01 },
			wantErr: true,
		},
		{
			name:    "Hazard upper bound above one",
			modify:  func(s *Simulation) { s.HazardMax = 1.5 },
			wantErr: true,
		},
		{
			name: "Inverted hazard bounds",
			modify: func(s *Simulation) {
				s.HazardMin = 0.5
				s.HazardMax = 0.1
			},
			wantErr: true,
		},
		{
			name: "Equal hazard bounds are allowed",
			modify: func(s *Simulation) {
				s.HazardMin = 0.5
				s.HazardMax = 0.5
			},
			wantErr: false,
		},
		{
			name: "Full hazard range is allowed",
			modify: func(s *Simulation) {
				s.HazardMin = 0.0
				s.HazardMax = 1.0
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfiguration", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	conf := DefaultConfiguration()

	if conf.Simulation.Policies != constants.DefaultPolicies {
		t.Errorf("Policies = %d, expected %d", conf.Simulation.Policies, constants.DefaultPolicies)
	}
	if conf.Simulation.Premium != constants.DefaultPremium {
		t.Errorf("Premium = %g, expected %g", conf.Simulation.Premium, constants.DefaultPremium)
	}
	if conf.Simulation.ClaimAmount != constants.DefaultClaimAmount {
		t.Errorf("ClaimAmount = %g, expected %g", conf.Simulation.ClaimAmount, constants.DefaultClaimAmount)
	}
	if conf.Simulation.Trials != constants.DefaultTrials {
		t.Errorf("Trials = %d, expected %d", conf.Simulation.Trials, constants.DefaultTrials)
	}
	if conf.Simulation.HazardMin != constants.DefaultHazardMin {
		t.Errorf("HazardMin = %g, expected %g", conf.Simulation.HazardMin, constants.DefaultHazardMin)
	}
	if conf.Simulation.HazardMax != constants.DefaultHazardMax {
		t.Errorf("HazardMax = %g, expected %g", conf.Simulation.HazardMax, constants.DefaultHazardMax)
	}

	if err := conf.Simulation.Validate(); err != nil {
		t.Errorf("default configuration should validate, got %v", err)
	}
}

func TestLoadConfiguration(t *testing.T) {
	configPath := filepath.Join("..", "..", "test", "test_config.yaml")

	conf, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Simulation.Policies != 100 {
		t.Errorf("Policies = %d, expected 100", conf.Simulation.Policies)
	}
	if conf.Simulation.Premium != 1000 {
		t.Errorf("Premium = %g, expected 1000", conf.Simulation.Premium)
	}
	if conf.Simulation.ClaimAmount != 50000 {
		t.Errorf("ClaimAmount = %g, expected 50000", conf.Simulation.ClaimAmount)
	}
	if conf.Simulation.Trials != 500 {
		t.Errorf("Trials = %d, expected 500", conf.Simulation.Trials)
	}
	if conf.Simulation.HazardMin != 0.0 || conf.Simulation.HazardMax != 0.0 {
		t.Errorf("hazard bounds = [%g, %g], expected [0, 0]",
			conf.Simulation.HazardMin, conf.Simulation.HazardMax)
	}
	if conf.Simulation.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", conf.Simulation.Seed)
	}
	if conf.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, expected %q", conf.Logging.Level, "error")
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected %q", conf.Output.Format, "pretty")
	}
}

func TestLoadConfigurationEmptyPath(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") error = %v", err)
	}
	if conf.Simulation.Policies != constants.DefaultPolicies {
		t.Errorf("expected default policies, got %d", conf.Simulation.Policies)
	}
}

func TestLoadConfigurationPartialFile(t *testing.T) {
	// Parameters absent from the file keep their defaults.
	dir := t.TempDir()
	configPath := filepath.Join(dir, "partial.yaml")
	content := "---\nsimulation:\n  trials: 25\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Simulation.Trials != 25 {
		t.Errorf("Trials = %d, expected 25", conf.Simulation.Trials)
	}
	if conf.Simulation.Policies != constants.DefaultPolicies {
		t.Errorf("Policies = %d, expected default %d", conf.Simulation.Policies, constants.DefaultPolicies)
	}
	if conf.Simulation.HazardMax != constants.DefaultHazardMax {
		t.Errorf("HazardMax = %g, expected default %g", conf.Simulation.HazardMax, constants.DefaultHazardMax)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
