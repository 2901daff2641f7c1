// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"

	"github.com/abritton/policy-yield/pkg/constants"
	"github.com/spf13/viper"
)

// ErrInvalidConfiguration is wrapped by every simulation parameter
// validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Configuration holds all configuration for policy-yield.
type Configuration struct {
	Simulation Simulation
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Simulation holds the parameters for one simulation run.
type Simulation struct {
	Policies    int     `json:"policies"`    // number of policies in the pool
	Premium     float64 `json:"premium"`     // annual premium per policy
	ClaimAmount float64 `json:"claimAmount"` // payout per claim
	Trials      int     `json:"trials"`      // number of simulated years
	HazardMin   float64 `json:"hazardMin"`   // lower bound on the annual claim probability
	HazardMax   float64 `json:"hazardMax"`   // upper bound on the annual claim probability
	Seed        int64   `json:"seed"`        // random seed; 0 means seed from the clock
}

// DefaultConfiguration returns the configuration used when no config file
// is supplied.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Simulation: Simulation{
			Policies:    constants.DefaultPolicies,
			Premium:     constants.DefaultPremium,
			ClaimAmount: constants.DefaultClaimAmount,
			Trials:      constants.DefaultTrials,
			HazardMin:   constants.DefaultHazardMin,
			HazardMax:   constants.DefaultHazardMax,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the default configuration.
// Parameters absent from the file fall back to their defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return DefaultConfiguration(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	v.SetDefault("simulation.policies", constants.DefaultPolicies)
	v.SetDefault("simulation.premium", constants.DefaultPremium)
	v.SetDefault("simulation.claimamount", constants.DefaultClaimAmount)
	v.SetDefault("simulation.trials", constants.DefaultTrials)
	v.SetDefault("simulation.hazardmin", constants.DefaultHazardMin)
	v.SetDefault("simulation.hazardmax", constants.DefaultHazardMax)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate checks every simulation invariant and reports the first
// violated constraint by name.
func (s Simulation) Validate() error {
	if s.Policies <= 0 {
		return fmt.Errorf("%w: policies must be a positive integer, got %d",
			ErrInvalidConfiguration, s.Policies)
	}
	if s.Premium <= 0 {
		return fmt.Errorf("%w: premium must be positive, got %g",
			ErrInvalidConfiguration, s.Premium)
	}
	if s.ClaimAmount <= 0 {
		return fmt.Errorf("%w: claimAmount must be positive, got %g",
			ErrInvalidConfiguration, s.ClaimAmount)
	}
	if s.Trials <= 0 {
		return fmt.Errorf("%w: trials must be a positive integer, got %d",
			ErrInvalidConfiguration, s.Trials)
	}
	if s.HazardMin < 0 || s.HazardMin > 1 {
		return fmt.Errorf("%w: hazardMin must be within [0, 1], got %g",
			ErrInvalidConfiguration, s.HazardMin)
	}
	if s.HazardMax < 0 || s.HazardMax > 1 {
		return fmt.Errorf("%w: hazardMax must be within [0, 1], got %g",
			ErrInvalidConfiguration, s.HazardMax)
	}
	if s.HazardMin > s.HazardMax {
		return fmt.Errorf("%w: hazardMin must not exceed hazardMax, got [%g, %g]",
			ErrInvalidConfiguration, s.HazardMin, s.HazardMax)
	}
	return nil
}
