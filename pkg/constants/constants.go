// Package constants provides shared constants for the policy-yield application.
package constants

// Default simulation parameters, used when the configuration does not
// override them.
const (
	// DefaultPolicies is the number of policies in the pool
	DefaultPolicies = 1000

	// DefaultPremium is the annual premium collected per policy
	DefaultPremium = 3000.0

	// DefaultClaimAmount is the payout when a policy has a claim
	DefaultClaimAmount = 150000.0

	// DefaultTrials is the number of simulated years
	DefaultTrials = 10000

	// DefaultHazardMin is the lower bound on the annual claim probability
	DefaultHazardMin = 0.003

	// DefaultHazardMax is the upper bound on the annual claim probability
	DefaultHazardMax = 0.017
)

// HistogramBins is the number of equal-width buckets in the yield histogram.
const HistogramBins = 50

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes caps the size of API request bodies
	DefaultMaxRequestSizeBytes = 1 << 20
)
