// Package simulation implements the Monte Carlo model of annual policy
// pool yield under an uncertain hazard rate and includes functions for
// summarizing the resulting distribution.
package simulation

import (
	"math/rand"
	"time"

	"github.com/abritton/policy-yield/internal/config"
	"go.uber.org/zap"
)

// Source supplies uniform randomness in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a source seeded with the given value so runs are
// reproducible. A zero seed means seed from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Run simulates cfg.Trials independent years of the policy pool and
// returns one yield percentage per year, in trial order. Each year draws
// its own claim probability uniformly from [HazardMin, HazardMax) and then
// one Bernoulli outcome per policy at that probability. With a seeded
// source the returned slice is bit-identical across runs.
func Run(logger *zap.Logger, cfg config.Simulation, source Source) ([]float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = NewSource(cfg.Seed)
	}

	logger.Debug("starting simulation",
		zap.String("op", "simulation.Run"),
		zap.Int("policies", cfg.Policies),
		zap.Int("trials", cfg.Trials),
		zap.Float64("hazardMin", cfg.HazardMin),
		zap.Float64("hazardMax", cfg.HazardMax),
	)

	totalPremiums := float64(cfg.Policies) * cfg.Premium
	yields := make([]float64, 0, cfg.Trials)

	for trial := 0; trial < cfg.Trials; trial++ {
		p := cfg.HazardMin + source.Float64()*(cfg.HazardMax-cfg.HazardMin)

		claims := 0
		for policy := 0; policy < cfg.Policies; policy++ {
			if source.Float64() < p {
				claims++
			}
		}

		totalPayout := float64(claims) * cfg.ClaimAmount
		netProfit := totalPremiums - totalPayout
		yields = append(yields, netProfit/totalPremiums*100)
	}

	return yields, nil
}
