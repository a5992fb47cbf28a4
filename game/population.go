package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"path/filepath"
	"runtime"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/neural"
)

// PopulationSize derives the population from the available CPUs: one less than
// the CPU count when there is more than one, made even (10 if odd and below 10,
// one less otherwise), then raised to at least 10. An explicit configured size
// wins.
func PopulationSize(configured int) int {
	if configured > 0 {
		return configured
	}
	return populationForCPUs(runtime.NumCPU())
}

const minPopulation = 10

func populationForCPUs(cpus int) int {
	n := cpus
	if n > 1 {
		n--
	}
	switch {
	case n%2 == 0:
	case n < 10:
		n = 10
	default:
		n--
	}
	return max(n, minPopulation)
}

// WeightPaths returns the steering and fire weight file paths for a population.
func WeightPaths(cfg *config.Config, size int) (steering, fire string) {
	dir := cfg.Persistence.Dir
	return filepath.Join(dir, neural.FileName(cfg.Persistence.SteeringPrefix, size)),
		filepath.Join(dir, neural.FileName(cfg.Persistence.FirePrefix, size))
}

// NewPopulation creates size candidates. Networks come from the weight files
// when both load cleanly with the right count and shapes; otherwise every
// candidate gets fresh random networks.
func NewPopulation(size int, seed int64) []*Candidate {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(seed))

	steering, fire, err := loadWeights(cfg, size)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("no saved weights, starting from random networks", "population", size)
		} else {
			slog.Warn("ignoring saved weights", "population", size, "error", err)
		}
		steering = make([]*neural.Network, size)
		fire = make([]*neural.Network, size)
		for i := 0; i < size; i++ {
			steering[i] = neural.NewRandomUnchecked(rng, cfg.Derived.SteeringLayers)
			fire[i] = neural.NewRandomUnchecked(rng, cfg.Derived.FireLayers)
		}
	} else {
		slog.Info("loaded saved weights", "population", size)
	}

	candidates := make([]*Candidate, size)
	for i := range candidates {
		candidates[i] = NewCandidate(i, steering[i], fire[i], rand.New(rand.NewSource(rng.Int63())))
	}
	return candidates
}

func loadWeights(cfg *config.Config, size int) (steering, fire []*neural.Network, err error) {
	steeringPath, firePath := WeightPaths(cfg, size)
	inputs := cfg.Sensors.NumRays

	steering, err = neural.LoadNetworks(steeringPath, size, inputs, cfg.Neural.SteeringOutputs)
	if err != nil {
		return nil, nil, err
	}
	fire, err = neural.LoadNetworks(firePath, size, inputs, cfg.Neural.FireOutputs)
	if err != nil {
		return nil, nil, err
	}
	return steering, fire, nil
}

// SaveWeights writes every candidate's networks, overwriting earlier files.
func SaveWeights(candidates []*Candidate) error {
	cfg := config.Cfg()
	steeringPath, firePath := WeightPaths(cfg, len(candidates))

	steering := make([]*neural.Network, len(candidates))
	fire := make([]*neural.Network, len(candidates))
	for i, c := range candidates {
		steering[i] = c.Steering
		fire[i] = c.Fire
	}

	if err := neural.SaveNetworks(steeringPath, steering); err != nil {
		return fmt.Errorf("saving steering networks: %w", err)
	}
	if err := neural.SaveNetworks(firePath, fire); err != nil {
		return fmt.Errorf("saving fire networks: %w", err)
	}
	return nil
}
