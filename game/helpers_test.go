package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/neural"
)

// useConfig loads the defaults overlaid with yaml, and points weight files at
// a temporary directory.
func useConfig(t testing.TB, yaml string) *config.Config {
	t.Helper()
	path := ""
	if yaml != "" {
		path = filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
	}
	if err := config.Init(path); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	cfg := config.Cfg()
	cfg.Persistence.Dir = t.TempDir()
	return cfg
}

// biasNetwork returns a single-layer network whose outputs ignore the input
// and equal tanh of the given biases.
func biasNetwork(t testing.TB, inputs int, biases ...float64) *neural.Network {
	t.Helper()
	weights := make([][]float64, len(biases))
	for i := range weights {
		weights[i] = make([]float64, inputs)
	}
	n, err := neural.NetworkFromWeights(neural.NetworkWeights{
		InputSize:  inputs,
		OutputSize: len(biases),
		Weights:    [][][]float64{weights},
		Biases:     [][]float64{biases},
	})
	if err != nil {
		t.Fatalf("NetworkFromWeights: %v", err)
	}
	return n
}

// scriptedCandidate builds a candidate that always turns by steer (-1, 0, +1)
// and either always or never fires.
func scriptedCandidate(t testing.TB, steer int, fire bool) *Candidate {
	t.Helper()
	inputs := config.Cfg().Sensors.NumRays

	steering := make([]float64, 3)
	steering[steer+1] = 1

	fireBias := []float64{0, 1}
	if fire {
		fireBias = []float64{1, 0}
	}

	return NewCandidate(0,
		biasNetwork(t, inputs, steering...),
		biasNetwork(t, inputs, fireBias...),
		rand.New(rand.NewSource(1)),
	)
}

func approxEqual(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
