package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/turret/config"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeScoreStats(t *testing.T) {
	values := []float64{-2, -1, 0, 1, 2}
	mean, std, p10, p50, p90 := ComputeScoreStats(values)

	if math.Abs(mean) > 1e-9 {
		t.Errorf("mean = %v, want 0", mean)
	}
	if math.Abs(std-math.Sqrt2) > 1e-9 {
		t.Errorf("std = %v, want √2", std)
	}
	if math.Abs(p10-(-1.6)) > 1e-9 || p50 != 0 || math.Abs(p90-1.6) > 1e-9 {
		t.Errorf("percentiles = %v %v %v, want -1.6 0 1.6", p10, p50, p90)
	}

	// Input must not be reordered
	if values[0] != -2 || values[4] != 2 {
		t.Error("ComputeScoreStats sorted its input")
	}
}

func TestComputeScoreStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeScoreStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestSummarize(t *testing.T) {
	results := []CandidateResult{
		{Index: 0, Score: -0.5, Kills: 0, Shots: 5, Breaches: 3},
		{Index: 1, Score: 2.5, Kills: 3, Shots: 5, Breaches: 0},
		{Index: 2, Score: 2.5, Kills: 3, Shots: 5, Breaches: 1},
		{Index: 3, Score: 1, Kills: 1, Shots: 0, Breaches: 2},
	}

	s := Summarize(7, results)
	if s.Generation != 7 || s.Population != 4 {
		t.Errorf("Generation/Population = %d/%d, want 7/4", s.Generation, s.Population)
	}
	if s.ScoreMin != -0.5 || s.ScoreMax != 2.5 {
		t.Errorf("min/max = %v/%v, want -0.5/2.5", s.ScoreMin, s.ScoreMax)
	}
	if s.BestIndex != 1 {
		t.Errorf("BestIndex = %d, want 1 (first of the tied best)", s.BestIndex)
	}
	if s.Kills != 7 || s.Shots != 15 || s.Breaches != 6 {
		t.Errorf("totals = %d/%d/%d, want 7/15/6", s.Kills, s.Shots, s.Breaches)
	}
	if math.Abs(s.HitRate-7.0/15.0) > 1e-9 {
		t.Errorf("HitRate = %v, want %v", s.HitRate, 7.0/15.0)
	}
}

func TestOutputManager(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	for g := 1; g <= 3; g++ {
		if err := om.WriteGeneration(GenerationStats{Generation: g, Population: 10}); err != nil {
			t.Fatalf("WriteGeneration failed: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("generations.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "generation,population") {
		t.Errorf("header = %q", lines[0])
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Methods on a nil manager are no-ops
	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}
