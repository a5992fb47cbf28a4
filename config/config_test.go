package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Sensors.NumRays != 20 {
		t.Errorf("NumRays = %d, want 20", cfg.Sensors.NumRays)
	}
	if cfg.Derived.EnemyWidth != 75 {
		t.Errorf("EnemyWidth = %v, want 75", cfg.Derived.EnemyWidth)
	}
	if cfg.Derived.EnemyHeight != 100 {
		t.Errorf("EnemyHeight = %v, want 100", cfg.Derived.EnemyHeight)
	}
	if cfg.Derived.HitRadius != (25+100)/2.0 {
		t.Errorf("HitRadius = %v, want 62.5", cfg.Derived.HitRadius)
	}
	if cfg.Derived.BreachRadius != 100 {
		t.Errorf("BreachRadius = %v, want 100", cfg.Derived.BreachRadius)
	}

	wantSteering := []int{20, 10, 3}
	if len(cfg.Derived.SteeringLayers) != len(wantSteering) {
		t.Fatalf("SteeringLayers = %v, want %v", cfg.Derived.SteeringLayers, wantSteering)
	}
	for i := range wantSteering {
		if cfg.Derived.SteeringLayers[i] != wantSteering[i] {
			t.Errorf("SteeringLayers = %v, want %v", cfg.Derived.SteeringLayers, wantSteering)
			break
		}
	}
	if got := cfg.Derived.FireLayers[len(cfg.Derived.FireLayers)-1]; got != 2 {
		t.Errorf("fire outputs = %d, want 2", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("training:\n  population: 10\n  training_time: 40\n  fast_delta_time: 0.001\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Training.Population != 10 {
		t.Errorf("Population = %d, want 10", cfg.Training.Population)
	}
	if cfg.Derived.TrainingTime32 != 40 {
		t.Errorf("TrainingTime32 = %v, want 40", cfg.Derived.TrainingTime32)
	}
	// Untouched sections keep their defaults
	if cfg.Enemy.Cooldown != 4 {
		t.Errorf("Enemy.Cooldown = %v, want default 4", cfg.Enemy.Cooldown)
	}
}

func TestLoadRejectsOddPopulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("training:\n  population: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for odd population")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if reloaded.Turret.RotateVelocity != cfg.Turret.RotateVelocity {
		t.Errorf("RotateVelocity = %v, want %v", reloaded.Turret.RotateVelocity, cfg.Turret.RotateVelocity)
	}
}
