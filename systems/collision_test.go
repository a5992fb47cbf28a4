package systems

import (
	"testing"

	"github.com/pthm-cable/turret/components"
	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/geom"
)

func testParams() CollisionParams {
	d := config.Cfg().Derived
	return CollisionParams{
		Bounds:       Bounds{Width: 800, Height: 600},
		HitRadius:    d.HitRadius,
		BreachRadius: d.BreachRadius,
	}
}

func TestDestroyKill(t *testing.T) {
	a := NewArena()
	a.SpawnProjectile(geom.Vec2{X: 600, Y: 300}, 0, 100)
	a.SpawnEnemy(geom.Vec2{X: 640, Y: 300}, 3.14, 25) // within 62.5
	a.SpawnEnemy(geom.Vec2{X: 700, Y: 100}, 3.14, 25) // far away

	res := a.Destroy(testParams())
	if res.Kills != 1 {
		t.Errorf("Kills = %d, want 1", res.Kills)
	}

	projectiles, enemies := a.Counts()
	if projectiles != 0 || enemies != 1 {
		t.Errorf("after kill: %d projectiles, %d enemies, want 0, 1", projectiles, enemies)
	}
}

func TestDestroyOneEnemyPerProjectile(t *testing.T) {
	a := NewArena()
	a.SpawnProjectile(geom.Vec2{X: 600, Y: 300}, 0, 100)
	a.SpawnEnemy(geom.Vec2{X: 610, Y: 300}, 3.14, 25)
	a.SpawnEnemy(geom.Vec2{X: 590, Y: 300}, 3.14, 25)

	res := a.Destroy(testParams())
	if res.Kills != 1 {
		t.Errorf("Kills = %d, want 1", res.Kills)
	}
	if _, enemies := a.Counts(); enemies != 1 {
		t.Errorf("enemies = %d, want 1", enemies)
	}
}

func TestDestroyOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		pos  geom.Vec2
		gone bool
	}{
		{"inside", geom.Vec2{X: 10, Y: 10}, false},
		{"on edge", geom.Vec2{X: 800, Y: 600}, false},
		{"left", geom.Vec2{X: -0.5, Y: 300}, true},
		{"right", geom.Vec2{X: 800.5, Y: 300}, true},
		{"top", geom.Vec2{X: 400, Y: -1}, true},
		{"bottom", geom.Vec2{X: 400, Y: 601}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena()
			a.SpawnProjectile(tt.pos, 0, 100)

			res := a.Destroy(testParams())
			projectiles, _ := a.Counts()
			if gone := projectiles == 0; gone != tt.gone {
				t.Errorf("removed = %v, want %v", gone, tt.gone)
			}
			if tt.gone && res.OutOfBounds != 1 {
				t.Errorf("OutOfBounds = %d, want 1", res.OutOfBounds)
			}
		})
	}
}

func TestDestroyOutOfBoundsProjectileCannotKill(t *testing.T) {
	a := NewArena()
	a.SpawnProjectile(geom.Vec2{X: -1, Y: 300}, 0, 100)
	a.SpawnEnemy(geom.Vec2{X: 5, Y: 300}, 0, 25)

	res := a.Destroy(testParams())
	if res.Kills != 0 {
		t.Errorf("Kills = %d, want 0", res.Kills)
	}
	if _, enemies := a.Counts(); enemies != 1 {
		t.Errorf("enemies = %d, want 1", enemies)
	}
}

func TestDestroyBreach(t *testing.T) {
	a := NewArena()
	// Breach radius is 100; an enemy exactly on it survives
	a.SpawnEnemy(geom.Vec2{X: 400 + 99, Y: 300}, 3.14, 25)
	a.SpawnEnemy(geom.Vec2{X: 400 - 100, Y: 300}, 0, 25)

	res := a.Destroy(testParams())
	if res.Breaches != 1 {
		t.Errorf("Breaches = %d, want 1", res.Breaches)
	}
	if _, enemies := a.Counts(); enemies != 1 {
		t.Errorf("enemies = %d, want 1", enemies)
	}
}

func TestAdvance(t *testing.T) {
	a := NewArena()
	a.SpawnProjectile(geom.Vec2{X: 100, Y: 100}, 0, 100)

	a.Advance(0.5)

	var states []EntityState
	states = a.Snapshot(states)
	if len(states) != 1 {
		t.Fatalf("snapshot has %d entities, want 1", len(states))
	}
	if got := states[0].Position; got.Sub(geom.Vec2{X: 150, Y: 100}).Len() > 1e-3 {
		t.Errorf("position after Advance = %v, want {150 100}", got)
	}
	if states[0].Kind != components.KindProjectile {
		t.Errorf("Kind = %v, want projectile", states[0].Kind)
	}
}

func TestClear(t *testing.T) {
	a := NewArena()
	for i := 0; i < 5; i++ {
		a.SpawnEnemy(geom.Vec2{X: float32(i * 10), Y: 0}, 0, 25)
		a.SpawnProjectile(geom.Vec2{X: float32(i * 10), Y: 50}, 0, 100)
	}
	a.Clear()

	if p, e := a.Counts(); p != 0 || e != 0 {
		t.Errorf("after Clear: %d projectiles, %d enemies", p, e)
	}
	if got := a.EnemyPositions(nil); len(got) != 0 {
		t.Errorf("EnemyPositions after Clear = %v", got)
	}
}

func TestScorePenaltyForTurn(t *testing.T) {
	if got := ScorePenaltyForTurn(-geom.TwoPi / 2); got < 0.4999 || got > 0.5001 {
		t.Errorf("ScorePenaltyForTurn(-π) = %v, want 0.5", got)
	}
}
