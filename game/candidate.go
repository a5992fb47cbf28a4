package game

import (
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/turret/components"
	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/geom"
	"github.com/pthm-cable/turret/neural"
	"github.com/pthm-cable/turret/systems"
	"github.com/pthm-cable/turret/telemetry"
)

// tickParams caches config values read on every tick.
type tickParams struct {
	rotateVelocity  float32
	projectileSpeed float32
	enemySpeed      float32
	muzzleReach     float32 // turret radius + barrel length
	spawnRadius     float32
	enemyCooldown   float32
	fireCooldown    float32
	initialDelay    float32
	shotCost        float32
	hitRadius       float32
	breachRadius    float32
}

func newTickParams(cfg *config.Config) tickParams {
	d := cfg.Derived
	return tickParams{
		rotateVelocity:  d.RotateVelocity,
		projectileSpeed: d.ProjectileSpeed,
		enemySpeed:      d.EnemySpeed,
		muzzleReach:     d.TurretRadius + d.BarrelLength,
		spawnRadius:     d.SpawnRadius,
		enemyCooldown:   cfg.EnemyCooldown(),
		fireCooldown:    cfg.FireCooldown(),
		initialDelay:    float32(cfg.Enemy.InitialDelay),
		shotCost:        float32(cfg.Projectile.ShotCost),
		hitRadius:       d.HitRadius,
		breachRadius:    d.BreachRadius,
	}
}

// Candidate is one population member: a turret, the arena of projectiles and
// enemies around it, and the steering and fire networks that drive it.
//
// The networks are only touched by the candidate's own goroutine while a
// generation runs and by the scheduler between generations. Everything else
// is guarded by mu so the render loop can take snapshots.
type Candidate struct {
	Index    int
	Steering *neural.Network
	Fire     *neural.Network

	mu         sync.Mutex
	turret     components.Turret
	arena      *systems.Arena
	score      float32
	enemyTimer float32
	fireTimer  float32
	kills      int
	shots      int
	breaches   int

	params tickParams
	sensor systems.RaySensor
	rng    *rand.Rand

	// scratch buffers reused every tick
	inputs   []float64
	enemyBuf []geom.Vec2
}

// NewCandidate creates a candidate around the given networks.
func NewCandidate(index int, steering, fire *neural.Network, rng *rand.Rand) *Candidate {
	cfg := config.Cfg()
	center := geom.Vec2{X: cfg.WorldW32() / 2, Y: cfg.WorldH32() / 2}
	c := &Candidate{
		Index:    index,
		Steering: steering,
		Fire:     fire,
		turret:   components.NewTurret(center),
		arena:    systems.NewArena(),
		params:   newTickParams(cfg),
		sensor:   systems.NewRaySensor(cfg),
		rng:      rng,
		inputs:   make([]float64, cfg.Sensors.NumRays),
		enemyBuf: make([]geom.Vec2, 0, 16),
	}
	c.Reset(center)
	return c
}

// Reset prepares the candidate for a new generation: turret facing 0 at
// center, empty arena, zero score and counters, timers at their start values.
func (c *Candidate) Reset(center geom.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turret.Reset(center)
	c.arena.Clear()
	c.score = 0
	c.kills, c.shots, c.breaches = 0, 0, 0
	c.enemyTimer = c.params.enemyCooldown - c.params.initialDelay
	c.fireTimer = 0
}

// Recenter moves the turret after a viewport resize.
func (c *Candidate) Recenter(center geom.Vec2) {
	c.mu.Lock()
	c.turret.Position = center
	c.mu.Unlock()
}

// Score returns the accumulated score for the current generation.
func (c *Candidate) Score() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// Tick advances the candidate by dt seconds inside bounds:
// destroy, sense, create, then update.
func (c *Candidate) Tick(dt float32, bounds systems.Bounds) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enemyTimer += dt
	c.fireTimer += dt
	center := bounds.Center()

	// Destroy
	res := c.arena.Destroy(systems.CollisionParams{
		Bounds:       bounds,
		HitRadius:    c.params.hitRadius,
		BreachRadius: c.params.breachRadius,
	})
	c.score += float32(res.Kills)
	c.kills += res.Kills
	c.breaches += res.Breaches

	// Sense
	c.enemyBuf = c.arena.EnemyPositions(c.enemyBuf[:0])
	c.sensor.Sense(c.inputs, c.turret.Facing, center, c.enemyBuf)

	// Create
	if c.enemyTimer >= c.params.enemyCooldown {
		c.enemyTimer = 0
		c.spawnEnemy(center)
	}
	if c.fireTimer >= c.params.fireCooldown {
		if neural.FireDecision(c.Fire.InferUnchecked(c.inputs)) {
			c.fireTimer = 0
			c.score -= c.params.shotCost
			c.shots++
			c.spawnProjectile()
		}
	}

	// Update
	dir := neural.SteeringDecision(c.Steering.InferUnchecked(c.inputs))
	turned := c.turret.Rotate(float32(dir) * c.params.rotateVelocity * dt)
	c.score -= systems.ScorePenaltyForTurn(turned)
	c.arena.Advance(dt)
}

// spawnEnemy places an enemy at a random bearing on the spawn ring, flying at center.
func (c *Candidate) spawnEnemy(center geom.Vec2) {
	bearing := c.rng.Float32() * float32(geom.TwoPi)
	pos := center.Add(geom.FromAngle(bearing, c.params.spawnRadius))
	c.arena.SpawnEnemy(pos, geom.WrapAngle(bearing+math.Pi), c.params.enemySpeed)
}

// spawnProjectile fires from the muzzle along the turret's facing.
func (c *Candidate) spawnProjectile() {
	c.arena.SpawnProjectile(c.turret.Muzzle(c.params.muzzleReach), c.turret.Facing, c.params.projectileSpeed)
}

// Result returns the candidate's counters for telemetry.
func (c *Candidate) Result(score float32) telemetry.CandidateResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return telemetry.CandidateResult{
		Index:    c.Index,
		Score:    score,
		Kills:    c.kills,
		Shots:    c.shots,
		Breaches: c.breaches,
	}
}

// CandidateSnapshot is a copy of a candidate's drawable state.
type CandidateSnapshot struct {
	Index    int
	Turret   components.Turret
	Entities []systems.EntityState
	Score    float32
	Elapsed  float32
}

// Snapshot copies the turret and every live entity.
func (c *Candidate) Snapshot() CandidateSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CandidateSnapshot{
		Index:    c.Index,
		Turret:   c.turret,
		Entities: c.arena.Snapshot(nil),
		Score:    c.score,
	}
}
