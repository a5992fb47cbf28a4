// Package systems contains the ECS systems that run one candidate's arena.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turret/components"
	"github.com/pthm-cable/turret/geom"
)

// Bounds represents the viewport a candidate simulates in.
type Bounds struct {
	Width, Height float32
}

// Center returns the middle of the bounds.
func (b Bounds) Center() geom.Vec2 {
	return geom.Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Contains reports whether p lies inside [0, Width] x [0, Height].
func (b Bounds) Contains(p geom.Vec2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// EntityState is a copy of one moving entity for readers outside the arena.
type EntityState struct {
	Kind     components.Kind
	Position geom.Vec2
	Heading  float32
	Width    float32
	Height   float32
}

// Arena owns the ECS world holding one candidate's projectiles and enemies.
// It is not safe for concurrent use; the owning candidate serializes access.
type Arena struct {
	world *ecs.World

	mapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
	]

	projectileBody components.Body
	enemyBody      components.Body

	// scratch buffers reused every tick
	projectiles []tracked
	enemies     []tracked
	toRemove    []ecs.Entity
}

type tracked struct {
	entity  ecs.Entity
	pos     geom.Vec2
	removed bool
}

// NewArena creates an empty arena. Bodies come from the global config.
func NewArena() *Arena {
	world := ecs.NewWorld()
	return &Arena{
		world: world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
		](world),
		projectileBody: components.ProjectileBody(),
		enemyBody:      components.EnemyBody(),
	}
}

// SpawnProjectile adds a projectile at pos flying along heading.
func (a *Arena) SpawnProjectile(pos geom.Vec2, heading, speed float32) ecs.Entity {
	return a.spawn(pos, heading, speed, a.projectileBody)
}

// SpawnEnemy adds an enemy at pos flying along heading.
func (a *Arena) SpawnEnemy(pos geom.Vec2, heading, speed float32) ecs.Entity {
	return a.spawn(pos, heading, speed, a.enemyBody)
}

func (a *Arena) spawn(at geom.Vec2, heading, speed float32, body components.Body) ecs.Entity {
	pos := components.Position{Vec2: at}
	vel := components.Velocity{Vec2: geom.FromAngle(heading, speed)}
	rot := components.Rotation{Heading: heading}
	return a.mapper.NewEntity(&pos, &vel, &rot, &body)
}

// Counts returns the number of live projectiles and enemies.
func (a *Arena) Counts() (projectiles, enemies int) {
	query := a.filter.Query()
	for query.Next() {
		_, _, _, body := query.Get()
		if body.Kind == components.KindProjectile {
			projectiles++
		} else {
			enemies++
		}
	}
	return projectiles, enemies
}

// EnemyPositions appends the position of every live enemy to dst.
func (a *Arena) EnemyPositions(dst []geom.Vec2) []geom.Vec2 {
	query := a.filter.Query()
	for query.Next() {
		pos, _, _, body := query.Get()
		if body.Kind == components.KindEnemy {
			dst = append(dst, pos.Vec2)
		}
	}
	return dst
}

// Snapshot appends a copy of every live entity to dst.
func (a *Arena) Snapshot(dst []EntityState) []EntityState {
	query := a.filter.Query()
	for query.Next() {
		pos, _, rot, body := query.Get()
		dst = append(dst, EntityState{
			Kind:     body.Kind,
			Position: pos.Vec2,
			Heading:  rot.Heading,
			Width:    body.Width,
			Height:   body.Height,
		})
	}
	return dst
}

// Clear removes every entity.
func (a *Arena) Clear() {
	a.toRemove = a.toRemove[:0]
	query := a.filter.Query()
	for query.Next() {
		a.toRemove = append(a.toRemove, query.Entity())
	}
	a.flushRemovals()
}

func (a *Arena) flushRemovals() {
	for _, e := range a.toRemove {
		a.world.RemoveEntity(e)
	}
	a.toRemove = a.toRemove[:0]
}
