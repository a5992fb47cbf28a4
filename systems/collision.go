package systems

import "github.com/pthm-cable/turret/components"

// DestroyResult counts what one destroy pass removed.
type DestroyResult struct {
	Kills       int // projectile/enemy pairs
	OutOfBounds int // projectiles that left the viewport
	Breaches    int // enemies that reached the turret
}

// CollisionParams holds the radii used by Destroy.
type CollisionParams struct {
	Bounds       Bounds
	HitRadius    float32 // projectile/enemy center distance that counts as a hit
	BreachRadius float32 // enemy distance from center that counts as a breach
}

// Destroy removes projectiles outside the bounds, then every projectile and the
// first enemy within HitRadius of it, then every enemy within BreachRadius of
// the center. Removal happens after all checks so each entity is judged once.
func (a *Arena) Destroy(p CollisionParams) DestroyResult {
	var res DestroyResult

	a.projectiles = a.projectiles[:0]
	a.enemies = a.enemies[:0]
	query := a.filter.Query()
	for query.Next() {
		pos, _, _, body := query.Get()
		t := tracked{entity: query.Entity(), pos: pos.Vec2}
		if body.Kind == components.KindProjectile {
			a.projectiles = append(a.projectiles, t)
		} else {
			a.enemies = append(a.enemies, t)
		}
	}

	for i := range a.projectiles {
		proj := &a.projectiles[i]
		if !p.Bounds.Contains(proj.pos) {
			proj.removed = true
			res.OutOfBounds++
			continue
		}
		for j := range a.enemies {
			enemy := &a.enemies[j]
			if enemy.removed {
				continue
			}
			if proj.pos.Sub(enemy.pos).Len() <= p.HitRadius {
				proj.removed = true
				enemy.removed = true
				res.Kills++
				break
			}
		}
	}

	center := p.Bounds.Center()
	for j := range a.enemies {
		enemy := &a.enemies[j]
		if enemy.removed {
			continue
		}
		if enemy.pos.Sub(center).Len() < p.BreachRadius {
			enemy.removed = true
			res.Breaches++
		}
	}

	for _, t := range a.projectiles {
		if t.removed {
			a.toRemove = append(a.toRemove, t.entity)
		}
	}
	for _, t := range a.enemies {
		if t.removed {
			a.toRemove = append(a.toRemove, t.entity)
		}
	}
	a.flushRemovals()

	return res
}
