package components

import "github.com/pthm-cable/turret/config"

// Body holds the kind and drawn extent of a moving entity.
type Body struct {
	Kind   Kind
	Width  float32
	Height float32
}

// ProjectileBody returns the body for a projectile.
func ProjectileBody() Body {
	d := config.Cfg().Derived
	return Body{Kind: KindProjectile, Width: d.ProjectileWidth, Height: d.ProjectileHeight}
}

// EnemyBody returns the body for an enemy.
func EnemyBody() Body {
	d := config.Cfg().Derived
	return Body{Kind: KindEnemy, Width: d.EnemyWidth, Height: d.EnemyHeight}
}
