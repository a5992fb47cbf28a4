// Package components defines the ECS components and the turret state for a candidate arena.
package components

// Kind identifies what a moving entity is.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
