// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд игрока.
type Projectile struct {
	Radius   float64
	Damage   float64
	Lifetime float64 // оставшееся время жизни, сек
	Crit     bool    // критический выстрел, рисуется другим цветом
}
