// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Оставшееся время эффекта
	Duration float64 // Общая продолжительность эффекта
}

// Pulse — затухающее кольцо-маркер события (урон, рывок, убийство, уровень).
// Чисто косметика: геймплей пульсы порождает, но никогда не читает.
type Pulse struct {
	X, Y        float64
	Radius      float64 // текущий радиус
	MaxRadius   float64 // запрошенный радиус
	Life        float64 // оставшееся время жизни
	MaxLife     float64
	Color       color.RGBA
	StrokeWidth float32
}
