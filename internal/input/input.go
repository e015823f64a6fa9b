// internal/input/input.go
package input

import "github.com/hajimehoshi/ebiten/v2"

// Intent — нормализованный снимок намерений игрока за один кадр.
type Intent struct {
	Left, Right, Up, Down bool
	Dash                  bool
	Attack                bool
}

// Provider отдаёт снимок намерений. Симуляция не знает, откуда он берётся.
type Provider interface {
	Poll() Intent
}

// Keyboard опрашивает клавиатуру: WASD и стрелки — движение,
// Shift — рывок, Space или J — атака.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll() Intent {
	return Intent{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Dash:   ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Attack: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ),
	}
}
