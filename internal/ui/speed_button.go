// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton - кнопка переключения скорости симуляции. Каждый клик
// сдвигает состояние по кругу, цвет показывает текущий множитель.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:              x,
		Y:              y,
		Size:           size,
		LastClickTime:  time.Time{},
		LastToggleTime: time.Time{},
		StateColors:    stateColors,
		CurrentState:   0,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый треугольник
	fillTriangle(screen,
		b.X-width, b.Y-height/2,
		b.X, b.Y,
		b.X-width, b.Y+height/2,
		clr)
	strokeTriangle(screen,
		b.X-width, b.Y-height/2,
		b.X, b.Y,
		b.X-width, b.Y+height/2,
		1, color.White)

	// Правый треугольник
	fillTriangle(screen,
		b.X-width+offset, b.Y-height/2,
		b.X+offset, b.Y,
		b.X-width+offset, b.Y+height/2,
		clr)
	strokeTriangle(screen,
		b.X-width+offset, b.Y-height/2,
		b.X+offset, b.Y,
		b.X-width+offset, b.Y+height/2,
		1, color.White)
}

func (b *SpeedButton) IsClicked(mx, my float64) bool {
	// Используем круг для определения попадания, так как форма сложная
	r := float64(b.Size) * 1.5
	dx := mx - float64(b.X)
	dy := my - float64(b.Y)
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
