// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	X, Y, W, H float32
	Text       string
	bgColor    color.Color
	hoverColor color.Color
	fgColor    color.Color
	font       font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(x, y, w, h float32, label string, face font.Face) *MenuButton {
	return &MenuButton{
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Text:       label,
		bgColor:    color.RGBA{90, 90, 110, 255},
		hoverColor: color.RGBA{120, 120, 145, 255},
		fgColor:    color.White,
		font:       face,
	}
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *MenuButton) Draw(screen *ebiten.Image, mx, my float64) {
	bg := b.bgColor
	if b.Contains(mx, my) {
		bg = b.hoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.RGBA{200, 200, 210, 255}, true)

	bounds := text.BoundString(b.font, b.Text)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(
		screen,
		b.Text,
		b.font,
		int(b.X)+(int(b.W)-textWidth)/2,
		int(b.Y+b.H/2)+textHeight/2,
		b.fgColor,
	)
}

// Contains проверяет, лежит ли точка внутри кнопки.
func (b *MenuButton) Contains(mx, my float64) bool {
	return mx >= float64(b.X) && mx <= float64(b.X+b.W) &&
		my >= float64(b.Y) && my <= float64(b.Y+b.H)
}
