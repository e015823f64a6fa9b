// internal/state/menu_state.go
package state

import (
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — стартовый экран
type MenuState struct {
	sm          *StateMachine
	deps        Deps
	titleFace   font.Face
	face        font.Face
	startButton *ui.MenuButton
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	titleFace := ui.MustFace(42)
	face := ui.MustFace(config.FontSize)

	const buttonW, buttonH = 220, 52
	startButton := ui.NewMenuButton(
		(config.ScreenWidth-buttonW)/2,
		config.ScreenHeight/2,
		buttonW, buttonH,
		"START", face)

	return &MenuState{
		sm:          sm,
		deps:        deps,
		titleFace:   titleFace,
		face:        face,
		startButton: startButton,
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.startButton.Contains(float64(x), float64(y)) {
			start = true
		}
	}

	if start {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "RACTR"
	bounds := text.BoundString(m.titleFace, title)
	titleWidth := bounds.Max.X - bounds.Min.X
	text.Draw(screen, title, m.titleFace,
		(config.ScreenWidth-titleWidth)/2, config.ScreenHeight/3,
		config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	m.startButton.Draw(screen, float64(mx), float64(my))

	hints := []string{
		"WASD / arrows - move      Shift - dash",
		"Space - fire at facing    P - pause",
		"Survive as long as you can.",
	}
	y := config.ScreenHeight/2 + 110
	for _, hint := range hints {
		hintBounds := text.BoundString(m.face, hint)
		w := hintBounds.Max.X - hintBounds.Min.X
		text.Draw(screen, hint, m.face, (config.ScreenWidth-w)/2, y, config.XPBarColor)
		y += config.FontSize + 8
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
