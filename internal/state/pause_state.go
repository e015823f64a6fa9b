// internal/state/pause_state.go
package state

import (
	"time"

	game "github.com/galcock/Ractr/internal/app"
	"github.com/galcock/Ractr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: предыдущий экран продолжает
// рисоваться под затемнением, но его Update не вызывается.
type PauseState struct {
	sm            *StateMachine
	previousState State
	game          *game.Game
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState State, g *game.Game, face font.Face) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		game:          g,
		face:          face,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := false
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		unpause = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.game.PauseButton.IsClicked(float64(x), float64(y)) &&
			time.Since(s.game.PauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			unpause = true
		}
	}

	if unpause {
		// «Отжимаем» кнопку паузы перед возвратом в игровой экран
		s.game.HandlePauseClick()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(config.ScreenWidth), float32(config.ScreenHeight),
		config.PausedOverlayColor, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.face, pauseText)
	textWidth := bounds.Max.X - bounds.Min.X
	text.Draw(screen, pauseText, s.face,
		(config.ScreenWidth-textWidth)/2, config.ScreenHeight/2,
		config.TextLightColor)
}

func (s *PauseState) Exit() {}
