// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	game "github.com/galcock/Ractr/internal/app"
	"github.com/galcock/Ractr/internal/audio"
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/input"
	"github.com/galcock/Ractr/internal/net"
	"github.com/galcock/Ractr/internal/ui"
	"github.com/galcock/Ractr/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Deps — внешние сотрудники симуляции, собранные в main.
// Канал BalanceUpdates может быть nil, тогда горячая перезагрузка
// конфига просто отключена.
type Deps struct {
	Balance        *defs.Balance
	Notifier       net.Notifier
	Audio          audio.Player
	Rng            *utils.PRNGService
	BalanceUpdates <-chan *defs.Balance
}

// GameState — игровой экран: сама симуляция плюс HUD поверх неё.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	hud      *ui.HUD
	face     font.Face
	keyboard input.Keyboard
	updates  <-chan *defs.Balance
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	gameLogic := game.NewGame(deps.Balance, deps.Notifier, deps.Audio, deps.Rng)
	face := ui.MustFace(config.FontSize)

	return &GameState{
		sm:      sm,
		game:    gameLogic,
		hud:     ui.NewHUD(face),
		face:    face,
		updates: deps.BalanceUpdates,
	}
}

func (g *GameState) Enter() {
	if g.game.ECS.Run.Phase == component.RunIdle {
		g.game.StartRun()
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.game.PauseButton.SetPaused(false)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.handlePauseClick()
		return
	}

	// Подхватываем свежий баланс, если файл конфига поменялся на диске.
	select {
	case nb := <-g.updates:
		if nb != nil {
			g.game.ApplyBalance(*nb)
		}
	default:
	}

	if g.game.ECS.Run.Phase == component.RunEnded && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.StartRun()
	}

	g.game.SetIntent(g.keyboard.Poll())
	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleUIClick(float64(x), float64(y))
	}
}

// handleUIClick обрабатывает клики по кнопкам. Кулдаун защищает от
// дребезга: два клика подряд по одной кнопке игнорируются.
func (g *GameState) handleUIClick(mx, my float64) {
	if g.game.SpeedButton.IsClicked(mx, my) {
		if time.Since(g.game.SpeedButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.game.HandleSpeedClick()
		}
		return
	}
	if g.game.PauseButton.IsClicked(mx, my) {
		if time.Since(g.game.PauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.handlePauseClick()
		}
	}
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.sm.SetState(NewPauseState(g.sm, g, g.game, g.face))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.RenderSystem.Draw(screen)
	g.hud.Draw(screen, g.collectHUDData())
	g.game.SpeedButton.Draw(screen)
	g.game.PauseButton.Draw(screen)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("FPS %.0f  entities %d", ebiten.ActualFPS(), len(g.game.ECS.Positions)),
		8, config.ScreenHeight-24)
}

func (g *GameState) collectHUDData() ui.HUDData {
	run := g.game.ECS.Run
	data := ui.HUDData{
		SurvivalTime:    run.SurvivalTime,
		BestTime:        run.BestTime,
		Difficulty:      g.game.LifecycleSystem.DifficultyFactor(),
		SpeedMultiplier: g.game.SpeedMultiplier,
		RunOver:         run.Phase == component.RunEnded,
	}
	if ps := g.game.ECS.PlayerStates[g.game.PlayerID]; ps != nil {
		data.Mana = ps.Mana
		data.MaxMana = ps.MaxMana
		data.Level = ps.Level
		data.XP = ps.XP
		data.XPToNext = ps.XPToNext
		data.Gold = ps.Gold
		data.NearMissStreak = ps.NearMissStreak
	}
	if hp := g.game.ECS.Healths[g.game.PlayerID]; hp != nil {
		data.Health = hp.Value
		data.MaxHealth = hp.Max
	}
	return data
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
