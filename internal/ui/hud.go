// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/galcock/Ractr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDData - снимок всего, что панель показывает за один кадр.
// HUD не лезет в ECS сам: состояние ему собирает игровой экран.
type HUDData struct {
	Health    float64
	MaxHealth float64
	Mana      float64
	MaxMana   float64
	Level     int
	XP        float64
	XPToNext  float64
	Gold      int

	SurvivalTime   float64
	BestTime       float64
	Difficulty     float64
	NearMissStreak int

	SpeedMultiplier float64
	RunOver         bool
}

// HUD рисует панели состояния игрока поверх арены.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, data HUDData) {
	x := float32(config.HUDMarginX)
	y := float32(config.HUDMarginY)

	h.drawBar(screen, x, y, data.Health, data.MaxHealth, config.HealthBarColor,
		fmt.Sprintf("HP %.0f/%.0f", data.Health, data.MaxHealth))
	y += config.HUDBarHeight + config.HUDBarSpacing
	h.drawBar(screen, x, y, data.Mana, data.MaxMana, config.ManaBarColor,
		fmt.Sprintf("MP %.0f/%.0f", data.Mana, data.MaxMana))
	y += config.HUDBarHeight + config.HUDBarSpacing
	h.drawBar(screen, x, y, data.XP, data.XPToNext, config.XPBarColor,
		fmt.Sprintf("LVL %d", data.Level))
	y += config.HUDBarHeight + config.HUDBarSpacing*2

	lines := []string{
		fmt.Sprintf("TIME %6.1fs", data.SurvivalTime),
		fmt.Sprintf("BEST %6.1fs", data.BestTime),
		fmt.Sprintf("HEAT %5.0f%%", data.Difficulty*100),
		fmt.Sprintf("GOLD %d", data.Gold),
	}
	if data.NearMissStreak > 0 {
		lines = append(lines, fmt.Sprintf("GRAZE x%d", data.NearMissStreak))
	}
	if data.SpeedMultiplier != 1 {
		lines = append(lines, fmt.Sprintf("SPEED x%.0f", data.SpeedMultiplier))
	}
	for _, line := range lines {
		y += config.FontSize + 4
		text.Draw(screen, line, h.face, config.HUDMarginX, int(y), config.TextLightColor)
	}

	if data.RunOver {
		h.drawRunOver(screen, data)
	}
}

// drawBar рисует полосу ресурса с подписью справа.
func (h *HUD) drawBar(screen *ebiten.Image, x, y float32, value, max float64, fill color.RGBA, label string) {
	frac := 0.0
	if max > 0 {
		frac = value / max
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	vector.DrawFilledRect(screen, x, y, config.HUDBarWidth, config.HUDBarHeight, config.BarBackColor, true)
	if frac > 0 {
		vector.DrawFilledRect(screen, x, y, float32(frac)*config.HUDBarWidth, config.HUDBarHeight, fill, true)
	}
	vector.StrokeRect(screen, x, y, config.HUDBarWidth, config.HUDBarHeight, 1, config.BarBorderColor, true)
	text.Draw(screen, label, h.face,
		int(x)+config.HUDBarWidth+8,
		int(y)+config.HUDBarHeight-2,
		config.TextLightColor)
}

// drawRunOver выводит итог забега по центру экрана.
func (h *HUD) drawRunOver(screen *ebiten.Image, data HUDData) {
	title := "RUN OVER"
	summary := fmt.Sprintf("Survived %.1fs  -  best %.1fs", data.SurvivalTime, data.BestTime)
	hint := "Press R to restart"

	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	for i, line := range []string{title, summary, hint} {
		bounds := text.BoundString(h.face, line)
		w := bounds.Max.X - bounds.Min.X
		text.Draw(screen, line, h.face, cx-w/2, cy+i*(config.FontSize+10), config.TextLightColor)
	}
}
