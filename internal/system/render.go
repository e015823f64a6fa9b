// internal/system/render.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/types"
	"github.com/galcock/Ractr/pkg/arena"
	"github.com/galcock/Ractr/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности. Симуляцию не трогает: читает компоненты
// и коллекцию пульсов, пишет только в экран.
type RenderSystem struct {
	ecs    *entity.ECS
	zone   arena.Rect
	pulses *PulseSystem
}

func NewRenderSystem(ecs *entity.ECS, zone arena.Rect, pulses *PulseSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, zone: zone, pulses: pulses}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.StrokeRect(screen,
		float32(s.zone.MinX), float32(s.zone.MinY),
		float32(s.zone.Width()), float32(s.zone.Height()),
		2, config.ArenaLineColor, true)

	// Пульсы — под сущностями, чтобы кольца не перекрывали игрока.
	for _, p := range s.pulses.Pulses() {
		alpha := p.Life / p.MaxLife
		clr := render.WithAlpha(p.Color, alpha)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.StrokeWidth, clr, true)
	}

	// Затем отрисовка сущностей с Renderable
	for id, rend := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if _, isPlayer := s.ecs.PlayerStates[id]; isPlayer {
			continue // игрок рисуется поверх остальных
		}

		clr := rend.Color
		// Блуждающий моб приглушён; в погоне он вспыхивает полным цветом.
		if h, isHostile := s.ecs.Hostiles[id]; isHostile && h.Kind == component.KindMob && h.Behavior == component.BehaviorWanderer {
			clr = render.DarkenColor(clr)
		}
		// Вспышка урона выбеливает сущность и спадает вместе с таймером.
		if flash, ok := s.ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
			clr = render.MixColors(clr, config.PlayerStrokeColor, flash.Timer/flash.Duration)
		}

		if rend.HasStroke {
			strokeRadius := rend.Radius + 2
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.PlayerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, clr, true)

		s.drawMobHealthBar(screen, id, pos, rend)
	}

	s.drawPlayer(screen)
}

// drawMobHealthBar рисует полоску здоровья над раненым мобом.
func (s *RenderSystem) drawMobHealthBar(screen *ebiten.Image, id types.EntityID, pos *component.Position, rend *component.Renderable) {
	h, isHostile := s.ecs.Hostiles[id]
	if !isHostile || h.Kind != component.KindMob {
		return
	}
	hp, hasHP := s.ecs.Healths[id]
	if !hasHP || hp.Max <= 0 || hp.Value >= hp.Max {
		return
	}

	barX := float32(pos.X) - config.MobHealthBarWidth/2
	barY := float32(pos.Y) - rend.Radius - 7
	fill := float32(hp.Value / hp.Max)
	vector.DrawFilledRect(screen, barX, barY, config.MobHealthBarWidth, config.MobHealthBarHeight, config.TextDarkColor, true)
	vector.DrawFilledRect(screen, barX, barY, config.MobHealthBarWidth*fill, config.MobHealthBarHeight, config.HealthBarColor, true)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	for id, ps := range s.ecs.PlayerStates {
		pos, hasPos := s.ecs.Positions[id]
		rend, hasRend := s.ecs.Renderables[id]
		if !hasPos || !hasRend {
			return
		}

		clr := rend.Color
		if flash, ok := s.ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
			clr = render.MixColors(clr, config.PlayerStrokeColor, flash.Timer/flash.Duration)
		}
		// Окно неуязвимости — мигание тела на косметических часах ECS.
		if ps.InvulnTimer > 0 && math.Sin(s.ecs.GameTime*30) < 0 {
			clr = render.WithAlpha(clr, 0.45)
		}

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius+config.PlayerStrokeWidth, config.PlayerStrokeColor, true)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, clr, true)

		// «Нос» — короткий штрих в направлении взгляда.
		tipX := pos.X + math.Cos(ps.Facing)*ps.Radius*config.FacingTickLength
		tipY := pos.Y + math.Sin(ps.Facing)*ps.Radius*config.FacingTickLength
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tipX), float32(tipY), 2, config.PlayerStrokeColor, true)
		return
	}
}
