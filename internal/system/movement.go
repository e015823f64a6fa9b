// internal/system/movement.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/input"
	"github.com/galcock/Ractr/internal/types"
	"github.com/galcock/Ractr/internal/utils"
	"github.com/galcock/Ractr/pkg/arena"
)

// MovementSystem интегрирует позиции игрока, врагов и снарядов методом Эйлера.
// Игрок и мобы прижимаются к границам арены; опасности и снаряды летят
// свободно и снимаются проходом очистки за внешней кромкой.
type MovementSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	zone       arena.Rect
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	intent     input.Intent
}

func NewMovementSystem(ecs *entity.ECS, balance *defs.Balance, zone arena.Rect, rng *utils.PRNGService, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, balance: balance, zone: zone, rng: rng, dispatcher: dispatcher}
}

// SetIntent задаёт снимок намерений на предстоящий тик.
func (s *MovementSystem) SetIntent(intent input.Intent) {
	s.intent = intent
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.updatePlayer(deltaTime)
	s.updateHostiles(deltaTime)
	s.updateProjectiles(deltaTime)
}

func (s *MovementSystem) updatePlayer(deltaTime float64) {
	var id types.EntityID
	var ps *component.PlayerState
	for pid, state := range s.ecs.PlayerStates {
		id, ps = pid, state
		break
	}
	if ps == nil {
		return
	}
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	if !hasPos || !hasVel {
		return
	}

	// Таймеры действий тикают и в кадры без движения.
	ps.DashCooldown -= deltaTime
	ps.InvulnTimer -= deltaTime
	ps.AttackCooldown -= deltaTime
	ps.Mana += ps.ManaRegen * deltaTime
	if ps.Mana > ps.MaxMana {
		ps.Mana = ps.MaxMana
	}

	dx, dy := 0.0, 0.0
	if s.intent.Left {
		dx--
	}
	if s.intent.Right {
		dx++
	}
	if s.intent.Up {
		dy--
	}
	if s.intent.Down {
		dy++
	}

	// Диагональ не быстрее прямой: вектор намерения нормализуется.
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}

	speed := ps.MoveSpeed
	if s.intent.Dash && ps.DashCooldown <= 0 {
		speed = ps.DashSpeed
		ps.DashCooldown = ps.DashCooldownMax
		s.dispatcher.Dispatch(event.Event{Type: event.DashPerformed, Data: event.DashPayload{X: pos.X, Y: pos.Y}})
	}

	vel.VX = dx / mag * speed
	vel.VY = dy / mag * speed
	pos.X += vel.VX * deltaTime
	pos.Y += vel.VY * deltaTime
	pos.X, pos.Y = s.zone.Clamp(pos.X, pos.Y, ps.Radius+config.ArenaMargin)

	if dx != 0 || dy != 0 {
		ps.Facing = math.Atan2(dy, dx)
	}
}

func (s *MovementSystem) updateHostiles(deltaTime float64) {
	var px, py float64
	hasPlayer := false
	for id := range s.ecs.PlayerStates {
		if pos, ok := s.ecs.Positions[id]; ok {
			px, py, hasPlayer = pos.X, pos.Y, true
		}
		break
	}

	for id, h := range s.ecs.Hostiles {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		switch h.Kind {
		case component.KindHazard:
			// Баллистика: скорость задана при спавне и больше не меняется.
			pos.X += vel.VX * deltaTime
			pos.Y += vel.VY * deltaTime
		case component.KindMob:
			s.steerMob(h, pos, vel, px, py, hasPlayer, deltaTime)
			pos.X += vel.VX * deltaTime
			pos.Y += vel.VY * deltaTime
			pos.X, pos.Y = s.zone.Clamp(pos.X, pos.Y, h.Radius+config.ArenaMargin)
		}
	}
}

// steerMob выбирает вектор скорости моба: погоня за игроком в радиусе агро,
// иначе блуждание со случайным курсом на замедленной скорости.
func (s *MovementSystem) steerMob(h *component.Hostile, pos *component.Position, vel *component.Velocity, px, py float64, hasPlayer bool, deltaTime float64) {
	chasing := false
	if hasPlayer {
		dx := px - pos.X
		dy := py - pos.Y
		if dx*dx+dy*dy <= h.AggroRange*h.AggroRange {
			chasing = true
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				dist = 1
			}
			vel.VX = dx / dist * h.Speed
			vel.VY = dy / dist * h.Speed
		}
	}

	if !chasing {
		h.WanderTimer -= deltaTime
		if h.WanderTimer <= 0 {
			h.WanderHeading = s.rng.Range(0, 2*math.Pi)
			h.WanderTimer = s.rng.Range(1.0, 3.5)
		}
		wanderSpeed := h.Speed * s.balance.Hostiles.Mobs.WanderFactor
		vel.VX = math.Cos(h.WanderHeading) * wanderSpeed
		vel.VY = math.Sin(h.WanderHeading) * wanderSpeed
	}

	if chasing {
		h.Behavior = component.BehaviorChaser
	} else {
		h.Behavior = component.BehaviorWanderer
	}
}

func (s *MovementSystem) updateProjectiles(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
		// Само удаление — в проходе очистки, здесь только тикает жизнь.
		proj.Lifetime -= deltaTime
	}
}
