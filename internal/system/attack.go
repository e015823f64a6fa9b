// internal/system/attack.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/input"
	"github.com/galcock/Ractr/internal/utils"
)

// AttackSystem выпускает снаряды по намерению атаки: выстрел идёт вдоль
// взгляда игрока, стоит маны и уходит на перезарядку.
type AttackSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	intent     input.Intent
}

func NewAttackSystem(ecs *entity.ECS, balance *defs.Balance, rng *utils.PRNGService, dispatcher *event.Dispatcher) *AttackSystem {
	return &AttackSystem{ecs: ecs, balance: balance, rng: rng, dispatcher: dispatcher}
}

// SetIntent задаёт снимок намерений на предстоящий тик.
func (s *AttackSystem) SetIntent(intent input.Intent) {
	s.intent = intent
}

func (s *AttackSystem) Update(deltaTime float64) {
	if !s.intent.Attack {
		return
	}

	var ps *component.PlayerState
	var pos *component.Position
	for id, state := range s.ecs.PlayerStates {
		ps = state
		pos = s.ecs.Positions[id]
		break
	}
	if ps == nil || pos == nil {
		return
	}
	if ps.AttackCooldown > 0 || ps.Mana < ps.AttackManaCost {
		return
	}

	ps.Mana -= ps.AttackManaCost
	ps.AttackCooldown = ps.AttackCooldownMax

	crit := s.rng.Float64() < ps.CritChance
	damage := ps.AttackPower
	if crit {
		damage *= 2
	}

	pd := s.balance.Player.Projectile
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{
		VX: math.Cos(ps.Facing) * pd.Speed,
		VY: math.Sin(ps.Facing) * pd.Speed,
	}
	s.ecs.Projectiles[id] = &component.Projectile{
		Radius:   pd.Radius,
		Damage:   damage,
		Lifetime: pd.Lifetime,
		Crit:     crit,
	}
	clr := config.ProjectileColor
	if crit {
		clr = config.CritColor
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: clr, Radius: float32(pd.Radius)}

	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.FirePayload{
		X:    pos.X,
		Y:    pos.Y,
		Crit: crit,
	}})
}
