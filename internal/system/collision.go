// internal/system/collision.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/types"
	"github.com/galcock/Ractr/internal/utils"
)

// CollisionSystem резолвит пересечения кругов и применяет урон.
// Порядок внутри тика фиксирован: сначала удары по игроку, затем
// попадания снарядов по мобам.
type CollisionSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewCollisionSystem(ecs *entity.ECS, balance *defs.Balance, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, balance: balance, rng: rng, dispatcher: dispatcher}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolvePlayerHits()
	s.resolveProjectileHits()
}

func (s *CollisionSystem) resolvePlayerHits() {
	var pid types.EntityID
	var ps *component.PlayerState
	for id, state := range s.ecs.PlayerStates {
		pid, ps = id, state
		break
	}
	if ps == nil {
		return
	}
	pos, hasPos := s.ecs.Positions[pid]
	hp, hasHP := s.ecs.Healths[pid]
	if !hasPos || !hasHP {
		return
	}

	padding := s.balance.Hostiles.Hazards.NearMissPadding

	for hid, h := range s.ecs.Hostiles {
		if !h.Alive {
			continue
		}
		hpos, ok := s.ecs.Positions[hid]
		if !ok {
			continue
		}

		dx := hpos.X - pos.X
		dy := hpos.Y - pos.Y
		distSq := dx*dx + dy*dy

		// Касание границ кругов уже считается ударом.
		hitRange := h.Radius + ps.Radius
		if distSq <= hitRange*hitRange {
			if ps.InvulnTimer <= 0 {
				s.hitPlayer(pid, ps, pos, hp, hid, h)
			}
			continue
		}

		// Вторая, широкая полоса вокруг игрока: урона нет, но проход
		// «на волоске» накручивает серию. Флаг на сущности не даёт одной
		// опасности срабатывать каждый кадр, пока она рядом.
		nearRange := hitRange + padding
		if distSq <= nearRange*nearRange {
			if !h.NearMissed {
				h.NearMissed = true
				ps.NearMissStreak++
				s.dispatcher.Dispatch(event.Event{Type: event.NearMiss, Data: event.NearMissPayload{
					Streak: ps.NearMissStreak,
					X:      hpos.X,
					Y:      hpos.Y,
				}})
			}
		} else {
			h.NearMissed = false
		}
	}
}

func (s *CollisionSystem) hitPlayer(pid types.EntityID, ps *component.PlayerState, pos *component.Position, hp *component.Health, hid types.EntityID, h *component.Hostile) {
	damage := mitigate(h.ContactDamage, ps.Defense)
	hp.Value -= damage
	if hp.Value < 0 {
		hp.Value = 0
	}
	ps.InvulnTimer = s.balance.Player.InvulnTime
	ps.NearMissStreak = 0
	s.ecs.DamageFlashes[pid] = &component.DamageFlash{Timer: 0.15, Duration: 0.15}

	s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamagePayload{
		Attacker: hid,
		Amount:   damage,
		X:        pos.X,
		Y:        pos.Y,
	}})

	if hp.Value <= 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// mitigate применяет защиту: половина защиты вычитается из сырого урона,
// итог округляется и никогда не опускается ниже единицы.
func mitigate(raw, defense float64) float64 {
	damage := math.Round(raw - defense*0.5)
	if damage < 1 {
		damage = 1
	}
	return damage
}

// resolveProjectileHits гасит снаряды о мобов. Опасности для снарядов
// прозрачны. Первый моб в порядке обхода забирает снаряд; смерть моба
// срабатывает ровно один раз — флагом Alive.
func (s *CollisionSystem) resolveProjectileHits() {
	for prid, proj := range s.ecs.Projectiles {
		if proj.Lifetime <= 0 {
			continue
		}
		ppos, ok := s.ecs.Positions[prid]
		if !ok {
			continue
		}

		for hid, h := range s.ecs.Hostiles {
			if h.Kind != component.KindMob || !h.Alive {
				continue
			}
			hpos, hasPos := s.ecs.Positions[hid]
			hhp, hasHP := s.ecs.Healths[hid]
			if !hasPos || !hasHP {
				continue
			}

			dx := hpos.X - ppos.X
			dy := hpos.Y - ppos.Y
			rr := h.Radius + proj.Radius
			if dx*dx+dy*dy > rr*rr {
				continue
			}

			hhp.Value -= proj.Damage
			s.ecs.DamageFlashes[hid] = &component.DamageFlash{Timer: 0.12, Duration: 0.12}
			// Потраченный снаряд доживает до прохода очистки с нулевой жизнью.
			proj.Lifetime = 0

			if hhp.Value <= 0 {
				hhp.Value = 0
				h.Alive = false
				s.killMob(hid, h, hpos, proj.Crit)
			}
			break
		}
	}
}

func (s *CollisionSystem) killMob(hid types.EntityID, h *component.Hostile, hpos *component.Position, crit bool) {
	xp := h.XPReward + s.rng.Range(0, s.balance.Hostiles.Mobs.XPJitter)
	s.dispatcher.Dispatch(event.Event{Type: event.HostileKilled, Data: event.KillPayload{
		Victim: hid,
		Level:  h.Level,
		XP:     xp,
		Gold:   h.GoldReward,
		X:      hpos.X,
		Y:      hpos.Y,
		Crit:   crit,
	}})
}
