// internal/system/helpers_test.go
package system

import (
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/types"
	"github.com/galcock/Ractr/internal/utils"
	"github.com/galcock/Ractr/pkg/arena"
)

// testWorld — минимальный мир для тестов систем: арена 400x400, баланс
// по умолчанию, игрок в центре, забег активен.
type testWorld struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	dispatcher *event.Dispatcher
	zone       arena.Rect
	rng        *utils.PRNGService
	playerID   types.EntityID
}

func newTestWorld() *testWorld {
	bal := defs.DefaultBalance()
	ecs := entity.NewECS()
	w := &testWorld{
		ecs:        ecs,
		balance:    bal,
		dispatcher: event.NewDispatcher(),
		zone:       arena.FromSize(400, 400),
		rng:        utils.NewPRNGService(7),
	}

	pl := bal.Player
	pid := ecs.NewEntity()
	ecs.Positions[pid] = &component.Position{X: 200, Y: 200}
	ecs.Velocities[pid] = &component.Velocity{}
	ecs.Healths[pid] = &component.Health{Value: pl.MaxHealth, Max: pl.MaxHealth}
	ecs.PlayerStates[pid] = &component.PlayerState{
		Level:             1,
		XPToNext:          bal.Progression.XPToNext(1),
		Strength:          pl.Strength,
		Agility:           pl.Agility,
		Intelligence:      pl.Intelligence,
		AttackPower:       pl.AttackPower,
		Defense:           pl.Defense,
		CritChance:        pl.CritChance,
		Mana:              pl.MaxMana,
		MaxMana:           pl.MaxMana,
		ManaRegen:         pl.ManaRegen,
		MoveSpeed:         pl.MoveSpeed,
		DashSpeed:         pl.DashSpeed,
		DashCooldownMax:   pl.DashCooldown,
		AttackCooldownMax: pl.AttackCooldown,
		AttackManaCost:    pl.AttackManaCost,
		Radius:            pl.Radius,
	}
	w.playerID = pid
	ecs.Run.Phase = component.RunActive
	return w
}

func (w *testWorld) player() *component.PlayerState {
	return w.ecs.PlayerStates[w.playerID]
}

func (w *testWorld) playerHealth() *component.Health {
	return w.ecs.Healths[w.playerID]
}

func (w *testWorld) addHazard(x, y, radius float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Hostiles[id] = &component.Hostile{
		Kind:          component.KindHazard,
		Radius:        radius,
		ContactDamage: w.balance.Hostiles.Hazards.ContactDamage,
		Alive:         true,
	}
	return id
}

func (w *testWorld) addMob(x, y, health float64) types.EntityID {
	mb := w.balance.Hostiles.Mobs
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	w.ecs.Hostiles[id] = &component.Hostile{
		Kind:          component.KindMob,
		Radius:        mb.Radius,
		ContactDamage: mb.ContactDamage,
		Alive:         true,
		Behavior:      component.BehaviorWanderer,
		Speed:         mb.Speed,
		AggroRange:    mb.AggroRange,
		Level:         1,
		XPReward:      mb.XPReward,
		GoldReward:    mb.GoldReward,
	}
	return id
}

func (w *testWorld) addProjectile(x, y, damage, lifetime float64) types.EntityID {
	pd := w.balance.Player.Projectile
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Projectiles[id] = &component.Projectile{
		Radius:   pd.Radius,
		Damage:   damage,
		Lifetime: lifetime,
	}
	return id
}

// eventCounter считает события по типам и запоминает последний payload.
type eventCounter struct {
	counts map[event.EventType]int
	last   map[event.EventType]event.Event
}

func newEventCounter(d *event.Dispatcher, eventTypes ...event.EventType) *eventCounter {
	c := &eventCounter{
		counts: make(map[event.EventType]int),
		last:   make(map[event.EventType]event.Event),
	}
	for _, et := range eventTypes {
		d.Subscribe(et, c)
	}
	return c
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
	c.last[e.Type] = e
}
