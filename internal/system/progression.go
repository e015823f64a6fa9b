// internal/system/progression.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/types"
)

// ProgressionSystem ведёт счёт опыта и резолвит взятия уровня.
// Источники опыта: пассивная капель за выживание, утешительный опыт
// за полученный удар и награда за убийство моба.
type ProgressionSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	dispatcher *event.Dispatcher
}

func NewProgressionSystem(ecs *entity.ECS, balance *defs.Balance, dispatcher *event.Dispatcher) *ProgressionSystem {
	s := &ProgressionSystem{ecs: ecs, balance: balance, dispatcher: dispatcher}
	dispatcher.Subscribe(event.PlayerDamaged, s)
	dispatcher.Subscribe(event.HostileKilled, s)
	return s
}

func (s *ProgressionSystem) Update(deltaTime float64) {
	s.GrantXP(s.balance.Progression.XPTrickle * deltaTime)
}

// GrantXP добавляет опыт и берёт столько уровней, сколько накопилось:
// один большой кусок опыта может дать несколько уровней за вызов.
// Неположительные значения игнорируются. После возврата всегда
// выполняется xp < xpToNext.
func (s *ProgressionSystem) GrantXP(amount float64) {
	if amount <= 0 {
		return
	}
	pid, ps := s.findPlayer()
	if ps == nil {
		return
	}

	ps.XP += amount
	for ps.XP >= ps.XPToNext {
		ps.XP -= ps.XPToNext
		s.levelUp(pid, ps)
	}
}

func (s *ProgressionSystem) levelUp(pid types.EntityID, ps *component.PlayerState) {
	prog := s.balance.Progression
	ps.Level++

	strDelta := prog.StrengthPerLevel
	agiDelta := prog.AgilityPerLevel
	intDelta := prog.IntelligencePerLevel
	ps.Strength += strDelta
	ps.Agility += agiDelta
	ps.Intelligence += intDelta

	// Производные характеристики: плоский прирост за уровень плюс
	// масштабированный вклад приростов атрибутов.
	hp := s.ecs.Healths[pid]
	if hp != nil {
		hp.Max += prog.HealthPerLevel + math.Round(float64(strDelta)*1.5)
	}
	ps.MaxMana += prog.ManaPerLevel + math.Round(float64(intDelta)*2)
	ps.AttackPower += prog.AttackPerLevel + math.Round(float64(strDelta)*0.5)
	ps.Defense += prog.DefensePerLevel + math.Round(float64(agiDelta)*0.5)
	ps.CritChance += prog.CritPerLevel + float64(agiDelta)*0.001

	// Взятие уровня полностью восстанавливает ресурсы.
	if hp != nil {
		hp.Value = hp.Max
	}
	ps.Mana = ps.MaxMana

	ps.XPToNext = prog.XPToNext(ps.Level)

	snap := component.SnapshotPlayer(ps, s.ecs.Positions[pid], hp)
	s.dispatcher.Dispatch(event.Event{Type: event.LevelGained, Data: event.LevelPayload{
		Player: snap,
		Level:  ps.Level,
	}})
}

// OnEvent начисляет опыт за события боя.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDamaged:
		s.GrantXP(s.balance.Progression.XPPerHit)
	case event.HostileKilled:
		payload, ok := e.Data.(event.KillPayload)
		if !ok {
			return
		}
		if _, ps := s.findPlayer(); ps != nil {
			ps.Gold += payload.Gold
		}
		s.GrantXP(payload.XP)
	}
}

func (s *ProgressionSystem) findPlayer() (types.EntityID, *component.PlayerState) {
	for id, ps := range s.ecs.PlayerStates {
		return id, ps
	}
	return 0, nil
}
