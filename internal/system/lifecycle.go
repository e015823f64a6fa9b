// internal/system/lifecycle.go
package system

import (
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/utils"
)

// LifecycleSystem владеет фазой забега и фактором сложности.
// Это единственное место, где забег переводится в терминальную фазу.
type LifecycleSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	dispatcher *event.Dispatcher
}

func NewLifecycleSystem(ecs *entity.ECS, balance *defs.Balance, dispatcher *event.Dispatcher) *LifecycleSystem {
	s := &LifecycleSystem{ecs: ecs, balance: balance, dispatcher: dispatcher}
	dispatcher.Subscribe(event.PlayerDied, s)
	return s
}

// Update наращивает время выживания текущего забега.
func (s *LifecycleSystem) Update(deltaTime float64) {
	if s.ecs.Run.Phase != component.RunActive {
		return
	}
	s.ecs.Run.SurvivalTime += deltaTime
}

// DifficultyFactor возвращает фактор сложности [0, 1]: линейный рост от нуля
// до единицы за время разгона, дальше держится на единице. Не убывает,
// пока растёт время выживания.
func (s *LifecycleSystem) DifficultyFactor() float64 {
	ramp := s.balance.Difficulty.RampDuration
	return utils.Clamp(s.ecs.Run.SurvivalTime, 0, ramp) / ramp
}

// EndRun фиксирует рекорд и завершает забег. Вызов вне активной фазы — no-op.
func (s *LifecycleSystem) EndRun() {
	run := s.ecs.Run
	if run.Phase != component.RunActive {
		return
	}
	if run.SurvivalTime > run.BestTime {
		run.BestTime = run.SurvivalTime
	}
	run.Phase = component.RunEnded

	var snap component.PlayerSnapshot
	for id, ps := range s.ecs.PlayerStates {
		snap = component.SnapshotPlayer(ps, s.ecs.Positions[id], s.ecs.Healths[id])
		break
	}
	s.dispatcher.Dispatch(event.Event{Type: event.RunEnded, Data: event.RunPayload{
		Player:       snap,
		SurvivalTime: run.SurvivalTime,
	}})
}

// OnEvent завершает забег, когда здоровье игрока кончилось.
func (s *LifecycleSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerDied {
		s.EndRun()
	}
}
