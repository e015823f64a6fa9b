// internal/system/lifecycle_test.go
package system

import (
	"testing"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/event"
)

func TestDifficultyFactorRampsLinearly(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)

	cases := []struct {
		survival float64
		want     float64
	}{
		{0, 0},
		{30, 0.5},
		{60, 1.0},
		{120, 1.0}, // после разгона фактор держится на единице
	}
	for _, c := range cases {
		w.ecs.Run.SurvivalTime = c.survival
		if got := ls.DifficultyFactor(); got != c.want {
			t.Errorf("DifficultyFactor at t=%v = %v, want %v", c.survival, got, c.want)
		}
	}
}

func TestUpdateAccumulatesOnlyWhileActive(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)

	w.ecs.Run.Phase = component.RunIdle
	ls.Update(1.0)
	if w.ecs.Run.SurvivalTime != 0 {
		t.Fatalf("survival advanced while idle: %v", w.ecs.Run.SurvivalTime)
	}

	w.ecs.Run.Phase = component.RunActive
	ls.Update(1.0)
	ls.Update(0.5)
	if w.ecs.Run.SurvivalTime != 1.5 {
		t.Fatalf("survival = %v, want 1.5", w.ecs.Run.SurvivalTime)
	}

	w.ecs.Run.Phase = component.RunEnded
	ls.Update(1.0)
	if w.ecs.Run.SurvivalTime != 1.5 {
		t.Fatalf("survival advanced after run ended: %v", w.ecs.Run.SurvivalTime)
	}
}

func TestEndRunRecordsBestAndDispatchesOnce(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.RunEnded)

	w.ecs.Run.SurvivalTime = 42
	ls.EndRun()

	if w.ecs.Run.Phase != component.RunEnded {
		t.Fatalf("phase = %v, want RunEnded", w.ecs.Run.Phase)
	}
	if w.ecs.Run.BestTime != 42 {
		t.Fatalf("best = %v, want 42", w.ecs.Run.BestTime)
	}
	if counter.counts[event.RunEnded] != 1 {
		t.Fatalf("RunEnded dispatched %d times, want 1", counter.counts[event.RunEnded])
	}
	payload, ok := counter.last[event.RunEnded].Data.(event.RunPayload)
	if !ok {
		t.Fatalf("RunEnded payload has type %T", counter.last[event.RunEnded].Data)
	}
	if payload.SurvivalTime != 42 {
		t.Fatalf("payload survival = %v, want 42", payload.SurvivalTime)
	}

	// Повторный вызов вне активной фазы ничего не делает.
	ls.EndRun()
	if counter.counts[event.RunEnded] != 1 {
		t.Fatalf("repeated EndRun dispatched again: %d", counter.counts[event.RunEnded])
	}
}

func TestEndRunKeepsHigherBest(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)

	w.ecs.Run.BestTime = 100
	w.ecs.Run.SurvivalTime = 42
	ls.EndRun()

	if w.ecs.Run.BestTime != 100 {
		t.Fatalf("best = %v, want 100 (record must not regress)", w.ecs.Run.BestTime)
	}
}

func TestPlayerDiedEndsRun(t *testing.T) {
	w := newTestWorld()
	NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.RunEnded)

	w.ecs.Run.SurvivalTime = 7
	w.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: event.DamagePayload{}})

	if w.ecs.Run.Phase != component.RunEnded {
		t.Fatalf("phase = %v, want RunEnded after player death", w.ecs.Run.Phase)
	}
	if counter.counts[event.RunEnded] != 1 {
		t.Fatalf("RunEnded dispatched %d times, want 1", counter.counts[event.RunEnded])
	}
}
