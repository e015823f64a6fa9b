// internal/system/pulse_test.go
package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/event"
)

func TestCombatEventsSpawnPulses(t *testing.T) {
	w := newTestWorld()
	ps := NewPulseSystem(w.dispatcher)

	w.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamagePayload{X: 10, Y: 20}})
	w.dispatcher.Dispatch(event.Event{Type: event.DashPerformed, Data: event.DashPayload{X: 1, Y: 2}})
	w.dispatcher.Dispatch(event.Event{Type: event.HostileKilled, Data: event.KillPayload{X: 5, Y: 5}})

	pulses := ps.Pulses()
	if len(pulses) != 3 {
		t.Fatalf("pulses = %d, want 3", len(pulses))
	}
	first := pulses[0]
	if first.X != 10 || first.Y != 20 {
		t.Fatalf("damage pulse at (%v, %v), want (10, 20)", first.X, first.Y)
	}
	if first.MaxRadius != config.PulseDamageRadius || first.Life != config.PulseShortLife {
		t.Fatalf("damage pulse = %+v", first)
	}
}

func TestPulseExpiresAfterItsLife(t *testing.T) {
	ps := NewPulseSystem(event.NewDispatcher())
	ps.Spawn(0, 0, 30, 0.35, color.RGBA{255, 255, 255, 255}, 2)

	ps.Update(0.2)
	if len(ps.Pulses()) != 1 {
		t.Fatalf("pulse died early")
	}
	ps.Update(0.2)
	if len(ps.Pulses()) != 0 {
		t.Fatalf("expired pulse survived")
	}
}

func TestPulseOpensTowardMaxRadius(t *testing.T) {
	ps := NewPulseSystem(event.NewDispatcher())
	ps.Spawn(0, 0, 30, 1.0, color.RGBA{255, 255, 255, 255}, 2)

	prev := ps.Pulses()[0].Radius
	if math.Abs(prev-9) > 1e-9 { // стартует с трети радиуса
		t.Fatalf("initial radius = %v, want 9", prev)
	}
	for i := 0; i < 3; i++ {
		ps.Update(0.3)
		got := ps.Pulses()[0].Radius
		if got <= prev {
			t.Fatalf("radius stopped growing: %v after %v", got, prev)
		}
		if got > 30 {
			t.Fatalf("radius overshot max: %v", got)
		}
		prev = got
	}
}

func TestPulseCapEvictsOldest(t *testing.T) {
	ps := NewPulseSystem(event.NewDispatcher())

	for i := 0; i < config.MaxPulses; i++ {
		ps.Spawn(float64(i), 0, 30, 0.35, color.RGBA{}, 2)
	}
	ps.Spawn(999, 0, 30, 0.35, color.RGBA{}, 2)

	pulses := ps.Pulses()
	if len(pulses) != config.MaxPulses {
		t.Fatalf("pulses = %d, want cap %d", len(pulses), config.MaxPulses)
	}
	if pulses[0].X != 1 { // нулевое кольцо вытеснено
		t.Fatalf("oldest pulse not evicted: first X = %v", pulses[0].X)
	}
	if pulses[len(pulses)-1].X != 999 {
		t.Fatalf("newest pulse missing: last X = %v", pulses[len(pulses)-1].X)
	}
}

func TestNearMissPulsesAreRateLimited(t *testing.T) {
	w := newTestWorld()
	ps := NewPulseSystem(w.dispatcher)

	nearMiss := event.Event{Type: event.NearMiss, Data: event.NearMissPayload{Streak: 1, X: 0, Y: 0}}
	w.dispatcher.Dispatch(nearMiss)
	w.dispatcher.Dispatch(nearMiss) // глушится интервалом прореживания

	if got := len(ps.Pulses()); got != 1 {
		t.Fatalf("pulses = %d, want 1 (rate limited)", got)
	}

	ps.Update(0.3) // больше интервала 0.25
	w.dispatcher.Dispatch(nearMiss)
	if got := len(ps.Pulses()); got != 2 {
		t.Fatalf("pulses = %d, want 2 after gap elapsed", got)
	}
}

func TestResetClearsPulsesAndRateGap(t *testing.T) {
	w := newTestWorld()
	ps := NewPulseSystem(w.dispatcher)

	nearMiss := event.Event{Type: event.NearMiss, Data: event.NearMissPayload{Streak: 1}}
	w.dispatcher.Dispatch(nearMiss)
	ps.Reset()

	if got := len(ps.Pulses()); got != 0 {
		t.Fatalf("pulses after reset = %d", got)
	}
	// Интервал прореживания тоже сброшен: новое кольцо проходит сразу.
	w.dispatcher.Dispatch(nearMiss)
	if got := len(ps.Pulses()); got != 1 {
		t.Fatalf("pulse blocked after reset: %d", got)
	}
}
