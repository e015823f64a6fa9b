// internal/system/spawner_test.go
package system

import (
	"math"
	"testing"

	"github.com/galcock/Ractr/internal/component"
)

func TestFirstHazardWaveArrivesOnBaseInterval(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	ss.Update(1.1)
	if got := countKind(w, component.KindHazard); got != 0 {
		t.Fatalf("hazards before interval elapsed: %d", got)
	}

	ss.Update(1.1) // 2.2 суммарно — базовый интервал
	if got := countKind(w, component.KindHazard); got != 1 {
		t.Fatalf("hazards after base interval = %d, want 1", got)
	}
}

func TestSpawnedHazardStartsOutsideAndFliesInward(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	ss.spawnHazards(0)

	for id, h := range w.ecs.Hostiles {
		if h.Kind != component.KindHazard {
			continue
		}
		pos := w.ecs.Positions[id]
		vel := w.ecs.Velocities[id]
		if w.zone.WithinMargin(pos.X, pos.Y, 0) {
			t.Fatalf("hazard spawned inside arena at (%v, %v)", pos.X, pos.Y)
		}
		// Скорость смотрит внутрь: проекция на направление к центру положительна.
		cx, cy := w.zone.Center()
		if dot := vel.VX*(cx-pos.X) + vel.VY*(cy-pos.Y); dot <= 0 {
			t.Fatalf("hazard velocity points away from arena: pos (%v, %v), vel (%v, %v)", pos.X, pos.Y, vel.VX, vel.VY)
		}
		if h.Radius < w.balance.Hostiles.Hazards.RadiusMin {
			t.Fatalf("hazard radius %v below minimum", h.Radius)
		}
		if !h.Alive {
			t.Fatalf("hazard spawned dead")
		}
	}
}

func TestHazardBatchGrowsAtSurvivalThresholds(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	// Пороги 10 и 20 пройдены, 30 — нет: пачка из трёх.
	w.ecs.Run.SurvivalTime = 25
	ss.spawnHazards(ls.DifficultyFactor())

	if got := countKind(w, component.KindHazard); got != 3 {
		t.Fatalf("batch size at t=25 = %d, want 3", got)
	}
}

func TestHazardCapClampsBatchAndSkipsWhenFull(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	limit := w.balance.Hostiles.Hazards.Cap
	for i := 0; i < limit-2; i++ {
		w.addHazard(50, 50, 10)
	}

	// Пачка хочет троих, под потолком осталось два места.
	w.ecs.Run.SurvivalTime = 25
	ss.spawnHazards(ls.DifficultyFactor())
	if got := countKind(w, component.KindHazard); got != limit {
		t.Fatalf("hazards after clamped batch = %d, want %d", got, limit)
	}

	// Полная арена: спавн молча пропускается.
	ss.spawnHazards(ls.DifficultyFactor())
	if got := countKind(w, component.KindHazard); got != limit {
		t.Fatalf("cap overflowed: %d hazards", got)
	}
}

func TestMobsWaitForStartTime(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	w.ecs.Run.SurvivalTime = w.balance.Hostiles.Mobs.StartTime - 1
	for i := 0; i < 2000; i++ {
		ss.Update(0.05)
	}
	if got := countKind(w, component.KindMob); got != 0 {
		t.Fatalf("mobs spawned before start time: %d", got)
	}
}

func TestMobsTrickleInAfterStartTime(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	w.ecs.Run.SurvivalTime = 20
	for i := 0; i < 2000; i++ {
		ss.Update(0.05)
	}

	got := countKind(w, component.KindMob)
	if got == 0 {
		t.Fatalf("no mobs after 100s past start time")
	}
	if got > w.balance.Hostiles.Mobs.Cap {
		t.Fatalf("mob cap exceeded: %d > %d", got, w.balance.Hostiles.Mobs.Cap)
	}
}

func TestMobCapBlocksBackgroundSpawn(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	limit := w.balance.Hostiles.Mobs.Cap
	for i := 0; i < limit; i++ {
		w.addMob(50, 50, 30)
	}
	w.ecs.Run.SurvivalTime = 20
	for i := 0; i < 500; i++ {
		ss.Update(0.05)
	}
	if got := countKind(w, component.KindMob); got != limit {
		t.Fatalf("mobs past cap: %d, want %d", got, limit)
	}
}

func TestSpawnedMobScalesWithSurvivalLevel(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	// 65 секунд: третья ступень уровня (каждые 30 секунд).
	w.ecs.Run.SurvivalTime = 65
	ss.spawnMob()

	var mob *component.Hostile
	var mobID = w.playerID
	for id, h := range w.ecs.Hostiles {
		if h.Kind == component.KindMob {
			mob, mobID = h, id
		}
	}
	if mob == nil {
		t.Fatalf("spawnMob added nothing")
	}
	if mob.Level != 3 {
		t.Fatalf("mob level = %d, want 3", mob.Level)
	}
	if hp := w.ecs.Healths[mobID]; hp.Value != 54 || hp.Max != 54 { // 30 + 12*2
		t.Fatalf("mob health = %v/%v, want 54/54", hp.Value, hp.Max)
	}
	if mob.Speed != 102 { // 90 + 6*2
		t.Fatalf("mob speed = %v, want 102", mob.Speed)
	}
	if mob.ContactDamage != 14 { // 8 + 3*2
		t.Fatalf("mob damage = %v, want 14", mob.ContactDamage)
	}
	if mob.XPReward != 24 { // 12 + 6*2
		t.Fatalf("mob xp reward = %v, want 24", mob.XPReward)
	}
	if mob.GoldReward != 4 { // 2 + 1*2
		t.Fatalf("mob gold reward = %d, want 4", mob.GoldReward)
	}
}

func TestSpawnIntervalShrinksSmoothly(t *testing.T) {
	w := newTestWorld()
	ls := NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	ss := NewSpawnSystem(w.ecs, w.balance, w.zone, w.rng, ls)

	hz := w.balance.Hostiles.Hazards
	if got := ss.currentInterval(0); got != hz.SpawnIntervalBase {
		t.Fatalf("interval at d=0 = %v, want %v", got, hz.SpawnIntervalBase)
	}
	if got := ss.currentInterval(1); math.Abs(got-hz.SpawnIntervalMin) > 1e-9 {
		t.Fatalf("interval at d=1 = %v, want %v", got, hz.SpawnIntervalMin)
	}
	if got := ss.currentInterval(0.5); math.Abs(got-1.375) > 1e-9 {
		t.Fatalf("interval at d=0.5 = %v, want 1.375", got)
	}
}

func TestHazardScaleGrowsWithDifficulty(t *testing.T) {
	if got := hazardScale(0); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("hazardScale(0) = %v, want 1.0", got)
	}
	if got := hazardScale(1); math.Abs(got-1.4) > 1e-9 {
		t.Fatalf("hazardScale(1) = %v, want 1.4", got)
	}
}

func countKind(w *testWorld, kind component.HostileKind) int {
	count := 0
	for _, h := range w.ecs.Hostiles {
		if h.Kind == kind {
			count++
		}
	}
	return count
}
