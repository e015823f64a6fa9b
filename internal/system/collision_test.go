// internal/system/collision_test.go
package system

import (
	"testing"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/event"
)

func TestHazardContactDamagesAndArmsInvuln(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.PlayerDamaged)

	w.player().NearMissStreak = 3
	hid := w.addHazard(200, 180, 10) // зазор 20 < 24, контакт
	cs.Update(0.016)

	if got := w.playerHealth().Value; got != 89 { // 100 - round(12 - 2/2)
		t.Fatalf("health after hit = %v, want 89", got)
	}
	if got := w.player().InvulnTimer; got != w.balance.Player.InvulnTime {
		t.Fatalf("invuln = %v, want %v", got, w.balance.Player.InvulnTime)
	}
	if w.player().NearMissStreak != 0 {
		t.Fatalf("streak survived a real hit: %d", w.player().NearMissStreak)
	}
	if _, ok := w.ecs.DamageFlashes[w.playerID]; !ok {
		t.Fatalf("no damage flash on player")
	}
	if counter.counts[event.PlayerDamaged] != 1 {
		t.Fatalf("PlayerDamaged = %d, want 1", counter.counts[event.PlayerDamaged])
	}
	payload := counter.last[event.PlayerDamaged].Data.(event.DamagePayload)
	if payload.Amount != 11 || payload.Attacker != hid {
		t.Fatalf("payload = %+v, want amount 11 from %d", payload, hid)
	}
}

func TestTouchingCirclesCountAsHit(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)

	// Ровно касание: 14 + 10 = 24 единицы между центрами.
	w.addHazard(224, 200, 10)
	cs.Update(0.016)
	if got := w.playerHealth().Value; got != 89 {
		t.Fatalf("touching circles did not hit: health %v", got)
	}
}

func TestJustSeparatedCirclesNearMissInstead(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.NearMiss, event.PlayerDamaged)

	w.addHazard(224.001, 200, 10) // на волосок дальше касания
	cs.Update(0.016)

	if got := w.playerHealth().Value; got != 100 {
		t.Fatalf("separated circles dealt damage: health %v", got)
	}
	if counter.counts[event.PlayerDamaged] != 0 {
		t.Fatalf("PlayerDamaged fired without contact")
	}
	if counter.counts[event.NearMiss] != 1 || w.player().NearMissStreak != 1 {
		t.Fatalf("near miss not counted: events %d, streak %d",
			counter.counts[event.NearMiss], w.player().NearMissStreak)
	}
}

func TestInvulnWindowBlocksSecondHit(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.PlayerDamaged)

	w.addHazard(200, 180, 10)
	cs.Update(0.016)
	cs.Update(0.016) // окно неуязвимости ещё открыто

	if got := w.playerHealth().Value; got != 89 {
		t.Fatalf("second hit landed through invuln: health %v", got)
	}
	if counter.counts[event.PlayerDamaged] != 1 {
		t.Fatalf("PlayerDamaged = %d, want 1", counter.counts[event.PlayerDamaged])
	}
}

func TestMitigationNeverDropsBelowOne(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)

	w.player().Defense = 100 // половина защиты съела бы весь урон с запасом
	w.addHazard(200, 180, 10)
	cs.Update(0.016)

	if got := w.playerHealth().Value; got != 99 {
		t.Fatalf("health = %v, want 99 (floor damage 1)", got)
	}
}

func TestLethalHitEndsRun(t *testing.T) {
	w := newTestWorld()
	NewLifecycleSystem(w.ecs, w.balance, w.dispatcher)
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.PlayerDied, event.RunEnded)

	w.playerHealth().Value = 5
	w.addHazard(200, 180, 10)
	cs.Update(0.016)

	if got := w.playerHealth().Value; got != 0 {
		t.Fatalf("health = %v, want 0 (clamped)", got)
	}
	if counter.counts[event.PlayerDied] != 1 {
		t.Fatalf("PlayerDied = %d, want 1", counter.counts[event.PlayerDied])
	}
	if w.ecs.Run.Phase != component.RunEnded {
		t.Fatalf("run phase = %v, want ended", w.ecs.Run.Phase)
	}
}

func TestNearMissCountsOncePerVisit(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.NearMiss)

	hid := w.addHazard(230, 200, 10) // зазор 30: в полосе 24..42
	cs.Update(0.016)
	cs.Update(0.016) // та же сущность висит в полосе — серия не растёт

	if w.player().NearMissStreak != 1 || counter.counts[event.NearMiss] != 1 {
		t.Fatalf("streak %d events %d after lingering hazard, want 1/1",
			w.player().NearMissStreak, counter.counts[event.NearMiss])
	}

	// Вышел из полосы — флаг сбрасывается, повторный заход считается заново.
	w.ecs.Positions[hid].X = 300
	cs.Update(0.016)
	w.ecs.Positions[hid].X = 230
	cs.Update(0.016)

	if w.player().NearMissStreak != 2 || counter.counts[event.NearMiss] != 2 {
		t.Fatalf("streak %d events %d after re-entry, want 2/2",
			w.player().NearMissStreak, counter.counts[event.NearMiss])
	}
}

func TestProjectileSpentOnFirstMobOnly(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)

	// Два моба в зоне поражения одного снаряда: порядок обхода карты
	// не определён, поэтому проверяется суммарный урон.
	m1 := w.addMob(100, 100, 30)
	m2 := w.addMob(104, 100, 30)
	w.addProjectile(102, 100, 10, 0.5)
	cs.Update(0.016)

	total := w.ecs.Healths[m1].Value + w.ecs.Healths[m2].Value
	if total != 50 { // 60 минус ровно один заряд
		t.Fatalf("total mob health = %v, want 50", total)
	}
	var spent *component.Projectile
	for _, proj := range w.ecs.Projectiles {
		spent = proj
	}
	if spent.Lifetime != 0 {
		t.Fatalf("projectile lifetime = %v, want 0 after hit", spent.Lifetime)
	}
}

func TestMobDeathFiresKillOnce(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.HostileKilled)

	mid := w.addMob(100, 100, 8)
	w.addProjectile(100, 100, 10, 0.5)
	cs.Update(0.016)

	h := w.ecs.Hostiles[mid]
	if h.Alive {
		t.Fatalf("mob survived lethal hit")
	}
	if got := w.ecs.Healths[mid].Value; got != 0 {
		t.Fatalf("mob health = %v, want 0", got)
	}
	if counter.counts[event.HostileKilled] != 1 {
		t.Fatalf("HostileKilled = %d, want 1", counter.counts[event.HostileKilled])
	}
	payload := counter.last[event.HostileKilled].Data.(event.KillPayload)
	if payload.Victim != mid || payload.Gold != 2 {
		t.Fatalf("kill payload = %+v", payload)
	}
	if payload.XP < 12 || payload.XP >= 16 { // награда 12 плюс джиттер [0, 4)
		t.Fatalf("kill xp = %v, want [12, 16)", payload.XP)
	}

	// Мёртвый моб и потраченный снаряд больше ничего не делают.
	cs.Update(0.016)
	if counter.counts[event.HostileKilled] != 1 {
		t.Fatalf("kill fired twice")
	}
}

func TestHazardsAreTransparentToProjectiles(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)

	w.addHazard(300, 300, 10)
	pid := w.addProjectile(300, 300, 10, 0.5)
	cs.Update(0.016)

	if got := w.ecs.Projectiles[pid].Lifetime; got != 0.5 {
		t.Fatalf("projectile spent on a hazard: lifetime %v", got)
	}
}

func TestDeadMobDoesNotTouchPlayer(t *testing.T) {
	w := newTestWorld()
	cs := NewCollisionSystem(w.ecs, w.balance, w.rng, w.dispatcher)

	mid := w.addMob(200, 200, 30) // прямо на игроке
	w.ecs.Hostiles[mid].Alive = false
	cs.Update(0.016)

	if got := w.playerHealth().Value; got != 100 {
		t.Fatalf("dead mob dealt damage: health %v", got)
	}
}
