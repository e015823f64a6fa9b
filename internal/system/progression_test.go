// internal/system/progression_test.go
package system

import (
	"math"
	"testing"

	"github.com/galcock/Ractr/internal/event"
)

func TestGrantXPCrossesThresholdIntoLevelTwo(t *testing.T) {
	w := newTestWorld()
	ps := NewProgressionSystem(w.ecs, w.balance, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.LevelGained)

	player := w.player()
	player.XP = 95
	ps.GrantXP(10)

	if player.Level != 2 {
		t.Fatalf("level = %d, want 2", player.Level)
	}
	if player.XP != 5 { // 95 + 10 - 100
		t.Fatalf("xp = %v, want 5", player.XP)
	}
	if player.XPToNext != 200 {
		t.Fatalf("xp to next = %v, want 200", player.XPToNext)
	}

	// Плоские приросты плюс округлённый вклад атрибутов.
	hp := w.playerHealth()
	if hp.Max != 113 || hp.Value != 113 { // +10 +round(2*1.5), полное восстановление
		t.Fatalf("health = %v/%v, want 113/113", hp.Value, hp.Max)
	}
	if player.MaxMana != 57 || player.Mana != 57 { // +5 +round(1*2)
		t.Fatalf("mana = %v/%v, want 57/57", player.Mana, player.MaxMana)
	}
	if player.AttackPower != 13 { // +2 +round(2*0.5)
		t.Fatalf("attack = %v, want 13", player.AttackPower)
	}
	if player.Defense != 4 { // +1 +round(1*0.5), половинка округляется вверх
		t.Fatalf("defense = %v, want 4", player.Defense)
	}
	if math.Abs(player.CritChance-0.056) > 1e-9 { // +0.005 +1*0.001
		t.Fatalf("crit = %v, want 0.056", player.CritChance)
	}
	if player.Strength != 7 || player.Agility != 6 || player.Intelligence != 6 {
		t.Fatalf("attributes = %d/%d/%d, want 7/6/6", player.Strength, player.Agility, player.Intelligence)
	}

	if counter.counts[event.LevelGained] != 1 {
		t.Fatalf("LevelGained = %d, want 1", counter.counts[event.LevelGained])
	}
	payload := counter.last[event.LevelGained].Data.(event.LevelPayload)
	if payload.Level != 2 {
		t.Fatalf("payload level = %d, want 2", payload.Level)
	}
}

func TestLumpXPGrantsSeveralLevelsAtOnce(t *testing.T) {
	w := newTestWorld()
	ps := NewProgressionSystem(w.ecs, w.balance, w.dispatcher)
	counter := newEventCounter(w.dispatcher, event.LevelGained)

	ps.GrantXP(305) // 100 до второго, 200 до третьего, 5 в остатке

	player := w.player()
	if player.Level != 3 {
		t.Fatalf("level = %d, want 3", player.Level)
	}
	if player.XP != 5 {
		t.Fatalf("xp = %v, want 5", player.XP)
	}
	if player.XPToNext != 382 { // floor(100*2^1.5) + 100
		t.Fatalf("xp to next = %v, want 382", player.XPToNext)
	}
	if player.XP >= player.XPToNext {
		t.Fatalf("xp %v not below threshold %v", player.XP, player.XPToNext)
	}
	if counter.counts[event.LevelGained] != 2 {
		t.Fatalf("LevelGained = %d, want 2", counter.counts[event.LevelGained])
	}
	if last := counter.last[event.LevelGained].Data.(event.LevelPayload); last.Level != 3 {
		t.Fatalf("last payload level = %d, want 3", last.Level)
	}
}

func TestNonPositiveXPIsIgnored(t *testing.T) {
	w := newTestWorld()
	ps := NewProgressionSystem(w.ecs, w.balance, w.dispatcher)

	ps.GrantXP(0)
	ps.GrantXP(-5)

	if got := w.player().XP; got != 0 {
		t.Fatalf("xp = %v, want 0", got)
	}
}

func TestSurvivalTricklesXP(t *testing.T) {
	w := newTestWorld()
	ps := NewProgressionSystem(w.ecs, w.balance, w.dispatcher)

	ps.Update(0.5)

	if got := w.player().XP; got != 1 { // капель 2/с
		t.Fatalf("xp = %v, want 1", got)
	}
}

func TestTakingAHitGrantsConsolationXP(t *testing.T) {
	w := newTestWorld()
	NewProgressionSystem(w.ecs, w.balance, w.dispatcher)

	w.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.DamagePayload{Amount: 11}})

	if got := w.player().XP; got != 5 {
		t.Fatalf("xp = %v, want 5", got)
	}
}

func TestKillRewardsGoldAndXP(t *testing.T) {
	w := newTestWorld()
	NewProgressionSystem(w.ecs, w.balance, w.dispatcher)

	w.dispatcher.Dispatch(event.Event{Type: event.HostileKilled, Data: event.KillPayload{
		XP:   14.5,
		Gold: 3,
	}})

	player := w.player()
	if player.XP != 14.5 {
		t.Fatalf("xp = %v, want 14.5", player.XP)
	}
	if player.Gold != 3 {
		t.Fatalf("gold = %d, want 3", player.Gold)
	}
}
