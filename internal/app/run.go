// internal/app/run.go
package app

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/event"
)

// StartRun сбрасывает всё изменяемое состояние и запускает забег.
// Вызов при уже активном забеге просто реинициализирует его заново.
func (g *Game) StartRun() {
	g.clearTransientEntities()
	g.PulseSystem.Reset()
	g.applyPlayerBaseline()

	run := g.ECS.Run
	run.SurvivalTime = 0
	run.Phase = component.RunActive
	g.SpawnSystem.Reset()

	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: event.RunPayload{
		Player: g.PlayerSnapshot(),
	}})
}

// applyPlayerBaseline возвращает игрока к стартовым значениям конфига:
// первый уровень, полные ресурсы, центр арены.
func (g *Game) applyPlayerBaseline() {
	pl := g.balance.Player

	pos := g.ECS.Positions[g.PlayerID]
	vel := g.ECS.Velocities[g.PlayerID]
	hp := g.ECS.Healths[g.PlayerID]
	ps := g.ECS.PlayerStates[g.PlayerID]
	if pos == nil || vel == nil || hp == nil || ps == nil {
		return
	}

	pos.X, pos.Y = g.Zone.Center()
	vel.VX, vel.VY = 0, 0
	hp.Max = pl.MaxHealth
	hp.Value = pl.MaxHealth

	*ps = component.PlayerState{
		Level:             1,
		XPToNext:          g.balance.Progression.XPToNext(1),
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

	if rend := g.ECS.Renderables[g.PlayerID]; rend != nil {
		rend.Radius = float32(pl.Radius)
	}
}

// ApplyBalance вживляет новый баланс на лету. Системы держат общий
// указатель, поэтому значения подменяются на месте. У идущего забега
// сохраняются доли здоровья и маны, а не абсолютные значения: влетевший
// конфиг не должен ни лечить, ни убивать игрока.
func (g *Game) ApplyBalance(nb defs.Balance) {
	hp := g.ECS.Healths[g.PlayerID]
	ps := g.ECS.PlayerStates[g.PlayerID]

	active := g.ECS.Run.Phase == component.RunActive
	healthRatio, manaRatio := 1.0, 1.0
	if active && hp != nil && hp.Max > 0 {
		healthRatio = hp.Value / hp.Max
	}
	if active && ps != nil && ps.MaxMana > 0 {
		manaRatio = ps.Mana / ps.MaxMana
	}

	*g.balance = nb

	if hp == nil || ps == nil {
		return
	}

	// Производные характеристики пересчитываются с нуля: база нового
	// конфига плюс приросты за уже взятые уровни, той же формулой,
	// что и при взятии уровня.
	pl := g.balance.Player
	prog := g.balance.Progression
	levels := ps.Level - 1

	maxHealth := pl.MaxHealth
	maxMana := pl.MaxMana
	attackPower := pl.AttackPower
	defense := pl.Defense
	crit := pl.CritChance
	for i := 0; i < levels; i++ {
		maxHealth += prog.HealthPerLevel + math.Round(float64(prog.StrengthPerLevel)*1.5)
		maxMana += prog.ManaPerLevel + math.Round(float64(prog.IntelligencePerLevel)*2)
		attackPower += prog.AttackPerLevel + math.Round(float64(prog.StrengthPerLevel)*0.5)
		defense += prog.DefensePerLevel + math.Round(float64(prog.AgilityPerLevel)*0.5)
		crit += prog.CritPerLevel + float64(prog.AgilityPerLevel)*0.001
	}

	hp.Max = maxHealth
	ps.MaxMana = maxMana
	ps.AttackPower = attackPower
	ps.Defense = defense
	ps.CritChance = crit
	ps.Strength = pl.Strength + prog.StrengthPerLevel*levels
	ps.Agility = pl.Agility + prog.AgilityPerLevel*levels
	ps.Intelligence = pl.Intelligence + prog.IntelligencePerLevel*levels

	ps.ManaRegen = pl.ManaRegen
	ps.MoveSpeed = pl.MoveSpeed
	ps.DashSpeed = pl.DashSpeed
	ps.DashCooldownMax = pl.DashCooldown
	ps.AttackCooldownMax = pl.AttackCooldown
	ps.AttackManaCost = pl.AttackManaCost
	ps.Radius = pl.Radius

	ps.XPToNext = prog.XPToNext(ps.Level)
	if ps.XP >= ps.XPToNext {
		// Порезанная кривая опыта не раздаёт уровни задним числом.
		ps.XP = ps.XPToNext - 1
	}

	hp.Value = hp.Max * healthRatio
	ps.Mana = ps.MaxMana * manaRatio

	if rend := g.ECS.Renderables[g.PlayerID]; rend != nil {
		rend.Radius = float32(pl.Radius)
	}
}

// PlayerSnapshot возвращает снимок игрока для HUD и внешних уведомлений.
func (g *Game) PlayerSnapshot() component.PlayerSnapshot {
	return component.SnapshotPlayer(
		g.ECS.PlayerStates[g.PlayerID],
		g.ECS.Positions[g.PlayerID],
		g.ECS.Healths[g.PlayerID],
	)
}
