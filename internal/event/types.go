// internal/event/types.go
package event

import (
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/types"
)

const (
	RunStarted      EventType = "RunStarted"      // Забег начался
	RunEnded        EventType = "RunEnded"        // Забег закончился
	LevelGained     EventType = "LevelGained"     // Игрок получил уровень
	PlayerDamaged   EventType = "PlayerDamaged"   // Игрок получил урон
	PlayerDied      EventType = "PlayerDied"      // Здоровье игрока упало до нуля
	HostileKilled   EventType = "HostileKilled"   // Моб уничтожен
	NearMiss        EventType = "NearMiss"        // Враг прошёл «на волоске»
	DashPerformed   EventType = "DashPerformed"   // Игрок сделал рывок
	ProjectileFired EventType = "ProjectileFired" // Игрок выстрелил
)

// RunPayload сопровождает RunStarted и RunEnded.
type RunPayload struct {
	Player       component.PlayerSnapshot
	SurvivalTime float64 // для RunStarted всегда 0
}

// LevelPayload сопровождает LevelGained; по событию на каждый взятый уровень.
type LevelPayload struct {
	Player component.PlayerSnapshot
	Level  int
}

// DamagePayload сопровождает PlayerDamaged.
type DamagePayload struct {
	Attacker types.EntityID
	Amount   float64
	X, Y     float64
}

// KillPayload сопровождает HostileKilled.
type KillPayload struct {
	Victim types.EntityID
	Level  int
	XP     float64
	Gold   int
	X, Y   float64
	Crit   bool
}

// NearMissPayload сопровождает NearMiss.
type NearMissPayload struct {
	Streak int
	X, Y   float64
}

// DashPayload сопровождает DashPerformed.
type DashPayload struct {
	X, Y float64
}

// FirePayload сопровождает ProjectileFired.
type FirePayload struct {
	X, Y float64
	Crit bool
}
