// internal/audio/audio.go
package audio

import "github.com/galcock/Ractr/internal/event"

// Cue — короткий звуковой сигнал игрового события.
type Cue int

const (
	CueDash Cue = iota
	CueHit
	CueKill
	CueLevelUp
	CueFire
	CueGameOver
)

// Player проигрывает сигналы. Симуляция звука не ждёт и от него не зависит.
type Player interface {
	Play(cue Cue)
	Close()
}

// NopPlayer — заглушка при выключенном звуке.
type NopPlayer struct{}

func (NopPlayer) Play(Cue) {}
func (NopPlayer) Close()   {}

// EventBridge переводит события боя в звуковые сигналы.
type EventBridge struct {
	player Player
}

func NewEventBridge(player Player, dispatcher *event.Dispatcher) *EventBridge {
	b := &EventBridge{player: player}
	dispatcher.Subscribe(event.PlayerDamaged, b)
	dispatcher.Subscribe(event.HostileKilled, b)
	dispatcher.Subscribe(event.LevelGained, b)
	dispatcher.Subscribe(event.DashPerformed, b)
	dispatcher.Subscribe(event.ProjectileFired, b)
	dispatcher.Subscribe(event.RunEnded, b)
	return b
}

func (b *EventBridge) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDamaged:
		b.player.Play(CueHit)
	case event.HostileKilled:
		b.player.Play(CueKill)
	case event.LevelGained:
		b.player.Play(CueLevelUp)
	case event.DashPerformed:
		b.player.Play(CueDash)
	case event.ProjectileFired:
		b.player.Play(CueFire)
	case event.RunEnded:
		b.player.Play(CueGameOver)
	}
}
