// internal/system/pulse.go
package system

import (
	"image/color"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/utils"
)

// PulseSystem хранит ограниченную коллекцию затухающих колец-маркеров.
// Кольца порождаются событиями боя и живут независимыми жизнями;
// геймплей их никогда не читает.
type PulseSystem struct {
	pulses      []component.Pulse
	nearMissGap float64 // обратный отсчёт до следующего кольца «на волоске»
}

func NewPulseSystem(dispatcher *event.Dispatcher) *PulseSystem {
	s := &PulseSystem{pulses: make([]component.Pulse, 0, config.MaxPulses)}
	dispatcher.Subscribe(event.PlayerDamaged, s)
	dispatcher.Subscribe(event.NearMiss, s)
	dispatcher.Subscribe(event.DashPerformed, s)
	dispatcher.Subscribe(event.HostileKilled, s)
	dispatcher.Subscribe(event.LevelGained, s)
	dispatcher.Subscribe(event.RunEnded, s)
	return s
}

// Spawn добавляет кольцо. При переполнении вытесняется самое старое,
// чтобы коллекция не росла без предела.
func (s *PulseSystem) Spawn(x, y, maxRadius, life float64, clr color.RGBA, strokeWidth float32) {
	if len(s.pulses) >= config.MaxPulses {
		s.pulses = s.pulses[1:]
	}
	s.pulses = append(s.pulses, component.Pulse{
		X:           x,
		Y:           y,
		Radius:      maxRadius * 0.3,
		MaxRadius:   maxRadius,
		Life:        life,
		MaxLife:     life,
		Color:       clr,
		StrokeWidth: strokeWidth,
	})
}

// Update продвигает жизни колец и удерживает только живые —
// один проход с уплотнением на месте.
func (s *PulseSystem) Update(deltaTime float64) {
	s.nearMissGap -= deltaTime

	alive := s.pulses[:0]
	for i := range s.pulses {
		p := s.pulses[i]
		p.Life -= deltaTime
		if p.Life <= 0 {
			continue
		}
		// Кольцо раскрывается от трети до полного радиуса.
		progress := 1 - p.Life/p.MaxLife
		p.Radius = p.MaxRadius * (0.3 + 0.7*utils.SmoothStep(progress))
		alive = append(alive, p)
	}
	s.pulses = alive
}

// Pulses отдаёт живые кольца для отрисовки.
// Срез переиспользуется между кадрами — сохранять его нельзя.
func (s *PulseSystem) Pulses() []component.Pulse {
	return s.pulses
}

// Reset очищает коллекцию при старте нового забега.
func (s *PulseSystem) Reset() {
	s.pulses = s.pulses[:0]
	s.nearMissGap = 0
}

func (s *PulseSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDamaged:
		if p, ok := e.Data.(event.DamagePayload); ok {
			s.Spawn(p.X, p.Y, config.PulseDamageRadius, config.PulseShortLife, config.PulseDamageColor, 3)
		}
	case event.NearMiss:
		// Кольца «на волоске» прорежены минимальным интервалом,
		// сама серия при этом считается без пропусков.
		if s.nearMissGap > 0 {
			return
		}
		if p, ok := e.Data.(event.NearMissPayload); ok {
			s.nearMissGap = config.NearMissPulseGap
			s.Spawn(p.X, p.Y, config.PulseNearMissRadius, config.PulseShortLife, config.PulseNearMissColor, 2)
		}
	case event.DashPerformed:
		if p, ok := e.Data.(event.DashPayload); ok {
			s.Spawn(p.X, p.Y, config.PulseDashRadius, config.PulseShortLife, config.PulseDashColor, 2)
		}
	case event.HostileKilled:
		if p, ok := e.Data.(event.KillPayload); ok {
			s.Spawn(p.X, p.Y, config.PulseKillRadius, config.PulseShortLife, config.PulseKillColor, 3)
		}
	case event.LevelGained:
		if p, ok := e.Data.(event.LevelPayload); ok {
			s.Spawn(p.Player.X, p.Player.Y, config.PulseLevelUpRadius, config.PulseLongLife, config.PulseLevelUpColor, 4)
		}
	case event.RunEnded:
		if p, ok := e.Data.(event.RunPayload); ok {
			s.Spawn(p.Player.X, p.Player.Y, config.PulseEndRadius, config.PulseLongLife, config.PulseEndColor, 5)
		}
	}
}
