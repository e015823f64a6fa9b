// internal/net/notifier.go
package net

import (
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/event"
)

// Notifier получает уведомления о вехах забега. Симуляция шлёт их
// fire-and-forget и никогда не ждёт ответа.
type Notifier interface {
	RunStarted(player component.PlayerSnapshot)
	RunEnded(player component.PlayerSnapshot, survival float64)
	LevelUp(player component.PlayerSnapshot)
	Update(dt float64)
	Close()
}

// NopNotifier — заглушка при выключенной сети. Для симуляции отсутствие
// сетевого модуля полностью прозрачно.
type NopNotifier struct{}

func (NopNotifier) RunStarted(component.PlayerSnapshot)        {}
func (NopNotifier) RunEnded(component.PlayerSnapshot, float64) {}
func (NopNotifier) LevelUp(component.PlayerSnapshot)           {}
func (NopNotifier) Update(float64)                             {}
func (NopNotifier) Close()                                     {}

// EventBridge транслирует события диспетчера в вызовы Notifier.
type EventBridge struct {
	notifier Notifier
}

func NewEventBridge(notifier Notifier, dispatcher *event.Dispatcher) *EventBridge {
	b := &EventBridge{notifier: notifier}
	dispatcher.Subscribe(event.RunStarted, b)
	dispatcher.Subscribe(event.RunEnded, b)
	dispatcher.Subscribe(event.LevelGained, b)
	return b
}

func (b *EventBridge) OnEvent(e event.Event) {
	switch e.Type {
	case event.RunStarted:
		if p, ok := e.Data.(event.RunPayload); ok {
			b.notifier.RunStarted(p.Player)
		}
	case event.RunEnded:
		if p, ok := e.Data.(event.RunPayload); ok {
			b.notifier.RunEnded(p.Player, p.SurvivalTime)
		}
	case event.LevelGained:
		if p, ok := e.Data.(event.LevelPayload); ok {
			b.notifier.LevelUp(p.Player)
		}
	}
}
