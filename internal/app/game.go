// internal/app/game.go
package app

import (
	"math"

	"github.com/galcock/Ractr/internal/audio"
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/event"
	"github.com/galcock/Ractr/internal/input"
	"github.com/galcock/Ractr/internal/net"
	"github.com/galcock/Ractr/internal/system"
	"github.com/galcock/Ractr/internal/types"
	"github.com/galcock/Ractr/internal/ui"
	"github.com/galcock/Ractr/internal/utils"
	"github.com/galcock/Ractr/pkg/arena"
)

// Game holds the main game state and logic.
type Game struct {
	Zone               arena.Rect
	ECS                *entity.ECS
	LifecycleSystem    *system.LifecycleSystem
	MovementSystem     *system.MovementSystem
	AttackSystem       *system.AttackSystem
	SpawnSystem        *system.SpawnSystem
	CollisionSystem    *system.CollisionSystem
	ProgressionSystem  *system.ProgressionSystem
	PulseSystem        *system.PulseSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	SpeedButton        *ui.SpeedButton
	PauseButton        *ui.PauseButton
	SpeedMultiplier    float64
	PlayerID           types.EntityID

	balance  *defs.Balance
	notifier net.Notifier
	sound    audio.Player
	gameTime float64
}

// NewGame initializes a new game instance.
// Сеть и звук передаются снаружи; nil означает «без них» и подменяется
// заглушкой здесь, чтобы дальше по коду не было проверок на nil.
func NewGame(balance *defs.Balance, notifier net.Notifier, sound audio.Player, rng *utils.PRNGService) *Game {
	if balance == nil {
		balance = defs.DefaultBalance()
	}
	if notifier == nil {
		notifier = net.NopNotifier{}
	}
	if sound == nil {
		sound = audio.NopPlayer{}
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	zoneDef := balance.ActiveZone()
	zone := arena.FromSize(zoneDef.Width, zoneDef.Height)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Zone:            zone,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		SpeedMultiplier: 1.0,
		balance:         balance,
		notifier:        notifier,
		sound:           sound,
		gameTime:        0.0,
	}

	g.LifecycleSystem = system.NewLifecycleSystem(ecs, balance, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, balance, zone, rng, eventDispatcher)
	g.AttackSystem = system.NewAttackSystem(ecs, balance, rng, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(ecs, balance, zone, rng, g.LifecycleSystem)
	g.CollisionSystem = system.NewCollisionSystem(ecs, balance, rng, eventDispatcher)
	g.ProgressionSystem = system.NewProgressionSystem(ecs, balance, eventDispatcher)
	g.PulseSystem = system.NewPulseSystem(eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs, zone, g.PulseSystem)

	net.NewEventBridge(notifier, eventDispatcher)
	audio.NewEventBridge(sound, eventDispatcher)

	g.initUI()
	g.createPlayerEntity()

	return g
}

// SetIntent передаёт намерения ввода системам перед тиком.
func (g *Game) SetIntent(intent input.Intent) {
	g.MovementSystem.SetIntent(intent)
	g.AttackSystem.SetIntent(intent)
}

// Update advances the game state by deltaTime.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.LifecycleSystem.Update(dt)

	if g.ECS.Run.Phase == component.RunActive {
		g.MovementSystem.Update(dt)
		g.AttackSystem.Update(dt)
		g.SpawnSystem.Update(dt)
		g.CollisionSystem.Update(dt)
		g.ProgressionSystem.Update(dt)
		g.cleanupDestroyedEntities()
	}

	// Косметика затухает и на экране результатов
	g.VisualEffectSystem.Update(dt)
	g.PulseSystem.Update(dt)

	g.notifier.Update(dt)
}

// cleanupDestroyedEntities снимает с арены мёртвых мобов, улетевшие за
// границу опасности и погасшие снаряды. Сущность удаляется ровно один
// раз, сколько бы условий на неё ни сработало разом.
func (g *Game) cleanupDestroyedEntities() {
	for id, hostile := range g.ECS.Hostiles {
		pos := g.ECS.Positions[id]
		offArena := pos != nil && !g.Zone.WithinMargin(pos.X, pos.Y, config.CullMargin)
		if !hostile.Alive || offArena {
			g.ECS.RemoveEntity(id)
		}
	}
	for id, proj := range g.ECS.Projectiles {
		pos := g.ECS.Positions[id]
		offArena := pos != nil && !g.Zone.WithinMargin(pos.X, pos.Y, config.CullMargin)
		if proj.Lifetime <= 0 || offArena {
			g.ECS.RemoveEntity(id)
		}
	}
}

// clearTransientEntities убирает всё, что не переживает перезапуск забега.
func (g *Game) clearTransientEntities() {
	for id := range g.ECS.Hostiles {
		g.ECS.RemoveEntity(id)
	}
	for id := range g.ECS.Projectiles {
		g.ECS.RemoveEntity(id)
	}
	for id := range g.ECS.DamageFlashes {
		delete(g.ECS.DamageFlashes, id)
	}
}

// HandleSpeedClick обрабатывает клик по кнопке скорости.
func (g *Game) HandleSpeedClick() {
	g.SpeedButton.ToggleState()
	g.SpeedMultiplier = math.Pow(2, float64(g.SpeedButton.CurrentState))
}

// HandlePauseClick обрабатывает клик по кнопке паузы.
func (g *Game) HandlePauseClick() {
	g.PauseButton.TogglePause()
}

func (g *Game) initUI() {
	pauseX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	pauseY := float32(config.SpeedButtonY)
	g.PauseButton = ui.NewPauseButton(pauseX, pauseY, config.IndicatorRadius,
		config.TextLightColor, config.PlayerColor)

	speedX := pauseX - float32(config.IndicatorOffsetX)*1.8
	g.SpeedButton = ui.NewSpeedButton(speedX, pauseY, config.SpeedButtonSize,
		config.SpeedButtonColors)
}

// createPlayerEntity создаёт сущность игрока и регистрирует её компоненты.
func (g *Game) createPlayerEntity() {
	g.PlayerID = g.ECS.NewEntity()
	g.ECS.Positions[g.PlayerID] = &component.Position{}
	g.ECS.Velocities[g.PlayerID] = &component.Velocity{}
	g.ECS.Healths[g.PlayerID] = &component.Health{}
	g.ECS.PlayerStates[g.PlayerID] = &component.PlayerState{}
	g.ECS.Renderables[g.PlayerID] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(g.balance.Player.Radius),
		HasStroke: true,
	}
	g.applyPlayerBaseline()
}
