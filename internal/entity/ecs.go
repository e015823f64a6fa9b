// internal/entity/ecs.go
package entity

import (
	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Hostiles      map[types.EntityID]*component.Hostile
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	PlayerStates  map[types.EntityID]*component.PlayerState
	Run           *component.RunState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Hostiles:      make(map[types.EntityID]*component.Hostile),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		PlayerStates:  make(map[types.EntityID]*component.PlayerState),
		Run:           &component.RunState{Phase: component.RunIdle},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех коллекций компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Hostiles, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.PlayerStates, id)
}
