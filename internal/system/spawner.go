// internal/system/spawner.go
package system

import (
	"math"

	"github.com/galcock/Ractr/internal/component"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/entity"
	"github.com/galcock/Ractr/internal/utils"
	"github.com/galcock/Ractr/pkg/arena"
)

// SpawnSystem решает, когда и сколько врагов выходит на арену.
// Опасности идут пачками по таймеру, сжимающемуся с ростом сложности;
// мобы добавляются фоновым процессом с низкой вероятностью за тик.
type SpawnSystem struct {
	ecs        *entity.ECS
	balance    *defs.Balance
	zone       arena.Rect
	rng        *utils.PRNGService
	lifecycle  *LifecycleSystem
	spawnTimer float64
}

func NewSpawnSystem(ecs *entity.ECS, balance *defs.Balance, zone arena.Rect, rng *utils.PRNGService, lifecycle *LifecycleSystem) *SpawnSystem {
	s := &SpawnSystem{ecs: ecs, balance: balance, zone: zone, rng: rng, lifecycle: lifecycle}
	s.Reset()
	return s
}

// Reset взводит таймер спавна на базовый интервал нового забега.
func (s *SpawnSystem) Reset() {
	s.spawnTimer = s.balance.Hostiles.Hazards.SpawnIntervalBase
}

func (s *SpawnSystem) Update(deltaTime float64) {
	difficulty := s.lifecycle.DifficultyFactor()

	s.spawnTimer -= deltaTime
	if s.spawnTimer <= 0 {
		s.spawnTimer = s.currentInterval(difficulty)
		s.spawnHazards(difficulty)
	}

	s.maybeSpawnMob(deltaTime)
}

// currentInterval сжимает паузу между пачками по мере роста сложности.
// Сглаживание убирает излом скорости спавна на границах разгона.
func (s *SpawnSystem) currentInterval(difficulty float64) float64 {
	hz := s.balance.Hostiles.Hazards
	return utils.Lerp(hz.SpawnIntervalBase, hz.SpawnIntervalMin, utils.SmoothStep(difficulty))
}

// spawnHazards выпускает пачку опасностей. Размер пачки растёт на единицу
// за каждый пройденный порог выживания и урезается свободным местом
// под потолком: полная арена молча пропускает спавн.
func (s *SpawnSystem) spawnHazards(difficulty float64) {
	count := 1
	for _, threshold := range s.balance.Difficulty.Thresholds {
		if s.ecs.Run.SurvivalTime >= threshold {
			count++
		}
	}

	budget := s.balance.Hostiles.Hazards.Cap - s.countHostiles(component.KindHazard)
	if budget <= 0 {
		return
	}
	if count > budget {
		count = budget
	}

	for i := 0; i < count; i++ {
		s.spawnHazard(difficulty)
	}
}

func (s *SpawnSystem) spawnHazard(difficulty float64) {
	hz := s.balance.Hostiles.Hazards

	side := arena.Side(s.rng.Intn(4))
	radius := s.rng.Range(hz.RadiusMin, hz.RadiusMax) * hazardScale(difficulty)
	x, y := s.zone.PerimeterPoint(side, s.rng.Float64(), radius)

	// Двойной разгон скорости: ограниченный множитель от сложности
	// плюс медленный линейный рост без потолка.
	speed := hz.SpeedBase*(1+0.6*difficulty) +
		s.balance.Difficulty.SpeedIncrement*0.15*s.ecs.Run.SurvivalTime
	speed += s.rng.Range(0, hz.SpeedBand)
	drift := s.rng.Range(-hz.DriftBand, hz.DriftBand)

	// Основная компонента — внутрь арены, снос — вдоль её края.
	nx, ny := side.InwardNormal()
	vx := nx*speed - ny*drift
	vy := ny*speed + nx*drift

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{VX: vx, VY: vy}
	s.ecs.Hostiles[id] = &component.Hostile{
		Kind:          component.KindHazard,
		Radius:        radius,
		ContactDamage: hz.ContactDamage,
		Alive:         true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.HazardColor,
		Radius: float32(radius),
	}
}

// hazardScale укрупняет поздние опасности: единица на старте,
// 1.4 к концу разгона.
func hazardScale(difficulty float64) float64 {
	sizeFactor := 0.5 + 0.5*difficulty
	return 0.6 + 0.8*sizeFactor
}

// maybeSpawnMob — фоновый процесс добавления мобов. Включается после
// стартового порога выживания и ограничен собственным потолком.
func (s *SpawnSystem) maybeSpawnMob(deltaTime float64) {
	mb := s.balance.Hostiles.Mobs
	if s.ecs.Run.SurvivalTime < mb.StartTime {
		return
	}
	if s.countHostiles(component.KindMob) >= mb.Cap {
		return
	}
	if s.rng.Float64() >= mb.SpawnChance*deltaTime {
		return
	}
	s.spawnMob()
}

func (s *SpawnSystem) spawnMob() {
	mb := s.balance.Hostiles.Mobs

	// Уровень мобов растёт ступенями по времени выживания,
	// вместе с ним — здоровье, скорость, урон и награды.
	level := 1 + int(s.ecs.Run.SurvivalTime/mb.LevelEvery)
	side := arena.Side(s.rng.Intn(4))
	x, y := s.zone.PerimeterPoint(side, s.rng.Float64(), mb.Radius)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	health := mb.Health + mb.HealthPerLevel*float64(level-1)
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Hostiles[id] = &component.Hostile{
		Kind:          component.KindMob,
		Radius:        mb.Radius,
		ContactDamage: mb.ContactDamage + mb.DamagePerLevel*float64(level-1),
		Alive:         true,
		Behavior:      component.BehaviorWanderer,
		Speed:         mb.Speed + mb.SpeedPerLevel*float64(level-1),
		AggroRange:    mb.AggroRange,
		WanderHeading: s.rng.Range(0, 2*math.Pi),
		WanderTimer:   s.rng.Range(1.0, 3.5),
		Level:         level,
		XPReward:      mb.XPReward + mb.XPPerLevel*float64(level-1),
		GoldReward:    mb.GoldReward + mb.GoldPerLevel*(level-1),
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.MobColor,
		Radius: float32(mb.Radius),
	}
}

func (s *SpawnSystem) countHostiles(kind component.HostileKind) int {
	count := 0
	for _, h := range s.ecs.Hostiles {
		if h.Kind == kind {
			count++
		}
	}
	return count
}
