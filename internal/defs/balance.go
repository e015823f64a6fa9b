// internal/defs/balance.go
package defs

// DefaultBalance возвращает встроенные значения баланса. Они используются,
// когда файл конфигурации отсутствует, и как подложка при частичном файле.
func DefaultBalance() *Balance {
	return &Balance{
		Player: PlayerDefs{
			MaxHealth:      100,
			MaxMana:        50,
			ManaRegen:      4,
			MoveSpeed:      220,
			DashSpeed:      520,
			DashCooldown:   1.2,
			InvulnTime:     0.5,
			Radius:         14,
			Strength:       5,
			Agility:        5,
			Intelligence:   5,
			AttackPower:    10,
			Defense:        2,
			CritChance:     0.05,
			AttackCooldown: 0.35,
			AttackManaCost: 3,
			Projectile: ProjectileDefs{
				Speed:    420,
				Radius:   4,
				Lifetime: 1.1,
			},
		},
		Hostiles: HostileDefs{
			Hazards: HazardDefs{
				SpawnIntervalBase: 2.2,
				SpawnIntervalMin:  0.55,
				SpeedBase:         120,
				SpeedBand:         60,
				DriftBand:         40,
				RadiusMin:         8,
				RadiusMax:         18,
				ContactDamage:     12,
				Cap:               14,
				NearMissPadding:   18,
			},
			Mobs: MobDefs{
				StartTime:      15,
				SpawnChance:    0.35,
				Cap:            22,
				LevelEvery:     30,
				Radius:         12,
				Health:         30,
				HealthPerLevel: 12,
				Speed:          90,
				SpeedPerLevel:  6,
				ContactDamage:  8,
				DamagePerLevel: 3,
				AggroRange:     260,
				WanderFactor:   0.45,
				XPReward:       12,
				XPPerLevel:     6,
				XPJitter:       4,
				GoldReward:     2,
				GoldPerLevel:   1,
			},
		},
		Difficulty: DifficultyDefs{
			RampDuration:   60,
			SpeedIncrement: 6,
			Thresholds:     []float64{10, 20, 30},
		},
		Progression: ProgressionDefs{
			XPBase:               100,
			XPExponent:           1.5,
			XPTrickle:            2,
			XPPerHit:             5,
			StrengthPerLevel:     2,
			AgilityPerLevel:      1,
			IntelligencePerLevel: 1,
			HealthPerLevel:       10,
			ManaPerLevel:         5,
			AttackPerLevel:       2,
			DefensePerLevel:      1,
			CritPerLevel:         0.005,
		},
		Meta: MetaDefs{
			StartZone: "arena",
			Zones: []ZoneDefs{
				{ID: "arena", Name: "Arena", Width: 1200, Height: 900},
			},
		},
	}
}

// sanitize чинит значения, с которыми симуляция не может работать:
// нулевые и отрицательные делители, пустые границы, перевёрнутые диапазоны.
// Каждое битое поле откатывается к значению по умолчанию, остальные не трогаются.
func (b *Balance) sanitize() {
	def := DefaultBalance()

	if b.Player.MaxHealth <= 0 {
		b.Player.MaxHealth = def.Player.MaxHealth
	}
	if b.Player.MaxMana <= 0 {
		b.Player.MaxMana = def.Player.MaxMana
	}
	if b.Player.MoveSpeed <= 0 {
		b.Player.MoveSpeed = def.Player.MoveSpeed
	}
	if b.Player.DashSpeed < b.Player.MoveSpeed {
		b.Player.DashSpeed = def.Player.DashSpeed
	}
	if b.Player.DashCooldown <= 0 {
		b.Player.DashCooldown = def.Player.DashCooldown
	}
	if b.Player.InvulnTime < 0 {
		b.Player.InvulnTime = def.Player.InvulnTime
	}
	if b.Player.Radius <= 0 {
		b.Player.Radius = def.Player.Radius
	}
	if b.Player.AttackCooldown <= 0 {
		b.Player.AttackCooldown = def.Player.AttackCooldown
	}
	if b.Player.Projectile.Speed <= 0 {
		b.Player.Projectile.Speed = def.Player.Projectile.Speed
	}
	if b.Player.Projectile.Radius <= 0 {
		b.Player.Projectile.Radius = def.Player.Projectile.Radius
	}
	if b.Player.Projectile.Lifetime <= 0 {
		b.Player.Projectile.Lifetime = def.Player.Projectile.Lifetime
	}

	hz := &b.Hostiles.Hazards
	if hz.SpawnIntervalBase <= 0 {
		hz.SpawnIntervalBase = def.Hostiles.Hazards.SpawnIntervalBase
	}
	if hz.SpawnIntervalMin <= 0 || hz.SpawnIntervalMin > hz.SpawnIntervalBase {
		hz.SpawnIntervalMin = def.Hostiles.Hazards.SpawnIntervalMin
		if hz.SpawnIntervalMin > hz.SpawnIntervalBase {
			hz.SpawnIntervalMin = hz.SpawnIntervalBase
		}
	}
	if hz.SpeedBase <= 0 {
		hz.SpeedBase = def.Hostiles.Hazards.SpeedBase
	}
	if hz.RadiusMin <= 0 {
		hz.RadiusMin = def.Hostiles.Hazards.RadiusMin
	}
	if hz.RadiusMax < hz.RadiusMin {
		hz.RadiusMax = hz.RadiusMin
	}
	if hz.Cap < 0 {
		hz.Cap = def.Hostiles.Hazards.Cap
	}

	mb := &b.Hostiles.Mobs
	if mb.Cap < 0 {
		mb.Cap = def.Hostiles.Mobs.Cap
	}
	if mb.LevelEvery <= 0 {
		mb.LevelEvery = def.Hostiles.Mobs.LevelEvery
	}
	if mb.Radius <= 0 {
		mb.Radius = def.Hostiles.Mobs.Radius
	}
	if mb.Health <= 0 {
		mb.Health = def.Hostiles.Mobs.Health
	}
	if mb.Speed <= 0 {
		mb.Speed = def.Hostiles.Mobs.Speed
	}
	if mb.WanderFactor <= 0 || mb.WanderFactor > 1 {
		mb.WanderFactor = def.Hostiles.Mobs.WanderFactor
	}

	if b.Difficulty.RampDuration <= 0 {
		b.Difficulty.RampDuration = def.Difficulty.RampDuration
	}

	if b.Progression.XPBase <= 0 {
		b.Progression.XPBase = def.Progression.XPBase
	}
	if b.Progression.XPExponent <= 0 {
		b.Progression.XPExponent = def.Progression.XPExponent
	}
}
