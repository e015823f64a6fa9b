// internal/defs/types.go
package defs

import "math"

// PlayerDefs holds the config-derived baseline for the controlled entity.
type PlayerDefs struct {
	MaxHealth      float64        `json:"max_health"`
	MaxMana        float64        `json:"max_mana"`
	ManaRegen      float64        `json:"mana_regen"`
	MoveSpeed      float64        `json:"move_speed"`
	DashSpeed      float64        `json:"dash_speed"`
	DashCooldown   float64        `json:"dash_cooldown"`
	InvulnTime     float64        `json:"invuln_time"`
	Radius         float64        `json:"radius"`
	Strength       int            `json:"strength"`
	Agility        int            `json:"agility"`
	Intelligence   int            `json:"intelligence"`
	AttackPower    float64        `json:"attack_power"`
	Defense        float64        `json:"defense"`
	CritChance     float64        `json:"crit_chance"`
	AttackCooldown float64        `json:"attack_cooldown"`
	AttackManaCost float64        `json:"attack_mana_cost"`
	Projectile     ProjectileDefs `json:"projectile"`
}

// ProjectileDefs describes the projectiles fired by the attack action.
type ProjectileDefs struct {
	Speed    float64 `json:"speed"`
	Radius   float64 `json:"radius"`
	Lifetime float64 `json:"lifetime"`
}

// HostileDefs groups the two hostile families.
type HostileDefs struct {
	Hazards HazardDefs `json:"hazards"`
	Mobs    MobDefs    `json:"mobs"`
}

// HazardDefs describes the ballistic hazards thrown at the player by the spawner.
type HazardDefs struct {
	SpawnIntervalBase float64 `json:"spawn_interval_base"`
	SpawnIntervalMin  float64 `json:"spawn_interval_min"`
	SpeedBase         float64 `json:"speed_base"`
	SpeedBand         float64 `json:"speed_band"` // случайная добавка к скорости, [0, band)
	DriftBand         float64 `json:"drift_band"` // боковой снос, [-band, band)
	RadiusMin         float64 `json:"radius_min"`
	RadiusMax         float64 `json:"radius_max"`
	ContactDamage     float64 `json:"contact_damage"`
	Cap               int     `json:"cap"`
	NearMissPadding   float64 `json:"near_miss_padding"`
}

// MobDefs describes the killable mobs added by the background spawner.
type MobDefs struct {
	StartTime      float64 `json:"start_time"`   // время выживания, после которого появляются мобы
	SpawnChance    float64 `json:"spawn_chance"` // вероятность спавна в секунду
	Cap            int     `json:"cap"`
	LevelEvery     float64 `json:"level_every"` // каждые N секунд уровень мобов растёт
	Radius         float64 `json:"radius"`
	Health         float64 `json:"health"`
	HealthPerLevel float64 `json:"health_per_level"`
	Speed          float64 `json:"speed"`
	SpeedPerLevel  float64 `json:"speed_per_level"`
	ContactDamage  float64 `json:"contact_damage"`
	DamagePerLevel float64 `json:"damage_per_level"`
	AggroRange     float64 `json:"aggro_range"`
	WanderFactor   float64 `json:"wander_factor"` // доля скорости при блуждании
	XPReward       float64 `json:"xp_reward"`
	XPPerLevel     float64 `json:"xp_per_level"`
	XPJitter       float64 `json:"xp_jitter"`
	GoldReward     int     `json:"gold_reward"`
	GoldPerLevel   int     `json:"gold_per_level"`
}

// DifficultyDefs holds the parameters of the difficulty ramp.
type DifficultyDefs struct {
	RampDuration   float64   `json:"ramp_duration"`
	SpeedIncrement float64   `json:"speed_increment"`  // линейный прирост скорости врагов, ед/с за секунду выживания
	Thresholds     []float64 `json:"spawn_thresholds"` // пороги выживания, добавляющие +1 к пачке спавна
}

// ProgressionDefs holds the leveling curve and per-level stat deltas.
type ProgressionDefs struct {
	XPBase               float64 `json:"xp_base"`
	XPExponent           float64 `json:"xp_exponent"`
	XPTrickle            float64 `json:"xp_trickle"` // пассивный опыт в секунду
	XPPerHit             float64 `json:"xp_per_hit"` // утешительный опыт за полученный удар
	StrengthPerLevel     int     `json:"strength_per_level"`
	AgilityPerLevel      int     `json:"agility_per_level"`
	IntelligencePerLevel int     `json:"intelligence_per_level"`
	HealthPerLevel       float64 `json:"health_per_level"`
	ManaPerLevel         float64 `json:"mana_per_level"`
	AttackPerLevel       float64 `json:"attack_per_level"`
	DefensePerLevel      float64 `json:"defense_per_level"`
	CritPerLevel         float64 `json:"crit_per_level"`
}

// ZoneDefs describes a playable zone (arena rectangle).
type ZoneDefs struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MetaDefs holds zone selection and the zone table.
type MetaDefs struct {
	StartZone string     `json:"start_zone"`
	Zones     []ZoneDefs `json:"zones"`
}

// Balance is the root of the game balance configuration.
type Balance struct {
	Player      PlayerDefs      `json:"player"`
	Hostiles    HostileDefs     `json:"hostiles"`
	Difficulty  DifficultyDefs  `json:"difficulty"`
	Progression ProgressionDefs `json:"progression"`
	Meta        MetaDefs        `json:"meta"`
}

// XPToNext возвращает порог опыта для перехода с уровня level на следующий.
func (p ProgressionDefs) XPToNext(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Floor(p.XPBase*math.Pow(float64(level-1), p.XPExponent)) + p.XPBase
}

// ActiveZone возвращает зону, выбранную в meta.start_zone.
// Если зона не найдена, берётся первая из таблицы; если таблица пуста —
// встроенная зона по умолчанию.
func (b *Balance) ActiveZone() ZoneDefs {
	for _, z := range b.Meta.Zones {
		if z.ID == b.Meta.StartZone {
			return z
		}
	}
	if len(b.Meta.Zones) > 0 {
		return b.Meta.Zones[0]
	}
	return ZoneDefs{ID: "arena", Name: "Arena", Width: 1200, Height: 900}
}
