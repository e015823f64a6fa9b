// internal/component/player.go
package component

// PlayerState хранит информацию, специфичную для игрока: прогрессию,
// атрибуты с производными боевыми характеристиками и таймеры действий.
type PlayerState struct {
	Level    int     // Текущий уровень игрока
	XP       float64 // Текущее количество очков опыта
	XPToNext float64 // Количество опыта, необходимое для следующего уровня
	Gold     int

	Strength     int
	Agility      int
	Intelligence int

	// Производные характеристики. Пересчитываются при каждом изменении атрибутов.
	AttackPower float64
	Defense     float64
	CritChance  float64 // доля, [0, 1]

	Mana      float64
	MaxMana   float64
	ManaRegen float64 // ед/с

	MoveSpeed         float64
	DashSpeed         float64
	DashCooldown      float64 // оставшееся время до следующего рывка
	DashCooldownMax   float64
	InvulnTimer       float64 // окно неуязвимости после удара
	AttackCooldown    float64
	AttackCooldownMax float64
	AttackManaCost    float64
	Facing            float64 // радианы, направление последнего движения
	Radius            float64

	NearMissStreak int // серия «на волоске», сбрасывается реальным ударом
}
