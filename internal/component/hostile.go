// internal/component/hostile.go
package component

// HostileKind разделяет два семейства враждебных сущностей.
type HostileKind int

const (
	KindHazard HostileKind = iota // баллистическая опасность без здоровья
	KindMob                       // убиваемый моб с поведением
)

// MobBehavior — режим передвижения моба.
type MobBehavior int

const (
	BehaviorChaser MobBehavior = iota
	BehaviorWanderer
)

// Hostile описывает враждебную сущность. У опасностей (hazard) нет здоровья
// и поведения — только контактный урон и вектор скорости; мобы дополнительно
// несут поля поведения и награды.
type Hostile struct {
	Kind          HostileKind
	Radius        float64
	ContactDamage float64
	Alive         bool // события смерти моба срабатывают ровно один раз

	Behavior      MobBehavior
	Speed         float64
	AggroRange    float64
	WanderHeading float64 // радианы
	WanderTimer   float64 // сколько осталось держать текущий курс
	Level         int
	XPReward      float64
	GoldReward    int

	// NearMissed не даёт одной сущности накручивать серию «на волоске»
	// каждый кадр, пока она держится рядом с игроком.
	NearMissed bool
}
