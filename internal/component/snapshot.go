// internal/component/snapshot.go
package component

// PlayerSnapshot — срез состояния игрока для рендера и сетевых уведомлений.
// Потребители читают его как значение и не могут задеть живые компоненты.
type PlayerSnapshot struct {
	X            float64 `json:"x" msgpack:"x"`
	Y            float64 `json:"y" msgpack:"y"`
	Level        int     `json:"level" msgpack:"level"`
	XP           float64 `json:"xp" msgpack:"xp"`
	XPToNext     float64 `json:"xp_to_next" msgpack:"xp_to_next"`
	Gold         int     `json:"gold" msgpack:"gold"`
	Health       float64 `json:"health" msgpack:"health"`
	MaxHealth    float64 `json:"max_health" msgpack:"max_health"`
	Mana         float64 `json:"mana" msgpack:"mana"`
	MaxMana      float64 `json:"max_mana" msgpack:"max_mana"`
	Strength     int     `json:"strength" msgpack:"strength"`
	Agility      int     `json:"agility" msgpack:"agility"`
	Intelligence int     `json:"intelligence" msgpack:"intelligence"`
}

// SnapshotPlayer собирает снимок из компонентов игрока. Чистая функция:
// аргументы не мутируются, nil-компоненты дают нулевые поля.
func SnapshotPlayer(ps *PlayerState, pos *Position, hp *Health) PlayerSnapshot {
	var snap PlayerSnapshot
	if ps != nil {
		snap.Level = ps.Level
		snap.XP = ps.XP
		snap.XPToNext = ps.XPToNext
		snap.Gold = ps.Gold
		snap.Mana = ps.Mana
		snap.MaxMana = ps.MaxMana
		snap.Strength = ps.Strength
		snap.Agility = ps.Agility
		snap.Intelligence = ps.Intelligence
	}
	if pos != nil {
		snap.X = pos.X
		snap.Y = pos.Y
	}
	if hp != nil {
		snap.Health = hp.Value
		snap.MaxHealth = hp.Max
	}
	return snap
}
