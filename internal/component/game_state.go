package component

// RunPhase — фаза жизненного цикла забега
type RunPhase int

const (
	RunIdle RunPhase = iota
	RunActive
	RunEnded
)

// RunState хранит состояние текущего забега и рекорд выживания.
type RunState struct {
	Phase        RunPhase
	SurvivalTime float64 // время выживания текущего забега, сек
	BestTime     float64 // рекорд; только растёт
}
