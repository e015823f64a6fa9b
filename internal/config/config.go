// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// MaxDeltaTime ограничивает dt кадра, чтобы при потере фокуса окна
	// сущности не «туннелировали» сквозь границы арены.
	MaxDeltaTime = 0.06

	// ArenaMargin — дополнительный отступ от края арены при клампе позиций.
	ArenaMargin = 4.0
	// CullMargin — насколько далеко за границу арены сущность может улететь,
	// прежде чем будет удалена.
	CullMargin = 40.0

	MaxPulses        = 64   // жёсткий потолок коллекции пульсов
	NearMissPulseGap = 0.25 // минимальный интервал между пульсами «на волоске», сек

	ClickCooldown    = 300 // миллисекунды между кликами по UI
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	SpeedButtonY    = 30
	SpeedButtonSize = 18.0

	HUDMarginX    = 16
	HUDMarginY    = 14
	HUDBarWidth   = 180
	HUDBarHeight  = 14
	HUDBarSpacing = 6

	FontSize = 14

	PlayerStrokeWidth = 2.0
	FacingTickLength  = 1.6 // длина «носа» игрока в радиусах

	PulseDamageRadius   = 46.0
	PulseNearMissRadius = 26.0
	PulseDashRadius     = 34.0
	PulseKillRadius     = 40.0
	PulseLevelUpRadius  = 70.0
	PulseEndRadius      = 120.0

	PulseShortLife = 0.35
	PulseLongLife  = 0.8

	MobHealthBarWidth  = 22.0
	MobHealthBarHeight = 3.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	ArenaLineColor  = color.RGBA{70, 100, 120, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}

	PlayerColor       = color.RGBA{80, 200, 160, 255}
	PlayerStrokeColor = color.RGBA{255, 255, 255, 255}

	HazardColor     = color.RGBA{220, 60, 60, 220}
	MobColor        = color.RGBA{180, 50, 230, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	CritColor       = color.RGBA{255, 120, 40, 255}

	HealthBarColor = color.RGBA{220, 60, 60, 220}
	ManaBarColor   = color.RGBA{70, 130, 180, 220}
	XPBarColor     = color.RGBA{70, 100, 120, 220}
	BarBackColor   = color.RGBA{35, 35, 48, 255}
	BarBorderColor = color.RGBA{240, 240, 240, 255}

	PulseDamageColor   = color.RGBA{255, 70, 70, 255}
	PulseNearMissColor = color.RGBA{120, 170, 255, 255}
	PulseDashColor     = color.RGBA{120, 230, 255, 255}
	PulseKillColor     = color.RGBA{255, 170, 60, 255}
	PulseLevelUpColor  = color.RGBA{255, 215, 0, 255}
	PulseEndColor      = color.RGBA{255, 40, 40, 255}

	PausedOverlayColor = color.RGBA{0, 0, 0, 128}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
