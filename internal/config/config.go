// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Арена
	ArenaMinX = 100.0
	ArenaMaxX = 1100.0
	ArenaMinY = 150.0
	ArenaMaxY = 750.0

	// Интервал решающих тиков (таймеры драфта, боя, пауз между фазами)
	TimerTickInterval = 0.1 // секунд

	// Драфт
	DraftDuration     = 15.0
	DraftLowTimeMark  = 5.0 // порог предупреждения об остатке времени
	DraftOptionCount  = 3
	DraftBagMemory    = 6 // сколько последних пиков исключается из мешка
	DraftAutoPickMinB = 1.5
	DraftAutoPickMaxB = 4.0 // сторона B делает выбор сама в этом интервале

	// Бой
	BattleDuration   = 30.0
	TroopsPerSide    = 4 // жёсткий лимит юнитов на сторону
	RoundsToWin      = 4
	MaxRounds        = 7
	SeparationRadius = 26.0 // минимальная дистанция между своими юнитами
	SeparationPush   = 40.0

	// Паузы между фазами
	RoundStartDelay = 1.5
	RevealDelay     = 2.0
	SpawnDelay      = 1.0
	RoundEndDelay   = 3.0

	// Снаряды
	ProjectileSpeed    = 320.0
	ProjectileRadius   = 5.0
	ProjectileLifetime = 5.0
	ProjectileHitDist  = 14.0
	HomingTurnRate     = 6.0 // рад/с, ограничение доворота самонаводящегося снаряда

	// Площадная атака
	AreaDamageFactor = 0.5 // доля урона по второстепенным целям
	AreaRadius       = 60.0

	TroopRadius     = 14.0
	HealthBarWidth  = 32.0
	HealthBarHeight = 4.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	SideAColor       = color.RGBA{70, 130, 180, 255}
	SideBColor       = color.RGBA{220, 60, 60, 255}
	TroopStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	LowTimeColor     = color.RGBA{255, 80, 80, 255}
	HealthBackColor  = color.RGBA{60, 60, 60, 255}
	HealthFillColor  = color.RGBA{50, 205, 50, 255}

	ElementColors = map[string]color.RGBA{
		"FIRE":   {255, 120, 50, 255},
		"WATER":  {80, 160, 255, 255},
		"NATURE": {90, 220, 90, 255},
	}
)
