// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// StunEffect freezes movement and attacks while the timer runs.
type StunEffect struct {
	Timer float64
}

// RootEffect pins the entity in place; it can still attack.
type RootEffect struct {
	Timer float64
}

// PoisonEffect deals damage over time in one-second ticks.
type PoisonEffect struct {
	Timer        float64
	TickTimer    float64
	DamagePerSec float64
}
