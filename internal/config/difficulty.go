package config

// Difficulty is a named difficulty tier selecting operator sets, operand
// ranges and pacing for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a user-supplied string to a Difficulty.
// Unrecognized input falls back to the easiest tier rather than erroring.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyEasy
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns the difficulty name capitalized for display.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Ramp calculates dynamic pacing parameters based on elapsed session time.
type Ramp struct {
	cfg RampConfig
}

// NewRamp creates a ramp from the given configuration.
func NewRamp(cfg RampConfig) *Ramp {
	return &Ramp{cfg: cfg}
}

// Level returns the current ramp level in [0, 1] for the elapsed time.
func (r *Ramp) Level(elapsed float64) float64 {
	if !r.cfg.Enabled {
		return 0
	}
	maxAt := r.cfg.MaxAtSeconds
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(elapsed/maxAt, 0.0, 1.0)
}

// Speed returns the scaled fall speed for the elapsed time.
func (r *Ramp) Speed(baseSpeed, elapsed float64) float64 {
	level := r.Level(elapsed)
	return baseSpeed * (1.0 + level*r.cfg.SpeedMultiplier)
}

// SpawnInterval returns the scaled spawn interval for the elapsed time.
// The interval shrinks as the ramp rises but never below a playable floor.
func (r *Ramp) SpawnInterval(baseInterval, elapsed float64) float64 {
	level := r.Level(elapsed)
	interval := baseInterval * (1.0 - level*r.cfg.SpawnSpeedup)
	if interval < 0.25 {
		interval = 0.25
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
