// Package config provides YAML-based game configuration loading and
// difficulty management for MathRisk.
package config

// GameConfig contains all tunable parameters for a MathRisk session.
// It is loaded once at startup and threaded through constructors; nothing
// mutates it after load.
type GameConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Session SessionConfig `yaml:"session"`
	Ramp    RampConfig    `yaml:"ramp"`
	Tiers   TiersConfig   `yaml:"tiers"`
}

// PlayerConfig defines avatar movement and animation parameters.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`         // Horizontal speed, cells per second
	Width        int     `yaml:"width"`         // Hitbox width in cells
	Height       int     `yaml:"height"`        // Hitbox height in cells
	BobAmplitude float64 `yaml:"bob_amplitude"` // Max vertical bob offset in cells
	BobFrequency float64 `yaml:"bob_frequency"` // Bob cycles per second while moving
}

// TilesConfig defines falling-tile parameters shared by all tiers.
type TilesConfig struct {
	Lanes       int `yaml:"lanes"`         // Number of horizontal spawn lanes
	MaxPerSpawn int `yaml:"max_per_spawn"` // Max tiles created per spawn event
}

// SessionConfig defines the session clock and score bookkeeping.
type SessionConfig struct {
	TimeLimitSeconds  float64 `yaml:"time_limit_seconds"` // Round duration
	StartingCoins     int     `yaml:"starting_coins"`     // Initial Coin score
	BankruptThreshold int     `yaml:"bankrupt_threshold"` // Session ends when score drops below this
}

// RampConfig defines how pressure increases within a session.
// Tile speed and spawn rate scale from the tier's base values toward a
// maximum as session time elapses; the tier itself never changes mid-session.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MaxAtSeconds    float64 `yaml:"max_at_seconds"`   // Elapsed time at which the ramp tops out
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added speed fraction at full ramp
	SpawnSpeedup    float64 `yaml:"spawn_speedup"`    // Fraction shaved off the spawn interval at full ramp
}

// TiersConfig holds the per-difficulty generator and pacing parameters.
type TiersConfig struct {
	Easy   TierConfig `yaml:"easy"`
	Medium TierConfig `yaml:"medium"`
	Hard   TierConfig `yaml:"hard"`
}

// TierConfig defines one difficulty tier.
type TierConfig struct {
	// Operators the expression generator may pick from, chosen uniformly.
	// Recognized symbols: + - * / ^ sqrt
	Operators []string `yaml:"operators"`

	// OperandMin/OperandMax bound the magnitude of additive operands.
	OperandMin int `yaml:"operand_min"`
	OperandMax int `yaml:"operand_max"`

	// NegativeChance is the probability an additive operand is negated,
	// rendered like "+(-3)".
	NegativeChance float64 `yaml:"negative_chance"`

	// SpawnInterval is the base delay between spawn events, in seconds.
	SpawnInterval float64 `yaml:"spawn_interval"`

	// FallSpeedMin/FallSpeedMax bound per-tile fall speed, rows per second.
	FallSpeedMin float64 `yaml:"fall_speed_min"`
	FallSpeedMax float64 `yaml:"fall_speed_max"`
}

// TierFor returns the tier parameters for the given difficulty.
// An unrecognized difficulty falls back to the easiest tier.
func (c GameConfig) TierFor(d Difficulty) TierConfig {
	switch d {
	case DifficultyMedium:
		return c.Tiers.Medium
	case DifficultyHard:
		return c.Tiers.Hard
	default:
		return c.Tiers.Easy
	}
}
