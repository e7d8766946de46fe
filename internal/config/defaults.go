package config

import (
	_ "embed"
)

//go:embed defaults/mathrisk.yaml
var defaultYAML []byte

// DefaultConfig returns the default MathRisk configuration.
// Values mirror defaults/mathrisk.yaml and serve as the last-resort
// fallback when the embedded YAML cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Speed:        30.0,
			Width:        5,
			Height:       2,
			BobAmplitude: 1.0,
			BobFrequency: 6.0,
		},
		Tiles: TilesConfig{
			Lanes:       5,
			MaxPerSpawn: 2,
		},
		Session: SessionConfig{
			TimeLimitSeconds:  60,
			StartingCoins:     25,
			BankruptThreshold: 10,
		},
		Ramp: RampConfig{
			Enabled:         true,
			MaxAtSeconds:    45,
			SpeedMultiplier: 0.8,
			SpawnSpeedup:    0.4,
		},
		Tiers: TiersConfig{
			Easy: TierConfig{
				Operators:      []string{"+", "-"},
				OperandMin:     1,
				OperandMax:     9,
				NegativeChance: 0,
				SpawnInterval:  1.6,
				FallSpeedMin:   4.0,
				FallSpeedMax:   6.0,
			},
			Medium: TierConfig{
				Operators:      []string{"+", "-", "*", "/"},
				OperandMin:     1,
				OperandMax:     15,
				NegativeChance: 0.25,
				SpawnInterval:  1.2,
				FallSpeedMin:   5.0,
				FallSpeedMax:   8.0,
			},
			Hard: TierConfig{
				Operators:      []string{"+", "-", "*", "/", "^", "sqrt"},
				OperandMin:     1,
				OperandMax:     20,
				NegativeChance: 0.3,
				SpawnInterval:  0.9,
				FallSpeedMin:   6.0,
				FallSpeedMax:   10.0,
			},
		},
	}
}
