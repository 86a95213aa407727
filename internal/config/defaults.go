package config

import (
	_ "embed"
)

//go:embed defaults/vania.yaml
var defaultVaniaYAML []byte

// DefaultVaniaConfig returns the hardcoded default configuration.
// It mirrors defaults/vania.yaml and is used when the embedded file cannot be parsed.
func DefaultVaniaConfig() VaniaConfig {
	return VaniaConfig{
		Level: LevelConfig{
			Height:          40,
			ChunkWidth:      120,
			PlatformDensity: 0.35,
			EnemyChance:     0.03,
			MinPlatform:     4,
			MaxPlatform:     8,
			BandTop:         6,
			BandBottom:      10,
			Margin:          40,
			ViewAhead:       40,
			SpawnMinX:       3,
			SpawnMaxX:       60,
		},
		Physics: PhysicsConfig{
			Tile:    32,
			Gravity: 0.35,
		},
		Player: PlayerConfig{
			WalkSpeed:    7,
			RunMult:      1.5,
			JumpSpeed:    11,
			RunJumpBonus: 3,
			Health:       4,
			MagCapacity:  12,
			ReloadMS:     1000,
			Knockback:    32,
		},
		Enemy: EnemyConfig{
			Speed: 2,
		},
		Bullet: BulletConfig{
			Speed:  12,
			Width:  6,
			Height: 3,
		},
		Timing: TimingConfig{
			LoadMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				EnemyMultiplier: 2.0,
				DensityBonus:    0.1,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultVaniaYAML
}
