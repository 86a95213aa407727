// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// VaniaConfig contains all configuration for the platformer.
type VaniaConfig struct {
	Level      LevelConfig      `yaml:"level"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LevelConfig tunes the procedural level generator.
type LevelConfig struct {
	Height          int     `yaml:"height"`           // Rows in the tile grid
	ChunkWidth      int     `yaml:"chunk_width"`      // Columns generated per chunk
	PlatformDensity float64 `yaml:"platform_density"` // Platforms per column
	EnemyChance     float64 `yaml:"enemy_chance"`     // Spawn probability per platform column
	MinPlatform     int     `yaml:"min_platform"`
	MaxPlatform     int     `yaml:"max_platform"`
	BandTop         int     `yaml:"band_top"`    // Highest row a platform may occupy
	BandBottom      int     `yaml:"band_bottom"` // Rows kept free above the bottom edge
	Margin          int     `yaml:"margin"`      // Lookahead margin before the generated edge
	ViewAhead       int     `yaml:"view_ahead"`  // Columns ahead of the player that must exist
	SpawnMinX       int     `yaml:"spawn_min_x"`
	SpawnMaxX       int     `yaml:"spawn_max_x"`
}

// PhysicsConfig defines world units and gravity.
type PhysicsConfig struct {
	Tile    float64 `yaml:"tile"`
	Gravity float64 `yaml:"gravity"`
}

// PlayerConfig defines player movement and combat parameters.
type PlayerConfig struct {
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunMult      float64 `yaml:"run_mult"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	RunJumpBonus float64 `yaml:"run_jump_bonus"`
	Health       int     `yaml:"health"`
	MagCapacity  int     `yaml:"mag_capacity"`
	ReloadMS     int     `yaml:"reload_ms"`
	Knockback    float64 `yaml:"knockback"`
}

// EnemyConfig defines enemy behaviour.
type EnemyConfig struct {
	Speed float64 `yaml:"speed"`
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines phase durations.
type TimingConfig struct {
	LoadMS int `yaml:"load_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance" or "none"
	MaxAt int    `yaml:"max_at"` // Chunks generated at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyMultiplier float64 `yaml:"enemy_multiplier"` // Added to enemy chance multiplier at max difficulty
	DensityBonus    float64 `yaml:"density_bonus"`    // Added to platform density at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. The empty preset keeps the config default.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks the config for values the generator and physics cannot work with.
func (c VaniaConfig) Validate() error {
	l := c.Level
	switch {
	case l.Height <= 0:
		return fmt.Errorf("%w: level.height must be positive, got %d", ErrInvalid, l.Height)
	case l.MinPlatform < 1 || l.MaxPlatform < l.MinPlatform:
		return fmt.Errorf("%w: platform length range [%d, %d]", ErrInvalid, l.MinPlatform, l.MaxPlatform)
	case l.ChunkWidth < l.MaxPlatform+2:
		// the start offset is drawn from [1, chunk_width-length-1]
		return fmt.Errorf("%w: level.chunk_width %d cannot fit a platform of %d", ErrInvalid, l.ChunkWidth, l.MaxPlatform)
	case l.BandTop < 1 || l.BandTop > l.Height-l.BandBottom:
		return fmt.Errorf("%w: platform band [%d, %d] outside height %d", ErrInvalid, l.BandTop, l.Height-l.BandBottom, l.Height)
	case l.BandBottom < 1:
		return fmt.Errorf("%w: level.band_bottom must be positive, got %d", ErrInvalid, l.BandBottom)
	case l.PlatformDensity < 0 || l.EnemyChance < 0 || l.EnemyChance > 1:
		return fmt.Errorf("%w: density %.2f / enemy chance %.2f", ErrInvalid, l.PlatformDensity, l.EnemyChance)
	case l.Margin < 0 || l.ViewAhead < 0:
		return fmt.Errorf("%w: margin and view_ahead must not be negative", ErrInvalid)
	case c.Physics.Tile <= 0:
		return fmt.Errorf("%w: physics.tile must be positive", ErrInvalid)
	case c.Player.Health <= 0 || c.Player.MagCapacity <= 0:
		return fmt.Errorf("%w: player health and magazine must be positive", ErrInvalid)
	case c.Bullet.Speed <= 0:
		return fmt.Errorf("%w: bullet.speed must be positive", ErrInvalid)
	}
	return nil
}
