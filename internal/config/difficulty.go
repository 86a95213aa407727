package config

import "math"

// DifficultyManager calculates generator parameters from how far the run has progressed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of generated chunks.
func (d *DifficultyManager) Level(chunks int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "distance" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(chunks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyChance returns the spawn probability for the next chunk.
// With progression disabled the base chance is returned unchanged.
func (d *DifficultyManager) EnemyChance(base float64, chunks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(chunks)
	return clampF(base*(1.0+level*d.cfg.Scaling.EnemyMultiplier), 0.0, 1.0)
}

// PlatformDensity returns the platform density for the next chunk.
func (d *DifficultyManager) PlatformDensity(base float64, chunks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base + d.Level(chunks)*d.cfg.Scaling.DensityBonus
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
