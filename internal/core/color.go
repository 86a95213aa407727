package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorPlatform
	ColorPlayer
	ColorEnemy
	ColorBullet
	ColorUI
	ColorHeart
	ColorReload
	ColorDim
)
