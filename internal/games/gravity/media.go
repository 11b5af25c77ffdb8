package gravity

import "image"

// Media supplies ready-to-draw images. Missing or failed images are nil and
// the renderer falls back to flat colors.
type Media interface {
	// Ready reports whether every required sprite has settled (loaded or failed).
	Ready() bool
	// Image returns a named sprite, or nil.
	Image(name string) image.Image
	// Backgrounds returns how many background epochs exist.
	Backgrounds() int
	// Background returns the frame of background i at time t seconds, or nil.
	Background(i int, t float64) image.Image
}

// SpriteNames lists the sprites a run needs for a character.
func SpriteNames(ch Character) []string {
	names := []string{ch.Sprite()}
	for c := HydrantColor(0); c < hydrantColors; c++ {
		names = append(names, c.Sprite())
	}
	return names
}
