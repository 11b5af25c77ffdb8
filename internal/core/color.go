package core

import "image/color"

// RGB builds an opaque color from a 0xRRGGBB literal.
func RGB(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}

// Fade returns c with its alpha scaled by a (0 = invisible, 1 = unchanged).
func Fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * ClampF(a, 0, 1))
	return c
}

// Mix linearly blends two opaque colors, t=0 gives a and t=1 gives b.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = ClampF(t, 0, 1)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// Palette used by the renderer whenever a sprite is not available.
var (
	ColorBackdrop  = RGB(0x0b1020)
	ColorGuide     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x26}
	ColorHUD       = RGB(0xe5e7eb)
	ColorHUDShadow = RGB(0x000000)
	ColorPlayer    = RGB(0xffd166)
	ColorGreen     = RGB(0x00d084)
	ColorRed       = RGB(0xef476f)
	ColorBlue      = RGB(0x3b82f6)
	ColorGate      = RGB(0x8b5cf6)
	ColorGhost     = RGB(0xe5e7eb)
	ColorClone     = RGB(0xf472b6)
	ColorOverlay   = color.NRGBA{A: 0xa0}
)
