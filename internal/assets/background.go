package assets

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"math"

	"github.com/vovakirdan/gravity-runner/internal/core"
)

// Background is a still image or an animated loop (decoded GIF).
type Background struct {
	frames []image.Image
	delays []float64 // seconds per frame
	period float64
}

// Still wraps a single image.
func Still(img image.Image) *Background {
	return &Background{frames: []image.Image{img}}
}

// Frames returns the number of frames.
func (b *Background) Frames() int {
	return len(b.frames)
}

// Frame returns the frame shown t seconds into the loop.
func (b *Background) Frame(t float64) image.Image {
	if len(b.frames) == 0 {
		return nil
	}
	if len(b.frames) == 1 || b.period <= 0 {
		return b.frames[0]
	}
	t = math.Mod(t, b.period)
	if t < 0 {
		t += b.period
	}
	for i, d := range b.delays {
		if t < d {
			return b.frames[i]
		}
		t -= d
	}
	return b.frames[len(b.frames)-1]
}

// fromGIF composes GIF frames into full images, honoring disposal methods.
func fromGIF(anim *gif.GIF) *Background {
	bounds := image.Rect(0, 0, anim.Config.Width, anim.Config.Height)
	if bounds.Empty() && len(anim.Image) > 0 {
		bounds = anim.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	bg := &Background{}
	for i, frame := range anim.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(anim.Disposal) {
			disposal = anim.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = image.NewRGBA(bounds)
			draw.Draw(previous, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snap := image.NewRGBA(bounds)
		draw.Draw(snap, bounds, canvas, bounds.Min, draw.Src)

		delay := 0.1
		if i < len(anim.Delay) && anim.Delay[i] > 0 {
			delay = float64(anim.Delay[i]) / 100
		}
		bg.frames = append(bg.frames, snap)
		bg.delays = append(bg.delays, delay)
		bg.period += delay

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return bg
}

// palettes are the procedural themes: sky top, sky bottom, horizon band.
var palettes = [][3]color.NRGBA{
	{core.RGB(0x0b1020), core.RGB(0x1e293b), core.RGB(0x334155)}, // night
	{core.RGB(0x3b0764), core.RGB(0xc2410c), core.RGB(0xf59e0b)}, // dusk
	{core.RGB(0x052e16), core.RGB(0x166534), core.RGB(0x4d7c0f)}, // forest
	{core.RGB(0x082f49), core.RGB(0x0369a1), core.RGB(0x38bdf8)}, // ocean
}

// Procedural returns generated gradient backgrounds used when no bg_<n>
// files are available.
func Procedural() []*Background {
	out := make([]*Background, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, Still(gradient(160, 72, p)))
	}
	return out
}

func gradient(w, h int, p [3]color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	horizon := h * 3 / 4
	for y := 0; y < h; y++ {
		var c color.NRGBA
		if y < horizon {
			c = core.Mix(p[0], p[1], float64(y)/float64(horizon))
		} else {
			c = core.Mix(p[1], p[2], float64(y-horizon)/float64(h-horizon))
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
