package core

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Canvas is a fixed-resolution RGBA raster. The simulation renders in logical
// pixels and hosts scale the result to their surface, preserving aspect ratio.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// ImageOptions controls how DrawImage composites a sprite.
type ImageOptions struct {
	Alpha float64 // 0..1, zero value means opaque
	FlipV bool    // mirror vertically around the destination box
	Angle float64 // rotation in radians around the destination center
}

// NewCanvas allocates a canvas of the given logical size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Width returns the logical width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the logical height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image exposes the backing raster for hosts (window upload, PNG export).
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At returns the pixel at (x, y); out-of-bounds reads are transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Fill paints the whole canvas with an opaque color.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect alpha-blends a solid rectangle.
func (c *Canvas) FillRect(r RectF, col color.Color) {
	draw.Draw(c.img, toRect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

// HLine draws a horizontal line of the given thickness across the canvas.
func (c *Canvas) HLine(y, thickness float64, col color.Color) {
	c.FillRect(RectF{X: 0, Y: y - thickness/2, W: float64(c.Width()), H: thickness}, col)
}

// DrawImage scales src into dst, honoring opacity, vertical flip and rotation.
func (c *Canvas) DrawImage(src image.Image, dst RectF, opts ImageOptions) {
	sr := src.Bounds()
	if sr.Empty() || dst.W <= 0 || dst.H <= 0 {
		return
	}

	var dopts *draw.Options
	if opts.Alpha > 0 && opts.Alpha < 1 {
		dopts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(opts.Alpha * 255)})}
	}

	sx := dst.W / float64(sr.Dx())
	sy := dst.H / float64(sr.Dy())
	if opts.FlipV {
		sy = -sy
	}

	// Map the source center onto the destination center, then rotate.
	cx, cy := dst.X+dst.W/2, dst.Y+dst.H/2
	mx, my := float64(sr.Min.X)+float64(sr.Dx())/2, float64(sr.Min.Y)+float64(sr.Dy())/2
	cos, sin := math.Cos(opts.Angle), math.Sin(opts.Angle)

	s2d := f64.Aff3{
		cos * sx, -sin * sy, 0,
		sin * sx, cos * sy, 0,
	}
	s2d[2] = cx - (s2d[0]*mx + s2d[1]*my)
	s2d[5] = cy - (s2d[3]*mx + s2d[4]*my)

	draw.ApproxBiLinear.Transform(c.img, s2d, src, sr, draw.Over, dopts)
}

// DrawCover scales src to cover the whole canvas, preserving its aspect ratio
// and centering the overflow.
func (c *Canvas) DrawCover(src image.Image, alpha float64) {
	sr := src.Bounds()
	iw, ih := float64(sr.Dx()), float64(sr.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	w, h := float64(c.Width()), float64(c.Height())
	var dst RectF
	if iw/ih > w/h {
		scale := h / ih
		dst = RectF{X: -(iw*scale - w) / 2, Y: 0, W: iw * scale, H: h}
	} else {
		scale := w / iw
		dst = RectF{X: 0, Y: -(ih*scale - h) / 2, W: w, H: ih * scale}
	}
	c.DrawImage(src, dst, ImageOptions{Alpha: alpha})
}

// Text draws a string with its baseline at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextWidth returns the advance width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

// TextCentered draws s horizontally centered with its baseline at y.
func (c *Canvas) TextCentered(y int, s string, col color.Color) {
	c.Text((c.Width()-c.TextWidth(s))/2, y, s, col)
}

func toRect(r RectF) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}
