package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"testing/fstest"
	"time"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, colors ...color.Color) []byte {
	t.Helper()
	anim := &gif.GIF{Config: image.Config{Width: 2, Height: 2}}
	pal := color.Palette{color.Black, color.White}
	for _, c := range colors {
		pal = append(pal, c)
	}
	for i := range colors {
		frame := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
		for p := range frame.Pix {
			frame.Pix[p] = uint8(2 + i)
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 10)
		anim.Disposal = append(anim.Disposal, gif.DisposalNone)
	}
	anim.Config.ColorModel = pal
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		t.Fatalf("gif.EncodeAll: %v", err)
	}
	return buf.Bytes()
}

func waitLoaded(t *testing.T, l *Library) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestLoadSprites(t *testing.T) {
	fsys := fstest.MapFS{
		"hydrant_green.png": {Data: encodePNG(t, 4, 4, color.RGBA{G: 0xff, A: 0xff})},
		"player_runner.png": {Data: encodePNG(t, 4, 4, color.RGBA{R: 0xff, A: 0xff})},
		"broken.png":        {Data: []byte("not a png")},
	}
	l := New(fsys, nil)
	l.Load(context.Background(), []string{"hydrant_green", "player_runner", "hydrant_red", "broken"})
	waitLoaded(t, l)

	if !l.Ready() {
		t.Error("missing and broken sprites should still settle")
	}
	if l.Image("hydrant_green") == nil || l.Image("player_runner") == nil {
		t.Error("present sprites should be decoded")
	}
	if l.Image("hydrant_red") != nil {
		t.Error("missing sprite should stay nil")
	}
	if l.Image("broken") != nil {
		t.Error("undecodable sprite should stay nil")
	}
}

func TestLoadSpritesThenBackgrounds(t *testing.T) {
	fsys := fstest.MapFS{
		"player_runner.png": {Data: encodePNG(t, 4, 4, color.RGBA{R: 0xff, A: 0xff})},
		"bg_1.png":          {Data: encodePNG(t, 2, 2, color.RGBA{B: 0xff, A: 0xff})},
	}
	l := New(fsys, nil)
	l.Load(context.Background(), []string{"player_runner"})
	waitLoaded(t, l)

	if l.Image("player_runner") == nil {
		t.Error("sprite should be decoded")
	}
	if l.Backgrounds() != 1 {
		t.Fatalf("Backgrounds() = %d, expected the single bg_1 file", l.Backgrounds())
	}
	if _, _, b, _ := l.Background(0, 0).At(0, 0).RGBA(); b>>8 != 0xff {
		t.Error("bg_1 should replace the procedural set")
	}
}

func TestReadyBeforeLoad(t *testing.T) {
	l := New(nil, nil)
	if !l.Ready() {
		t.Error("a library with nothing requested is ready")
	}
	if l.Backgrounds() != len(palettes) {
		t.Errorf("Backgrounds() = %d, expected procedural set of %d", l.Backgrounds(), len(palettes))
	}
}

func TestNilFSFallsBackToProcedural(t *testing.T) {
	l := New(nil, nil)
	l.Load(context.Background(), []string{"player_runner"})
	waitLoaded(t, l)

	if !l.Ready() {
		t.Error("library without a directory should settle")
	}
	if l.Backgrounds() != len(palettes) {
		t.Errorf("Backgrounds() = %d, expected %d", l.Backgrounds(), len(palettes))
	}
	for i := 0; i < l.Backgrounds(); i++ {
		if l.Background(i, 0) == nil {
			t.Errorf("procedural background %d is nil", i)
		}
	}
	if l.Background(-1, 0) != nil || l.Background(len(palettes), 0) != nil {
		t.Error("out-of-range background should be nil")
	}
}

func TestBackgroundsOrderedByIndex(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	fsys := fstest.MapFS{
		"bg_10.png":    {Data: encodePNG(t, 2, 2, blue)},
		"bg_2.png":     {Data: encodePNG(t, 2, 2, red)},
		"bg_x.png":     {Data: encodePNG(t, 2, 2, red)},
		"notes.txt":    {Data: []byte("ignored")},
		"bg_3.bmp":     {Data: []byte("unknown extension")},
		"sub/bg_1.png": {Data: encodePNG(t, 2, 2, red)},
	}
	l := New(fsys, nil)
	l.Load(context.Background(), nil)
	waitLoaded(t, l)

	if l.Backgrounds() != 2 {
		t.Fatalf("Backgrounds() = %d, expected 2", l.Backgrounds())
	}
	r, _, _, _ := l.Background(0, 0).At(0, 0).RGBA()
	if r>>8 != 0xff {
		t.Error("bg_2 should sort before bg_10")
	}
	_, _, b, _ := l.Background(1, 0).At(0, 0).RGBA()
	if b>>8 != 0xff {
		t.Error("bg_10 should be the second background")
	}
}

func TestAnimatedBackground(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	fsys := fstest.MapFS{
		"bg_1.gif": {Data: encodeGIF(t, red, blue)},
	}
	l := New(fsys, nil)
	l.Load(context.Background(), nil)
	waitLoaded(t, l)

	if l.Backgrounds() != 1 {
		t.Fatalf("Backgrounds() = %d, expected 1", l.Backgrounds())
	}

	tests := []struct {
		at   float64
		want color.RGBA
	}{
		{0, red},
		{0.05, red},
		{0.15, blue},
		{0.25, red}, // loops after 0.2s
	}
	for _, tt := range tests {
		r, _, b, _ := l.Background(0, tt.at).At(0, 0).RGBA()
		got := color.RGBA{R: uint8(r >> 8), B: uint8(b >> 8), A: 0xff}
		if got != tt.want {
			t.Errorf("frame at %.2fs = %+v, expected %+v", tt.at, got, tt.want)
		}
	}
}

func TestStillBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	bg := Still(img)
	if bg.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", bg.Frames())
	}
	if bg.Frame(123.4) != image.Image(img) {
		t.Error("still background should always return its image")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	l := New(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Wait(ctx); err == nil {
		t.Error("Wait without Load should return the context error")
	}
}
