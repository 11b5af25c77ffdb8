// Package desktop hosts a run in a native window via Ebitengine.
package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gravity-runner/internal/platform/host"
)

// Options configure the window.
type Options struct {
	Title   string
	Scale   int    // initial window size as a multiple of the canvas
	ShotDir string // F12 screenshots
}

var (
	flipKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyW, ebiten.KeyS}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

type window struct {
	session *host.Session
	shotDir string
	touches []ebiten.TouchID
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (w *window) Update() error {
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	in := host.Input{
		Flip: anyJustPressed(flipKeys) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(w.touches) > 0,
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
		Quit:       anyJustPressed(quitKeys),
	}
	if w.session.Apply(in, w.shotDir) {
		return ebiten.Termination
	}
	w.session.Frame(time.Now())
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.session.Canvas().Image().Pix)
}

// Layout keeps the logical canvas size; Ebitengine letterboxes it into the window.
func (w *window) Layout(int, int) (int, int) {
	c := w.session.Canvas()
	return c.Width(), c.Height()
}

// Run opens the window and blocks until it is closed.
func Run(session *host.Session, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Gravity Runner"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	c := session.Canvas()
	ebiten.SetWindowSize(c.Width()*opts.Scale, c.Height()*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	defer session.Stop()
	// Termination from Update makes RunGame return nil.
	return ebiten.RunGame(&window{session: session, shotDir: opts.ShotDir})
}
