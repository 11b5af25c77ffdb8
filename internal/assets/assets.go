// Package assets loads sprites and backgrounds in the background and hands
// them to the game as ready-to-draw images.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Extensions tried, in order, for every named sprite.
var spriteExts = []string{".png", ".jpg", ".jpeg", ".gif"}

// maxParallel bounds concurrent decodes.
const maxParallel = 4

// Library is a set of decoded images. Loads happen in goroutines started by
// Load; readiness counts failures as settled so a missing file never blocks
// play.
type Library struct {
	fsys   fs.FS
	logger *log.Logger

	mu          sync.RWMutex
	images      map[string]image.Image
	backgrounds []*Background
	required    int
	settled     int
	done        chan struct{}
}

// New creates a library reading from fsys. A nil fsys yields an empty library
// with procedural backgrounds only.
func New(fsys fs.FS, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Library{
		fsys:        fsys,
		logger:      logger,
		images:      make(map[string]image.Image),
		backgrounds: Procedural(),
		done:        make(chan struct{}),
	}
}

// Load starts decoding the named sprites and every bg_<n> background. It
// returns immediately; use Ready or Wait to observe completion.
func (l *Library) Load(ctx context.Context, sprites []string) {
	l.mu.Lock()
	l.required = len(sprites)
	l.mu.Unlock()

	go func() {
		defer close(l.done)

		// gctx is cancelled once Wait returns; backgrounds load on ctx.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallel)
		for _, name := range sprites {
			g.Go(func() error {
				img, err := l.loadSprite(gctx, name)
				if err != nil {
					l.logger.Warn("sprite unavailable, using flat color", "sprite", name, "error", err)
				}
				l.settle(name, img)
				return nil
			})
		}
		_ = g.Wait()

		if bgs := l.loadBackgrounds(ctx); len(bgs) > 0 {
			l.mu.Lock()
			l.backgrounds = bgs
			l.mu.Unlock()
		}
		l.logger.Debug("assets loaded", "sprites", len(sprites), "backgrounds", l.Backgrounds())
	}()
}

// Wait blocks until every load has finished or ctx is done.
func (l *Library) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Library) settle(name string, img image.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img != nil {
		l.images[name] = img
	}
	l.settled++
}

// Ready reports whether every required sprite has settled.
func (l *Library) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settled >= l.required
}

// Image returns a decoded sprite, or nil.
func (l *Library) Image(name string) image.Image {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.images[name]
}

// Backgrounds returns the number of background epochs. The procedural set
// is used until (and unless) bg_<n> files load.
func (l *Library) Backgrounds() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.backgrounds)
}

// Background returns the frame of background i at time t, or nil.
func (l *Library) Background(i int, t float64) image.Image {
	l.mu.RLock()
	bgs := l.backgrounds
	l.mu.RUnlock()
	if i < 0 || i >= len(bgs) {
		return nil
	}
	return bgs[i].Frame(t)
}

func (l *Library) loadSprite(ctx context.Context, name string) (image.Image, error) {
	if l.fsys == nil {
		return nil, errors.New("assets: no asset directory")
	}
	for _, ext := range spriteExts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := decodeFile(l.fsys, name+ext)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("assets: %s: %w", name, fs.ErrNotExist)
}

// loadBackgrounds decodes bg_<n>.* files ordered by n. Animated GIFs keep all
// their frames.
func (l *Library) loadBackgrounds(ctx context.Context) []*Background {
	if l.fsys == nil {
		return nil
	}
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		l.logger.Warn("cannot list asset directory", "error", err)
		return nil
	}

	type candidate struct {
		n    int
		file string
	}
	var files []candidate
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := path.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		if !strings.HasPrefix(stem, "bg_") || !knownExt(ext) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(stem, "bg_"))
		if err != nil {
			continue
		}
		files = append(files, candidate{n: n, file: name})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	var out []*Background
	for _, f := range files {
		if ctx.Err() != nil {
			return out
		}
		bg, err := decodeBackground(l.fsys, f.file)
		if err != nil {
			l.logger.Warn("background skipped", "file", f.file, "error", err)
			continue
		}
		out = append(out, bg)
	}
	return out
}

func decodeFile(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

func decodeBackground(fsys fs.FS, name string) (*Background, error) {
	if strings.EqualFold(path.Ext(name), ".gif") {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		anim, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", name, err)
		}
		return fromGIF(anim), nil
	}

	img, err := decodeFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return Still(img), nil
}

func knownExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range spriteExts {
		if e == ext {
			return true
		}
	}
	return false
}

