package snapshot

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/matchgeo"
)

// Options control how a pass is rasterized.
type Options struct {
	// Scale multiplies the 8x16 pixel cell.
	Scale   int
	Palette Palette
	// Geometry outlines every published frame and every mirror's
	// natural and shown frames.
	Geometry bool
	// Workers bounds concurrent encodes in WriteAll. Zero uses GOMAXPROCS.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

var (
	publisherColor = color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff}
	naturalColor   = color.RGBA{R: 0x6c, G: 0x70, B: 0x86, A: 0xff}
	mirrorColor    = color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff}
)

// Render rasterizes one pass.
func Render(report matchgeo.PassReport, opts Options) (*Canvas, error) {
	opts = opts.withDefaults()
	c, err := NewCanvas(report.Size.Width, report.Size.Height, opts.Scale, opts.Palette)
	if err != nil {
		return nil, err
	}
	report.Display.Replay(c)
	if opts.Geometry {
		c.drawGeometry(report)
	}
	return c, nil
}

// drawGeometry outlines the published table in green, each mirror's
// natural slot in gray and where it was drawn in pink.
func (c *Canvas) drawGeometry(report matchgeo.PassReport) {
	w := float64(c.scale)
	for _, s := range report.Scopes {
		for _, f := range s.Table.All() {
			c.outline(f, publisherColor, w, w/2)
		}
	}
	for _, m := range report.Mirrors {
		c.outline(m.Natural, naturalColor, w, w/2)
		c.outline(m.Shown, mirrorColor, w, w/2)
	}
}

// FileName is the name WriteAll gives the image of a pass.
func FileName(pass uint64) string {
	return fmt.Sprintf("pass-%04d.png", pass)
}

// WriteFile renders report and writes it to path.
func WriteFile(path string, report matchgeo.PassReport, opts Options) (err error) {
	c, err := Render(report, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	return c.EncodePNG(f)
}

// WriteAll renders every report into dir concurrently and returns the
// written paths in report order. The first error cancels the remaining
// work.
func WriteAll(ctx context.Context, dir string, reports []matchgeo.PassReport, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	paths := make([]string, len(reports))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, r := range reports {
		paths[i] = filepath.Join(dir, FileName(r.Pass))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := WriteFile(paths[i], r, opts); err != nil {
				return fmt.Errorf("pass %d: %w", r.Pass, err)
			}
			matchgeo.Logger().Debug("snapshot written", "pass", r.Pass, "path", paths[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
