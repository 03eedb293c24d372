// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/anayp/roadbuilder/geom"
	"github.com/anayp/roadbuilder/mesh"
)

// Preview defaults.
var (
	DefaultPreviewSize = 512
	DefaultMargin      = 8
	DefaultBackground  = color.RGBA{R: 0x3a, G: 0x6b, B: 0x35, A: 0xff} // grass
	DefaultSurface     = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff} // asphalt
	DefaultLine        = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff}
)

// PreviewOption customizes Preview.
type PreviewOption func(*previewConfig)

type previewConfig struct {
	size, margin              int
	background, surface, line color.Color
}

// WithSize sets the square image side in pixels. Panics when size < 1.
func WithSize(size int) PreviewOption {
	if size < 1 {
		panic("export: WithSize(size < 1)")
	}
	return func(c *previewConfig) { c.size = size }
}

// WithColors overrides the background, road surface and centerline colors.
// A nil color keeps the default.
func WithColors(background, surface, line color.Color) PreviewOption {
	return func(c *previewConfig) {
		if background != nil {
			c.background = background
		}
		if surface != nil {
			c.surface = surface
		}
		if line != nil {
			c.line = line
		}
	}
}

// projection maps world XY into pixel space, +Y up.
type projection struct {
	minX, maxY, scale, off float64
}

func (p projection) apply(q geom.Point) (float32, float32) {
	return float32(p.off + (q.X-p.minX)*p.scale), float32(p.off + (p.maxY-q.Y)*p.scale)
}

// Preview rasterizes the top-down view of m.
func Preview(m *mesh.Mesh, opts ...PreviewOption) (*image.RGBA, error) {
	cfg := previewConfig{
		size:       DefaultPreviewSize,
		margin:     DefaultMargin,
		background: DefaultBackground,
		surface:    DefaultSurface,
		line:       DefaultLine,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return nil, ErrEmptyMesh
	}
	lo, hi, ok := m.Bounds()
	if !ok {
		return nil, ErrEmptyMesh
	}
	inner := cfg.size - 2*cfg.margin
	if inner < 1 {
		cfg.margin, inner = 0, cfg.size
	}

	extent := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	proj := projection{minX: lo.X, maxY: hi.Y, scale: 1, off: float64(cfg.margin)}
	if extent > 0 {
		proj.scale = float64(inner) / extent
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.size, cfg.size))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)

	fill(img, m, mesh.Top, proj, cfg.surface)
	fill(img, m, mesh.Centerline, proj, cfg.line)
	return img, nil
}

// fill draws every face of kind in one rasterizer pass.
func fill(dst *image.RGBA, m *mesh.Mesh, kind mesh.Kind, proj projection, c color.Color) {
	if m.Count(kind) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, f := range m.Faces() {
		if f.Kind != kind {
			continue
		}
		z.MoveTo(proj.apply(f.V[0]))
		z.LineTo(proj.apply(f.V[1]))
		z.LineTo(proj.apply(f.V[2]))
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// WritePNG encodes the preview of m to w.
func WritePNG(w io.Writer, m *mesh.Mesh, opts ...PreviewOption) error {
	img, err := Preview(m, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// WritePNGFile writes the preview of m to path.
func WritePNGFile(path string, m *mesh.Mesh, opts ...PreviewOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, m, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
