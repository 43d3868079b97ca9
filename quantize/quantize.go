// Package quantize reduces images to a fixed palette by replacing every pixel
// with the nearest palette color, by Euclidean distance in RGB space.
//
// No dithering is done. Each output pixel only depends on the matching input
// pixel and the palette, so rows are mapped in parallel by default.
package quantize

import (
	"context"
	"image"
	"image/color"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/makeworld-the-better-one/palettize/palette"
)

// InvalidArgumentError is returned when the quantizer is called with input it
// can't work with, like an empty palette.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "quantize: invalid " + e.Arg + ": " + e.Reason
}

var errEmptyPalette = &InvalidArgumentError{Arg: "palette", Reason: "no colors"}

// Distance2 returns the squared Euclidean distance between a and b.
// The largest possible value is 3*255*255, so int32 can't overflow.
func Distance2(a, b palette.Color) int32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return dr*dr + dg*dg + db*db
}

// Nearest returns the color in p closest to c. When several colors are equally
// close, the first one in p is returned.
func Nearest(c palette.Color, p palette.Palette) (palette.Color, error) {
	if len(p) == 0 {
		return palette.Color{}, errEmptyPalette
	}
	return p[nearestIndex(c, p)], nil
}

// nearestIndex assumes p is not empty.
func nearestIndex(c palette.Color, p palette.Palette) int {
	best := 0
	bestDist := Distance2(c, p[0])
	for i := 1; i < len(p); i++ {
		// Strictly less, so earlier entries win ties
		if d := Distance2(c, p[i]); d < bestDist {
			best = i
			bestDist = d
			if d == 0 {
				break
			}
		}
	}
	return best
}

// Quantizer maps images onto a palette. Set its exported fields before the
// first call, and don't change them while a call is running.
type Quantizer struct {
	palette palette.Palette

	// Workers is the number of goroutines rows are spread over.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// SingleThreaded forces a single sequential pass. The output is identical
	// either way.
	SingleThreaded bool

	// Progress, if set, is called with the number of rows finished and the total
	// number of rows, every ProgressEvery rows and once more when all rows are
	// done. Calls never overlap. Progress does not affect the output.
	Progress func(done, total int)

	// ProgressEvery is the row cadence for Progress. Zero disables it.
	ProgressEvery int
}

// New returns a Quantizer for a copy of p.
func New(p palette.Palette) (*Quantizer, error) {
	if len(p) == 0 {
		return nil, errEmptyPalette
	}
	return &Quantizer{palette: p.Clone()}, nil
}

// Palette returns a copy of the palette q maps onto.
func (q *Quantizer) Palette() palette.Palette {
	return q.palette.Clone()
}

// Quantize returns a new image with the same bounds as src, where every pixel
// is the palette color nearest to the src pixel. Alpha is dropped, all output
// pixels are opaque. src is not modified.
func (q *Quantizer) Quantize(src image.Image) *image.NRGBA {
	dst, _ := q.QuantizeContext(context.Background(), src)
	return dst
}

// QuantizeContext is like Quantize, but stops between rows once ctx is done
// and returns ctx.Err(). If every row was already done, the image is
// returned anyway.
func (q *Quantizer) QuantizeContext(ctx context.Context, src image.Image) (*image.NRGBA, error) {
	if len(q.palette) == 0 {
		return nil, errEmptyPalette
	}

	b := src.Bounds()
	dst := image.NewNRGBA(b)
	err := q.mapRows(ctx, b, func(y int) {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		q.forEachPixel(src, y, func(x, idx int) {
			c := q.palette[idx]
			i := (x - b.Min.X) * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = 0xff
		})
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// QuantizePaletted is like Quantize, but the returned image stores palette
// indices, with q's palette as its color.Palette. This is what the GIF encoder
// wants.
//
// It panics if the palette has more than 256 colors, since image.Paletted can't
// index them.
func (q *Quantizer) QuantizePaletted(src image.Image) *image.Paletted {
	if len(q.palette) > 256 {
		panic("quantize: QuantizePaletted with more than 256 palette colors")
	}
	b := src.Bounds()
	dst := image.NewPaletted(b, q.palette.Colors())
	if len(q.palette) == 0 {
		return dst
	}
	// Only fails on a cancelled context
	_ = q.mapRows(context.Background(), b, func(y int) {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		q.forEachPixel(src, y, func(x, idx int) {
			row[x-b.Min.X] = uint8(idx)
		})
	})
	return dst
}

// forEachPixel reads row y of src and calls fn with the index of the nearest
// palette color for each pixel. Direct Pix access for the common types, since
// going through At allocates for every pixel.
func (q *Quantizer) forEachPixel(src image.Image, y int, fn func(x, idx int)) {
	b := src.Bounds()

	switch img := src.(type) {
	case *image.NRGBA:
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			c := palette.Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
			fn(x, nearestIndex(c, q.palette))
		}
	case *image.RGBA:
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x, i = x+1, i+4 {
			// Un-premultiply, same as color.NRGBAModel
			c := palette.FromColor(color.RGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]})
			fn(x, nearestIndex(c, q.palette))
		}
	default:
		for x := b.Min.X; x < b.Max.X; x++ {
			c := palette.FromColor(src.At(x, y))
			fn(x, nearestIndex(c, q.palette))
		}
	}
}

// mapRows calls fn once for every row in b. Rows are handed out to workers
// from a shared counter, and every row is written by exactly one worker.
func (q *Quantizer) mapRows(ctx context.Context, b image.Rectangle, fn func(y int)) error {
	total := b.Dy()
	if total <= 0 || b.Dx() <= 0 {
		return ctx.Err()
	}

	workers := q.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if q.SingleThreaded {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	var (
		next       int64 = -1
		done       int64
		progressMu sync.Mutex
		wg         sync.WaitGroup
	)

	report := func(n int) {
		if q.Progress == nil || q.ProgressEvery <= 0 {
			return
		}
		if n%q.ProgressEvery != 0 && n != total {
			return
		}
		progressMu.Lock()
		q.Progress(n, total)
		progressMu.Unlock()
	}

	worker := func() {
		defer wg.Done()
		for {
			if ctx.Err() != nil {
				return
			}
			i := int(atomic.AddInt64(&next, 1))
			if i >= total {
				return
			}
			fn(b.Min.Y + i)
			report(int(atomic.AddInt64(&done, 1)))
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	wg.Wait()

	if int(atomic.LoadInt64(&done)) == total {
		// Finished before the cancel was seen, keep the result
		return nil
	}
	return ctx.Err()
}
