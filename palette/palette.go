// Package palette holds the named color palettes that images can be reduced to.
//
// Palettes are registered by name at init time. New palettes are added by
// calling Register, nothing else has to change.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color like "#1e1e2e".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor drops alpha and converts any color.Color to a Color, using its
// non-alpha-premultiplied value.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%s is not a hex color", s)
	}

	// Every character must be a hex digit
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%s is not a hex color", s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ErrEmptyPalette is returned by New when no colors are given.
var ErrEmptyPalette = errors.New("palette has no colors")

// Palette is an ordered list of colors. Order only matters when two entries
// are equally close to a pixel: the earlier one wins.
type Palette []Color

// New returns a palette holding a copy of colors.
func New(colors ...Color) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, len(colors))
	copy(p, colors)
	return p, nil
}

// Clone returns a copy of p that shares no memory with it.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	c := make(Palette, len(p))
	copy(c, p)
	return c
}

// Colors converts p for use with the image and image/gif packages.
func (p Palette) Colors() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

// UnknownPaletteError is returned by Lookup when no palette is registered
// under Name.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette '%s'", e.Name)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Palette)
)

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register makes a palette available under name. Names are case-insensitive.
//
// Register panics if name is empty or already taken, or if p has no colors.
// It is meant to be called from init functions, like image.RegisterFormat.
func Register(name string, p Palette) {
	key := normalize(name)
	if key == "" {
		panic("palette: Register with empty name")
	}
	if len(p) == 0 {
		panic("palette: Register of empty palette " + key)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[key]; dup {
		panic("palette: Register called twice for " + key)
	}
	registry[key] = p.Clone()
}

// Lookup returns a copy of the palette registered under name.
// If there is none, the error is an *UnknownPaletteError.
func Lookup(name string) (Palette, error) {
	registryMu.RLock()
	p, ok := registry[normalize(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownPaletteError{Name: name}
	}
	return p.Clone(), nil
}

// Names returns all registered palette names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
