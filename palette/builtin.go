package palette

import (
	"golang.org/x/image/colornames"
)

// Catppuccin flavors, https://catppuccin.com/palette
// Each one is in the same order: accents, then text and surfaces from
// lightest to darkest contrast with the base.

var Latte = Palette{
	{0xdc, 0x8a, 0x78}, // Rosewater
	{0xdd, 0x78, 0x78}, // Flamingo
	{0xea, 0x76, 0xcb}, // Pink
	{0x88, 0x39, 0xef}, // Mauve
	{0xd2, 0x0f, 0x39}, // Red
	{0xe6, 0x45, 0x53}, // Maroon
	{0xfe, 0x64, 0x0b}, // Peach
	{0xdf, 0x8e, 0x1d}, // Yellow
	{0x40, 0xa0, 0x2b}, // Green
	{0x17, 0x92, 0x99}, // Teal
	{0x04, 0xa5, 0xe5}, // Sky
	{0x20, 0x9f, 0xb5}, // Sapphire
	{0x1e, 0x66, 0xf5}, // Blue
	{0x72, 0x87, 0xfd}, // Lavender
	{0x4c, 0x4f, 0x69}, // Text
	{0x5c, 0x5f, 0x77}, // Subtext 1
	{0x6c, 0x6f, 0x85}, // Subtext 0
	{0x7c, 0x7f, 0x93}, // Overlay 2
	{0x8c, 0x8f, 0xa1}, // Overlay 1
	{0x9c, 0xa0, 0xb0}, // Overlay 0
	{0xac, 0xb0, 0xbe}, // Surface 2
	{0xbc, 0xc0, 0xcc}, // Surface 1
	{0xcc, 0xd0, 0xda}, // Surface 0
	{0xef, 0xf1, 0xf5}, // Base
	{0xe6, 0xe9, 0xef}, // Mantle
	{0xdc, 0xe0, 0xe8}, // Crust
}

var Frappe = Palette{
	{0xf2, 0xd5, 0xcf}, // Rosewater
	{0xee, 0xbe, 0xbe}, // Flamingo
	{0xf4, 0xb8, 0xe4}, // Pink
	{0xca, 0x9e, 0xe6}, // Mauve
	{0xe7, 0x82, 0x84}, // Red
	{0xea, 0x99, 0x9c}, // Maroon
	{0xef, 0x9f, 0x76}, // Peach
	{0xe5, 0xc8, 0x90}, // Yellow
	{0xa6, 0xd1, 0x89}, // Green
	{0x81, 0xc8, 0xbe}, // Teal
	{0x99, 0xd1, 0xdb}, // Sky
	{0x85, 0xc1, 0xdc}, // Sapphire
	{0x8c, 0xaa, 0xee}, // Blue
	{0xba, 0xbb, 0xf1}, // Lavender
	{0xc6, 0xd0, 0xf5}, // Text
	{0xb5, 0xbf, 0xe2}, // Subtext 1
	{0xa5, 0xad, 0xce}, // Subtext 0
	{0x94, 0x9c, 0xbb}, // Overlay 2
	{0x83, 0x8b, 0xa7}, // Overlay 1
	{0x73, 0x79, 0x94}, // Overlay 0
	{0x62, 0x68, 0x80}, // Surface 2
	{0x51, 0x57, 0x6d}, // Surface 1
	{0x41, 0x45, 0x59}, // Surface 0
	{0x30, 0x34, 0x46}, // Base
	{0x29, 0x2c, 0x3c}, // Mantle
	{0x23, 0x26, 0x34}, // Crust
}

var Macchiato = Palette{
	{0xf4, 0xdb, 0xd6}, // Rosewater
	{0xf0, 0xc6, 0xc6}, // Flamingo
	{0xf5, 0xbd, 0xe6}, // Pink
	{0xc6, 0xa0, 0xf6}, // Mauve
	{0xed, 0x87, 0x96}, // Red
	{0xee, 0x99, 0xa0}, // Maroon
	{0xf5, 0xa9, 0x7f}, // Peach
	{0xee, 0xd4, 0x9f}, // Yellow
	{0xa6, 0xda, 0x95}, // Green
	{0x8b, 0xd5, 0xca}, // Teal
	{0x91, 0xd7, 0xe3}, // Sky
	{0x7d, 0xc4, 0xe4}, // Sapphire
	{0x8a, 0xad, 0xf4}, // Blue
	{0xb7, 0xbd, 0xf8}, // Lavender
	{0xca, 0xd3, 0xf5}, // Text
	{0xb8, 0xc0, 0xe0}, // Subtext 1
	{0xa5, 0xad, 0xcb}, // Subtext 0
	{0x93, 0x9a, 0xb7}, // Overlay 2
	{0x80, 0x87, 0xa2}, // Overlay 1
	{0x6e, 0x73, 0x8d}, // Overlay 0
	{0x5b, 0x60, 0x78}, // Surface 2
	{0x49, 0x4d, 0x64}, // Surface 1
	{0x36, 0x3a, 0x4f}, // Surface 0
	{0x24, 0x27, 0x3a}, // Base
	{0x1e, 0x20, 0x30}, // Mantle
	{0x18, 0x19, 0x26}, // Crust
}

var Mocha = Palette{
	{0xf5, 0xe0, 0xdc}, // Rosewater
	{0xf2, 0xcd, 0xcd}, // Flamingo
	{0xf5, 0xc2, 0xe7}, // Pink
	{0xcb, 0xa6, 0xf7}, // Mauve
	{0xf3, 0x8b, 0xa8}, // Red
	{0xeb, 0xa0, 0xac}, // Maroon
	{0xfa, 0xb3, 0x87}, // Peach
	{0xf9, 0xe2, 0xaf}, // Yellow
	{0xa6, 0xe3, 0xa1}, // Green
	{0x94, 0xe2, 0xd5}, // Teal
	{0x89, 0xdc, 0xeb}, // Sky
	{0x74, 0xc7, 0xec}, // Sapphire
	{0x89, 0xb4, 0xfa}, // Blue
	{0xb4, 0xbe, 0xfe}, // Lavender
	{0xcd, 0xd6, 0xf4}, // Text
	{0xba, 0xc2, 0xde}, // Subtext 1
	{0xa6, 0xad, 0xc8}, // Subtext 0
	{0x93, 0x99, 0xb2}, // Overlay 2
	{0x7f, 0x84, 0x9c}, // Overlay 1
	{0x6c, 0x70, 0x86}, // Overlay 0
	{0x58, 0x5b, 0x70}, // Surface 2
	{0x45, 0x47, 0x5a}, // Surface 1
	{0x31, 0x32, 0x44}, // Surface 0
	{0x1e, 0x1e, 0x2e}, // Base
	{0x18, 0x18, 0x25}, // Mantle
	{0x11, 0x11, 0x1b}, // Crust
}

// Solarized, https://ethanschoonover.com/solarized/
var Solarized = Palette{
	{0x00, 0x2b, 0x36}, // base03
	{0x07, 0x36, 0x42}, // base02
	{0x58, 0x6e, 0x75}, // base01
	{0x65, 0x7b, 0x83}, // base00
	{0x83, 0x94, 0x96}, // base0
	{0x93, 0xa1, 0xa1}, // base1
	{0xee, 0xe8, 0xd5}, // base2
	{0xfd, 0xf6, 0xe3}, // base3
	{0xb5, 0x89, 0x00}, // yellow
	{0xcb, 0x4b, 0x16}, // orange
	{0xdc, 0x32, 0x2f}, // red
	{0xd3, 0x36, 0x82}, // magenta
	{0x6c, 0x71, 0xc4}, // violet
	{0x26, 0x8b, 0xd2}, // blue
	{0x2a, 0xa1, 0x98}, // cyan
	{0x85, 0x99, 0x00}, // green
}

// Nord, https://www.nordtheme.com/docs/colors-and-palettes
var Nord = Palette{
	{0x2e, 0x34, 0x40}, // nord0
	{0x3b, 0x42, 0x52}, // nord1
	{0x43, 0x4c, 0x5e}, // nord2
	{0x4c, 0x56, 0x6a}, // nord3
	{0xd8, 0xde, 0xe9}, // nord4
	{0xe5, 0xe9, 0xf0}, // nord5
	{0xec, 0xef, 0xf4}, // nord6
	{0x8f, 0xbc, 0xbb}, // nord7
	{0x88, 0xc0, 0xd0}, // nord8
	{0x81, 0xa1, 0xc1}, // nord9
	{0x5e, 0x81, 0xac}, // nord10
	{0xbf, 0x61, 0x6a}, // nord11
	{0xd0, 0x87, 0x70}, // nord12
	{0xeb, 0xcb, 0x8b}, // nord13
	{0xa3, 0xbe, 0x8c}, // nord14
	{0xb4, 0x8e, 0xad}, // nord15
}

// Basic is the 16 color HTML 4 palette, in the order the HTML spec lists them.
var Basic = Palette{
	FromColor(colornames.Black),
	FromColor(colornames.Silver),
	FromColor(colornames.Gray),
	FromColor(colornames.White),
	FromColor(colornames.Maroon),
	FromColor(colornames.Red),
	FromColor(colornames.Purple),
	FromColor(colornames.Fuchsia),
	FromColor(colornames.Green),
	FromColor(colornames.Lime),
	FromColor(colornames.Olive),
	FromColor(colornames.Yellow),
	FromColor(colornames.Navy),
	FromColor(colornames.Blue),
	FromColor(colornames.Teal),
	FromColor(colornames.Aqua),
}

func init() {
	Register("latte", Latte)
	Register("frappe", Frappe)
	Register("macchiato", Macchiato)
	Register("mocha", Mocha)
	// Older spelling, kept so existing scripts keep working
	Register("moccha", Mocha)
	Register("solarized", Solarized)
	Register("nord", Nord)
	Register("basic", Basic)
}
