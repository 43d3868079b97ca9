package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/palettize/palette"
	"golang.org/x/image/colornames"

	// More input formats, on top of what imaging registers
	_ "golang.org/x/image/webp"
)

// parsePercentArg takes a string like "0.5" or "50%" and will return a float
// like 50 or 0.5, depending on the second argument. An empty string returns 0.
//
// If `maxOne` is true, then "50%" will return 0.5. Otherwise it will return 50.
func parsePercentArg(arg string, maxOne bool) (float64, error) {
	if arg == "" {
		return 0, nil
	}
	if strings.HasSuffix(arg, "%") {
		arg = arg[:len(arg)-1]
		f64, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return 0, err
		}
		if maxOne {
			f64 /= 100.0
		}
		return f64, nil
	}
	f64, err := strconv.ParseFloat(arg, 64)
	if !maxOne {
		f64 *= 100.0
	}
	return f64, err
}

func rgbToColor(s string) (palette.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return palette.Color{}, fmt.Errorf("%s is not an RGB tuple", s)
	}
	var c [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return palette.Color{}, fmt.Errorf("%s is not an RGB tuple", s)
		}
		c[i] = uint8(n)
	}
	return palette.Color{R: c[0], G: c[1], B: c[2]}, nil
}

// parseColors turns a space separated list of colors into a palette.
func parseColors(arg string) (palette.Palette, error) {
	args := strings.Fields(arg)
	colors := make([]palette.Color, len(args))

	for i, arg := range args {
		// Try to parse as RGB numbers, then hex, then grayscale, then SVG colors, then fail

		if strings.Count(arg, ",") == 2 {
			rgbColor, err := rgbToColor(arg)
			if err != nil {
				return nil, fmt.Errorf("%s is not a valid RGB tuple. Example: 25,200,150", arg)
			}
			colors[i] = rgbColor
			continue
		}

		hexColor, err := palette.ParseHex(arg)
		if err == nil {
			colors[i] = hexColor
			continue
		}

		n, err := strconv.Atoi(arg)
		if err == nil {
			if n > 255 || n < 0 {
				return nil, fmt.Errorf("single numbers like %d must be in the range 0-255", n)
			}
			colors[i] = palette.Color{R: uint8(n), G: uint8(n), B: uint8(n)}
			continue
		}

		htmlColor, ok := colornames.Map[strings.ToLower(arg)]
		if ok {
			colors[i] = palette.FromColor(htmlColor)
			continue
		}

		return nil, fmt.Errorf("%s not recognized as an RGB tuple, hex code, number 0-255, or SVG color name", arg)
	}

	return palette.New(colors...)
}

// parseDefinition parses a --define value like "name=#000 white 0,0,255".
func parseDefinition(def string) (string, palette.Palette, error) {
	i := strings.Index(def, "=")
	if i < 0 {
		return "", nil, fmt.Errorf("define: '%s' is missing '=', use name=colors", def)
	}
	name := strings.TrimSpace(def[:i])
	if name == "" {
		return "", nil, fmt.Errorf("define: '%s' has no palette name", def)
	}
	p, err := parseColors(def[i+1:])
	if err != nil {
		return "", nil, fmt.Errorf("define %s: %w", name, err)
	}
	return name, p, nil
}

// outputPath returns where the result for inPath goes: the same directory,
// with the palette name prefixed to the file name.
func outputPath(inPath, paletteName string) string {
	dir, file := filepath.Split(inPath)
	return dir + paletteName + "_" + file
}

// getInputImage opens the image at path and applies any pre-processing set
// by flags.
func getInputImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, autoOrientation)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	if width != 0 || height != 0 {
		// Box sampling is quick and fast, and better then others at downscaling
		// https://pkg.go.dev/github.com/disintegration/imaging#ResampleFilter
		img = imaging.Resize(img, width, height, imaging.Box)
	}
	if saturation != 0 {
		img = imaging.AdjustSaturation(img, saturation)
	}
	if contrast != 0 {
		img = imaging.AdjustContrast(img, contrast)
	}
	if brightness != 0 {
		img = imaging.AdjustBrightness(img, brightness)
	}

	return img, nil
}

// postProcImage upscales the quantized image if needed. Nearest neighbor
// scaling only repeats pixels, so no colors outside the palette appear.
func postProcImage(img *image.NRGBA) *image.NRGBA {
	if upscale == 1 {
		return img
	}
	return imaging.Resize(
		img,
		img.Bounds().Dx()*upscale,
		0,
		imaging.NearestNeighbor,
	)
}

// writeImage encodes img to path. The file is removed again if encoding
// fails, so no partial output is left behind.
//
// GIF output should be an *image.Paletted holding at most numColors colors, so
// the encoder writes its palette as is.
func writeImage(img image.Image, path string, format imaging.Format, numColors int) error {
	file, err := os.OpenFile(path, outFileFlags, 0644)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	err = imaging.Encode(file, img, format,
		imaging.PNGCompressionLevel(compLevel),
		imaging.JPEGQuality(jpegQuality),
		imaging.GIFNumColors(numColors),
	)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
