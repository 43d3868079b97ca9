package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/palettize/palette"
	"github.com/makeworld-the-better-one/palettize/quantize"
	"github.com/urfave/cli/v2"
)

var (
	// Range -100,100

	saturation float64
	brightness float64
	contrast   float64

	autoOrientation imaging.DecodeOption

	compLevel   png.CompressionLevel
	jpegQuality int

	outFileFlags int // For os.OpenFile

	width  int
	height int
	// upscale will always be 1 or above
	upscale int

	// 0 means GOMAXPROCS
	threads int
	// Rows between progress lines, 0 disables them
	progressEvery int
)

// preProcess is automatically called by the app before anything else.
// It's run in the global context.
func preProcess(c *cli.Context) error {
	threads = int(c.Uint("threads"))
	if threads > 0 {
		runtime.GOMAXPROCS(threads)
	}
	progressEvery = int(c.Uint("progress"))

	var err error

	saturation, err = parsePercentArg(c.String("saturation"), false)
	if err != nil {
		return fmt.Errorf("saturation: %w", err)
	}
	brightness, err = parsePercentArg(c.String("brightness"), false)
	if err != nil {
		return fmt.Errorf("brightness: %w", err)
	}
	contrast, err = parsePercentArg(c.String("contrast"), false)
	if err != nil {
		return fmt.Errorf("contrast: %w", err)
	}

	autoOrientation = imaging.AutoOrientation(!c.Bool("no-exif-rotation"))

	var defs []string
	if d, ok := c.Generic("define").(*definitions); ok {
		defs = *d
	}
	for _, def := range defs {
		name, p, err := parseDefinition(def)
		if err != nil {
			return err
		}
		if existing, err := palette.Lookup(name); err == nil {
			if reflect.DeepEqual(existing, p) {
				// Same definition again
				continue
			}
			return fmt.Errorf("define: a palette named '%s' already exists", name)
		}
		palette.Register(name, p)
	}

	// Set PNG compression type

	switch c.String("compression") {
	case "default":
		compLevel = png.DefaultCompression
	case "no":
		compLevel = png.NoCompression
	case "speed":
		compLevel = png.BestSpeed
	case "size":
		compLevel = png.BestCompression
	default:
		return fmt.Errorf("invalid compression type '%s'", c.String("compression"))
	}

	jpegQuality = c.Int("quality")
	if jpegQuality < 1 || jpegQuality > 100 {
		return fmt.Errorf("quality must be in the range 1-100, not %d", jpegQuality)
	}

	if c.Bool("no-overwrite") {
		outFileFlags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	} else {
		outFileFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	// Set here for convenience
	width = int(c.Uint("width"))
	height = int(c.Uint("height"))
	upscale = int(c.Uint("upscale"))
	if upscale == 0 {
		// Invalid
		upscale = 1
	}

	return nil
}

// quantizeImage is the main action. It reduces the single input image to the
// palette from the --palette flag and writes it out.
func quantizeImage(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("no input image given. Usage: palettize <input> --palette <name>")
	}
	if c.NArg() > 1 {
		for _, arg := range c.Args().Tail() {
			if strings.HasPrefix(arg, "-") {
				return fmt.Errorf("flag %s comes after the input image '%s'. Put flags first, or the input image first and flags after it", arg, c.Args().First())
			}
		}
		return fmt.Errorf("only one input image is allowed, got %d: %s", c.NArg(), strings.Join(c.Args().Slice(), " "))
	}
	if !c.IsSet("palette") || strings.TrimSpace(c.String("palette")) == "" {
		return errors.New("the --palette flag is required")
	}

	name := strings.TrimSpace(c.String("palette"))
	pal, err := palette.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w. Available palettes: %s", err, strings.Join(palette.Names(), ", "))
	}

	inPath := c.Args().First()
	outPath := c.String("out")
	if outPath == "" {
		outPath = outputPath(inPath, name)
	}

	// Check this before doing any work
	format, err := imaging.FormatFromFilename(outPath)
	if err != nil {
		return fmt.Errorf("'%s': %w", outPath, err)
	}
	if format == imaging.GIF && len(pal) > 256 {
		return errors.New("the GIF format only supports 256 colors or less in the palette")
	}

	img, err := getInputImage(inPath)
	if err != nil {
		return err
	}

	q, err := quantize.New(pal)
	if err != nil {
		return err
	}
	q.Workers = threads
	q.ProgressEvery = progressEvery
	q.Progress = func(done, total int) {
		log.Printf("Processing row %d/%d", done, total)
	}

	quantized, err := q.QuantizeContext(c.Context, img)
	if err != nil {
		return err
	}

	var out image.Image = postProcImage(quantized)
	if format == imaging.GIF {
		// Already quantized, so this only swaps colors for palette indices
		out = q.QuantizePaletted(out)
	}
	err = writeImage(out, outPath, format, len(pal))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "Processed image saved to:", outPath)
	return nil
}

// listPalettes prints every registered palette with its colors.
func listPalettes(c *cli.Context) error {
	for _, name := range palette.Names() {
		p, err := palette.Lookup(name)
		if err != nil {
			return err
		}
		hexes := make([]string, len(p))
		for i, pc := range p {
			hexes[i] = pc.Hex()
		}
		fmt.Fprintf(c.App.Writer, "%-12s %3d  %s\n", name, len(p), strings.Join(hexes, " "))
	}
	return nil
}
