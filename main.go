package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags "-X main.version=..."
var (
	version = "v0.1.0"
	commit  = "unknown"
	builtBy = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:                   "palettize",
		Version:                version,
		Usage:                  "reduce the colors of an image to a named palette",
		UsageText:              "palettize <input> --palette <name> [options]\npalettize [options] <input>\npalettize palettes",
		Description:            "palettize replaces every pixel of an image with the nearest color of a palette.\n\nThe output is written next to the input, named <palette>_<filename>, unless --out is set.",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "palette",
				Aliases: []string{"p"},
				Usage:   "name of the palette to use, see the palettes command",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output path, instead of <palette>_<filename> next to the input",
			},
			&cli.GenericFlag{
				Name:    "define",
				Aliases: []string{"d"},
				Usage:   "define a palette like 'name=#1e1e2e 255,0,0 white 128', can be repeated",
				Value:   &definitions{},
			},
			&cli.UintFlag{
				Name:    "threads",
				Aliases: []string{"j"},
				Usage:   "number of threads to use, 0 for one per CPU",
			},
			&cli.UintFlag{
				Name:  "progress",
				Usage: "log progress every this many rows, 0 to disable",
				Value: 50,
			},
			&cli.StringFlag{
				Name:  "saturation",
				Usage: "adjust saturation before quantizing, like '50%' or '-0.2'",
			},
			&cli.StringFlag{
				Name:  "brightness",
				Usage: "adjust brightness before quantizing, like '10%' or '-0.1'",
			},
			&cli.StringFlag{
				Name:  "contrast",
				Usage: "adjust contrast before quantizing, like '20%' or '-0.3'",
			},
			&cli.BoolFlag{
				Name:  "no-exif-rotation",
				Usage: "don't rotate the input according to its EXIF orientation",
			},
			&cli.BoolFlag{
				Name:  "no-overwrite",
				Usage: "fail instead of replacing an existing output file",
			},
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Usage:   "PNG compression: default, no, speed or size",
				Value:   "default",
			},
			&cli.IntFlag{
				Name:    "quality",
				Aliases: []string{"q"},
				Usage:   "JPEG quality, 1-100",
				Value:   95,
			},
			&cli.UintFlag{
				Name:    "width",
				Aliases: []string{"x"},
				Usage:   "resize the input to this width first, 0 keeps the aspect ratio",
			},
			&cli.UintFlag{
				Name:    "height",
				Aliases: []string{"y"},
				Usage:   "resize the input to this height first, 0 keeps the aspect ratio",
			},
			&cli.UintFlag{
				Name:    "upscale",
				Aliases: []string{"u"},
				Usage:   "scale the output up by this whole factor, without new colors",
				Value:   1,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "palettes",
				Usage:  "list the available palettes",
				Action: listPalettes,
			},
		},
		Before: preProcess,
		Action: quantizeImage,
	}
}

// definitions collects every --define flag. Values aren't split on commas
// like cli.StringSlice can do, since RGB tuples contain them.
type definitions []string

// Set skips values it already holds. The flag library sets the value once
// for the flag name, then copies String() to each alias with another Set.
func (d *definitions) Set(value string) error {
	if len(*d) > 0 && value == d.String() {
		return nil
	}
	for _, v := range *d {
		if v == value {
			return nil
		}
	}
	*d = append(*d, value)
	return nil
}

func (d *definitions) String() string {
	return strings.Join(*d, "; ")
}

// normalizeArgs allows the input path to come before the flags, like
//
//	palettize photo.png --palette mocha
//
// by moving it to the end. Flag parsing stops at the first argument that
// isn't a flag, so otherwise --palette would be read as a second input.
func normalizeArgs(args []string, commands []*cli.Command) []string {
	if len(args) < 3 || strings.HasPrefix(args[1], "-") {
		return args
	}
	if args[1] == "help" || args[1] == "h" {
		return args
	}
	for _, c := range commands {
		if c.HasName(args[1]) {
			return args
		}
	}

	out := make([]string, 0, len(args))
	out = append(out, args[0])
	out = append(out, args[2:]...)
	return append(out, args[1])
}

// run runs the app with the given arguments, writing results to w.
func run(args []string, w io.Writer) error {
	app := newApp()
	app.Writer = w
	return app.Run(normalizeArgs(args, app.Commands))
}

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, "palettize", c.App.Version)
		fmt.Fprintln(c.App.Writer, "Commit:", commit)
		fmt.Fprintln(c.App.Writer, "Built by:", builtBy)
	}
}

func main() {
	err := run(os.Args, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
