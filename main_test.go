package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/makeworld-the-better-one/palettize/palette"
	"github.com/urfave/cli/v2"
)

// writePNG writes a w*h image filled with c to dir/name and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func readImage(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestOutputPath(t *testing.T) {
	testCases := []struct {
		in, name, want string
	}{
		{"cat.png", "mocha", "mocha_cat.png"},
		{"photos/cat.png", "latte", "photos/latte_cat.png"},
		{"/tmp/a/b.jpg", "nord", "/tmp/a/nord_b.jpg"},
		{"./x.gif", "basic", "./basic_x.gif"},
	}

	for _, tc := range testCases {
		in := filepath.FromSlash(tc.in)
		want := filepath.FromSlash(tc.want)
		if got := outputPath(in, tc.name); got != want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", in, tc.name, got, want)
		}
	}
}

func TestNormalizeArgs(t *testing.T) {
	commands := newApp().Commands

	testCases := []struct {
		in, want []string
	}{
		{
			[]string{"palettize", "in.png", "--palette", "mocha"},
			[]string{"palettize", "--palette", "mocha", "in.png"},
		},
		{
			[]string{"palettize", "--palette", "mocha", "in.png"},
			[]string{"palettize", "--palette", "mocha", "in.png"},
		},
		{
			[]string{"palettize", "in.png"},
			[]string{"palettize", "in.png"},
		},
		{
			[]string{"palettize", "palettes", "extra"},
			[]string{"palettize", "palettes", "extra"},
		},
		{
			[]string{"palettize", "help", "palettes"},
			[]string{"palettize", "help", "palettes"},
		},
	}

	for _, tc := range testCases {
		if got := normalizeArgs(tc.in, commands); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("normalizeArgs(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePercentArg(t *testing.T) {
	testCases := []struct {
		arg    string
		maxOne bool
		want   float64
	}{
		{"", false, 0},
		{"50%", false, 50},
		{"50%", true, 0.5},
		{"0.25", false, 25},
		{"0.25", true, 0.25},
		{"-20%", false, -20},
	}

	for _, tc := range testCases {
		got, err := parsePercentArg(tc.arg, tc.maxOne)
		if err != nil {
			t.Errorf("parsePercentArg(%q, %v): %v", tc.arg, tc.maxOne, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePercentArg(%q, %v) = %v, want %v", tc.arg, tc.maxOne, got, tc.want)
		}
	}

	if _, err := parsePercentArg("abc%", false); err == nil {
		t.Error("expected error for abc%")
	}
}

func TestParseColors(t *testing.T) {
	got, err := parseColors("#1e1e2e 255,0,0  128 white DarkSlateBlue")
	if err != nil {
		t.Fatal(err)
	}
	want := palette.Palette{
		{R: 0x1e, G: 0x1e, B: 0x2e},
		{R: 255, G: 0, B: 0},
		{R: 128, G: 128, B: 128},
		{R: 255, G: 255, B: 255},
		{R: 0x48, G: 0x3d, B: 0x8b},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "256", "1,2,300", "notacolor", "1,2"} {
		if _, err := parseColors(bad); err == nil {
			t.Errorf("parseColors(%q): expected error", bad)
		}
	}
}

func TestParseDefinition(t *testing.T) {
	name, p, err := parseDefinition(" mono = black white")
	if err != nil {
		t.Fatal(err)
	}
	if name != "mono" {
		t.Errorf("name: got %q", name)
	}
	if want := (palette.Palette{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}); !reflect.DeepEqual(p, want) {
		t.Errorf("palette: got %v, want %v", p, want)
	}

	for _, bad := range []string{"black white", "=black", "x=", "x=nope"} {
		if _, _, err := parseDefinition(bad); err == nil {
			t.Errorf("parseDefinition(%q): expected error", bad)
		}
	}
}

func TestRunAllBlack(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "black.png", 2, 2, color.NRGBA{0, 0, 0, 255})

	var out bytes.Buffer
	err := run([]string{"palettize", in, "--palette", "basic"}, &out)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "basic_black.png")
	if !strings.Contains(out.String(), outPath) {
		t.Errorf("output %q does not mention %s", out.String(), outPath)
	}

	img := readImage(t, outPath)
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 || a != 0xffff {
				t.Errorf("pixel (%d,%d): got %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestRunNearestColor(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "gray.png", 3, 2, color.NRGBA{10, 10, 10, 255})
	outPath := filepath.Join(dir, "result.png")

	err := run([]string{
		"palettize",
		"--define", "test-bw=white black",
		"--palette", "test-bw",
		"--out", outPath,
		"--progress", "1",
		"-j", "2",
		in,
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	img := readImage(t, outPath)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	if got := color.NRGBAModel.Convert(img.At(2, 1)); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("got %v, want black", got)
	}
}

func TestRunUpscaleGIF(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "red.png", 2, 3, color.NRGBA{250, 10, 10, 255})
	outPath := filepath.Join(dir, "red.gif")

	err := run([]string{"palettize", in, "-p", "basic", "-u", "2", "-o", outPath}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if g.Bounds() != image.Rect(0, 0, 4, 6) {
		t.Fatalf("bounds: got %v", g.Bounds())
	}
	if got := color.NRGBAModel.Convert(g.At(3, 5)); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("got %v, want red", got)
	}

	pm, ok := g.(*image.Paletted)
	if !ok {
		t.Fatalf("got %T, want *image.Paletted", g)
	}
	if len(pm.Palette) != len(palette.Basic) {
		t.Fatalf("palette length: got %d, want %d", len(pm.Palette), len(palette.Basic))
	}
	for i, c := range pm.Palette {
		if got := palette.FromColor(c); got != palette.Basic[i] {
			t.Errorf("palette entry %d: got %v, want %v", i, got, palette.Basic[i])
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", 1, 1, color.NRGBA{1, 2, 3, 255})

	testCases := []struct {
		desc string
		args []string
		want string
	}{
		{"no input", []string{"palettize", "--palette", "mocha"}, "no input image"},
		{"no palette", []string{"palettize", in}, "--palette"},
		{"two inputs", []string{"palettize", "-p", "mocha", in, in}, "only one input"},
		{"flag after input", []string{"palettize", "--threads", "2", in, "--palette", "mocha"}, "comes after the input image"},
		{"redefine builtin", []string{"palettize", "-d", "latte=red", "-p", "latte", in}, "already exists"},
		{"bad compression", []string{"palettize", "-p", "mocha", "-c", "huge", in}, "compression"},
		{"bad quality", []string{"palettize", "-p", "mocha", "-q", "0", in}, "quality"},
		{"bad define", []string{"palettize", "-d", "oops", "-p", "mocha", in}, "define"},
		{"bad extension", []string{"palettize", "-p", "mocha", "-o", filepath.Join(dir, "x.txt"), in}, "x.txt"},
	}

	for _, tc := range testCases {
		err := run(tc.args, &bytes.Buffer{})
		if err == nil {
			t.Errorf("%s: expected error", tc.desc)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not contain %q", tc.desc, err, tc.want)
		}
	}
}

func TestRunUnknownPalette(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", 1, 1, color.NRGBA{1, 2, 3, 255})

	err := run([]string{"palettize", in, "--palette", "nonexistent"}, &bytes.Buffer{})
	var upe *palette.UnknownPaletteError
	if !errors.As(err, &upe) {
		t.Fatalf("got %v, want *palette.UnknownPaletteError", err)
	}
	if upe.Name != "nonexistent" {
		t.Errorf("name: got %q", upe.Name)
	}
	if _, err := os.Stat(filepath.Join(dir, "nonexistent_in.png")); !os.IsNotExist(err) {
		t.Error("output file was written for an unknown palette")
	}
}

func TestRunDecodeError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.png")

	err := run([]string{"palettize", missing, "--palette", "mocha"}, &bytes.Buffer{})
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want *DecodeError", err)
	}
	if de.Path != missing {
		t.Errorf("path: got %q", de.Path)
	}

	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	err = run([]string{"palettize", corrupt, "--palette", "mocha"}, &bytes.Buffer{})
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want *DecodeError", err)
	}
}

func TestRunNoOverwrite(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", 1, 1, color.NRGBA{1, 2, 3, 255})
	args := []string{"palettize", "--no-overwrite", "--palette", "nord", in}

	if err := run(args, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	err := run(args, &bytes.Buffer{})
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want *EncodeError", err)
	}
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("got %v, want an os.ErrExist error", err)
	}
}

func TestListPalettes(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"palettize", "palettes"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"latte", "frappe", "macchiato", "mocha", "solarized", "nord", "basic"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("palettes output is missing %s", name)
		}
	}
	if !strings.Contains(out.String(), "#1e1e2e") {
		t.Error("palettes output is missing mocha's base color")
	}
}

func TestDefinitionsSet(t *testing.T) {
	d := &definitions{}
	for _, v := range []string{"a=red", "a=red", "b=blue"} {
		if err := d.Set(v); err != nil {
			t.Fatal(err)
		}
	}
	// What the flag library copies to the -d alias
	if err := d.Set(d.String()); err != nil {
		t.Fatal(err)
	}
	if want := (definitions{"a=red", "b=blue"}); !reflect.DeepEqual(*d, want) {
		t.Errorf("got %v, want %v", *d, want)
	}
}

func TestRunDefine(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", 2, 2, color.NRGBA{200, 10, 20, 255})
	outPath := filepath.Join(dir, "out.png")

	testCases := []struct {
		desc string
		args []string
		want color.NRGBA
	}{
		{
			"short flag",
			[]string{"-d", "test-short=blue red", "-p", "test-short"},
			color.NRGBA{255, 0, 0, 255},
		},
		{
			"several definitions",
			[]string{"--define", "test-one=black", "--define", "test-two=green 255,0,0", "-p", "test-two"},
			color.NRGBA{255, 0, 0, 255},
		},
		{
			"same definition again",
			[]string{"-d", "test-short=blue red", "-d", "test-short=blue red", "-p", "test-short"},
			color.NRGBA{255, 0, 0, 255},
		},
		{
			"unused definition",
			[]string{"-d", "test-one=black", "-p", "basic"},
			color.NRGBA{255, 0, 0, 255},
		},
	}

	for _, tc := range testCases {
		args := append([]string{"palettize"}, tc.args...)
		args = append(args, "-o", outPath, in)
		if err := run(args, &bytes.Buffer{}); err != nil {
			t.Errorf("%s: %v", tc.desc, err)
			continue
		}
		if got := color.NRGBAModel.Convert(readImage(t, outPath).At(1, 1)); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.desc, got, tc.want)
		}
	}

	err := run([]string{"palettize", "-d", "test-one=white", "-p", "test-one", "-o", outPath, in}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("redefining test-one with other colors: got %v", err)
	}
}

func TestRunVersion(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", 1, 1, color.NRGBA{1, 2, 3, 255})

	for _, args := range [][]string{
		{"palettize", "--version"},
		{"palettize", "--version", in},
		{"palettize", in, "-v"},
	} {
		var out bytes.Buffer
		if err := run(args, &out); err != nil {
			t.Errorf("%v: %v", args, err)
			continue
		}
		if !strings.Contains(out.String(), "palettize "+version) {
			t.Errorf("%v: output %q has no version", args, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "_in.png")); !os.IsNotExist(err) {
		t.Error("an image was written when printing the version")
	}
}

func TestFlagUsage(t *testing.T) {
	for _, f := range newApp().Flags {
		df, ok := f.(cli.DocGenerationFlag)
		if !ok {
			continue
		}
		if df.GetUsage() == "" {
			t.Errorf("flag %v has no usage text", f.Names())
		}
	}
}
