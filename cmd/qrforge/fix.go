package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pborman/getopt/v2"

	"github.com/ironsmile/qrforge/src/bitmap"
	"github.com/ironsmile/qrforge/src/fix"
	"github.com/ironsmile/qrforge/src/render"
)

// runFix implements "qrforge fix file ...", re-rendering a clean
// symbol for every damaged QR code image given, next to the source
// file with a "-fixed.png" suffix unless -o names a directory.
func runFix(args []string) error {
	set := getopt.New()
	out := set.StringLong("output", 'o', "", "directory to write fixed images into", "dir")
	charset := set.StringLong("charset", 'c', "", "charset to transcode the recovered payload into", "charset")
	scale := set.IntLong("scale", 's', 0, "pixels per module, 0 uses the configured default", "px")
	quietZone := set.IntLong("quiet-zone", 'z', -1, "quiet zone modules, -1 uses the configured default", "n")
	help := set.BoolLong("help", 'h', "show this help")
	set.SetParameters("file ...")

	if err := set.Getopt(append([]string{"qrforge fix"}, args...), nil); err != nil {
		return err
	}
	if *help {
		set.PrintUsage(os.Stdout)
		return nil
	}

	files := set.Args()
	if len(files) == 0 {
		return fmt.Errorf("fix: at least one image file is required")
	}

	cfg := loadConfig()
	if *scale <= 0 {
		*scale = cfg.ModulePixelSize
	}
	if *quietZone < 0 {
		*quietZone = cfg.QuietZone
	}
	opts := render.Options{ModulePixelSize: *scale, QuietZone: *quietZone}

	for _, path := range files {
		if err := fixFile(path, *out, *charset, opts); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func fixFile(path, outDir, charset string, opts render.Options) error {
	src, err := bitmap.Load(osFs, path)
	if err != nil {
		return err
	}

	result, err := fix.Fix(src, charset, sink(true))
	if err != nil {
		return err
	}

	dest := fixedPath(path, outDir)
	if err := render.SaveQRCodeToPngFile(osFs, dest, result.Symbol.Matrix, opts); err != nil {
		return err
	}
	fmt.Printf("%s -> %s\n", path, dest)
	return nil
}

// fixedPath builds the output path for a fixed image: inside outDir
// with the original base name if outDir is set, otherwise next to the
// source with a "-fixed" suffix before the extension.
func fixedPath(src, outDir string) string {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	if outDir != "" {
		return filepath.Join(outDir, stem+".png")
	}
	return filepath.Join(filepath.Dir(src), stem+"-fixed.png")
}
