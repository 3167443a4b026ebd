package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pborman/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/qrforge/src/encode"
	"github.com/ironsmile/qrforge/src/render"
)

// runEncode implements "qrforge encode". With no -b flag it encodes a
// single payload, read either from the command line arguments (joined
// with spaces, as unixdj-qr's "qr" does) or from standard input.  With
// -b it treats every argument as a text file containing one payload
// per line and fans the encodings out over a worker pool, the way the
// teacher's src/scaler spreads image conversions over runtime.NumCPU()
// goroutines.
func runEncode(args []string) error {
	set := getopt.New()
	out := set.StringLong("output", 'o', "", "output file (single mode) or directory (batch mode)", "path")
	levelFlag := set.StringLong("level", 'l', "", "error correction level: l, m, q or h", "level")
	ver := set.IntLong("version", 'v', 0, "QR version 1-40, 0 selects the smallest that fits", "ver")
	mask := set.IntLong("mask", 'k', -1, "mask pattern 0-7, -1 selects automatically", "mask")
	charset := set.StringLong("charset", 'c', "", "charset for byte mode segments: UTF-8 or ISO-8859-1", "charset")
	scale := set.IntLong("scale", 's', 0, "pixels per module, 0 uses the configured default", "px")
	quiet := set.IntLong("quiet-zone", 'z', -1, "quiet zone modules, -1 uses the configured default", "n")
	format := set.StringLong("type", 't', "", "output format: png or ascii; default depends on whether stdout is a terminal", "png|ascii")
	batch := set.BoolLong("batch", 'b', "treat arguments as files of newline-separated payloads")
	help := set.BoolLong("help", 'h', "show this help")
	set.SetParameters("[string ...]")

	if err := set.Getopt(append([]string{"qrforge encode"}, args...), nil); err != nil {
		return err
	}
	if *help {
		set.PrintUsage(os.Stdout)
		return nil
	}

	lvl, err := parseLevel(*levelFlag, loadConfig().Level)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	if *scale <= 0 {
		*scale = cfg.ModulePixelSize
	}
	if *quiet < 0 {
		*quiet = cfg.QuietZone
	}
	if *charset == "" {
		*charset = cfg.Charset
	}

	opts := render.Options{ModulePixelSize: *scale, QuietZone: *quiet}

	if *batch {
		return encodeBatch(set.Args(), *out, encode.Params{
			Charset: *charset, Level: lvl, Mask: *mask, Version: *ver,
		}, opts, *format)
	}

	payload, err := readPayload(set.Args())
	if err != nil {
		return err
	}

	sym, err := encode.Encode(encode.Params{
		Data: payload, Charset: *charset, Level: lvl, Mask: *mask, Version: *ver,
	}, sink(false))
	if err != nil {
		return err
	}

	return writeSymbol(sym, *out, opts, *format)
}

// readPayload returns the string to encode: the CLI arguments joined
// with spaces if any were given, otherwise the whole of standard
// input with its trailing newline stripped.
func readPayload(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	s := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return []byte(s), nil
}

// pickFormat decides between a PNG file and an ASCII terminal
// preview. An explicit -t wins; otherwise a TTY with no -o gets
// ASCII, matching unixdj-qr's own default-format rule.
func pickFormat(explicit, out string) string {
	if explicit != "" {
		return explicit
	}
	if out == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		return "ascii"
	}
	return "png"
}

func writeSymbol(sym *encode.Symbol, out string, opts render.Options, format string) error {
	switch pickFormat(format, out) {
	case "ascii":
		art := render.ToASCII(sym.Matrix, opts.QuietZone)
		if out == "" || out == "-" {
			_, err := fmt.Print(art)
			return err
		}
		return os.WriteFile(out, []byte(art), 0o644)
	case "png":
		if out == "" || out == "-" {
			data, err := render.ToPNG(sym.Matrix, opts)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}
		return render.SaveQRCodeToPngFile(osFs, out, sym.Matrix, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// encodeBatch reads newline-separated payloads from each file in
// paths and encodes every one concurrently, bounded by runtime.NumCPU()
// workers, the same fan-out shape the teacher's src/scaler uses for
// image conversions. Output files land in outDir named with a random
// UUID, since a batch has no single natural output path.
func encodeBatch(paths []string, outDir string, base encode.Params, opts render.Options, format string) error {
	if outDir == "" {
		return fmt.Errorf("batch mode requires -o <directory>")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var payloads [][]byte
	for _, p := range paths {
		lines, err := readLines(p)
		if err != nil {
			return err
		}
		payloads = append(payloads, lines...)
	}

	g, _ := errgroup.WithContext(context.Background())
	work := make(chan []byte)

	for i := 0; i < runtime.NumCPU(); i++ {
		g.Go(func() error {
			for payload := range work {
				params := base
				params.Data = payload
				sym, err := encode.Encode(params, sink(true))
				if err != nil {
					return fmt.Errorf("encoding %q: %w", payload, err)
				}
				name := filepath.Join(outDir, uuid.New()+outputExt(format))
				if err := writeSymbol(sym, name, opts, format); err != nil {
					return err
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(work)
		for _, payload := range payloads {
			work <- payload
		}
		return nil
	})

	return g.Wait()
}

func outputExt(format string) string {
	if pickFormat(format, "x") == "ascii" {
		return ".txt"
	}
	return ".png"
}

func readLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
	return lines, scanner.Err()
}
