package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/pborman/getopt/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/qrforge/src/bitmap"
	"github.com/ironsmile/qrforge/src/decode"
)

// runDecode implements "qrforge decode file ...", printing every
// payload recovered from each image to standard output. Files are
// decoded concurrently, one goroutine per file, with a semaphore
// channel allowing at most runtime.NumCPU() decodes at a time.
func runDecode(args []string) error {
	set := getopt.New()
	charset := set.StringLong("charset", 'c', "", "charset to transcode byte-mode payloads into", "charset")
	help := set.BoolLong("help", 'h', "show this help")
	set.SetParameters("file ...")

	if err := set.Getopt(append([]string{"qrforge decode"}, args...), nil); err != nil {
		return err
	}
	if *help {
		set.PrintUsage(os.Stdout)
		return nil
	}

	files := set.Args()
	if len(files) == 0 {
		return fmt.Errorf("decode: at least one image file is required")
	}

	g, _ := errgroup.WithContext(context.Background())
	sem := make(chan struct{}, runtime.NumCPU())
	var mu sync.Mutex

	for _, path := range files {
		path := path
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			payloads, err := decodeFile(path, *charset)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			mu.Lock()
			for _, p := range payloads {
				fmt.Printf("%s: %s\n", path, p)
			}
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

func decodeFile(path, charset string) ([][]byte, error) {
	src, err := bitmap.Load(osFs, path)
	if err != nil {
		return nil, err
	}
	d := decode.NewDecoder(charset, sink(true))
	results := d.ImageDecoder(src)
	if len(results) == 0 {
		return nil, fmt.Errorf("no QR code found")
	}
	return results, nil
}
