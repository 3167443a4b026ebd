// Command qrforge is a CLI front end for the encode, decode and fix
// packages. It mirrors the subcommand-less, flag-driven shape of
// unixdj-qr's own "qr" tool, with three verbs (encode, decode, fix)
// standing in for that tool's single encode-only mode of operation.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "fix":
		err = runFix(os.Args[2:])
	case "version", "-V", "--version":
		printVersion()
		return
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "qrforge: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalln(err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `qrforge: QR code encoder, decoder and fixer

Usage:
  qrforge encode [flags] [string ...] [file ...]
  qrforge decode [flags] file ...
  qrforge fix [flags] file ...
  qrforge version

Run "qrforge <command> -h" for flags specific to that command.
`)
}
