// Command sampledata lists, inspects, loads and exports the bundled sample
// images.
//
// Usage:
//
//	sampledata [-config file] [-data-dir dir] [-backend name] [-log-level level] <command> [args]
//
// Run "sampledata help" for the command list.
package main

import (
	"os"

	"github.com/nvr-ai/go-sampledata/cmd/sampledata/cli"

	// Decoder backends register themselves with the codec package.
	_ "github.com/nvr-ai/go-sampledata/codec/imaging"
	_ "github.com/nvr-ai/go-sampledata/codec/libjpeg"
	_ "github.com/nvr-ai/go-sampledata/codec/opencv"
	_ "github.com/nvr-ai/go-sampledata/codec/vips"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
