// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"fmt"
	"os"

	"github.com/ombreve/handycipher/internal/stream"
	"github.com/urfave/cli"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "handycipher"
	myApp.Usage = "randomized, paper-and-pencil-friendly symmetric cipher"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "e",
			Usage: "encrypt (default)",
		},
		cli.BoolFlag{
			Name:  "d",
			Usage: "decrypt",
		},
		cli.StringFlag{
			Name:  "k",
			Usage: "read the key from `KEYFILE` instead of prompting for a password",
		},
		cli.StringFlag{
			Name:  "o",
			Usage: "write output to `OUTFILE` instead of stdout",
		},
		cli.BoolFlag{
			Name:  "core",
			Usage: "disable null-character salting of the ciphertext",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "print step-by-step encode/decode diagnostics to stderr",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "load defaults from a JSON `FILE`, overridden by any flag given on the command line",
		},
	}
	myApp.ArgsUsage = "[infile]"
	myApp.Action = run
	if err := myApp.Run(os.Args); err != nil {
		fatalf("%+v", err)
	}
}

func run(c *cli.Context) error {
	config := Config{Encrypt: true}
	if path := c.String("config"); path != "" {
		if err := parseJSONConfig(&config, path); err != nil {
			return err
		}
	}
	if c.Bool("d") {
		config.Encrypt = false
	}
	if c.Bool("e") {
		config.Encrypt = true
	}
	if v := c.String("k"); v != "" {
		config.KeyFile = v
	}
	if v := c.String("o"); v != "" {
		config.OutFile = v
	}
	if c.Bool("core") {
		config.Core = true
	}
	if c.Bool("trace") {
		config.Trace = true
	}
	if c.NArg() > 0 {
		config.InFile = c.Args().Get(0)
	}

	key, err := loadKey(&config)
	if err != nil {
		return err
	}

	in := os.Stdin
	if config.InFile != "" {
		f, err := os.Open(config.InFile)
		if err != nil {
			fatalf("could not open input file '%s' -- %v", config.InFile, err)
		}
		defer f.Close()
		in = f
	}

	out, err := openOutput(config.OutFile)
	if err != nil {
		return err
	}

	opt := stream.Options{
		Key:   key,
		Core:  config.Core,
		Trace: config.Trace,
		Warn:  func(format string, args ...any) { warning(format, args...) },
	}

	if config.Encrypt {
		err = stream.Encrypt(in, out, opt)
	} else {
		err = stream.Decrypt(in, out, opt)
	}
	if err != nil {
		out.Abort()
		fatalf("%+v", err)
	}

	if closeErr := out.Close(); closeErr != nil {
		fatalf("could not close output -- %v", closeErr)
	}
	return nil
}

// fatalf prints a "handy: "-prefixed diagnostic and terminates the process
// with a failure status, mirroring the original tool's fatal().
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "handy: "+format+"\n", args...)
	os.Exit(1)
}

// warning prints a non-fatal "warning: "-prefixed diagnostic.
func warning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
