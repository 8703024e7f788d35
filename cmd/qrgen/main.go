// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrgen generates a QR code from its arguments or standard input and
// writes it as text or SVG.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/qrgen"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	fn     string // output filename
	format string // output format
	upper  bool   // uppercase input
	latin1 bool   // Latin-1 byte mode
}{}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	getopt.CommandLine.PrintUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	getopt.CommandLine.PrintUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println("qrgen version 1.0.0\nCopyright (c) 2025 Vadim Vygonets")
	os.Exit(0)
}

func main() {
	log.SetFlags(0)
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.latin1, '1', "convert byte mode data to Latin-1")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"minimum QR code version", "ver")
	ff := getopt.Enum('t', []string{"text", "svg"}, "",
		"output format; if no -o is given and standard output\n"+
			"is a TTY, default is text, otherwise svg", "type")
	getopt.Parse()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	g.format = *ff
	if g.format == "" {
		if !getopt.IsSet('o') &&
			isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "text"
		} else {
			g.format = "svg"
		}
	}

	cfg := qrgen.New(s)
	cfg.Level = qrgen.Level(strings.Index("lmqhLMQH", *lev) & 3)
	cfg.MinVersion = int(*ver)
	cfg.Latin1 = g.latin1
	code, err := cfg.Generate()
	if err != nil {
		log.Fatalln(err)
	}

	w := os.Stdout
	if g.fn != "" && g.fn != "-" {
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	if g.format == "text" {
		err = code.WriteText(w)
	} else {
		err = code.WriteSVG(w)
	}
	if err == nil && w != os.Stdout {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
