// seehuhn.de/go/obj - a library for reading and writing Wavefront OBJ files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Objfmt reads a Wavefront OBJ file and writes it back in canonical form.
//
// Usage:
//
//	objfmt [-o out.obj] [-nfc] [-stats] in.obj
//
// With -stats, a summary of the objects in the file is printed instead of
// the OBJ data.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/obj"
	"seehuhn.de/go/obj/internal/buildinfo"
	"seehuhn.de/go/obj/internal/profile"
)

type options struct {
	input, output string
	nfc, stats    bool
	cpuProfile    string
	memProfile    string
}

func main() {
	opt := &options{}
	flag.StringVar(&opt.output, "o", "", "write the result to `file` instead of stdout")
	flag.BoolVar(&opt.nfc, "nfc", false, "normalize comments and object names to Unicode NFC")
	flag.BoolVar(&opt.stats, "stats", false, "print a summary instead of the OBJ data")
	flag.StringVar(&opt.cpuProfile, "cpuprofile", "", "write a CPU profile to `file`")
	flag.StringVar(&opt.memProfile, "memprofile", "", "write a memory profile to `file`")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("objfmt"))
		return
	}
	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] input.obj\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	opt.input = flag.Arg(0)

	err := run(opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "objfmt: %v\n", err)
		os.Exit(1)
	}
}

func run(opt *options) (err error) {
	prof, err := profile.Start(opt.cpuProfile, opt.memProfile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	doc, err := obj.ReadFile(opt.input, &obj.ReaderOptions{
		NormalizeText: opt.nfc,
	})
	if err != nil {
		return fmt.Errorf("reading %s: %w", opt.input, err)
	}

	if opt.stats {
		width := 0
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil {
				width = w
			}
		}
		return printStats(os.Stdout, doc, width)
	}

	if opt.output != "" {
		return doc.WriteFile(opt.output)
	}
	w := bufio.NewWriter(os.Stdout)
	err = doc.WriteOBJ(w)
	if err != nil {
		return err
	}
	return w.Flush()
}
