// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/ezrec/asm4004/asm"
)

func main() {
	var output string
	var listing string

	flag.StringVar(&output, "o", "", "Output binary file (default: input with .bin)")
	flag.StringVar(&listing, "l", "", "Output listing file")

	// glog contributes -v and friends; diagnostics belong on stderr
	// unless the caller says otherwise.
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		glog.Exitf("usage: %v [options] input.asm", os.Args[0])
	}

	input := flag.Arg(0)
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}

	a := &asm.Assembler{}
	if err := a.AssembleFile(input, output, listing); err != nil {
		glog.Exitf("%v: %v", input, err)
	}
}
