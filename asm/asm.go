// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/golang/glog"
)

// Assembler is the two-pass assembler driver. The zero value is ready to
// use, and one Assembler may assemble any number of files; every call to
// Assemble runs on its own Session.
type Assembler struct {
	predefine map[string]int
}

// Predefine binds a symbol before assembly begins. Preprocessed source
// refers to labels the preprocessor leaves external (the DUCK_* entry
// points); this is how callers supply them.
func (a *Assembler) Predefine(name string, value int) {
	if a.predefine == nil {
		a.predefine = map[string]int{}
	}
	a.predefine[Normalize(name)] = value
}

// sourceLine is one pre-parsed line of input. The raw text is split
// exactly once, and both passes walk the same records.
type sourceLine struct {
	no       int
	raw      string // Original text, comment included.
	label    string // Normalized label declared on the line, if any.
	equ      string // Normalized name of an inline NAME EQU expr form.
	mnemonic string // Upper-cased mnemonic, "" for blank lines.
	operands string // Operand text following the mnemonic.
}

var equPattern = regexp.MustCompile(`(?i)^\s*([A-Za-z_]\w*)\s+EQU\s+(.+)$`)

// parseSource splits the input into line records: comment stripped, label
// separated at the first colon, inline EQU recognized, mnemonic upper-cased
// and split from its operand text.
func parseSource(input io.Reader) (lines []sourceLine, err error) {
	scanner := bufio.NewScanner(input)

	no := 0
	for scanner.Scan() {
		no++
		line := sourceLine{no: no, raw: scanner.Text()}

		text := line.raw
		if i := strings.Index(text, ";"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)

		if i := strings.Index(text, ":"); i >= 0 {
			line.label = Normalize(text[:i])
			text = strings.TrimSpace(text[i+1:])
		}

		if m := equPattern.FindStringSubmatch(text); m != nil {
			line.equ = Normalize(m[1])
			line.mnemonic = "EQU"
			line.operands = strings.TrimSpace(m[2])
		} else if i := strings.IndexAny(text, " \t"); i >= 0 {
			line.mnemonic = strings.ToUpper(text[:i])
			line.operands = strings.TrimSpace(text[i+1:])
		} else {
			line.mnemonic = strings.ToUpper(text)
		}

		lines = append(lines, line)
	}
	err = scanner.Err()

	return
}

// Assemble runs both passes over the input and returns the finished
// Program. Any error other than the pass 1 unknown-mnemonic warning aborts
// the run; no partial Program is ever returned.
func (a *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	lines, err := parseSource(input)
	if err != nil {
		return
	}

	s := NewSession()
	for _, name := range slices.Sorted(maps.Keys(a.predefine)) {
		s.Symbols.Define(name, a.predefine[name])
	}

	if err = s.passOne(lines); err != nil {
		return
	}
	if err = s.passTwo(lines); err != nil {
		return
	}

	prog = &Program{
		Origin:  s.Origin,
		Binary:  s.Binary,
		Records: s.Records,
		Symbols: s.Symbols,
	}

	return
}

// AssembleFile assembles the source at input, writing the binary image to
// output and, when listing is non-empty, the listing beside it. Output
// files are only created after the whole source has assembled.
func (a *Assembler) AssembleFile(input, output, listing string) (err error) {
	in, err := os.Open(input)
	if err != nil {
		return
	}
	defer in.Close()

	prog, err := a.Assemble(in)
	if err != nil {
		return
	}

	if err = prog.WriteBinaryFile(output); err != nil {
		return
	}
	glog.V(1).Infof("assembled %d bytes to %v", len(prog.Binary), output)

	if listing != "" {
		if err = prog.WriteListingFile(listing); err != nil {
			return
		}
		glog.V(1).Infof("listing written to %v", listing)
	}

	return
}

// passOne walks the lines assigning addresses and collecting symbols.
// Operand values are never inspected except by ORG and EQU, so every
// line's byte length is derived from syntax alone.
func (s *Session) passOne(lines []sourceLine) (err error) {
	glog.V(1).Info("pass 1: collecting symbols")

	s.Address = 0
	s.Origin = 0
	s.lastLabel = ""

	for _, line := range lines {
		s.LineNo = line.no
		if err = s.collect(line); err != nil {
			err = &ErrLine{LineNo: line.no, Line: line.raw, Err: err}
			return
		}
	}

	glog.V(1).Infof("pass 1: %d symbols", s.Symbols.Len())
	for name, value := range s.Symbols.All() {
		glog.V(2).Infof("  %v = 0x%04X", name, value)
	}

	return
}

// collect is the pass 1 treatment of a single line.
func (s *Session) collect(line sourceLine) (err error) {
	if line.label != "" {
		s.Symbols.Define(line.label, s.Address)
		s.lastLabel = line.label
	}
	if line.mnemonic == "" {
		return
	}

	switch line.mnemonic {
	case "EQU":
		name := line.equ
		if name == "" {
			name = s.lastLabel
		}
		if name == "" {
			return ErrEquWithoutLabel
		}
		var value int
		if value, err = s.Symbols.Resolve(line.operands); err != nil {
			return
		}
		s.Symbols.Define(name, value)
		s.lastLabel = name
		return

	case "ORG":
		var value int
		if value, err = s.Symbols.Resolve(line.operands); err != nil {
			return
		}
		s.Address = value
		s.Origin = value
		return

	case "DB", "BYTE":
		s.Address += len(splitOperands(line.operands))
		return

	case "DW", "WORD":
		s.Address += len(splitOperands(line.operands)) * 2
		return
	}

	if spec, ok := instructionSet[line.mnemonic]; ok {
		s.Address += spec.Enc.Size()
	} else {
		// Warn only; pass 2 fails if the mnemonic is still unknown there.
		glog.Warningf("line %d: unknown mnemonic '%v'", line.no, line.mnemonic)
	}

	return
}

// passTwo re-walks the lines with the symbol table complete, emitting
// bytes and listing records.
func (s *Session) passTwo(lines []sourceLine) (err error) {
	glog.V(1).Info("pass 2: generating code")

	s.Address = s.Origin
	s.Binary = nil
	s.Records = nil

	for _, line := range lines {
		s.LineNo = line.no
		if err = s.generate(line); err != nil {
			err = &ErrLine{LineNo: line.no, Line: line.raw, Err: err}
			return
		}
	}

	return
}

// generate is the pass 2 treatment of a single line.
func (s *Session) generate(line sourceLine) (err error) {
	// Blank, comment-only and label-only lines keep their place in the
	// listing but occupy no address.
	if line.mnemonic == "" {
		s.Records = append(s.Records, ListingRecord{LineNo: line.no, Source: line.raw})
		return
	}

	start := s.Address
	var out []byte

	switch line.mnemonic {
	case "ORG":
		var value int
		if value, err = s.Symbols.Resolve(line.operands); err != nil {
			return
		}
		s.Address = value
		// Regions are laid out in one linear image; moving the cursor
		// forward zero-fills the gap.
		if len(s.Binary) < s.Address {
			s.Binary = append(s.Binary, make([]byte, s.Address-len(s.Binary))...)
		}
		s.Records = append(s.Records, ListingRecord{LineNo: line.no, HasAddr: true, Addr: start, Source: line.raw})
		return

	case "EQU":
		s.Records = append(s.Records, ListingRecord{LineNo: line.no, Source: line.raw})
		return

	case "DB", "BYTE":
		for _, field := range splitOperands(line.operands) {
			var value int
			if value, err = s.Symbols.Resolve(field); err != nil {
				return
			}
			out = append(out, byte(value&0xFF))
		}

	case "DW", "WORD":
		for _, field := range splitOperands(line.operands) {
			var value int
			if value, err = s.Symbols.Resolve(field); err != nil {
				return
			}
			out = append(out, byte(value&0xFF), byte((value>>8)&0xFF))
		}

	default:
		spec, ok := instructionSet[line.mnemonic]
		if !ok {
			return ErrUnknownMnemonic(line.mnemonic)
		}
		if out, err = s.encode(spec, line.operands); err != nil {
			return
		}
	}

	s.Binary = append(s.Binary, out...)
	s.Address += len(out)

	rec := ListingRecord{LineNo: line.no, HasAddr: true, Addr: start, Bytes: out, Source: line.raw}
	s.Records = append(s.Records, rec)
	glog.V(2).Info(rec.String())

	return
}
