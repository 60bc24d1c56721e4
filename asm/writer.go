package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Program is the finished result of an assembly run: the raw binary
// image, the listing records and the final symbol table.
type Program struct {
	Origin  int             // Base address recorded by the last ORG.
	Binary  []byte          // Output image, address-indexed from zero.
	Records []ListingRecord // One record per source line.
	Symbols *SymbolTable    // Final symbol table.
}

// String formats a listing record: line number, address when the line has
// one, up to the first four emitted bytes in hex, then the source text.
func (rec ListingRecord) String() string {
	var hex strings.Builder
	for n, b := range rec.Bytes {
		if n == 4 {
			break
		}
		fmt.Fprintf(&hex, "%02X ", b)
	}

	if rec.HasAddr {
		return fmt.Sprintf("%4d: %04X %-12s %s", rec.LineNo, rec.Addr, hex.String(), rec.Source)
	}
	return fmt.Sprintf("%4d: %17s %s", rec.LineNo, "", rec.Source)
}

// WriteBinary writes the image verbatim.
func (prog *Program) WriteBinary(w io.Writer) (err error) {
	_, err = w.Write(prog.Binary)
	return
}

var listingRule = strings.Repeat("=", 63)

// WriteListing writes the formatted listing: a header, one line per
// record, a trailer with totals, and the symbol table in definition order.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Intel 4004 assembly listing")
	fmt.Fprintln(bw, "Generated by asm4004")
	fmt.Fprintln(bw, listingRule)
	fmt.Fprintln(bw)

	for _, rec := range prog.Records {
		fmt.Fprintln(bw, rec.String())
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, listingRule)
	fmt.Fprintf(bw, "Total bytes: %d\n", len(prog.Binary))
	fmt.Fprintf(bw, "Total lines: %d\n", len(prog.Records))

	if prog.Symbols.Len() > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Symbol table:")
		for name, value := range prog.Symbols.All() {
			fmt.Fprintf(bw, "  %-20s = 0x%04X\n", name, value)
		}
	}

	return bw.Flush()
}

// WriteBinaryFile writes the image to a file.
func (prog *Program) WriteBinaryFile(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return
	}
	defer out.Close()

	return prog.WriteBinary(out)
}

// WriteListingFile writes the listing to a file.
func (prog *Program) WriteListingFile(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return
	}
	defer out.Close()

	return prog.WriteListing(out)
}
