// Package asm implements a two-pass cross-assembler for the Intel 4004.
//
// The assembler reads one statement per line: an optional label, then a
// directive (ORG, EQU, DB/BYTE, DW/WORD) or one of the roughly forty 4004
// mnemonics. Pass 1 walks the source to assign addresses to labels without
// looking at operand values; pass 2 re-walks the same pre-parsed lines with
// the complete symbol table, encodes each instruction to its one or two
// output bytes, and builds the listing. Forward references therefore work
// for every operand position.
//
// The result of a run is a Program holding the raw binary image, the
// listing records and the final symbol table, with writers for both the
// image and a human-readable listing file.
package asm
