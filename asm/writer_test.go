package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingRecord_String(t *testing.T) {
	assert := assert.New(t)

	rec := ListingRecord{
		LineNo:  3,
		HasAddr: true,
		Addr:    0x10,
		Bytes:   []byte{0x40, 0x12},
		Source:  "JUN TABLE+2",
	}
	text := rec.String()
	assert.True(strings.HasPrefix(text, "   3: 0010 40 12 "), text)
	assert.True(strings.HasSuffix(text, " JUN TABLE+2"), text)

	blank := ListingRecord{LineNo: 1, Source: "; comment"}
	text = blank.String()
	assert.True(strings.HasPrefix(text, "   1: "), text)
	assert.NotContains(text, "0000")
	assert.True(strings.HasSuffix(text, " ; comment"), text)

	// code and no-address lines align their source columns
	assert.Equal(strings.Index(rec.String(), "JUN"), strings.Index(blank.String(), ";"))
}

func TestListingRecord_String_ByteLimit(t *testing.T) {
	assert := assert.New(t)

	rec := ListingRecord{
		LineNo:  9,
		HasAddr: true,
		Addr:    0,
		Bytes:   []byte{1, 2, 3, 4, 5, 6},
		Source:  "DB 1,2,3,4,5,6",
	}
	// only the first four bytes appear
	assert.Contains(rec.String(), "01 02 03 04")
	assert.NotContains(rec.String(), "05")
}

func TestProgram_WriteBinary(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "LDM 1", "LDM 2")

	var buf bytes.Buffer
	assert.NoError(prog.WriteBinary(&buf))
	assert.Equal([]byte{0xD1, 0xD2}, buf.Bytes())
}

func TestProgram_WriteListing(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"START: NOP",
		"JUN START",
		"COUNT EQU 5",
	)

	var buf bytes.Buffer
	assert.NoError(prog.WriteListing(&buf))
	text := buf.String()

	assert.Contains(text, "Intel 4004 assembly listing")
	assert.Contains(text, "START: NOP")
	assert.Contains(text, "Total bytes: 3")
	assert.Contains(text, "Total lines: 3")
	assert.Contains(text, "Symbol table:")
	assert.Contains(text, "START")
	assert.Contains(text, "= 0x0005")

	// definition order: START before COUNT
	assert.Less(strings.Index(text, "  START"), strings.Index(text, "  COUNT"))
}
