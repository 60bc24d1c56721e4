package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		in    string
		value int
	}{
		{"0", 0},
		{"123", 123},
		{"-5", -5},
		{"0x7F", 0x7f},
		{"0X7f", 0x7f},
		{"$7F", 0x7f},
		{"7Fh", 0x7f},
		{"7fH", 0x7f},
		{"0b1010", 10},
		{"0B1010", 10},
		{" 42 ", 42},
	} {
		value, ok := ParseNumber(tc.in)
		assert.True(ok, tc.in)
		assert.Equal(tc.value, value, tc.in)
	}

	for _, in := range []string{"", "bogus", "0x", "$", "h", "12q", "R4"} {
		_, ok := ParseNumber(in)
		assert.False(ok, in)
	}
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		in  string
		reg int
	}{
		{"R0", 0},
		{"r7", 7},
		{"R15", 15},
		{" R9 ", 9},
	} {
		reg, ok := ParseRegister(tc.in)
		assert.True(ok, tc.in)
		assert.Equal(tc.reg, reg, tc.in)
	}

	for _, in := range []string{"", "R", "R16", "R-1", "X4", "15"} {
		_, ok := ParseRegister(in)
		assert.False(ok, in)
	}
}

func TestParseRegisterPair(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		in   string
		pair int
	}{
		{"R0R1", 0},
		{"r2r3", 1},
		{"R14R15", 7},
	} {
		pair, ok := ParseRegisterPair(tc.in)
		assert.True(ok, tc.in)
		assert.Equal(tc.pair, pair, tc.in)
	}

	// Odd-first and non-adjacent names are not pairs.
	for _, in := range []string{"", "R1R2", "R0R2", "R3R4", "R0", "R0R1R2"} {
		_, ok := ParseRegisterPair(in)
		assert.False(ok, in)
	}
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LOOP", Normalize("  loop "))
	assert.Equal("A_1", Normalize("a_1"))
}
