package asm

import (
	"regexp"
	"strconv"
	"strings"
)

// Normalize canonicalizes a symbol name for table storage and lookup.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// ParseNumber parses a numeric literal. Decimal by default; hexadecimal
// with an 0x prefix, a $ prefix or an h suffix; binary with an 0b prefix.
func ParseNumber(word string) (value int, ok bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}

	var v64 int64
	var err error
	switch {
	case strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X"):
		v64, err = strconv.ParseInt(word[2:], 16, 64)
	case strings.HasPrefix(word, "$"):
		v64, err = strconv.ParseInt(word[1:], 16, 64)
	case strings.HasSuffix(word, "h") || strings.HasSuffix(word, "H"):
		v64, err = strconv.ParseInt(word[:len(word)-1], 16, 64)
	case strings.HasPrefix(word, "0b") || strings.HasPrefix(word, "0B"):
		v64, err = strconv.ParseInt(word[2:], 2, 64)
	default:
		v64, err = strconv.ParseInt(word, 10, 64)
	}
	if err != nil {
		return
	}

	return int(v64), true
}

// ParseRegister parses an Rn register literal, 0 through 15.
func ParseRegister(word string) (reg int, ok bool) {
	word = Normalize(word)
	if !strings.HasPrefix(word, "R") {
		return
	}

	value, ok := ParseNumber(word[1:])
	if !ok || value < 0 || value > 15 {
		return 0, false
	}

	return value, true
}

var pairPattern = regexp.MustCompile(`^R(\d{1,2})R(\d{1,2})$`)

// ParseRegisterPair parses an R0R1-style compound pair name: an even
// register followed by its odd neighbour. The result is the pair index,
// evenReg/2.
func ParseRegisterPair(word string) (pair int, ok bool) {
	m := pairPattern.FindStringSubmatch(Normalize(word))
	if m == nil {
		return
	}

	even, _ := strconv.Atoi(m[1])
	odd, _ := strconv.Atoi(m[2])
	if even%2 != 0 || odd != even+1 {
		return
	}

	return even / 2, true
}
