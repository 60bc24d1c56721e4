package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeBytes(t *testing.T, mnemonic, operands string) []byte {
	t.Helper()

	s := NewSession()
	s.Symbols.Define("TARGET", 0x123)

	spec, ok := InstructionSpec(mnemonic)
	if !ok {
		t.Fatalf("not in instruction table: %v", mnemonic)
	}
	out, err := s.encode(spec, operands)
	if err != nil {
		t.Fatalf("%v %v: %v", mnemonic, operands, err)
	}
	return out
}

func TestEncode_Layouts(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		mnemonic string
		operands string
		want     []byte
	}{
		{"NOP", "", []byte{0x00}},
		{"CLB", "", []byte{0xF0}},
		{"INC", "R5", []byte{0x65}},
		{"XCH", "R15", []byte{0xBF}},
		{"SRC", "R0R1", []byte{0x21}},
		{"FIN", "R6R7", []byte{0x33}},
		{"JIN", "R14R15", []byte{0x37}},
		{"LDM", "9", []byte{0xD9}},
		{"BBL", "0", []byte{0xC0}},
		{"JCN", "1, TARGET", []byte{0x11, 0x23}},
		{"JUN", "TARGET", []byte{0x41, 0x23}},
		{"JMS", "0x234", []byte{0x52, 0x34}},
		{"ISZ", "R2, TARGET", []byte{0x72, 0x23}},
		{"FIM", "R0R1, 0x56", []byte{0x20, 0x56}},
		{"FIM", "R0R1, 0x1, 0x2", []byte{0x20, 0x12}},
		{"FIM", "R4R5, TARGET", []byte{0x22, 0x23}},
	} {
		assert.Equal(tc.want, encodeBytes(t, tc.mnemonic, tc.operands), "%v %v", tc.mnemonic, tc.operands)
	}
}

func TestEncode_Truncation(t *testing.T) {
	assert := assert.New(t)

	// every field masks to its width, oversized values truncate
	assert.Equal([]byte{0xDF}, encodeBytes(t, "LDM", "0x1F"))
	assert.Equal([]byte{0x42, 0x34}, encodeBytes(t, "JUN", "0x1234"))
	assert.Equal([]byte{0x20, 0xA1}, encodeBytes(t, "FIM", "R0R1, 0x1A, 0x21"))
	assert.Equal([]byte{0x11, 0x34}, encodeBytes(t, "JCN", "0x11, 0x1234"))
}

func TestEncode_PairShorthand(t *testing.T) {
	assert := assert.New(t)

	// a plain even register names its pair
	assert.Equal([]byte{0x23}, encodeBytes(t, "SRC", "R4"))

	s := NewSession()
	spec, _ := InstructionSpec("SRC")
	_, err := s.encode(spec, "R5")
	assert.ErrorIs(err, ErrPairInvalid)
}

func TestEncode_OperandCounts(t *testing.T) {
	assert := assert.New(t)

	s := NewSession()

	for _, tc := range []struct {
		mnemonic string
		operands string
		want     error
	}{
		{"ISZ", "R1", ErrIszOperands},
		{"ISZ", "R1, 2, 3", ErrIszOperands},
		{"FIM", "R0R1", ErrFimOperands},
		{"FIM", "R0R1, 1, 2, 3", ErrFimOperands},
		{"JCN", "1", ErrJcnOperands},
		{"JCN", "1, 2, 3", ErrJcnOperands},
		{"INC", "R16", ErrRegisterInvalid},
		{"ISZ", "bogus, 2", ErrRegisterInvalid},
	} {
		spec, ok := InstructionSpec(tc.mnemonic)
		assert.True(ok, tc.mnemonic)
		_, err := s.encode(spec, tc.operands)
		assert.ErrorIs(err, tc.want, "%v %v", tc.mnemonic, tc.operands)
	}
}
