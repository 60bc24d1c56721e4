package asm

import (
	"strings"
)

// splitOperands splits comma-separated operand text into trimmed fields.
// Empty text still yields one (empty) field, which keeps the pass 1 comma
// count and the pass 2 field count in agreement.
func splitOperands(text string) (fields []string) {
	for _, field := range strings.Split(text, ",") {
		fields = append(fields, strings.TrimSpace(field))
	}
	return
}

// encode emits the one or two bytes of an instruction, resolving operand
// text through the symbol table. Every operand field is masked to its
// width before packing; oversized values truncate silently, exactly as the
// hardware's fixed field widths would.
func (s *Session) encode(spec Spec, operands string) (out []byte, err error) {
	switch spec.Enc {
	case ENC_PLAIN:
		out = []byte{spec.Opcode}

	case ENC_REG:
		reg, ok := s.Symbols.ResolveRegister(operands)
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		out = []byte{spec.Opcode | byte(reg&0x0F)}

	case ENC_PAIR:
		pair, ok := s.Symbols.ResolveRegisterPair(operands)
		if !ok {
			err = ErrPairInvalid
			return
		}
		out = []byte{spec.Opcode | byte(pair&0x07)}

	case ENC_IMM:
		var value int
		value, err = s.Symbols.Resolve(operands)
		if err != nil {
			return
		}
		out = []byte{spec.Opcode | byte(value&0x0F)}

	case ENC_COND_ADDR:
		fields := splitOperands(operands)
		if len(fields) != 2 {
			err = ErrJcnOperands
			return
		}
		var cond, addr int
		cond, err = s.Symbols.Resolve(fields[0])
		if err != nil {
			return
		}
		addr, err = s.Symbols.Resolve(fields[1])
		if err != nil {
			return
		}
		out = []byte{spec.Opcode | byte(cond&0x0F), byte(addr & 0xFF)}

	case ENC_ADDR12:
		var addr int
		addr, err = s.Symbols.Resolve(operands)
		if err != nil {
			return
		}
		out = []byte{spec.Opcode | byte((addr>>8)&0x0F), byte(addr & 0xFF)}

	case ENC_REG_ADDR:
		fields := splitOperands(operands)
		if len(fields) != 2 {
			err = ErrIszOperands
			return
		}
		reg, ok := s.Symbols.ResolveRegister(fields[0])
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		var addr int
		addr, err = s.Symbols.Resolve(fields[1])
		if err != nil {
			return
		}
		out = []byte{spec.Opcode | byte(reg&0x0F), byte(addr & 0xFF)}

	case ENC_PAIR_IMM:
		fields := splitOperands(operands)
		if len(fields) < 2 || len(fields) > 3 {
			err = ErrFimOperands
			return
		}
		pair, ok := s.Symbols.ResolveRegisterPair(fields[0])
		if !ok {
			err = ErrPairInvalid
			return
		}
		var imm int
		if len(fields) == 2 {
			imm, err = s.Symbols.Resolve(fields[1])
			if err != nil {
				return
			}
		} else {
			var hi, lo int
			hi, err = s.Symbols.Resolve(fields[1])
			if err != nil {
				return
			}
			lo, err = s.Symbols.Resolve(fields[2])
			if err != nil {
				return
			}
			imm = ((hi & 0x0F) << 4) | (lo & 0x0F)
		}
		out = []byte{spec.Opcode | byte(pair&0x07), byte(imm & 0xFF)}
	}

	return
}
