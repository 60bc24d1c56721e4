package asm

import (
	"strings"
)

// ResolveSimple resolves a single token, trying in order: numeric literal,
// Rn register literal, symbol lookup.
func (st *SymbolTable) ResolveSimple(token string) (value int, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	if value, ok = ParseNumber(token); ok {
		return
	}
	if value, ok = ParseRegister(token); ok {
		return
	}

	return st.Lookup(token)
}

// resolveExpression evaluates a restricted additive expression, a signed
// left-to-right sum of simple terms. It only applies when the text contains
// a + or - operator; there is no precedence, grouping or multiplication.
// One unresolvable term fails the whole expression.
func (st *SymbolTable) resolveExpression(expr string) (value int, ok bool) {
	expr = strings.ReplaceAll(expr, " ", "")
	if expr == "" || !strings.ContainsAny(expr, "+-") {
		return
	}

	total := 0
	term := ""
	sign := 1
	seen := false
	for _, ch := range expr {
		if ch == '+' || ch == '-' {
			if term != "" {
				v, found := st.ResolveSimple(term)
				if !found {
					return 0, false
				}
				total += sign * v
				term = ""
				seen = true
			}
			if ch == '+' {
				sign = 1
			} else {
				sign = -1
			}
			continue
		}
		term += string(ch)
	}
	if term != "" {
		v, found := st.ResolveSimple(term)
		if !found {
			return 0, false
		}
		total += sign * v
		seen = true
	}
	if !seen {
		return 0, false
	}

	return total, true
}

// Resolve is the single entry point both passes use for operand values:
// simple resolution first, then the additive expression form. A token that
// is neither fails with ErrUnresolved.
func (st *SymbolTable) Resolve(token string) (value int, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		err = ErrValueMissing
		return
	}

	value, ok := st.ResolveSimple(token)
	if ok {
		return
	}
	value, ok = st.resolveExpression(token)
	if ok {
		return
	}

	err = ErrUnresolved(token)
	return
}

// ResolveRegister resolves a register operand: an Rn literal, or a symbol
// whose value fits a register index.
func (st *SymbolTable) ResolveRegister(token string) (reg int, ok bool) {
	if reg, ok = ParseRegister(token); ok {
		return
	}

	value, found := st.Lookup(token)
	if found && value >= 0 && value <= 15 {
		return value, true
	}

	return 0, false
}

// ResolveRegisterPair resolves a register pair operand. Compound names
// (R0R1) resolve to the even register's pair index. A plain even register
// is also accepted as naming the pair it starts; existing source uses the
// shorthand, so it stays. Odd registers never name a pair.
func (st *SymbolTable) ResolveRegisterPair(token string) (pair int, ok bool) {
	if pair, ok = ParseRegisterPair(token); ok {
		return
	}

	reg, found := st.ResolveRegister(token)
	if found && reg%2 == 0 {
		return reg / 2, true
	}

	return 0, false
}
