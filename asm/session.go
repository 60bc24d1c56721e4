package asm

// ListingRecord is one line of the assembly listing.
type ListingRecord struct {
	LineNo  int    // 1-based source line number.
	HasAddr bool   // Whether the line occupies an address.
	Addr    int    // Address of the line's first byte, when HasAddr.
	Bytes   []byte // Bytes emitted for the line, pass 2 only.
	Source  string // Original source text, comment included.
}

// Session is the mutable state of one assembly run: address cursor,
// origin, output buffer, listing and symbol table. Both passes share one
// Session and nothing in it outlives the run, so a single Assembler can
// process any number of files in sequence.
type Session struct {
	Address int             // Current address cursor.
	Origin  int             // Address recorded by the most recent ORG.
	Binary  []byte          // Accumulated output image, address-indexed.
	Records []ListingRecord // Listing under construction, pass 2 only.
	LineNo  int             // Source line being processed.
	Symbols *SymbolTable    // Populated in pass 1, read-only in pass 2.

	lastLabel string // Most recent label, the target of a standalone EQU.
}

// NewSession creates the state for one run.
func NewSession() *Session {
	return &Session{
		Symbols: NewSymbolTable(),
	}
}
