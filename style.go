package crcrev

import "github.com/pchchv/crcrev/internal/table"

// Table styles.
const (
	// Reflected CRCs consume the bits of each byte least significant first.
	// The table is built from the bit-reversed generator and the register
	// shifts right.
	Reflected Style = iota
	// NonReflected CRCs consume bits most significant first, feeding each
	// input bit against the top bit of an initially empty register.
	NonReflected
	// Preloaded CRCs consume bits most significant first, with the input
	// byte loaded into the top of the register before division.
	Preloaded
)

// Style selects how the forward table of a variant is simulated,
// and which edge of the state the update operations work on.
type Style uint8

func (s Style) String() string {
	switch s {
	case Reflected:
		return "reflected"
	case NonReflected:
		return "non-reflected"
	case Preloaded:
		return "preloaded"
	default:
		return "<unknown style>"
	}
}

func (s Style) valid() bool {
	return s <= Preloaded
}

// makeForward builds the forward table of the style.
func (s Style) makeForward(gen, revGen uint32, width uint) *table.Table {
	switch s {
	case Reflected:
		return table.MakeReflected(revGen, width)
	case NonReflected:
		return table.MakeNonReflected(gen, width)
	default:
		return table.MakePreloaded(gen, width)
	}
}

// advance appends b to state.
func advance(s Style, width uint, fwd *table.Table, state uint32, b byte) uint32 {
	if s == Reflected {
		i := byte(state) ^ b
		return ((state >> 8) ^ fwd[i]) & table.Mask(width)
	}
	i := byte(state>>(width-8)) ^ b
	return ((state << 8) ^ fwd[i]) & table.Mask(width)
}

// retreat removes the trailing byte b from state.
func retreat(s Style, width uint, inv *table.Table, state uint32, b byte) uint32 {
	if s == Reflected {
		i := byte(state >> (width - 8))
		return ((state << 8) ^ inv[i] ^ uint32(b)) & table.Mask(width)
	}
	i := byte(state)
	return ((uint32(b) << (width - 8)) ^ inv[i] ^ (state << (width - 8)) ^ (state >> 8)) & table.Mask(width)
}

// reverseIndex extracts from an advanced state the inverse table index
// retreat will use for it.
func reverseIndex(s Style, width uint, state uint32) byte {
	if s == Reflected {
		return byte(state >> (width - 8))
	}
	return byte(state)
}
