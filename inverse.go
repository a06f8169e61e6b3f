package crcrev

import (
	"github.com/pchchv/crcrev/internal/table"
	"github.com/pkg/errors"
)

// DeriveInverse derives the inverse table of the variant from its forward
// table, using ref as the reference state. Every non-zero reference yields
// the same table.
func (v *Variant) DeriveInverse(ref uint32) (Table, error) {
	inv, err := buildInverseTable(v.style, v.width, &v.fwd, ref)
	if err != nil {
		var ie *InverseError
		if errors.As(err, &ie) {
			ie.Variant = v.name
		}
		return Table{}, errors.Wrapf(err, "crcrev.DeriveInverse: %s", v.name)
	}
	return *inv, nil
}

// buildInverseTable derives the inverse of fwd by table patching.
//
// retreat is run once per byte on Advance(ref, b) against a placeholder table
// holding ref in every slot. The placeholder only enters retreat through a
// term that cancels against ref, so the result is the correct entry for the
// slot reverseIndex selects, and these slots cover the table exactly once.
func buildInverseTable(s Style, width uint, fwd *table.Table, ref uint32) (*table.Table, error) {
	ref &= table.Mask(width)
	if ref == 0 {
		return nil, errors.New("crcrev.buildInverseTable: reference state must be non-zero")
	}

	var placeholder table.Table
	for i := range placeholder {
		placeholder[i] = ref
	}

	inv := new(table.Table)
	var seen [table.Size]bool
	for n := 0; n < table.Size; n++ {
		b := byte(n)
		v1 := advance(s, width, fwd, ref, b)
		v2 := retreat(s, width, &placeholder, v1, b)
		i := reverseIndex(s, width, v1)
		if seen[i] {
			return nil, errors.Errorf("crcrev.buildInverseTable: index 0x%02X derived twice (byte 0x%02X); forward update is not a bijection", i, b)
		}
		seen[i] = true
		inv[i] = v2
	}

	// The patched entries undo ref by construction; a second reference
	// catches a reverse index that does not match the update rules.
	for _, state := range []uint32{ref, (ref ^ 0xA5A5A5A5) & table.Mask(width)} {
		for n := 0; n < table.Size; n++ {
			b := byte(n)
			if got := retreat(s, width, inv, advance(s, width, fwd, state, b), b); got != state {
				return nil, &InverseError{Reference: state, Byte: b, Got: got}
			}
		}
	}

	return inv, nil
}
