package crcrev

import "github.com/pkg/errors"

// Patch returns the Size() bytes which, inserted into data at pos, or
// written over data[pos:pos+Size()] if overwrite is set, make the checksum
// of the resulting buffer equal target.
//
// A reflected register absorbs input bytes least significant first,
// otherwise most significant first. After Size() bytes the register only
// depends on the XOR of its previous contents with the bytes fed, in that
// order. The state q which reaches the state required after the patch when
// fed the bytes of the state before the patch is therefore also the patch.
func (v *Variant) Patch(data []byte, pos int, target uint32, overwrite bool) ([]byte, error) {
	size := v.Size()
	total := len(data)
	after := pos
	if overwrite {
		after += size
	} else {
		total += size
	}

	if pos < 0 || after > len(data) {
		return nil, errors.Wrapf(ErrPosition, "crcrev.Patch: position %d, patch size %d, input size %d", pos, size, len(data))
	}

	before := v.Update(v.initialXOR, data[:pos])
	want := v.Unupdate(v.unfinish(target, uint64(total)), data[after:])

	q := v.Unupdate(want, v.feedOrder(before))
	return v.feedOrder(q), nil
}

// ApplyPatch returns a copy of data patched as described by Patch.
func (v *Variant) ApplyPatch(data []byte, pos int, target uint32, overwrite bool) ([]byte, error) {
	patch, err := v.Patch(data, pos, target, overwrite)
	if err != nil {
		return nil, err
	}

	after := pos
	if overwrite {
		after += len(patch)
	}

	out := make([]byte, 0, pos+len(patch)+len(data)-after)
	out = append(out, data[:pos]...)
	out = append(out, patch...)
	out = append(out, data[after:]...)
	return out, nil
}

// feedOrder returns the bytes of state in the order the register absorbs them.
func (v *Variant) feedOrder(state uint32) []byte {
	size := v.Size()
	p := make([]byte, size)
	for i := range p {
		if v.style == Reflected {
			p[i] = byte(state >> (8 * uint(i)))
		} else {
			p[i] = byte(state >> (8 * uint(size-1-i)))
		}
	}
	return p
}
