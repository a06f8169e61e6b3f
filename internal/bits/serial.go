// Package bits provides bit access operations and a bit-serial CRC.
package bits

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// Serial computes a CRC one message bit at a time, without lookup tables,
// starting from state. It is slow and exists to cross-check table-driven
// implementations.
//
// If reflected is set the bits of each byte are consumed least significant
// first and gen must be the bit-reversed generator; otherwise bits are
// consumed most significant first and gen is the generator itself.
func Serial(state uint32, p []byte, gen uint32, width uint, reflected bool) (uint32, error) {
	mask := ^uint32(0) >> (32 - width)
	top := uint32(1) << (width - 1)
	state &= mask

	br := bitio.NewReader(bytes.NewReader(p))
	var msb [8]bool
	for {
		// bitio reads most significant bit first.
		for i := range msb {
			b, err := br.ReadBool()
			if err != nil {
				if err == io.EOF && i == 0 {
					return state, nil
				}
				return 0, err
			}
			msb[i] = b
		}

		if reflected {
			for i := len(msb) - 1; i >= 0; i-- {
				fb := state & 1
				if msb[i] {
					fb ^= 1
				}
				state >>= 1
				if fb != 0 {
					state ^= gen
				}
			}
			continue
		}

		for _, bit := range msb {
			fb := state&top != 0
			if bit {
				fb = !fb
			}
			state = (state << 1) & mask
			if fb {
				state ^= gen
			}
		}
	}
}
