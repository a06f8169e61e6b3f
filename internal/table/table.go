// Package table builds the 256-entry lookup tables used by table-driven CRCs.
package table

// Size is the number of entries in a table; one per input byte.
const Size = 256

// Table is a 256-word table representing the
// polynomial for efficient processing.
// Entries of a table built for a given width never exceed width bits.
type Table [Size]uint32

// Mask returns the mask selecting the low width bits of a checksum state.
func Mask(width uint) uint32 {
	return ^uint32(0) >> (32 - width)
}

// MakeReflected returns the table of a reflected CRC, which consumes the bits
// of each byte least significant first. revPoly is the bit-reversed generator.
func MakeReflected(revPoly uint32, width uint) *Table {
	t := new(Table)
	for n := uint32(0); n < Size; n++ {
		var crc uint32
		for k := 0; k < 8; k++ {
			if (crc^(n>>k))&1 != 0 {
				crc = (crc >> 1) ^ revPoly
			} else {
				crc >>= 1
			}
		}
		t[n] = crc & Mask(width)
	}
	return t
}

// MakeNonReflected returns the table of a CRC which consumes the bits of each
// byte most significant first, feeding the k-th input bit against the top bit
// of the register.
func MakeNonReflected(poly uint32, width uint) *Table {
	t := new(Table)
	top := uint32(1) << (width - 1)
	for n := uint32(0); n < Size; n++ {
		var crc uint32
		for k := uint(0); k < 8; k++ {
			if (crc^(n<<(width-8+k)))&top != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[n] = crc & Mask(width)
	}
	return t
}

// MakePreloaded returns the table of a most significant bit first CRC, with
// the input byte preloaded into the top of the register before the eight
// division steps.
func MakePreloaded(poly uint32, width uint) *Table {
	t := new(Table)
	top := uint32(1) << (width - 1)
	for n := uint32(0); n < Size; n++ {
		crc := n << (width - 8)
		for k := 0; k < 8; k++ {
			if crc&top != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[n] = crc & Mask(width)
	}
	return t
}
