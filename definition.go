package crcrev

// exponentsIEEE are the exponents of the IEEE 802.3 generator
// x^32 + x^26 + x^23 + x^22 + x^16 + x^12 + x^11 + x^10 + x^8 + x^7 + x^5 + x^4 + x^2 + x + 1,
// without the implicit x^32 term.
var exponentsIEEE = []uint{0, 1, 2, 4, 5, 7, 8, 10, 11, 12, 16, 22, 23, 26}

// Definition is the static description of a CRC variant.
type Definition struct {
	// Name of the variant, used in diagnostics and generated identifiers.
	Name string
	// Width of the checksum in bits; 16 or 32.
	Width uint
	// Exponents of the generator polynomial, without the implicit x^Width term.
	Exponents []uint
	// Table style.
	Style Style
	// Checksum state at the start of a stream.
	InitialXOR uint32
	// Value XOR-ed into the state at the end of a stream.
	FinalXOR uint32
	// Checksum of the ASCII string "123456789", without the length suffix;
	// 0 if unknown.
	Check uint32
	// Specifies if the stream length is appended before the final XOR,
	// as done by POSIX cksum.
	AppendLength bool
}

// Predefined variants.
var (
	// CRC16IBM is CRC-16/ARC, also known as CRC-16/IBM and CRC-16/ANSI.
	CRC16IBM = Definition{
		Name:      "CRC16IBM",
		Width:     16,
		Exponents: []uint{0, 2, 15},
		Style:     Reflected,
		Check:     0xBB3D,
	}
	// CRC16CCITT is CRC-16/CCITT-FALSE.
	CRC16CCITT = Definition{
		Name:       "CRC16CCITT",
		Width:      16,
		Exponents:  []uint{0, 5, 12},
		Style:      NonReflected,
		InitialXOR: 0xFFFF,
		Check:      0x29B1,
	}
	// CRC16XMODEM is the CCITT generator run from an empty register.
	CRC16XMODEM = Definition{
		Name:      "CRC16XMODEM",
		Width:     16,
		Exponents: []uint{0, 5, 12},
		Style:     NonReflected,
		Check:     0x31C3,
	}
	// CRC16KERMIT is the reflected CCITT generator.
	CRC16KERMIT = Definition{
		Name:      "CRC16KERMIT",
		Width:     16,
		Exponents: []uint{0, 5, 12},
		Style:     Reflected,
		Check:     0x2189,
	}
	// CRC32 is the CRC-32 of zlib, PNG and Ethernet.
	CRC32 = Definition{
		Name:       "CRC32",
		Width:      32,
		Exponents:  exponentsIEEE,
		Style:      Reflected,
		InitialXOR: 0xFFFFFFFF,
		FinalXOR:   0xFFFFFFFF,
		Check:      0xCBF43926,
	}
	// CRC32POSIX is the checksum of the POSIX cksum utility.
	CRC32POSIX = Definition{
		Name:         "CRC32POSIX",
		Width:        32,
		Exponents:    exponentsIEEE,
		Style:        Preloaded,
		FinalXOR:     0xFFFFFFFF,
		Check:        0x765E7680,
		AppendLength: true,
	}
)

// Definitions returns all predefined variants.
func Definitions() []Definition {
	return []Definition{CRC16IBM, CRC16CCITT, CRC16XMODEM, CRC16KERMIT, CRC32, CRC32POSIX}
}

// Lookup returns the predefined variant with the given name.
func Lookup(name string) (Definition, bool) {
	for _, def := range Definitions() {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
