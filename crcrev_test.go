package crcrev_test

import (
	"math/rand"
	"testing"

	"github.com/klauspost/crc32"
	"github.com/pchchv/crcrev"
	"github.com/pchchv/crcrev/poly"
	"github.com/pkg/errors"
)

var check = []byte("123456789")

func mustNew(t testing.TB, def crcrev.Definition) *crcrev.Variant {
	t.Helper()
	v, err := crcrev.New(def)
	if err != nil {
		t.Fatalf("unable to build %s; %v", def.Name, err)
	}
	return v
}

func TestTables(t *testing.T) {
	for _, def := range crcrev.Definitions() {
		v := mustNew(t, def)
		limit := uint64(1) << v.Width()
		fwd, inv := v.ForwardTable(), v.InverseTable()
		if len(fwd) != 256 || len(inv) != 256 {
			t.Fatalf("%s: expected 256 entries, got %d and %d", def.Name, len(fwd), len(inv))
		}

		for i := range fwd {
			if uint64(fwd[i]) >= limit || uint64(inv[i]) >= limit {
				t.Fatalf("%s: entry %d exceeds %d bits; forward 0x%X, inverse 0x%X", def.Name, i, v.Width(), fwd[i], inv[i])
			}
		}
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		def  crcrev.Definition
		want uint32
	}{
		{crcrev.CRC16IBM, 0xBB3D},
		{crcrev.CRC16CCITT, 0x29B1},
		{crcrev.CRC16XMODEM, 0x31C3},
		{crcrev.CRC16KERMIT, 0x2189},
		{crcrev.CRC32, 0xCBF43926},
		// POSIX cksum appends the length.
		{crcrev.CRC32POSIX, 0x377A6011},
	}

	for _, test := range tests {
		t.Run(test.def.Name, func(t *testing.T) {
			v := mustNew(t, test.def)
			if got := v.Checksum(check); got != test.want {
				t.Fatalf("expected 0x%X, got 0x%X", test.want, got)
			}
		})
	}
}

// Raw states, without initial or final XOR.
func TestUpdateFromZero(t *testing.T) {
	tests := []struct {
		def  crcrev.Definition
		want uint32
	}{
		{crcrev.CRC16IBM, 0xBB3D},
		{crcrev.CRC16CCITT, 0x31C3},
		{crcrev.CRC32POSIX, 0x765E7680 ^ 0xFFFFFFFF},
	}

	for _, test := range tests {
		v := mustNew(t, test.def)
		if got := v.Update(0, check); got != test.want {
			t.Errorf("%s: expected 0x%X, got 0x%X", test.def.Name, test.want, got)
		}
	}
}

func TestCRC32MatchesIEEE(t *testing.T) {
	v := mustNew(t, crcrev.CRC32)
	rnd := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	rnd.Read(data)

	for n := 0; n <= len(data); n += 123 {
		want := crc32.ChecksumIEEE(data[:n])
		if got := v.Checksum(data[:n]); got != want {
			t.Fatalf("n=%d; expected 0x%08X, got 0x%08X", n, want, got)
		}
	}
}

func TestUnupdate(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	data := make([]byte, 512)
	rnd.Read(data)

	for _, def := range crcrev.Definitions() {
		v := mustNew(t, def)
		for i := 0; i < 100; i++ {
			state := rnd.Uint32() >> (32 - v.Width())
			n := rnd.Intn(len(data))
			if got := v.Unupdate(v.Update(state, data[:n]), data[:n]); got != state {
				t.Fatalf("%s: unupdate of %d bytes from 0x%X returned 0x%X", def.Name, n, state, got)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*crcrev.Definition)
		want   error
	}{
		{"width", func(d *crcrev.Definition) { d.Width = 24 }, crcrev.ErrWidth},
		{"style", func(d *crcrev.Definition) { d.Style = 7 }, crcrev.ErrStyle},
		{"exponent", func(d *crcrev.Definition) { d.Exponents = []uint{0, 16} }, poly.ErrContract},
		{"xor", func(d *crcrev.Definition) { d.InitialXOR = 0x10000 }, crcrev.ErrWidth},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			def := crcrev.CRC16IBM
			test.mutate(&def)
			if _, err := crcrev.New(def); !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	def, ok := crcrev.Lookup("CRC32POSIX")
	if !ok || !def.AppendLength {
		t.Fatalf("expected CRC32POSIX with length suffix, got %+v (ok=%v)", def, ok)
	}

	if _, ok := crcrev.Lookup("CRC64"); ok {
		t.Fatal("expected CRC64 to be unknown")
	}
}
