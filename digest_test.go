package crcrev_test

import (
	"bytes"
	"hash"
	"testing"

	"github.com/pchchv/crcrev"
	"github.com/pkg/errors"
)

func TestDigest(t *testing.T) {
	for _, def := range crcrev.Definitions() {
		t.Run(def.Name, func(t *testing.T) {
			v := mustNew(t, def)
			d := v.New()
			var _ hash.Hash32 = d

			if d.Size() != int(def.Width/8) || d.BlockSize() != 1 {
				t.Fatalf("unexpected sizes; size %d, block size %d", d.Size(), d.BlockSize())
			}

			d.Write(check[:4])
			d.Write(check[4:])
			if got, want := d.Sum32(), v.Checksum(check); got != want {
				t.Fatalf("expected 0x%X, got 0x%X", want, got)
			}

			if _, err := d.Unwrite(check[6:]); err != nil {
				t.Fatal(err)
			}
			if got, want := d.Sum32(), v.Checksum(check[:6]); got != want {
				t.Fatalf("after unwrite: expected 0x%X, got 0x%X", want, got)
			}

			if _, err := d.Unwrite(check[:6]); err != nil {
				t.Fatal(err)
			}
			if got, want := d.Sum32(), v.Checksum(nil); got != want {
				t.Fatalf("after unwriting everything: expected 0x%X, got 0x%X", want, got)
			}

			if _, err := d.Unwrite([]byte{0}); !errors.Is(err, crcrev.ErrUnwrite) {
				t.Fatalf("expected ErrUnwrite, got %v", err)
			}

			d.Write([]byte("garbage"))
			d.Reset()
			if got, want := d.Sum32(), v.Checksum(nil); got != want {
				t.Fatalf("after reset: expected 0x%X, got 0x%X", want, got)
			}
		})
	}
}

func TestDigestSum(t *testing.T) {
	d := mustNew(t, crcrev.CRC32).New()
	d.Write(check)
	if got, want := d.Sum([]byte{0xAA}), []byte{0xAA, 0xCB, 0xF4, 0x39, 0x26}; !bytes.Equal(got, want) {
		t.Errorf("expected %X, got %X", want, got)
	}

	d16 := mustNew(t, crcrev.CRC16IBM).New()
	d16.Write(check)
	if got := d16.Sum16(); got != 0xBB3D {
		t.Errorf("expected 0xBB3D, got 0x%04X", got)
	}
	if got, want := d16.Sum(nil), []byte{0xBB, 0x3D}; !bytes.Equal(got, want) {
		t.Errorf("expected %X, got %X", want, got)
	}
}
