package crcrev_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pchchv/crcrev"
	"github.com/pkg/errors"
)

func TestApplyPatch(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")

	for _, def := range crcrev.Definitions() {
		v := mustNew(t, def)
		size := v.Size()
		target := uint32(0xDEADBEEF) >> (32 - v.Width())

		tests := []struct {
			pos       int
			overwrite bool
		}{
			{0, false},
			{7, false},
			{len(data), false},
			{0, true},
			{7, true},
			{len(data) - size, true},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("%s/pos=%d/overwrite=%v", def.Name, test.pos, test.overwrite), func(t *testing.T) {
				out, err := v.ApplyPatch(data, test.pos, target, test.overwrite)
				if err != nil {
					t.Fatal(err)
				}

				wantLen := len(data) + size
				if test.overwrite {
					wantLen = len(data)
				}
				if len(out) != wantLen {
					t.Fatalf("expected %d bytes, got %d", wantLen, len(out))
				}

				if got := v.Checksum(out); got != target {
					t.Fatalf("expected checksum 0x%X, got 0x%X", target, got)
				}

				after := test.pos
				if test.overwrite {
					after += size
				}
				if !bytes.Equal(out[:test.pos], data[:test.pos]) || !bytes.Equal(out[test.pos+size:], data[after:]) {
					t.Fatal("bytes outside the patch were modified")
				}
			})
		}
	}
}

func TestPatchPosition(t *testing.T) {
	v := mustNew(t, crcrev.CRC32)
	data := []byte("0123456789")

	tests := []struct {
		pos       int
		overwrite bool
	}{
		{-1, false},
		{len(data) + 1, false},
		{len(data) - 3, true},
		{len(data), true},
	}

	for _, test := range tests {
		if _, err := v.Patch(data, test.pos, 0, test.overwrite); !errors.Is(err, crcrev.ErrPosition) {
			t.Errorf("pos %d, overwrite %v: expected ErrPosition, got %v", test.pos, test.overwrite, err)
		}
	}
}

// A patch computed for the current checksum of the surrounding bytes
// leaves overwritten bytes unchanged.
func TestPatchIdentity(t *testing.T) {
	data := []byte("0123456789abcdef")
	for _, def := range crcrev.Definitions() {
		v := mustNew(t, def)
		patch, err := v.Patch(data, 4, v.Checksum(data), true)
		if err != nil {
			t.Fatal(err)
		}

		if want := data[4 : 4+v.Size()]; !bytes.Equal(patch, want) {
			t.Errorf("%s: expected patch %X, got %X", def.Name, want, patch)
		}
	}
}
