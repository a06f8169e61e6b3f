package crcrev

import (
	"github.com/pchchv/crcrev/internal/hashutil"
	"github.com/pkg/errors"
)

var (
	_ hashutil.Reversible = (*Digest)(nil)
	_ hashutil.Hash16     = (*Digest)(nil)
)

// Digest represents the partial evaluation of a checksum.
// Unlike the digests of hash/crc32, bytes can be removed from its end.
type Digest struct {
	v   *Variant
	crc uint32
	n   uint64 // number of bytes written
}

// New returns a new Digest computing the checksum of the variant.
func (v *Variant) New() *Digest {
	return &Digest{v: v, crc: v.initialXOR}
}

func (d *Digest) Size() int {
	return d.v.Size()
}

func (d *Digest) BlockSize() int {
	return 1
}

func (d *Digest) Reset() {
	d.crc = d.v.initialXOR
	d.n = 0
}

func (d *Digest) Write(p []byte) (int, error) {
	d.crc = d.v.Update(d.crc, p)
	d.n += uint64(len(p))
	return len(p), nil
}

// Unwrite removes the trailing len(p) bytes from the digest. p must hold the
// bytes that were written last; passing other bytes corrupts the digest.
func (d *Digest) Unwrite(p []byte) (int, error) {
	if uint64(len(p)) > d.n {
		return 0, errors.Wrapf(ErrUnwrite, "crcrev.Digest.Unwrite: %d bytes requested, %d written", len(p), d.n)
	}
	d.crc = d.v.Unupdate(d.crc, p)
	d.n -= uint64(len(p))
	return len(p), nil
}

// Sum32 returns the checksum of the bytes written so far.
func (d *Digest) Sum32() uint32 {
	return d.v.finish(d.crc, d.n)
}

// Sum16 returns the checksum truncated to 16 bits;
// it is only meaningful for 16-bit variants.
func (d *Digest) Sum16() uint16 {
	return uint16(d.Sum32())
}

// Sum appends the big-endian checksum to in.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum32()
	for shift := int(d.v.width) - 8; shift >= 0; shift -= 8 {
		in = append(in, byte(s>>uint(shift)))
	}
	return in
}
