// Package hashutil provides utility interfaces for hash functions.
package hashutil

import "hash"

// Hash16 is the common interface implemented by all 16-bit hash functions.
type Hash16 interface {
	hash.Hash
	Sum16() uint16 // returns the 16-bit checksum of the hash
}

// Reversible is implemented by 32-bit hash functions
// that can forget the most recently written bytes.
type Reversible interface {
	hash.Hash32
	// Unwrite removes the trailing len(p) bytes from the running hash,
	// which must equal p.
	Unwrite(p []byte) (int, error)
}
