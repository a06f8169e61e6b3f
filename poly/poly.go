// Package poly implements fixed-width polynomials over GF(2), as used to
// describe CRC generators.
//
// A polynomial of maximum degree n is stored as an n-bit integer in which
// bit e is the coefficient of x^e. The implicit x^n term of a CRC generator
// is not stored.
package poly

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the largest supported maximum degree.
const MaxWidth = 32

// ErrContract is returned (wrapped) when a polynomial is constructed from
// arguments outside their documented domain.
var ErrContract = errors.New("poly: construction contract violation")

// Polynomial is an immutable bit pattern over GF(2) with a declared width.
type Polynomial struct {
	// Number of significant bits of value.
	maxDegree uint
	// Coefficients; bit e holds the coefficient of x^e.
	value uint32
}

// FromExponents returns the polynomial having a coefficient of 1 for each
// of the given exponents. Every exponent must lie in [0, maxDegree).
func FromExponents(exponents []uint, maxDegree uint) (Polynomial, error) {
	if err := checkDegree(maxDegree); err != nil {
		return Polynomial{}, err
	}

	var value uint32
	for _, e := range exponents {
		if e >= maxDegree {
			return Polynomial{}, errors.Wrapf(ErrContract, "poly.FromExponents: exponent %d outside [0, %d)", e, maxDegree)
		}
		value |= 1 << e
	}

	return Polynomial{maxDegree: maxDegree, value: value}, nil
}

// FromValue wraps a raw coefficient pattern, which must fit in maxDegree bits.
func FromValue(value uint32, maxDegree uint) (Polynomial, error) {
	if err := checkDegree(maxDegree); err != nil {
		return Polynomial{}, err
	}

	if uint64(value) >= 1<<maxDegree {
		return Polynomial{}, errors.Wrapf(ErrContract, "poly.FromValue: value 0x%X does not fit in %d bits", value, maxDegree)
	}

	return Polynomial{maxDegree: maxDegree, value: value}, nil
}

func checkDegree(maxDegree uint) error {
	switch {
	case maxDegree == 0:
		return errors.Wrap(ErrContract, "poly: missing maximum degree")
	case maxDegree > MaxWidth:
		return errors.Wrapf(ErrContract, "poly: maximum degree %d exceeds %d", maxDegree, MaxWidth)
	}
	return nil
}

// Value returns the raw coefficient pattern.
func (p Polynomial) Value() uint32 {
	return p.value
}

// MaxDegree returns the declared width in bits.
func (p Polynomial) MaxDegree() uint {
	return p.maxDegree
}

// Exponents returns the exponents of the non-zero coefficients
// in ascending order.
func (p Polynomial) Exponents() []uint {
	var exponents []uint
	for e := uint(0); e < p.maxDegree; e++ {
		if p.value&(1<<e) != 0 {
			exponents = append(exponents, e)
		}
	}
	return exponents
}

// Reverse returns the polynomial whose bits are mirrored across the
// maxDegree-bit window, i.e. bit e moves to bit maxDegree-1-e.
//
// The whole value seeds an accumulator; the remaining high bits of value
// are shifted into its low end one at a time, after which the accumulator
// is left-aligned by the part of the window the high bits did not use and
// masked to maxDegree bits.
//
// Reverse is an involution for every polynomial built by this package,
// since all of its bits lie within the window. Callers holding patterns
// obtained elsewhere should not rely on that.
func (p Polynomial) Reverse() Polynomial {
	rev := uint64(p.value)
	rest := p.value >> 1
	size := p.maxDegree - 1
	for rest != 0 {
		rev <<= 1
		rev |= uint64(rest & 1)
		size--
		rest >>= 1
	}
	rev <<= size
	rev &= 1<<p.maxDegree - 1

	return Polynomial{maxDegree: p.maxDegree, value: uint32(rev)}
}

// String returns the polynomial in conventional notation,
// e.g. "x^15 + x^2 + 1".
func (p Polynomial) String() string {
	exponents := p.Exponents()
	if len(exponents) == 0 {
		return "0"
	}

	terms := make([]string, 0, len(exponents))
	for i := len(exponents) - 1; i >= 0; i-- {
		switch e := exponents[i]; e {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", e))
		}
	}

	return strings.Join(terms, " + ")
}
