// Package crcrev implements table-driven CRC checksums which can be updated
// in both directions: appending a byte to a checksum, and removing a known
// trailing byte to recover the checksum that existed before it.
//
// The forward table of a variant is built by simulating polynomial division.
// The inverse table is derived from the forward table by table patching: for
// a fixed reference state R the map b -> Advance(R, b) is a bijection over
// the 256 bytes, so running the reverse update once per byte against a
// placeholder table filled with R yields every correct inverse entry exactly
// once. Every derived table is validated before a Variant is returned.
//
// A Variant is immutable and safe for concurrent use.
package crcrev

import (
	"github.com/pchchv/crcrev/internal/table"
	"github.com/pchchv/crcrev/poly"
	"github.com/pkg/errors"
)

// Table is a 256-word lookup table.
// Only the low Width bits of each entry are used.
type Table = table.Table

// Variant is a fully built CRC variant: its parameters,
// its forward table and its verified inverse table.
type Variant struct {
	name         string
	width        uint
	style        Style
	poly         poly.Polynomial
	rev          poly.Polynomial
	initialXOR   uint32
	finalXOR     uint32
	check        uint32
	appendLength bool
	fwd          table.Table
	inv          table.Table
}

// New builds the variant described by def. It returns an error if def is
// malformed or if the derived inverse table fails validation.
// New does not run SelfCheck.
func New(def Definition) (*Variant, error) {
	if def.Width != 16 && def.Width != 32 {
		return nil, errors.Wrapf(ErrWidth, "crcrev.New: %s has width %d", def.Name, def.Width)
	}

	if !def.Style.valid() {
		return nil, errors.Wrapf(ErrStyle, "crcrev.New: %s has style %d", def.Name, def.Style)
	}

	mask := table.Mask(def.Width)
	if def.InitialXOR&^mask != 0 || def.FinalXOR&^mask != 0 {
		return nil, errors.Wrapf(ErrWidth, "crcrev.New: %s XOR constants exceed %d bits", def.Name, def.Width)
	}

	p, err := poly.FromExponents(def.Exponents, def.Width)
	if err != nil {
		return nil, errors.Wrapf(err, "crcrev.New: %s", def.Name)
	}

	v := &Variant{
		name:         def.Name,
		width:        def.Width,
		style:        def.Style,
		poly:         p,
		rev:          p.Reverse(),
		initialXOR:   def.InitialXOR,
		finalXOR:     def.FinalXOR,
		check:        def.Check,
		appendLength: def.AppendLength,
	}
	v.fwd = *def.Style.makeForward(v.poly.Value(), v.rev.Value(), v.width)

	inv, err := v.DeriveInverse(mask)
	if err != nil {
		return nil, err
	}
	v.inv = inv

	return v, nil
}

// Name returns the name of the variant.
func (v *Variant) Name() string { return v.name }

// Width returns the checksum width in bits.
func (v *Variant) Width() uint { return v.width }

// Size returns the checksum size in bytes.
func (v *Variant) Size() int { return int(v.width / 8) }

// Style returns the table style of the variant.
func (v *Variant) Style() Style { return v.style }

// Polynomial returns the generator polynomial.
func (v *Variant) Polynomial() poly.Polynomial { return v.poly }

// ReversedPolynomial returns the bit-reversed generator polynomial.
func (v *Variant) ReversedPolynomial() poly.Polynomial { return v.rev }

// InitialXOR returns the checksum state at the start of a stream.
func (v *Variant) InitialXOR() uint32 { return v.initialXOR }

// FinalXOR returns the value applied to the state at the end of a stream.
func (v *Variant) FinalXOR() uint32 { return v.finalXOR }

// ForwardTable returns a copy of the forward table.
func (v *Variant) ForwardTable() Table { return v.fwd }

// InverseTable returns a copy of the inverse table.
func (v *Variant) InverseTable() Table { return v.inv }

// Advance returns the state obtained by appending b to state.
func (v *Variant) Advance(state uint32, b byte) uint32 {
	return advance(v.style, v.width, &v.fwd, state, b)
}

// Retreat returns the state that, advanced by b, yields state.
func (v *Variant) Retreat(state uint32, b byte) uint32 {
	return retreat(v.style, v.width, &v.inv, state, b)
}

// Update returns the state obtained by appending p to state.
func (v *Variant) Update(state uint32, p []byte) uint32 {
	for _, b := range p {
		state = v.Advance(state, b)
	}
	return state
}

// Unupdate returns the state that, updated with p, yields state.
func (v *Variant) Unupdate(state uint32, p []byte) uint32 {
	for i := len(p) - 1; i >= 0; i-- {
		state = v.Retreat(state, p[i])
	}
	return state
}

// Checksum returns the checksum of p, applying the initial XOR,
// the length suffix if any and the final XOR.
func (v *Variant) Checksum(p []byte) uint32 {
	return v.finish(v.Update(v.initialXOR, p), uint64(len(p)))
}

// finish turns the state of a stream of n bytes into its checksum.
func (v *Variant) finish(state uint32, n uint64) uint32 {
	if v.appendLength {
		state = v.Update(state, lengthSuffix(n))
	}
	return state ^ v.finalXOR
}

// unfinish returns the state a stream of n bytes must reach
// for its checksum to be sum.
func (v *Variant) unfinish(sum uint32, n uint64) uint32 {
	state := sum ^ v.finalXOR
	if v.appendLength {
		state = v.Unupdate(state, lengthSuffix(n))
	}
	return state
}

// lengthSuffix returns the bytes of n, least significant first,
// omitting the leading zero bytes.
func lengthSuffix(n uint64) []byte {
	var p []byte
	for ; n != 0; n >>= 8 {
		p = append(p, byte(n))
	}
	return p
}
