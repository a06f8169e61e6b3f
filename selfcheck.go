package crcrev

import (
	"sync"

	"github.com/pchchv/crcrev/internal/bits"
	"github.com/pkg/errors"
)

// checkInput is the message published check values are computed over.
var checkInput = []byte("123456789")

// SelfCheck verifies that Retreat undoes Advance and that the table-driven
// checksum agrees with a bit-serial computation and with the published check
// value of the variant.
//
// 16-bit variants are verified for all 65536 states. 32-bit variants are
// verified for every state with one or two bits set, (1<<i)|(1<<j) for
// i, j in [0, 32); the remaining states are not covered.
//
// The first failure found in iteration order is returned as a *VerifyError
// or *CheckError.
func (v *Variant) SelfCheck() error {
	if err := v.verifyRoundTrip(); err != nil {
		return err
	}
	return v.verifyConformance()
}

// states enumerates the states covered by SelfCheck as an outer × inner grid.
type states struct {
	outer, inner int
	at           func(outer, inner int) uint32
}

func (v *Variant) states() states {
	if v.width == 16 {
		return states{outer: 256, inner: 256, at: func(o, i int) uint32 {
			return uint32(o)<<8 | uint32(i)
		}}
	}
	return states{outer: 32, inner: 32, at: func(o, i int) uint32 {
		return 1<<uint(o) | 1<<uint(i)
	}}
}

// verifyRoundTrip checks one outer row of the state grid per goroutine.
func (v *Variant) verifyRoundTrip() error {
	grid := v.states()
	failures := make([]*VerifyError, grid.outer)

	var wg sync.WaitGroup
	for o := 0; o < grid.outer; o++ {
		wg.Add(1)
		go func(o int) {
			defer wg.Done()
			failures[o] = v.verifyRow(grid, o)
		}(o)
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *Variant) verifyRow(grid states, o int) *VerifyError {
	for i := 0; i < grid.inner; i++ {
		state := grid.at(o, i)
		for n := 0; n < 256; n++ {
			b := byte(n)
			if got := v.Retreat(v.Advance(state, b), b); got != state {
				return &VerifyError{Variant: v.name, State: state, Byte: b, Got: got}
			}
		}
	}
	return nil
}

// verifyConformance compares the table-driven update against the bit-serial
// reference over the check input and every one-byte message, then compares
// the checksum of the check input against the published value.
func (v *Variant) verifyConformance() error {
	gen, reflected := v.poly.Value(), v.style == Reflected
	if reflected {
		gen = v.rev.Value()
	}

	msgs := [][]byte{checkInput}
	for n := 0; n < 256; n++ {
		msgs = append(msgs, []byte{byte(n)})
	}

	for _, msg := range msgs {
		want, err := bits.Serial(v.initialXOR, msg, gen, v.width, reflected)
		if err != nil {
			return errors.Wrapf(err, "crcrev.SelfCheck: %s bit-serial reference", v.name)
		}

		if got := v.Update(v.initialXOR, msg); got != want {
			return &CheckError{Variant: v.name, Input: msg, Expected: want, Got: got}
		}
	}

	if v.check != 0 {
		if got := v.Update(v.initialXOR, checkInput) ^ v.finalXOR; got != v.check {
			return &CheckError{Variant: v.name, Input: checkInput, Expected: v.check, Got: got}
		}
	}

	return nil
}
