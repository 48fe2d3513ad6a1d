// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import (
	"strings"

	"github.com/pkg/errors"
)

// A BitString is a fixed length sequence of bits. Index 0 is the most
// significant (leftmost) bit.
//
// The zero value is an empty BitString. Copies of a BitString share storage;
// use Clone to get an independent copy.
//
type BitString struct {
	bits []Bit
}

// NewBitString returns a BitString of n Zero bits.
//
func NewBitString(n int) BitString {
	if n < 0 {
		panic("negative BitString length")
	}
	return BitString{make([]Bit, n)}
}

// BitStringOf returns a BitString holding a copy of bits. It fails if any of
// the bits is neither Zero nor One.
//
func BitStringOf(bits ...Bit) (BitString, error) {
	for i, b := range bits {
		if b != Zero && b != One {
			return BitString{}, errors.Wrapf(ErrMalformed, "invalid bit value %d at index %d", b, i)
		}
	}
	bs := make([]Bit, len(bits))
	copy(bs, bits)
	return BitString{bs}, nil
}

// ParseBitString parses a string of '0' and '1' characters. Any other
// character, including white space, is an error.
//
func ParseBitString(s string) (BitString, error) {
	bits := make([]Bit, 0, len(s))
	for i, r := range s {
		b, err := ParseBit(r)
		if err != nil {
			return BitString{}, errors.Wrapf(err, "in %q at pos %d", s, i+1)
		}
		bits = append(bits, b)
	}
	return BitString{bits}, nil
}

// MustParseBitString is like ParseBitString but panics on error.
//
func MustParseBitString(s string) BitString {
	bs, err := ParseBitString(s)
	if err != nil {
		panic(err)
	}
	return bs
}

// Len returns the number of bits in bs.
//
func (bs BitString) Len() int { return len(bs.bits) }

// At returns the bit at index i. It panics if i is out of range.
//
func (bs BitString) At(i int) Bit { return bs.bits[i] }

// Set replaces the bit at index i. It panics if i is out of range or if b is
// not a valid Bit.
//
func (bs BitString) Set(i int, b Bit) {
	if b != Zero && b != One {
		panic("invalid bit value " + b.String())
	}
	bs.bits[i] = b
}

// Slice returns a copy of the bits in the range [i, j).
//
func (bs BitString) Slice(i, j int) BitString {
	s := make([]Bit, j-i)
	copy(s, bs.bits[i:j])
	return BitString{s}
}

// Clone returns an independent copy of bs.
//
func (bs BitString) Clone() BitString {
	return bs.Slice(0, len(bs.bits))
}

// Bits returns a copy of the bits in bs.
//
func (bs BitString) Bits() []Bit {
	return bs.Clone().bits
}

// Equal returns true if bs and o have the same length and bits.
//
func (bs BitString) Equal(o BitString) bool {
	if len(bs.bits) != len(o.bits) {
		return false
	}
	for i, b := range bs.bits {
		if o.bits[i] != b {
			return false
		}
	}
	return true
}

func (bs BitString) String() string {
	var b strings.Builder
	b.Grow(len(bs.bits))
	for _, v := range bs.bits {
		if v == One {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
