// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import "github.com/pkg/errors"

// ByteBits is the number of bits in a Byte.
const ByteBits = 8

// A Byte is a BitString of exactly 8 bits. Index 0 is the most significant
// bit.
//
type Byte [ByteBits]Bit

// ParseByte parses a string of exactly 8 '0' and '1' characters.
//
func ParseByte(s string) (Byte, error) {
	bs, err := ParseBitString(s)
	if err != nil {
		return Byte{}, err
	}
	return ByteFromBitString(bs)
}

// MustParseByte is like ParseByte but panics on error.
//
func MustParseByte(s string) Byte {
	b, err := ParseByte(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ByteFromBitString converts an 8 bits BitString to a Byte.
//
func ByteFromBitString(bs BitString) (Byte, error) {
	var b Byte
	if bs.Len() != ByteBits {
		return b, errors.Wrapf(ErrMalformed, "byte from %d bits", bs.Len())
	}
	copy(b[:], bs.bits)
	return b, nil
}

// BitString returns a copy of b as a BitString.
//
func (b Byte) BitString() BitString {
	bits := make([]Bit, ByteBits)
	copy(bits, b[:])
	return BitString{bits}
}

func (b Byte) String() string {
	return b.BitString().String()
}
