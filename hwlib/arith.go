// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// HalfAdder adds two bits.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b hwmem.Bit) (s, c hwmem.Bit) {
	return Xor(a, b), And(a, b)
}

// FullAdder adds three bits. It is built from two half adders whose carries
// are ORed together.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(a, b, cin hwmem.Bit) (s, cout hwmem.Bit) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, Or(c0, c1)
}

// Adder8 is an 8 bits ripple carry adder. The sum wraps around on overflow and
// c is set to the carry out of the most significant bit.
//
//	Inputs: a[8], b[8]
//	Outputs: out[8], c
//
func Adder8(a, b hwmem.Byte) (out hwmem.Byte, c hwmem.Bit) {
	c = hwmem.Zero
	for i := hwmem.ByteBits - 1; i >= 0; i-- {
		out[i], c = FullAdder(a[i], b[i], c)
	}
	return out, c
}

// AdderN is a ripple carry adder for bit strings of any length. a and b must
// have the same length.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//
func AdderN(a, b hwmem.BitString) (hwmem.BitString, hwmem.Bit, error) {
	return AddWithCarry(a, b, hwmem.Zero)
}

// AddWithCarry is AdderN with an explicit carry into the least significant
// bit.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: out[bits], c
//
func AddWithCarry(a, b hwmem.BitString, cin hwmem.Bit) (hwmem.BitString, hwmem.Bit, error) {
	if a.Len() != b.Len() {
		return hwmem.BitString{}, hwmem.Zero, errors.Wrapf(hwmem.ErrAddressWidth, "adder: %d bits operand and %d bits operand", a.Len(), b.Len())
	}
	out := hwmem.NewBitString(a.Len())
	c := cin
	for i := a.Len() - 1; i >= 0; i-- {
		var s hwmem.Bit
		s, c = FullAdder(a.At(i), b.At(i), c)
		out.Set(i, s)
	}
	return out, c, nil
}

// An Adder is a ripple carry adder of fixed precision.
//
type Adder struct {
	bits int
}

// NewAdder returns an adder for operands of the given number of bits.
//
func NewAdder(bits int) (*Adder, error) {
	if bits < 1 {
		return nil, errors.Wrapf(hwmem.ErrConfig, "adder precision %d", bits)
	}
	return &Adder{bits}, nil
}

// Bits returns the operand width.
//
func (a *Adder) Bits() int { return a.bits }

// Add adds x and y, which must both be Bits() wide.
//
//	Inputs: x[bits], y[bits]
//	Outputs: out[bits], c
//
func (a *Adder) Add(x, y hwmem.BitString) (hwmem.BitString, hwmem.Bit, error) {
	if x.Len() != a.bits || y.Len() != a.bits {
		return hwmem.BitString{}, hwmem.Zero, errors.Wrapf(hwmem.ErrAddressWidth, "adder%d: got %d and %d bits operands", a.bits, x.Len(), y.Len())
	}
	return AdderN(x, y)
}
