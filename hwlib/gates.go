// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of logic components built on top of the
// hwmem bit model: gates, adders, latches, address decoders and a latch based
// static memory.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// And returns a AND gate output.
//
//	Inputs: a, b
//	Function: out = a && b
//
func And(a, b hwmem.Bit) hwmem.Bit { return a.And(b) }

// Or returns a OR gate output.
//
//	Inputs: a, b
//	Function: out = a || b
//
func Or(a, b hwmem.Bit) hwmem.Bit { return a.Or(b) }

// Not returns a NOT gate output.
//
//	Inputs: in
//	Function: out = !in
//
func Not(in hwmem.Bit) hwmem.Bit { return in.Not() }

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Function: out = !(a && b)
//
func Nand(a, b hwmem.Bit) hwmem.Bit { return Not(And(a, b)) }

// Nor returns a NOR gate output.
//
//	Inputs: a, b
//	Function: out = !(a || b)
//
func Nor(a, b hwmem.Bit) hwmem.Bit { return Not(Or(a, b)) }

// Xor returns a XOR gate output. It is wired from AND, OR and NOT gates only:
//
//	Inputs: a, b
//	Function: out = !(a && b) && (a || b)
//
func Xor(a, b hwmem.Bit) hwmem.Bit {
	return And(Not(And(a, b)), Or(a, b))
}

// Xnor returns a XNOR gate output.
//
//	Inputs: a, b
//	Function: out = !xor(a, b)
//
func Xnor(a, b hwmem.Bit) hwmem.Bit { return Not(Xor(a, b)) }

// AndNWay returns a N-Way AND gate output. It returns One for an empty input.
//
//	Inputs: in[n]
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndNWay(in hwmem.BitString) hwmem.Bit {
	out := hwmem.One
	for i := 0; i < in.Len(); i++ {
		out = And(out, in.At(i))
	}
	return out
}

// OrNWay returns a N-Way OR gate output. It returns Zero for an empty input.
//
//	Inputs: in[n]
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrNWay(in hwmem.BitString) hwmem.Bit {
	out := hwmem.Zero
	for i := 0; i < in.Len(); i++ {
		out = Or(out, in.At(i))
	}
	return out
}

// a two input gate
type gate func(a, b hwmem.Bit) hwmem.Bit

func (g gate) apply(name string, a, b hwmem.BitString) (hwmem.BitString, error) {
	if a.Len() != b.Len() {
		return hwmem.BitString{}, errors.Wrapf(hwmem.ErrAddressWidth, "%s: %d bits operand and %d bits operand", name, a.Len(), b.Len())
	}
	out := hwmem.NewBitString(a.Len())
	for i := 0; i < a.Len(); i++ {
		out.Set(i, g(a.At(i), b.At(i)))
	}
	return out, nil
}

// AndN returns the bitwise AND of two bit strings of the same length.
//
//	Inputs: a[bits], b[bits]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func AndN(a, b hwmem.BitString) (hwmem.BitString, error) { return gate(And).apply("AndN", a, b) }

// OrN returns the bitwise OR of two bit strings of the same length.
//
//	Inputs: a[bits], b[bits]
//	Function: for i := range out { out[i] = a[i] || b[i] }
//
func OrN(a, b hwmem.BitString) (hwmem.BitString, error) { return gate(Or).apply("OrN", a, b) }

// XorN returns the bitwise XOR of two bit strings of the same length.
//
//	Inputs: a[bits], b[bits]
//	Function: for i := range out { out[i] = xor(a[i], b[i]) }
//
func XorN(a, b hwmem.BitString) (hwmem.BitString, error) { return gate(Xor).apply("XorN", a, b) }

// NotN returns the complement of every bit in.
//
//	Inputs: in[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(in hwmem.BitString) hwmem.BitString {
	out := hwmem.NewBitString(in.Len())
	for i := 0; i < in.Len(); i++ {
		out.Set(i, Not(in.At(i)))
	}
	return out
}
