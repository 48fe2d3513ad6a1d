// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"math/bits"

	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// MaxWidth is the largest register width. A register of this width holds
// 16M latches.
const MaxWidth = 1 << 12

// checkWidth checks that width is a power of two in [2, MaxWidth] and returns
// log2(width).
//
func checkWidth(width int) (int, error) {
	if width < 2 || width > MaxWidth || width&(width-1) != 0 {
		return 0, errors.Wrapf(hwmem.ErrConfig, "width %d is not a power of two in [2, %d]", width, MaxWidth)
	}
	return bits.TrailingZeros(uint(width)), nil
}

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel hwmem.Bit) hwmem.Bit {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel hwmem.Bit) (a, b hwmem.Bit) {
	return And(in, Not(sel)), And(in, sel)
}

// MuxN is an n-bits Mux. a and b must have the same length.
//
//	Inputs: a[n], b[n], sel
//	Outputs: out[n]
//	Function: for i := range out { out[i] = Mux(a[i], b[i], sel) }
//
func MuxN(a, b hwmem.BitString, sel hwmem.Bit) (hwmem.BitString, error) {
	if a.Len() != b.Len() {
		return hwmem.BitString{}, errors.Wrapf(hwmem.ErrAddressWidth, "mux: %d and %d bits inputs", a.Len(), b.Len())
	}
	out := hwmem.NewBitString(a.Len())
	for i := 0; i < a.Len(); i++ {
		out.Set(i, Mux(a.At(i), b.At(i), sel))
	}
	return out, nil
}

// DMuxNWay is a tree of DMux routing in to one of 2^len(sel) output lines.
// sel is read msb first, so that line i is selected by the binary
// representation of i.
//
//	Inputs: in, sel[n]
//	Outputs: out[1<<n]
//	Function: out[sel] = in; all other lines are 0
//
func DMuxNWay(in hwmem.Bit, sel hwmem.BitString) []hwmem.Bit {
	lines := []hwmem.Bit{in}
	for i := 0; i < sel.Len(); i++ {
		s := sel.At(i)
		next := make([]hwmem.Bit, 0, 2*len(lines))
		for _, l := range lines {
			a, b := DMux(l, s)
			next = append(next, a, b)
		}
		lines = next
	}
	return lines
}

// A Decoder converts a binary address into the index of one of width select
// lines (a row or column of a MatrixRegister).
//
//	Inputs: addr[log2(width)]
//	Outputs: index in [0, width)
//
type Decoder struct {
	width int
	bits  int
}

// NewDecoder returns a new decoder for width select lines. width must be a
// power of two.
//
func NewDecoder(width int) (*Decoder, error) {
	n, err := checkWidth(width)
	if err != nil {
		return nil, err
	}
	return &Decoder{width: width, bits: n}, nil
}

// Width returns the number of select lines.
//
func (d *Decoder) Width() int { return d.width }

// AddressBits returns the number of address bits expected by Select.
//
func (d *Decoder) AddressBits() int { return d.bits }

// Lines returns the one-hot select lines for addr: a DMuxNWay driven by One.
//
func (d *Decoder) Lines(addr hwmem.BitString) ([]hwmem.Bit, error) {
	if addr.Len() != d.bits {
		return nil, errors.Wrapf(hwmem.ErrAddressWidth, "decoder: got %d address bits, expected %d", addr.Len(), d.bits)
	}
	return DMuxNWay(hwmem.One, addr), nil
}

// Select decodes addr, msb first, and returns the index of the hot select
// line.
//
func (d *Decoder) Select(addr hwmem.BitString) (int, error) {
	lines, err := d.Lines(addr)
	if err != nil {
		return 0, err
	}
	for i, l := range lines {
		if l == hwmem.One {
			return i, nil
		}
	}
	panic("decoder: no select line driven")
}

// Encode returns the address that selects line idx.
//
func (d *Decoder) Encode(idx int) (hwmem.BitString, error) {
	if idx < 0 || idx >= d.width {
		return hwmem.BitString{}, errors.Wrapf(hwmem.ErrOutOfRange, "decoder: line %d not in [0, %d)", idx, d.width)
	}
	return BitStringFromInt64(d.bits, int64(idx))
}
