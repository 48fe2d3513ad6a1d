// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// A MatrixRegister is a width by width grid of gated latches storing width²
// bits. A latch is selected by a row and a column index.
//
// Latches are stored row-major in a single slice.
//
type MatrixRegister struct {
	width   int
	latches []GatedLatch
}

// NewMatrixRegister returns a new register of width² latches, all storing
// Zero. width must be a power of two.
//
func NewMatrixRegister(width int) (*MatrixRegister, error) {
	if _, err := checkWidth(width); err != nil {
		return nil, err
	}
	return &MatrixRegister{
		width:   width,
		latches: make([]GatedLatch, width*width),
	}, nil
}

// Width returns the number of rows (and columns) of the register.
//
func (r *MatrixRegister) Width() int { return r.width }

// Bits returns the storage capacity of the register in bits.
//
func (r *MatrixRegister) Bits() int { return len(r.latches) }

func (r *MatrixRegister) latch(row, col int) (*GatedLatch, error) {
	if row < 0 || row >= r.width || col < 0 || col >= r.width {
		return nil, errors.Wrapf(hwmem.ErrOutOfRange, "register: (%d, %d) not in a %dx%d matrix", row, col, r.width, r.width)
	}
	return &r.latches[row*r.width+col], nil
}

// Read returns the bit stored at (row, col) if re is One. If re is Zero, the
// output line is not driven and Read returns Zero.
//
//	Inputs: row, col, re
//	Function: out = re && latch[row][col]
//
func (r *MatrixRegister) Read(row, col int, re hwmem.Bit) (hwmem.Bit, error) {
	l, err := r.latch(row, col)
	if err != nil {
		return hwmem.Zero, err
	}
	return And(re, l.Read()), nil
}

// Write forwards data and we to the latch at (row, col). No other latch is
// affected.
//
//	Inputs: row, col, data, we
//	Function: if we { latch[row][col] = data }
//
func (r *MatrixRegister) Write(row, col int, data, we hwmem.Bit) error {
	l, err := r.latch(row, col)
	if err != nil {
		return err
	}
	l.Write(data, we)
	return nil
}
