// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// A MemoryCell is a MatrixRegister with a row and a column decoder.
//
// An address is 2*log2(width) bits long: the leading half selects the row and
// the trailing half selects the column. With the default width of 16, an
// address is one byte.
//
type MemoryCell struct {
	row *Decoder
	col *Decoder
	reg *MatrixRegister
}

// NewMemoryCell returns a new memory cell of width² bits.
//
func NewMemoryCell(width int) (*MemoryCell, error) {
	reg, err := NewMatrixRegister(width)
	if err != nil {
		return nil, err
	}
	// width has been checked by NewMatrixRegister
	row, _ := NewDecoder(width)
	col, _ := NewDecoder(width)
	return &MemoryCell{row: row, col: col, reg: reg}, nil
}

// AddressBits returns the length of an address.
//
func (m *MemoryCell) AddressBits() int {
	return m.row.AddressBits() + m.col.AddressBits()
}

// Width returns the width of the underlying register.
//
func (m *MemoryCell) Width() int { return m.reg.Width() }

func (m *MemoryCell) decode(addr hwmem.BitString) (row, col int, err error) {
	if addr.Len() != m.AddressBits() {
		return 0, 0, errors.Wrapf(hwmem.ErrAddressWidth, "memory cell: got %d address bits, expected %d", addr.Len(), m.AddressBits())
	}
	n := m.row.AddressBits()
	if row, err = m.row.Select(addr.Slice(0, n)); err != nil {
		return 0, 0, errors.Wrap(err, "row")
	}
	if col, err = m.col.Select(addr.Slice(n, addr.Len())); err != nil {
		return 0, 0, errors.Wrap(err, "column")
	}
	return row, col, nil
}

// Read returns the bit at addr if re is One, Zero otherwise.
//
func (m *MemoryCell) Read(addr hwmem.BitString, re hwmem.Bit) (hwmem.Bit, error) {
	row, col, err := m.decode(addr)
	if err != nil {
		return hwmem.Zero, err
	}
	return m.reg.Read(row, col, re)
}

// Write stores data at addr if we is One.
//
func (m *MemoryCell) Write(addr hwmem.BitString, data, we hwmem.Bit) error {
	row, col, err := m.decode(addr)
	if err != nil {
		return err
	}
	return m.reg.Write(row, col, data, we)
}
