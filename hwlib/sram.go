// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"context"
	"io"
	"log/slog"

	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// Stats holds the access counters of an SRAM.
//
type Stats struct {
	Reads    uint64 // successful bit and word reads
	Writes   uint64 // successful bit and word writes
	Rejected uint64 // accesses that failed validation
}

// An Option configures an SRAM.
//
type Option func(*SRAM)

// WithLogger sets the logger used by an SRAM. By default nothing is logged.
//
func WithLogger(l *slog.Logger) Option {
	return func(s *SRAM) {
		if l != nil {
			s.log = l
		}
	}
}

// An SRAM is a static memory built from latches. It is made of a number of
// independent memory cells, each addressed by a top-level cell index.
//
// Bits can be accessed one at a time in a given cell with Read and Write, or
// as words with ReadWord and WriteWord, in which case bit i of a word is
// stored in cell i.
//
// An SRAM is not safe for concurrent use.
//
type SRAM struct {
	cfg   Config
	cells []*MemoryCell
	stats Stats
	log   *slog.Logger
}

// NewSRAM returns a new SRAM for the given configuration.
//
func NewSRAM(cfg Config, opts ...Option) (*SRAM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &SRAM{
		cfg:   cfg,
		cells: make([]*MemoryCell, cfg.Cells),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	for i := range s.cells {
		c, err := NewMemoryCell(cfg.Width)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", i)
		}
		s.cells[i] = c
	}
	s.log.Debug("sram created",
		slog.Int("cells", cfg.Cells),
		slog.Int("width", cfg.Width),
		slog.Int("bits", cfg.Cells*cfg.Width*cfg.Width))
	return s, nil
}

// Config returns the configuration s was built with.
//
func (s *SRAM) Config() Config { return s.cfg }

// Cells returns the number of memory cells.
//
func (s *SRAM) Cells() int { return len(s.cells) }

// Width returns the register width of every memory cell.
//
func (s *SRAM) Width() int { return s.cfg.Width }

// AddressBits returns the length of an in-cell address.
//
func (s *SRAM) AddressBits() int { return s.cells[0].AddressBits() }

// Stats returns the access counters.
//
func (s *SRAM) Stats() Stats { return s.stats }

func (s *SRAM) reject(op string, err error, attrs ...slog.Attr) error {
	s.stats.Rejected++
	attrs = append(attrs, slog.String("op", op), slog.String("error", err.Error()))
	s.log.LogAttrs(context.Background(), slog.LevelDebug, "sram access rejected", attrs...)
	return err
}

func (s *SRAM) cell(i int) (*MemoryCell, error) {
	if i < 0 || i >= len(s.cells) {
		return nil, errors.Wrapf(hwmem.ErrOutOfRange, "sram: cell %d not in [0, %d)", i, len(s.cells))
	}
	return s.cells[i], nil
}

// CellIndex decodes a top-level address given as a bit string, msb first, and
// checks that it names an existing cell. An empty address is rejected.
//
func (s *SRAM) CellIndex(addr hwmem.BitString) (int, error) {
	if addr.Len() == 0 {
		return 0, s.reject("cell index", errors.Wrap(hwmem.ErrAddressWidth, "sram: empty cell address"))
	}
	v, err := Int64(addr)
	if err != nil {
		return 0, s.reject("cell index", err, slog.String("addr", addr.String()))
	}
	if v >= int64(len(s.cells)) {
		return 0, s.reject("cell index", errors.Wrapf(hwmem.ErrOutOfRange, "sram: cell %s not in [0, %d)", addr, len(s.cells)),
			slog.String("addr", addr.String()))
	}
	return int(v), nil
}

// Read returns the bit at addr in the given cell if re is One, Zero
// otherwise.
//
func (s *SRAM) Read(cell int, addr hwmem.BitString, re hwmem.Bit) (hwmem.Bit, error) {
	c, err := s.cell(cell)
	if err != nil {
		return hwmem.Zero, s.reject("read", err, slog.Int("cell", cell))
	}
	b, err := c.Read(addr, re)
	if err != nil {
		return hwmem.Zero, s.reject("read", err, slog.Int("cell", cell), slog.String("addr", addr.String()))
	}
	s.stats.Reads++
	return b, nil
}

// Write stores data at addr in the given cell if we is One.
//
func (s *SRAM) Write(cell int, addr hwmem.BitString, data, we hwmem.Bit) error {
	c, err := s.cell(cell)
	if err != nil {
		return s.reject("write", err, slog.Int("cell", cell))
	}
	if err = c.Write(addr, data, we); err != nil {
		return s.reject("write", err, slog.Int("cell", cell), slog.String("addr", addr.String()))
	}
	s.stats.Writes++
	return nil
}

func (s *SRAM) checkAddr(addr hwmem.BitString) error {
	if n := s.AddressBits(); addr.Len() != n {
		return errors.Wrapf(hwmem.ErrAddressWidth, "sram: got %d address bits, expected %d", addr.Len(), n)
	}
	return nil
}

// ReadWord reads the word at addr: bit i of the result comes from cell i. If
// re is Zero, the result is all Zero.
//
func (s *SRAM) ReadWord(addr hwmem.BitString, re hwmem.Bit) (hwmem.BitString, error) {
	if err := s.checkAddr(addr); err != nil {
		return hwmem.BitString{}, s.reject("read word", err)
	}
	out := hwmem.NewBitString(len(s.cells))
	for i, c := range s.cells {
		b, err := c.Read(addr, re)
		if err != nil {
			// unreachable after checkAddr
			return hwmem.BitString{}, s.reject("read word", err, slog.Int("cell", i))
		}
		out.Set(i, b)
	}
	s.stats.Reads++
	return out, nil
}

// WriteWord stores data at addr if we is One: bit i of data goes to cell i.
// data must have exactly Cells() bits. Nothing is written if any argument is
// invalid.
//
func (s *SRAM) WriteWord(addr, data hwmem.BitString, we hwmem.Bit) error {
	if err := s.checkAddr(addr); err != nil {
		return s.reject("write word", err)
	}
	if data.Len() != len(s.cells) {
		return s.reject("write word", errors.Wrapf(hwmem.ErrAddressWidth, "sram: got a %d bits word, expected %d", data.Len(), len(s.cells)))
	}
	for i, c := range s.cells {
		if err := c.Write(addr, data.At(i), we); err != nil {
			return s.reject("write word", err, slog.Int("cell", i))
		}
	}
	s.stats.Writes++
	return nil
}
