// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Bit is a single binary value. The only valid values are Zero and One.
//
type Bit uint8

// Bit values.
const (
	Zero Bit = 0
	One  Bit = 1
)

// ParseBit returns the Bit for the rune '0' or '1'.
//
func ParseBit(r rune) (Bit, error) {
	switch r {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	}
	return Zero, errors.Wrapf(ErrMalformed, "invalid bit %q", r)
}

// BitFromInt returns the Bit for the integer 0 or 1.
//
func BitFromInt(v int) (Bit, error) {
	if v != 0 && v != 1 {
		return Zero, errors.Wrapf(ErrMalformed, "invalid bit value %d", v)
	}
	return Bit(v), nil
}

// BitFromBool returns One if v is true, Zero otherwise.
//
func BitFromBool(v bool) Bit {
	if v {
		return One
	}
	return Zero
}

// Bool returns true if b is One.
//
func (b Bit) Bool() bool { return b == One }

// And returns One iff both b and o are One.
//
func (b Bit) And(o Bit) Bit { return BitFromBool(b == One && o == One) }

// Or returns One iff at least one of b and o is One.
//
func (b Bit) Or(o Bit) Bit { return BitFromBool(b == One || o == One) }

// Not returns the complement of b.
//
func (b Bit) Not() Bit { return BitFromBool(b != One) }

func (b Bit) String() string {
	return strconv.Itoa(int(b))
}
