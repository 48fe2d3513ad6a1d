// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwmem"
	"github.com/pkg/errors"
)

// maxIntBits is the widest bit string that converts to an int64 without loss.
const maxIntBits = 63

// Int64 returns the bits as an int64. Bit 0 is the msb.
//
func Int64(bs hwmem.BitString) (int64, error) {
	if bs.Len() > maxIntBits {
		return 0, errors.Wrapf(hwmem.ErrAddressWidth, "%d bits do not fit in an int64", bs.Len())
	}
	var out int64
	for i := 0; i < bs.Len(); i++ {
		out <<= 1
		if bs.At(i) == hwmem.One {
			out |= 1
		}
	}
	return out, nil
}

// SetInt64 sets the bits to the given value, truncated to bs.Len() bits.
//
func SetInt64(bs hwmem.BitString, v int64) {
	n := bs.Len()
	for i := 0; i < n; i++ {
		bs.Set(n-1-i, hwmem.BitFromBool(i < 64 && v&(1<<uint(i)) != 0))
	}
}

// BitStringFromInt64 returns the bits-wide representation of v. It fails if v
// is negative or does not fit.
//
func BitStringFromInt64(bits int, v int64) (hwmem.BitString, error) {
	if v < 0 || bits < maxIntBits && v >= 1<<uint(bits) {
		return hwmem.BitString{}, errors.Wrapf(hwmem.ErrOutOfRange, "%d does not fit in %d bits", v, bits)
	}
	bs := hwmem.NewBitString(bits)
	SetInt64(bs, v)
	return bs, nil
}
