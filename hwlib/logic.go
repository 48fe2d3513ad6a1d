// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwmem"

// IsZero returns One if every bit of in is Zero. The bits are reduced by a
// tree of OR gates, two adjacent wires at a time.
//
//	Inputs: in[bits]
//	Function: out = !(in[0] || in[1] || ... || in[bits-1])
//
func IsZero(in hwmem.BitString) hwmem.Bit {
	if in.Len() == 0 {
		return hwmem.One
	}
	level := in.Bits()
	for len(level) > 1 {
		next := make([]hwmem.Bit, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, Or(level[i], level[i+1]))
		}
		// odd wire out goes straight to the next level
		if len(level)&1 != 0 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	return Not(level[0])
}
