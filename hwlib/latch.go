// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwmem"

// NextAndOrState returns the next state of an AND-OR latch.
//
//	Inputs: state, set, reset
//	Function: next = (set || state) && !reset
//
// reset wins when both set and reset are asserted.
//
func NextAndOrState(state, set, reset hwmem.Bit) hwmem.Bit {
	return And(Or(set, state), Not(reset))
}

// GateSignals converts a data and write enable pair into the set and reset
// signals of an AND-OR latch.
//
//	Inputs: data, we
//	Outputs: set, reset
//	Function: set = data && we
//	          reset = !data && we
//
func GateSignals(data, we hwmem.Bit) (set, reset hwmem.Bit) {
	return And(data, we), And(Not(data), we)
}

// An AndOrLatch is a 1 bit memory made of an OR gate feeding its own output
// back and an AND gate driven by the inverted reset signal.
//
// The zero value is a latch storing Zero.
//
type AndOrLatch struct {
	out hwmem.Bit
}

// Read returns the latch output.
//
func (l *AndOrLatch) Read() hwmem.Bit { return l.out }

// Write updates the latch with the given set and reset signals.
//
func (l *AndOrLatch) Write(set, reset hwmem.Bit) {
	l.out = NextAndOrState(l.out, set, reset)
}

// A GatedLatch is a 1 bit memory with a data input and a write enable input.
// When write enable is Zero, the stored bit is left unchanged.
//
// The zero value is a latch storing Zero.
//
type GatedLatch struct {
	l AndOrLatch
}

// Read returns the stored bit.
//
func (g *GatedLatch) Read() hwmem.Bit { return g.l.Read() }

// Write stores data if we is One.
//
//	Inputs: data, we
//	Function: if we { out = data }
//
func (g *GatedLatch) Write(data, we hwmem.Bit) {
	g.l.Write(GateSignals(data, we))
}
