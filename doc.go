// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwmem provides the value model of a bit-level logic simulator: single
bits, bit strings and bytes.

Bits are composed into gates, adders, latches and an addressable latch memory
by the hwlib package. Everything in this module is a functional simulation:
there is no notion of propagation delay or clock, and every operation applies
immediately.

Bit strings are written and indexed most-significant bit first, the way they
read on paper:

	bs, err := hwmem.ParseBitString("0110")
	// bs.At(0) == hwmem.Zero, bs.At(1) == hwmem.One

*/
package hwmem
