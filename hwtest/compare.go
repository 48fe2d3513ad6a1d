// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing logic components.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hwmem"
)

// A Func is a combinational component: it maps input bits to output bits.
//
type Func func(in []hwmem.Bit) []hwmem.Bit

// Gate1 wraps a one input gate into a Func.
//
func Gate1(g func(hwmem.Bit) hwmem.Bit) Func {
	return func(in []hwmem.Bit) []hwmem.Bit { return []hwmem.Bit{g(in[0])} }
}

// Gate2 wraps a two inputs gate into a Func.
//
func Gate2(g func(a, b hwmem.Bit) hwmem.Bit) Func {
	return func(in []hwmem.Bit) []hwmem.Bit { return []hwmem.Bit{g(in[0], in[1])} }
}

// Gate3 wraps a three inputs gate into a Func.
//
func Gate3(g func(a, b, c hwmem.Bit) hwmem.Bit) Func {
	return func(in []hwmem.Bit) []hwmem.Bit { return []hwmem.Bit{g(in[0], in[1], in[2])} }
}

func bitString(bits []hwmem.Bit) string {
	var b strings.Builder
	for _, v := range bits {
		b.WriteString(v.String())
	}
	return b.String()
}

func equal(a, b []hwmem.Bit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// maxExhaustive is the largest input count tested exhaustively.
const maxExhaustive = 12

// CompareFunc takes two components and compares their outputs given the same
// inputs. Inputs are tested exhaustively up to 12 input bits. For wider
// inputs, all 0, all 1 and 4096 random input sets are tested.
//
func CompareFunc(t *testing.T, inputs int, f1, f2 Func) {
	t.Helper()

	in := make([]hwmem.Bit, inputs)
	check := func() {
		t.Helper()
		o1, o2 := f1(in), f2(in)
		if !equal(o1, o2) {
			t.Fatalf("\nInputs %s\nExpected %s\nGot %s", bitString(in), bitString(o1), bitString(o2))
		}
	}

	if inputs <= maxExhaustive {
		for i := 0; i < 1<<uint(inputs); i++ {
			for bit := range in {
				in[len(in)-bit-1] = hwmem.BitFromBool(i&(1<<uint(bit)) != 0)
			}
			check()
		}
		return
	}

	// try all 0, then all 1
	check()
	for i := range in {
		in[i] = hwmem.One
	}
	check()

	seed := time.Now().UnixNano()
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < 1<<maxExhaustive; i++ {
		for bit := range in {
			in[bit] = hwmem.BitFromBool(rnd.Int63()&(1<<62) != 0)
		}
		check()
	}
	t.Logf("%d inputs, %d random sets, seed %d", inputs, 1<<maxExhaustive, seed)
}

// A Row is a line of a truth table. In and Out are bit strings like "011".
//
type Row struct {
	In  string
	Out string
}

// TruthTable checks f against every row of a truth table.
//
func TruthTable(t *testing.T, name string, f Func, rows []Row) {
	t.Helper()
	for _, r := range rows {
		in, err := hwmem.ParseBitString(r.In)
		if err != nil {
			t.Fatal(err)
		}
		exp, err := hwmem.ParseBitString(r.Out)
		if err != nil {
			t.Fatal(err)
		}
		out := f(in.Bits())
		if !equal(out, exp.Bits()) {
			t.Errorf("%s(%s) = %s, got %s", name, r.In, r.Out, bitString(out))
		}
	}
}
