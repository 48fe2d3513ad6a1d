package hwtest_test

import (
	"testing"

	"github.com/db47h/hwmem"
	hl "github.com/db47h/hwmem/hwlib"
	"github.com/db47h/hwmem/hwtest"
)

func TestCompareFunc(t *testing.T) {
	// OR from NANDs
	or := func(a, b hwmem.Bit) hwmem.Bit {
		return hl.Nand(hl.Nand(a, a), hl.Nand(b, b))
	}
	hwtest.CompareFunc(t, 2, hwtest.Gate2(hl.Or), hwtest.Gate2(or))
}

func TestCompareFunc_random(t *testing.T) {
	// 16 inputs switches to random testing
	orN := func(in []hwmem.Bit) []hwmem.Bit {
		bs, err := hwmem.BitStringOf(in...)
		if err != nil {
			panic(err)
		}
		return []hwmem.Bit{hl.OrNWay(bs)}
	}
	notZero := func(in []hwmem.Bit) []hwmem.Bit {
		bs, err := hwmem.BitStringOf(in...)
		if err != nil {
			panic(err)
		}
		return []hwmem.Bit{hl.Not(hl.IsZero(bs))}
	}
	hwtest.CompareFunc(t, 16, orN, notZero)
}

func TestTruthTable(t *testing.T) {
	hwtest.TruthTable(t, "NAND", hwtest.Gate2(hl.Nand), []hwtest.Row{
		{"00", "1"},
		{"01", "1"},
		{"10", "1"},
		{"11", "0"},
	})
}
