package hwlib_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/db47h/hwmem"
	hl "github.com/db47h/hwmem/hwlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSRAM(t *testing.T, opts ...hl.Option) *hl.SRAM {
	t.Helper()
	s, err := hl.NewSRAM(hl.DefaultConfig(), opts...)
	require.NoError(t, err)
	return s
}

func TestSRAM_roundTrip(t *testing.T) {
	s := newSRAM(t)
	require.Equal(t, 16, s.Cells())
	require.Equal(t, 8, s.AddressBits())

	addr := hwmem.MustParseBitString("10100101")
	require.NoError(t, s.Write(5, addr, hwmem.One, hwmem.One))
	b, err := s.Read(5, addr, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, hwmem.One, b)

	require.NoError(t, s.Write(5, addr, hwmem.Zero, hwmem.One))
	b, err = s.Read(5, addr, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, hwmem.Zero, b)
}

func TestSRAM_cellIsolation(t *testing.T) {
	s := newSRAM(t)
	addr := hwmem.MustParseBitString("00000000")
	require.NoError(t, s.Write(0, addr, hwmem.One, hwmem.One))
	for c := 1; c < s.Cells(); c++ {
		b, err := s.Read(c, addr, hwmem.One)
		require.NoError(t, err)
		assert.Equal(t, hwmem.Zero, b, "cell %d", c)
	}
}

func TestSRAM_outOfRange(t *testing.T) {
	s := newSRAM(t)
	addr := hwmem.MustParseBitString("00000000")
	for _, c := range []int{-1, 16, 100} {
		_, err := s.Read(c, addr, hwmem.One)
		assert.ErrorIs(t, err, hwmem.ErrOutOfRange)
		assert.ErrorIs(t, s.Write(c, addr, hwmem.One, hwmem.One), hwmem.ErrOutOfRange)
	}
	_, err := s.Read(0, hwmem.MustParseBitString("0000"), hwmem.One)
	assert.ErrorIs(t, err, hwmem.ErrAddressWidth)

	st := s.Stats()
	assert.Equal(t, uint64(7), st.Rejected)
	assert.Zero(t, st.Reads)
	assert.Zero(t, st.Writes)
}

func TestSRAM_CellIndex(t *testing.T) {
	s := newSRAM(t)
	i, err := s.CellIndex(hwmem.MustParseBitString("1111"))
	require.NoError(t, err)
	assert.Equal(t, 15, i)
	assert.Zero(t, s.Stats().Rejected)

	_, err = s.CellIndex(hwmem.MustParseBitString("10000"))
	assert.ErrorIs(t, err, hwmem.ErrOutOfRange)
	_, err = s.CellIndex(hwmem.BitString{})
	assert.ErrorIs(t, err, hwmem.ErrAddressWidth)
	_, err = s.CellIndex(hwmem.NewBitString(64))
	assert.ErrorIs(t, err, hwmem.ErrAddressWidth)
	assert.Equal(t, uint64(3), s.Stats().Rejected)
}

func TestSRAM_words(t *testing.T) {
	s := newSRAM(t)
	a1 := hwmem.MustParseBitString("00010010")
	a2 := hwmem.MustParseBitString("00010011")
	w := hwmem.MustParseBitString("1011001110001111")

	require.NoError(t, s.WriteWord(a1, w, hwmem.One))
	got, err := s.ReadWord(a1, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, w.String(), got.String())

	// bit i lives in cell i
	for i := 0; i < s.Cells(); i++ {
		b, err := s.Read(i, a1, hwmem.One)
		require.NoError(t, err)
		assert.Equal(t, w.At(i), b, "cell %d", i)
	}

	got, err = s.ReadWord(a2, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, "0000000000000000", got.String())

	got, err = s.ReadWord(a1, hwmem.Zero)
	require.NoError(t, err)
	assert.Equal(t, "0000000000000000", got.String())

	// write enable off
	require.NoError(t, s.WriteWord(a1, hwmem.NewBitString(16), hwmem.Zero))
	got, err = s.ReadWord(a1, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, w.String(), got.String())
}

func TestSRAM_wordErrors(t *testing.T) {
	s := newSRAM(t)
	addr := hwmem.MustParseBitString("00000001")

	assert.ErrorIs(t, s.WriteWord(addr, hwmem.MustParseBitString("1111"), hwmem.One), hwmem.ErrAddressWidth)
	assert.ErrorIs(t, s.WriteWord(hwmem.MustParseBitString("01"), hwmem.MustParseBitString("1111111111111111"), hwmem.One), hwmem.ErrAddressWidth)
	_, err := s.ReadWord(hwmem.MustParseBitString("01"), hwmem.One)
	assert.ErrorIs(t, err, hwmem.ErrAddressWidth)

	// nothing was written
	got, err := s.ReadWord(addr, hwmem.One)
	require.NoError(t, err)
	assert.Equal(t, "0000000000000000", got.String())
}

func TestSRAM_config(t *testing.T) {
	_, err := hl.NewSRAM(hl.Config{Width: 12, Cells: 4, Precision: 8})
	assert.ErrorIs(t, err, hwmem.ErrConfig)

	s, err := hl.NewSRAM(hl.Config{Width: 4, Cells: 2, Precision: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cells())
	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 4, s.AddressBits())
	assert.Equal(t, 4, s.Config().Width)
}

func TestSRAM_logger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newSRAM(t, hl.WithLogger(log))
	assert.Contains(t, buf.String(), "sram created")

	_, err := s.Read(42, hwmem.MustParseBitString("00000000"), hwmem.One)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "sram access rejected")
	assert.Contains(t, buf.String(), "cell=42")

	_, err = s.CellIndex(hwmem.MustParseBitString("11111"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `op="cell index"`)
}
