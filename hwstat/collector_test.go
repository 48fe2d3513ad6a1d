package hwstat_test

import (
	"strings"
	"testing"

	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/hwlib"
	"github.com/db47h/hwmem/hwstat"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	s, err := hwlib.NewSRAM(hwlib.DefaultConfig())
	require.NoError(t, err)

	c := hwstat.NewCollector("hwmem", s)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	addr := hwmem.MustParseBitString("00000001")
	require.NoError(t, s.Write(0, addr, hwmem.One, hwmem.One))
	require.NoError(t, s.Write(1, addr, hwmem.One, hwmem.One))
	_, err = s.Read(0, addr, hwmem.One)
	require.NoError(t, err)
	_, err = s.Read(99, addr, hwmem.One)
	require.Error(t, err)

	assert.Equal(t, 3, testutil.CollectAndCount(c))

	exp := `
# HELP hwmem_sram_reads_total Successful SRAM reads.
# TYPE hwmem_sram_reads_total counter
hwmem_sram_reads_total 1
# HELP hwmem_sram_rejected_total SRAM accesses rejected by address or width validation.
# TYPE hwmem_sram_rejected_total counter
hwmem_sram_rejected_total 1
# HELP hwmem_sram_writes_total Successful SRAM writes.
# TYPE hwmem_sram_writes_total counter
hwmem_sram_writes_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(exp)))
}
