package wlan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestConstellationUnitAveragePower(t *testing.T) {
	for _, mod := range []modulation_t{MOD_BPSK, MOD_QPSK, MOD_QAM16, MOD_QAM64} {
		var points = 1
		switch mod {
		case MOD_QPSK:
			points = 4
		case MOD_QAM16:
			points = 16
		case MOD_QAM64:
			points = 64
		default:
			points = 2
		}

		var total = 0.0
		for v := range points {
			var p = map_point(mod, v)
			total += real(p)*real(p) + imag(p)*imag(p)
		}
		assert.InDelta(t, 1.0, total/float64(points), 1e-12, "%v", mod)
	}
}

func TestGridLayout(t *testing.T) {
	var bits = make([]byte, bits_to_bytes(288))
	var grid = make([]complex128, NUM_SUBCARRIERS)
	map_symbol(7, bits, 1, grid)

	// DC and guards are null.
	assert.Equal(t, complex128(0), grid[0])
	for k := 27; k <= 37; k++ {
		assert.Equal(t, complex128(0), grid[k], "guard bin %d", k)
	}

	// Pilots carry the fixed pattern.
	assert.Equal(t, complex(1, 0), grid[43])
	assert.Equal(t, complex(1, 0), grid[57])
	assert.Equal(t, complex(1, 0), grid[7])
	assert.Equal(t, complex(-1, 0), grid[21])

	// Negative polarity flips all four.
	map_symbol(7, bits, -1, grid)
	assert.Equal(t, complex(-1, 0), grid[7])
	assert.Equal(t, complex(1, 0), grid[21])

	// 48 distinct data bins, none of them pilot/null.
	var seen = map[int]bool{}
	for _, bin := range data_carrier_bins {
		require.True(t, bin_is_active(bin))
		require.NotContains(t, []int{7, 21, 43, 57}, bin)
		require.False(t, seen[bin])
		seen[bin] = true
	}
	assert.Len(t, seen, NUM_DATA_CARRIERS)
}

// The spec's mapping order: +1..+26 first, then -26..-1.
func TestGridOrdering(t *testing.T) {
	assert.Equal(t, 1, data_carrier_bins[0])
	assert.Equal(t, 26, data_carrier_bins[23])
	assert.Equal(t, 38, data_carrier_bins[24]) // -26
	assert.Equal(t, 63, data_carrier_bins[47]) // -1
}

func TestMapDemapRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var rate = rapid.IntRange(0, NUM_RATES-1).Draw(t, "rate")
		var desc = &rate_table[rate]

		var bits = make([]byte, bits_to_bytes(desc.n_cbps))
		for n := range desc.n_cbps {
			set_bit(bits, n, rapid.IntRange(0, 1).Draw(t, "bit"))
		}

		var grid = make([]complex128, NUM_SUBCARRIERS)
		map_symbol(rate, bits, pilot_polarity(rapid.IntRange(0, 200).Draw(t, "sym")), grid)

		var soft = make([]byte, desc.n_cbps)
		demap_symbol(rate, grid, nil, soft)

		for n := range desc.n_cbps {
			var hard = IfThenElse(soft[n] >= 128, 1, 0)
			assert.Equal(t, get_bit(bits, n), hard, "bit %d", n)
		}
	})
}

func TestDemapErasedBins(t *testing.T) {
	var bits = make([]byte, bits_to_bytes(48))
	var grid = make([]complex128, NUM_SUBCARRIERS)
	map_symbol(0, bits, 1, grid)

	var erased = make([]bool, NUM_SUBCARRIERS)
	erased[data_carrier_bins[0]] = true

	var soft = make([]byte, 48)
	demap_symbol(0, grid, erased, soft)

	assert.Equal(t, SOFT_ERASURE, soft[0])
	assert.NotEqual(t, SOFT_ERASURE, soft[1])
}

func TestDemapSaturates(t *testing.T) {
	// Outer constellation points map to full-scale soft values.
	var out [1]byte
	demap_axis(MOD_BPSK, 1.0, out[:])
	assert.Equal(t, SOFT_1, out[0])
	demap_axis(MOD_BPSK, -1.0, out[:])
	assert.Equal(t, SOFT_0, out[0])

	var out64 [3]byte
	demap_axis(MOD_QAM64, 7.0/math.Sqrt(42), out64[:])
	assert.Equal(t, SOFT_1, out64[0])

	// And noise scaling keeps the midpoint neutral.
	demap_axis(MOD_BPSK, 0.0, out[:])
	assert.InDelta(t, 128, int(out[0]), 1)
}

func TestMapPointGrayNeighbours(t *testing.T) {
	// Adjacent 16-QAM axis levels differ in exactly one input bit.
	var level = func(v int) float64 { return real(map_point(MOD_QAM16, v<<2)) / kmod[MOD_QAM16] }
	var byLevel = map[float64]int{}
	for v := range 4 {
		byLevel[level(v)] = v
	}
	for _, pair := range [][2]float64{{-3, -1}, {-1, 1}, {1, 3}} {
		var diff = byLevel[pair[0]] ^ byLevel[pair[1]]
		assert.Equal(t, 1, popcount(diff), "levels %v", pair)
	}
}

func popcount(x int) int {
	var n = 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}
