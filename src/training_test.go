package wlan

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* Annex G Table G.3: the first period of the short training sequence
 * at the 1/64-IDFT amplitudes. */
var annex_g_s0 = [16]complex128{
	complex(0.046, 0.046), complex(-0.132, 0.002), complex(-0.013, -0.079), complex(0.143, -0.013),
	complex(0.092, 0.000), complex(0.143, -0.013), complex(-0.013, -0.079), complex(-0.132, 0.002),
	complex(0.046, 0.046), complex(0.002, -0.132), complex(-0.079, -0.013), complex(-0.013, 0.143),
	complex(0.000, 0.092), complex(-0.013, 0.143), complex(-0.079, -0.013), complex(0.002, -0.132),
}

/* Annex G Table G.5: the first samples of the long training symbol. */
var annex_g_s1_head = [8]complex128{
	complex(0.156, 0.000), complex(-0.005, -0.120), complex(0.040, -0.111), complex(0.097, 0.083),
	complex(0.021, 0.028), complex(0.060, -0.088), complex(-0.115, -0.055), complex(-0.038, -0.106),
}

func TestShortTrainingAnnexG(t *testing.T) {
	for n, want := range annex_g_s0 {
		assert.InDelta(t, real(want), real(s0_time[n]), 1e-3, "s0[%d] real", n)
		assert.InDelta(t, imag(want), imag(s0_time[n]), 1e-3, "s0[%d] imag", n)
	}
}

func TestLongTrainingAnnexG(t *testing.T) {
	for n, want := range annex_g_s1_head {
		assert.InDelta(t, real(want), real(s1_time[n]), 1e-3, "s1[%d] real", n)
		assert.InDelta(t, imag(want), imag(s1_time[n]), 1e-3, "s1[%d] imag", n)
	}
}

func TestShortTrainingPeriod16(t *testing.T) {
	for n := range s0_time {
		assert.InDelta(t, 0, cmplx.Abs(s0_time[n]-s0_time[(n+16)%NUM_SUBCARRIERS]), 1e-12, "sample %d", n)
	}
}

func TestTrainingBinOccupancy(t *testing.T) {
	assert.Len(t, s0_bins, 12)
	for _, k := range s0_bins {
		assert.Zero(t, k%4, "short training bin %d not a multiple of 4", k)
		assert.True(t, bin_is_active(k))
	}

	var active = 0
	for k := range NUM_SUBCARRIERS {
		if s1_freq[k] != 0 {
			active++
			assert.True(t, bin_is_active(k), "bin %d", k)
			assert.InDelta(t, 1.0, cmplx.Abs(s1_freq[k]), 1e-12)
		}
	}
	assert.Equal(t, 52, active)

	// Nulls where the grid says null.
	assert.Zero(t, s1_freq[0])
	for k := 27; k <= 37; k++ {
		assert.Zero(t, s1_freq[k])
		assert.Zero(t, s0_freq[k])
	}
}

func TestTrainingSymbolEnergy(t *testing.T) {
	// Both training symbols put total energy 52 on the grid, like
	// every data symbol.
	var e0, e1 float64
	for k := range NUM_SUBCARRIERS {
		e0 += real(s0_freq[k])*real(s0_freq[k]) + imag(s0_freq[k])*imag(s0_freq[k])
		e1 += real(s1_freq[k])*real(s1_freq[k]) + imag(s1_freq[k])*imag(s1_freq[k])
	}
	assert.InDelta(t, 52.0, e0, 1e-9)
	assert.InDelta(t, 52.0, e1, 1e-9)
}
