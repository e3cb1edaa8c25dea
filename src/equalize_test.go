package wlan

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualizerFlatChannel(t *testing.T) {
	var eq = equalizer_estimate(s1_freq[:], s1_freq[:], 0)

	for k := range NUM_SUBCARRIERS {
		if bin_is_active(k) {
			assert.InDelta(t, 0, cmplx.Abs(eq.gain[k]-1), 1e-12, "bin %d", k)
			assert.False(t, eq.erased[k])
		}
	}

	// Applying it leaves a spectrum untouched.
	var bins = make([]complex128, NUM_SUBCARRIERS)
	copy(bins, s1_freq[:])
	eq.apply(bins)
	for k := range NUM_SUBCARRIERS {
		assert.InDelta(t, 0, cmplx.Abs(bins[k]-s1_freq[k]), 1e-12)
	}
}

func TestEqualizerAveragesRepetitions(t *testing.T) {
	var x1a = make([]complex128, NUM_SUBCARRIERS)
	var x1b = make([]complex128, NUM_SUBCARRIERS)
	for k := range NUM_SUBCARRIERS {
		x1a[k] = s1_freq[k] * complex(2, 0)
		x1b[k] = s1_freq[k] * complex(4, 0)
	}

	var eq = equalizer_estimate(x1a, x1b, 0)
	for k := range NUM_SUBCARRIERS {
		if bin_is_active(k) {
			assert.InDelta(t, 0, cmplx.Abs(eq.gain[k]-3), 1e-12, "bin %d", k)
		}
	}
}

func TestEqualizerDeadBinErasure(t *testing.T) {
	var x = make([]complex128, NUM_SUBCARRIERS)
	copy(x, s1_freq[:])
	x[5] = 0 // A dead subcarrier.

	var eq = equalizer_estimate(x, x, 0)
	assert.True(t, eq.erased[5])
	assert.False(t, eq.erased[6])

	var bins = make([]complex128, NUM_SUBCARRIERS)
	bins[5] = complex(7, 0)
	eq.apply(bins)
	assert.Equal(t, complex(7, 0), bins[5], "erased bin passes through undivided")
}

func TestEqualizerPolynomialSmoothing(t *testing.T) {
	// A channel that is quadratic in the bin index within each cluster
	// is reproduced exactly by an order-2 fit.
	var gain = func(k int) complex128 {
		var u = float64(k)
		return complex(1+0.01*u-0.0002*u*u, 0.3-0.005*u)
	}

	var x1 = make([]complex128, NUM_SUBCARRIERS)
	for k := range NUM_SUBCARRIERS {
		x1[k] = s1_freq[k] * gain(k)
	}

	var eq = equalizer_estimate(x1, x1, 2)
	for k := range NUM_SUBCARRIERS {
		if bin_is_active(k) {
			require.InDelta(t, 0, cmplx.Abs(eq.gain[k]-gain(k)), 1e-9, "bin %d", k)
		}
	}
}

func TestEqualizerSmoothingKnocksOutNoise(t *testing.T) {
	// A single-bin glitch on an otherwise flat channel gets pulled
	// most of the way back by the cluster fit.
	var x1 = make([]complex128, NUM_SUBCARRIERS)
	copy(x1, s1_freq[:])
	x1[10] *= complex(3, 0)

	var eq = equalizer_estimate(x1, x1, 2)
	assert.Less(t, cmplx.Abs(eq.gain[10]-1), 1.0, "glitch reduced from 2.0 off nominal")
}
