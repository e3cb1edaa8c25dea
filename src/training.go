package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	PLCP training sequences, 802.11-2007 17.3.3.
 *
 * Description:	S0 is the short training symbol: energy on twelve bins
 *		spaced four apart, giving a time image with exact period
 *		16.  Ten repetitions of that 16-sample pattern open
 *		every frame.  S1 is the long training symbol with +-1 on
 *		all 52 active bins; two 64-sample repetitions behind a
 *		doubled guard provide the channel and fine CFO
 *		estimates.
 *
 *		Frequency tables are spelled out from the standard; the
 *		time images are rendered once at load through the
 *		built-in transform.
 *
 *----------------------------------------------------------------*/

import (
	"math"
)

/* Short training: subcarrier -> multiplier of sqrt(13/6)*(1+j). */

var short_training_sc = map[int]float64{
	-24: 1, -20: -1, -16: 1, -12: -1, -8: -1, -4: 1,
	4: -1, 8: -1, 12: 1, 16: 1, 20: 1, 24: 1,
}

/* Long training: +-1 on subcarriers -26..-1, 1..26. */

var long_training_neg = [26]float64{
	1, 1, -1, -1, 1, 1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, -1, -1, 1, 1, -1, 1, -1, 1, 1, 1, 1,
}

var long_training_pos = [26]float64{
	1, -1, -1, 1, 1, -1, 1, -1, 1, -1, -1, -1, -1,
	-1, 1, 1, -1, -1, 1, -1, 1, -1, 1, 1, 1, 1,
}

var s0_freq [NUM_SUBCARRIERS]complex128 /* Short training, FFT bin order. */
var s1_freq [NUM_SUBCARRIERS]complex128 /* Long training, FFT bin order. */

var s0_time [NUM_SUBCARRIERS]complex128
var s1_time [NUM_SUBCARRIERS]complex128

/* The twelve occupied short-training bins, ascending FFT index. */
var s0_bins []int

func init() {
	var scale = math.Sqrt(13.0 / 6.0)
	for sc, v := range short_training_sc {
		s0_freq[(sc+NUM_SUBCARRIERS)%NUM_SUBCARRIERS] = complex(scale*v, scale*v)
	}
	for k := range NUM_SUBCARRIERS {
		if s0_freq[k] != 0 {
			s0_bins = append(s0_bins, k)
		}
	}

	for i := range long_training_neg {
		s1_freq[(i-26+NUM_SUBCARRIERS)%NUM_SUBCARRIERS] = complex(long_training_neg[i], 0)
	}
	for i := range long_training_pos {
		s1_freq[i+1] = complex(long_training_pos[i], 0)
	}

	var dft = dft_new()
	copy(s0_time[:], dft.Inverse(s0_freq[:]))
	copy(s1_time[:], dft.Inverse(s1_freq[:]))
}

// Whether an FFT index carries data or a pilot; false for the DC and
// guard (null) bins.
func bin_is_active(k int) bool {
	if k == 0 {
		return false
	}
	if k >= 27 && k <= 37 {
		return false
	}
	return true
}
