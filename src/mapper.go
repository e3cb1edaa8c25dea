package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Subcarrier mapping, 802.11-2007 17.3.5.7 / 17.3.5.8.
 *
 * Description:	Forward: N_CBPS coded bits become 48 Gray-coded
 *		constellation points laid into the 64-bin frequency
 *		grid in subcarrier order +1..+26, -26..-1, skipping the
 *		four pilots.  The pilots carry {+1,+1,+1,-1} times the
 *		polarity bit for the symbol.  DC and the eleven guard
 *		bins stay zero.
 *
 *		Inverse: read the 48 data bins back in the same order
 *		and demap each axis into soft bits, 0..255 with 127
 *		meaning erasure.
 *
 *----------------------------------------------------------------*/

import (
	"math"
)

/* Normalization factors giving unit average symbol power, Table 17-10. */

var kmod = [4]float64{
	MOD_BPSK:  1.0,
	MOD_QPSK:  1.0 / math.Sqrt2,
	MOD_QAM16: 1.0 / math.Sqrt(10.0),
	MOD_QAM64: 1.0 / math.Sqrt(42.0),
}

/*
 * Gray-coded axis levels, input bits MSB first.
 * 16-QAM:  b0b1 -> -3 -1 +3 +1  (00 01 10 11)
 * 64-QAM:  b0b1b2 -> -7 -5 -1 -3 +7 +5 +1 +3
 */

var qam16_axis = [4]float64{-3, -1, 3, 1}
var qam64_axis = [8]float64{-7, -5, -1, -3, 7, 5, 1, 3}

/*
 * FFT bin layout.  Positive subcarriers 1..26 sit in bins 1..26,
 * negative -26..-1 in bins 38..63.  Pilots at -21,-7,+7,+21.
 */

var pilot_bins = [NUM_PILOT_CARRIERS]int{43, 57, 7, 21} /* -21, -7, +7, +21 */
var pilot_pattern = [NUM_PILOT_CARRIERS]float64{1, 1, 1, -1}

var data_carrier_bins [NUM_DATA_CARRIERS]int

func init() {
	var n = 0
	for sc := 1; sc <= 26; sc++ {
		if sc == 7 || sc == 21 {
			continue
		}
		data_carrier_bins[n] = sc
		n++
	}
	for sc := -26; sc <= -1; sc++ {
		if sc == -21 || sc == -7 {
			continue
		}
		data_carrier_bins[n] = sc + NUM_SUBCARRIERS
		n++
	}
	Assert(n == NUM_DATA_CARRIERS)
}

func axis_value(mod modulation_t, bits int) float64 {
	switch mod {
	case MOD_QAM16:
		return qam16_axis[bits]
	case MOD_QAM64:
		return qam64_axis[bits]
	}
	Assert(false)
	return 0
}

func map_point(mod modulation_t, bits int) complex128 {
	switch mod {
	case MOD_BPSK:
		return complex(float64(2*bits-1), 0)
	case MOD_QPSK:
		var i = float64(2*(bits>>1) - 1)
		var q = float64(2*(bits&1) - 1)
		return complex(i, q) * complex(kmod[MOD_QPSK], 0)
	case MOD_QAM16:
		return complex(axis_value(mod, bits>>2), axis_value(mod, bits&3)) * complex(kmod[MOD_QAM16], 0)
	case MOD_QAM64:
		return complex(axis_value(mod, bits>>3), axis_value(mod, bits&7)) * complex(kmod[MOD_QAM64], 0)
	}
	Assert(false)
	return 0
}

/*------------------------------------------------------------------
 *
 * Name:	map_symbol
 *
 * Purpose:	Fill the 64-bin grid for one OFDM symbol.
 *
 * Inputs:	rate	 - Rate index selecting modulation.
 *		bits	 - N_CBPS packed interleaved bits.
 *		polarity - Pilot polarity for this symbol, +1 or -1.
 *
 * Outputs:	grid	 - 64 frequency bins, DC and guards zeroed.
 *
 *----------------------------------------------------------------*/

func map_symbol(rate int, bits []byte, polarity int, grid []complex128) {
	var desc = &rate_table[rate]

	for k := range grid[:NUM_SUBCARRIERS] {
		grid[k] = 0
	}

	for n, bin := range data_carrier_bins {
		var v = 0
		for b := range desc.n_bpsc {
			v = (v << 1) | get_bit(bits, n*desc.n_bpsc+b)
		}
		grid[bin] = map_point(desc.modulation, v)
	}

	for p, bin := range pilot_bins {
		grid[bin] = complex(pilot_pattern[p]*float64(polarity), 0)
	}
}

/*
 * Soft demapping.  Each axis metric is scaled into 0..255 around the
 * 127/128 midpoint; saturation at the outer decision regions.
 */

func soft_clamp(u float64) byte {
	var v = math.Round(127.5 + 127.5*u)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// One axis of a constellation into n soft bits, most significant first.
func demap_axis(mod modulation_t, x float64, out []byte) {
	switch mod {
	case MOD_BPSK, MOD_QPSK:
		out[0] = soft_clamp(x / kmod[mod])
	case MOD_QAM16:
		var u = x / kmod[MOD_QAM16]
		out[0] = soft_clamp(u / 2.0)
		out[1] = soft_clamp((2.0 - math.Abs(u)) / 2.0)
	case MOD_QAM64:
		var u = x / kmod[MOD_QAM64]
		out[0] = soft_clamp(u / 4.0)
		out[1] = soft_clamp((4.0 - math.Abs(u)) / 4.0)
		out[2] = soft_clamp((2.0 - math.Abs(math.Abs(u)-4.0)) / 2.0)
	default:
		Assert(false)
	}
}

/*------------------------------------------------------------------
 *
 * Name:	demap_symbol
 *
 * Purpose:	Extract soft bits from an equalized symbol.
 *
 * Inputs:	rate	- Rate index.
 *		grid	- 64 equalized frequency bins.
 *		erased	- Per-bin erasure flags from the equalizer
 *			  (nil means no erasures).
 *
 * Outputs:	soft	- N_CBPS soft values, interleaved symbol order.
 *
 *----------------------------------------------------------------*/

func demap_symbol(rate int, grid []complex128, erased []bool, soft []byte) {
	var desc = &rate_table[rate]
	var half = desc.n_bpsc / 2

	for n, bin := range data_carrier_bins {
		var out = soft[n*desc.n_bpsc : (n+1)*desc.n_bpsc]

		if erased != nil && erased[bin] {
			for b := range out {
				out[b] = SOFT_ERASURE
			}
			continue
		}

		if desc.modulation == MOD_BPSK {
			demap_axis(MOD_BPSK, real(grid[bin]), out[:1])
			continue
		}
		demap_axis(desc.modulation, real(grid[bin]), out[:half])
		demap_axis(desc.modulation, imag(grid[bin]), out[half:])
	}
}
