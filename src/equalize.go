package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Channel estimation and equalization.
 *
 * Description:	The long training repetitions give a per-bin estimate
 *		G[k] = X[k] * conj(S1[k]) / |S1[k]|^2, averaged over the
 *		two copies.  An optional least-squares polynomial fit
 *		across each cluster of bins (real and imaginary parts
 *		separately) knocks noise off the estimate.  Equalizing
 *		divides each bin by G[k]; a bin with |G| below the floor
 *		is flagged so the demapper can emit erasures instead of
 *		amplified garbage.
 *
 *----------------------------------------------------------------*/

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const EQUALIZER_GAIN_FLOOR = 1e-6

type equalizer_t struct {
	gain   [NUM_SUBCARRIERS]complex128
	erased [NUM_SUBCARRIERS]bool
}

/*------------------------------------------------------------------
 *
 * Name:	equalizer_estimate
 *
 * Purpose:	Build the channel estimate from the two long-training
 *		spectra.
 *
 * Inputs:	x1a, x1b - DFTs of the two long repetitions.
 *		order	 - Polynomial smoothing order, 0 disables,
 *			   2..4 supported.
 *
 *----------------------------------------------------------------*/

func equalizer_estimate(x1a []complex128, x1b []complex128, order int) *equalizer_t {
	var eq = new(equalizer_t)

	for k := range NUM_SUBCARRIERS {
		if !bin_is_active(k) {
			continue
		}
		/* |S1[k]|^2 is 1 on every active bin. */
		var g = (x1a[k]*cmplx.Conj(s1_freq[k]) + x1b[k]*cmplx.Conj(s1_freq[k])) / 2
		eq.gain[k] = g
	}

	if order >= 2 {
		smooth_cluster(&eq.gain, 1, 26, order)
		smooth_cluster(&eq.gain, 38, 63, order)
	}

	for k := range NUM_SUBCARRIERS {
		if bin_is_active(k) && cmplx.Abs(eq.gain[k]) < EQUALIZER_GAIN_FLOOR {
			eq.erased[k] = true
		}
	}

	return eq
}

// Least-squares polynomial fit over bins lo..hi inclusive, replacing
// the estimate with the fitted curve.  Real and imaginary parts are
// fit independently against the bin index.
func smooth_cluster(gain *[NUM_SUBCARRIERS]complex128, lo int, hi int, order int) {
	var n = hi - lo + 1
	if order >= n {
		return
	}

	var a = mat.NewDense(n, order+1, nil)
	var br = mat.NewVecDense(n, nil)
	var bi = mat.NewVecDense(n, nil)

	for i := range n {
		/* Centered abscissa keeps the Vandermonde well conditioned. */
		var x = (float64(i) - float64(n-1)/2) / float64(n)
		var p = 1.0
		for c := 0; c <= order; c++ {
			a.Set(i, c, p)
			p *= x
		}
		br.SetVec(i, real(gain[lo+i]))
		bi.SetVec(i, imag(gain[lo+i]))
	}

	var qr mat.QR
	qr.Factorize(a)

	var cr, ci mat.VecDense
	if qr.SolveVecTo(&cr, false, br) != nil || qr.SolveVecTo(&ci, false, bi) != nil {
		return /* Degenerate fit; keep the raw estimate. */
	}

	for i := range n {
		var x = (float64(i) - float64(n-1)/2) / float64(n)
		var p = 1.0
		var re, im float64
		for c := 0; c <= order; c++ {
			re += cr.AtVec(c) * p
			im += ci.AtVec(c) * p
			p *= x
		}
		gain[lo+i] = complex(re, im)
	}
}

// Equalize a symbol's spectrum in place.  Returns the erasure flags.
func (eq *equalizer_t) apply(bins []complex128) []bool {
	for k := range bins[:NUM_SUBCARRIERS] {
		if !bin_is_active(k) || eq.erased[k] {
			continue
		}
		bins[k] /= eq.gain[k]
	}
	return eq.erased[:]
}
