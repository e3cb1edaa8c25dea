package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	64-point transform capability.
 *
 * Description:	The PHY core never computes a transform itself; it
 *		calls through this interface so the host can bind an
 *		optimized native FFT.  The built-in binding wraps
 *		go-dsp.  Forward is unscaled, inverse carries the 1/N
 *		factor, matching the usual engineering convention and
 *		the Annex G amplitudes.
 *
 *----------------------------------------------------------------*/

import (
	"github.com/mjibson/go-dsp/fft"
)

type dft_t interface {
	Forward(in []complex128) []complex128
	Inverse(in []complex128) []complex128
}

type godsp_dft_t struct{}

func dft_new() dft_t { //nolint:ireturn
	return godsp_dft_t{}
}

func (godsp_dft_t) Forward(in []complex128) []complex128 {
	return fft.FFT(in)
}

func (godsp_dft_t) Inverse(in []complex128) []complex128 {
	return fft.IFFT(in)
}
