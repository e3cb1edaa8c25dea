package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Numerically controlled oscillator for receive mixdown.
 *
 * Description:	Injected capability with a phase-accumulator fallback,
 *		the same scheme the tone generator in Dire Wolf uses,
 *		just in radians instead of 32-bit ticks.  The
 *		synchronizer runs it continuously outside of PLCP seek
 *		and bumps the frequency as CFO estimates refine.
 *
 *----------------------------------------------------------------*/

import (
	"math"
	"math/cmplx"
)

type nco_t interface {
	MixDown(x complex128) complex128
	Frequency() float64
	SetFrequency(radPerSample float64)
	AdjustFrequency(deltaRadPerSample float64)
	Reset()
}

type phase_nco_t struct {
	phase float64
	freq  float64
}

func nco_new() nco_t { //nolint:ireturn
	return new(phase_nco_t)
}

func (n *phase_nco_t) MixDown(x complex128) complex128 {
	var y = x * cmplx.Exp(complex(0, -n.phase))
	n.phase += n.freq
	if n.phase > math.Pi {
		n.phase -= 2 * math.Pi
	} else if n.phase < -math.Pi {
		n.phase += 2 * math.Pi
	}
	return y
}

func (n *phase_nco_t) Frequency() float64 {
	return n.freq
}

func (n *phase_nco_t) SetFrequency(f float64) {
	n.freq = f
}

func (n *phase_nco_t) AdjustFrequency(df float64) {
	n.freq += df
}

func (n *phase_nco_t) Reset() {
	n.phase = 0
	n.freq = 0
}
