package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Pilot polarity sequence, 802.11-2007 17.3.5.9.
 *
 * Description:	The same x^7+x^4+1 generator as the data scrambler,
 *		seeded with all ones, produces a 127-bit maximal-length
 *		sequence.  Mapped to +-1 (output bit 1 -> -1) it flips
 *		the pilot pattern once per OFDM symbol, starting with
 *		the SIGNAL symbol, to keep spectral lines down.
 *
 *----------------------------------------------------------------*/

const POLARITY_LEN = 127
const POLARITY_SEED = 0x7f

var polarity_sequence [POLARITY_LEN]int

func init() {
	var s, err = scrambler_new(POLARITY_SEED)
	Assert(err == nil)

	for n := range polarity_sequence {
		polarity_sequence[n] = 1 - 2*s.next_bit()
	}
}

// Polarity for OFDM symbol n of a frame, n = 0 for SIGNAL.
func pilot_polarity(n int) int {
	return polarity_sequence[n%POLARITY_LEN]
}
