package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Convolutional encoder and puncturing,
 *		802.11-2007 17.3.5.5 / 17.3.5.6.
 *
 * Description:	The mother code is rate 1/2, constraint length 7, with
 *		generators 133/171 octal.  With the newest input bit at
 *		the bottom of the shift register those generators read
 *		0x6d and 0x4f.  For each input bit two output bits are
 *		emitted, A then B, both packed MSB first.
 *
 *		The higher rates discard selected mother bits.  Position
 *		p of the mother stream is kept iff pattern[p mod len]
 *		is nonzero.  Depuncturing reinserts erasure soft values
 *		at the discarded positions ahead of the Viterbi decoder.
 *
 *----------------------------------------------------------------*/

const CONV_POLY_A = 0x6d /* 133 octal, reversed. */
const CONV_POLY_B = 0x4f /* 171 octal, reversed. */
const CONV_K = 7

/*
 * Puncture patterns over interleaved A0 B0 A1 B1 ... positions.
 * r2/3 keeps 9 of every 12 mother bits, r3/4 keeps 12 of every 18.
 */

var puncture_pattern_r2_3 = [12]byte{1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0}
var puncture_pattern_r3_4 = [18]byte{1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1}

func puncture_pattern(coding coding_t) []byte {
	switch coding {
	case CODING_R2_3:
		return puncture_pattern_r2_3[:]
	case CODING_R3_4:
		return puncture_pattern_r3_4[:]
	}
	return nil
}

/*------------------------------------------------------------------
 *
 * Name:	conv_encode
 *
 * Purpose:	Run the r1/2 mother code over a packed bit buffer.
 *
 * Inputs:	in	- Packed input bits, MSB first.
 *		nbits	- Number of input bits.
 *
 * Returns:	Packed output, 2*nbits bits.
 *
 *----------------------------------------------------------------*/

func conv_encode(in []byte, nbits int) []byte {
	var out = make([]byte, bits_to_bytes(2*nbits))
	var reg = 0

	for n := range nbits {
		reg = ((reg << 1) | get_bit(in, n)) & 0x7f
		set_bit(out, 2*n, parity7(reg&CONV_POLY_A))
		set_bit(out, 2*n+1, parity7(reg&CONV_POLY_B))
	}

	return out
}

/*------------------------------------------------------------------
 *
 * Name:	puncture
 *
 * Purpose:	Discard mother bits per the coding rate's pattern.
 *
 * Inputs:	in	- Packed mother bits.
 *		nbits	- Number of mother bits.
 *		coding	- CODING_R1_2 (no-op), _R2_3 or _R3_4.
 *
 * Returns:	Packed surviving bits and their count.
 *
 *----------------------------------------------------------------*/

func puncture(in []byte, nbits int, coding coding_t) ([]byte, int) {
	var pat = puncture_pattern(coding)
	if pat == nil {
		return in, nbits
	}

	var out = make([]byte, bits_to_bytes(nbits)) /* Upper bound. */
	var kept = 0
	for n := range nbits {
		if pat[n%len(pat)] != 0 {
			set_bit(out, kept, get_bit(in, n))
			kept++
		}
	}

	return out[:bits_to_bytes(kept)], kept
}

/*------------------------------------------------------------------
 *
 * Name:	depuncture
 *
 * Purpose:	Reinsert erasures where the transmitter discarded bits.
 *
 * Inputs:	soft	- One soft value per surviving bit.
 *		coding	- Coding rate.
 *		n_mother - Number of mother-stream positions to rebuild.
 *
 * Returns:	n_mother soft values with SOFT_ERASURE at the punctured
 *		positions.
 *
 *----------------------------------------------------------------*/

func depuncture(soft []byte, coding coding_t, n_mother int) []byte {
	var pat = puncture_pattern(coding)
	if pat == nil {
		Assert(len(soft) >= n_mother)
		return soft[:n_mother]
	}

	var out = make([]byte, n_mother)
	var src = 0
	for n := range n_mother {
		if pat[n%len(pat)] != 0 {
			out[n] = soft[src]
			src++
		} else {
			out[n] = SOFT_ERASURE
		}
	}
	Assert(src <= len(soft))

	return out
}

// Mother-stream length for a coded (post-puncture) bit count.
func mother_bits_for_coded(coded int, coding coding_t) int {
	switch coding {
	case CODING_R2_3:
		return coded * 12 / 9
	case CODING_R3_4:
		return coded * 18 / 12
	}
	return coded
}
