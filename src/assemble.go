package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	DATA blob assembly and disassembly,
 *		802.11-2007 17.3.5.2 / 17.3.5.3.
 *
 * Description:	Transmit side lays out
 *
 *		  SERVICE (16 zero bits, first 7 are scrambler scratch)
 *		  payload bytes, MSB first
 *		  6 tail zeros
 *		  N_PAD pad zeros
 *
 *		scrambles the lot, then forces the six tail bits back
 *		to zero so the encoder still terminates in state 0.
 *
 *		Receive side synchronizes the descrambler from the
 *		first seven bits (all-zero plaintext there is mandated,
 *		which is what makes the seed recoverable), checks the
 *		nine reserved SERVICE bits, and slices the payload out.
 *
 *----------------------------------------------------------------*/

/*------------------------------------------------------------------
 *
 * Name:	assemble_data
 *
 * Purpose:	Build the scrambled N_DATA-bit DATA blob for a frame.
 *
 * Inputs:	rate	- Rate index.
 *		seed	- Scrambler seed, 1..127.
 *		payload	- 1..4095 bytes.
 *
 * Returns:	Packed N_DATA bits, ready for the convolutional
 *		encoder.
 *
 *----------------------------------------------------------------*/

func assemble_data(rate int, seed int, payload []byte) ([]byte, error) {
	if err := check_frame_params(rate, len(payload)); err != nil {
		return nil, err
	}

	var scr, err = scrambler_new(seed)
	if err != nil {
		return nil, err
	}

	var n_data = num_data_bits(rate, len(payload))
	var buf = make([]byte, bits_to_bytes(n_data))

	copy(buf[SERVICE_BITS/8:], payload)

	scr.scramble(buf, n_data)

	/* Tail bits return the encoder to state zero; re-zero them. */
	var tail_start = SERVICE_BITS + 8*len(payload)
	for b := range TAIL_BITS {
		set_bit(buf, tail_start+b, 0)
	}

	return buf, nil
}

/*------------------------------------------------------------------
 *
 * Name:	disassemble_data
 *
 * Purpose:	Descramble a decoded DATA blob and slice the payload.
 *
 * Inputs:	buf	- Packed N_DATA bits out of the Viterbi
 *			  decoder.  Descrambled in place.
 *		length	- Declared payload length from SIGNAL.
 *
 * Returns:	Payload bytes (aliasing buf), the transmitter's
 *		scrambler seed, and whether the SERVICE field checks
 *		out.  The payload is delivered either way; the flag
 *		feeds the callback's validity bit.
 *
 *----------------------------------------------------------------*/

func disassemble_data(buf []byte, length int) ([]byte, int, bool) {
	var n_bits = len(buf) * 8
	Assert(n_bits >= SERVICE_BITS+8*length+TAIL_BITS)

	var first7 [7]int
	for b := range first7 {
		first7[b] = get_bit(buf, b)
	}

	var scr, seed = scrambler_sync(first7)

	/* Bits 0..6 are the generator's own output; plaintext is zero.
	 * The synchronized generator takes over from bit 7. */
	for b := range 7 {
		set_bit(buf, b, 0)
	}
	for n := 7; n < n_bits; n++ {
		if scr.next_bit() != 0 {
			buf[n>>3] ^= 0x80 >> uint(n&7)
		}
	}

	var service_ok = true
	for b := 7; b < SERVICE_BITS; b++ {
		if get_bit(buf, b) != 0 {
			service_ok = false
		}
	}

	return buf[SERVICE_BITS/8 : SERVICE_BITS/8+length], seed, service_ok
}
