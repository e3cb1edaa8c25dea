package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	SIGNAL field codec, 802.11-2007 17.3.4.
 *
 * Description:	24 bits transmitted MSB first as one BPSK r1/2 symbol:
 *
 *		  bits 0..3   RATE nibble R1..R4
 *		  bit  4      reserved, zero
 *		  bits 5..16  LENGTH, LSB first
 *		  bit  17     even parity over bits 0..16
 *		  bits 18..23 tail, zero
 *
 *		The field takes the mother code with no puncturing and
 *		the 48-bit BPSK interleaver, never the DATA rate's.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
)

/*------------------------------------------------------------------
 *
 * Name:	signal_fields
 *
 * Purpose:	Lay out the 24 SIGNAL bits for a frame.
 *
 * Returns:	Packed 24 bits (3 bytes), air order.
 *
 *----------------------------------------------------------------*/

func signal_fields(rate int, length int) ([]byte, error) {
	if err := check_frame_params(rate, length); err != nil {
		return nil, err
	}

	var bits = make([]byte, bits_to_bytes(SIGNAL_BITS))

	var nibble = rate_table[rate].signal_nibble
	for b := range 4 {
		set_bit(bits, b, int(nibble>>(3-uint(b)))&1)
	}

	for b := range 12 {
		set_bit(bits, 5+b, (length>>uint(b))&1)
	}

	var parity = 0
	for b := range 17 {
		parity ^= get_bit(bits, b)
	}
	set_bit(bits, 17, parity)

	return bits, nil
}

/*------------------------------------------------------------------
 *
 * Name:	signal_encode
 *
 * Purpose:	SIGNAL bits through the r1/2 code and the 48-bit
 *		interleaver, ready for BPSK mapping.
 *
 * Returns:	48 packed coded-and-interleaved bits (6 bytes).
 *
 *----------------------------------------------------------------*/

func signal_encode(rate int, length int) ([]byte, error) {
	var bits, err = signal_fields(rate, length)
	if err != nil {
		return nil, err
	}

	var coded = conv_encode(bits, SIGNAL_BITS)

	var out = make([]byte, bits_to_bytes(SIGNAL_CODED_BITS))
	interleaver_tables[0].interleave(coded, out) /* Rate 0 is the BPSK table. */

	return out, nil
}

/*------------------------------------------------------------------
 *
 * Name:	signal_decode
 *
 * Purpose:	Validate and unpack a decoded 24-bit SIGNAL field.
 *
 * Inputs:	bits	- Packed 24 bits out of the Viterbi decoder.
 *
 * Returns:	Rate index, payload length, or an error describing why
 *		the frame must be abandoned.
 *
 *----------------------------------------------------------------*/

func signal_decode(bits []byte) (int, int, error) {
	var nibble byte
	for b := range 4 {
		nibble = nibble<<1 | byte(get_bit(bits, b))
	}

	var rate = rate_by_nibble(nibble)
	if rate < 0 {
		return 0, 0, fmt.Errorf("impossible RATE nibble %04b", nibble)
	}

	if get_bit(bits, 4) != 0 {
		return 0, 0, fmt.Errorf("reserved SIGNAL bit set")
	}

	var length = 0
	for b := range 12 {
		length |= get_bit(bits, 5+b) << uint(b)
	}
	if length < MIN_PAYLOAD_LEN || length > MAX_PAYLOAD_LEN {
		return 0, 0, fmt.Errorf("LENGTH %d out of range", length)
	}

	var parity = 0
	for b := range 18 {
		parity ^= get_bit(bits, b)
	}
	if parity != 0 {
		return 0, 0, fmt.Errorf("SIGNAL parity check failed")
	}

	for b := 18; b < SIGNAL_BITS; b++ {
		if get_bit(bits, b) != 0 {
			return 0, 0, fmt.Errorf("nonzero SIGNAL tail")
		}
	}

	return rate, length, nil
}
