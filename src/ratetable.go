package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Per-rate metadata for the eight 802.11a/g data rates.
 *
 * Description:	One immutable row per rate, indexed 0..7 in increasing
 *		speed.  Values are from 802.11-2007 Table 17-3 and the
 *		RATE nibble encodings from Table 17-6.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
)

const NUM_RATES = 8

type rate_descriptor_t struct {
	rate_mbps  int
	modulation modulation_t
	n_bpsc     int /* Coded bits per subcarrier. */
	coding     coding_t
	n_cbps     int /* Coded bits per OFDM symbol. */
	n_dbps     int /* Data bits per OFDM symbol. */

	signal_nibble byte /* R1..R4, R1 first on the air. */
}

var rate_table = [NUM_RATES]rate_descriptor_t{
	{6, MOD_BPSK, 1, CODING_R1_2, 48, 24, 0b1101},
	{9, MOD_BPSK, 1, CODING_R3_4, 48, 36, 0b1111},
	{12, MOD_QPSK, 2, CODING_R1_2, 96, 48, 0b0101},
	{18, MOD_QPSK, 2, CODING_R3_4, 96, 72, 0b0111},
	{24, MOD_QAM16, 4, CODING_R1_2, 192, 96, 0b1001},
	{36, MOD_QAM16, 4, CODING_R3_4, 192, 144, 0b1011},
	{48, MOD_QAM64, 6, CODING_R2_3, 288, 192, 0b0001},
	{54, MOD_QAM64, 6, CODING_R3_4, 288, 216, 0b0011},
}

func rate_valid(rate int) bool {
	return rate >= 0 && rate < NUM_RATES
}

// Reverse lookup from the SIGNAL field nibble.  Returns -1 for the
// eight impossible codes.
func rate_by_nibble(nibble byte) int {
	for i := range rate_table {
		if rate_table[i].signal_nibble == nibble {
			return i
		}
	}
	return -1
}

/*
 * Per-frame derived counts, 802.11-2007 17.3.5.3.
 *
 *	N_SYM  = ceil((16 + 8*length + 6) / N_DBPS)
 *	N_DATA = N_SYM * N_DBPS
 *	N_PAD  = N_DATA - (16 + 8*length + 6)
 */

func num_symbols(rate int, length int) int {
	var d = rate_table[rate].n_dbps
	return (SERVICE_BITS + 8*length + TAIL_BITS + d - 1) / d
}

func num_data_bits(rate int, length int) int {
	return num_symbols(rate, length) * rate_table[rate].n_dbps
}

func num_pad_bits(rate int, length int) int {
	return num_data_bits(rate, length) - SERVICE_BITS - 8*length - TAIL_BITS
}

func check_frame_params(rate int, length int) error {
	if !rate_valid(rate) {
		return fmt.Errorf("invalid rate index %d, want 0..%d", rate, NUM_RATES-1)
	}
	if length < MIN_PAYLOAD_LEN || length > MAX_PAYLOAD_LEN {
		return fmt.Errorf("invalid payload length %d, want %d..%d", length, MIN_PAYLOAD_LEN, MAX_PAYLOAD_LEN)
	}
	return nil
}
