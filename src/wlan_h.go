package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Constants and shared types for the 802.11a/g OFDM
 *		baseband PHY.
 *
 * Description:	Everything here is fixed by IEEE 802.11-2007 Clause 17.
 *		The modem operates on 64-carrier OFDM symbols of 80
 *		time-domain samples (16-sample cyclic prefix + 64-sample
 *		body) at a nominal 20 Msample/s.
 *
 *----------------------------------------------------------------*/

const NUM_SUBCARRIERS = 64 /* FFT size and symbol body length. */
const CP_LEN = 16          /* Cyclic prefix samples per symbol. */
const SYMBOL_LEN = 80      /* CP_LEN + NUM_SUBCARRIERS. */

const NUM_DATA_CARRIERS = 48
const NUM_PILOT_CARRIERS = 4

const SHORT_PREAMBLE_LEN = 160 /* 10 repetitions of the 16-sample pattern. */
const LONG_PREAMBLE_LEN = 160  /* 32-sample guard + two 64-sample repetitions. */
const LONG_GUARD_LEN = 32
const PREAMBLE_LEN = SHORT_PREAMBLE_LEN + LONG_PREAMBLE_LEN

const SERVICE_BITS = 16 /* Prepended to the payload; first 7 carry the scrambler seed. */
const TAIL_BITS = 6     /* Zero tail returning the encoder to state 0. */

const MIN_PAYLOAD_LEN = 1
const MAX_PAYLOAD_LEN = 4095 /* 12-bit LENGTH field. */

const SIGNAL_BITS = 24       /* RATE | reserved | LENGTH | parity | tail. */
const SIGNAL_CODED_BITS = 48 /* After the r1/2 mother code, no puncturing. */

/*
 * Soft bit convention used throughout the receive path.
 * The demapper, depuncturer and Viterbi decoder all speak this code.
 */

const SOFT_0 byte = 0
const SOFT_ERASURE byte = 127
const SOFT_1 byte = 255

type modulation_t int

const (
	MOD_BPSK modulation_t = iota
	MOD_QPSK
	MOD_QAM16
	MOD_QAM64
)

func (m modulation_t) String() string {
	switch m {
	case MOD_BPSK:
		return "BPSK"
	case MOD_QPSK:
		return "QPSK"
	case MOD_QAM16:
		return "16-QAM"
	case MOD_QAM64:
		return "64-QAM"
	}
	return "?"
}

type coding_t int

const (
	CODING_R1_2 coding_t = iota
	CODING_R2_3
	CODING_R3_4
)

func (c coding_t) String() string {
	switch c {
	case CODING_R1_2:
		return "1/2"
	case CODING_R2_3:
		return "2/3"
	case CODING_R3_4:
		return "3/4"
	}
	return "?"
}

/*
 * Upper layer callback for a completed frame.
 * The payload buffer is borrowed for the duration of the call.
 */

type frame_callback_t func(rate int, length int, payload []byte, valid bool)
