package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Transmit framing: payload bytes to a baseband sample
 *		stream, 802.11-2007 17.3.2 / 17.3.7 and Annex G.
 *
 * Description:	Every frame is
 *
 *		  10 x 16-sample short training repetitions  (160)
 *		  32-sample guard + 2 x 64 long training     (160)
 *		  SIGNAL symbol                              (80)
 *		  N_SYM DATA symbols                         (80 each)
 *
 *		plus P trailing ramp-down samples.  Adjacent symbols
 *		overlap by the post-fix length P (default 1) under a
 *		raised-cosine ramp, so each symbol is rendered P samples
 *		longer than nominal and overlap-added into the stream.  The
 *		first sample of the frame ramps up from zero, which is
 *		what puts the halved first sample in Annex G Table G.4.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"math"
)

/*
 * Every symbol of a frame puts total energy 52 into its 64 bins, so
 * with the 1/N inverse transform the stream carries mean sample power
 * 52/4096 at the Annex G amplitudes.  Multiplying by this gain gives
 * the unit-average-power stream the sample interface is specified in.
 */

var frame_unit_gain = math.Sqrt(4096.0 / 52.0)

type framegen_t struct {
	rate   int
	seed   int
	window int /* Post-fix ramp length P. */

	dft dft_t

	ramp []float64 /* Ramp-up weights, length P. */
}

/*------------------------------------------------------------------
 *
 * Name:	framegen_new
 *
 * Purpose:	Build a frame generator for one rate / seed.
 *
 * Inputs:	rate	- Rate index 0..7.
 *		seed	- Scrambler seed 1..127.
 *		window	- Post-fix length P >= 1; the standard
 *			  recommends 1.
 *		dft	- Transform provider; nil binds the built-in.
 *
 *----------------------------------------------------------------*/

func framegen_new(rate int, seed int, window int, dft dft_t) (*framegen_t, error) {
	if !rate_valid(rate) {
		return nil, fmt.Errorf("invalid rate index %d", rate)
	}
	if seed < 1 || seed > SCRAMBLER_STATE_MASK {
		return nil, fmt.Errorf("invalid scrambler seed %d", seed)
	}
	if window < 1 || window > CP_LEN {
		return nil, fmt.Errorf("invalid post-fix length %d", window)
	}
	if dft == nil {
		dft = dft_new()
	}

	var fg = &framegen_t{rate: rate, seed: seed, window: window, dft: dft}

	fg.ramp = make([]float64, window)
	for i := range fg.ramp {
		var x = math.Sin(math.Pi / 2 * (float64(i) + 0.5) / float64(window))
		fg.ramp[i] = x * x
	}

	return fg, nil
}

// Total samples Generate will produce for a payload length.
func frame_num_samples(rate int, length int, window int) int {
	return PREAMBLE_LEN + SYMBOL_LEN*(1+num_symbols(rate, length)) + window
}

/*------------------------------------------------------------------
 *
 * Name:	Generate
 *
 * Purpose:	Render one complete frame.
 *
 * Inputs:	payload	- 1..4095 bytes.
 *
 * Returns:	The sample stream at the Annex G amplitudes (mean
 *		power 52/4096), 20 Msample/s.  Multiply by
 *		frame_unit_gain for unit signal power.
 *
 *----------------------------------------------------------------*/

func (fg *framegen_t) Generate(payload []byte) ([]complex128, error) {
	if err := check_frame_params(fg.rate, len(payload)); err != nil {
		return nil, err
	}

	var n_sym = num_symbols(fg.rate, len(payload))
	var out = make([]complex128, frame_num_samples(fg.rate, len(payload), fg.window))

	/* Short training: the 16-sample pattern is just s0 observed
	 * periodically, so index mod 64 covers all ten repetitions. */
	var short_sym = make([]complex128, SHORT_PREAMBLE_LEN+fg.window)
	for t := range short_sym {
		short_sym[t] = s0_time[t%NUM_SUBCARRIERS]
	}
	fg.emit(out, 0, short_sym)

	/* Long training: doubled guard is the tail of s1. */
	var long_sym = make([]complex128, LONG_PREAMBLE_LEN+fg.window)
	for t := range long_sym {
		long_sym[t] = s1_time[(NUM_SUBCARRIERS-LONG_GUARD_LEN+t)%NUM_SUBCARRIERS]
	}
	fg.emit(out, SHORT_PREAMBLE_LEN, long_sym)

	/* SIGNAL, always BPSK r1/2 with the 48-bit interleaver. */
	var sigbits, sigErr = signal_encode(fg.rate, len(payload))
	if sigErr != nil {
		return nil, sigErr
	}

	var grid = make([]complex128, NUM_SUBCARRIERS)
	map_symbol(0, sigbits, pilot_polarity(0), grid)
	fg.emit(out, PREAMBLE_LEN, fg.render_symbol(grid))

	/* DATA. */
	var blob, asmErr = assemble_data(fg.rate, fg.seed, payload)
	if asmErr != nil {
		return nil, asmErr
	}

	var desc = &rate_table[fg.rate]
	var n_data = num_data_bits(fg.rate, len(payload))
	var mother = conv_encode(blob, n_data)
	var coded, n_coded = puncture(mother, 2*n_data, desc.coding)
	Assertf(n_coded == n_sym*desc.n_cbps, "coded bit accounting: %d != %d*%d", n_coded, n_sym, desc.n_cbps)

	var tbl = interleaver_tables[fg.rate]
	var il = make([]byte, bits_to_bytes(desc.n_cbps))

	for i := range n_sym {
		/* N_CBPS is always a multiple of 8, so symbols slice on
		 * byte boundaries. */
		var chunk = coded[i*desc.n_cbps/8 : (i+1)*desc.n_cbps/8]
		tbl.interleave(chunk, il)
		map_symbol(fg.rate, il, pilot_polarity(1+i), grid)
		fg.emit(out, PREAMBLE_LEN+SYMBOL_LEN*(1+i), fg.render_symbol(grid))
	}

	return out, nil
}

// One OFDM symbol in the time domain: cyclic prefix, body, and P
// continuation samples for the ramp-down.
func (fg *framegen_t) render_symbol(grid []complex128) []complex128 {
	var body = fg.dft.Inverse(grid)

	var sym = make([]complex128, SYMBOL_LEN+fg.window)
	for t := range sym {
		sym[t] = body[(NUM_SUBCARRIERS-CP_LEN+t)%NUM_SUBCARRIERS]
	}
	return sym
}

// Overlap-add a rendered symbol at stream position pos.  The last P
// samples of the previous symbol and the first P of this one share
// positions under complementary ramps.
func (fg *framegen_t) emit(out []complex128, pos int, sym []complex128) {
	var p = fg.window
	var body_len = len(sym) - p

	for i, x := range sym {
		var w = 1.0
		if i < p {
			w = fg.ramp[i]
		} else if i >= body_len {
			w = 1.0 - fg.ramp[i-body_len]
		}
		out[pos+i] += x * complex(w, 0)
	}
}
