package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Receive framing: complex baseband samples in, decoded
 *		frames out.
 *
 * Description:	A sample-driven state machine.
 *
 *		SEEK_PLCP  - every 64 samples, test the buffered window
 *			     for the short training signature.
 *		RX_SHORT0  - one more 16-sample training period;
 *		RX_SHORT1    refine gain and CFO each time.
 *		RX_LONG0   - hunt the end of the first long-training
 *			     repetition by direct correlation with s1.
 *		RX_LONG1   - second repetition: fine CFO and the
 *			     channel estimate.
 *		RX_SIGNAL  - decode and validate the SIGNAL field.
 *		RX_DATA    - N_SYM symbols, then the bit pipeline in
 *			     reverse and the upper-layer callback.
 *
 *		Per-state payloads live in their own structs below and
 *		the per-sample dispatch is a switch, so adding a state
 *		means adding a case, not a subclass.
 *
 *		Everything downstream of SEEK_PLCP sees samples through
 *		the NCO mixdown.  Any validation failure silently
 *		returns to SEEK_PLCP; the sample path itself never
 *		fails.
 *
 *----------------------------------------------------------------*/

import (
	"math"
	"math/cmplx"
)

type framesync_state_t int

const (
	STATE_SEEK_PLCP framesync_state_t = iota
	STATE_RX_SHORT0
	STATE_RX_SHORT1
	STATE_RX_LONG0
	STATE_RX_LONG1
	STATE_RX_SIGNAL
	STATE_RX_DATA
)

const SEEK_INTERVAL = 64
const SHORT_STEP = 16 /* One short-training period per refinement. */

/* The long hunt must cover the span from the earliest possible detect
 * to the end of the first repetition, with margin. */
const LONG_SEARCH_LIMIT = 352
const LONG_CORR_THRESHOLD = 0.5
const LONG_PEAK_SETTLE = 4

const DEFAULT_DETECT_THRESHOLD = 0.5
const DEFAULT_SQUELCH_FLOOR = 1e-6 /* -60 dBFS mean square. */

type framesync_opts_t struct {
	Callback frame_callback_t

	DFT     dft_t      /* nil: built-in go-dsp binding. */
	Viterbi viterbi_t  /* nil: built-in decoder. */
	NCO     nco_t      /* nil: built-in phase accumulator. */

	DetectThreshold float64 /* 0: default. */
	SquelchFloor    float64 /* 0: default. */
	SmoothingOrder  int     /* 0 off, 2..4 polynomial fit. */
}

/* Per-state payloads. */

type seek_state_t struct {
	countdown int
}

type short_state_t struct {
	wait int
	g0   [NUM_SUBCARRIERS]complex128 /* Latest short-training gain. */
}

type long_state_t struct {
	timeout    int
	locked     bool
	best       float64
	best_count uint64
	window     [NUM_SUBCARRIERS]complex128 /* Ring snapshot at the peak. */
	x1a        []complex128                /* Spectrum of repetition one. */
	due        uint64                      /* Sample count ending repetition two. */
}

type data_state_t struct {
	rate   int
	length int
	n_sym  int
	n_data int

	sym      int    /* DATA symbols consumed. */
	due      uint64 /* Sample count ending the next symbol body. */
	soft     []byte /* De-interleaved coded soft bits, whole frame. */
	soft_pos int
}

type framesync_t struct {
	opts framesync_opts_t

	state framesync_state_t
	ring  *sample_ring_t

	seek seek_state_t
	shrt short_state_t
	long long_state_t
	data data_state_t

	eq *equalizer_t

	s1_energy float64

	win  [NUM_SUBCARRIERS]complex128 /* Scratch window. */
	wide [SYMBOL_LEN]complex128      /* Scratch full-ring window. */
}

func framesync_new(opts framesync_opts_t) *framesync_t {
	Assert(opts.Callback != nil)

	if opts.DFT == nil {
		opts.DFT = dft_new()
	}
	if opts.Viterbi == nil {
		opts.Viterbi = viterbi_new()
	}
	if opts.NCO == nil {
		opts.NCO = nco_new()
	}
	if opts.DetectThreshold == 0 {
		opts.DetectThreshold = DEFAULT_DETECT_THRESHOLD
	}
	if opts.SquelchFloor == 0 {
		opts.SquelchFloor = DEFAULT_SQUELCH_FLOOR
	}

	var fs = &framesync_t{
		opts: opts,
		ring: sample_ring_new(SYMBOL_LEN),
	}

	for _, x := range s1_time {
		fs.s1_energy += real(x)*real(x) + imag(x)*imag(x)
	}

	fs.enter_seek()
	return fs
}

/*------------------------------------------------------------------
 *
 * Name:	Push
 *
 * Purpose:	Feed baseband samples, any block size.
 *
 * Description:	Each sample is mixed down (outside of PLCP seek),
 *		buffered, and run through the state dispatch
 *		individually.  The state transitions are strictly
 *		per-sample; block size has no effect on behavior.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) Push(samples []complex128) {
	for _, x := range samples {
		if fs.state != STATE_SEEK_PLCP {
			x = fs.opts.NCO.MixDown(x)
		}
		fs.ring.push(x)

		switch fs.state {
		case STATE_SEEK_PLCP:
			fs.step_seek()
		case STATE_RX_SHORT0, STATE_RX_SHORT1:
			fs.step_short()
		case STATE_RX_LONG0:
			fs.step_long_hunt()
		case STATE_RX_LONG1:
			fs.step_long_second()
		case STATE_RX_SIGNAL:
			fs.step_signal()
		case STATE_RX_DATA:
			fs.step_data()
		default:
			Assert(false)
		}
	}
}

// Abandon whatever is in progress and go back to hunting.  No
// callback for a discarded frame.
func (fs *framesync_t) Reset() {
	fs.ring.reset()
	fs.enter_seek()
}

func (fs *framesync_t) enter_seek() {
	fs.state = STATE_SEEK_PLCP
	fs.seek.countdown = SEEK_INTERVAL
	fs.long = long_state_t{}
	fs.data = data_state_t{}
	fs.eq = nil
	fs.opts.NCO.Reset()
}

/*------------------------------------------------------------------
 *
 * SEEK_PLCP.  Every 64 samples: window the last 64, correlate the
 * twelve short-training bins pairwise around their circle.  For a
 * window anywhere inside the short sequence the normalized magnitude
 * is at least ~0.67 regardless of timing offset; for noise it hovers
 * near 1/sqrt(#bins).
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_seek() {
	fs.seek.countdown--
	if fs.seek.countdown > 0 {
		return
	}
	fs.seek.countdown = SEEK_INTERVAL

	if !fs.ring.full() {
		return
	}

	fs.ring.last(SYMBOL_LEN, fs.wide[:])
	copy(fs.win[:], fs.wide[CP_LEN:])

	var energy float64
	for _, x := range fs.win {
		energy += real(x)*real(x) + imag(x)*imag(x)
	}
	energy /= NUM_SUBCARRIERS
	if energy < fs.opts.SquelchFloor {
		return
	}

	var g0 = fs.short_gain(fs.win[:])

	var s_hat complex128
	var denom float64
	for i, k := range s0_bins {
		var next = s0_bins[(i+1)%len(s0_bins)]
		s_hat += g0[next] * cmplx.Conj(g0[k])
		denom += real(g0[k])*real(g0[k]) + imag(g0[k])*imag(g0[k])
	}
	if denom <= 0 {
		return
	}

	if cmplx.Abs(s_hat)/denom < fs.opts.DetectThreshold {
		return
	}

	/*
	 * Power-normalized delay-16 autocorrelation across the full
	 * 80-sample buffer: ~1 inside the short sequence, ~1/8 on noise.
	 * The bin-pair statistic alone false-alarms a few percent of the
	 * time on noise; this gate does not.  Its phase is the coarse
	 * CFO.
	 */
	var ac complex128
	var power float64
	for n := CP_LEN; n < SYMBOL_LEN; n++ {
		ac += fs.wide[n] * cmplx.Conj(fs.wide[n-CP_LEN])
		power += real(fs.wide[n])*real(fs.wide[n]) + imag(fs.wide[n])*imag(fs.wide[n])
	}
	if cmplx.Abs(ac)/power < fs.opts.DetectThreshold {
		return
	}

	fs.opts.NCO.Reset()
	fs.opts.NCO.SetFrequency(cmplx.Phase(ac) / CP_LEN)

	fs.shrt.g0 = g0
	fs.shrt.wait = SHORT_STEP
	fs.state = STATE_RX_SHORT0
}

// Per-bin short-training gain of a 64-sample window.
func (fs *framesync_t) short_gain(w []complex128) [NUM_SUBCARRIERS]complex128 {
	var g [NUM_SUBCARRIERS]complex128
	var x = fs.opts.DFT.Forward(w)
	var scale = complex(math.Sqrt(float64(len(s0_bins)))/NUM_SUBCARRIERS, 0)

	for _, k := range s0_bins {
		g[k] = x[k] * cmplx.Conj(s0_freq[k]) * scale
	}
	return g
}

/*------------------------------------------------------------------
 *
 * RX_SHORT0 / RX_SHORT1.  One more 16-sample training period each.
 * Every occupied short bin index is a multiple of four, so advancing
 * the window a whole period adds no per-bin phase and the pairwise
 * product of consecutive gain estimates reads the residual CFO
 * directly.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_short() {
	fs.shrt.wait--
	if fs.shrt.wait > 0 {
		return
	}

	fs.ring.last(NUM_SUBCARRIERS, fs.win[:])
	var g0b = fs.short_gain(fs.win[:])

	var dot complex128
	for _, k := range s0_bins {
		dot += g0b[k] * cmplx.Conj(fs.shrt.g0[k])
	}
	fs.opts.NCO.AdjustFrequency(cmplx.Phase(dot) / SHORT_STEP)

	fs.shrt.g0 = g0b

	if fs.state == STATE_RX_SHORT0 {
		fs.shrt.wait = SHORT_STEP
		fs.state = STATE_RX_SHORT1
		return
	}

	fs.long = long_state_t{timeout: LONG_SEARCH_LIMIT}
	fs.state = STATE_RX_LONG0
}

/*------------------------------------------------------------------
 *
 * RX_LONG0.  The detection instant lands anywhere inside the short
 * sequence, so symbol timing cannot be dead-reckoned from it.
 * Instead, slide sample by sample and correlate the window against
 * the known long-training body; the peak marks the end of the first
 * repetition exactly.  A bounded hunt; no match sends us back to
 * SEEK_PLCP.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_long_hunt() {
	fs.long.timeout--
	if fs.long.timeout <= 0 {
		fs.enter_seek()
		return
	}

	fs.ring.last(NUM_SUBCARRIERS, fs.win[:])

	var xc complex128
	var e float64
	for n, x := range fs.win {
		xc += x * cmplx.Conj(s1_time[n])
		e += real(x)*real(x) + imag(x)*imag(x)
	}
	if e <= 0 {
		return
	}

	var m = real(xc)*real(xc) + imag(xc)*imag(xc)
	m /= e * fs.s1_energy

	if m > LONG_CORR_THRESHOLD && m > fs.long.best {
		fs.long.locked = true
		fs.long.best = m
		fs.long.best_count = fs.ring.count
		fs.long.window = fs.win
	}

	if fs.long.locked && fs.ring.count >= fs.long.best_count+LONG_PEAK_SETTLE {
		fs.long.x1a = fs.opts.DFT.Forward(fs.long.window[:])
		fs.long.due = fs.long.best_count + NUM_SUBCARRIERS
		fs.state = STATE_RX_LONG1
	}
}

/*------------------------------------------------------------------
 *
 * RX_LONG1.  Exactly 64 samples after the first repetition ends, the
 * ring tail is the second one.  Fine CFO from the per-bin phase
 * advance; channel estimate from the average of both copies.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_long_second() {
	if fs.ring.count < fs.long.due {
		return
	}

	fs.ring.last(NUM_SUBCARRIERS, fs.win[:])
	var x1b = fs.opts.DFT.Forward(fs.win[:])

	var dot complex128
	for k := range NUM_SUBCARRIERS {
		if bin_is_active(k) {
			dot += x1b[k] * cmplx.Conj(fs.long.x1a[k])
		}
	}
	fs.opts.NCO.AdjustFrequency(cmplx.Phase(dot) / NUM_SUBCARRIERS)

	fs.eq = equalizer_estimate(fs.long.x1a, x1b, fs.opts.SmoothingOrder)

	fs.data = data_state_t{due: fs.long.due + SYMBOL_LEN}
	fs.state = STATE_RX_SIGNAL
}

/*------------------------------------------------------------------
 *
 * RX_SIGNAL.  One BPSK symbol: equalize, strip the common pilot
 * phase, demap, de-interleave, Viterbi, validate.  Anything
 * implausible abandons the frame.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_signal() {
	if fs.ring.count < fs.data.due {
		return
	}

	var erased = fs.equalized_symbol(0)

	var soft [SIGNAL_CODED_BITS]byte
	demap_symbol(0, fs.win[:], erased, soft[:])

	var mother [SIGNAL_CODED_BITS]byte
	interleaver_tables[0].deinterleave_soft(soft[:], mother[:])

	var bits = fs.opts.Viterbi.Decode(mother[:], SIGNAL_BITS)

	var rate, length, err = signal_decode(bits)
	if err != nil {
		fs.enter_seek()
		return
	}

	var desc = &rate_table[rate]
	fs.data.rate = rate
	fs.data.length = length
	fs.data.n_sym = num_symbols(rate, length)
	fs.data.n_data = num_data_bits(rate, length)
	fs.data.soft = make([]byte, fs.data.n_sym*desc.n_cbps)
	fs.data.soft_pos = 0
	fs.data.sym = 0
	fs.data.due += SYMBOL_LEN
	fs.state = STATE_RX_DATA
}

/*------------------------------------------------------------------
 *
 * RX_DATA.  Collect de-interleaved soft bits symbol by symbol, then
 * run the whole coded stream back through depuncture, Viterbi,
 * descrambler, and strip.  The payload goes up even when the SERVICE
 * check fails; the callback's validity flag says which.
 *
 *----------------------------------------------------------------*/

func (fs *framesync_t) step_data() {
	if fs.ring.count < fs.data.due {
		return
	}

	var desc = &rate_table[fs.data.rate]
	var erased = fs.equalized_symbol(1 + fs.data.sym)

	var soft = make([]byte, desc.n_cbps)
	demap_symbol(fs.data.rate, fs.win[:], erased, soft)

	interleaver_tables[fs.data.rate].deinterleave_soft(soft, fs.data.soft[fs.data.soft_pos:fs.data.soft_pos+desc.n_cbps])
	fs.data.soft_pos += desc.n_cbps

	fs.data.sym++
	fs.data.due += SYMBOL_LEN

	if fs.data.sym < fs.data.n_sym {
		return
	}

	var mother = depuncture(fs.data.soft, desc.coding, 2*fs.data.n_data)
	var decoded = fs.opts.Viterbi.Decode(mother, fs.data.n_data)
	var payload, _, service_ok = disassemble_data(decoded, fs.data.length)

	fs.opts.Callback(fs.data.rate, fs.data.length, payload, service_ok)

	fs.enter_seek()
}

// Slice the symbol body out of the ring, transform, equalize, and
// remove the common pilot phase error for OFDM symbol n of the frame
// (n = 0 for SIGNAL).  Result lands in fs.win; returns per-bin
// erasure flags.
func (fs *framesync_t) equalized_symbol(n int) []bool {
	fs.ring.last(NUM_SUBCARRIERS, fs.win[:])

	var x = fs.opts.DFT.Forward(fs.win[:])
	copy(fs.win[:], x)

	var erased = fs.eq.apply(fs.win[:])

	var polarity = float64(pilot_polarity(n))
	var dot complex128
	for p, bin := range pilot_bins {
		dot += fs.win[bin] * complex(pilot_pattern[p]*polarity, 0)
	}
	var rot = cmplx.Exp(complex(0, -cmplx.Phase(dot)))
	for _, bin := range data_carrier_bins {
		fs.win[bin] *= rot
	}

	return erased
}
