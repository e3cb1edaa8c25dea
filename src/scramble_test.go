package wlan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// 802.11-2007 Annex G Table G.16: the scrambler seeded with 1011101
// produces this over 144 zero bits.
const annexGScramblerOutput = "" +
	"011011000001100110101001110011110110100001010101" +
	"111101001010001101110001111111000011101111001011" +
	"001001000000100010011000101110101101100000110011"

func TestScramblerAnnexG(t *testing.T) {
	var s, err = scrambler_new(0b1011101)
	require.NoError(t, err)

	for n, want := range annexGScramblerOutput {
		assert.Equal(t, int(want-'0'), s.next_bit(), "bit %d", n)
	}
}

func TestScramblerRejectsBadSeeds(t *testing.T) {
	for _, seed := range []int{0, -1, 128, 1000} {
		var _, err = scrambler_new(seed)
		assert.Error(t, err, "seed %d", seed)
	}
}

func TestScramblerInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var seed = rapid.IntRange(1, 127).Draw(t, "seed")
		var data = rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "data")
		var nbits = rapid.IntRange(1, len(data)*8).Draw(t, "nbits")

		var buf = make([]byte, len(data))
		copy(buf, data)

		var s1, _ = scrambler_new(seed)
		s1.scramble(buf, nbits)

		var s2, _ = scrambler_new(seed)
		s2.scramble(buf, nbits)

		assert.Equal(t, data, buf, "scramble twice with the same seed must be the identity")
	})
}

func TestScramblerSequencePeriod127(t *testing.T) {
	// A maximal-length 7-bit LFSR repeats after exactly 127 steps.
	var s, _ = scrambler_new(0x5d)
	var first = make([]int, 127)
	for n := range first {
		first[n] = s.next_bit()
	}
	for n := range first {
		assert.Equal(t, first[n], s.next_bit(), "bit %d of second period", n)
	}
}

func TestScramblerSyncRecoversSeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var seed = rapid.IntRange(1, 127).Draw(t, "seed")

		var s, _ = scrambler_new(seed)
		var first7 [7]int
		for n := range first7 {
			first7[n] = s.next_bit()
		}

		var synced, recovered = scrambler_sync(first7)
		assert.Equal(t, seed, recovered)

		// The synchronized generator must continue the original stream.
		for n := range 64 {
			assert.Equal(t, s.next_bit(), synced.next_bit(), "continuation bit %d", n)
		}
	})
}
