package wlan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func bits_from_string(s string) []byte {
	var out = make([]byte, bits_to_bytes(len(s)))
	for n, c := range s {
		set_bit(out, n, int(c-'0'))
	}
	return out
}

func bits_to_string(buf []byte, nbits int) string {
	var out = make([]byte, nbits)
	for n := range nbits {
		out[n] = '0' + byte(get_bit(buf, n))
	}
	return string(out)
}

// Annex G: the 24-bit SIGNAL for 36 Mbit/s, LENGTH=100 through the
// r1/2 mother code (Table G.18).
func TestConvEncodeAnnexG(t *testing.T) {
	var in = bits_from_string("101100010011000000000000")
	var out = conv_encode(in, 24)

	assert.Equal(t,
		"110100011010000100000010001111100111000000000000",
		bits_to_string(out, 48))
}

func TestPuncturePatternRetention(t *testing.T) {
	var kept = 0
	for _, f := range puncture_pattern_r2_3 {
		kept += int(f)
	}
	assert.Equal(t, 9, kept, "r2/3 keeps 9 of 12")

	kept = 0
	for _, f := range puncture_pattern_r3_4 {
		kept += int(f)
	}
	assert.Equal(t, 12, kept, "r3/4 keeps 12 of 18")
}

func TestPunctureCounts(t *testing.T) {
	var in = make([]byte, 36) // 288 mother bits
	var _, n23 = puncture(in, 288, CODING_R2_3)
	assert.Equal(t, 216, n23)

	var _, n34 = puncture(in, 288, CODING_R3_4)
	assert.Equal(t, 192, n34)

	var _, n12 = puncture(in, 288, CODING_R1_2)
	assert.Equal(t, 288, n12)
}

func TestDepunctureRestoresAndErases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var coding = rapid.SampledFrom([]coding_t{CODING_R2_3, CODING_R3_4}).Draw(t, "coding")
		var periods = rapid.IntRange(1, 20).Draw(t, "periods")

		var pat = puncture_pattern(coding)
		var n_mother = periods * len(pat)

		var mother = make([]byte, bits_to_bytes(n_mother))
		for n := range n_mother {
			set_bit(mother, n, rapid.IntRange(0, 1).Draw(t, "bit"))
		}

		var coded, n_coded = puncture(mother, n_mother, coding)

		// Hard bits to soft values for the return trip.
		var soft = make([]byte, n_coded)
		for n := range n_coded {
			soft[n] = IfThenElse(get_bit(coded, n) != 0, SOFT_1, SOFT_0)
		}

		var restored = depuncture(soft, coding, n_mother)
		require.Len(t, restored, n_mother)

		for n := range n_mother {
			if pat[n%len(pat)] != 0 {
				var want = IfThenElse(get_bit(mother, n) != 0, SOFT_1, SOFT_0)
				assert.Equal(t, want, restored[n], "surviving position %d", n)
			} else {
				assert.Equal(t, SOFT_ERASURE, restored[n], "punctured position %d", n)
			}
		}
	})
}

func TestMotherBitsForCoded(t *testing.T) {
	assert.Equal(t, 288, mother_bits_for_coded(216, CODING_R2_3))
	assert.Equal(t, 288, mother_bits_for_coded(192, CODING_R3_4))
	assert.Equal(t, 100, mother_bits_for_coded(100, CODING_R1_2))
}
