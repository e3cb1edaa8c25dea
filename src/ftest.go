package wlan

/* Test fixture for the OFDM frame synchronizer */

/*-------------------------------------------------------------------
 *
 * Purpose:     Test fixture for the OFDM frame synchronizer.
 *
 * Inputs:	Takes baseband samples from an IQ file instead of a
 *		radio front end.
 *
 * Description:	This can be used to test the receiver under controlled
 *		and reproducible conditions for tweaking.  Samples are
 *		pushed in arbitrary block sizes to exercise the bulk
 *		entry point; block size must never change behavior.
 *
 *--------------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func FTestMain() {
	if _, err := ftest_run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func ftest_run(args []string) (int, error) {
	var flags = pflag.NewFlagSet("ftest", pflag.ContinueOnError)

	var expect = flags.IntP("expect", "e", -1, "Minimum number of frames that must decode, else nonzero exit.")
	var block = flags.IntP("block", "B", 256, "Push block size in samples.")
	var configPath = flags.StringP("config", "c", "", "Modem profile YAML.")
	var quiet = flags.BoolP("quiet", "q", false, "Suppress per-frame payload dumps.")

	if err := flags.Parse(args); err != nil {
		return 0, err
	}

	if flags.NArg() != 1 {
		return 0, fmt.Errorf("usage: ftest [options] file.cf32")
	}
	if *block < 1 {
		return 0, fmt.Errorf("block size must be at least 1")
	}

	var config, configErr = modem_config_load(*configPath)
	if configErr != nil {
		return 0, configErr
	}

	var data, readErr = os.ReadFile(flags.Arg(0))
	if readErr != nil {
		return 0, readErr
	}

	var samples = make([]complex128, len(data)/8)
	for i := range samples {
		var re = math.Float32frombits(binary.LittleEndian.Uint32(data[8*i:]))
		var im = math.Float32frombits(binary.LittleEndian.Uint32(data[8*i+4:]))
		samples[i] = complex(float64(re), float64(im))
	}

	var decoded = 0
	var fs = framesync_new(framesync_opts_t{
		Callback: func(rate int, length int, payload []byte, valid bool) {
			decoded++

			text_color_set(DW_COLOR_REC)
			dw_printf("DECODED[%d] %d Mbit/s, length %d, valid %t\n",
				decoded, rate_table[rate].rate_mbps, length, valid)

			if !*quiet {
				text_color_set(DW_COLOR_INFO)
				hex_dump(payload)
			}
		},
		DetectThreshold: config.DetectThreshold,
		SquelchFloor:    config.SquelchFloor,
		SmoothingOrder:  config.SmoothingOrder,
	})

	for pos := 0; pos < len(samples); pos += *block {
		fs.Push(samples[pos:min(pos+*block, len(samples))])
	}

	text_color_set(DW_COLOR_INFO)
	dw_printf("%d frames decoded from %d samples\n", decoded, len(samples))

	if *expect >= 0 && decoded < *expect {
		return decoded, fmt.Errorf("expected at least %d frames, decoded %d", *expect, decoded)
	}

	return decoded, nil
}
