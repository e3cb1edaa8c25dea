package wlan

/*------------------------------------------------------------------
 *
 * Name:	gen_frames
 *
 * Purpose:	Test fixture for generating OFDM frames.
 *
 * Description:	Given payloads are encoded to baseband and written to
 *		an IQ sample file (interleaved little-endian complex64,
 *		20 Msample/s), optionally with AWGN at a chosen Es/N0.
 *
 * Examples:	Different rates:
 *
 *			gen_frames -o z6.cf32
 *			ftest z6.cf32
 *
 *			gen_frames -B 54 -o z54.cf32
 *			ftest z54.cf32
 *
 *		User-defined content:
 *
 *			gen_frames -o z.cf32 "hello OFDM"
 *
 *		With artificial noise added:
 *
 *			gen_frames -N 15 -n 100 -o z2.cf32
 *			ftest -e 99 z2.cf32
 *
 *------------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func GenFramesMain() {
	if err := gen_frames_run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

/*
 * Same linear congruential generator as Dire Wolf's gen_packets, so
 * noisy test files are bit-for-bit reproducible across runs.
 */

const GEN_RAND_MAX = 0x7fffffff

var gen_rand_seed int32 = 1

func gen_rand() int32 {
	gen_rand_seed = int32((uint32(gen_rand_seed)*1103515245 + 12345) & GEN_RAND_MAX)
	return gen_rand_seed
}

func gen_rand_uniform() float64 {
	return (float64(gen_rand()) + 1) / (GEN_RAND_MAX + 2)
}

// One sample of circular complex Gaussian noise at the given average
// power, by Box-Muller.
func gen_noise(power float64) complex128 {
	var r = math.Sqrt(-power * math.Log(gen_rand_uniform()))
	var th = 2 * math.Pi * gen_rand_uniform()
	return complex(r*math.Cos(th), r*math.Sin(th))
}

func gen_frames_run(args []string) error {
	var flags = pflag.NewFlagSet("gen_frames", pflag.ContinueOnError)

	var rateMbps = flags.IntP("rate", "B", 6, `Data rate in Mbit/s: 6, 9, 12, 18, 24, 36, 48 or 54.
Selects modulation and coding automatically.`)
	var length = flags.IntP("length", "l", 100, "Payload length in bytes for generated frames.")
	var seed = flags.IntP("seed", "s", 0x5d, "Scrambler seed, 1..127.")
	var count = flags.IntP("count", "n", 1, "Number of frames to generate.")
	var gap = flags.IntP("gap", "g", 1000, "Silence samples before each frame.")
	var snr = flags.Float64P("noise", "N", math.Inf(1), "Add AWGN at this Es/N0 in dB.")
	var output = flags.StringP("output", "o", "", "Output IQ file (complex64 LE).  Required.")
	var configPath = flags.StringP("config", "c", "", "Modem profile YAML.")
	var showVersion = flags.BoolP("version", "v", false, "Print version and exit.")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		printVersion()
		return nil
	}

	if *output == "" {
		return fmt.Errorf("no output file specified, use -o")
	}

	var config, configErr = modem_config_load(*configPath)
	if configErr != nil {
		return configErr
	}

	var rate = -1
	for i := range rate_table {
		if rate_table[i].rate_mbps == *rateMbps {
			rate = i
		}
	}
	if rate < 0 {
		return fmt.Errorf("unsupported rate %d Mbit/s", *rateMbps)
	}

	var fg, fgErr = framegen_new(rate, *seed, config.Window, nil)
	if fgErr != nil {
		return fgErr
	}

	var payloads [][]byte
	if flags.NArg() > 0 {
		for _, a := range flags.Args() {
			if len(a) == 0 || len(a) > MAX_PAYLOAD_LEN {
				return fmt.Errorf("payload must be 1..%d bytes", MAX_PAYLOAD_LEN)
			}
			payloads = append(payloads, []byte(a))
		}
	} else {
		for i := range *count {
			var p = make([]byte, *length)
			var fill = fmt.Appendf(nil, "KELPIE test frame %4d of %4d. ", i+1, *count)
			for n := range p {
				p[n] = fill[n%len(fill)]
			}
			payloads = append(payloads, p)
		}
	}

	var f, openErr = os.Create(*output)
	if openErr != nil {
		return openErr
	}
	defer f.Close()

	var noise_power = 0.0
	if !math.IsInf(*snr, 1) {
		noise_power = math.Pow(10, -*snr/10)
	}

	var sample_count = 0
	var write = func(samples []complex128) error {
		var buf = make([]byte, 8*len(samples))
		for i, x := range samples {
			x *= complex(frame_unit_gain, 0)
			if noise_power > 0 {
				x += gen_noise(noise_power)
			}
			binary.LittleEndian.PutUint32(buf[8*i:], math.Float32bits(float32(real(x))))
			binary.LittleEndian.PutUint32(buf[8*i+4:], math.Float32bits(float32(imag(x))))
		}
		sample_count += len(samples)
		var _, err = f.Write(buf)
		return err
	}

	text_color_set(DW_COLOR_INFO)

	for _, p := range payloads {
		if err := write(make([]complex128, *gap)); err != nil {
			return err
		}

		var samples, genErr = fg.Generate(p)
		if genErr != nil {
			return genErr
		}
		if err := write(samples); err != nil {
			return err
		}
	}

	dw_printf("%d frames, %d samples written to %s\n", len(payloads), sample_count, *output)

	return nil
}
