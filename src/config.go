package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Modem profile shared by the gen_frames and ftest
 *		fixtures.
 *
 * Description:	A small YAML file carrying the knobs that are not
 *		per-invocation flags.  Everything has a sensible
 *		default; an absent file means defaults throughout.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type modem_config_t struct {
	DetectThreshold float64 `yaml:"detect_threshold"`
	SquelchFloor    float64 `yaml:"squelch_floor"`
	SmoothingOrder  int     `yaml:"smoothing_order"`
	Window          int     `yaml:"window"`
}

func modem_config_default() modem_config_t {
	return modem_config_t{
		DetectThreshold: DEFAULT_DETECT_THRESHOLD,
		SquelchFloor:    DEFAULT_SQUELCH_FLOOR,
		SmoothingOrder:  0,
		Window:          1,
	}
}

func (c *modem_config_t) validate() error {
	if c.DetectThreshold <= 0 || c.DetectThreshold >= 1 {
		return fmt.Errorf("detect_threshold %f out of range (0,1)", c.DetectThreshold)
	}
	if c.SquelchFloor < 0 {
		return fmt.Errorf("squelch_floor %f must not be negative", c.SquelchFloor)
	}
	if c.SmoothingOrder != 0 && (c.SmoothingOrder < 2 || c.SmoothingOrder > 4) {
		return fmt.Errorf("smoothing_order %d, want 0 or 2..4", c.SmoothingOrder)
	}
	if c.Window < 1 || c.Window > CP_LEN {
		return fmt.Errorf("window %d, want 1..%d", c.Window, CP_LEN)
	}
	return nil
}

func modem_config_load(path string) (modem_config_t, error) {
	var c = modem_config_default()

	if path == "" {
		return c, nil
	}

	var data, readErr = os.ReadFile(path)
	if readErr != nil {
		return c, readErr
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}

	return c, c.validate()
}
