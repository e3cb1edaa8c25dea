package wlan

// A lightweight reimplementation of Dire Wolf's textcolor.c / dw_printf,
// same as the one carried by samoyed.

import (
	"fmt"
)

type dw_color_e int

const (
	DW_COLOR_INFO    dw_color_e = iota /* default */
	DW_COLOR_ERROR                     /* red */
	DW_COLOR_REC                       /* green */
	DW_COLOR_XMIT                      /* magenta */
	DW_COLOR_DEBUG                     /* dark green */
)

var _text_color_level int

var _ansi_codes = map[dw_color_e]string{
	DW_COLOR_INFO:  "\033[0m",
	DW_COLOR_ERROR: "\033[31m",
	DW_COLOR_REC:   "\033[32m",
	DW_COLOR_XMIT:  "\033[35m",
	DW_COLOR_DEBUG: "\033[2;32m",
}

func text_color_init(level int) {
	_text_color_level = level
}

func text_color_set(c dw_color_e) {
	if _text_color_level == 0 {
		return
	}

	fmt.Print(_ansi_codes[c])
}

func dw_printf(format string, a ...any) (int, error) {
	return fmt.Printf(format, a...)
}
