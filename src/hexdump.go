package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Print a decoded payload in hex + printable form, the
 *		way atest shows frame contents.
 *
 *----------------------------------------------------------------*/

func hex_dump(p []byte) {
	var n = len(p)
	var offset = 0

	for n > 0 {
		var perLine = min(n, 16)

		dw_printf("  %03x: ", offset)
		for i := range perLine {
			dw_printf(" %02x", p[offset+i])
		}
		for i := perLine; i < 16; i++ {
			dw_printf("   ")
		}
		dw_printf("  ")
		for i := range perLine {
			var c = p[offset+i]
			if c >= ' ' && c <= '~' {
				dw_printf("%c", c)
			} else {
				dw_printf(".")
			}
		}
		dw_printf("\n")

		n -= perLine
		offset += perLine
	}
}
