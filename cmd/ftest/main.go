package main

/*------------------------------------------------------------------
 *
 * Name:        main
 *
 * Purpose:     Wrapper for the ftest receive fixture.
 *
 *--------------------------------------------------------------------*/

import (
	wlan "github.com/doismellburning/kelpie/src"
)

func main() {
	wlan.FTestMain()
}
