package main

/*------------------------------------------------------------------
 *
 * Name:        main
 *
 * Purpose:     Wrapper for the gen_frames test fixture.
 *
 *--------------------------------------------------------------------*/

import (
	wlan "github.com/doismellburning/kelpie/src"
)

func main() {
	wlan.GenFramesMain()
}
