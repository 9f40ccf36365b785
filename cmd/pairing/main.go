// Command pairing splits a sum into the two numbers whose
// |a-b|·a·b is highest and prints the result.
//
//	pairing                 # sum 8, other results collected
//	pairing 900 no          # sum 900, best pairs only
//	pairing pair 2 --sum 8  # describe a single pair
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
