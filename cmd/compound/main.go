// Command compound projects investment growth under compound interest with a fixed
// yearly contribution, from flags, scenario files or an HTTP API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
