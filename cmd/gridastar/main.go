// Command gridastar plans routes on occupancy grids with A*.
//
//	gridastar demo                 classic 60×60 '+' map with a random layout
//	gridastar solve -f wall.yaml   solve a scenario file
//	gridastar batch                all eight layouts concurrently
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridastar:", err)
		os.Exit(1)
	}
}
