// Command garapon is a terminal lottery drum: confirm a draw, crank the drum one full turn with
// the mouse, and watch the ball roll out to reveal a prize.
//
// Usage:
//
//	garapon [--config path] [--debug] [--no-audio] [--seed n]
//	garapon version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
