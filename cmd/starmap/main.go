// SPDX-License-Identifier: MIT

// Command starmap generates seeded worlds and queries them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "starmap:", err)
		os.Exit(1)
	}
}
