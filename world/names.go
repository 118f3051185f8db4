// SPDX-License-Identifier: MIT

package world

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
)

//go:embed names.txt
var nameList string

// namer hands out site names from a shuffled copy of the embedded list and
// falls back to numbered names once it runs dry.
type namer struct {
	names []string
	next  int
}

func newNamer(rng *rand.Rand) *namer {
	var names []string
	for _, line := range strings.Split(nameList, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	return &namer{names: names}
}

func (n *namer) name(id int) string {
	if n.next < len(n.names) {
		n.next++
		return n.names[n.next-1]
	}
	return fmt.Sprintf("Outpost %d", id)
}
