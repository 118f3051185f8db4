// SPDX-License-Identifier: MIT

package world

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Names of the two special sites.
const (
	OriginName = "Earth"
	TargetName = "Kamino"
)

// Site is a located vertex of the world graph.
type Site struct {
	ID       int
	Name     string
	X, Y     int
	Resource int
}

// Key implements core.Node.
func (s Site) Key() int { return s.ID }

// Location implements proximity.Locatable.
func (s Site) Location() orb.Point { return orb.Point{float64(s.X), float64(s.Y)} }

// String renders s as Name#ID.
func (s Site) String() string { return fmt.Sprintf("%s#%d", s.Name, s.ID) }

// DistanceTo is the straight-line distance between s and o.
func (s Site) DistanceTo(o Site) float64 { return planar.Distance(s.Location(), o.Location()) }

// linkLength is the distance between a and b rounded down, at least 1.
func linkLength(a, b Site) int {
	return max(1, int(math.Floor(a.DistanceTo(b))))
}
