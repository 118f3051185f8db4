// SPDX-License-Identifier: MIT

// Package world generates a seeded map of sites joined by links.
//
// Build runs a fixed pipeline:
//
//  1. draw the site count and triangulate that many random lattice points;
//  2. name the sites, pick the target and assign resources;
//  3. turn triangulation edges into links on the configured graph backend;
//  4. prune random links while keeping every site reachable;
//  5. index the sites for nearest queries;
//  6. derive distances used by Signal and DistanceToTarget.
//
// Every random draw comes from one math/rand source seeded from the config, so
// a seed fully determines the world. A World is read-only after Build and may
// be shared by readers; Build itself is single-threaded.
package world
