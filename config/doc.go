// SPDX-License-Identifier: MIT

// Package config loads starmap settings from YAML and the environment.
//
// Precedence, lowest first: Default(), the YAML file, STARMAP_* environment
// variables, then whatever the caller sets explicitly (the CLI applies flags
// last). Unknown YAML keys are rejected.
package config
