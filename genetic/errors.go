// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// errors.go: sentinel errors for the genetic package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with `%w` at the call site.
//   • Constraint checks and repair never return errors: they answer with a
//     bool or a new Chromosome. Only configuration and batch plumbing fail.

package genetic

import "errors"

// ErrInvalidTournamentSize indicates a tournament size below 1.
var ErrInvalidTournamentSize = errors.New("genetic: tournament size must be positive")

// ErrTournamentTooLarge indicates a tournament size exceeding the population
// size. This is a configuration error: distinct draws are impossible.
var ErrTournamentTooLarge = errors.New("genetic: tournament size exceeds population size")

// ErrNilPopulation indicates a nil *Population was passed to a selection strategy.
var ErrNilPopulation = errors.New("genetic: population is nil")

// ErrUnknownRepairMode indicates an unrecognized repair mode name.
var ErrUnknownRepairMode = errors.New("genetic: unknown repair mode")
