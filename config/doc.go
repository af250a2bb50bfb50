// Package config reads the tunables of a genetic run (population size,
// tournament size, repair mode, seed, worker count) from TRDOM_* environment
// variables and turns them into options for package genetic.
package config
