// SPDX-License-Identifier: MIT
// Package: trdom/config
//
// config.go: process-level settings for the genetic core, read from the
// environment and validated before use.
//
// Variables (prefix TRDOM_):
//
//	POPULATION_SIZE    individuals per generation         default 50, ≥ 1
//	TOURNAMENT_SIZE    k of k-tournament selection        default 3, 1..POPULATION_SIZE
//	REPAIR_MODE        single-pass | fixed-point          default single-pass
//	MAX_REPAIR_PASSES  fixed-point pass bound, 0=derived  default 0
//	SEED               RNG seed, 0=time seeded            default 0
//	WORKERS            batch goroutines, 0=GOMAXPROCS     default 0

package config

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/trdom/genetic"
)

const envPrefix = "TRDOM_"

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the tunables of one genetic run.
type Config struct {
	PopulationSize  int    `env:"POPULATION_SIZE" envDefault:"50" validate:"min=1"`
	TournamentSize  int    `env:"TOURNAMENT_SIZE" envDefault:"3" validate:"min=1,ltefield=PopulationSize"`
	RepairMode      string `env:"REPAIR_MODE" envDefault:"single-pass" validate:"oneof=single-pass fixed-point"`
	MaxRepairPasses int    `env:"MAX_REPAIR_PASSES" envDefault:"0" validate:"min=0"`
	Seed            int64  `env:"SEED" envDefault:"0"`
	Workers         int    `env:"WORKERS" envDefault:"0" validate:"min=0"`
}

// Load reads Config from the environment and validates it.
//
// Errors:
//   - ErrInvalidConfig: a variable failed to parse (first failure reported)
//     or a field failed validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// First error only; the rest are usually consequences of it.
			err = aggErr.Errors[0]
		}
		return nil, fmt.Errorf("Load: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags. Only the first failing field is reported.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("Validate: %s=%v fails %q: %w", fe.Field(), fe.Value(), fe.Tag(), ErrInvalidConfig)
	}

	return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
}

// Rand returns a generator seeded with Seed, or time-seeded when Seed is 0.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// RepairOptions translates RepairMode and MaxRepairPasses.
func (c *Config) RepairOptions() ([]genetic.RepairOption, error) {
	mode, err := genetic.ParseRepairMode(c.RepairMode)
	if err != nil {
		return nil, fmt.Errorf("RepairOptions: %w: %w", ErrInvalidConfig, err)
	}
	opts := []genetic.RepairOption{genetic.WithRepairMode(mode)}
	if c.MaxRepairPasses > 0 {
		opts = append(opts, genetic.WithMaxPasses(c.MaxRepairPasses))
	}

	return opts, nil
}

// BatchOptions translates Workers; zero keeps the package default.
func (c *Config) BatchOptions() []genetic.BatchOption {
	if c.Workers > 0 {
		return []genetic.BatchOption{genetic.WithWorkers(c.Workers)}
	}

	return nil
}

// Selection builds the tournament selector. A nil rng falls back to Rand().
func (c *Config) Selection(rng *rand.Rand) (*genetic.KTournamentSelection, error) {
	if rng == nil {
		rng = c.Rand()
	}
	sel, err := genetic.NewKTournamentSelection(c.TournamentSize, genetic.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("Selection: %w: %w", ErrInvalidConfig, err)
	}

	return sel, nil
}

// Population seeds PopulationSize random chromosomes over n vertices.
func (c *Config) Population(n int, rng *rand.Rand) *genetic.Population {
	if rng == nil {
		rng = c.Rand()
	}

	return genetic.RandomPopulation(c.PopulationSize, n, rng)
}
