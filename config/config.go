// Package config loads solver parameters from YAML. It covers solver
// configuration only; reading resource-node data stays with the caller.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kmedian"
)

// Config mirrors the solver's recognized options in YAML form.
type Config struct {
	K               int     `yaml:"k"`
	Metric          string  `yaml:"metric"`
	CandidatePolicy string  `yaml:"candidate_policy"`
	Seeding         string  `yaml:"seeding"`
	MaxIterations   int     `yaml:"max_iterations"`
	MinImprovement  float64 `yaml:"min_improvement"`
	Restarts        int     `yaml:"restarts"`
	RandomSeed      int64   `yaml:"random_seed"`
	EmptyCluster    string  `yaml:"empty_cluster"`
}

// Default returns the configuration matching the builder defaults.
func Default() Config {
	return Config{
		K:               1,
		Metric:          "euclidean",
		CandidatePolicy: "discrete",
		Seeding:         "uniform",
		MaxIterations:   100,
		MinImprovement:  1e-9,
		Restarts:        1,
		EmptyCluster:    "reseed",
	}
}

// Load decodes YAML from r on top of the defaults and validates the
// result. Unknown fields are rejected.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all enumerated fields and numeric ranges.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("config: k must be >= 1, got %d", c.K)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("config: max_iterations must be >= 1, got %d", c.MaxIterations)
	}
	if c.MinImprovement < 0 {
		return fmt.Errorf("config: min_improvement must be >= 0, got %g", c.MinImprovement)
	}
	if c.Restarts < 1 {
		return fmt.Errorf("config: restarts must be >= 1, got %d", c.Restarts)
	}

	switch c.Metric {
	case "euclidean", "squared-euclidean", "manhattan", "chebyshev", "haversine":
	default:
		return fmt.Errorf("config: unknown metric %q", c.Metric)
	}
	switch c.CandidatePolicy {
	case "discrete", "discrete-all-nodes", "continuous":
	default:
		return fmt.Errorf("config: unknown candidate_policy %q", c.CandidatePolicy)
	}
	switch c.Seeding {
	case "uniform", "farthest-point":
	default:
		return fmt.Errorf("config: unknown seeding %q", c.Seeding)
	}
	switch c.EmptyCluster {
	case "reseed", "keep":
	default:
		return fmt.Errorf("config: unknown empty_cluster %q", c.EmptyCluster)
	}

	return nil
}

// Builder translates the configuration into a solver builder. Ambient
// options (logger, metrics, parallelism) are passed to Build by the
// caller.
func (c Config) Builder() (kmedian.Builder, error) {
	if err := c.Validate(); err != nil {
		return kmedian.Builder{}, err
	}

	b := kmedian.New(c.K).
		MaxIterations(c.MaxIterations).
		MinImprovement(c.MinImprovement).
		Restarts(c.Restarts).
		RandomSeed(c.RandomSeed)

	switch c.Metric {
	case "squared-euclidean":
		b = b.SquaredEuclidean()
	case "manhattan":
		b = b.Manhattan()
	case "chebyshev":
		b = b.Chebyshev()
	case "haversine":
		b = b.Haversine()
	default:
		b = b.Euclidean()
	}

	switch c.CandidatePolicy {
	case "discrete-all-nodes":
		b = b.DiscreteMedianAllNodes()
	case "continuous":
		b = b.ContinuousMedian()
	default:
		b = b.DiscreteMedian()
	}

	if c.Seeding == "farthest-point" {
		b = b.FarthestPointSeeding()
	}
	if c.EmptyCluster == "keep" {
		b = b.KeepEmptyClusters()
	}

	return b, nil
}
