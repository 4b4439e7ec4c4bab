// Package config loads annealing run settings from YAML.
//
//	runs: 30
//	sweeps: 4000
//	seed: 7
//	workers: 1
//	schedule:
//	  kind: linear        # linear | geometric | explicit
//	  start: 10
//	  end: 0.6
//	  stages: 51
//	  temperatures: []    # kind == explicit only
//
// Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/anneal/sa"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Schedule kinds.
const (
	KindLinear    = "linear"
	KindGeometric = "geometric"
	KindExplicit  = "explicit"
)

// ScheduleSpec describes how to build the temperature schedule.
type ScheduleSpec struct {
	Kind         string    `yaml:"kind"`
	Start        float64   `yaml:"start"`
	End          float64   `yaml:"end"`
	Stages       int       `yaml:"stages"`
	Temperatures []float64 `yaml:"temperatures,omitempty"`
}

// Config holds one annealing job.
type Config struct {
	Runs     int          `yaml:"runs"`
	Sweeps   int          `yaml:"sweeps"`
	Seed     int64        `yaml:"seed"`
	Workers  int          `yaml:"workers"`
	Schedule ScheduleSpec `yaml:"schedule"`
}

// Default returns the reference settings: 30 runs of 4000 sweeps over a
// linear 10 → 0.6 schedule in 51 stages, sequential.
func Default() Config {
	return Config{
		Runs:    sa.DefaultRuns,
		Sweeps:  sa.DefaultSweeps,
		Workers: 1,
		Schedule: ScheduleSpec{
			Kind:   KindLinear,
			Start:  10,
			End:    0.6,
			Stages: 51,
		},
	}
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads and parses a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks counts and builds the schedule once to validate it.
func (c Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be >= 1, got %d", ErrInvalid, c.Runs)
	}
	if c.Sweeps < 0 {
		return fmt.Errorf("%w: sweeps must be >= 0, got %d", ErrInvalid, c.Sweeps)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	_, err := c.BuildSchedule()

	return err
}

// BuildSchedule returns the validated temperature schedule.
func (c Config) BuildSchedule() (sa.Schedule, error) {
	var (
		s   sa.Schedule
		err error
	)
	switch c.Schedule.Kind {
	case KindLinear, "":
		s, err = sa.Linear(c.Schedule.Start, c.Schedule.End, c.Schedule.Stages)
	case KindGeometric:
		s, err = sa.Geometric(c.Schedule.Start, c.Schedule.End, c.Schedule.Stages)
	case KindExplicit:
		s = append(sa.Schedule(nil), c.Schedule.Temperatures...)
	default:
		return nil, fmt.Errorf("%w: unknown schedule kind %q", ErrInvalid, c.Schedule.Kind)
	}
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: schedule: %w", ErrInvalid, err)
	}

	return s, nil
}

// Options converts c into driver options; extra options are applied last.
func (c Config) Options(extra ...sa.Option) sa.Options {
	opts := append([]sa.Option{
		sa.WithRuns(c.Runs),
		sa.WithSweeps(c.Sweeps),
		sa.WithSeed(c.Seed),
		sa.WithWorkers(c.Workers),
	}, extra...)

	return sa.NewOptions(opts...)
}
