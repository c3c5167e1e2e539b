// Package config holds the settings of a simulation run and loads them from
// TOML (github.com/BurntSushi/toml) or YAML (github.com/goccy/go-yaml) files.
//
// Values absent from a file keep their Default; command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geo"
	"github.com/katalvlaran/powergrab/geomap"
	"github.com/katalvlaran/powergrab/pilot"
)

// Sentinel errors.
var (
	// ErrInvalidConfig indicates settings that cannot drive a run.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a config file that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Run configures one or more simulated flights.
type Run struct {
	Pilot       string       `toml:"pilot" yaml:"pilot"`
	Seed        int64        `toml:"seed" yaml:"seed"`
	Start       geo.Position `toml:"start" yaml:"start"`
	Coins       float64      `toml:"coins" yaml:"coins"`
	Power       float64      `toml:"power" yaml:"power"`
	MaxMoves    int          `toml:"max_moves" yaml:"max_moves"`
	SearchBound int          `toml:"search_bound" yaml:"search_bound"`

	MapDir      string `toml:"map_dir" yaml:"map_dir"`           // local map tree, tried first
	MapURL      string `toml:"map_url" yaml:"map_url"`           // remote URL template
	OutDir      string `toml:"out_dir" yaml:"out_dir"`           // where flight files are written
	WriteFlight bool   `toml:"write_flight" yaml:"write_flight"` // write <pilot>-<date>.txt and .geojson
	Stats       bool   `toml:"stats" yaml:"stats"`               // append to performance-<pilot>.csv

	Rules game.Rules `toml:"rules" yaml:"rules"`
}

// Default returns the standard PowerGrab run: 250 moves starting with 0 coins
// and 250 power from the centre of the campus, flown by the stateful pilot.
func Default() Run {
	return Run{
		Pilot:       pilot.NameStateful,
		Seed:        5678,
		Start:       geo.Position{Lat: 55.944425, Lng: -3.188396},
		Coins:       0,
		Power:       250,
		MaxMoves:    250,
		SearchBound: pilot.DefaultSearchBound,
		MapURL:      geomap.DefaultURLTemplate,
		OutDir:      ".",
		WriteFlight: true,
		Rules:       game.DefaultRules(),
	}
}

// Load reads path over Default and validates the result. The format follows
// the extension: .toml, .yaml or .yml.
func Load(path string) (Run, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err = toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field; the first problem is returned wrapped in ErrInvalidConfig.
func (r Run) Validate() error {
	switch {
	case !slices.Contains(pilot.Names(), r.Pilot):
		return fmt.Errorf("%w: unknown pilot %q", ErrInvalidConfig, r.Pilot)
	case r.Coins < 0 || r.Power < 0:
		return fmt.Errorf("%w: coins and power must be non-negative", ErrInvalidConfig)
	case r.MaxMoves < 0:
		return fmt.Errorf("%w: max moves %d", ErrInvalidConfig, r.MaxMoves)
	case r.SearchBound < 1:
		return fmt.Errorf("%w: search bound %d", ErrInvalidConfig, r.SearchBound)
	case r.MapDir == "" && r.MapURL == "":
		return fmt.Errorf("%w: no map source", ErrInvalidConfig)
	}
	if err := r.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !r.Rules.InPlayArea(r.Start) {
		return fmt.Errorf("%w: start %s outside the play area", ErrInvalidConfig, r.Start)
	}

	return nil
}

// PilotOptions returns the options New needs to build the configured pilot.
func (r Run) PilotOptions() pilot.Options {
	return pilot.Options{Seed: r.Seed, MaxMoves: r.MaxMoves, SearchBound: r.SearchBound}
}

// Source returns the map source described by MapDir and MapURL.
func (r Run) Source() geomap.Source {
	return geomap.Source{Dir: r.MapDir, Template: r.MapURL}
}
