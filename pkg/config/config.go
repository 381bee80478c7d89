// Package config provides declarative configuration for vortex pools.
// Services that manage several pools can describe them in YAML, validate the
// settings up front, and build pools from the result instead of scattering
// sizing decisions through code.
//
// Example usage:
//
//	settings, err := config.LoadSettings("pools.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ps := range settings.Pools {
//	    // build a pool per entry
//	}
package config

import (
	"github.com/vortexlabs/vortex/pkg/logger"
	"github.com/vortexlabs/vortex/pkg/vortexerrors"
)

// DefaultSize mirrors the pool package's default slot capacity.
const DefaultSize = 64

// PoolSettings describes one pool instance.
type PoolSettings struct {
	// Name identifies the pool in logs and metrics labels
	Name string `yaml:"name" json:"name"`
	// Size is the total slot capacity (one fast slot plus size-1 backing slots)
	Size int `yaml:"size" json:"size"`
	// Prefill is the number of instances constructed during warm-up
	Prefill int `yaml:"prefill" json:"prefill"`
	// DisposeWhenFull closes overflowed io.Closer instances instead of dropping them
	DisposeWhenFull bool `yaml:"dispose_when_full" json:"dispose_when_full"`
	// TrackLeaks arms leak diagnostics; intended for development environments
	TrackLeaks bool `yaml:"track_leaks" json:"track_leaks"`
}

// Settings is the root configuration document.
type Settings struct {
	// Pools lists the pools to build
	Pools []PoolSettings `yaml:"pools" json:"pools"`
	// Logging configures the shared logger
	Logging logger.Config `yaml:"logging" json:"logging"`
}

// NewPoolSettings returns settings for a named pool with defaults applied.
func NewPoolSettings(name string) PoolSettings {
	return PoolSettings{
		Name: name,
		Size: DefaultSize,
	}
}

// Validate checks one pool entry against the constructor rules.
func (ps *PoolSettings) Validate() error {
	if ps.Name == "" {
		return vortexerrors.New(vortexerrors.ErrorTypeValidation, "pool name is required")
	}
	if ps.Size < 1 {
		return vortexerrors.New(vortexerrors.ErrorTypeValidation, "pool size must be at least 1").
			WithDetail("pool", ps.Name).
			WithDetail("size", ps.Size)
	}
	if ps.Prefill < 0 {
		return vortexerrors.New(vortexerrors.ErrorTypeValidation, "prefill must not be negative").
			WithDetail("pool", ps.Name).
			WithDetail("prefill", ps.Prefill)
	}
	return nil
}

// Validate checks the whole document, including duplicate pool names.
func (s *Settings) Validate() error {
	seen := make(map[string]bool, len(s.Pools))
	for i := range s.Pools {
		ps := &s.Pools[i]
		if err := ps.Validate(); err != nil {
			return err
		}
		if seen[ps.Name] {
			return vortexerrors.New(vortexerrors.ErrorTypeValidation, "duplicate pool name").
				WithDetail("pool", ps.Name)
		}
		seen[ps.Name] = true
	}
	return nil
}
