// Package config defines the canvasforge configuration: canvas and
// grid defaults, zoom bounds, spatial index tuning, history depth,
// and logging. Configuration loads from TOML or YAML files with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidCanvasSize = errors.New("canvas size must be positive")
	ErrInvalidGridSize   = errors.New("grid size must be positive")
	ErrInvalidZoomBounds = errors.New("zoom bounds must be positive with min <= max")
	ErrInvalidSpatial    = errors.New("spatial tuning values must be positive")
	ErrInvalidHistory    = errors.New("history max entries must be positive")
)

// Config is the full canvasforge configuration.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas" yaml:"canvas"`
	Grid    GridConfig    `toml:"grid" yaml:"grid"`
	Zoom    ZoomConfig    `toml:"zoom" yaml:"zoom"`
	Spatial SpatialConfig `toml:"spatial" yaml:"spatial"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// CanvasConfig sets the initial host canvas dimensions.
type CanvasConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// GridConfig sets grid pitch and whether snapping starts enabled.
type GridConfig struct {
	Size float64 `toml:"size" yaml:"size"`
	Snap bool    `toml:"snap" yaml:"snap"`
}

// ZoomConfig sets the camera zoom clamp range.
type ZoomConfig struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// SpatialConfig tunes the quadtree.
type SpatialConfig struct {
	NodeCapacity int `toml:"node_capacity" yaml:"node_capacity"`
	MaxDepth     int `toml:"max_depth" yaml:"max_depth"`
}

// HistoryConfig bounds undo depth.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// LogConfig configures logging. File is optional; when empty, logs go
// to stderr.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Canvas:  CanvasConfig{Width: 800, Height: 600},
		Grid:    GridConfig{Size: 10, Snap: false},
		Zoom:    ZoomConfig{Min: 0.1, Max: 10},
		Spatial: SpatialConfig{NodeCapacity: 8, MaxDepth: 8},
		History: HistoryConfig{MaxEntries: 1000},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCanvasSize, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidGridSize, c.Grid.Size)
	}
	if c.Zoom.Min <= 0 || c.Zoom.Max <= 0 || c.Zoom.Min > c.Zoom.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidZoomBounds, c.Zoom.Min, c.Zoom.Max)
	}
	if c.Spatial.NodeCapacity <= 0 || c.Spatial.MaxDepth <= 0 {
		return fmt.Errorf("%w: capacity %d, depth %d",
			ErrInvalidSpatial, c.Spatial.NodeCapacity, c.Spatial.MaxDepth)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistory, c.History.MaxEntries)
	}
	return nil
}
