package config

import (
	"os"
	"strconv"
)

// EnvPrefix is the prefix for all canvasforge environment overrides.
const EnvPrefix = "CANVASFORGE_"

// ApplyEnv overlays CANVASFORGE_* environment variables onto cfg.
// Unparseable values are ignored; empty variables count as unset.
func ApplyEnv(cfg *Config) {
	envFloat(EnvPrefix+"CANVAS_WIDTH", &cfg.Canvas.Width)
	envFloat(EnvPrefix+"CANVAS_HEIGHT", &cfg.Canvas.Height)
	envFloat(EnvPrefix+"GRID_SIZE", &cfg.Grid.Size)
	envBool(EnvPrefix+"GRID_SNAP", &cfg.Grid.Snap)
	envFloat(EnvPrefix+"ZOOM_MIN", &cfg.Zoom.Min)
	envFloat(EnvPrefix+"ZOOM_MAX", &cfg.Zoom.Max)
	envInt(EnvPrefix+"SPATIAL_NODE_CAPACITY", &cfg.Spatial.NodeCapacity)
	envInt(EnvPrefix+"SPATIAL_MAX_DEPTH", &cfg.Spatial.MaxDepth)
	envInt(EnvPrefix+"HISTORY_MAX_ENTRIES", &cfg.History.MaxEntries)
	envString(EnvPrefix+"LOG_LEVEL", &cfg.Log.Level)
}

func envFloat(name string, dst *float64) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(name string, dst *int) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(name string, dst *bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
