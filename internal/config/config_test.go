package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero canvas width", func(c *Config) { c.Canvas.Width = 0 }, ErrInvalidCanvasSize},
		{"negative grid", func(c *Config) { c.Grid.Size = -5 }, ErrInvalidGridSize},
		{"zero zoom min", func(c *Config) { c.Zoom.Min = 0 }, ErrInvalidZoomBounds},
		{"inverted zoom", func(c *Config) { c.Zoom.Min = 5; c.Zoom.Max = 1 }, ErrInvalidZoomBounds},
		{"zero capacity", func(c *Config) { c.Spatial.NodeCapacity = 0 }, ErrInvalidSpatial},
		{"zero depth", func(c *Config) { c.Spatial.MaxDepth = 0 }, ErrInvalidSpatial},
		{"zero history", func(c *Config) { c.History.MaxEntries = 0 }, ErrInvalidHistory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

const tomlConfig = `
[canvas]
width = 1920.0
height = 1080.0

[grid]
size = 25.0
snap = true

[zoom]
min = 0.25
max = 8.0

[spatial]
node_capacity = 16
max_depth = 10

[history]
max_entries = 500

[log]
level = "debug"
`

const yamlConfig = `
canvas:
  width: 1920
  height: 1080
grid:
  size: 25
  snap: true
zoom:
  min: 0.25
  max: 8
spatial:
  node_capacity: 16
  max_depth: 10
history:
  max_entries: 500
log:
  level: debug
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkLoaded(t *testing.T, cfg Config) {
	t.Helper()
	if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if cfg.Grid.Size != 25 || !cfg.Grid.Snap {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Zoom.Min != 0.25 || cfg.Zoom.Max != 8 {
		t.Errorf("zoom = %+v", cfg.Zoom)
	}
	if cfg.Spatial.NodeCapacity != 16 || cfg.Spatial.MaxDepth != 10 {
		t.Errorf("spatial = %+v", cfg.Spatial)
	}
	if cfg.History.MaxEntries != 500 {
		t.Errorf("history = %+v", cfg.History)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadFileTOML(t *testing.T) {
	cfg, err := LoadFile(writeTemp(t, "canvasforge.toml", tomlConfig))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	checkLoaded(t, cfg)
}

func TestLoadFileYAML(t *testing.T) {
	cfg, err := LoadFile(writeTemp(t, "canvasforge.yaml", yamlConfig))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	checkLoaded(t, cfg)
}

func TestTOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := LoadFile(writeTemp(t, "c.toml", tomlConfig))
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := LoadFile(writeTemp(t, "c.yaml", yamlConfig))
	if err != nil {
		t.Fatal(err)
	}
	if fromTOML != fromYAML {
		t.Errorf("TOML %+v != YAML %+v", fromTOML, fromYAML)
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() of missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFileUnknownFormat(t *testing.T) {
	_, err := LoadFile(writeTemp(t, "c.ini", "[canvas]\nwidth=1"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile() = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeTemp(t, "c.toml", "[grid]\nsize = 50.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Size != 50 {
		t.Errorf("grid size = %v, want 50", cfg.Grid.Size)
	}
	if cfg.Canvas != Default().Canvas {
		t.Errorf("canvas = %+v, want defaults", cfg.Canvas)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"GRID_SIZE", "32")
	t.Setenv(EnvPrefix+"GRID_SNAP", "true")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")
	t.Setenv(EnvPrefix+"SPATIAL_MAX_DEPTH", "12")
	t.Setenv(EnvPrefix+"ZOOM_MIN", "not-a-number")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Grid.Size != 32 || !cfg.Grid.Snap {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Spatial.MaxDepth != 12 {
		t.Errorf("max depth = %d", cfg.Spatial.MaxDepth)
	}
	if cfg.Zoom.Min != Default().Zoom.Min {
		t.Errorf("unparseable env mutated zoom min: %v", cfg.Zoom.Min)
	}
}

func TestLoadAppliesEnvOverFile(t *testing.T) {
	t.Setenv(EnvPrefix+"GRID_SIZE", "64")

	cfg, err := Load(writeTemp(t, "c.toml", tomlConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Size != 64 {
		t.Errorf("grid size = %v, want env override 64", cfg.Grid.Size)
	}
	if cfg.Canvas.Width != 1920 {
		t.Errorf("canvas width = %v, want file value 1920", cfg.Canvas.Width)
	}
}
