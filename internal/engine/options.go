package engine

import (
	"github.com/mveld/canvasforge/internal/config"
	"github.com/mveld/canvasforge/internal/event"
	"github.com/mveld/canvasforge/internal/log"
)

// Default configuration values.
const (
	DefaultCanvasWidth  = 800.0
	DefaultCanvasHeight = 600.0
	DefaultGridSize     = 10.0
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithCanvasSize sets the host canvas dimensions.
func WithCanvasSize(w, h float64) Option {
	return func(e *Engine) {
		if w > 0 && h > 0 {
			e.canvasW = w
			e.canvasH = h
		}
	}
}

// WithGridSize sets the grid pitch.
func WithGridSize(size float64) Option {
	return func(e *Engine) {
		if size > 0 {
			e.gridSize = size
		}
	}
}

// WithGridSnap enables grid snapping from the start.
func WithGridSnap(enabled bool) Option {
	return func(e *Engine) {
		e.gridSnap = enabled
	}
}

// WithZoomBounds sets the camera zoom clamp range.
func WithZoomBounds(min, max float64) Option {
	return func(e *Engine) {
		if min > 0 && max >= min {
			e.minZoom = min
			e.maxZoom = max
		}
	}
}

// WithNodeCapacity sets how many objects a quadtree leaf holds before
// splitting.
func WithNodeCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.nodeCapacity = capacity
		}
	}
}

// WithMaxTreeDepth bounds quadtree subdivision.
func WithMaxTreeDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxTreeDepth = depth
		}
	}
}

// WithMaxUndoEntries sets the undo history depth limit.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithEventBus attaches an event bus for change notifications.
func WithEventBus(bus *event.Bus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithLogger attaches a logger. Without one the engine stays silent.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfig applies a loaded configuration. Later options override
// individual values.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		WithCanvasSize(cfg.Canvas.Width, cfg.Canvas.Height)(e)
		WithGridSize(cfg.Grid.Size)(e)
		WithGridSnap(cfg.Grid.Snap)(e)
		WithZoomBounds(cfg.Zoom.Min, cfg.Zoom.Max)(e)
		WithNodeCapacity(cfg.Spatial.NodeCapacity)(e)
		WithMaxTreeDepth(cfg.Spatial.MaxDepth)(e)
		WithMaxUndoEntries(cfg.History.MaxEntries)(e)
	}
}
