package camera

// Default zoom clamp range.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 10.0
)

// Camera holds the world-space offset and zoom of the viewport.
// Camera state is never part of undo history.
type Camera struct {
	X    float64
	Y    float64
	Zoom float64

	minZoom float64
	maxZoom float64
}

// NewCamera creates a camera at the origin with zoom 1. Non-positive
// bounds select the package defaults.
func NewCamera(minZoom, maxZoom float64) *Camera {
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom <= 0 {
		maxZoom = DefaultMaxZoom
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return &Camera{Zoom: 1, minZoom: minZoom, maxZoom: maxZoom}
}

// Reset returns the camera to the origin at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = 1
}

// Pan shifts the camera by a screen-space delta, scaled into world
// units by the current zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// ZoomAt applies a zoom delta anchored at the screen point (cx, cy):
// the world point under the cursor before the zoom is still under the
// cursor afterwards.
func (c *Camera) ZoomAt(cx, cy, delta float64) {
	wx := c.X + cx/c.Zoom
	wy := c.Y + cy/c.Zoom

	c.Zoom = c.clamp(c.Zoom + delta)

	c.X = wx - cx/c.Zoom
	c.Y = wy - cy/c.Zoom
}

// MinZoom returns the lower zoom clamp.
func (c *Camera) MinZoom() float64 { return c.minZoom }

// MaxZoom returns the upper zoom clamp.
func (c *Camera) MaxZoom() float64 { return c.maxZoom }

func (c *Camera) clamp(z float64) float64 {
	if z < c.minZoom {
		return c.minZoom
	}
	if z > c.maxZoom {
		return c.maxZoom
	}
	return z
}
