// Package camera tracks the viewport: world offset, clamped zoom, and
// the visible-object cache used for indexed host reads.
//
// Panning and zooming are pure camera state and never enter undo
// history. Zooming is anchored to a screen point so the world point
// under the cursor stays put (zoom-to-cursor).
package camera
