// Package trackdata parses TMX race tracks. It has no dependencies on
// ebitengine, donburi or box2d; all values are in map pixels.
package trackdata

// Track holds everything a race scene needs from a TMX file.
type Track struct {
	Name   string
	Path   string
	Width  int
	Height int

	Walls       []Rect
	Spawn       SpawnPoint
	Checkpoints []Checkpoint // sorted by Order
	FinishLine  *Rect        // nil when the track has no lap timing
}

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's center.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SpawnPoint is where the player's vehicle starts.
type SpawnPoint struct {
	X, Y     float64
	Rotation float64 // degrees, clockwise, 0 faces +X
	Profile  string  // optional vehicle profile override
}

// Checkpoint is a trigger volume that must be crossed in Order.
type Checkpoint struct {
	Rect
	Order int
}
