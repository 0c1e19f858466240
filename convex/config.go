package convex

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/talusphys/convex/epa"
	"github.com/talusphys/convex/gjk"
)

// Config bundles the tunables of both sub-algorithms.
type Config struct {
	GJK gjk.Config
	EPA epa.Config
}

// DefaultConfig returns the recommended tunables for both sub-algorithms.
func DefaultConfig() Config {
	return Config{GJK: gjk.DefaultConfig(), EPA: epa.DefaultConfig()}
}

// PositionHint is an optional interface a SupportOracle may implement to
// give Detect a reference point for the initial search direction. Shapes
// that don't implement it fall back to a fixed axis, same as gjk.NewDriver
// does for a zero-length hint.
type PositionHint interface {
	Position() mgl64.Vec3
}
