package physics

import (
	stdmath "math"

	"github.com/ByteArena/box2d"
	"github.com/yohamta/donburi/features/math"
)

// Local axes of every body. Bodies face +X; +Y is the right-hand side.
var (
	LocalForward = math.Vec2{X: 1, Y: 0}
	LocalRight   = math.Vec2{X: 0, Y: 1}
)

// Zero is the zero vector.
var Zero = math.Vec2{}

// Dot returns the dot product of a and b.
func Dot(a, b math.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// IsZero reports whether v is exactly the zero vector.
func IsZero(v math.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v. A zero-length (or
// non-finite) input returns ErrDegenerateVector instead of a NaN vector.
func Normalize(v math.Vec2) (math.Vec2, error) {
	length := v.Magnitude()
	if length == 0 || stdmath.IsNaN(length) || stdmath.IsInf(length, 0) {
		return Zero, &DomainError{Op: "normalize", Err: ErrDegenerateVector}
	}
	return math.Vec2{X: v.X / length, Y: v.Y / length}, nil
}

// Rotate rotates v by angle radians.
func Rotate(v math.Vec2, angle float64) math.Vec2 {
	s, c := stdmath.Sincos(angle)
	return math.Vec2{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

func toB2(v math.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}
