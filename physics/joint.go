package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/yohamta/donburi/features/math"
)

// RevoluteJointDef describes a revolute joint whose angle is limited to
// [LowerAngle, UpperAngle] relative to the bodies' angle at creation.
type RevoluteJointDef struct {
	BodyA, BodyB *Body

	LocalAnchorA math.Vec2
	LocalAnchorB math.Vec2

	LowerAngle float64
	UpperAngle float64
}

// Joint is a limited revolute joint.
type Joint struct {
	j *box2d.B2RevoluteJoint
}

// SetLimits sets the joint angle limits. Setting lower == upper pins the
// joint to a commanded angle.
func (j *Joint) SetLimits(lower, upper float64) {
	if lower > upper {
		lower, upper = upper, lower
	}
	j.j.SetLimits(lower, upper)
}

// Limits returns the current lower and upper limits.
func (j *Joint) Limits() (float64, float64) {
	return j.j.GetLowerLimit(), j.j.GetUpperLimit()
}

// Angle returns the integrated joint angle (bodyB relative to bodyA).
func (j *Joint) Angle() float64 {
	return j.j.GetJointAngle()
}
