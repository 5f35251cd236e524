package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/yohamta/donburi/features/math"
)

// Box is a rectangle described by its half extents. HalfLength runs along
// the body's local X (forward) axis, HalfWidth along local Y.
type Box struct {
	HalfLength float64
	HalfWidth  float64
}

// Area returns the full area of the box.
func (b Box) Area() float64 {
	return 4 * b.HalfLength * b.HalfWidth
}

// BodyDef describes a body to create.
type BodyDef struct {
	Shape    Box
	Position math.Vec2
	Rotation float64

	// Density is mass per unit area. Dynamic bodies need a positive density.
	Density        float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64

	// Bodies sharing the same negative Group never collide with each other.
	Group int16

	UserData any
}

// Body is a rigid body owned by a World.
type Body struct {
	b        *box2d.B2Body
	userData any
	removed  bool
}

func (b *Body) Position() math.Vec2 {
	return fromB2(b.b.GetPosition())
}

// Rotation returns the body angle in radians.
func (b *Body) Rotation() float64 {
	return b.b.GetAngle()
}

func (b *Body) LinearVelocity() math.Vec2 {
	return fromB2(b.b.GetLinearVelocity())
}

func (b *Body) SetLinearVelocity(v math.Vec2) {
	b.b.SetLinearVelocity(toB2(v))
}

func (b *Body) AngularVelocity() float64 {
	return b.b.GetAngularVelocity()
}

func (b *Body) SetAngularVelocity(w float64) {
	b.b.SetAngularVelocity(w)
}

func (b *Body) Mass() float64 {
	return b.b.GetMass()
}

// Inertia returns the rotational inertia about the body origin.
func (b *Body) Inertia() float64 {
	return b.b.GetInertia()
}

// WorldVector projects a local direction into world space.
func (b *Body) WorldVector(local math.Vec2) math.Vec2 {
	return fromB2(b.b.GetWorldVector(toB2(local)))
}

// WorldPoint converts a point in body coordinates to world coordinates.
func (b *Body) WorldPoint(local math.Vec2) math.Vec2 {
	return fromB2(b.b.GetWorldPoint(toB2(local)))
}

func (b *Body) WorldCenter() math.Vec2 {
	return fromB2(b.b.GetWorldCenter())
}

// ApplyLinearImpulse applies an impulse at a world point. Velocity changes
// immediately; position changes on the next Step.
func (b *Body) ApplyLinearImpulse(impulse, point math.Vec2) {
	b.b.ApplyLinearImpulse(toB2(impulse), toB2(point), true)
}

func (b *Body) ApplyLinearImpulseToCenter(impulse math.Vec2) {
	b.b.ApplyLinearImpulseToCenter(toB2(impulse), true)
}

func (b *Body) ApplyAngularImpulse(impulse float64) {
	b.b.ApplyAngularImpulse(impulse, true)
}

// ApplyTorque accumulates a torque that is consumed by the next Step.
func (b *Body) ApplyTorque(torque float64) {
	b.b.ApplyTorque(torque, true)
}

// Stop zeroes linear and angular velocity.
func (b *Body) Stop() {
	b.b.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	b.b.SetAngularVelocity(0)
}

func (b *Body) UserData() any {
	return b.userData
}

func (b *Body) SetUserData(data any) {
	b.userData = data
}

// Removed reports whether the body was removed from its world.
func (b *Body) Removed() bool {
	return b.removed
}
