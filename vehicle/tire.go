package vehicle

import (
	stdmath "math"

	"github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/yohamta/donburi/features/math"
)

// Mount identifies where a tire sits on the chassis.
type Mount int

const (
	FrontLeft Mount = iota
	FrontRight
	RearLeft
	RearRight
)

func (m Mount) String() string {
	switch m {
	case FrontLeft:
		return "front-left"
	case FrontRight:
		return "front-right"
	case RearLeft:
		return "rear-left"
	case RearRight:
		return "rear-right"
	}
	return "unknown"
}

// Front reports whether the tire is on the steered axle.
func (m Mount) Front() bool {
	return m == FrontLeft || m == FrontRight
}

// mountOffset returns the tire anchor in chassis coordinates. +Y is the
// right-hand side.
func mountOffset(p *config.VehicleProfile, m Mount) math.Vec2 {
	switch m {
	case FrontLeft:
		return math.Vec2{X: p.FrontAxle, Y: -p.TrackHalf}
	case FrontRight:
		return math.Vec2{X: p.FrontAxle, Y: p.TrackHalf}
	case RearLeft:
		return math.Vec2{X: p.RearAxle, Y: -p.TrackHalf}
	default:
		return math.Vec2{X: p.RearAxle, Y: p.TrackHalf}
	}
}

type tireTuning struct {
	traction       float64
	maxTraction    float64
	drag           float64
	angularDamping float64
	nearStop       float64
	maxRotation    float64
}

// Tire is one wheel. It owns its body and joint; drive and brake impulses are
// applied to a target body passed in by the caller.
type Tire struct {
	mount  Mount
	offset math.Vec2
	drive  bool

	body  *physics.Body
	joint *physics.Joint

	tuning     tireTuning
	steerAngle float64
	sliding    bool
}

func newTire(mount Mount, body *physics.Body, joint *physics.Joint, p *config.VehicleProfile, maxRotation float64) *Tire {
	drive := p.DriveRear()
	if mount.Front() {
		drive = p.DriveFront()
	}
	return &Tire{
		mount:  mount,
		offset: mountOffset(p, mount),
		drive:  drive,
		body:   body,
		joint:  joint,
		tuning: tireTuning{
			traction:       p.TractionFactor,
			maxTraction:    p.MaxTractionForce,
			drag:           p.DragCoefficient,
			angularDamping: p.TireAngularDamping,
			nearStop:       p.NearStopSpeed,
			maxRotation:    maxRotation,
		},
	}
}

// ApplyForwardDriveForce pushes target along the tire's heading, at the
// tire's mount point. Non-drive tires do nothing.
func (t *Tire) ApplyForwardDriveForce(target *physics.Body, magnitude float64) {
	t.applyDrive(target, magnitude)
}

// ApplyReverseDriveForce pushes target against the tire's heading.
func (t *Tire) ApplyReverseDriveForce(target *physics.Body, magnitude float64) {
	t.applyDrive(target, -magnitude)
}

func (t *Tire) applyDrive(target *physics.Body, magnitude float64) {
	if !t.drive || magnitude == 0 {
		return
	}
	heading := target.WorldVector(physics.Rotate(physics.LocalForward, t.steerAngle))
	target.ApplyLinearImpulse(heading.MulScalar(magnitude), target.WorldPoint(t.offset))
}

// ApplyBrakeForce slows target against its direction of travel. A stopped
// target is left alone and a target slower than the near-stop speed is
// brought to exact rest. The impulse never exceeds what is needed to stop,
// so braking cannot reverse the direction of travel.
func (t *Tire) ApplyBrakeForce(target *physics.Body, magnitude float64) error {
	v := target.LinearVelocity()
	if physics.IsZero(v) {
		return nil
	}
	speed := v.Magnitude()
	if speed < t.tuning.nearStop {
		target.Stop()
		return nil
	}
	dir, err := physics.Normalize(v)
	if err != nil {
		return err
	}
	impulse := stdmath.Min(magnitude, target.Mass()*speed)
	target.ApplyLinearImpulseToCenter(dir.MulScalar(-impulse))
	return nil
}

// UpdateFriction applies traction, rotational damping and rolling drag to
// the tire body. The lateral impulse is applied in full; exceeding the
// traction limit only marks the tire as sliding.
func (t *Tire) UpdateFriction() {
	b := t.body
	mass := b.Mass()

	right := b.WorldVector(physics.LocalRight)
	lateral := right.MulScalar(physics.Dot(right, b.LinearVelocity()))
	impulse := lateral.MulScalar(-mass * t.tuning.traction)
	t.sliding = impulse.Magnitude() > t.tuning.maxTraction
	b.ApplyLinearImpulseToCenter(impulse)

	b.ApplyAngularImpulse(t.tuning.angularDamping * b.Inertia() * -b.AngularVelocity())

	forward := b.WorldVector(physics.LocalForward)
	speed := physics.Dot(forward, b.LinearVelocity())
	if speed == 0 {
		return
	}
	b.ApplyLinearImpulseToCenter(forward.MulScalar(-speed * t.tuning.drag * mass))
}

// Turn rotates the tire's heading relative to the chassis, clamped to the
// tire's maximum rotation.
func (t *Tire) Turn(radians float64) {
	a := t.steerAngle + radians
	t.steerAngle = stdmath.Max(-t.tuning.maxRotation, stdmath.Min(t.tuning.maxRotation, a))
}

func (t *Tire) SteerAngle() float64 { return t.steerAngle }

// IsSliding reports whether the last UpdateFriction exceeded the traction
// limit.
func (t *Tire) IsSliding() bool { return t.sliding }

func (t *Tire) Position() math.Vec2 { return t.body.Position() }

func (t *Tire) Rotation() float64 { return t.body.Rotation() }

func (t *Tire) Mount() Mount { return t.mount }

func (t *Tire) Drive() bool { return t.drive }

// JointAngle returns the measured angle of the tire's joint.
func (t *Tire) JointAngle() float64 {
	if t.joint == nil {
		return 0
	}
	return t.joint.Angle()
}
