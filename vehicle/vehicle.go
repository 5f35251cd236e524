// Package vehicle implements the car model: a chassis body with four tire
// bodies, a pinned-joint steering axle and a per-frame force resolver.
package vehicle

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/features/math"
)

// Provider is the part of the physics world a vehicle needs.
type Provider interface {
	CreateDynamicBody(def physics.BodyDef) (*physics.Body, error)
	CreateLimitedRevoluteJoint(def physics.RevoluteJointDef) (*physics.Joint, error)
	RemoveBody(b *physics.Body)
}

// Renderer draws a vehicle. Draw is a no-op until one is set.
type Renderer interface {
	DrawVehicle(v *Vehicle)
}

// Spawn is the initial chassis placement.
type Spawn struct {
	Position math.Vec2
	Rotation float64
}

// Each vehicle gets its own negative collision group so its chassis and
// tires never collide with each other.
var groupCounter atomic.Int32

func nextGroup() int16 {
	return -int16(groupCounter.Add(1)%32767 + 1)
}

// Vehicle owns a chassis, four tires and their joints.
type Vehicle struct {
	provider Provider
	profile  config.VehicleProfile
	resolver Resolver
	logger   zerolog.Logger
	renderer Renderer

	chassis  *physics.Body
	tires    [4]*Tire
	steering *Steering

	// monotonic vehicle clock, advanced by UpdateVehicle
	clock     time.Duration
	lastBoost time.Duration
	boosted   bool

	// re-derived every frame
	isBraking  bool
	inDrive    bool
	reversing  bool
	isTurning  bool
	boostFired bool

	contacts  int
	destroyed bool
}

// New validates the profile and builds the vehicle in the provider's world.
// If any body or joint cannot be created, everything created so far is
// removed and the error is returned.
func New(provider Provider, profile config.VehicleProfile, spawn Spawn, logger zerolog.Logger) (*Vehicle, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("new vehicle: %w", err)
	}

	v := &Vehicle{
		provider: provider,
		profile:  profile,
		resolver: NewResolver(profile),
		logger:   logger.With().Str("vehicle", profile.Name).Logger(),
	}
	if err := v.build(spawn); err != nil {
		v.release()
		return nil, fmt.Errorf("new vehicle %q: %w", profile.Name, err)
	}

	v.logger.Info().
		Float64("x", spawn.Position.X).
		Float64("y", spawn.Position.Y).
		Stringer("steering", profile.Steering).
		Stringer("drive", profile.DriveTrain).
		Msg("vehicle spawned")
	return v, nil
}

func (v *Vehicle) build(spawn Spawn) error {
	p := &v.profile
	group := nextGroup()

	chassisShape := physics.Box{HalfLength: p.ChassisLength / 2, HalfWidth: p.ChassisWidth / 2}
	chassis, err := v.provider.CreateDynamicBody(physics.BodyDef{
		Shape:          chassisShape,
		Position:       spawn.Position,
		Rotation:       spawn.Rotation,
		Density:        p.ChassisMass / chassisShape.Area(),
		Friction:       p.Friction,
		Restitution:    p.Restitution,
		LinearDamping:  p.LinearDamping,
		AngularDamping: p.AngularDamping,
		Group:          group,
		UserData:       v,
	})
	if err != nil {
		return fmt.Errorf("chassis: %w", err)
	}
	v.chassis = chassis

	limit := steeringLimit(p)
	tireShape := physics.Box{HalfLength: p.TireLength / 2, HalfWidth: p.TireWidth / 2}
	for _, m := range []Mount{FrontLeft, FrontRight, RearLeft, RearRight} {
		offset := mountOffset(p, m)
		body, err := v.provider.CreateDynamicBody(physics.BodyDef{
			Shape:    tireShape,
			Position: chassis.WorldPoint(offset),
			Rotation: spawn.Rotation,
			Density:  p.TireMass / tireShape.Area(),
			Friction: p.Friction,
			Group:    group,
			UserData: v,
		})
		if err != nil {
			return fmt.Errorf("%s tire: %w", m, err)
		}
		// Registered before the joint so a joint failure still releases it.
		v.tires[m] = &Tire{body: body}

		joint, err := v.provider.CreateLimitedRevoluteJoint(physics.RevoluteJointDef{
			BodyA:        chassis,
			BodyB:        body,
			LocalAnchorA: offset,
			LocalAnchorB: physics.Zero,
		})
		if err != nil {
			return fmt.Errorf("%s joint: %w", m, err)
		}
		v.tires[m] = newTire(m, body, joint, p, limit)
	}

	v.steering = newSteering(p, v.tires[FrontLeft], v.tires[FrontRight])
	return nil
}

func (v *Vehicle) release() {
	for _, t := range v.tires {
		if t != nil {
			v.provider.RemoveBody(t.body)
		}
	}
	if v.chassis != nil {
		v.provider.RemoveBody(v.chassis)
	}
}

// UpdateVehicle runs one frame of control: turn keys, directional forces,
// snap to rest, tire friction and finally self-centering. It only queues
// impulses; the caller steps the world afterwards. Calls after Destroy are
// ignored.
func (v *Vehicle) UpdateVehicle(in Input, elapsed time.Duration) {
	if v.destroyed {
		return
	}
	if elapsed > 0 {
		v.clock += elapsed
	}
	v.isBraking, v.inDrive, v.reversing, v.boostFired = false, false, false, false

	// Both keys held cancel the turn but still hold the wheel off center
	v.isTurning = in.Left || in.Right
	switch {
	case in.Right && !in.Left:
		v.steering.Turn(1)
	case in.Left && !in.Right:
		v.steering.Turn(-1)
	}

	for _, cmd := range v.resolver.Resolve(v.Motion(), in) {
		v.apply(cmd)
	}

	v.snapToRest()

	for _, t := range v.tires {
		t.UpdateFriction()
	}

	v.steering.Restore(v.ForwardSpeed(), v.isTurning)
	v.steering.Apply()
}

// Motion snapshots the chassis state used by the resolver.
func (v *Vehicle) Motion() Motion {
	return Motion{
		ForwardSpeed: v.ForwardSpeed(),
		Stopped:      physics.IsZero(v.chassis.LinearVelocity()),
		Boosted:      v.boosted,
		SinceBoost:   v.clock - v.lastBoost,
	}
}

func (v *Vehicle) apply(cmd ForceCommand) {
	mass := v.chassis.Mass()
	switch c := cmd.(type) {
	case Idle:
	case Accelerate:
		v.inDrive = true
		v.drive(mass*c.DeltaV, (*Tire).ApplyForwardDriveForce)
	case Reverse:
		v.inDrive = true
		v.reversing = true
		v.drive(mass*c.DeltaV, (*Tire).ApplyReverseDriveForce)
	case Brake:
		v.isBraking = true
		share := mass * c.DeltaV / float64(len(v.tires))
		for _, t := range v.tires {
			if err := t.ApplyBrakeForce(v.chassis, share); err != nil {
				v.logger.Warn().Err(err).Stringer("tire", t.mount).Msg("brake skipped")
			}
		}
	case Boost:
		forward := v.chassis.WorldVector(physics.LocalForward)
		v.chassis.ApplyLinearImpulseToCenter(forward.MulScalar(mass * c.DeltaV))
		v.lastBoost = v.clock
		v.boosted = true
		v.boostFired = true
		v.logger.Debug().Float64("dv", c.DeltaV).Dur("at", v.clock).Msg("boost")
	default:
		panic(fmt.Sprintf("vehicle: unhandled force command %T", cmd))
	}
}

func (v *Vehicle) drive(total float64, push func(*Tire, *physics.Body, float64)) {
	n := 0
	for _, t := range v.tires {
		if t.drive {
			n++
		}
	}
	if n == 0 {
		return
	}
	share := total / float64(n)
	for _, t := range v.tires {
		push(t, v.chassis, share)
	}
}

// snapToRest zeroes the chassis and tires once the chassis is slower than
// SnapEpsilon, so "stopped" is an exact state.
func (v *Vehicle) snapToRest() {
	vel := v.chassis.LinearVelocity()
	if physics.IsZero(vel) && v.chassis.AngularVelocity() == 0 {
		return
	}
	if vel.Magnitude() >= v.profile.SnapEpsilon {
		return
	}
	v.chassis.Stop()
	for _, t := range v.tires {
		t.body.Stop()
	}
}

// Draw hands the vehicle to the renderer, if any.
func (v *Vehicle) Draw() {
	if v.destroyed || v.renderer == nil {
		return
	}
	v.renderer.DrawVehicle(v)
}

func (v *Vehicle) SetRenderer(r Renderer) { v.renderer = r }

// Destroy removes the chassis and tires from the world. It is safe to call
// more than once.
func (v *Vehicle) Destroy() {
	if v.destroyed {
		return
	}
	v.release()
	v.destroyed = true
	v.logger.Info().Msg("vehicle destroyed")
}

func (v *Vehicle) Destroyed() bool { return v.destroyed }

// NoteContact tracks wall contacts reported by the physics world. It only
// changes the scraping flag.
func (v *Vehicle) NoteContact(begin bool) {
	if begin {
		v.contacts++
	} else if v.contacts > 0 {
		v.contacts--
	}
}

// Scraping reports whether any part of the vehicle touches something.
func (v *Vehicle) Scraping() bool { return v.contacts > 0 }

func (v *Vehicle) GetPosition() math.Vec2 { return v.chassis.Position() }

func (v *Vehicle) Rotation() float64 { return v.chassis.Rotation() }

func (v *Vehicle) Velocity() math.Vec2 { return v.chassis.LinearVelocity() }

// ForwardSpeed is the chassis velocity along its forward axis.
func (v *Vehicle) ForwardSpeed() float64 {
	return physics.Dot(v.chassis.WorldVector(physics.LocalForward), v.chassis.LinearVelocity())
}

func (v *Vehicle) Profile() config.VehicleProfile { return v.profile }

func (v *Vehicle) Tires() []*Tire { return v.tires[:] }

func (v *Vehicle) SteerAngle() float64 { return v.steering.Angle() }

// Chassis exposes the chassis body for read access by renderers and tests.
func (v *Vehicle) Chassis() *physics.Body { return v.chassis }

func (v *Vehicle) IsBraking() bool   { return v.isBraking }
func (v *Vehicle) InDrive() bool     { return v.inDrive }
func (v *Vehicle) IsReversing() bool { return v.reversing }
func (v *Vehicle) IsTurning() bool   { return v.isTurning }

// BoostFired reports whether a boost was applied during the last update.
func (v *Vehicle) BoostFired() bool { return v.boostFired }

// BoostCharge returns how far the cooldown has recovered, from 0 to 1.
func (v *Vehicle) BoostCharge() float64 {
	if !v.boosted || v.profile.BoostCooldown <= 0 {
		return 1
	}
	since := v.clock - v.lastBoost
	if since >= v.profile.BoostCooldown {
		return 1
	}
	return float64(since) / float64(v.profile.BoostCooldown)
}
