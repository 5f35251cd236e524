package vehicle

import (
	"errors"
	stdmath "math"
	"testing"
	"time"

	"github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const frame = time.Second / 60

func spawnVehicle(t *testing.T, w *physics.World, p config.VehicleProfile) *Vehicle {
	t.Helper()
	v, err := New(w, p, Spawn{}, zerolog.Nop())
	require.NoError(t, err)
	return v
}

func setForwardSpeed(v *Vehicle, speed float64) {
	v.Chassis().SetLinearVelocity(v.Chassis().WorldVector(physics.LocalForward).MulScalar(speed))
}

func TestNewBuildsChassisAndTires(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	assert.Equal(t, 5, w.BodyCount())
	assert.InDelta(t, p.ChassisMass, v.Chassis().Mass(), 1e-9)
	require.Len(t, v.Tires(), 4)
	for i, tire := range v.Tires() {
		assert.Equal(t, Mount(i), tire.Mount())
		assert.Equal(t, !tire.Mount().Front(), tire.Drive(), tire.Mount().String())
		want := mountOffset(&p, tire.Mount())
		assert.InDelta(t, want.X, tire.Position().X, 1e-9)
		assert.InDelta(t, want.Y, tire.Position().Y, 1e-9)
		lower, upper := tire.joint.Limits()
		assert.Equal(t, 0.0, lower)
		assert.Equal(t, 0.0, upper)
	}
	assert.Equal(t, v, v.Chassis().UserData())
}

func TestNewRejectsInvalidProfile(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	p.ChassisMass = -1

	_, err := New(w, p, Spawn{}, zerolog.Nop())

	var verr *config.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ChassisMass", verr.Field)
	assert.Equal(t, 0, w.BodyCount())
}

var errJointRefused = errors.New("joint refused")

// flakyProvider fails the n-th joint creation.
type flakyProvider struct {
	*physics.World
	failAt int
	joints int
}

func (f *flakyProvider) CreateLimitedRevoluteJoint(def physics.RevoluteJointDef) (*physics.Joint, error) {
	f.joints++
	if f.joints == f.failAt {
		return nil, errJointRefused
	}
	return f.World.CreateLimitedRevoluteJoint(def)
}

func TestNewReleasesBodiesOnProviderFailure(t *testing.T) {
	w := newTestWorld()
	_, err := New(&flakyProvider{World: w, failAt: 3}, config.DefaultProfile(), Spawn{}, zerolog.Nop())

	assert.ErrorIs(t, err, errJointRefused)
	assert.Contains(t, err.Error(), "rear-left joint")
	assert.Equal(t, 0, w.BodyCount())
}

func TestAccelerateFromRest(t *testing.T) {
	w := newTestWorld()
	v := spawnVehicle(t, w, config.DefaultProfile())

	v.UpdateVehicle(Input{Up: true}, frame)

	speed := v.ForwardSpeed()
	assert.Greater(t, speed, 0.0)
	assert.LessOrEqual(t, speed, 0.4+1e-9)
	assert.InDelta(t, 0.4, speed, 1e-9)
	assert.True(t, v.InDrive())
	assert.False(t, v.IsBraking())
}

func TestStoppedInvariant(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	for _, vel := range []math.Vec2{{X: 0.01, Y: 0.02}, {X: -0.03, Y: 0}, {X: 0, Y: p.SnapEpsilon * 0.99}} {
		v.Chassis().SetLinearVelocity(vel)
		v.Chassis().SetAngularVelocity(0.3)

		v.UpdateVehicle(Input{}, frame)

		assert.Equal(t, math.Vec2{}, v.Velocity())
		assert.Equal(t, 0.0, v.Chassis().AngularVelocity())
		assert.True(t, v.Motion().Stopped)
	}
}

func TestSteeringBoundHoldsThroughUpdates(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	inputs := []Input{{Right: true}, {Left: true}, {Right: true, Up: true}}
	for _, in := range inputs {
		for i := 0; i < 40; i++ {
			v.UpdateVehicle(in, frame)
			w.Step(frame.Seconds())
			assert.LessOrEqual(t, stdmath.Abs(v.SteerAngle()), p.MaxTurnAngle+1e-12)
			for _, tire := range v.Tires()[:2] {
				lower, upper := tire.joint.Limits()
				assert.Equal(t, lower, upper)
				assert.InDelta(t, v.SteerAngle(), lower, 1e-12)
			}
		}
	}
	for _, tire := range v.Tires()[2:] {
		lower, upper := tire.joint.Limits()
		assert.Equal(t, 0.0, lower)
		assert.Equal(t, 0.0, upper)
	}
}

func TestRestorativeSteeringConverges(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	for i := 0; i < 20; i++ {
		v.UpdateVehicle(Input{Right: true}, frame)
	}
	require.InDelta(t, p.MaxTurnAngle, v.SteerAngle(), 1e-12)

	setForwardSpeed(v, 5)
	prev := v.SteerAngle()
	for i := 0; i < 20 && v.SteerAngle() != 0; i++ {
		v.UpdateVehicle(Input{}, frame)
		assert.Less(t, stdmath.Abs(v.SteerAngle()), stdmath.Abs(prev))
		prev = v.SteerAngle()
	}
	assert.Equal(t, 0.0, v.SteerAngle())
}

func TestBothTurnKeysHoldSteering(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	for i := 0; i < 20; i++ {
		v.UpdateVehicle(Input{Right: true}, frame)
	}
	require.InDelta(t, p.MaxTurnAngle, v.SteerAngle(), 1e-12)

	setForwardSpeed(v, 5)
	v.UpdateVehicle(Input{Left: true, Right: true}, frame)

	assert.True(t, v.IsTurning())
	assert.InDelta(t, p.MaxTurnAngle, v.SteerAngle(), 1e-12)
}

func TestBoostCooldown(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)
	setForwardSpeed(v, 5)

	boosts := 0
	press := func(elapsed time.Duration) {
		v.UpdateVehicle(Input{Boost: true}, elapsed)
		if v.BoostFired() {
			boosts++
		}
	}

	press(frame)
	assert.Equal(t, 1, boosts)
	assert.InDelta(t, 5+p.BoostFactor, v.ForwardSpeed(), 1e-9)
	assert.Less(t, v.BoostCharge(), 1.0)

	before := v.ForwardSpeed()
	press(p.BoostCooldown / 2)
	assert.Equal(t, 1, boosts)
	assert.InDelta(t, before, v.ForwardSpeed(), 1e-9)

	press(p.BoostCooldown)
	assert.Equal(t, 2, boosts)
	assert.LessOrEqual(t, v.ForwardSpeed(), p.MaxBoostSpeed+1e-9)
}

func TestBoostOnCooldownLeavesSpeed(t *testing.T) {
	w := newTestWorld()
	v := spawnVehicle(t, w, config.DefaultProfile())
	setForwardSpeed(v, 5)
	v.boosted = true
	v.lastBoost = v.clock

	v.UpdateVehicle(Input{Boost: true}, 0)

	assert.False(t, v.BoostFired())
	assert.InDelta(t, 5, v.ForwardSpeed(), 1e-9)
}

func TestSpeedCaps(t *testing.T) {
	p := config.DefaultProfile()

	t.Run("drive", func(t *testing.T) {
		w := newTestWorld()
		v := spawnVehicle(t, w, p)
		setForwardSpeed(v, p.MaxSpeed-0.1)
		v.UpdateVehicle(Input{Up: true}, frame)
		assert.LessOrEqual(t, v.ForwardSpeed(), p.MaxSpeed+1e-9)

		v.UpdateVehicle(Input{Up: true}, frame)
		assert.LessOrEqual(t, v.ForwardSpeed(), p.MaxSpeed+1e-9)
	})

	t.Run("reverse", func(t *testing.T) {
		w := newTestWorld()
		v := spawnVehicle(t, w, p)
		setForwardSpeed(v, -(p.MaxReverseSpeed - 0.1))
		v.UpdateVehicle(Input{Down: true}, frame)
		assert.GreaterOrEqual(t, v.ForwardSpeed(), -p.MaxReverseSpeed-1e-9)
		assert.True(t, v.IsReversing())
	})

	t.Run("boost", func(t *testing.T) {
		w := newTestWorld()
		v := spawnVehicle(t, w, p)
		setForwardSpeed(v, p.MaxBoostSpeed-1)
		v.UpdateVehicle(Input{Up: true, Boost: true}, frame)
		assert.True(t, v.BoostFired())
		assert.LessOrEqual(t, v.ForwardSpeed(), p.MaxBoostSpeed+1e-9)
	})
}

func TestReverseMirrorsForward(t *testing.T) {
	p := config.DefaultProfile()
	fw, rw := newTestWorld(), newTestWorld()
	fv, rv := spawnVehicle(t, fw, p), spawnVehicle(t, rw, p)

	// drive for a few frames, then press the opposite key until the car
	// brakes and snaps to rest
	for i := 0; i < 4; i++ {
		forward, reverse := Input{Up: true}, Input{Down: true}
		if i >= 3 {
			forward, reverse = reverse, forward
		}
		fv.UpdateVehicle(forward, frame)
		rv.UpdateVehicle(reverse, frame)

		assert.InDelta(t, fv.ForwardSpeed(), -rv.ForwardSpeed(), 1e-12, "frame %d", i)
		assert.InDelta(t, fv.Velocity().Y, rv.Velocity().Y, 1e-12, "frame %d", i)
		assert.Equal(t, fv.IsBraking(), rv.IsBraking())
		assert.Equal(t, fv.Motion().Stopped, rv.Motion().Stopped)
	}
	assert.True(t, fv.Motion().Stopped)
}

func TestBrakeWhenInputOpposesTravel(t *testing.T) {
	w := newTestWorld()
	p := config.DefaultProfile()
	v := spawnVehicle(t, w, p)

	setForwardSpeed(v, -5)
	v.UpdateVehicle(Input{Up: true}, frame)
	assert.True(t, v.IsBraking())
	assert.False(t, v.InDrive())
	assert.InDelta(t, -5+p.BrakeFactor, v.ForwardSpeed(), 1e-9)

	setForwardSpeed(v, -0.3)
	v.UpdateVehicle(Input{Up: true}, frame)
	assert.Equal(t, math.Vec2{}, v.Velocity())
}

func TestDirectSteeringProfile(t *testing.T) {
	w := newTestWorld()
	p, err := config.Vehicles.Profile("kart")
	require.NoError(t, err)
	v := spawnVehicle(t, w, p)

	for i := 0; i < 5; i++ {
		v.UpdateVehicle(Input{Right: true}, frame)
	}
	angle := v.SteerAngle()
	assert.InDelta(t, 5*p.TurnIncrement, angle, 1e-12)
	for _, tire := range v.Tires()[:2] {
		assert.InDelta(t, angle, tire.SteerAngle(), 1e-12)
		lower, upper := tire.joint.Limits()
		assert.Equal(t, 0.0, lower)
		assert.Equal(t, 0.0, upper)
	}

	v.UpdateVehicle(Input{Up: true, Right: true}, frame)
	assert.Greater(t, v.Velocity().Y, 0.0)
}

func TestDestroy(t *testing.T) {
	w := newTestWorld()
	v := spawnVehicle(t, w, config.DefaultProfile())

	v.Destroy()
	assert.True(t, v.Destroyed())
	assert.Equal(t, 0, w.BodyCount())

	assert.NotPanics(t, func() {
		v.UpdateVehicle(Input{Up: true}, frame)
		v.Draw()
		v.Destroy()
	})
}

type recordingRenderer struct{ drawn int }

func (r *recordingRenderer) DrawVehicle(*Vehicle) { r.drawn++ }

func TestDrawDelegatesToRenderer(t *testing.T) {
	w := newTestWorld()
	v := spawnVehicle(t, w, config.DefaultProfile())

	v.Draw()
	r := &recordingRenderer{}
	v.SetRenderer(r)
	v.Draw()
	assert.Equal(t, 1, r.drawn)
}

func TestContactsToggleScraping(t *testing.T) {
	w := newTestWorld()
	v := spawnVehicle(t, w, config.DefaultProfile())

	v.NoteContact(true)
	v.NoteContact(true)
	v.NoteContact(false)
	assert.True(t, v.Scraping())
	v.NoteContact(false)
	v.NoteContact(false)
	assert.False(t, v.Scraping())
}
