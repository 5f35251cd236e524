package vehicle

import (
	stdmath "math"
	"testing"

	"github.com/automoto/skidmark/config"
	"github.com/stretchr/testify/assert"
)

func newBareSteering(p config.VehicleProfile) *Steering {
	limit := steeringLimit(&p)
	left := &Tire{mount: FrontLeft, tuning: tireTuning{maxRotation: limit}}
	right := &Tire{mount: FrontRight, tuning: tireTuning{maxRotation: limit}}
	return newSteering(&p, left, right)
}

func TestSteeringTurnIsBounded(t *testing.T) {
	p := config.DefaultProfile()
	s := newBareSteering(p)

	for i := 0; i < 100; i++ {
		s.Turn(1)
		assert.LessOrEqual(t, stdmath.Abs(s.Angle()), p.MaxTurnAngle)
	}
	assert.InDelta(t, p.MaxTurnAngle, s.Angle(), 1e-12)

	for i := 0; i < 100; i++ {
		s.Turn(-1)
		assert.LessOrEqual(t, stdmath.Abs(s.Angle()), p.MaxTurnAngle)
	}
	assert.InDelta(t, -p.MaxTurnAngle, s.Angle(), 1e-12)
}

func TestSteeringRestore(t *testing.T) {
	p := config.DefaultProfile()

	t.Run("converges monotonically to zero", func(t *testing.T) {
		s := newBareSteering(p)
		for i := 0; i < 20; i++ {
			s.Turn(1)
		}
		prev := stdmath.Abs(s.Angle())
		frames := 0
		for s.Angle() != 0 {
			s.Restore(p.RestoreSpeedThreshold+1, false)
			cur := stdmath.Abs(s.Angle())
			assert.Less(t, cur, prev)
			prev = cur
			frames++
			if frames > 100 {
				t.Fatal("restore did not converge")
			}
		}
		assert.Equal(t, 0.0, s.Angle())
	})

	t.Run("snaps inside the snap angle", func(t *testing.T) {
		s := newBareSteering(p)
		s.Turn(-1)
		s.Restore(p.RestoreSpeedThreshold+1, false)
		assert.Equal(t, 0.0, s.Angle())
	})

	t.Run("held while reversing", func(t *testing.T) {
		s := newBareSteering(p)
		s.Turn(1)
		s.Restore(-(p.RestoreSpeedThreshold + 1), false)
		assert.InDelta(t, p.TurnIncrement, s.Angle(), 1e-12)
	})

	t.Run("held while turning", func(t *testing.T) {
		s := newBareSteering(p)
		s.Turn(1)
		s.Restore(p.RestoreSpeedThreshold+1, true)
		assert.InDelta(t, p.TurnIncrement, s.Angle(), 1e-12)
	})

	t.Run("held when slow", func(t *testing.T) {
		s := newBareSteering(p)
		s.Turn(1)
		s.Restore(p.RestoreSpeedThreshold, false)
		assert.InDelta(t, p.TurnIncrement, s.Angle(), 1e-12)
	})
}

func TestSteeringApplyUpdatesFrontTires(t *testing.T) {
	p := config.DefaultProfile()
	s := newBareSteering(p)
	s.Turn(1)
	s.Turn(1)
	s.Apply()
	for _, tire := range s.front {
		assert.InDelta(t, 2*p.TurnIncrement, tire.SteerAngle(), 1e-12)
	}

	s.Turn(-1)
	s.Apply()
	for _, tire := range s.front {
		assert.InDelta(t, p.TurnIncrement, tire.SteerAngle(), 1e-12)
	}
}

func TestDirectSteeringUsesRotationLimit(t *testing.T) {
	p, err := config.Vehicles.Profile("kart")
	if err != nil {
		t.Fatal(err)
	}
	s := newBareSteering(p)
	assert.InDelta(t, p.MaxRotationAngle, s.Limit(), 1e-12)
}
