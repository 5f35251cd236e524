package vehicle

import (
	stdmath "math"

	"github.com/automoto/skidmark/config"
)

// Steering holds the shared front axle angle. In joint mode both front
// joints are pinned to it by setting their lower and upper limits to the
// same value; in direct mode only the tires' drive heading follows it.
type Steering struct {
	mode      config.SteeringMode
	angle     float64
	limit     float64
	increment float64
	snap      float64
	threshold float64
	front     [2]*Tire
}

func newSteering(p *config.VehicleProfile, left, right *Tire) *Steering {
	return &Steering{
		mode:      p.Steering,
		limit:     steeringLimit(p),
		increment: p.TurnIncrement,
		snap:      p.RestoreSnapAngle,
		threshold: p.RestoreSpeedThreshold,
		front:     [2]*Tire{left, right},
	}
}

func steeringLimit(p *config.VehicleProfile) float64 {
	if p.Steering == config.SteerDirect {
		return p.MaxRotationAngle
	}
	return p.MaxTurnAngle
}

// Turn moves the angle one increment; dir > 0 steers right.
func (s *Steering) Turn(dir float64) {
	if dir == 0 {
		return
	}
	step := s.increment
	if dir < 0 {
		step = -step
	}
	s.angle = stdmath.Max(-s.limit, stdmath.Min(s.limit, s.angle+step))
}

// Restore self-centers the wheel when no turn key is held and the car is
// rolling forward faster than the restore threshold.
func (s *Steering) Restore(forwardSpeed float64, turning bool) {
	if turning || s.angle == 0 || forwardSpeed <= s.threshold {
		return
	}
	mag := stdmath.Abs(s.angle)
	if mag <= s.snap {
		s.angle = 0
		return
	}
	step := stdmath.Min(2*s.increment, mag)
	if s.angle > 0 {
		s.angle -= step
	} else {
		s.angle += step
	}
}

// Apply pushes the current angle to the front tires and joints.
func (s *Steering) Apply() {
	for _, t := range s.front {
		t.Turn(s.angle - t.SteerAngle())
		if s.mode == config.SteerJoint && t.joint != nil {
			t.joint.SetLimits(s.angle, s.angle)
		}
	}
}

func (s *Steering) Angle() float64 { return s.angle }

func (s *Steering) Limit() float64 { return s.limit }
