package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// SteeringMode selects how front tires are steered.
type SteeringMode int

const (
	// SteerJoint pins the front tires to a commanded angle through limited
	// revolute joints.
	SteerJoint SteeringMode = iota
	// SteerDirect keeps the tires locked to the chassis and rotates only the
	// tire's drive direction, applying drive impulses off-center.
	SteerDirect
)

// UnmarshalText accepts "joint" or "direct".
func (m *SteeringMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "joint":
		*m = SteerJoint
	case "direct", "kart":
		*m = SteerDirect
	default:
		return fmt.Errorf("unknown steering mode %q", text)
	}
	return nil
}

func (m SteeringMode) String() string {
	switch m {
	case SteerJoint:
		return "joint"
	case SteerDirect:
		return "direct"
	}
	return fmt.Sprintf("SteeringMode(%d)", int(m))
}

// DriveTrain selects which tires receive drive impulses.
type DriveTrain int

const (
	RearWheelDrive DriveTrain = iota
	FrontWheelDrive
	AllWheelDrive
)

// UnmarshalText accepts "rwd", "fwd" or "awd".
func (d *DriveTrain) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "rwd", "rear":
		*d = RearWheelDrive
	case "fwd", "front":
		*d = FrontWheelDrive
	case "awd", "all":
		*d = AllWheelDrive
	default:
		return fmt.Errorf("unknown drive train %q", text)
	}
	return nil
}

func (d DriveTrain) String() string {
	switch d {
	case RearWheelDrive:
		return "rwd"
	case FrontWheelDrive:
		return "fwd"
	case AllWheelDrive:
		return "awd"
	}
	return fmt.Sprintf("DriveTrain(%d)", int(d))
}

// VehicleProfile contains all tuning constants for one vehicle variant.
// Lengths are meters, speeds meters per second, angles radians.
type VehicleProfile struct {
	Name string `mapstructure:"name"`

	// Chassis
	ChassisLength  float64 `mapstructure:"chassisLength"`
	ChassisWidth   float64 `mapstructure:"chassisWidth"`
	ChassisMass    float64 `mapstructure:"chassisMass"`
	LinearDamping  float64 `mapstructure:"linearDamping"`
	AngularDamping float64 `mapstructure:"angularDamping"`
	Restitution    float64 `mapstructure:"restitution"`
	Friction       float64 `mapstructure:"friction"`

	// Tires, mounted at (±axle, ±track) in chassis coordinates
	TireLength float64    `mapstructure:"tireLength"`
	TireWidth  float64    `mapstructure:"tireWidth"`
	TireMass   float64    `mapstructure:"tireMass"`
	FrontAxle  float64    `mapstructure:"frontAxle"`
	RearAxle   float64    `mapstructure:"rearAxle"`
	TrackHalf  float64    `mapstructure:"trackHalf"`
	DriveTrain DriveTrain `mapstructure:"driveTrain"`

	// Speed caps
	MaxSpeed        float64 `mapstructure:"maxSpeed"`
	MaxReverseSpeed float64 `mapstructure:"maxReverseSpeed"`
	MaxBoostSpeed   float64 `mapstructure:"maxBoostSpeed"`

	// Impulse factors, as velocity change per frame (multiplied by chassis mass)
	AccelerationFactor float64       `mapstructure:"accelerationFactor"`
	ReverseFactor      float64       `mapstructure:"reverseFactor"`
	BrakeFactor        float64       `mapstructure:"brakeFactor"`
	BoostFactor        float64       `mapstructure:"boostFactor"`
	BoostCooldown      time.Duration `mapstructure:"boostCooldown"`

	// Steering
	Steering              SteeringMode `mapstructure:"steering"`
	MaxTurnAngle          float64      `mapstructure:"maxTurnAngle"`
	TurnIncrement         float64      `mapstructure:"turnIncrement"`
	MaxRotationAngle      float64      `mapstructure:"maxRotationAngle"`
	RestoreSnapAngle      float64      `mapstructure:"restoreSnapAngle"`
	RestoreSpeedThreshold float64      `mapstructure:"restoreSpeedThreshold"`

	// Traction and friction
	MaxTractionForce   float64 `mapstructure:"maxTractionForce"` // lateral impulse above which a tire slides
	TractionFactor     float64 `mapstructure:"tractionFactor"`   // share of lateral velocity cancelled per frame
	DragCoefficient    float64 `mapstructure:"dragCoefficient"`  // share of rolling speed removed per frame
	TireAngularDamping float64 `mapstructure:"tireAngularDamping"`

	// Rest handling
	NearStopSpeed float64 `mapstructure:"nearStopSpeed"` // brake snaps to rest below this
	SnapEpsilon   float64 `mapstructure:"snapEpsilon"`   // any speed below this is forced to exact rest
}

// ValidationError reports a tuning constant outside its allowed range.
type ValidationError struct {
	Profile string
	Field   string
	Value   any
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("vehicle profile %q: %s = %v: %s", e.Profile, e.Field, e.Value, e.Reason)
}

// ErrUnknownProfile is returned when a profile name is not registered.
var ErrUnknownProfile = errors.New("unknown vehicle profile")

// Validate checks every tuning constant. All problems are reported joined.
func (p VehicleProfile) Validate() error {
	var errs []error
	fail := func(field string, value any, reason string) {
		errs = append(errs, &ValidationError{Profile: p.Name, Field: field, Value: value, Reason: reason})
	}
	positive := func(field string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			fail(field, v, "must be positive")
		}
	}
	nonNegative := func(field string, v float64) {
		if !(v >= 0) || math.IsInf(v, 0) {
			fail(field, v, "must not be negative")
		}
	}
	unit := func(field string, v float64) {
		if !(v >= 0 && v <= 1) {
			fail(field, v, "must be within [0, 1]")
		}
	}

	if p.Name == "" {
		fail("Name", p.Name, "must not be empty")
	}

	positive("ChassisLength", p.ChassisLength)
	positive("ChassisWidth", p.ChassisWidth)
	positive("ChassisMass", p.ChassisMass)
	nonNegative("LinearDamping", p.LinearDamping)
	nonNegative("AngularDamping", p.AngularDamping)
	unit("Restitution", p.Restitution)
	nonNegative("Friction", p.Friction)

	positive("TireLength", p.TireLength)
	positive("TireWidth", p.TireWidth)
	positive("TireMass", p.TireMass)
	positive("TrackHalf", p.TrackHalf)
	if !(p.FrontAxle > p.RearAxle) {
		fail("FrontAxle", p.FrontAxle, "must be ahead of RearAxle")
	}
	if p.DriveTrain < RearWheelDrive || p.DriveTrain > AllWheelDrive {
		fail("DriveTrain", p.DriveTrain, "unknown drive train")
	}

	positive("MaxSpeed", p.MaxSpeed)
	positive("MaxReverseSpeed", p.MaxReverseSpeed)
	if !(p.MaxBoostSpeed >= p.MaxSpeed) {
		fail("MaxBoostSpeed", p.MaxBoostSpeed, "must not be below MaxSpeed")
	}

	positive("AccelerationFactor", p.AccelerationFactor)
	positive("ReverseFactor", p.ReverseFactor)
	positive("BrakeFactor", p.BrakeFactor)
	positive("BoostFactor", p.BoostFactor)
	if p.BoostCooldown < 0 {
		fail("BoostCooldown", p.BoostCooldown, "must not be negative")
	}

	if p.Steering != SteerJoint && p.Steering != SteerDirect {
		fail("Steering", p.Steering, "unknown steering mode")
	}
	if !(p.MaxTurnAngle > 0 && p.MaxTurnAngle < math.Pi/2) {
		fail("MaxTurnAngle", p.MaxTurnAngle, "must be within (0, pi/2)")
	}
	positive("TurnIncrement", p.TurnIncrement)
	if p.TurnIncrement > p.MaxTurnAngle {
		fail("TurnIncrement", p.TurnIncrement, "must not exceed MaxTurnAngle")
	}
	positive("MaxRotationAngle", p.MaxRotationAngle)
	nonNegative("RestoreSnapAngle", p.RestoreSnapAngle)
	nonNegative("RestoreSpeedThreshold", p.RestoreSpeedThreshold)

	positive("MaxTractionForce", p.MaxTractionForce)
	unit("TractionFactor", p.TractionFactor)
	if !(p.DragCoefficient >= 0 && p.DragCoefficient < 1) {
		fail("DragCoefficient", p.DragCoefficient, "must be within [0, 1)")
	}
	unit("TireAngularDamping", p.TireAngularDamping)

	nonNegative("NearStopSpeed", p.NearStopSpeed)
	positive("SnapEpsilon", p.SnapEpsilon)
	if p.SnapEpsilon >= p.AccelerationFactor || p.SnapEpsilon >= p.ReverseFactor {
		fail("SnapEpsilon", p.SnapEpsilon, "must be below the per-frame acceleration")
	}

	return errors.Join(errs...)
}

// DriveFront reports whether the front tires receive drive impulses.
func (p VehicleProfile) DriveFront() bool {
	return p.DriveTrain == FrontWheelDrive || p.DriveTrain == AllWheelDrive
}

// DriveRear reports whether the rear tires receive drive impulses.
func (p VehicleProfile) DriveRear() bool {
	return p.DriveTrain == RearWheelDrive || p.DriveTrain == AllWheelDrive
}

// VehicleConfig holds the registered vehicle profiles.
type VehicleConfig struct {
	Profiles map[string]VehicleProfile
}

// Profile returns the named profile.
func (c VehicleConfig) Profile(name string) (VehicleProfile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return VehicleProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names returns the profile names in sorted order.
func (c VehicleConfig) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate validates every registered profile.
func (c VehicleConfig) Validate() error {
	var errs []error
	for _, name := range c.Names() {
		if err := c.Profiles[name].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Vehicles is the global vehicle profile registry
var Vehicles VehicleConfig

// DefaultProfile returns the baseline rear-drive coupe. Other profiles are
// derived from it.
func DefaultProfile() VehicleProfile {
	return VehicleProfile{
		Name: "coupe",

		ChassisLength:  2.0,
		ChassisWidth:   1.0,
		ChassisMass:    1.0,
		LinearDamping:  0.1,
		AngularDamping: 2.0,
		Restitution:    0.2,
		Friction:       0.4,

		TireLength: 0.5,
		TireWidth:  0.25,
		TireMass:   0.1,
		FrontAxle:  0.7,
		RearAxle:   -0.7,
		TrackHalf:  0.55,
		DriveTrain: RearWheelDrive,

		MaxSpeed:        22,
		MaxReverseSpeed: 22,
		MaxBoostSpeed:   30,

		AccelerationFactor: 0.4,
		ReverseFactor:      0.4,
		BrakeFactor:        1.2,
		BoostFactor:        6,
		BoostCooldown:      700 * time.Millisecond,

		Steering:              SteerJoint,
		MaxTurnAngle:          30 * math.Pi / 180,
		TurnIncrement:         0.035,
		MaxRotationAngle:      30 * math.Pi / 180,
		RestoreSnapAngle:      0.2,
		RestoreSpeedThreshold: 1.0,

		MaxTractionForce:   0.25,
		TractionFactor:     1.0,
		DragCoefficient:    0.01,
		TireAngularDamping: 0.1,

		NearStopSpeed: 0.4,
		SnapEpsilon:   0.05,
	}
}

func init() {
	coupe := DefaultProfile()

	// Loose rear end: lower grip threshold and partial lateral cancellation.
	muscle := DefaultProfile()
	muscle.Name = "muscle"
	muscle.ChassisMass = 1.4
	muscle.MaxSpeed = 28
	muscle.MaxReverseSpeed = 12
	muscle.MaxBoostSpeed = 36
	muscle.AccelerationFactor = 0.5
	muscle.BrakeFactor = 1.0
	muscle.MaxTractionForce = 0.15
	muscle.TractionFactor = 0.8

	// Front-drive kart steered without joints.
	kart := DefaultProfile()
	kart.Name = "kart"
	kart.ChassisLength = 1.4
	kart.ChassisWidth = 0.9
	kart.ChassisMass = 0.6
	kart.FrontAxle = 0.5
	kart.RearAxle = -0.5
	kart.TrackHalf = 0.5
	kart.DriveTrain = FrontWheelDrive
	kart.Steering = SteerDirect
	kart.MaxSpeed = 18
	kart.MaxReverseSpeed = 8
	kart.MaxBoostSpeed = 24
	kart.ReverseFactor = 0.3
	kart.MaxRotationAngle = 25 * math.Pi / 180
	kart.TurnIncrement = 0.05

	Vehicles = VehicleConfig{
		Profiles: map[string]VehicleProfile{
			coupe.Name:  coupe,
			muscle.Name: muscle,
			kart.Name:   kart,
		},
	}
}
