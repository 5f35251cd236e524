package vehicle

import (
	stdmath "math"
	"time"

	"github.com/automoto/skidmark/config"
)

// Input is the raw directional state sampled for one frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Boost bool
}

// Motion is the chassis state the resolver decides on.
type Motion struct {
	// ForwardSpeed is the velocity projected onto the chassis forward axis.
	// Negative while rolling backwards.
	ForwardSpeed float64
	// Stopped is true only when the chassis velocity is exactly zero.
	Stopped bool
	// Boosted is false until the first boost fires.
	Boosted    bool
	SinceBoost time.Duration
}

// ForceCommand is one directional force the vehicle applies this frame.
// The concrete types are Idle, Accelerate, Brake, Reverse and Boost.
type ForceCommand interface {
	command() string
}

// Idle applies nothing.
type Idle struct{}

// Accelerate drives the chassis forward by DeltaV.
type Accelerate struct {
	DeltaV float64
}

// Reverse drives the chassis backwards by DeltaV.
type Reverse struct {
	DeltaV float64
}

// Brake opposes the current travel with up to DeltaV.
type Brake struct {
	DeltaV float64
}

// Boost is a one shot forward kick of DeltaV.
type Boost struct {
	DeltaV float64
}

func (Idle) command() string       { return "idle" }
func (Accelerate) command() string { return "accelerate" }
func (Reverse) command() string    { return "reverse" }
func (Brake) command() string      { return "brake" }
func (Boost) command() string      { return "boost" }

// CommandName returns a short name for logging.
func CommandName(c ForceCommand) string {
	if c == nil {
		return "none"
	}
	return c.command()
}

// Resolver maps motion and input to force commands for one profile. All
// DeltaV values are velocity changes; the vehicle multiplies them by the
// chassis mass.
type Resolver struct {
	profile config.VehicleProfile
}

func NewResolver(profile config.VehicleProfile) Resolver {
	return Resolver{profile: profile}
}

// Resolve returns the commands for this frame in application order. Up and
// Down held together cancel out. Drive impulses are clamped to the headroom
// under the speed cap so a single frame never pushes past it.
func (r Resolver) Resolve(m Motion, in Input) []ForceCommand {
	p := &r.profile
	fwd := m.ForwardSpeed
	commands := make([]ForceCommand, 0, 2)

	switch {
	case in.Up && !in.Down:
		if m.Stopped || fwd >= 0 {
			commands = appendForce(commands, headroom(p.AccelerationFactor, p.MaxSpeed-fwd, func(dv float64) ForceCommand {
				return Accelerate{DeltaV: dv}
			}))
		} else {
			commands = append(commands, Brake{DeltaV: p.BrakeFactor})
		}
	case in.Down && !in.Up:
		if m.Stopped || fwd <= 0 {
			commands = appendForce(commands, headroom(p.ReverseFactor, p.MaxReverseSpeed+fwd, func(dv float64) ForceCommand {
				return Reverse{DeltaV: dv}
			}))
		} else {
			commands = append(commands, Brake{DeltaV: p.BrakeFactor})
		}
	}

	if in.Boost && r.boostAllowed(m) {
		// headroom accounts for a drive impulse resolved in the same frame
		after := fwd
		if a, ok := lastAccelerate(commands); ok {
			after += a.DeltaV
		}
		commands = appendForce(commands, headroom(p.BoostFactor, p.MaxBoostSpeed-after, func(dv float64) ForceCommand {
			return Boost{DeltaV: dv}
		}))
	}

	// Idle only ever stands alone
	if len(commands) == 0 {
		commands = append(commands, Idle{})
	}
	return commands
}

// appendForce drops exhausted commands.
func appendForce(commands []ForceCommand, cmd ForceCommand) []ForceCommand {
	if _, idle := cmd.(Idle); idle {
		return commands
	}
	return append(commands, cmd)
}

func (r Resolver) boostAllowed(m Motion) bool {
	if m.Stopped || m.ForwardSpeed <= 0 || m.ForwardSpeed >= r.profile.MaxBoostSpeed {
		return false
	}
	return !m.Boosted || m.SinceBoost > r.profile.BoostCooldown
}

func headroom(factor, room float64, build func(float64) ForceCommand) ForceCommand {
	dv := stdmath.Min(factor, room)
	if !(dv > 0) {
		return Idle{}
	}
	return build(dv)
}

func lastAccelerate(commands []ForceCommand) (Accelerate, bool) {
	for i := len(commands) - 1; i >= 0; i-- {
		if a, ok := commands[i].(Accelerate); ok {
			return a, true
		}
	}
	return Accelerate{}, false
}
