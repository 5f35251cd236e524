package vehicle

import (
	"testing"
	"time"

	"github.com/automoto/skidmark/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	p := config.DefaultProfile()
	r := NewResolver(p)
	cooled := p.BoostCooldown + time.Millisecond

	tests := []struct {
		name   string
		motion Motion
		input  Input
		want   []ForceCommand
	}{
		{"no input", Motion{Stopped: true}, Input{}, []ForceCommand{Idle{}}},
		{"up from rest", Motion{Stopped: true}, Input{Up: true}, []ForceCommand{Accelerate{DeltaV: p.AccelerationFactor}}},
		{"up moving forward", Motion{ForwardSpeed: 3}, Input{Up: true}, []ForceCommand{Accelerate{DeltaV: p.AccelerationFactor}}},
		{"up near cap uses headroom", Motion{ForwardSpeed: p.MaxSpeed - 0.1}, Input{Up: true}, []ForceCommand{Accelerate{DeltaV: 0.1}}},
		{"up at cap", Motion{ForwardSpeed: p.MaxSpeed}, Input{Up: true}, []ForceCommand{Idle{}}},
		{"up moving backward brakes", Motion{ForwardSpeed: -3}, Input{Up: true}, []ForceCommand{Brake{DeltaV: p.BrakeFactor}}},
		{"down from rest", Motion{Stopped: true}, Input{Down: true}, []ForceCommand{Reverse{DeltaV: p.ReverseFactor}}},
		{"down moving backward", Motion{ForwardSpeed: -2}, Input{Down: true}, []ForceCommand{Reverse{DeltaV: p.ReverseFactor}}},
		{"down at reverse cap", Motion{ForwardSpeed: -p.MaxReverseSpeed}, Input{Down: true}, []ForceCommand{Idle{}}},
		{"down moving forward brakes", Motion{ForwardSpeed: 4}, Input{Down: true}, []ForceCommand{Brake{DeltaV: p.BrakeFactor}}},
		{"up and down cancel", Motion{ForwardSpeed: 4}, Input{Up: true, Down: true}, []ForceCommand{Idle{}}},
		{"first boost", Motion{ForwardSpeed: 5}, Input{Boost: true}, []ForceCommand{Boost{DeltaV: p.BoostFactor}}},
		{"boost on cooldown", Motion{ForwardSpeed: 5, Boosted: true, SinceBoost: p.BoostCooldown}, Input{Boost: true}, []ForceCommand{Idle{}}},
		{"boost after cooldown", Motion{ForwardSpeed: 5, Boosted: true, SinceBoost: cooled}, Input{Boost: true}, []ForceCommand{Boost{DeltaV: p.BoostFactor}}},
		{"boost while stopped", Motion{Stopped: true}, Input{Boost: true}, []ForceCommand{Idle{}}},
		{"boost while reversing", Motion{ForwardSpeed: -5}, Input{Boost: true}, []ForceCommand{Idle{}}},
		{"boost at cap", Motion{ForwardSpeed: p.MaxBoostSpeed}, Input{Boost: true}, []ForceCommand{Idle{}}},
		{"boost near cap uses headroom", Motion{ForwardSpeed: p.MaxBoostSpeed - 1}, Input{Boost: true}, []ForceCommand{Boost{DeltaV: 1}}},
		{
			"boost headroom includes drive",
			Motion{ForwardSpeed: p.MaxBoostSpeed - 2, Boosted: true, SinceBoost: cooled},
			Input{Up: true, Boost: true},
			[]ForceCommand{Boost{DeltaV: 2}},
		},
		{
			"drive then boost",
			Motion{ForwardSpeed: 10},
			Input{Up: true, Boost: true},
			[]ForceCommand{Accelerate{DeltaV: p.AccelerationFactor}, Boost{DeltaV: p.BoostFactor}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.motion, tt.input)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				if i >= len(got) {
					break
				}
				assert.IsType(t, tt.want[i], got[i])
				assert.InDelta(t, deltaV(tt.want[i]), deltaV(got[i]), 1e-9)
			}
		})
	}
}

func TestBrakeAndDriveAreExclusive(t *testing.T) {
	r := NewResolver(config.DefaultProfile())
	for _, speed := range []float64{-10, -0.5, 0.5, 10} {
		for _, in := range []Input{{Up: true}, {Down: true}} {
			var directional int
			for _, c := range r.Resolve(Motion{ForwardSpeed: speed}, in) {
				switch c.(type) {
				case Accelerate, Reverse, Brake:
					directional++
				}
			}
			assert.LessOrEqual(t, directional, 1, "speed %v input %+v", speed, in)
		}
	}
}

func TestIdleStandsAlone(t *testing.T) {
	p := config.DefaultProfile()
	r := NewResolver(p)
	cooled := p.BoostCooldown + 1
	speeds := []float64{-p.MaxReverseSpeed, -1, 0, 1, p.MaxSpeed, p.MaxBoostSpeed - 1, p.MaxBoostSpeed}
	inputs := []Input{{}, {Up: true}, {Down: true}, {Boost: true}, {Up: true, Boost: true}, {Down: true, Boost: true}}

	for _, speed := range speeds {
		for _, in := range inputs {
			got := r.Resolve(Motion{ForwardSpeed: speed, Stopped: speed == 0, Boosted: true, SinceBoost: cooled}, in)
			require.NotEmpty(t, got)
			for _, c := range got {
				if _, idle := c.(Idle); idle {
					assert.Len(t, got, 1, "speed %v input %+v: %v", speed, in, got)
				}
			}
		}
	}
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "boost", CommandName(Boost{}))
	assert.Equal(t, "none", CommandName(nil))
}

func deltaV(c ForceCommand) float64 {
	switch c := c.(type) {
	case Accelerate:
		return c.DeltaV
	case Reverse:
		return c.DeltaV
	case Brake:
		return c.DeltaV
	case Boost:
		return c.DeltaV
	}
	return 0
}
