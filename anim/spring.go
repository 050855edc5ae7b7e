package anim

import "math"

// Spring drives a scalar toward Target using semi-implicit Euler
// integration of a damped harmonic oscillator, grounded on willow's
// Camera.followLerp damped-follow update (generalized from a fixed
// lerp fraction to a stiffness/damping-ratio spring so it overshoots
// and settles like a physical spring rather than a pure exponential
// decay).
type Spring struct {
	Stiffness     float64 // rad/s natural frequency squared scale
	DampingRatio  float64 // 1.0 = critically damped
	SettlePrecision float64 // |value-target| and |velocity| below this settle

	Value    float64
	Velocity float64
	Target   float64

	st state
}

// NewSpring returns a Spring starting at value, seeking target.
func NewSpring(value, target, stiffness, dampingRatio, settlePrecision float64) *Spring {
	if settlePrecision <= 0 {
		settlePrecision = 1e-3
	}
	return &Spring{
		Stiffness:       stiffness,
		DampingRatio:    dampingRatio,
		SettlePrecision: settlePrecision,
		Value:           value,
		Target:          target,
	}
}

// update integrates one semi-implicit Euler step of
//
//	a = -stiffness*(value-target) - 2*dampingRatio*sqrt(stiffness)*velocity
//	velocity += a*dt
//	value += velocity*dt
//
// and reports whether the spring is still running (false once both
// displacement and velocity fall under SettlePrecision, at which point
// Value is snapped exactly to Target for a deterministic settle).
func (s *Spring) update(dt float64) bool {
	if s.st != running {
		return false
	}
	disp := s.Value - s.Target
	accel := -s.Stiffness*disp - 2*s.DampingRatio*math.Sqrt(s.Stiffness)*s.Velocity
	s.Velocity += accel * dt
	s.Value += s.Velocity * dt

	if math.Abs(s.Value-s.Target) < s.SettlePrecision && math.Abs(s.Velocity) < s.SettlePrecision {
		s.Value = s.Target
		s.Velocity = 0
		s.st = complete
		return false
	}
	return true
}

func (s *Spring) cancel() {
	if s.st == running {
		s.st = cancelled
	}
}

// Done reports whether the spring has settled or been cancelled.
func (s *Spring) Done() bool { return s.st != running }
