// Package trigger provides step-cadence predicates for recording policies.
// All triggers answer ShouldFire(step); the Interval trigger keeps the last
// step it fired on as its history.
package trigger

// Always fires on every step.
func Always() *Constant { return &Constant{fire: true} }

// Never suppresses every step.
func Never() *Constant { return &Constant{} }

// Constant fires (or not) unconditionally.
type Constant struct {
	fire bool
}

// ShouldFire reports the constant decision regardless of step.
func (c *Constant) ShouldFire(step int64) bool { return c.fire }

// Interval fires once the step has advanced at least n past the step of the
// previous firing. The first call always fires.
type Interval struct {
	n     int64
	last  int64
	fired bool
}

// Every returns an Interval trigger firing every n steps. n < 1 is treated
// as 1.
func Every(n int64) *Interval {
	if n < 1 {
		n = 1
	}
	return &Interval{n: n}
}

// ShouldFire reports whether step is due, recording it as the new last-fired
// step when it is.
func (i *Interval) ShouldFire(step int64) bool {
	if i.fired && step-i.last < i.n {
		return false
	}
	i.fired = true
	i.last = step
	return true
}
