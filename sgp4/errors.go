package sgp4

import "fmt"

// BadEccentricityError reports a TLE eccentricity outside [0, 1), raised by
// the initializer's constructor. Propagate itself never raises it — drag
// driving eccentricity out of range during propagation is reported as
// DecayedError instead.
type BadEccentricityError struct {
	Value float64
}

func (e *BadEccentricityError) Error() string {
	return fmt.Sprintf("sgp4: eccentricity %v outside [0, 1)", e.Value)
}

// DecayedError reports an orbit that has decayed: perigee below the
// physical floor at initialization, or a < 0.95, e outside [0, 0.999], or a
// negative semi-latus rectum during propagation.
type DecayedError struct {
	Reason string
	Detail float64
}

func (e *DecayedError) Error() string {
	return fmt.Sprintf("sgp4: decayed (%s, value=%v)", e.Reason, e.Detail)
}
