package core

import "math"

// Speed slider range and the frame waits at either end of it.
const (
	MinSpeed = 0
	MaxSpeed = 99

	SlowestWait = 60
	FastestWait = 1
)

// SpeedToWait maps a speed slider value to the number of frames the driver
// waits between steps. The mapping is linear from SlowestWait at MinSpeed to
// FastestWait at MaxSpeed; out-of-range speeds are clamped.
func SpeedToWait(speed int) int {
	speed = ClampSpeed(speed)
	slope := float64(FastestWait-SlowestWait) / float64(MaxSpeed-MinSpeed)
	wait := SlowestWait + int(math.Floor(slope*float64(speed-MinSpeed)))
	if wait < FastestWait {
		wait = FastestWait
	}
	if wait > SlowestWait {
		wait = SlowestWait
	}
	return wait
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// FrameGate decides on which animation frames the simulation advances. Each
// call to Tick either counts a frame or, once wait frames have been counted,
// fires and starts over.
type FrameGate struct {
	wait    int
	counter int
}

// NewFrameGate constructs a gate that fires after wait counted frames.
func NewFrameGate(wait int) *FrameGate {
	g := &FrameGate{}
	g.SetWait(wait)
	return g
}

// SetWait changes the threshold. It is safe to call from the main loop; the
// current count is kept.
func (g *FrameGate) SetWait(wait int) {
	if wait < 0 {
		wait = 0
	}
	g.wait = wait
}

// Wait returns the current threshold.
func (g *FrameGate) Wait() int { return g.wait }

// Tick reports whether the simulation should step on this frame.
func (g *FrameGate) Tick() bool {
	if g.counter >= g.wait {
		g.counter = 0
		return true
	}
	g.counter++
	return false
}

// Reset zeroes the frame counter.
func (g *FrameGate) Reset() { g.counter = 0 }
