// Package stats tracks frame-time statistics with exponentially weighted
// moving estimates, so a spiky frame shows up without keeping a sample
// window.
package stats

import "math"

// Frame maintains mean, variance and a 99th-percentile tracker of frame
// times. Samples decay with the configured half-life: a sample from
// half-life seconds ago carries half the weight of the current one.
type Frame struct {
	halfLife     float64
	mean         float64
	variance     float64
	percentile99 float64
}

func NewFrame(halfLife float64) *Frame {
	return &Frame{
		halfLife:     halfLife,
		mean:         1.0 / 60.0,
		percentile99: 1.0 / 60.0,
	}
}

// Update folds one frame time (seconds) into the estimates.
func (f *Frame) Update(frameTime float64) {
	alpha := math.Pow(2, -frameTime/f.halfLife)
	f.mean = alpha*f.mean + (1-alpha)*frameTime
	d := f.mean - frameTime
	f.variance = alpha*f.variance + (1-alpha)*d*d

	// Stochastic percentile tracking: step down slowly when under the
	// estimate, up fast when over, in proportion 1:99.
	step := f.Std() / 100
	if frameTime < f.percentile99 {
		f.percentile99 -= step / 0.99
	}
	if frameTime > f.percentile99 {
		f.percentile99 += step / 0.01
	}
}

func (f *Frame) Mean() float64     { return f.mean }
func (f *Frame) Variance() float64 { return f.variance }
func (f *Frame) Std() float64      { return math.Sqrt(f.variance) }

// Percentile99 is the tracked 99th percentile of frame times.
func (f *Frame) Percentile99() float64 { return f.percentile99 }
