package vignette

import "math"

// Params are the time-varying visual knobs for one vignette. Everything is a
// pure function of elapsed seconds: the client asks for fresh params each
// frame instead of mutating render objects.
type Params struct {
	Opacity   float64 `json:"opacity,omitempty"`   // spill surface pulse
	Tilt      float64 `json:"tilt,omitempty"`      // stacking wobble, radians
	Sway      float64 `json:"sway,omitempty"`      // loose signage, radians
	Intensity float64 `json:"intensity,omitempty"` // flickering fixture light
	Spark     bool    `json:"spark,omitempty"`     // electrical arc flash
}

// Animate computes the cosmetic animation state for a vignette kind at
// elapsed seconds. Identified vignettes are static; callers skip this once a
// hazard is found.
func Animate(kind Kind, elapsed float64) Params {
	switch kind {
	case KindSpill, KindChemical:
		return Params{Opacity: 0.6 + math.Sin(elapsed*2)*0.1}
	case KindStacking:
		return Params{Tilt: math.Sin(elapsed*0.5) * 0.02}
	case KindPPESign, KindDockEdge:
		return Params{Sway: math.Sin(elapsed*1.5) * 0.05}
	case KindLighting:
		// Flicker: mostly on, randomly dark. Sampled at 10 Hz from a
		// hash of the time bucket so the pattern is reproducible.
		n := noise(int64(elapsed * 10))
		if n > 0.7 {
			return Params{Intensity: 0}
		}
		return Params{Intensity: 1 + n*0.5}
	case KindElectrical:
		return Params{Spark: noise(int64(elapsed*10)+1) > 0.8}
	}
	return Params{}
}

// noise is a cheap deterministic hash of n into [0, 1).
func noise(n int64) float64 {
	x := uint64(n)*0x9e3779b97f4a7c15 + 0xbf58476d1ce4e5b9
	x ^= x >> 30
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return float64(x%1_000_000) / 1_000_000
}
