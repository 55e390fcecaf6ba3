// Package sim implements the deterministic physiology engine: the numeric
// vital-signs state machine that tracks the simulated patient independently
// of the narrative generator. It applies scripted effects for recognized
// interventions, degrades vitals over game time according to patient acuity,
// and charges recurring penalties for active, unmitigated conditions.
package sim

import "math"

// Vitals is the authoritative numeric snapshot of the simulated patient.
type Vitals struct {
	HeartRate   int     // bpm
	SystolicBP  int     // mmHg
	DiastolicBP int     // mmHg
	SpO2        int     // %
	RespRate    int     // breaths/min
	Temperature float64 // °C
}

// Delta is a signed adjustment to Vitals. Zero fields leave the
// corresponding vital unchanged.
type Delta struct {
	HeartRate   float64
	SystolicBP  float64
	DiastolicBP float64
	SpO2        float64
	RespRate    float64
	Temperature float64
}

// Scale multiplies every field of d by f.
func (d Delta) Scale(f float64) Delta {
	return Delta{
		HeartRate:   d.HeartRate * f,
		SystolicBP:  d.SystolicBP * f,
		DiastolicBP: d.DiastolicBP * f,
		SpO2:        d.SpO2 * f,
		RespRate:    d.RespRate * f,
		Temperature: d.Temperature * f,
	}
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

type clampRange struct {
	min, max float64
}

var (
	clampHR   = clampRange{0, 250}
	clampSBP  = clampRange{0, 250}
	clampDBP  = clampRange{0, 180}
	clampSpO2 = clampRange{0, 99}
	clampRR   = clampRange{0, 60}
	clampTemp = clampRange{30, 42}
)

// DefaultVitals returns the baseline healthy-adult vector used when a
// session starts without case-specific seed vitals.
func DefaultVitals() Vitals {
	return Vitals{
		HeartRate:   80,
		SystolicBP:  120,
		DiastolicBP: 80,
		SpO2:        97,
		RespRate:    16,
		Temperature: 36.5,
	}
}

// Clamp forces every field of v into its physiological range. Integer
// fields are already whole; temperature is rounded to one decimal.
func Clamp(v Vitals) Vitals {
	return Vitals{
		HeartRate:   clampInt(float64(v.HeartRate), clampHR),
		SystolicBP:  clampInt(float64(v.SystolicBP), clampSBP),
		DiastolicBP: clampInt(float64(v.DiastolicBP), clampDBP),
		SpO2:        clampInt(float64(v.SpO2), clampSpO2),
		RespRate:    clampInt(float64(v.RespRate), clampRR),
		Temperature: clampTenths(v.Temperature, clampTemp),
	}
}

// Apply adds d to v field by field, then clamps and rounds. Every engine
// mutation path goes through here so no unclamped state is ever observable.
func (v Vitals) Apply(d Delta) Vitals {
	return Vitals{
		HeartRate:   clampInt(float64(v.HeartRate)+d.HeartRate, clampHR),
		SystolicBP:  clampInt(float64(v.SystolicBP)+d.SystolicBP, clampSBP),
		DiastolicBP: clampInt(float64(v.DiastolicBP)+d.DiastolicBP, clampDBP),
		SpO2:        clampInt(float64(v.SpO2)+d.SpO2, clampSpO2),
		RespRate:    clampInt(float64(v.RespRate)+d.RespRate, clampRR),
		Temperature: clampTenths(v.Temperature+d.Temperature, clampTemp),
	}
}

func clampInt(x float64, r clampRange) int {
	return int(math.Round(clampFloat(x, r)))
}

func clampTenths(x float64, r clampRange) float64 {
	return math.Round(clampFloat(x, r)*10) / 10
}

func clampFloat(x float64, r clampRange) float64 {
	if x < r.min {
		return r.min
	}
	if x > r.max {
		return r.max
	}
	return x
}
