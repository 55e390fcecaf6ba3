package narrative

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/medsimlab/clinsim/internal/sim"
)

// Best-effort extraction of vitals from the generator's prose. Format
// drift degrades silently to the base value, never to an error.
var (
	reHeartRate = regexp.MustCompile(`(?i)\bFC\s*[:=]?\s*(\d{1,3})`)
	rePressure  = regexp.MustCompile(`(?i)\bPA\s*[:=]?\s*(\d{1,3})\s*[/xX]\s*(\d{1,3})`)
	reSpO2      = regexp.MustCompile(`(?i)\b(?:SpO2|SatO2|Sat)\s*[:=]?\s*(\d{1,3})`)
	reRespRate  = regexp.MustCompile(`(?i)\bFR\s*[:=]?\s*(\d{1,2})`)
	reTemp      = regexp.MustCompile(`(?i)\b(?:Temp|Tax|T)\s*[:=]?\s*(\d{2}(?:[.,]\d)?)\s*°?\s*C`)
)

// ParseVitals scans text for vital-sign mentions and overlays every field
// found onto base. Fields absent from the text keep the base value; the
// result is clamped.
func ParseVitals(text string, base sim.Vitals) sim.Vitals {
	v := base

	if m := reHeartRate.FindStringSubmatch(text); m != nil {
		v.HeartRate = atoiOr(m[1], v.HeartRate)
	}
	if m := rePressure.FindStringSubmatch(text); m != nil {
		v.SystolicBP = atoiOr(m[1], v.SystolicBP)
		v.DiastolicBP = atoiOr(m[2], v.DiastolicBP)
	}
	if m := reSpO2.FindStringSubmatch(text); m != nil {
		v.SpO2 = atoiOr(m[1], v.SpO2)
	}
	if m := reRespRate.FindStringSubmatch(text); m != nil {
		v.RespRate = atoiOr(m[1], v.RespRate)
	}
	if m := reTemp.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			v.Temperature = f
		}
	}
	return sim.Clamp(v)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// ParseAcuity maps the generator's estado_paciente to an engine acuity.
// Anything unrecognized falls back to stable, which decays nothing: a
// garbled classification must never destabilize the numeric state.
func ParseAcuity(estado string) sim.Acuity {
	switch norm := sim.Normalize(estado); {
	case strings.Contains(norm, "obito") || strings.Contains(norm, "morte"):
		return sim.AcuityDeceased
	case strings.Contains(norm, "curado") || strings.Contains(norm, "alta"):
		return sim.AcuityCured
	case strings.Contains(norm, "critico"):
		return sim.AcuityCritical
	case strings.Contains(norm, "instavel"):
		return sim.AcuityUnstable
	case strings.Contains(norm, "estavel"):
		return sim.AcuityStable
	default:
		return sim.AcuityStable
	}
}
