// Package casegen procedurally builds randomized patient cases: a patient
// profile, profile-adjusted seed vitals for the physiology engine and a
// narrative prompt fragment for the case generator request.
package casegen

import (
	"math/rand/v2"
	"strings"

	"github.com/medsimlab/clinsim/internal/sim"
)

// Comorbidity is a fixed chronic-disease tag used by case templates.
type Comorbidity string

const (
	ComorbidityDM2     Comorbidity = "DM2"
	ComorbidityHAS     Comorbidity = "HAS"
	ComorbidityDPOC    Comorbidity = "DPOC"
	ComorbidityICC     Comorbidity = "ICC"
	ComorbidityIRC     Comorbidity = "IRC"
	ComorbidityObesity Comorbidity = "Obesidade"
	ComorbiditySmoking Comorbidity = "Tabagismo"
	ComorbidityHealthy Comorbidity = "Hígido"
)

var allComorbidities = []Comorbidity{
	ComorbidityDM2, ComorbidityHAS, ComorbidityDPOC, ComorbidityICC,
	ComorbidityIRC, ComorbidityObesity, ComorbiditySmoking,
}

// comorbidityNames is the display vocabulary used in scenario prompts.
var comorbidityNames = map[Comorbidity]string{
	ComorbidityDM2:     "Diabetes Mellitus tipo 2",
	ComorbidityHAS:     "Hipertensão Arterial Sistêmica",
	ComorbidityDPOC:    "Doença Pulmonar Obstrutiva Crônica",
	ComorbidityICC:     "Insuficiência Cardíaca Congestiva",
	ComorbidityIRC:     "Insuficiência Renal Crônica",
	ComorbidityObesity: "Obesidade (IMC > 30)",
	ComorbiditySmoking: "Tabagismo ativo (20 maços-ano)",
	ComorbidityHealthy: "Sem comorbidades conhecidas",
}

// Severity bands the generated presentation.
type Severity string

const (
	SeverityMild     Severity = "leve"
	SeverityModerate Severity = "moderada"
	SeveritySevere   Severity = "grave"
)

// Profile is a generated patient. Immutable once drawn; it drives a
// one-time vitals adjustment and the scenario prompt, nothing else.
type Profile struct {
	Age           int           `json:"age"`
	Sex           string        `json:"sex"` // "M" or "F"
	Comorbidities []Comorbidity `json:"comorbidities"`
	Severity      Severity      `json:"severity"`
}

// Case is the full generated output handed to the session layer.
type Case struct {
	TemplateID     string     `json:"templateId"`
	TemplateName   string     `json:"templateName"`
	Specialty      string     `json:"specialty"`
	Patient        Profile    `json:"patient"`
	InitialVitals  sim.Vitals `json:"initialVitals"`
	ScenarioPrompt string     `json:"scenarioPrompt"`
}

// Generator draws cases from an injected seedable source so generation is
// deterministic per seed while keeping the documented distributions.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded for reproducible output.
func New(seed int64) *Generator {
	return &Generator{rng: seededRNG(seed)}
}

func (g *Generator) randInt(min, max int) int {
	return g.rng.IntN(max-min+1) + min
}

func (g *Generator) pickN(n int) []Comorbidity {
	shuffled := make([]Comorbidity, len(allComorbidities))
	copy(shuffled, allComorbidities)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// Profile draws a patient: age 20-90 uniform, sex uniform, severity
// uniform, comorbidities age-weighted (younger patients biased healthy,
// older patients draw 1-3 without replacement).
func (g *Generator) Profile() Profile {
	p := Profile{
		Age:      g.randInt(20, 90),
		Severity: []Severity{SeverityMild, SeverityModerate, SeveritySevere}[g.rng.IntN(3)],
	}
	if g.rng.IntN(2) == 0 {
		p.Sex = "M"
	} else {
		p.Sex = "F"
	}

	switch {
	case p.Age < 35 && g.rng.Float64() < 0.5:
		p.Comorbidities = []Comorbidity{ComorbidityHealthy}
	case p.Age < 50:
		if g.rng.Float64() < 0.3 {
			p.Comorbidities = []Comorbidity{ComorbidityHealthy}
		} else {
			p.Comorbidities = g.pickN(g.randInt(1, 2))
		}
	default:
		p.Comorbidities = g.pickN(g.randInt(1, 3))
	}
	return p
}

// AdjustVitals perturbs a template's baseline for the drawn profile:
// age-band adjustment, one independent additive adjustment per comorbidity,
// then a severity-band adjustment, then display clamps.
func (g *Generator) AdjustVitals(base sim.Vitals, p Profile) sim.Vitals {
	v := base

	switch {
	case p.Age > 70:
		v.HeartRate += g.randInt(-5, 5)
		v.SystolicBP += g.randInt(10, 25) // elderly trend to higher SBP
		v.SpO2 -= g.randInt(1, 3)
	case p.Age < 30:
		v.HeartRate -= g.randInt(5, 10) // younger = lower resting HR
		v.SpO2 = min(99, v.SpO2+1)
	}

	for _, c := range p.Comorbidities {
		switch c {
		case ComorbidityDPOC:
			v.SpO2 -= g.randInt(3, 6)
			v.RespRate += g.randInt(2, 4)
		case ComorbidityHAS:
			v.SystolicBP += g.randInt(15, 30)
			v.DiastolicBP += g.randInt(10, 15)
		case ComorbidityDM2:
			v.HeartRate += g.randInt(0, 5)
		case ComorbidityICC:
			v.HeartRate += g.randInt(5, 15)
			v.SpO2 -= g.randInt(2, 4)
			v.RespRate += g.randInt(2, 4)
		case ComorbidityIRC:
			v.SystolicBP += g.randInt(5, 15)
		case ComorbidityObesity:
			v.SpO2 -= g.randInt(1, 3)
			v.RespRate += g.randInt(1, 2)
		case ComorbiditySmoking:
			v.SpO2 -= g.randInt(1, 2)
		case ComorbidityHealthy:
			// no adjustment
		}
	}

	switch p.Severity {
	case SeverityMild:
		// minimal deviation from baseline
	case SeverityModerate:
		v.HeartRate += g.randInt(5, 15)
		v.SystolicBP -= g.randInt(5, 10)
		v.SpO2 -= g.randInt(1, 3)
		v.RespRate += g.randInt(2, 4)
	case SeveritySevere:
		v.HeartRate += g.randInt(15, 35)
		v.SystolicBP -= g.randInt(15, 30)
		v.SpO2 -= g.randInt(4, 8)
		v.RespRate += g.randInt(4, 8)
	}

	// Display clamps are tighter than the engine's; the engine re-clamps
	// on Reset anyway.
	v.SpO2 = clampInt(v.SpO2, 60, 99)
	v.HeartRate = clampInt(v.HeartRate, 40, 180)
	v.SystolicBP = clampInt(v.SystolicBP, 60, 220)
	v.DiastolicBP = clampInt(v.DiastolicBP, 30, 140)
	v.RespRate = clampInt(v.RespRate, 10, 40)
	return sim.Clamp(v)
}

// GenerateCase draws a case for the requested specialty. Templates whose
// declared specialties overlap the request (case-insensitive substring)
// are candidates; one is picked uniformly. ok is false when no template
// matches and the caller must fall back to the unconstrained flow.
func (g *Generator) GenerateCase(specialty string) (Case, bool) {
	var candidates []caseTemplate
	for _, t := range templates {
		for _, s := range t.MatchSpecialties {
			if strings.Contains(strings.ToLower(specialty), strings.ToLower(s)) {
				candidates = append(candidates, t)
				break
			}
		}
	}
	if len(candidates) == 0 {
		return Case{}, false
	}

	tpl := candidates[g.rng.IntN(len(candidates))]
	patient := g.Profile()
	return Case{
		TemplateID:     tpl.ID,
		TemplateName:   tpl.Name,
		Specialty:      tpl.Specialty,
		Patient:        patient,
		InitialVitals:  g.AdjustVitals(tpl.BaseVitals, patient),
		ScenarioPrompt: tpl.BuildScenario(g, patient),
	}, true
}

// TemplateInfo is the display listing of an available template.
type TemplateInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Templates lists the available case templates.
func Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateInfo{ID: t.ID, Name: t.Name, Specialty: t.Specialty})
	}
	return out
}

func formatComorbidities(cs []Comorbidity) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = comorbidityNames[c]
	}
	return strings.Join(names, ", ")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
