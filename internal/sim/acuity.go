package sim

// Acuity is the coarse clinical severity classification supplied by the
// caller each tick. The wire values match the narrative generator's
// estado_paciente vocabulary.
type Acuity string

const (
	AcuityStable   Acuity = "ESTAVEL"
	AcuityUnstable Acuity = "INSTAVEL"
	AcuityCritical Acuity = "CRITICO"
	AcuityDeceased Acuity = "OBITO"
	AcuityCured    Acuity = "CURADO"
)

// Terminal reports whether a reaches an end-of-game state.
func (a Acuity) Terminal() bool {
	return a == AcuityDeceased || a == AcuityCured
}

// Per-minute degradation profiles. An unknown acuity falls back to the
// stable profile, i.e. zero decay: a single bad narrative turn must never
// crash or distort the simulation.
var decayProfiles = map[Acuity]Delta{
	AcuityStable: {},
	AcuityUnstable: {
		HeartRate:   2,
		SystolicBP:  -2,
		DiastolicBP: -1,
		SpO2:        -0.5,
		RespRate:    1,
		Temperature: 0.05,
	},
	AcuityCritical: {
		HeartRate:   5,
		SystolicBP:  -5,
		DiastolicBP: -3,
		SpO2:        -1.5,
		RespRate:    2,
		Temperature: 0.1,
	},
	AcuityDeceased: {Temperature: -0.2},
	AcuityCured:    {},
}

func decayProfile(a Acuity) Delta {
	if p, ok := decayProfiles[a]; ok {
		return p
	}
	return decayProfiles[AcuityStable]
}
