package casegen

import (
	"fmt"

	"github.com/medsimlab/clinsim/internal/sim"
)

type caseTemplate struct {
	ID        string
	Name      string
	Specialty string
	// MatchSpecialties are the requested specialties that can trigger
	// this template.
	MatchSpecialties []string
	// BaseVitals are the pre-adjustment seed vitals.
	BaseVitals sim.Vitals
	// BuildScenario renders the natural-language case prompt for the
	// drawn profile. It may consume randomness for scenario variety.
	BuildScenario func(g *Generator, p Profile) string
}

func sexWord(sex string) string {
	if sex == "M" {
		return "masculino"
	}
	return "feminino"
}

var templates = []caseTemplate{
	{
		ID:               "iam_stemi",
		Name:             "Infarto Agudo do Miocárdio (STEMI)",
		Specialty:        "Cardiologia",
		MatchSpecialties: []string{"Cardiologia", "Trauma / Emergência"},
		BaseVitals:       sim.Vitals{HeartRate: 95, SystolicBP: 135, DiastolicBP: 85, SpO2: 95, RespRate: 20, Temperature: 36.8},
		BuildScenario: func(g *Generator, p Profile) string {
			var painDesc, duration string
			switch p.Severity {
			case SeveritySevere:
				painDesc = "dor torácica intensa, opressiva, irradiando para membro superior esquerdo e mandíbula, sudorese profusa, náuseas e sensação de morte iminente"
				duration = "há 1 hora"
			case SeverityModerate:
				painDesc = "dor torácica em aperto há 2 horas, irradiando para ombro esquerdo, com náuseas leves"
				duration = "há 3 horas"
			default:
				painDesc = "desconforto torácico retroesternal há 4 horas, em aperto, sem irradiação clara"
				duration = "há 6 horas"
			}
			return fmt.Sprintf(
				"Paciente %s, %d anos, dá entrada na emergência com %s, iniciada %s. Antecedentes: %s. Gravidade do quadro: %s. Gere um caso de IAM com Supra de ST adequado a este perfil.",
				sexWord(p.Sex), p.Age, painDesc, duration, formatComorbidities(p.Comorbidities), p.Severity,
			)
		},
	},
	{
		ID:               "pneumonia_cap",
		Name:             "Pneumonia Adquirida na Comunidade",
		Specialty:        "Pneumologia",
		MatchSpecialties: []string{"Pneumologia", "Infectologia", "Trauma / Emergência"},
		BaseVitals:       sim.Vitals{HeartRate: 100, SystolicBP: 115, DiastolicBP: 70, SpO2: 91, RespRate: 24, Temperature: 38.5},
		BuildScenario: func(g *Generator, p Profile) string {
			var onset string
			switch p.Severity {
			case SeveritySevere:
				onset = "dispneia intensa, tosse produtiva com escarro purulento, febre alta (39.5°C) há 2 dias, confusão mental"
			case SeverityModerate:
				onset = "tosse produtiva há 5 dias, febre de 38.5°C, dispneia aos esforços moderados"
			default:
				onset = "tosse com expectoração amarelada há 7 dias, febre baixa intermitente, sem dispneia em repouso"
			}
			return fmt.Sprintf(
				"Paciente %s, %d anos, chega à emergência com %s. Antecedentes: %s. Gravidade do quadro: %s. Gere um caso de Pneumonia Adquirida na Comunidade adequado a este perfil.",
				sexWord(p.Sex), p.Age, onset, formatComorbidities(p.Comorbidities), p.Severity,
			)
		},
	},
	{
		ID:               "sepse",
		Name:             "Sepse / Choque Séptico",
		Specialty:        "Infectologia",
		MatchSpecialties: []string{"Infectologia", "Trauma / Emergência", "Pneumologia"},
		BaseVitals:       sim.Vitals{HeartRate: 110, SystolicBP: 95, DiastolicBP: 55, SpO2: 92, RespRate: 26, Temperature: 38.8},
		BuildScenario: func(g *Generator, p Profile) string {
			foci := []string{"urinário", "pulmonar", "abdominal", "cutâneo"}
			focus := foci[g.rng.IntN(len(foci))]
			var desc string
			switch p.Severity {
			case SeveritySevere:
				desc = fmt.Sprintf("quadro de choque séptico com hipotensão refratária, alteração do nível de consciência, lactato elevado, foco %s", focus)
			case SeverityModerate:
				desc = fmt.Sprintf("sepse com taquicardia, febre alta, hipotensão leve, foco provável %s", focus)
			default:
				desc = fmt.Sprintf("sinais de SIRS com foco infeccioso %s, sem disfunção orgânica evidente", focus)
			}
			return fmt.Sprintf(
				"Paciente %s, %d anos, trazido à emergência com %s. Antecedentes: %s. Gravidade do quadro: %s. Gere um caso de Sepse adequado a este perfil.",
				sexWord(p.Sex), p.Age, desc, formatComorbidities(p.Comorbidities), p.Severity,
			)
		},
	},
}
