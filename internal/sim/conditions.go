package sim

import "strings"

// ConditionRule describes a detected clinical syndrome that charges a
// recurring vitals penalty every IntervalMinutes of game time until one of
// the MitigatedBy interventions has been applied. Mitigation is permanent
// for the rest of the session.
type ConditionRule struct {
	Key             string
	Keywords        []string
	IntervalMinutes int
	Penalty         Delta
	MitigatedBy     []string
}

// conditionRules is iterated in declaration order during narrative scans.
var conditionRules = []ConditionRule{
	{
		Key:             "sepse",
		Keywords:        []string{"sepse", "sepsis", "choque septico", "infeccao grave", "foco infeccioso"},
		IntervalMinutes: 15,
		Penalty:         Delta{HeartRate: 3, SystolicBP: -4, DiastolicBP: -2, Temperature: 0.2},
		MitigatedBy:     []string{"antibiotico", "ceftriaxona", "piperacilina", "tazobactam", "meropenem", "vancomicina"},
	},
	{
		Key:             "hemorragia",
		Keywords:        []string{"hemorragia", "sangramento ativo", "choque hemorragico", "politrauma"},
		IntervalMinutes: 10,
		Penalty:         Delta{HeartRate: 5, SystolicBP: -6, DiastolicBP: -4},
		MitigatedBy:     []string{"reposicao_volemica", "cristaloide", "hemoderivado", "transfusao"},
	},
	{
		Key:             "hipoxemia",
		Keywords:        []string{"hipoxemia", "hipoxia", "dessaturacao", "insuficiencia respiratoria", "cianose"},
		IntervalMinutes: 10,
		Penalty:         Delta{SpO2: -3, RespRate: 2},
		MitigatedBy:     []string{"o2_suplementar", "oxigenio", "ventilacao_mecanica", "intubacao"},
	},
	{
		Key:             "febre",
		Keywords:        []string{"febre", "hipertermia", "estado febril"},
		IntervalMinutes: 20,
		Penalty:         Delta{HeartRate: 2, Temperature: 0.3},
		MitigatedBy:     []string{"dipirona", "paracetamol"},
	},
	{
		Key:             "arritmia",
		Keywords:        []string{"fibrilacao ventricular", "taquicardia ventricular", "arritmia maligna", "ritmo chocavel"},
		IntervalMinutes: 5,
		Penalty:         Delta{HeartRate: 8, SystolicBP: -5},
		MitigatedBy:     []string{"desfibrilacao", "cardioversao", "amiodarona"},
	},
}

// DetectConditions scans narrative text for condition keywords and returns
// the matching rule keys in catalog order. The caller replaces its active
// set wholesale with the result: conditions can resolve between turns.
func DetectConditions(narrative string) []string {
	norm := Normalize(narrative)
	var active []string
	for _, rule := range conditionRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(norm, Normalize(kw)) {
				active = append(active, rule.Key)
				break
			}
		}
	}
	return active
}

// ConditionRuleFor returns the rule registered under key.
func ConditionRuleFor(key string) (ConditionRule, bool) {
	for _, rule := range conditionRules {
		if rule.Key == key {
			return rule, true
		}
	}
	return ConditionRule{}, false
}
