package sim

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Intervention is one catalog entry: a normalized keyword, the immediate
// vitals effect it causes and the game-minutes it consumes.
type Intervention struct {
	Key         string
	Effect      Delta
	CostMinutes int
}

// DefaultActionCost is charged for actions that match nothing in the
// catalog: examining, talking, ordering labs and so on still spend time.
const DefaultActionCost = 5

// interventionCatalog is iterated in declaration order and the first key
// contained in the normalized action text wins. The ordering is a
// load-bearing contract: an action matching two keys only ever returns the
// earlier one.
var interventionCatalog = []Intervention{
	// Medications.
	{Key: "epinefrina", Effect: Delta{HeartRate: 20, SystolicBP: 15, DiastolicBP: 10}, CostMinutes: 2},
	{Key: "adrenalina", Effect: Delta{HeartRate: 20, SystolicBP: 15, DiastolicBP: 10}, CostMinutes: 2},
	{Key: "atropina", Effect: Delta{HeartRate: 15}, CostMinutes: 2},
	{Key: "amiodarona", Effect: Delta{HeartRate: -15}, CostMinutes: 3},
	{Key: "noradrenalina", Effect: Delta{HeartRate: 5, SystolicBP: 20, DiastolicBP: 12}, CostMinutes: 4},
	{Key: "dobutamina", Effect: Delta{HeartRate: 10, SystolicBP: 10}, CostMinutes: 4},
	{Key: "nitroprussiato", Effect: Delta{SystolicBP: -25, DiastolicBP: -15}, CostMinutes: 4},
	{Key: "furosemida", Effect: Delta{SystolicBP: -10, DiastolicBP: -5}, CostMinutes: 3},
	{Key: "dipirona", Effect: Delta{Temperature: -1.0}, CostMinutes: 3},
	{Key: "paracetamol", Effect: Delta{Temperature: -0.8}, CostMinutes: 3},
	{Key: "midazolam", Effect: Delta{HeartRate: -5, RespRate: -3}, CostMinutes: 2},
	{Key: "fentanil", Effect: Delta{HeartRate: -5, SystolicBP: -10, RespRate: -4}, CostMinutes: 2},
	{Key: "morfina", Effect: Delta{HeartRate: -5, SystolicBP: -8, RespRate: -3}, CostMinutes: 2},
	{Key: "salbutamol", Effect: Delta{HeartRate: 10, SpO2: 3, RespRate: -4}, CostMinutes: 5},
	{Key: "hidrocortisona", Effect: Delta{SpO2: 2}, CostMinutes: 3},

	// Procedures.
	{Key: "o2_suplementar", Effect: Delta{SpO2: 5}, CostMinutes: 2},
	{Key: "oxigenio", Effect: Delta{SpO2: 5}, CostMinutes: 2},
	{Key: "ventilacao_mecanica", Effect: Delta{SpO2: 8, RespRate: -6}, CostMinutes: 10},
	{Key: "intubacao", Effect: Delta{SpO2: 10, RespRate: -4}, CostMinutes: 8},
	{Key: "acesso_venoso", Effect: Delta{}, CostMinutes: 3},
	{Key: "desfibrilacao", Effect: Delta{HeartRate: 40, SystolicBP: 10}, CostMinutes: 2},
	{Key: "cardioversao", Effect: Delta{HeartRate: -30, SystolicBP: 5}, CostMinutes: 5},
	{Key: "drenagem_torax", Effect: Delta{SpO2: 6, RespRate: -3}, CostMinutes: 12},
	{Key: "reposicao_volemica", Effect: Delta{HeartRate: -5, SystolicBP: 15, DiastolicBP: 10}, CostMinutes: 10},
	{Key: "cristaloide", Effect: Delta{HeartRate: -5, SystolicBP: 12, DiastolicBP: 8}, CostMinutes: 10},
	{Key: "hemoderivado", Effect: Delta{HeartRate: -8, SystolicBP: 18, DiastolicBP: 12}, CostMinutes: 15},
	{Key: "rcp", Effect: Delta{HeartRate: 30, SystolicBP: 20}, CostMinutes: 2},
	{Key: "massagem_cardiaca", Effect: Delta{HeartRate: 30, SystolicBP: 20}, CostMinutes: 2},
}

// criticalActions are clinically significant action names recorded in the
// applied-intervention set even when they carry no vitals effect. The
// protocol evaluator and the condition mitigation check both read from that
// set, so soft actions (labs, antibiotics, monitoring) must land here.
var criticalActions = []string{
	"ecg",
	"eletrocardiograma",
	"monitoriz",
	"oximetria",
	"exame_fisico",
	"acesso_venoso",
	"lactato",
	"hemocultura",
	"gasometria",
	"antibiotico",
	"ceftriaxona",
	"piperacilina",
	"tazobactam",
	"meropenem",
	"vancomicina",
	"aas",
	"aspirina",
	"clopidogrel",
	"ticagrelor",
	"heparina",
	"enoxaparina",
	"cateterismo",
	"angioplastia",
	"trombolise",
	"trombolitico",
	"rx_torax",
	"radiografia",
	"tomografia",
	"ultrassom",
	"fast",
	"transfusao",
}

// MatchIntervention finds the first catalog entry whose key is contained in
// the normalized action text. ok is false when nothing matches; the action
// then costs DefaultActionCost minutes and changes no vitals.
func MatchIntervention(actionText string) (Intervention, bool) {
	norm := Normalize(actionText)
	for _, iv := range interventionCatalog {
		if strings.Contains(norm, iv.Key) {
			return iv, true
		}
	}
	return Intervention{}, false
}

// CriticalActionsIn returns every critical-action name contained in the
// normalized action text, in catalog order.
func CriticalActionsIn(actionText string) []string {
	norm := Normalize(actionText)
	var found []string
	for _, name := range criticalActions {
		if strings.Contains(norm, name) {
			found = append(found, name)
		}
	}
	return found
}

// MatchDiagnostics reports every catalog key the text would match, plus
// near-miss suggestions for unmatched input. First-match-wins ambiguity is
// silent at runtime; this is the debugging view of it.
type MatchDiagnostics struct {
	Matched     []string
	Critical    []string
	Suggestions []string
}

// DiagnoseMatch runs the full catalog against the action text instead of
// stopping at the first hit. Suggestions are catalog keys within a small
// edit distance of any token of the input, closest first.
func DiagnoseMatch(actionText string) MatchDiagnostics {
	norm := Normalize(actionText)
	var d MatchDiagnostics
	for _, iv := range interventionCatalog {
		if strings.Contains(norm, iv.Key) {
			d.Matched = append(d.Matched, iv.Key)
		}
	}
	d.Critical = CriticalActionsIn(actionText)
	if len(d.Matched) > 0 {
		return d
	}

	type scored struct {
		key  string
		dist int
	}
	var near []scored
	for _, token := range strings.Split(norm, "_") {
		if len(token) < 4 {
			continue
		}
		for _, iv := range interventionCatalog {
			dist := levenshtein.ComputeDistance(token, iv.Key)
			if dist > 0 && dist <= 2 {
				near = append(near, scored{key: iv.Key, dist: dist})
			}
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	seen := make(map[string]bool)
	for _, s := range near {
		if seen[s.key] {
			continue
		}
		seen[s.key] = true
		d.Suggestions = append(d.Suggestions, s.key)
	}
	return d
}
