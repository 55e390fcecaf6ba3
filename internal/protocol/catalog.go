// Package protocol holds the canonical clinical-protocol checklists and the
// evaluator that scores a session's action timeline against them. The
// catalogs are static; evaluation is pure and deterministic.
package protocol

// Item is one required action of a protocol checklist.
type Item struct {
	// ID uniquely keys the item within its protocol.
	ID string
	// Label is the human-readable action description.
	Label string
	// MatchKeywords are tested against normalized timeline text.
	MatchKeywords []string
	// TargetMinutes is the time target; 0 means no time constraint.
	TargetMinutes int
	// Weight is the scoring weight in (0,1]. Weights need not sum to 1;
	// scoring normalizes by the total.
	Weight float64
	// Reference cites the guideline backing the recommendation.
	Reference string
}

// Definition is a named protocol: detection keywords plus an ordered
// checklist of required actions.
type Definition struct {
	Name              string
	DetectionKeywords []string
	Items             []Item
}

// catalog order matters: Detect returns the first protocol whose keywords
// match, so more specific presentations must be declared first.
var catalog = []Definition{
	{
		Name:              "IAM com Supra de ST (STEMI)",
		DetectionKeywords: []string{"iam", "infarto", "stemi", "supra de st", "supradesnivelamento", "infarto agudo"},
		Items: []Item{
			{
				ID:            "iam_ecg",
				Label:         "ECG em até 10 minutos",
				MatchKeywords: []string{"ecg", "eletrocardiograma"},
				TargetMinutes: 10,
				Weight:        0.15,
				Reference:     "AHA/ACC 2023 STEMI Guidelines — ECG within 10 min of first medical contact",
			},
			{
				ID:            "iam_aas",
				Label:         "AAS 150-300mg VO",
				MatchKeywords: []string{"aas", "aspirina", "acido acetilsalicilico"},
				TargetMinutes: 15,
				Weight:        0.15,
				Reference:     "ESC 2023 ACS Guidelines — Aspirin loading dose as soon as possible",
			},
			{
				ID:            "iam_clopidogrel",
				Label:         "Clopidogrel / Inibidor P2Y12",
				MatchKeywords: []string{"clopidogrel", "ticagrelor", "prasugrel", "p2y12"},
				TargetMinutes: 30,
				Weight:        0.12,
				Reference:     "ESC 2023 — Dual antiplatelet therapy (DAPT) recommended",
			},
			{
				ID:            "iam_heparina",
				Label:         "Anticoagulação (Heparina)",
				MatchKeywords: []string{"heparina", "enoxaparina", "anticoagul"},
				TargetMinutes: 30,
				Weight:        0.12,
				Reference:     "AHA/ACC 2023 — Anticoagulation during PCI or fibrinolysis",
			},
			{
				ID:            "iam_morfina",
				Label:         "Analgesia (Morfina se dor intensa)",
				MatchKeywords: []string{"morfina", "fentanil", "analgesia"},
				Weight:        0.06,
				Reference:     "AHA 2023 — Morphine for refractory chest pain (use with caution)",
			},
			{
				ID:            "iam_reperfusao",
				Label:         "Reperfusão (Cateterismo/Trombólise) em <90min",
				MatchKeywords: []string{"cateterismo", "angioplastia", "reperfusao", "trombolise", "trombolitico", "fibrinolitico"},
				TargetMinutes: 90,
				Weight:        0.25,
				Reference:     "AHA/ACC 2023 — Door-to-Balloon <90 min, Door-to-Needle <30 min",
			},
			{
				ID:            "iam_monitor",
				Label:         "Monitorização contínua",
				MatchKeywords: []string{"monitoriz", "monitor", "oximetria", "o2_suplementar", "oxigenio"},
				TargetMinutes: 5,
				Weight:        0.08,
				Reference:     "AHA ACLS 2020 — Continuous cardiac monitoring in ACS",
			},
			{
				ID:            "iam_acesso",
				Label:         "Acesso venoso periférico",
				MatchKeywords: []string{"acesso_venoso", "acesso venoso", "veia", "jelco"},
				TargetMinutes: 10,
				Weight:        0.07,
				Reference:     "ACLS 2020 — IV access for medication administration",
			},
		},
	},
	{
		Name:              "Sepse / Choque Séptico",
		DetectionKeywords: []string{"sepse", "sepsis", "choque septico", "infeccao grave"},
		Items: []Item{
			{
				ID:            "sepse_lactato",
				Label:         "Dosagem de Lactato",
				MatchKeywords: []string{"lactato"},
				TargetMinutes: 15,
				Weight:        0.12,
				Reference:     "Surviving Sepsis Campaign 2021 — Measure lactate within 1 hour",
			},
			{
				ID:            "sepse_hemocultura",
				Label:         "Hemoculturas antes do ATB",
				MatchKeywords: []string{"hemocultura", "cultura"},
				TargetMinutes: 30,
				Weight:        0.12,
				Reference:     "SSC 2021 — Obtain blood cultures before antimicrobials when possible",
			},
			{
				ID:            "sepse_atb",
				Label:         "Antibiótico de amplo espectro em <60min",
				MatchKeywords: []string{"antibiotico", "ceftriaxona", "piperacilina", "meropenem", "vancomicina", "tazobactam"},
				TargetMinutes: 60,
				Weight:        0.25,
				Reference:     "SSC 2021 — Administer antimicrobials within 1 hour of sepsis recognition",
			},
			{
				ID:            "sepse_volume",
				Label:         "Cristaloide 30ml/kg em <3h",
				MatchKeywords: []string{"cristaloide", "ringer", "soro fisiologico", "reposicao_volemica", "volume"},
				TargetMinutes: 180,
				Weight:        0.20,
				Reference:     "SSC 2021 — 30 mL/kg IV crystalloid for hypotension or lactate ≥4",
			},
			{
				ID:            "sepse_vasopressor",
				Label:         "Vasopressor se PAM <65 após volume",
				MatchKeywords: []string{"noradrenalina", "vasopressor", "norepinefrina"},
				Weight:        0.12,
				Reference:     "SSC 2021 — Norepinephrine first-line vasopressor, target MAP ≥65 mmHg",
			},
			{
				ID:            "sepse_acesso",
				Label:         "Acesso venoso",
				MatchKeywords: []string{"acesso_venoso", "acesso venoso", "veia"},
				TargetMinutes: 10,
				Weight:        0.07,
				Reference:     "SSC 2021 — IV access for fluid resuscitation",
			},
			{
				ID:            "sepse_monitor",
				Label:         "Monitorização + reavaliação",
				MatchKeywords: []string{"monitoriz", "monitor", "reavaliar", "reavaliacao"},
				Weight:        0.06,
				Reference:     "SSC 2021 — Reassess volume status and tissue perfusion",
			},
			{
				ID:            "sepse_gasometria",
				Label:         "Gasometria arterial",
				MatchKeywords: []string{"gasometria"},
				TargetMinutes: 30,
				Weight:        0.06,
				Reference:     "SSC 2021 — Assess acid-base status early",
			},
		},
	},
	{
		Name:              "PCR / Parada Cardiorrespiratória",
		DetectionKeywords: []string{"pcr", "parada cardior", "parada cardiaca", "assistolia", "fibrilacao ventricular", "aesp"},
		Items: []Item{
			{
				ID:            "pcr_rcp",
				Label:         "Iniciar RCP imediatamente",
				MatchKeywords: []string{"rcp", "massagem_cardiaca", "compressoes", "massagem cardiaca"},
				TargetMinutes: 1,
				Weight:        0.30,
				Reference:     "AHA ACLS 2020 — Begin high-quality CPR immediately",
			},
			{
				ID:            "pcr_defib",
				Label:         "Desfibrilação (se ritmo chocável)",
				MatchKeywords: []string{"desfibrilacao", "desfibrilador", "choque"},
				TargetMinutes: 3,
				Weight:        0.25,
				Reference:     "AHA ACLS 2020 — Defibrillation within 3 min for VF/pVT",
			},
			{
				ID:            "pcr_epinefrina",
				Label:         "Epinefrina 1mg IV",
				MatchKeywords: []string{"epinefrina", "adrenalina"},
				TargetMinutes: 5,
				Weight:        0.15,
				Reference:     "AHA ACLS 2020 — Epinephrine q3-5 min during cardiac arrest",
			},
			{
				ID:            "pcr_via_aerea",
				Label:         "Garantir via aérea avançada",
				MatchKeywords: []string{"intubacao", "via aerea", "tubo"},
				TargetMinutes: 10,
				Weight:        0.15,
				Reference:     "AHA ACLS 2020 — Advanced airway when feasible without interrupting CPR",
			},
			{
				ID:            "pcr_acesso",
				Label:         "Acesso venoso/intraósseo",
				MatchKeywords: []string{"acesso_venoso", "acesso venoso", "intraosseo"},
				TargetMinutes: 5,
				Weight:        0.08,
				Reference:     "AHA ACLS 2020 — IV/IO access for drug delivery",
			},
			{
				ID:            "pcr_amiodarona",
				Label:         "Amiodarona (se FV/TV refratária)",
				MatchKeywords: []string{"amiodarona"},
				Weight:        0.07,
				Reference:     "AHA ACLS 2020 — Amiodarone 300mg for refractory VF/pVT",
			},
		},
	},
	{
		Name:              "Insuficiência Respiratória Aguda",
		DetectionKeywords: []string{"insuficiencia respiratoria", "irpa", "dispneia aguda", "edema pulmonar", "asma grave"},
		Items: []Item{
			{
				ID:            "irpa_o2",
				Label:         "Oxigênio suplementar imediato",
				MatchKeywords: []string{"o2_suplementar", "oxigenio", "mascara", "cateter nasal"},
				TargetMinutes: 2,
				Weight:        0.20,
				Reference:     "BTS 2017 — Oxygen therapy to maintain SpO2 94-98%",
			},
			{
				ID:            "irpa_monitor",
				Label:         "Monitorização (SpO2, FR)",
				MatchKeywords: []string{"monitoriz", "monitor", "oximetria"},
				TargetMinutes: 5,
				Weight:        0.10,
				Reference:     "BTS 2017 — Continuous pulse oximetry monitoring",
			},
			{
				ID:            "irpa_gasometria",
				Label:         "Gasometria arterial",
				MatchKeywords: []string{"gasometria"},
				TargetMinutes: 15,
				Weight:        0.12,
				Reference:     "BTS 2017 — ABG to assess ventilation and acid-base",
			},
			{
				ID:            "irpa_rx",
				Label:         "RX de Tórax",
				MatchKeywords: []string{"rx_torax", "raio_x", "radiografia", "rx torax", "raio x"},
				TargetMinutes: 30,
				Weight:        0.10,
				Reference:     "ATS/ERS 2017 — Chest X-ray for acute respiratory failure evaluation",
			},
			{
				ID:            "irpa_broncodilatador",
				Label:         "Broncodilatador (se broncoespasmo)",
				MatchKeywords: []string{"salbutamol", "broncodilatador", "nebulizacao", "fenoterol"},
				TargetMinutes: 10,
				Weight:        0.12,
				Reference:     "GINA 2023 — Short-acting beta-agonist for acute bronchospasm",
			},
			{
				ID:            "irpa_corticoide",
				Label:         "Corticóide (se indicado)",
				MatchKeywords: []string{"hidrocortisona", "corticoide", "metilprednisolona", "dexametasona", "prednisona"},
				TargetMinutes: 30,
				Weight:        0.10,
				Reference:     "GINA 2023 — Systemic corticosteroids in severe exacerbations",
			},
			{
				ID:            "irpa_intubacao",
				Label:         "Intubação (se falha de VNI/deterioração)",
				MatchKeywords: []string{"intubacao", "ventilacao_mecanica"},
				Weight:        0.15,
				Reference:     "ATS/ERS 2017 — Invasive ventilation for refractory respiratory failure",
			},
			{
				ID:            "irpa_acesso",
				Label:         "Acesso venoso",
				MatchKeywords: []string{"acesso_venoso", "acesso venoso"},
				TargetMinutes: 10,
				Weight:        0.06,
				Reference:     "General — IV access for medication administration",
			},
		},
	},
	{
		Name:              "Trauma / Choque Hemorrágico",
		DetectionKeywords: []string{"trauma", "choque hemorragico", "hemorragia", "politrauma"},
		Items: []Item{
			{
				ID:            "trauma_abcde",
				Label:         "Avaliação ABCDE primária",
				MatchKeywords: []string{"exame_fisico", "exame fisico", "abcde", "avaliacao primaria"},
				TargetMinutes: 5,
				Weight:        0.15,
				Reference:     "ATLS 10th Ed — Primary survey ABCDE approach",
			},
			{
				ID:            "trauma_acesso",
				Label:         "Dois acessos venosos calibrosos",
				MatchKeywords: []string{"acesso_venoso", "acesso venoso", "dois acessos"},
				TargetMinutes: 5,
				Weight:        0.10,
				Reference:     "ATLS 10th Ed — Two large-bore IV lines",
			},
			{
				ID:            "trauma_volume",
				Label:         "Reposição volêmica agressiva",
				MatchKeywords: []string{"cristaloide", "ringer", "reposicao_volemica", "volume"},
				TargetMinutes: 15,
				Weight:        0.18,
				Reference:     "ATLS 10th Ed — Isotonic crystalloid for hemorrhagic shock",
			},
			{
				ID:            "trauma_hemoderivado",
				Label:         "Hemoderivados (se classe III/IV)",
				MatchKeywords: []string{"hemoderivado", "concentrado de hemacias", "sangue", "transfusao"},
				TargetMinutes: 30,
				Weight:        0.15,
				Reference:     "ATLS 10th Ed — Blood transfusion for class III/IV hemorrhage",
			},
			{
				ID:            "trauma_imagem",
				Label:         "Exame de imagem (FAST/TC)",
				MatchKeywords: []string{"fast", "ultrassom", "tc", "tomografia"},
				TargetMinutes: 30,
				Weight:        0.12,
				Reference:     "ATLS 10th Ed — FAST exam in trauma assessment",
			},
			{
				ID:            "trauma_o2",
				Label:         "Oxigênio suplementar",
				MatchKeywords: []string{"o2_suplementar", "oxigenio"},
				TargetMinutes: 5,
				Weight:        0.08,
				Reference:     "ATLS 10th Ed — High-flow O2 for trauma patients",
			},
			{
				ID:            "trauma_drenagem",
				Label:         "Drenagem torácica (se pneumo/hemotórax)",
				MatchKeywords: []string{"drenagem_torax", "drenagem toracica"},
				Weight:        0.12,
				Reference:     "ATLS 10th Ed — Tube thoracostomy for hemopneumothorax",
			},
		},
	},
}

// All returns a copy of the protocol catalog in detection order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
