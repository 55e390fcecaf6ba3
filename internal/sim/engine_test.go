package sim

import (
	"strings"
	"testing"
)

func TestTickUnstableDecay(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.Tick(10, AcuityUnstable)

	v := e.Vitals()
	if v.HeartRate != 100 {
		t.Errorf("heart rate = %d, want 100 (+2/min over 10 min)", v.HeartRate)
	}
	if v.SystolicBP != 100 {
		t.Errorf("systolic = %d, want 100 (-2/min over 10 min)", v.SystolicBP)
	}
	if v.SpO2 != 92 {
		t.Errorf("spo2 = %d, want 92 (-0.5/min over 10 min)", v.SpO2)
	}
	if e.GameTimeMinutes() != 10 {
		t.Errorf("clock = %d, want 10", e.GameTimeMinutes())
	}
}

func TestTickUnknownAcuityIsNoDecay(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.Tick(30, Acuity("GARBLED"))
	if v := e.Vitals(); v != DefaultVitals() {
		t.Fatalf("unknown acuity must not decay vitals, got %+v", v)
	}
	if e.GameTimeMinutes() != 30 {
		t.Fatalf("clock must still advance, got %d", e.GameTimeMinutes())
	}
}

func TestApplyInterventionImmediateEffect(t *testing.T) {
	e := NewEngine(DefaultVitals())
	res := e.ApplyIntervention("Administrar Epinefrina 1mg")

	if !res.Matched || res.MatchedKey != "epinefrina" {
		t.Fatalf("result = %+v, want epinefrina match", res)
	}
	v := e.Vitals()
	if v.HeartRate != 100 || v.SystolicBP != 135 || v.DiastolicBP != 90 {
		t.Errorf("vitals = %+v, want HR 100 / PA 135x90", v)
	}
	if e.GameTimeMinutes() != 0 {
		t.Errorf("clock must not advance on apply, got %d", e.GameTimeMinutes())
	}
	if !containsString(e.AppliedInterventions(), "epinefrina") {
		t.Errorf("applied set %v missing epinefrina", e.AppliedInterventions())
	}
}

func TestUnmatchedActionDefaultsGracefully(t *testing.T) {
	e := NewEngine(DefaultVitals())
	res := e.ApplyIntervention("perguntar sobre alergias")
	if res.Matched {
		t.Fatal("expected no match")
	}
	if res.CostMinutes != DefaultActionCost {
		t.Fatalf("cost = %d, want default %d", res.CostMinutes, DefaultActionCost)
	}
	if e.Vitals() != DefaultVitals() {
		t.Fatalf("unmatched action must not change vitals: %+v", e.Vitals())
	}
}

func TestConditionPenaltyApplications(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.SetConditionsFromNarrative("Paciente com sepse de foco pulmonar, hipotenso.")

	// Stable acuity isolates the condition penalty: 60/15 = 4 applications.
	e.Tick(60, AcuityStable)
	v := e.Vitals()
	if v.HeartRate != 92 {
		t.Errorf("heart rate = %d, want 92 (4 × +3)", v.HeartRate)
	}
	if v.SystolicBP != 104 {
		t.Errorf("systolic = %d, want 104 (4 × -4)", v.SystolicBP)
	}
	if v.Temperature != 37.3 {
		t.Errorf("temperature = %v, want 37.3 (4 × +0.2)", v.Temperature)
	}
}

func TestConditionMitigationIsPermanent(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.SetConditionsFromNarrative("quadro de sepse grave")
	e.Tick(60, AcuityStable)
	afterPenalties := e.Vitals()

	// An antibiotic mitigates sepsis even though it is not an effect-bearing
	// catalog entry: the critical-action scan records it in the applied set.
	res := e.ApplyIntervention("ceftriaxona 1g EV")
	if res.Matched {
		t.Fatalf("ceftriaxona should be a soft match, got %+v", res)
	}
	if !containsString(e.AppliedInterventions(), "ceftriaxona") {
		t.Fatalf("applied set %v missing ceftriaxona", e.AppliedInterventions())
	}

	// Re-detection of the same condition must not revive the penalty.
	e.SetConditionsFromNarrative("sepse persiste apesar do tratamento")
	e.Tick(60, AcuityStable)
	if e.Vitals() != afterPenalties {
		t.Fatalf("mitigated condition applied penalties: %+v vs %+v", e.Vitals(), afterPenalties)
	}
}

func TestPartialIntervalAppliesNoPenalty(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.SetConditionsFromNarrative("sepse")
	e.Tick(14, AcuityStable) // below the 15-minute interval
	if e.Vitals() != DefaultVitals() {
		t.Fatalf("partial interval must not charge the penalty: %+v", e.Vitals())
	}
}

func TestConditionsReplacedWholesale(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.SetConditionsFromNarrative("sepse com hipoxemia")
	if got := e.ActiveConditions(); len(got) != 2 {
		t.Fatalf("active = %v, want sepse and hipoxemia", got)
	}
	e.SetConditionsFromNarrative("quadro estabilizado, afebril")
	if got := e.ActiveConditions(); len(got) != 0 {
		t.Fatalf("active = %v, want none after resolution", got)
	}
}

func TestClockMonotonicAndExact(t *testing.T) {
	e := NewEngine(DefaultVitals())
	total := 0
	for _, m := range []int{5, 3, 12, 1, 30} {
		e.Tick(m, AcuityUnstable)
		total += m
		if e.GameTimeMinutes() != total {
			t.Fatalf("clock = %d, want %d", e.GameTimeMinutes(), total)
		}
	}
	e.Tick(0, AcuityCritical)
	e.Tick(-5, AcuityCritical)
	if e.GameTimeMinutes() != total {
		t.Fatalf("non-positive tick moved the clock: %d", e.GameTimeMinutes())
	}
}

func TestClampInvariantUnderStress(t *testing.T) {
	e := NewEngine(Vitals{HeartRate: 40, SystolicBP: 70, DiastolicBP: 40, SpO2: 80, RespRate: 30, Temperature: 39.0})
	e.SetConditionsFromNarrative("sepse, hemorragia e hipoxemia com febre")
	actions := []string{"nitroprussiato", "fentanil", "morfina", "midazolam", "furosemida"}
	for i := 0; i < 40; i++ {
		e.ApplyIntervention(actions[i%len(actions)])
		e.Tick(25, AcuityCritical)
		assertClamped(t, e.Vitals())
	}
}

func assertClamped(t *testing.T, v Vitals) {
	t.Helper()
	if v.HeartRate < 0 || v.HeartRate > 250 ||
		v.SystolicBP < 0 || v.SystolicBP > 250 ||
		v.DiastolicBP < 0 || v.DiastolicBP > 180 ||
		v.SpO2 < 0 || v.SpO2 > 99 ||
		v.RespRate < 0 || v.RespRate > 60 ||
		v.Temperature < 30 || v.Temperature > 42 {
		t.Fatalf("vitals out of range: %+v", v)
	}
}

func TestTimelineAppendOnly(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.LogAction("exame físico completo")
	e.Tick(5, AcuityStable)
	e.LogAction("solicitar ECG")

	tl := e.Timeline()
	if len(tl) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(tl))
	}
	if tl[0].AtMinutes != 0 || tl[1].AtMinutes != 5 {
		t.Fatalf("timestamps = %d, %d; want 0, 5", tl[0].AtMinutes, tl[1].AtMinutes)
	}
	if !tl[0].Critical || !tl[1].Critical {
		t.Fatalf("exame_fisico and ecg are critical actions: %+v", tl)
	}

	// Mutating the returned copy must not touch engine state.
	tl[0].ActionText = "changed"
	if e.Timeline()[0].ActionText != "exame físico completo" {
		t.Fatal("Timeline must return a defensive copy")
	}
}

func TestLogActionCriticalOverride(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.LogActionCritical("SYSTEM EVENT: tempo esgotado", true)
	if tl := e.Timeline(); !tl[0].Critical {
		t.Fatal("explicit criticality must be honored")
	}
}

func TestResetClearsEverything(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.ApplyIntervention("epinefrina")
	e.SetConditionsFromNarrative("sepse")
	e.Tick(20, AcuityCritical)
	e.LogAction("rcp")

	seed := Vitals{HeartRate: 110, SystolicBP: 95, DiastolicBP: 55, SpO2: 92, RespRate: 26, Temperature: 38.8}
	e.Reset(seed)
	if e.Vitals() != seed {
		t.Errorf("vitals = %+v, want seed", e.Vitals())
	}
	if e.GameTimeMinutes() != 0 || len(e.Timeline()) != 0 ||
		len(e.AppliedInterventions()) != 0 || len(e.ActiveConditions()) != 0 {
		t.Error("reset must clear clock, timeline, applied set and conditions")
	}
}

func TestFormattedTime(t *testing.T) {
	e := NewEngine(DefaultVitals())
	if got := e.FormattedTime(); got != "00:00" {
		t.Errorf("fresh clock = %q, want 00:00", got)
	}
	e.Tick(65, AcuityStable)
	if got := e.FormattedTime(); got != "01:05" {
		t.Errorf("formatted = %q, want 01:05", got)
	}
}

func TestPromptBlockShape(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.Tick(10, AcuityUnstable)
	block := e.PromptBlock()

	if !strings.HasPrefix(block, "[VITAIS CALCULADOS PELO MOTOR FISIOLÓGICO") {
		t.Fatalf("missing header: %q", block)
	}
	for _, fragment := range []string{"FC: 100 bpm", "PA: 100/70 mmHg", "SpO2: 92%", "FR: 26 rpm", "Tempo de jogo: 10 min (00:10)"} {
		if !strings.Contains(block, fragment) {
			t.Errorf("prompt block missing %q:\n%s", fragment, block)
		}
	}
}

func TestDebriefTimeline(t *testing.T) {
	e := NewEngine(DefaultVitals())
	e.LogAction("anamnese dirigida")
	e.Tick(8, AcuityStable)
	e.LogAction("solicitar ECG de 12 derivações")

	out := e.DebriefTimeline()
	if !strings.Contains(out, "00:08") || !strings.Contains(out, "ECG") {
		t.Fatalf("debrief timeline missing entries:\n%s", out)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
