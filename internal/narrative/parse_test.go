package narrative

import (
	"strings"
	"testing"

	"github.com/medsimlab/clinsim/internal/sim"
)

func TestParseVitalsFullLine(t *testing.T) {
	text := "Sinais vitais: FC: 118 bpm | PA: 88/54 mmHg | SpO2: 89% | FR: 28 rpm | Temp: 38,9°C"
	v := ParseVitals(text, sim.DefaultVitals())

	want := sim.Vitals{HeartRate: 118, SystolicBP: 88, DiastolicBP: 54, SpO2: 89, RespRate: 28, Temperature: 38.9}
	if v != want {
		t.Fatalf("parsed %+v, want %+v", v, want)
	}
}

func TestParseVitalsBrazilianPressureNotation(t *testing.T) {
	v := ParseVitals("PA 120x80, paciente orientado", sim.DefaultVitals())
	if v.SystolicBP != 120 || v.DiastolicBP != 80 {
		t.Fatalf("pressure = %d/%d, want 120/80", v.SystolicBP, v.DiastolicBP)
	}
}

func TestParseVitalsPartialKeepsBase(t *testing.T) {
	base := sim.DefaultVitals()
	v := ParseVitals("FC 130, paciente sudoreico", base)
	if v.HeartRate != 130 {
		t.Errorf("heart rate = %d, want 130", v.HeartRate)
	}
	if v.SystolicBP != base.SystolicBP || v.Temperature != base.Temperature {
		t.Errorf("unparsed fields must keep base: %+v", v)
	}
}

func TestParseVitalsGarbageIsBase(t *testing.T) {
	base := sim.DefaultVitals()
	if v := ParseVitals("o paciente aguarda na sala de espera", base); v != base {
		t.Fatalf("garbage input must return base, got %+v", v)
	}
}

func TestParseVitalsClampsExtremes(t *testing.T) {
	v := ParseVitals("FC 999 | SpO2 150", sim.DefaultVitals())
	if v.HeartRate != 250 {
		t.Errorf("heart rate = %d, want clamped 250", v.HeartRate)
	}
	if v.SpO2 != 99 {
		t.Errorf("spo2 = %d, want clamped 99", v.SpO2)
	}
}

func TestParseAcuity(t *testing.T) {
	cases := []struct {
		in   string
		want sim.Acuity
	}{
		{"ESTAVEL", sim.AcuityStable},
		{"INSTAVEL", sim.AcuityUnstable},
		{"instável", sim.AcuityUnstable},
		{"CRITICO", sim.AcuityCritical},
		{"crítico", sim.AcuityCritical},
		{"OBITO", sim.AcuityDeceased},
		{"CURADO", sim.AcuityCured},
		{"", sim.AcuityStable},
		{"???", sim.AcuityStable},
	}
	for _, tc := range cases {
		if got := ParseAcuity(tc.in); got != tc.want {
			t.Errorf("ParseAcuity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTurnStateText(t *testing.T) {
	ts := TurnState{
		UI:      UIData{Manchete: "Dor torácica", NarrativaPrincipal: "Paciente com IAM"},
		Medical: MedicalData{SinaisVitais: "FC 110"},
	}
	text := ts.Text()
	for _, fragment := range []string{"Dor torácica", "IAM", "FC 110"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("text missing %q: %q", fragment, text)
		}
	}
}
