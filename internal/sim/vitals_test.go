package sim

import "testing"

func TestClampForcesRanges(t *testing.T) {
	v := Clamp(Vitals{
		HeartRate:   400,
		SystolicBP:  -20,
		DiastolicBP: 500,
		SpO2:        120,
		RespRate:    -5,
		Temperature: 25.0,
	})
	want := Vitals{
		HeartRate:   250,
		SystolicBP:  0,
		DiastolicBP: 180,
		SpO2:        99,
		RespRate:    0,
		Temperature: 30.0,
	}
	if v != want {
		t.Fatalf("clamp mismatch: got %+v want %+v", v, want)
	}
}

func TestApplyRoundsIntegerFieldsAndTenths(t *testing.T) {
	v := DefaultVitals().Apply(Delta{SpO2: -0.5, Temperature: 0.05})
	if v.SpO2 != 97 {
		// -0.5 rounds to nearest: 96.5 -> 97 (round half away from zero).
		t.Errorf("spo2 = %d, want 97", v.SpO2)
	}
	if v.Temperature != 36.6 {
		t.Errorf("temperature = %v, want 36.6", v.Temperature)
	}
}

func TestApplyClampsBeforeStoring(t *testing.T) {
	v := Vitals{HeartRate: 240, SystolicBP: 240, DiastolicBP: 170, SpO2: 2, RespRate: 58, Temperature: 41.8}
	v = v.Apply(Delta{HeartRate: 50, SystolicBP: 50, DiastolicBP: 50, SpO2: -10, RespRate: 10, Temperature: 1})
	if v.HeartRate != 250 || v.SystolicBP != 250 || v.DiastolicBP != 180 {
		t.Errorf("upper clamps violated: %+v", v)
	}
	if v.SpO2 != 0 {
		t.Errorf("spo2 lower clamp violated: %d", v.SpO2)
	}
	if v.RespRate != 60 || v.Temperature != 42.0 {
		t.Errorf("rr/temp clamps violated: %+v", v)
	}
}

func TestDeltaScale(t *testing.T) {
	d := Delta{HeartRate: 2, SystolicBP: -2, SpO2: -0.5}.Scale(10)
	if d.HeartRate != 20 || d.SystolicBP != -20 || d.SpO2 != -5 {
		t.Fatalf("scale mismatch: %+v", d)
	}
}
