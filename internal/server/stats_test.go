package server

import "testing"

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil)

	if stats.TotalGames != 0 || stats.TotalScore != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.CurrentLevel != "Calouro de Jaleco" {
		t.Errorf("level = %q", stats.CurrentLevel)
	}
	if stats.NextLevelScore != 50 {
		t.Errorf("next level = %v", stats.NextLevelScore)
	}
	if stats.SpecialtyPerformance == nil || stats.RecentHistory == nil {
		t.Error("slices must be non-nil for JSON encoding")
	}
}

func TestComputeStatsDifficultyMultipliers(t *testing.T) {
	games := []GameResult{
		{Score: 10, Difficulty: "ESPECIALISTA", Specialty: "Cardiologia"},
		{Score: 10, Difficulty: "RESIDENTE", Specialty: "Cardiologia"},
		{Score: 10, Difficulty: "INTERNO", Specialty: "Cardiologia"},
	}

	stats := computeStats(games)

	// 10*2.5 + 10*1.5 + 10*1.0
	if stats.TotalScore != 50 {
		t.Errorf("total score = %v, want 50", stats.TotalScore)
	}
	// Average ignores multipliers.
	if stats.AverageScore != 10 {
		t.Errorf("average = %v, want 10", stats.AverageScore)
	}
	if stats.CurrentLevel != "Aspirante Clínico" {
		t.Errorf("level = %q", stats.CurrentLevel)
	}
	if stats.NextLevelScore != 100 {
		t.Errorf("next level = %v", stats.NextLevelScore)
	}
}

func TestComputeStatsLevelLadder(t *testing.T) {
	tests := []struct {
		score     int
		wantLevel string
		wantNext  float64
	}{
		{0, "Calouro de Jaleco", 50},
		{49, "Calouro de Jaleco", 50},
		{50, "Aspirante Clínico", 100},
		{200, "Residente Resiliente", 300},
		{1000, "Lenda da Medicina", 10000},
		{5000, "Lenda da Medicina", 10000},
	}

	for _, tt := range tests {
		stats := computeStats([]GameResult{{Score: tt.score, Difficulty: "INTERNO"}})
		if stats.CurrentLevel != tt.wantLevel {
			t.Errorf("score %d: level = %q, want %q", tt.score, stats.CurrentLevel, tt.wantLevel)
		}
		if stats.NextLevelScore != tt.wantNext {
			t.Errorf("score %d: next = %v, want %v", tt.score, stats.NextLevelScore, tt.wantNext)
		}
	}
}

func TestComputeStatsSpecialtyPerformance(t *testing.T) {
	games := []GameResult{
		{Score: 8, Specialty: "Cardiologia", Outcome: "CURADO"},
		{Score: 2, Specialty: "Cardiologia", Outcome: "OBITO"},
		{Score: 9, Specialty: "Infectologia", Outcome: "CURADO"},
		{Score: 7, Specialty: "", Outcome: "OBITO"},
	}

	stats := computeStats(games)

	if len(stats.SpecialtyPerformance) != 3 {
		t.Fatalf("performance = %+v", stats.SpecialtyPerformance)
	}
	// Sorted by average score, best first.
	if stats.SpecialtyPerformance[0].Name != "Infectologia" {
		t.Errorf("best = %q", stats.SpecialtyPerformance[0].Name)
	}

	for _, p := range stats.SpecialtyPerformance {
		switch p.Name {
		case "Cardiologia":
			if p.Count != 2 || p.AvgScore != 5 || p.Deaths != 1 {
				t.Errorf("cardiologia = %+v", p)
			}
		case "Geral":
			if p.Count != 1 || p.Deaths != 1 {
				t.Errorf("geral = %+v", p)
			}
		}
	}
}

func TestComputeStatsRecentHistoryCapped(t *testing.T) {
	games := make([]GameResult, 8)
	for i := range games {
		games[i] = GameResult{ID: int64(i + 1), Score: i}
	}

	stats := computeStats(games)

	if len(stats.RecentHistory) != 5 {
		t.Fatalf("recent = %d, want 5", len(stats.RecentHistory))
	}
	if stats.RecentHistory[0].ID != 1 {
		t.Errorf("recent keeps input order, got id %d first", stats.RecentHistory[0].ID)
	}
}
