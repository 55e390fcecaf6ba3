package server

import (
	"math"
	"sort"
)

// gameLevel is one rung of the player progression ladder. Levels are
// ordered by ascending MinScore.
type gameLevel struct {
	Name     string
	MinScore float64
}

var gameLevels = []gameLevel{
	{"Calouro de Jaleco", 0},
	{"Aspirante Clínico", 50},
	{"Interno de Plantão", 100},
	{"Caçador de Diagnósticos", 150},
	{"Residente Resiliente", 200},
	{"Talento em Ascensão", 300},
	{"Mestre do Estetoscópio", 500},
	{"Referência do Serviço", 700},
	{"Lenda da Medicina", 1000},
}

// difficultyMultiplier weights a raw score by the difficulty it was earned
// at. Unknown difficulties count at face value.
func difficultyMultiplier(difficulty string) float64 {
	switch difficulty {
	case "ESPECIALISTA":
		return 2.5
	case "RESIDENTE":
		return 1.5
	default:
		return 1.0
	}
}

type SpecialtyPerformance struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avgScore"`
	Deaths   int     `json:"deaths"`
}

type PlayerStats struct {
	TotalGames           int                    `json:"totalGames"`
	TotalScore           float64                `json:"totalScore"`
	CurrentLevel         string                 `json:"currentLevel"`
	NextLevelScore       float64                `json:"nextLevelScore"`
	AverageScore         float64                `json:"averageScore"`
	SpecialtyPerformance []SpecialtyPerformance `json:"specialtyPerformance"`
	RecentHistory        []GameResult           `json:"recentHistory"`
}

// computeStats aggregates a player's history, newest first. Total score is
// difficulty-weighted; average score is not.
func computeStats(games []GameResult) PlayerStats {
	if len(games) == 0 {
		return PlayerStats{
			CurrentLevel:         "Calouro de Jaleco",
			NextLevelScore:       50,
			SpecialtyPerformance: []SpecialtyPerformance{},
			RecentHistory:        []GameResult{},
		}
	}

	var weighted, pure float64
	for _, g := range games {
		weighted += float64(g.Score) * difficultyMultiplier(g.Difficulty)
		pure += float64(g.Score)
	}
	totalScore := round2(weighted)

	stats := PlayerStats{
		TotalGames:     len(games),
		TotalScore:     totalScore,
		CurrentLevel:   "Calouro de Jaleco",
		NextLevelScore: 50,
		AverageScore:   round1(pure / float64(len(games))),
	}

	for i := len(gameLevels) - 1; i >= 0; i-- {
		if totalScore >= gameLevels[i].MinScore {
			stats.CurrentLevel = gameLevels[i].Name
			if i+1 < len(gameLevels) {
				stats.NextLevelScore = gameLevels[i+1].MinScore
			} else {
				stats.NextLevelScore = 10000
			}
			break
		}
	}

	type bucket struct {
		count  int
		sum    float64
		deaths int
	}
	buckets := make(map[string]*bucket)
	for _, g := range games {
		name := g.Specialty
		if name == "" {
			name = "Geral"
		}
		b := buckets[name]
		if b == nil {
			b = &bucket{}
			buckets[name] = b
		}
		b.count++
		b.sum += float64(g.Score)
		if g.Outcome == "OBITO" {
			b.deaths++
		}
	}

	perf := make([]SpecialtyPerformance, 0, len(buckets))
	for name, b := range buckets {
		perf = append(perf, SpecialtyPerformance{
			Name:     name,
			Count:    b.count,
			AvgScore: round1(b.sum / float64(b.count)),
			Deaths:   b.deaths,
		})
	}
	sort.Slice(perf, func(i, j int) bool {
		if perf[i].AvgScore != perf[j].AvgScore {
			return perf[i].AvgScore > perf[j].AvgScore
		}
		return perf[i].Name < perf[j].Name
	})
	stats.SpecialtyPerformance = perf

	recent := games
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentHistory = recent

	return stats
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
