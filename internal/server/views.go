package server

import (
	"github.com/medsimlab/clinsim/internal/narrative"
	"github.com/medsimlab/clinsim/internal/sim"
)

// VitalsView is the wire rendering of an engine vitals snapshot.
type VitalsView struct {
	HeartRate   int     `json:"heartRate"`
	SystolicBP  int     `json:"systolicBp"`
	DiastolicBP int     `json:"diastolicBp"`
	SpO2        int     `json:"spo2"`
	RespRate    int     `json:"respRate"`
	Temperature float64 `json:"temperature"`
}

func vitalsView(v sim.Vitals) VitalsView {
	return VitalsView{
		HeartRate:   v.HeartRate,
		SystolicBP:  v.SystolicBP,
		DiastolicBP: v.DiastolicBP,
		SpO2:        v.SpO2,
		RespRate:    v.RespRate,
		Temperature: v.Temperature,
	}
}

type TimelineEntryView struct {
	ActionText string `json:"actionText"`
	AtMinutes  int    `json:"atMinutes"`
	Critical   bool   `json:"critical"`
}

func timelineView(entries []sim.TimelineEntry) []TimelineEntryView {
	out := make([]TimelineEntryView, len(entries))
	for i, e := range entries {
		out[i] = TimelineEntryView{
			ActionText: e.ActionText,
			AtMinutes:  e.AtMinutes,
			Critical:   e.Critical,
		}
	}
	return out
}

// SessionSnapshot is the full observable state of a session.
type SessionSnapshot struct {
	ID          string              `json:"id"`
	Specialty   string              `json:"specialty,omitempty"`
	Difficulty  string              `json:"difficulty,omitempty"`
	CaseTitle   string              `json:"caseTitle"`
	Protocol    string              `json:"protocol,omitempty"`
	Vitals      VitalsView          `json:"vitals"`
	Acuity      string              `json:"acuity"`
	GameMinutes int                 `json:"gameMinutes"`
	Clock       string              `json:"clock"`
	Conditions  []string            `json:"conditions"`
	Applied     []string            `json:"appliedInterventions"`
	Timeline    []TimelineEntryView `json:"timeline"`
	Score       int                 `json:"score"`
	Narrative   string              `json:"narrative,omitempty"`
	Options     []narrative.Option  `json:"options,omitempty"`
	Ended       bool                `json:"ended"`
}

func snapshot(s *Session) SessionSnapshot {
	snap := SessionSnapshot{
		ID:          s.ID,
		Specialty:   s.Specialty,
		Difficulty:  s.Difficulty,
		CaseTitle:   s.CaseTitle,
		Vitals:      vitalsView(s.Engine.Vitals()),
		Acuity:      string(s.Acuity),
		GameMinutes: s.Engine.GameTimeMinutes(),
		Clock:       s.Engine.FormattedTime(),
		Conditions:  s.Engine.ActiveConditions(),
		Applied:     s.Engine.AppliedInterventions(),
		Timeline:    timelineView(s.Engine.Timeline()),
		Score:       s.Score,
		Narrative:   s.LastMessage,
		Options:     s.Opts,
		Ended:       s.Acuity.Terminal(),
	}
	if s.Protocol != nil {
		snap.Protocol = s.Protocol.Name
	}
	if snap.Conditions == nil {
		snap.Conditions = []string{}
	}
	if snap.Applied == nil {
		snap.Applied = []string{}
	}
	return snap
}
