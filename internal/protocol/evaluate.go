package protocol

import (
	"math"
	"strings"

	"github.com/medsimlab/clinsim/internal/sim"
)

// Status classifies how a checklist item was handled.
type Status string

const (
	StatusDone   Status = "done"
	StatusLate   Status = "late"
	StatusMissed Status = "missed"
)

// Result is the evaluation outcome for a single checklist item.
// PerformedAt is only meaningful when Status is not missed.
type Result struct {
	ItemID        string  `json:"itemId"`
	Label         string  `json:"label"`
	Status        Status  `json:"status"`
	PerformedAt   int     `json:"performedAt"`
	TargetMinutes int     `json:"targetMinutes"`
	Reference     string  `json:"reference"`
	Weight        float64 `json:"weight"`
}

// Evaluation is the weighted adherence verdict for one protocol.
type Evaluation struct {
	ProtocolName string   `json:"protocolName"`
	Results      []Result `json:"results"`
	// AdherenceScore is in [0,10], rounded to one decimal.
	AdherenceScore float64 `json:"adherenceScore"`
}

// Detect returns the first protocol in catalog order whose detection
// keywords substring-match the normalized narrative. No best-match or
// multi-protocol handling: first hit wins.
func Detect(narrative string) (Definition, bool) {
	norm := sim.Normalize(narrative)
	for _, def := range catalog {
		for _, kw := range def.DetectionKeywords {
			if strings.Contains(norm, sim.Normalize(kw)) {
				return def, true
			}
		}
	}
	return Definition{}, false
}

// Evaluate scores the action timeline against a protocol checklist. It is
// pure and idempotent: identical inputs always produce identical output.
//
// For each item the timeline is searched in order for the first entry whose
// normalized text contains any match keyword. Failing that, the applied
// intervention set is consulted; a hit there is stamped with the last
// timeline entry's time, an approximation that can misattribute
// timing-sensitive items as on-time (kept for compatibility with the
// established grading behavior).
func Evaluate(def Definition, timeline []sim.TimelineEntry, applied []string) Evaluation {
	appliedSet := make(map[string]struct{}, len(applied))
	for _, key := range applied {
		appliedSet[sim.Normalize(key)] = struct{}{}
	}

	ev := Evaluation{ProtocolName: def.Name}
	var totalWeight, earnedWeight float64

	for _, item := range def.Items {
		totalWeight += item.Weight

		matched, at := findInTimeline(item, timeline)
		if !matched {
			matched, at = findInApplied(item, appliedSet, timeline)
		}

		res := Result{
			ItemID:        item.ID,
			Label:         item.Label,
			TargetMinutes: item.TargetMinutes,
			Reference:     item.Reference,
			Weight:        item.Weight,
		}
		switch {
		case !matched:
			res.Status = StatusMissed
		case item.TargetMinutes > 0 && at > item.TargetMinutes:
			res.Status = StatusLate
			res.PerformedAt = at
			earnedWeight += item.Weight * 0.5
		default:
			res.Status = StatusDone
			res.PerformedAt = at
			earnedWeight += item.Weight
		}
		ev.Results = append(ev.Results, res)
	}

	score := 10.0
	if totalWeight > 0 {
		score = earnedWeight / totalWeight * 10
	}
	ev.AdherenceScore = math.Round(score*10) / 10
	return ev
}

func findInTimeline(item Item, timeline []sim.TimelineEntry) (bool, int) {
	for _, entry := range timeline {
		norm := sim.Normalize(entry.ActionText)
		for _, kw := range item.MatchKeywords {
			if strings.Contains(norm, sim.Normalize(kw)) {
				return true, entry.AtMinutes
			}
		}
	}
	return false, 0
}

func findInApplied(item Item, applied map[string]struct{}, timeline []sim.TimelineEntry) (bool, int) {
	for _, kw := range item.MatchKeywords {
		if _, ok := applied[sim.Normalize(kw)]; ok {
			at := 0
			if len(timeline) > 0 {
				at = timeline[len(timeline)-1].AtMinutes
			}
			return true, at
		}
	}
	return false, 0
}
