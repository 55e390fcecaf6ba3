package sim

import (
	"fmt"
	"sort"
	"strings"
)

// TimelineEntry records one player action at the game-clock minute it was
// logged. The timeline is append-only; entries are never mutated.
type TimelineEntry struct {
	ActionText string
	AtMinutes  int
	Critical   bool
}

// ApplyResult reports what an action matched and how much game time it
// consumes. The engine does not advance the clock itself: the caller feeds
// CostMinutes into the next Tick so decay and penalties cover the interval.
type ApplyResult struct {
	MatchedKey  string
	Matched     bool
	Critical    []string
	CostMinutes int
}

// Engine is the per-session physiology state machine. It is not safe for
// concurrent use: the owning session must serialize turns.
type Engine struct {
	vitals     Vitals
	clock      int
	timeline   []TimelineEntry
	applied    map[string]struct{}
	conditions []string
	mitigated  map[string]struct{}
}

// NewEngine returns an engine seeded with the given vitals (clamped).
func NewEngine(seed Vitals) *Engine {
	e := &Engine{}
	e.Reset(seed)
	return e
}

// Reset clears the clock, timeline, applied interventions and conditions,
// and replaces the vitals wholesale. Used at session start and whenever a
// newly generated case supplies custom starting vitals.
func (e *Engine) Reset(seed Vitals) {
	e.vitals = Clamp(seed)
	e.clock = 0
	e.timeline = nil
	e.applied = make(map[string]struct{})
	e.conditions = nil
	e.mitigated = make(map[string]struct{})
}

// SetConditionsFromNarrative rescans text for condition keywords and
// replaces the active set wholesale. Must run before Tick whenever new
// narrative arrives, or penalties use stale detections.
func (e *Engine) SetConditionsFromNarrative(text string) {
	e.conditions = DetectConditions(text)
}

// Tick advances the game clock by minutes, applies the acuity decay profile
// scaled by the interval, then charges each active, unmitigated condition
// rule floor(minutes/interval) whole penalty applications.
func (e *Engine) Tick(minutes int, acuity Acuity) {
	if minutes <= 0 {
		return
	}
	e.vitals = e.vitals.Apply(decayProfile(acuity).Scale(float64(minutes)))
	e.clock += minutes

	for _, key := range e.conditions {
		rule, ok := ConditionRuleFor(key)
		if !ok {
			continue
		}
		if e.isMitigated(rule) {
			continue
		}
		applications := minutes / rule.IntervalMinutes
		if applications <= 0 {
			continue
		}
		e.vitals = e.vitals.Apply(rule.Penalty.Scale(float64(applications)))
	}
}

func (e *Engine) isMitigated(rule ConditionRule) bool {
	if _, ok := e.mitigated[rule.Key]; ok {
		return true
	}
	for _, key := range rule.MitigatedBy {
		if _, ok := e.applied[key]; ok {
			e.mitigated[rule.Key] = struct{}{}
			return true
		}
	}
	return false
}

// ApplyIntervention matches the action text against the catalog and, on a
// hit, applies the effect immediately (not scaled by time) and records the
// key. Critical-action names are recorded independently of match success.
// Unmatched text degrades to "no effect, default time cost" — never an
// error.
func (e *Engine) ApplyIntervention(actionText string) ApplyResult {
	res := ApplyResult{CostMinutes: DefaultActionCost}

	res.Critical = CriticalActionsIn(actionText)
	for _, name := range res.Critical {
		e.applied[name] = struct{}{}
	}

	if iv, ok := MatchIntervention(actionText); ok {
		e.vitals = e.vitals.Apply(iv.Effect)
		e.applied[iv.Key] = struct{}{}
		res.MatchedKey = iv.Key
		res.Matched = true
		res.CostMinutes = iv.CostMinutes
	}
	return res
}

// LogAction appends a timeline entry at the current clock value, inferring
// criticality from the critical-action name set.
func (e *Engine) LogAction(actionText string) {
	e.LogActionCritical(actionText, len(CriticalActionsIn(actionText)) > 0)
}

// LogActionCritical appends a timeline entry with explicit criticality,
// used for system events such as timeouts.
func (e *Engine) LogActionCritical(actionText string, critical bool) {
	e.timeline = append(e.timeline, TimelineEntry{
		ActionText: actionText,
		AtMinutes:  e.clock,
		Critical:   critical,
	})
}

// Vitals returns the current clamped snapshot.
func (e *Engine) Vitals() Vitals {
	return e.vitals
}

// GameTimeMinutes returns the elapsed game time.
func (e *Engine) GameTimeMinutes() int {
	return e.clock
}

// FormattedTime renders the clock as zero-padded HH:MM.
func (e *Engine) FormattedTime() string {
	return fmt.Sprintf("%02d:%02d", e.clock/60, e.clock%60)
}

// Timeline returns a copy of the action timeline.
func (e *Engine) Timeline() []TimelineEntry {
	out := make([]TimelineEntry, len(e.timeline))
	copy(out, e.timeline)
	return out
}

// AppliedInterventions returns the matched intervention keys, sorted.
func (e *Engine) AppliedInterventions() []string {
	out := make([]string, 0, len(e.applied))
	for key := range e.applied {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// ActiveConditions returns a copy of the currently detected condition keys.
func (e *Engine) ActiveConditions() []string {
	out := make([]string, len(e.conditions))
	copy(out, e.conditions)
	return out
}

// PromptBlock renders the fixed-format vitals block injected into the next
// narrative request. Downstream generation treats these numbers as ground
// truth, so labels, units and ordering must not change silently.
func (e *Engine) PromptBlock() string {
	v := e.vitals
	return fmt.Sprintf(
		"[VITAIS CALCULADOS PELO MOTOR FISIOLÓGICO – USE ESTES VALORES EXATOS]\n"+
			"FC: %d bpm | PA: %d/%d mmHg | SpO2: %d%% | FR: %d rpm | Temp: %.1f°C\n"+
			"Tempo de jogo: %d min (%s)",
		v.HeartRate, v.SystolicBP, v.DiastolicBP, v.SpO2, v.RespRate, v.Temperature,
		e.clock, e.FormattedTime(),
	)
}

// DebriefTimeline renders the full action timeline as ordered,
// icon-prefixed lines for the end-of-game review.
func (e *Engine) DebriefTimeline() string {
	var b strings.Builder
	b.WriteString("[LINHA DO TEMPO DE AÇÕES]")
	for _, entry := range e.timeline {
		icon := "🔹"
		if entry.Critical {
			icon = "⚠️"
		}
		fmt.Fprintf(&b, "\n%s %02d:%02d — %s", icon, entry.AtMinutes/60, entry.AtMinutes%60, entry.ActionText)
	}
	if len(e.timeline) == 0 {
		b.WriteString("\n(nenhuma ação registrada)")
	}
	return b.String()
}
