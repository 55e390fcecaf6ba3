package protocol

import (
	"fmt"
	"strings"
)

// ReportBlock renders an evaluation as the fixed textual debriefing block
// consumed by the narrative generator and the review screen. Late and
// missed items always carry a citation line; consumers rely on the
// icon-prefixed structure to extract per-item status.
func ReportBlock(ev Evaluation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[CHECKLIST DE PROTOCOLO: %s]\n", ev.ProtocolName)
	fmt.Fprintf(&b, "Nota de Aderência ao Protocolo: %.1f/10.0\n", ev.AdherenceScore)

	for _, r := range ev.Results {
		var icon, detail string
		switch r.Status {
		case StatusDone:
			icon = "✅"
			if r.TargetMinutes > 0 {
				detail = fmt.Sprintf(" (realizado em %dmin — meta: <%dmin)", r.PerformedAt, r.TargetMinutes)
			}
		case StatusLate:
			icon = "⏱️"
			detail = fmt.Sprintf(" (realizado em %dmin — meta: <%dmin — ATRASADO)", r.PerformedAt, r.TargetMinutes)
		case StatusMissed:
			icon = "❌"
			if r.TargetMinutes > 0 {
				detail = fmt.Sprintf(" (meta: <%dmin — NÃO REALIZADO)", r.TargetMinutes)
			} else {
				detail = " (NÃO REALIZADO)"
			}
		}
		fmt.Fprintf(&b, "\n%s %s%s", icon, r.Label, detail)
		if r.Status != StatusDone {
			fmt.Fprintf(&b, "\n   📚 %s", r.Reference)
		}
	}
	return b.String()
}
