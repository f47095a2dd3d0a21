package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mindsgn-studio/page-watcher/internal/model"
)

// at most this many added/removed detail entries are listed per message
const maxListedDetails = 10

// Summarize compares the previous snapshot (nil on the first check of a URL)
// against the current one and produces a human-readable change report.
// Price and availability comparisons treat nil and the empty string as equal.
func Summarize(prev *model.Snapshot, curr *model.Snapshot) model.ChangeReport {
	report := model.ChangeReport{
		Changes: []string{},
		Old:     prev,
		New:     curr,
	}

	if prev == nil {
		report.Changed = true
		report.Changes = append(report.Changes, "no previous record, saved as baseline")
		return report
	}

	if orEmpty(prev.Price) != orEmpty(curr.Price) {
		report.Changed = true
		msg := fmt.Sprintf("price: %s → %s", display(prev.Price), display(curr.Price))
		if pct, ok := percentChange(prev.Price, curr.Price); ok {
			msg += fmt.Sprintf(" (%+.2f%%)", pct)
		}
		report.Changes = append(report.Changes, msg)
	}

	if orEmpty(prev.Availability) != orEmpty(curr.Availability) {
		report.Changed = true
		report.Changes = append(report.Changes,
			fmt.Sprintf("availability: %s → %s", display(prev.Availability), display(curr.Availability)))
	}

	added := difference(curr.Details, prev.Details)
	removed := difference(prev.Details, curr.Details)
	if len(added) > 0 {
		report.Changed = true
		report.Changes = append(report.Changes, "details added: "+listDetails(added))
	}
	if len(removed) > 0 {
		report.Changed = true
		report.Changes = append(report.Changes, "details removed: "+listDetails(removed))
	}

	return report
}

// percentChange reports the signed percentage delta, but only when both
// prices parse as numbers and the old one is nonzero.
func percentChange(oldPrice, newPrice *string) (float64, bool) {
	if oldPrice == nil || newPrice == nil {
		return 0, false
	}
	a, errOld := strconv.ParseFloat(*oldPrice, 64)
	b, errNew := strconv.ParseFloat(*newPrice, 64)
	if errOld != nil || errNew != nil || a == 0 {
		return 0, false
	}
	return (b - a) / a * 100, true
}

// difference returns the entries of a that are not in b, in a's order.
func difference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, exists := inB[s]; !exists {
			out = append(out, s)
		}
	}
	return out
}

func listDetails(entries []string) string {
	if len(entries) > maxListedDetails {
		entries = entries[:maxListedDetails]
	}
	return strings.Join(entries, "; ")
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func display(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
