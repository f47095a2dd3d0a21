package model

import (
	"encoding/json"
	"time"
)

// Snapshot is the extracted state of one product page at one point in time.
// Price and Availability are nil when no heuristic could recover them.
type Snapshot struct {
	Price        *string   `json:"price"`
	Availability *string   `json:"availability"`
	Details      []string  `json:"details"`
	CheckedAt    time.Time `json:"checked_at"`
}

// ChangeReport is the result of comparing two snapshots of the same URL.
// Old is nil when the URL had never been checked before.
type ChangeReport struct {
	Changed bool      `json:"changed"`
	Changes []string  `json:"changes"`
	Old     *Snapshot `json:"old"`
	New     *Snapshot `json:"new"`
}

// Result is the per-URL outcome of a batch run: either a report or an error
// message, never both.
type Result struct {
	Report *ChangeReport
	Error  string
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(map[string]string{"error": r.Error})
	}
	return json.Marshal(r.Report)
}
