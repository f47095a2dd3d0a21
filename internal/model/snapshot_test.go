package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResultMarshalsReport(t *testing.T) {
	price := "100.00"
	res := Result{Report: &ChangeReport{
		Changed: true,
		Changes: []string{"no previous record, saved as baseline"},
		New: &Snapshot{
			Price:     &price,
			Details:   []string{},
			CheckedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}}

	out, err := json.Marshal(res)
	require.NoError(t, err)
	require.Contains(t, string(out), `"changed":true`)
	require.Contains(t, string(out), `"price":"100.00"`)
	require.Contains(t, string(out), `"old":null`)
}

func TestResultMarshalsError(t *testing.T) {
	res := Result{Error: "fetch https://example.com: Not Found"}

	out, err := json.Marshal(res)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"fetch https://example.com: Not Found"}`, string(out))
}

func TestSnapshotNullFields(t *testing.T) {
	out, err := json.Marshal(Snapshot{Details: []string{}})
	require.NoError(t, err)
	require.Contains(t, string(out), `"price":null`)
	require.Contains(t, string(out), `"availability":null`)
	require.Contains(t, string(out), `"details":[]`)
}
