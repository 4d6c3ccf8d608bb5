package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase"
)

func TestFromLeadDetail(t *testing.T) {
	d := usecase.LeadDetail{Lead: entities.Lead{ID: "l1", Name: "Dapur X", Status: entities.LeadStatusSent}}

	res := FromLeadDetail(d)
	if res.Messages == nil {
		t.Fatalf("messages must be an empty slice, not nil")
	}

	b, err := json.Marshal(OK(res))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{`"success":true`, `"id":"l1"`, `"nama_sppg":"Dapur X"`, `"messages":[]`} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %s in %s", want, body)
		}
	}
	if strings.Contains(body, `"lead":`) {
		t.Fatalf("lead must be flattened: %s", body)
	}
}

func TestNewHealthResponse(t *testing.T) {
	res := NewHealthResponse(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	if res.Status != "ok" || res.Timestamp != "2025-01-06T09:00:00Z" {
		t.Fatalf("unexpected: %+v", res)
	}
}
