package request

import (
	"encoding/json"
	"errors"
	"testing"

	"mbg_outreach/internal/domain/entities"
)

func TestUpdateLeadRequest(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		if err := (UpdateLeadRequest{}).Validate(); !errors.Is(err, ErrNothingToUpdate) {
			t.Fatalf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("empty message is still an update", func(t *testing.T) {
		empty := ""
		if err := (UpdateLeadRequest{OutreachMessage: &empty}).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status parsed", func(t *testing.T) {
		st, err := UpdateLeadRequest{Status: "Tertarik"}.ResolveStatus()
		if err != nil || st == nil || *st != entities.LeadStatusInterested {
			t.Fatalf("unexpected status: %v, %v", st, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := (UpdateLeadRequest{Status: "Menunggu"}).ResolveStatus(); err == nil {
			t.Fatalf("expected error for unknown status")
		}
	})

	t.Run("no status filter", func(t *testing.T) {
		st, err := ResolveStatusFilter("  ")
		if err != nil || st != nil {
			t.Fatalf("expected nil filter, got %v, %v", st, err)
		}
	})
}

func TestWebhookPayload_FirstTextMessage(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		var p WebhookPayload
		raw := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[{"from":"6281234567890","type":"text","text":{"body":" Saya tertarik "}}]}}]}]}`
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		from, text, ok := p.FirstTextMessage()
		if !ok || from != "6281234567890" || text != "Saya tertarik" {
			t.Fatalf("unexpected: %q %q %v", from, text, ok)
		}
	})

	t.Run("status update without messages", func(t *testing.T) {
		var p WebhookPayload
		raw := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"statuses":[{"id":"x"}]}}]}]}`
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if _, _, ok := p.FirstTextMessage(); ok {
			t.Fatalf("expected no message")
		}
	})

	t.Run("image message", func(t *testing.T) {
		p := WebhookPayload{Entry: []WebhookEntry{{Changes: []WebhookChange{{Value: WebhookValue{Messages: []WebhookMessage{{From: "62", Type: "image"}}}}}}}}
		if _, _, ok := p.FirstTextMessage(); ok {
			t.Fatalf("expected no text message")
		}
	})
}
