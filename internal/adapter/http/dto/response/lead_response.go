package response

import (
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase"
)

// LeadDetailResponse flattens the lead and adds its messages, newest first.
type LeadDetailResponse struct {
	entities.Lead
	Messages []entities.Message `json:"messages"`
}

func FromLeadDetail(d usecase.LeadDetail) LeadDetailResponse {
	msgs := d.Messages
	if msgs == nil {
		msgs = []entities.Message{}
	}
	return LeadDetailResponse{Lead: d.Lead, Messages: msgs}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func NewHealthResponse(now time.Time) HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Name:      "MBG Outreach Service",
		Version:   "1.0.0",
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
