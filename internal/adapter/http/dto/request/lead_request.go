package request

import (
	"errors"
	"strings"

	"mbg_outreach/internal/domain/entities"
)

var ErrNothingToUpdate = errors.New("nothing to update")

// UpdateLeadRequest is the manual edit payload of PUT /api/leads/:id.
// An empty status is ignored; a present pesan_penawaran is applied even when empty.
type UpdateLeadRequest struct {
	Status          string  `json:"status"`
	OutreachMessage *string `json:"pesan_penawaran"`
}

// ResolveStatus returns nil when no status was sent.
func (r UpdateLeadRequest) ResolveStatus() (*entities.LeadStatus, error) {
	raw := strings.TrimSpace(r.Status)
	if raw == "" {
		return nil, nil
	}
	st, err := entities.ParseLeadStatus(raw)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r UpdateLeadRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" && r.OutreachMessage == nil {
		return ErrNothingToUpdate
	}
	return nil
}

// ResolveStatusFilter parses the optional ?status= query value.
func ResolveStatusFilter(raw string) (*entities.LeadStatus, error) {
	return UpdateLeadRequest{Status: raw}.ResolveStatus()
}
