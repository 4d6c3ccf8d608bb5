package interfaces

import (
	"context"

	"mbg_outreach/internal/domain/entities"
)

// ILeadSource yields candidate leads (seed data, CSV exports, directories).
type ILeadSource interface {
	Name() string
	Discover(ctx context.Context) ([]entities.RawLead, error)
}
