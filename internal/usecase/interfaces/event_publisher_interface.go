package interfaces

import (
	"context"

	"mbg_outreach/internal/domain/entities"
)

// IEventPublisher announces persisted lead status transitions.
type IEventPublisher interface {
	PublishStatusChanged(ctx context.Context, evt entities.LeadStatusChanged) error
}
