package interfaces

import (
	"context"

	"mbg_outreach/internal/domain/entities"
)

// IMessageRepository is the append-only communication log.
//
// ListByLeadID returns newest first. LatestOutgoing returns a zero Message
// when the lead was never contacted.
type IMessageRepository interface {
	Append(ctx context.Context, msg entities.Message) (entities.Message, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Message, error)
	LatestOutgoing(ctx context.Context, leadID string) (entities.Message, error)
}
