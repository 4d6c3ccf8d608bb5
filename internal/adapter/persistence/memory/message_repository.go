package memory

import (
	"context"
	"sync"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

type MessageRepository struct {
	mu   sync.RWMutex
	msgs []entities.Message
}

var _ interfaces.IMessageRepository = (*MessageRepository)(nil)

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{msgs: make([]entities.Message, 0, 32)}
}

func (r *MessageRepository) Append(_ context.Context, msg entities.Message) (entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return msg, nil
}

// ListByLeadID returns the lead's messages newest first.
func (r *MessageRepository) ListByLeadID(_ context.Context, leadID string) ([]entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Message, 0)
	for i := len(r.msgs) - 1; i >= 0; i-- {
		if r.msgs[i].LeadID == leadID {
			out = append(out, r.msgs[i])
		}
	}
	sortMessagesNewestFirst(out)
	return out, nil
}

func (r *MessageRepository) LatestOutgoing(ctx context.Context, leadID string) (entities.Message, error) {
	msgs, _ := r.ListByLeadID(ctx, leadID)
	for _, m := range msgs {
		if m.Direction == entities.MessageDirectionOutgoing {
			return m, nil
		}
	}
	return entities.Message{}, nil
}
