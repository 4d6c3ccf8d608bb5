package repository

import (
	"context"
	"database/sql"
	"errors"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

type messageRow struct {
	ID        string `db:"id"`
	LeadID    string `db:"lead_id"`
	Content   string `db:"content"`
	Direction string `db:"direction"`
	Status    string `db:"status"`
	SentAt    string `db:"sent_at"`
}

type MessageSQLRepository struct {
	db *sqlx.DB
}

var _ interfaces.IMessageRepository = (*MessageSQLRepository)(nil)

func NewMessageSQLRepository(db *sqlx.DB) *MessageSQLRepository {
	return &MessageSQLRepository{db: db}
}

func (r *MessageSQLRepository) Append(ctx context.Context, msg entities.Message) (entities.Message, error) {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO messages (id, lead_id, content, direction, status, sent_at)
		VALUES (:id, :lead_id, :content, :direction, :status, :sent_at)`,
		messageRow{
			ID:        msg.ID,
			LeadID:    msg.LeadID,
			Content:   msg.Content,
			Direction: string(msg.Direction),
			Status:    string(msg.Status),
			SentAt:    formatTime(msg.SentAt),
		})
	if err != nil {
		return entities.Message{}, err
	}
	return msg, nil
}

func (r *MessageSQLRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Message, error) {
	var rows []messageRow
	q := r.db.Rebind(`SELECT * FROM messages WHERE lead_id = ? ORDER BY sent_at DESC, id DESC`)
	if err := r.db.SelectContext(ctx, &rows, q, leadID); err != nil {
		return nil, err
	}
	out := make([]entities.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromMessageRow(row))
	}
	return out, nil
}

func (r *MessageSQLRepository) LatestOutgoing(ctx context.Context, leadID string) (entities.Message, error) {
	var row messageRow
	q := r.db.Rebind(`
		SELECT * FROM messages
		WHERE lead_id = ? AND direction = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT 1`)
	err := r.db.GetContext(ctx, &row, q, leadID, string(entities.MessageDirectionOutgoing))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Message{}, nil
	}
	if err != nil {
		return entities.Message{}, err
	}
	return fromMessageRow(row), nil
}

func fromMessageRow(row messageRow) entities.Message {
	return entities.Message{
		ID:        row.ID,
		LeadID:    row.LeadID,
		Content:   row.Content,
		Direction: entities.MessageDirection(row.Direction),
		Status:    entities.MessageStatus(row.Status),
		SentAt:    parseTime(row.SentAt),
	}
}
