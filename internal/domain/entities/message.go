package entities

import "time"

type MessageDirection string

const (
	MessageDirectionOutgoing MessageDirection = "outgoing"
	MessageDirectionIncoming MessageDirection = "incoming"
)

type MessageStatus string

const (
	MessageStatusSent     MessageStatus = "sent"
	MessageStatusFailed   MessageStatus = "failed"
	MessageStatusReceived MessageStatus = "received"
)

// Message is an append-only log row of one communication event with a lead.
//
// Storage model:
//   - PK: id
//   - index (lead_id, sent_at desc)
type Message struct {
	ID        string           `json:"id"`
	LeadID    string           `json:"lead_id"`
	Content   string           `json:"content"`
	Direction MessageDirection `json:"direction"`
	Status    MessageStatus    `json:"status"`
	SentAt    time.Time        `json:"sent_at"`
}
