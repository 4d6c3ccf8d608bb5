// Package events publishes lead lifecycle events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

const DefaultSubject = "outreach.lead.status"

type statusChangedPayload struct {
	LeadID string `json:"lead_id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
	At     string `json:"at"`
}

// NATSPublisher publishes LeadStatusChanged as JSON on a single subject.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
	log     *zap.Logger
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(nc *nats.Conn, subject string, logger *zap.Logger) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NATSPublisher{nc: nc, subject: subject, log: logger.Named("events")}
}

// Connect dials NATS with the same retry policy the API server uses.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("mbg-outreach"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return nc, nil
}

func (p *NATSPublisher) PublishStatusChanged(ctx context.Context, evt entities.LeadStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(statusChangedPayload{
		LeadID: evt.LeadID,
		From:   string(evt.From),
		To:     string(evt.To),
		Reason: evt.Reason,
		At:     evt.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}
	p.log.Debug("status event published", zap.String("lead_id", evt.LeadID), zap.String("to", string(evt.To)))
	return nil
}
