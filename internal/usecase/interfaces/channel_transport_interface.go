package interfaces

import (
	"context"

	"mbg_outreach/internal/domain/entities"
)

// IChannelTransport delivers a text message to a phone number.
//
// Send returns the provider message id.
type IChannelTransport interface {
	Send(ctx context.Context, phone, text string) (providerMessageID string, err error)
	Mode() entities.ChannelMode
}
