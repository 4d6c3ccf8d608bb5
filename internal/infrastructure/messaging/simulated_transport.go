package messaging

import (
	"context"
	"fmt"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const previewRunes = 50

// SimulatedTransport pretends to send. It is selected whenever WhatsApp
// credentials are missing.
type SimulatedTransport struct {
	latency time.Duration
	now     func() time.Time
	log     *zap.Logger
}

var _ interfaces.IChannelTransport = (*SimulatedTransport)(nil)

func NewSimulatedTransport(latency time.Duration, logger *zap.Logger) *SimulatedTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedTransport{
		latency: latency,
		now:     time.Now,
		log:     logger.Named("simulated"),
	}
}

func (t *SimulatedTransport) Mode() entities.ChannelMode { return entities.ChannelModeSimulation }

func (t *SimulatedTransport) Send(ctx context.Context, phone, text string) (string, error) {
	if t.latency > 0 {
		timer := time.NewTimer(t.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	preview := []rune(text)
	if len(preview) > previewRunes {
		preview = preview[:previewRunes]
	}
	id := fmt.Sprintf("sim_%d_%s", t.now().UnixMilli(), NormalizeMSISDN(phone))
	t.log.Info("simulated send", zap.String("to", phone), zap.String("preview", string(preview)), zap.String("message_id", id))
	return id, nil
}
