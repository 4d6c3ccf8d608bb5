package usecase

import (
	"context"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type nopMetrics struct{}

var _ interfaces.IOutreachMetrics = nopMetrics{}

func (nopMetrics) LeadsDiscovered(int)                          {}
func (nopMetrics) MessageDrafted(entities.DraftingMode)         {}
func (nopMetrics) MessageSent(entities.ChannelMode, bool)       {}
func (nopMetrics) ReplyClassified(entities.ReplyClassification) {}
func (nopMetrics) SendSkipped(string)                           {}
func (nopMetrics) WorkflowFinished(time.Duration, bool)         {}

type nopPublisher struct{}

func (nopPublisher) PublishStatusChanged(context.Context, entities.LeadStatusChanged) error {
	return nil
}

func orNopMetrics(m interfaces.IOutreachMetrics) interfaces.IOutreachMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}

func orNopPublisher(p interfaces.IEventPublisher) interfaces.IEventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

func orNopLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// publishTransition announces a persisted status change. Failures are logged only.
func publishTransition(ctx context.Context, pub interfaces.IEventPublisher, log *zap.Logger, evt entities.LeadStatusChanged) {
	if evt.From == evt.To {
		return
	}
	if err := pub.PublishStatusChanged(ctx, evt); err != nil {
		log.Warn("status event publish failed",
			zap.String("lead_id", evt.LeadID),
			zap.String("to", string(evt.To)),
			zap.Error(err))
	}
}
