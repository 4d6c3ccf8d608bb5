package interfaces

import (
	"time"

	"mbg_outreach/internal/domain/entities"
)

// IOutreachMetrics records pipeline counters.
type IOutreachMetrics interface {
	LeadsDiscovered(n int)
	MessageDrafted(mode entities.DraftingMode)
	MessageSent(mode entities.ChannelMode, ok bool)
	ReplyClassified(c entities.ReplyClassification)
	SendSkipped(reason string)
	WorkflowFinished(d time.Duration, success bool)
}
