package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// phoneMatchDigits is how many trailing digits correlate an inbound sender to a lead.
const phoneMatchDigits = 10

var (
	interestedTerms = []string{"tertarik", "berminat", "lanjut"}
	// Longer than the original curated set; stripped from a reply before positive terms match.
	notInterestedTerms = []string{"tidak tertarik", "tidak berminat", "tak tertarik", "belum tertarik", "kurang tertarik", "tidak lanjut"}
	questionTerms      = []string{"harga", "berapa", "kontrak"}
)

type SendResult struct {
	Success   bool   `json:"success"`
	Simulated bool   `json:"simulated"`
	MessageID string `json:"messageId"`
}

type ReplyResult struct {
	LeadID         string                       `json:"leadId"`
	Classification entities.ReplyClassification `json:"classification"`
	Processed      bool                         `json:"processed"`
	PreviousStatus entities.LeadStatus          `json:"previousStatus"`
	Status         entities.LeadStatus          `json:"status"`
	Flag           *ReviewFlag                  `json:"flag,omitempty"`
}

// IOutreachUseCase dispatches messages and handles replies.
type IOutreachUseCase interface {
	SendMessage(ctx context.Context, lead entities.Lead) (SendResult, error)
	ClassifyReply(text string) entities.ReplyClassification
	ProcessReply(ctx context.Context, leadID, text string) (ReplyResult, error)
	HandleInbound(ctx context.Context, senderPhone, text string) (ReplyResult, error)
}

type OutreachUseCase struct {
	leads      interfaces.ILeadRepository
	messages   interfaces.IMessageRepository
	transport  interfaces.IChannelTransport
	supervisor ISupervisor
	events     interfaces.IEventPublisher
	metrics    interfaces.IOutreachMetrics
	log        *zap.Logger
	now        func() time.Time
}

var _ IOutreachUseCase = (*OutreachUseCase)(nil)

func NewOutreachUseCase(
	leads interfaces.ILeadRepository,
	messages interfaces.IMessageRepository,
	transport interfaces.IChannelTransport,
	supervisor ISupervisor,
	events interfaces.IEventPublisher,
	metrics interfaces.IOutreachMetrics,
	logger *zap.Logger,
) *OutreachUseCase {
	return &OutreachUseCase{
		leads:      leads,
		messages:   messages,
		transport:  transport,
		supervisor: supervisor,
		events:     orNopPublisher(events),
		metrics:    orNopMetrics(metrics),
		log:        orNopLogger(logger).Named("outreach"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SendMessage delivers the lead's drafted message and logs the attempt.
//
// The lead moves to Sent only when the transport accepted the message.
func (u *OutreachUseCase) SendMessage(ctx context.Context, lead entities.Lead) (SendResult, error) {
	if !lead.HasPhone() {
		return SendResult{}, ErrPhoneMissing
	}
	if !lead.HasMessage() {
		return SendResult{}, ErrMessageMissing
	}

	mode := u.transport.Mode()
	u.log.Info("send start", zap.String("lead_id", lead.ID), zap.String("lead", lead.Name), zap.String("mode", string(mode)))

	providerID, sendErr := u.transport.Send(ctx, lead.Phone, lead.OutreachMessage)
	now := u.now()

	status := entities.MessageStatusSent
	if sendErr != nil {
		status = entities.MessageStatusFailed
	}
	if _, err := u.messages.Append(ctx, entities.Message{
		ID:        uuid.NewString(),
		LeadID:    lead.ID,
		Content:   lead.OutreachMessage,
		Direction: entities.MessageDirectionOutgoing,
		Status:    status,
		SentAt:    now,
	}); err != nil {
		u.log.Error("message log append failed", zap.String("lead_id", lead.ID), zap.Error(err))
	}
	u.metrics.MessageSent(mode, sendErr == nil)

	if sendErr != nil {
		u.log.Warn("send failed", zap.String("lead_id", lead.ID), zap.Error(sendErr))
		return SendResult{}, fmt.Errorf("send to lead %s: %w", lead.ID, sendErr)
	}

	upd := interfaces.LeadUpdate{SentAt: &now}
	if lead.Status.CanTransitionTo(entities.LeadStatusSent) {
		st := entities.LeadStatusSent
		upd.Status = &st
	}
	if _, err := u.leads.Update(ctx, lead.ID, upd); err != nil {
		u.log.Error("status update after send failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return SendResult{}, fmt.Errorf("mark lead %s sent: %w", lead.ID, err)
	}
	if upd.Status != nil {
		publishTransition(ctx, u.events, u.log, entities.LeadStatusChanged{
			LeadID: lead.ID, From: lead.Status, To: *upd.Status, Reason: "message sent", At: now,
		})
	}

	u.log.Info("send success", zap.String("lead_id", lead.ID), zap.String("provider_message_id", providerID))
	return SendResult{
		Success:   true,
		Simulated: mode == entities.ChannelModeSimulation,
		MessageID: providerID,
	}, nil
}

// ClassifyReply maps a free-text reply to a classification by keyword.
//
// Interested terms win over not-interested terms, which win over question
// terms. Positive terms embedded in a negative phrase ("tidak tertarik") do
// not count as positive.
func (u *OutreachUseCase) ClassifyReply(text string) entities.ReplyClassification {
	return ClassifyReply(text)
}

func ClassifyReply(text string) entities.ReplyClassification {
	lower := strings.ToLower(text)

	positive := lower
	for _, neg := range notInterestedTerms {
		positive = strings.ReplaceAll(positive, neg, " ")
	}
	if containsAny(positive, interestedTerms) {
		return entities.ReplyInterested
	}
	if containsAny(lower, notInterestedTerms) {
		return entities.ReplyNotInterested
	}
	if containsAny(lower, questionTerms) {
		return entities.ReplyQuestion
	}
	return entities.ReplyUnknown
}

func (u *OutreachUseCase) ProcessReply(ctx context.Context, leadID, text string) (ReplyResult, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return ReplyResult{}, ErrInvalidLeadID
	}
	if strings.TrimSpace(text) == "" {
		return ReplyResult{}, ErrEmptyReply
	}

	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return ReplyResult{}, err
	}
	if lead.ID == "" {
		return ReplyResult{}, ErrLeadNotFound
	}
	return u.processReply(ctx, lead, text)
}

func (u *OutreachUseCase) processReply(ctx context.Context, lead entities.Lead, text string) (ReplyResult, error) {
	now := u.now()
	if _, err := u.messages.Append(ctx, entities.Message{
		ID:        uuid.NewString(),
		LeadID:    lead.ID,
		Content:   text,
		Direction: entities.MessageDirectionIncoming,
		Status:    entities.MessageStatusReceived,
		SentAt:    now,
	}); err != nil {
		return ReplyResult{}, fmt.Errorf("log reply for lead %s: %w", lead.ID, err)
	}

	class := ClassifyReply(text)
	u.metrics.ReplyClassified(class)
	u.log.Info("reply classified", zap.String("lead_id", lead.ID), zap.String("classification", string(class)))

	res := ReplyResult{
		LeadID:         lead.ID,
		Classification: class,
		Processed:      true,
		PreviousStatus: lead.Status,
		Status:         lead.Status,
	}

	target, moves := class.TargetStatus()
	if !moves {
		flag := u.supervisor.FlagForReview(lead.ID, "reply needs human follow-up: "+string(class))
		res.Flag = &flag
		return res, nil
	}
	if !lead.Status.CanTransitionTo(target) {
		u.log.Info("reply ignored for status", zap.String("lead_id", lead.ID), zap.String("status", string(lead.Status)))
		return res, nil
	}

	if _, err := u.leads.Update(ctx, lead.ID, interfaces.LeadUpdate{Status: &target}); err != nil {
		return ReplyResult{}, fmt.Errorf("update lead %s status: %w", lead.ID, err)
	}
	res.Status = target
	publishTransition(ctx, u.events, u.log, entities.LeadStatusChanged{
		LeadID: lead.ID, From: lead.Status, To: target, Reason: "reply " + string(class), At: now,
	})
	return res, nil
}

// HandleInbound correlates a webhook sender to a lead by the trailing phone digits.
func (u *OutreachUseCase) HandleInbound(ctx context.Context, senderPhone, text string) (ReplyResult, error) {
	suffix := PhoneSuffix(senderPhone)
	if suffix == "" {
		return ReplyResult{}, ErrLeadNotFound
	}
	if strings.TrimSpace(text) == "" {
		return ReplyResult{}, ErrEmptyReply
	}

	lead, err := u.leads.FindByPhoneSuffix(ctx, suffix)
	if err != nil {
		return ReplyResult{}, err
	}
	if lead.ID == "" {
		u.log.Info("inbound from unknown sender", zap.String("suffix", suffix))
		return ReplyResult{}, ErrLeadNotFound
	}
	return u.processReply(ctx, lead, text)
}

// PhoneSuffix keeps the last ten digits of a phone number.
func PhoneSuffix(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) > phoneMatchDigits {
		return digits[len(digits)-phoneMatchDigits:]
	}
	return digits
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
