package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type LeadDetail struct {
	Lead     entities.Lead      `json:"lead"`
	Messages []entities.Message `json:"messages"`
}

// LeadStats are the dashboard KPIs. Pending counts leads awaiting a reply.
type LeadStats struct {
	Total      int `json:"total"`
	SentToday  int `json:"sentToday"`
	Interested int `json:"interested"`
	Pending    int `json:"pending"`
}

// UpdateLeadInput is a manual edit from the sales team. Nil fields are left alone.
type UpdateLeadInput struct {
	Status          *entities.LeadStatus
	OutreachMessage *string
}

type DuplicateGroup struct {
	Key   string          `json:"key"`
	Leads []entities.Lead `json:"leads"`
}

// ILeadUseCase exposes lead management for the dashboard and CLI.
type ILeadUseCase interface {
	List(ctx context.Context, status *entities.LeadStatus) ([]entities.Lead, error)
	GetDetail(ctx context.Context, id string) (LeadDetail, error)
	Update(ctx context.Context, id string, in UpdateLeadInput) (entities.Lead, error)
	Stats(ctx context.Context) (LeadStats, error)
	FindDuplicates(ctx context.Context) ([]DuplicateGroup, error)
}

type LeadUseCase struct {
	leads    interfaces.ILeadRepository
	messages interfaces.IMessageRepository
	events   interfaces.IEventPublisher
	log      *zap.Logger
	now      func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	leads interfaces.ILeadRepository,
	messages interfaces.IMessageRepository,
	events interfaces.IEventPublisher,
	logger *zap.Logger,
) *LeadUseCase {
	return &LeadUseCase{
		leads:    leads,
		messages: messages,
		events:   orNopPublisher(events),
		log:      orNopLogger(logger).Named("leads"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *LeadUseCase) List(ctx context.Context, status *entities.LeadStatus) ([]entities.Lead, error) {
	return u.leads.List(ctx, interfaces.LeadFilter{Status: status})
}

func (u *LeadUseCase) GetDetail(ctx context.Context, id string) (LeadDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return LeadDetail{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return LeadDetail{}, err
	}
	if lead.ID == "" {
		return LeadDetail{}, ErrLeadNotFound
	}
	msgs, err := u.messages.ListByLeadID(ctx, id)
	if err != nil {
		return LeadDetail{}, err
	}
	if msgs == nil {
		msgs = []entities.Message{}
	}
	return LeadDetail{Lead: lead, Messages: msgs}, nil
}

// Update applies a manual edit. Status changes follow the lead state machine
// (setting the current status again is a no-op) and messages must pass the
// same compliance check as drafted ones.
func (u *LeadUseCase) Update(ctx context.Context, id string, in UpdateLeadInput) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	var upd interfaces.LeadUpdate
	if in.Status != nil && *in.Status != lead.Status {
		if !lead.Status.CanTransitionTo(*in.Status) {
			return entities.Lead{}, ErrInvalidStatus
		}
		upd.Status = in.Status
	}
	if in.OutreachMessage != nil {
		if entities.MessageLength(*in.OutreachMessage) > entities.MaxMessageLength {
			return entities.Lead{}, ErrMessageTooLong
		}
		// An empty message clears the draft; anything else must pass the gate.
		if strings.TrimSpace(*in.OutreachMessage) != "" {
			if c := checkMessageCompliance(*in.OutreachMessage); !c.Valid {
				return entities.Lead{}, fmt.Errorf("%w: %s", ErrNonCompliant, strings.Join(c.Issues, ", "))
			}
		}
		upd.OutreachMessage = in.OutreachMessage
	}
	if upd.IsEmpty() {
		return lead, nil
	}

	updated, err := u.leads.Update(ctx, id, upd)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	if upd.Status != nil {
		u.log.Info("lead status changed manually", zap.String("lead_id", id), zap.String("from", string(lead.Status)), zap.String("to", string(*upd.Status)))
		publishTransition(ctx, u.events, u.log, entities.LeadStatusChanged{
			LeadID: id, From: lead.Status, To: *upd.Status, Reason: "manual update", At: updated.UpdatedAt,
		})
	}
	return updated, nil
}

func (u *LeadUseCase) Stats(ctx context.Context) (LeadStats, error) {
	byStatus, err := u.leads.CountByStatus(ctx)
	if err != nil {
		return LeadStats{}, err
	}
	now := u.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sentToday, err := u.leads.CountSentSince(ctx, startOfDay)
	if err != nil {
		return LeadStats{}, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}
	return LeadStats{
		Total:      total,
		SentToday:  sentToday,
		Interested: byStatus[entities.LeadStatusInterested],
		Pending:    byStatus[entities.LeadStatusSent],
	}, nil
}

// FindDuplicates reports (name, city) groups holding more than one lead.
// Stores enforce uniqueness, so a non-empty result means imported legacy data.
func (u *LeadUseCase) FindDuplicates(ctx context.Context) ([]DuplicateGroup, error) {
	all, err := u.leads.List(ctx, interfaces.LeadFilter{})
	if err != nil {
		return nil, err
	}
	byKey := map[string][]entities.Lead{}
	for _, l := range all {
		byKey[l.DedupKey()] = append(byKey[l.DedupKey()], l)
	}
	groups := []DuplicateGroup{}
	for key, leads := range byKey {
		if len(leads) > 1 {
			groups = append(groups, DuplicateGroup{Key: key, Leads: leads})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}
