package interfaces

import (
	"context"
	"errors"
	"time"

	"mbg_outreach/internal/domain/entities"
)

// ErrDuplicateLead is returned by Create when (name, city) already exists.
var ErrDuplicateLead = errors.New("lead already exists")

// ILeadRepository abstracts persistence for Lead.
//
// Not-found lookups return a zero Lead and a nil error; callers check ID.
// Implementations must enforce (name, city) uniqueness case-insensitively.
type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	FindByNameCity(ctx context.Context, name, city string) (entities.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, id string, upd LeadUpdate) (entities.Lead, error)
	FindByPhoneSuffix(ctx context.Context, suffix string) (entities.Lead, error)
	CountByStatus(ctx context.Context) (map[entities.LeadStatus]int, error)
	CountSentSince(ctx context.Context, since time.Time) (int, error)
	Ping(ctx context.Context) error
}

// LeadFilter narrows List. Nil pointers mean "don't care".
type LeadFilter struct {
	Status     *entities.LeadStatus
	HasMessage *bool
	HasPhone   *bool
}

func (f LeadFilter) Matches(l entities.Lead) bool {
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.HasMessage != nil && l.HasMessage() != *f.HasMessage {
		return false
	}
	if f.HasPhone != nil && l.HasPhone() != *f.HasPhone {
		return false
	}
	return true
}

// LeadUpdate is a partial update; only non-nil fields are written.
// UpdatedAt is always stamped by the repository.
type LeadUpdate struct {
	Phone           *string
	OutreachMessage *string
	Status          *entities.LeadStatus
	SentAt          *time.Time
}

func (u LeadUpdate) IsEmpty() bool {
	return u.Phone == nil && u.OutreachMessage == nil && u.Status == nil && u.SentAt == nil
}

// Apply writes the set fields onto l and stamps UpdatedAt.
func (u LeadUpdate) Apply(l *entities.Lead, now time.Time) {
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.OutreachMessage != nil {
		l.OutreachMessage = *u.OutreachMessage
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.SentAt != nil {
		t := *u.SentAt
		l.SentAt = &t
	}
	l.UpdatedAt = now
}
