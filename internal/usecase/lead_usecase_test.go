package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mbg_outreach/internal/adapter/persistence/memory"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
	mock_interfaces "mbg_outreach/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Update(t *testing.T) {
	ctx := context.Background()

	newUC := func(t *testing.T, status entities.LeadStatus) (*LeadUseCase, *memory.LeadRepository) {
		leads := memory.NewLeadRepository()
		seedLead(t, leads, entities.Lead{ID: "l1", Name: "A", City: "B", Status: status})
		return NewLeadUseCase(leads, memory.NewMessageRepository(), nil, nil), leads
	}

	t.Run("not found", func(t *testing.T) {
		uc, _ := newUC(t, entities.LeadStatusNotContacted)
		if _, err := uc.Update(ctx, "missing", UpdateLeadInput{}); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("allowed transition", func(t *testing.T) {
		uc, _ := newUC(t, entities.LeadStatusSent)
		st := entities.LeadStatusInterested
		got, err := uc.Update(ctx, "l1", UpdateLeadInput{Status: &st})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.LeadStatusInterested {
			t.Fatalf("expected Interested, got %s", got.Status)
		}
	})

	t.Run("terminal status rejected", func(t *testing.T) {
		uc, _ := newUC(t, entities.LeadStatusNotInterested)
		st := entities.LeadStatusNotContacted
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{Status: &st}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, _ := newUC(t, entities.LeadStatusInterested)
		st := entities.LeadStatusInterested
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{Status: &st}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("message too long", func(t *testing.T) {
		uc, _ := newUC(t, entities.LeadStatusNotContacted)
		msg := strings.Repeat("a", entities.MaxMessageLength+1)
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{OutreachMessage: &msg}); !errors.Is(err, ErrMessageTooLong) {
			t.Fatalf("expected ErrMessageTooLong, got %v", err)
		}
	})

	t.Run("non compliant message rejected", func(t *testing.T) {
		uc, leads := newUC(t, entities.LeadStatusNotContacted)
		msg := "beli kue"
		_, err := uc.Update(ctx, "l1", UpdateLeadInput{OutreachMessage: &msg})
		if !errors.Is(err, ErrNonCompliant) {
			t.Fatalf("expected ErrNonCompliant, got %v", err)
		}
		if !strings.Contains(err.Error(), "Tidak menyebutkan produk roti") {
			t.Fatalf("expected issues in error, got %v", err)
		}
		got, _ := leads.GetByID(ctx, "l1")
		if got.OutreachMessage != "" {
			t.Fatalf("non compliant message must not be saved, got %q", got.OutreachMessage)
		}
	})

	t.Run("empty message clears the draft", func(t *testing.T) {
		uc, leads := newUC(t, entities.LeadStatusNotContacted)
		first := "roti halal"
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{OutreachMessage: &first}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		empty := ""
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{OutreachMessage: &empty}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := leads.GetByID(ctx, "l1")
		if got.OutreachMessage != "" {
			t.Fatalf("expected cleared message, got %q", got.OutreachMessage)
		}
	})

	t.Run("message saved", func(t *testing.T) {
		uc, leads := newUC(t, entities.LeadStatusNotContacted)
		msg := "roti halal"
		if _, err := uc.Update(ctx, "l1", UpdateLeadInput{OutreachMessage: &msg}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := leads.GetByID(ctx, "l1")
		if got.OutreachMessage != msg {
			t.Fatalf("message not saved")
		}
	})
}

func TestLeadUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()
	leads := memory.NewLeadRepository()
	msgs := memory.NewMessageRepository()
	seedLead(t, leads, entities.Lead{ID: "l1", Name: "A", City: "B"})
	uc := NewLeadUseCase(leads, msgs, nil, nil)

	d, err := uc.GetDetail(ctx, "l1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Messages == nil || len(d.Messages) != 0 {
		t.Fatalf("expected empty, non-nil messages")
	}

	_, _ = msgs.Append(ctx, entities.Message{ID: "m1", LeadID: "l1", Direction: entities.MessageDirectionOutgoing, SentAt: testNow})
	d, _ = uc.GetDetail(ctx, "l1")
	if len(d.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(d.Messages))
	}

	if _, err := uc.GetDetail(ctx, ""); !errors.Is(err, ErrInvalidLeadID) {
		t.Fatalf("expected ErrInvalidLeadID, got %v", err)
	}
}

func TestLeadUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	uc := NewLeadUseCase(repo, nil, nil, nil)
	uc.now = func() time.Time { return time.Date(2025, 1, 6, 15, 30, 0, 0, time.UTC) }

	repo.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.LeadStatus]int{
		entities.LeadStatusNotContacted: 4,
		entities.LeadStatusSent:         3,
		entities.LeadStatusInterested:   2,
	}, nil)
	repo.EXPECT().CountSentSince(gomock.Any(), time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)).Return(1, nil)

	st, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st != (LeadStats{Total: 9, SentToday: 1, Interested: 2, Pending: 3}) {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestLeadUseCase_FindDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	uc := NewLeadUseCase(repo, nil, nil, nil)

	repo.EXPECT().List(gomock.Any(), interfaces.LeadFilter{}).Return([]entities.Lead{
		{ID: "1", Name: "Dapur X", City: "Bandung"},
		{ID: "2", Name: "DAPUR X ", City: "bandung"},
		{ID: "3", Name: "Dapur Y", City: "Bandung"},
	}, nil)

	groups, err := uc.FindDuplicates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Leads) != 2 || groups[0].Key != "dapur x|bandung" {
		t.Fatalf("unexpected groups %+v", groups)
	}
}
