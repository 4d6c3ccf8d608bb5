package usecase

import (
	"context"
	"errors"
	"testing"

	"mbg_outreach/internal/adapter/persistence/memory"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/infrastructure/messaging"
	"mbg_outreach/internal/usecase/interfaces"
	mock_interfaces "mbg_outreach/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type outreachFixture struct {
	leads *memory.LeadRepository
	msgs  *memory.MessageRepository
	uc    *OutreachUseCase
}

func newOutreachFixture(transport interfaces.IChannelTransport, events interfaces.IEventPublisher) outreachFixture {
	leads := memory.NewLeadRepository()
	msgs := memory.NewMessageRepository()
	sup := NewSupervisor(leads, msgs, entities.DraftingModeTemplate, transport.Mode(), nil)
	return outreachFixture{
		leads: leads,
		msgs:  msgs,
		uc:    NewOutreachUseCase(leads, msgs, transport, sup, events, nil, nil),
	}
}

func seedLead(t *testing.T, repo interfaces.ILeadRepository, lead entities.Lead) entities.Lead {
	t.Helper()
	if lead.Status == "" {
		lead.Status = entities.LeadStatusNotContacted
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = testNow
		lead.UpdatedAt = testNow
	}
	saved, err := repo.Create(context.Background(), lead)
	require.NoError(t, err)
	return saved
}

func TestOutreachUseCase_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("requires phone and message", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		_, err := f.uc.SendMessage(ctx, entities.Lead{ID: "x", OutreachMessage: "roti"})
		assert.ErrorIs(t, err, ErrPhoneMissing)
		_, err = f.uc.SendMessage(ctx, entities.Lead{ID: "x", Phone: "0812"})
		assert.ErrorIs(t, err, ErrMessageMissing)
	})

	t.Run("simulated success marks sent", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		lead := seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Phone: "081234567890", OutreachMessage: "roti halal"})

		res, err := f.uc.SendMessage(ctx, lead)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, res.Simulated)
		assert.NotEmpty(t, res.MessageID)

		got, _ := f.leads.GetByID(ctx, "l1")
		assert.Equal(t, entities.LeadStatusSent, got.Status)
		require.NotNil(t, got.SentAt)

		log, _ := f.msgs.ListByLeadID(ctx, "l1")
		require.Len(t, log, 1)
		assert.Equal(t, entities.MessageStatusSent, log[0].Status)
		assert.Equal(t, entities.MessageDirectionOutgoing, log[0].Direction)
	})

	t.Run("transport failure logs failed message and keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tr := mock_interfaces.NewMockIChannelTransport(ctrl)
		tr.EXPECT().Mode().Return(entities.ChannelModeProduction).AnyTimes()
		tr.EXPECT().Send(gomock.Any(), "081234567890", "roti halal").Return("", errors.New("401 unauthorized"))

		f := newOutreachFixture(tr, nil)
		lead := seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Phone: "081234567890", OutreachMessage: "roti halal"})

		_, err := f.uc.SendMessage(ctx, lead)
		require.Error(t, err)

		got, _ := f.leads.GetByID(ctx, "l1")
		assert.Equal(t, entities.LeadStatusNotContacted, got.Status)
		assert.Nil(t, got.SentAt)

		log, _ := f.msgs.ListByLeadID(ctx, "l1")
		require.Len(t, log, 1)
		assert.Equal(t, entities.MessageStatusFailed, log[0].Status)
	})

	t.Run("publishes status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pub := mock_interfaces.NewMockIEventPublisher(ctrl)
		pub.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt entities.LeadStatusChanged) error {
				if evt.LeadID != "l1" || evt.From != entities.LeadStatusNotContacted || evt.To != entities.LeadStatusSent {
					t.Fatalf("unexpected event %+v", evt)
				}
				return errors.New("nats down")
			},
		)

		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), pub)
		lead := seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Phone: "0812", OutreachMessage: "roti"})

		_, err := f.uc.SendMessage(ctx, lead)
		require.NoError(t, err, "publish failures are not fatal")
	})
}

func TestClassifyReply(t *testing.T) {
	cases := map[string]entities.ReplyClassification{
		"Ya, kami tertarik":                        entities.ReplyInterested,
		"Kami BERMINAT":                            entities.ReplyInterested,
		"silakan lanjut":                           entities.ReplyInterested,
		"Maaf, kami tidak tertarik":                entities.ReplyNotInterested,
		"tidak berminat, terima kasih":             entities.ReplyNotInterested,
		"Berapa harga per pcs?":                    entities.ReplyQuestion,
		"Kontraknya berapa lama?":                  entities.ReplyQuestion,
		"Halo":                                     entities.ReplyUnknown,
		"tidak tertarik, tapi teman kami tertarik": entities.ReplyInterested,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, ClassifyReply(text))
		})
	}
}

func TestOutreachUseCase_ProcessReply(t *testing.T) {
	ctx := context.Background()

	t.Run("interested moves sent lead", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Status: entities.LeadStatusSent})

		res, err := f.uc.ProcessReply(ctx, "l1", "Ya, kami tertarik")
		require.NoError(t, err)
		assert.Equal(t, entities.ReplyInterested, res.Classification)
		assert.Equal(t, entities.LeadStatusInterested, res.Status)

		got, _ := f.leads.GetByID(ctx, "l1")
		assert.Equal(t, entities.LeadStatusInterested, got.Status)

		log, _ := f.msgs.ListByLeadID(ctx, "l1")
		require.Len(t, log, 1)
		assert.Equal(t, entities.MessageDirectionIncoming, log[0].Direction)
		assert.Equal(t, entities.MessageStatusReceived, log[0].Status)
	})

	t.Run("terminal status is never left", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Status: entities.LeadStatusInterested})

		res, err := f.uc.ProcessReply(ctx, "l1", "tidak tertarik lagi")
		require.NoError(t, err)
		assert.Equal(t, entities.ReplyNotInterested, res.Classification)
		assert.Equal(t, entities.LeadStatusInterested, res.Status)

		got, _ := f.leads.GetByID(ctx, "l1")
		assert.Equal(t, entities.LeadStatusInterested, got.Status)
	})

	t.Run("question is flagged without status change", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Status: entities.LeadStatusSent})

		res, err := f.uc.ProcessReply(ctx, "l1", "harganya berapa?")
		require.NoError(t, err)
		assert.Equal(t, entities.ReplyQuestion, res.Classification)
		require.NotNil(t, res.Flag)
		assert.Equal(t, entities.LeadStatusSent, res.Status)
	})

	t.Run("unknown lead", func(t *testing.T) {
		f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
		_, err := f.uc.ProcessReply(ctx, "missing", "tertarik")
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})
}

func TestOutreachUseCase_HandleInbound(t *testing.T) {
	ctx := context.Background()
	f := newOutreachFixture(messaging.NewSimulatedTransport(0, nil), nil)
	seedLead(t, f.leads, entities.Lead{ID: "l1", Name: "A", City: "B", Phone: "0812-3456-7890", Status: entities.LeadStatusSent})

	res, err := f.uc.HandleInbound(ctx, "6281234567890", "kami berminat")
	require.NoError(t, err)
	assert.Equal(t, "l1", res.LeadID)
	assert.Equal(t, entities.LeadStatusInterested, res.Status)

	_, err = f.uc.HandleInbound(ctx, "6289999999999", "kami berminat")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestPhoneSuffix(t *testing.T) {
	assert.Equal(t, "1234567890", PhoneSuffix("+62 812-3456-7890"))
	assert.Equal(t, "0812", PhoneSuffix("0812"))
	assert.Equal(t, "", PhoneSuffix("abc"))
}
