package handlers

import (
	"errors"
	"net/http"
	"testing"

	"mbg_outreach/internal/adapter/http/handlers/mocks"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const inboundPayload = `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[{"from":"6281234567890","type":"text","text":{"body":"Saya tertarik"}}]}}]}]}`

func newWebhookRouter(uc usecase.IOutreachUseCase) *gin.Engine {
	h := NewWebhookHandler(uc, "secret", nil)
	r := gin.New()
	r.GET("/api/webhook", h.Verify)
	r.POST("/api/webhook", h.Receive)
	return r
}

func TestWebhookHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		code  int
		body  string
	}{
		{name: "ok", query: "?hub.mode=subscribe&hub.verify_token=secret&hub.challenge=42", code: http.StatusOK, body: "42"},
		{name: "wrong token", query: "?hub.mode=subscribe&hub.verify_token=nope&hub.challenge=42", code: http.StatusForbidden},
		{name: "wrong mode", query: "?hub.mode=unsubscribe&hub.verify_token=secret", code: http.StatusForbidden},
		{name: "missing params", query: "", code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := serve(newWebhookRouter(mocks.NewMockIOutreachUseCase(ctrl)), http.MethodGet, "/api/webhook"+tt.query, "")
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Fatalf("expected body %q, got %q", tt.body, w.Body.String())
			}
		})
	}
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("text reply processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		uc.EXPECT().HandleInbound(gomock.Any(), "6281234567890", "Saya tertarik").Return(usecase.ReplyResult{
			LeadID:         "l1",
			Classification: entities.ReplyInterested,
			Processed:      true,
			Status:         entities.LeadStatusInterested,
		}, nil)

		w := serve(newWebhookRouter(uc), http.MethodPost, "/api/webhook", inboundPayload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown sender still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		uc.EXPECT().HandleInbound(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ReplyResult{}, usecase.ErrLeadNotFound)

		w := serve(newWebhookRouter(uc), http.MethodPost, "/api/webhook", inboundPayload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("processing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOutreachUseCase(ctrl)
		uc.EXPECT().HandleInbound(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ReplyResult{}, errors.New("db down"))

		w := serve(newWebhookRouter(uc), http.MethodPost, "/api/webhook", inboundPayload)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("status callback without messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := serve(newWebhookRouter(mocks.NewMockIOutreachUseCase(ctrl)), http.MethodPost, "/api/webhook",
			`{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"statuses":[]}}]}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not a whatsapp notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w := serve(newWebhookRouter(mocks.NewMockIOutreachUseCase(ctrl)), http.MethodPost, "/api/webhook", `{"hello":"world"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
