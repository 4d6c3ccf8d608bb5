package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultGraphBaseURL = "https://graph.facebook.com/v18.0"

var ErrWhatsAppNotConfigured = errors.New("whatsapp token/phone_id are not set")

// WhatsAppTransport sends text messages through the WhatsApp Cloud API.
type WhatsAppTransport struct {
	BaseURL    string
	Token      string
	PhoneID    string
	HTTPClient *http.Client
	log        *zap.Logger
}

var _ interfaces.IChannelTransport = (*WhatsAppTransport)(nil)

func NewWhatsAppTransport(token, phoneID string, logger *zap.Logger, opts ...func(*WhatsAppTransport)) *WhatsAppTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &WhatsAppTransport{
		BaseURL:    defaultGraphBaseURL,
		Token:      token,
		PhoneID:    phoneID,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.Named("whatsapp"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func WithBaseURL(baseURL string) func(*WhatsAppTransport) {
	return func(t *WhatsAppTransport) {
		if strings.TrimSpace(baseURL) != "" {
			t.BaseURL = baseURL
		}
	}
}

func WithHTTPClient(c *http.Client) func(*WhatsAppTransport) {
	return func(t *WhatsAppTransport) {
		if c != nil {
			t.HTTPClient = c
		}
	}
}

func (t *WhatsAppTransport) Mode() entities.ChannelMode { return entities.ChannelModeProduction }

type textBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	RecipientType    string   `json:"recipient_type"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (t *WhatsAppTransport) Send(ctx context.Context, phone, text string) (string, error) {
	if strings.TrimSpace(t.Token) == "" || strings.TrimSpace(t.PhoneID) == "" {
		return "", ErrWhatsAppNotConfigured
	}
	to := NormalizeMSISDN(phone)
	if to == "" {
		return "", fmt.Errorf("invalid phone number %q", phone)
	}

	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             textBody{PreviewURL: false, Body: text},
	})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(t.BaseURL, "/") + "/" + t.PhoneID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+t.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var out sendResponse
	_ = json.Unmarshal(body, &out)

	if resp.StatusCode/100 != 2 {
		msg := "whatsapp api error"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		t.log.Warn("send rejected", zap.Int("status", resp.StatusCode), zap.String("error", msg))
		return "", fmt.Errorf("whatsapp non-2xx: %d: %s", resp.StatusCode, msg)
	}

	id := ""
	if len(out.Messages) > 0 {
		id = out.Messages[0].ID
	}
	t.log.Info("message sent", zap.String("to", to), zap.String("message_id", id))
	return id, nil
}

// NormalizeMSISDN keeps digits only and rewrites a national leading 0 to 62.
func NormalizeMSISDN(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}
