package request

import "strings"

// WebhookPayload is the subset of the WhatsApp Cloud API notification we read.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Messages []WebhookMessage `json:"messages"`
}

type WebhookMessage struct {
	From string       `json:"from"`
	Type string       `json:"type"`
	Text *WebhookText `json:"text,omitempty"`
}

type WebhookText struct {
	Body string `json:"body"`
}

// FirstTextMessage returns entry[0].changes[0].value.messages[0] when it
// carries a non-empty text body.
func (p WebhookPayload) FirstTextMessage() (from, text string, ok bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return "", "", false
	}
	msgs := p.Entry[0].Changes[0].Value.Messages
	if len(msgs) == 0 || msgs[0].Text == nil {
		return "", "", false
	}
	body := strings.TrimSpace(msgs[0].Text.Body)
	if body == "" {
		return "", "", false
	}
	return msgs[0].From, body, true
}
