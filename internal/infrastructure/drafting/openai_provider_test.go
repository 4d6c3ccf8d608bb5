package drafting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"mbg_outreach/internal/config"
	"mbg_outreach/internal/domain/entities"
)

type fakeModel struct {
	content  string
	err      error
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.content}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestOpenAIProvider_Draft(t *testing.T) {
	lead := entities.Lead{ID: "l1", Name: "Dapur X", City: "Bandung", Province: "Jawa Barat"}

	t.Run("trims completion and sends both prompts", func(t *testing.T) {
		model := &fakeModel{content: "  Assalamualaikum Wr. Wb.  \n"}
		p := NewProviderWithModel(model, nil)

		got, err := p.Draft(context.Background(), lead)
		if err != nil {
			t.Fatalf("Draft() error = %v", err)
		}
		if got != "Assalamualaikum Wr. Wb." {
			t.Fatalf("Draft() = %q", got)
		}
		if len(model.messages) != 2 {
			t.Fatalf("messages = %d, want 2", len(model.messages))
		}
		if model.messages[0].Role != llms.ChatMessageTypeSystem || model.messages[1].Role != llms.ChatMessageTypeHuman {
			t.Fatalf("unexpected roles: %v, %v", model.messages[0].Role, model.messages[1].Role)
		}
	})

	t.Run("empty completion is an error", func(t *testing.T) {
		p := NewProviderWithModel(&fakeModel{content: "   "}, nil)
		if _, err := p.Draft(context.Background(), lead); !errors.Is(err, ErrEmptyCompletion) {
			t.Fatalf("Draft() error = %v, want ErrEmptyCompletion", err)
		}
	})

	t.Run("model error is wrapped", func(t *testing.T) {
		boom := errors.New("rate limited")
		p := NewProviderWithModel(&fakeModel{err: boom}, nil)
		if _, err := p.Draft(context.Background(), lead); !errors.Is(err, boom) {
			t.Fatalf("Draft() error = %v, want wrapped %v", err, boom)
		}
	})
}

func TestUserPrompt(t *testing.T) {
	got := UserPrompt(entities.Lead{Name: "Dapur X", City: "Bandung", Province: "Jawa Barat"})
	for _, want := range []string{"Nama Dapur: Dapur X", "Lokasi: Bandung, Jawa Barat", "Kecamatan: -"} {
		if !strings.Contains(got, want) {
			t.Errorf("UserPrompt() missing %q in %q", want, got)
		}
	}
}

func TestNewOpenAIProvider_NoKey(t *testing.T) {
	p, err := NewOpenAIProvider(config.OpenAIConfig{}, nil)
	if err != nil || p != nil {
		t.Fatalf("NewOpenAIProvider() = %v, %v; want nil, nil", p, err)
	}
}
