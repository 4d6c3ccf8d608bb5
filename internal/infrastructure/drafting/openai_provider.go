package drafting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"mbg_outreach/internal/config"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

const (
	maxTokens   = 500
	temperature = 0.7
)

const systemPrompt = `Anda adalah asisten penulis pesan WhatsApp profesional untuk perusahaan roti yang ingin bermitra dengan Dapur MBG (Makan Bergizi Gratis).

ATURAN WAJIB:
1. Bahasa Indonesia yang sopan dan profesional
2. WAJIB menyebutkan: Halal MUI, SLHS (Sertifikat Laik Higiene Sanitasi)
3. WAJIB menyebutkan kepatuhan terhadap Perpres No. 83 Tahun 2024 tentang MBG
4. Produk utama: Roti gandum utuh tinggi serat
5. Maksimal 700 karakter
6. Salam pembuka: "Assalamualaikum Wr. Wb."
7. Salam penutup: "Wassalamualaikum Wr. Wb."
8. Tidak menyebutkan harga atau diskon
9. Ajakan untuk diskusi lebih lanjut
10. Gunakan emoji secukupnya untuk keramahan`

var ErrEmptyCompletion = errors.New("empty completion")

// OpenAIProvider drafts outreach messages with a chat model.
type OpenAIProvider struct {
	llm llms.Model
	log *zap.Logger
}

var _ interfaces.IDraftingProvider = (*OpenAIProvider)(nil)

// NewOpenAIProvider returns nil, nil when no API key is configured so callers
// fall back to template drafting.
func NewOpenAIProvider(cfg config.OpenAIConfig, logger *zap.Logger) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return NewProviderWithModel(llm, logger), nil
}

func NewProviderWithModel(llm llms.Model, logger *zap.Logger) *OpenAIProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIProvider{llm: llm, log: logger.Named("drafting")}
}

func (p *OpenAIProvider) Draft(ctx context.Context, lead entities.Lead) (string, error) {
	resp, err := p.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, UserPrompt(lead)),
	}, llms.WithMaxTokens(maxTokens), llms.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	p.log.Debug("draft generated", zap.String("lead_id", lead.ID), zap.Int("length", entities.MessageLength(text)))
	return text, nil
}

func UserPrompt(lead entities.Lead) string {
	district := lead.District
	if strings.TrimSpace(district) == "" {
		district = "-"
	}
	return fmt.Sprintf("Buatkan pesan WhatsApp penawaran roti untuk:\n- Nama Dapur: %s\n- Lokasi: %s, %s\n- Kecamatan: %s",
		lead.Name, lead.City, lead.Province, district)
}
