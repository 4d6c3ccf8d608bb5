package usecase

import (
	"context"
	"regexp"
	"strings"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const truncationSuffix = "..."

const outreachTemplate = `Assalamualaikum Wr. Wb.

Perkenalkan, kami dari CV Roti Sehat Indonesia ingin menawarkan kerjasama penyediaan roti untuk {{name}}.

Keunggulan produk kami:
🌾 Roti gandum utuh tinggi serat
✅ Bersertifikat HALAL MUI
✅ Memiliki SLHS (Sertifikat Laik Higiene Sanitasi)
✅ Sesuai standar gizi Perpres No. 83/2024 MBG

Kami siap mendukung program Makan Bergizi Gratis dengan produk roti berkualitas tinggi untuk anak-anak Indonesia.

Apakah Bapak/Ibu berkenan untuk kami jelaskan lebih lanjut?

Terima kasih 🙏
Wassalamualaikum Wr. Wb.`

var (
	reHalal   = regexp.MustCompile(`(?i)halal`)
	reSLHS    = regexp.MustCompile(`(?i)slhs`)
	rePerpres = regexp.MustCompile(`(?i)perpres|83.*2024|mbg`)
	reRoti    = regexp.MustCompile(`(?i)roti`)
)

type ComplianceChecks struct {
	HasHalal   bool `json:"hasHalal"`
	HasSLHS    bool `json:"hasSLHS"`
	HasPerpres bool `json:"hasPerpres"`
	HasRoti    bool `json:"hasRoti"`
	LengthOK   bool `json:"lengthOk"`
}

type DraftCompliance struct {
	Passed  bool             `json:"passed"`
	Checks  ComplianceChecks `json:"checks"`
	Message string           `json:"message"`
}

// IContentCreator drafts outreach messages.
type IContentCreator interface {
	GenerateMessage(ctx context.Context, lead entities.Lead) (string, error)
	GenerateFromTemplate(lead entities.Lead) string
	ValidateCompliance(message string) DraftCompliance
}

type ContentCreator struct {
	provider interfaces.IDraftingProvider
	metrics  interfaces.IOutreachMetrics
	log      *zap.Logger
}

var _ IContentCreator = (*ContentCreator)(nil)

// NewContentCreator builds a drafter. A nil provider means template-only drafting.
func NewContentCreator(provider interfaces.IDraftingProvider, metrics interfaces.IOutreachMetrics, logger *zap.Logger) *ContentCreator {
	return &ContentCreator{
		provider: provider,
		metrics:  orNopMetrics(metrics),
		log:      orNopLogger(logger).Named("content"),
	}
}

// GenerateMessage asks the drafting provider first and falls back to the
// template on any provider failure or when the truncated draft fails
// ValidateCompliance. Only context cancellation is returned.
func (c *ContentCreator) GenerateMessage(ctx context.Context, lead entities.Lead) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.provider != nil {
		text, err := c.provider.Draft(ctx, lead)
		text = strings.TrimSpace(text)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			c.log.Warn("ai drafting failed, using template", zap.String("lead_id", lead.ID), zap.Error(err))
		case text == "":
			c.log.Warn("ai drafting returned empty text, using template", zap.String("lead_id", lead.ID))
		default:
			text = TruncateMessage(text)
			if check := c.ValidateCompliance(text); !check.Passed {
				c.log.Warn("ai draft failed compliance, using template",
					zap.String("lead_id", lead.ID), zap.Any("checks", check.Checks))
				break
			}
			c.metrics.MessageDrafted(entities.DraftingModeAI)
			return text, nil
		}
	}
	c.metrics.MessageDrafted(entities.DraftingModeTemplate)
	return c.GenerateFromTemplate(lead), nil
}

func (c *ContentCreator) GenerateFromTemplate(lead entities.Lead) string {
	name := strings.TrimSpace(lead.Name)
	if name == "" {
		name = "Dapur MBG"
	}
	return strings.Replace(outreachTemplate, "{{name}}", name, 1)
}

func (c *ContentCreator) ValidateCompliance(message string) DraftCompliance {
	checks := ComplianceChecks{
		HasHalal:   reHalal.MatchString(message),
		HasSLHS:    reSLHS.MatchString(message),
		HasPerpres: rePerpres.MatchString(message),
		HasRoti:    reRoti.MatchString(message),
		LengthOK:   entities.MessageLength(message) <= entities.MaxMessageLength,
	}
	passed := checks.HasHalal && checks.HasSLHS && checks.HasPerpres && checks.HasRoti && checks.LengthOK
	msg := "Pesan perlu diperbaiki"
	if passed {
		msg = "Pesan sesuai standar"
	}
	return DraftCompliance{Passed: passed, Checks: checks, Message: msg}
}

// TruncateMessage cuts text to MaxMessageLength characters, marking the cut with "...".
func TruncateMessage(text string) string {
	if entities.MessageLength(text) <= entities.MaxMessageLength {
		return text
	}
	runes := []rune(text)
	keep := entities.MaxMessageLength - len(truncationSuffix)
	return string(runes[:keep]) + truncationSuffix
}
