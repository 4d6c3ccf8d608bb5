package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const resultsPerQuery = 3

var (
	// Indonesian mobile (08xx / +628xx) and landline (02x) numbers.
	rePhone      = regexp.MustCompile(`(?:\+62|62|0)(?:8[1-9][0-9]|2[1-9])[\s-]?\d{3,4}[\s-]?\d{3,5}`)
	rePhoneClean = regexp.MustCompile(`[^0-9+]`)
)

type ContactResult struct {
	Success bool   `json:"success"`
	Phone   string `json:"phone,omitempty"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
}

// IContactScanner looks up a phone number for a lead on the public web.
type IContactScanner interface {
	FindContact(ctx context.Context, leadID string) (ContactResult, error)
}

type ContactScanner struct {
	leads   interfaces.ILeadRepository
	search  interfaces.ISearchEngine
	fetcher interfaces.IPageFetcher
	pacing  PacingPolicy
	log     *zap.Logger
}

var _ IContactScanner = (*ContactScanner)(nil)

func NewContactScanner(
	leads interfaces.ILeadRepository,
	search interfaces.ISearchEngine,
	fetcher interfaces.IPageFetcher,
	pacing PacingPolicy,
	logger *zap.Logger,
) *ContactScanner {
	if pacing == nil {
		pacing = NoPacing()
	}
	return &ContactScanner{
		leads:   leads,
		search:  search,
		fetcher: fetcher,
		pacing:  pacing,
		log:     orNopLogger(logger).Named("scanner"),
	}
}

func (s *ContactScanner) FindContact(ctx context.Context, leadID string) (ContactResult, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return ContactResult{}, ErrInvalidLeadID
	}
	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return ContactResult{}, err
	}
	if lead.ID == "" {
		return ContactResult{}, ErrLeadNotFound
	}

	s.log.Info("contact search start", zap.String("lead_id", lead.ID), zap.String("lead", lead.Name))
	queries := []string{
		fmt.Sprintf(`"%s" %s kontak`, lead.Name, lead.City),
		fmt.Sprintf(`"%s" telepon`, lead.Name),
		fmt.Sprintf(`"%s" kepala sekolah`, lead.Name),
	}

	visited := 0
	for _, q := range queries {
		results, err := s.search.Search(ctx, q)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ContactResult{}, ctxErr
			}
			s.log.Warn("search failed", zap.String("query", q), zap.Error(err))
			continue
		}
		if len(results) > resultsPerQuery {
			results = results[:resultsPerQuery]
		}
		for _, r := range results {
			if visited > 0 {
				if err := pause(ctx, s.pacing()); err != nil {
					return ContactResult{}, err
				}
			}
			visited++

			text, err := s.fetcher.FetchText(ctx, r.URL)
			if err != nil {
				s.log.Debug("page fetch failed", zap.String("url", r.URL), zap.Error(err))
				continue
			}
			phone := ExtractPhone(text)
			if phone == "" {
				continue
			}

			if _, err := s.leads.Update(ctx, lead.ID, interfaces.LeadUpdate{Phone: &phone}); err != nil {
				return ContactResult{}, fmt.Errorf("save phone for lead %s: %w", lead.ID, err)
			}
			s.log.Info("contact found", zap.String("lead_id", lead.ID), zap.String("source", r.URL))
			return ContactResult{Success: true, Phone: phone, Source: r.URL}, nil
		}
	}

	s.log.Info("contact not found", zap.String("lead_id", lead.ID))
	return ContactResult{Success: false, Message: "Nomor tidak ditemukan di sumber publik"}, nil
}

// ExtractPhone returns the first Indonesian phone number in text, reduced to
// digits and '+', or "" when none has a plausible length.
func ExtractPhone(text string) string {
	m := rePhone.FindString(text)
	if m == "" {
		return ""
	}
	clean := rePhoneClean.ReplaceAllString(m, "")
	if len(clean) < 10 || len(clean) > 15 {
		return ""
	}
	return clean
}
