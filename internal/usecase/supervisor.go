package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DefaultRecentContactWindow is the minimum gap between two outbound messages to one lead.
const DefaultRecentContactWindow = 24 * time.Hour

const (
	CheckStatusOK         = "ok"
	CheckStatusSimulation = "simulation"
	CheckStatusError      = "error"
)

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type SendCheck struct {
	CanSend  bool     `json:"canSend"`
	Blockers []string `json:"blockers"`
}

type ComplianceResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type PreflightCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type PreflightResult struct {
	Ready  bool                 `json:"ready"`
	Mode   entities.ChannelMode `json:"mode"`
	Checks []PreflightCheck     `json:"checks"`
}

type ReviewFlag struct {
	Flagged   bool      `json:"flagged"`
	LeadID    string    `json:"leadId"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// ISupervisor is the compliance and safety gate every outbound action passes through.
type ISupervisor interface {
	ValidateLead(lead entities.Lead) ValidationResult
	IsDuplicateLead(ctx context.Context, name, city string) (bool, error)
	CanSendMessage(lead entities.Lead) SendCheck
	WasRecentlyContacted(ctx context.Context, leadID string, window time.Duration) (bool, error)
	PrioritizeLeads(leads []entities.Lead) []entities.Lead
	ValidateMessageCompliance(message string) ComplianceResult
	PreFlightCheck(ctx context.Context) PreflightResult
	FlagForReview(leadID, reason string) ReviewFlag
}

type Supervisor struct {
	leads    interfaces.ILeadRepository
	messages interfaces.IMessageRepository
	drafting entities.DraftingMode
	channel  entities.ChannelMode
	now      func() time.Time
	log      *zap.Logger
}

var _ ISupervisor = (*Supervisor)(nil)

type SupervisorOption func(*Supervisor)

// WithClock overrides the wall clock used for recency checks.
func WithClock(now func() time.Time) SupervisorOption {
	return func(s *Supervisor) { s.now = now }
}

func NewSupervisor(
	leads interfaces.ILeadRepository,
	messages interfaces.IMessageRepository,
	drafting entities.DraftingMode,
	channel entities.ChannelMode,
	logger *zap.Logger,
	opts ...SupervisorOption,
) *Supervisor {
	s := &Supervisor{
		leads:    leads,
		messages: messages,
		drafting: drafting,
		channel:  channel,
		now:      func() time.Time { return time.Now().UTC() },
		log:      orNopLogger(logger).Named("supervisor"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Supervisor) ValidateLead(lead entities.Lead) ValidationResult {
	errs := []string{}
	if strings.TrimSpace(lead.Name) == "" {
		errs = append(errs, "Nama SPPG kosong")
	}
	if strings.TrimSpace(lead.City) == "" {
		errs = append(errs, "Kota/Kabupaten kosong")
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func (s *Supervisor) IsDuplicateLead(ctx context.Context, name, city string) (bool, error) {
	existing, err := s.leads.FindByNameCity(ctx, name, city)
	if err != nil {
		return false, err
	}
	return existing.ID != "", nil
}

func (s *Supervisor) CanSendMessage(lead entities.Lead) SendCheck {
	blockers := []string{}
	if !lead.HasPhone() {
		blockers = append(blockers, "Nomor telepon tidak tersedia")
	}
	if !lead.HasMessage() {
		blockers = append(blockers, "Pesan penawaran belum dibuat")
	}
	if entities.MessageLength(lead.OutreachMessage) > entities.MaxMessageLength {
		blockers = append(blockers, "Pesan terlalu panjang (max 700 karakter)")
	}
	return SendCheck{CanSend: len(blockers) == 0, Blockers: blockers}
}

// WasRecentlyContacted reports whether the latest outgoing message to the lead
// is younger than window. A lead with no outgoing message was never contacted.
func (s *Supervisor) WasRecentlyContacted(ctx context.Context, leadID string, window time.Duration) (bool, error) {
	if window <= 0 {
		window = DefaultRecentContactWindow
	}
	last, err := s.messages.LatestOutgoing(ctx, leadID)
	if err != nil {
		return false, err
	}
	if last.ID == "" {
		return false, nil
	}
	return s.now().Sub(last.SentAt) < window, nil
}

// PrioritizeLeads orders leads for dispatch: phone present first, then higher
// confidence, then newest. The input slice is left untouched.
func (s *Supervisor) PrioritizeLeads(leads []entities.Lead) []entities.Lead {
	out := make([]entities.Lead, len(leads))
	copy(out, leads)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasPhone() != b.HasPhone() {
			return a.HasPhone()
		}
		if a.ConfidenceScore != b.ConfidenceScore {
			return a.ConfidenceScore > b.ConfidenceScore
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}

func (s *Supervisor) ValidateMessageCompliance(message string) ComplianceResult {
	return checkMessageCompliance(message)
}

// checkMessageCompliance is the gate every stored outreach message passes.
func checkMessageCompliance(message string) ComplianceResult {
	if strings.TrimSpace(message) == "" {
		return ComplianceResult{Valid: false, Issues: []string{"Pesan kosong"}}
	}
	lower := strings.ToLower(message)
	issues := []string{}
	if !strings.Contains(lower, "roti") {
		issues = append(issues, "Tidak menyebutkan produk roti")
	}
	if !strings.Contains(lower, "halal") {
		issues = append(issues, "Tidak menyebutkan sertifikasi Halal")
	}
	if entities.MessageLength(message) > entities.MaxMessageLength {
		issues = append(issues, "Pesan melebihi 700 karakter")
	}
	return ComplianceResult{Valid: len(issues) == 0, Issues: issues}
}

func (s *Supervisor) PreFlightCheck(ctx context.Context) PreflightResult {
	checks := make([]PreflightCheck, 0, 3)

	if err := s.leads.Ping(ctx); err != nil {
		s.log.Error("store unreachable", zap.Error(err))
		checks = append(checks, PreflightCheck{Name: "Database", Status: CheckStatusError, Message: err.Error()})
	} else {
		checks = append(checks, PreflightCheck{Name: "Database", Status: CheckStatusOK})
	}

	if s.drafting == entities.DraftingModeAI {
		checks = append(checks, PreflightCheck{Name: "OpenAI API", Status: CheckStatusOK})
	} else {
		checks = append(checks, PreflightCheck{Name: "OpenAI API", Status: CheckStatusSimulation, Message: "Menggunakan template pesan"})
	}

	if s.channel == entities.ChannelModeProduction {
		checks = append(checks, PreflightCheck{Name: "WhatsApp API", Status: CheckStatusOK})
	} else {
		checks = append(checks, PreflightCheck{Name: "WhatsApp API", Status: CheckStatusSimulation, Message: "Mode simulasi aktif"})
	}

	ready := true
	for _, c := range checks {
		if c.Status != CheckStatusOK && c.Status != CheckStatusSimulation {
			ready = false
		}
	}
	return PreflightResult{Ready: ready, Mode: s.channel, Checks: checks}
}

// FlagForReview marks a lead as needing a human; nothing is persisted.
func (s *Supervisor) FlagForReview(leadID, reason string) ReviewFlag {
	s.log.Info("lead flagged for review", zap.String("lead_id", leadID), zap.String("reason", reason))
	return ReviewFlag{Flagged: true, LeadID: leadID, Reason: reason, Timestamp: s.now()}
}
