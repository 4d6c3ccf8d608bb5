package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	msgSystemNotReady  = "Sistem belum siap. Periksa konfigurasi."
	msgRecentlyContact = "Baru saja dihubungi"
	msgEmptyDraft      = "Pesan kosong"

	skipReasonBlocked = "blocked"
	skipReasonRecent  = "recently_contacted"
)

type DraftDetail struct {
	LeadID  string   `json:"leadId"`
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type DraftReport struct {
	Count   int           `json:"count"`
	Details []DraftDetail `json:"details"`
}

type SendDetail struct {
	LeadID    string   `json:"leadId"`
	Name      string   `json:"nama_sppg"`
	Sent      bool     `json:"sent"`
	Simulated bool     `json:"simulated,omitempty"`
	Blockers  []string `json:"blockers,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type SendReport struct {
	Count   int          `json:"count"`
	Details []SendDetail `json:"details"`
}

type WorkflowSummary struct {
	NewLeadsFound     int      `json:"newLeadsFound"`
	MessagesGenerated int      `json:"messagesGenerated"`
	MessagesSent      int      `json:"messagesSent"`
	Errors            []string `json:"errors"`
}

type WorkflowResult struct {
	Success               bool             `json:"success"`
	Step1FindLeads        *DiscoveryResult `json:"step1_findLeads"`
	Step2GenerateMessages *DraftReport     `json:"step2_generateMessages"`
	Step3SendOutreach     *SendReport      `json:"step3_sendOutreach"`
	Summary               WorkflowSummary  `json:"summary"`
}

type GenerateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SystemStatus struct {
	Ready  bool                 `json:"ready"`
	Mode   entities.ChannelMode `json:"mode"`
	Checks []PreflightCheck     `json:"checks"`
}

// IOrchestratorUseCase is the single entry point for automation.
type IOrchestratorUseCase interface {
	RunFullWorkflow(ctx context.Context) WorkflowResult
	GenerateMessageForLead(ctx context.Context, leadID string) (GenerateResult, error)
	SendMessageForLead(ctx context.Context, leadID string) (SendResult, error)
	GetSystemStatus(ctx context.Context) SystemStatus
}

type OrchestratorUseCase struct {
	supervisor ISupervisor
	locator    ILeadLocator
	content    IContentCreator
	outreach   IOutreachUseCase
	leads      interfaces.ILeadRepository
	pacing     PacingPolicy
	window     time.Duration
	metrics    interfaces.IOutreachMetrics
	log        *zap.Logger
}

var _ IOrchestratorUseCase = (*OrchestratorUseCase)(nil)

type OrchestratorOption func(*OrchestratorUseCase)

// WithRecentContactWindow overrides the minimum gap between two sends to one lead.
func WithRecentContactWindow(d time.Duration) OrchestratorOption {
	return func(o *OrchestratorUseCase) {
		if d > 0 {
			o.window = d
		}
	}
}

func NewOrchestratorUseCase(
	supervisor ISupervisor,
	locator ILeadLocator,
	content IContentCreator,
	outreach IOutreachUseCase,
	leads interfaces.ILeadRepository,
	pacing PacingPolicy,
	metrics interfaces.IOutreachMetrics,
	logger *zap.Logger,
	opts ...OrchestratorOption,
) *OrchestratorUseCase {
	if pacing == nil {
		pacing = NoPacing()
	}
	o := &OrchestratorUseCase{
		supervisor: supervisor,
		locator:    locator,
		content:    content,
		outreach:   outreach,
		leads:      leads,
		pacing:     pacing,
		window:     DefaultRecentContactWindow,
		metrics:    orNopMetrics(metrics),
		log:        orNopLogger(logger).Named("orchestrator"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RunFullWorkflow runs discovery, drafting and dispatch in order.
//
// It never returns an error: failures land in Summary.Errors and a run that
// stops early (not ready, store failure, cancellation) reports Success=false.
func (o *OrchestratorUseCase) RunFullWorkflow(ctx context.Context) WorkflowResult {
	started := time.Now()
	res := WorkflowResult{Summary: WorkflowSummary{Errors: []string{}}}
	defer func() {
		o.metrics.WorkflowFinished(time.Since(started), res.Success)
	}()

	o.log.Info("workflow start")

	preflight := o.supervisor.PreFlightCheck(ctx)
	if !preflight.Ready {
		o.log.Warn("preflight failed", zap.Any("checks", preflight.Checks))
		res.Summary.Errors = append(res.Summary.Errors, msgSystemNotReady)
		return res
	}
	o.log.Info("preflight passed", zap.String("mode", string(preflight.Mode)))

	discovery, err := o.locator.FindAndSaveLeads(ctx)
	res.Step1FindLeads = &discovery
	res.Summary.NewLeadsFound = discovery.NewLeadsCount
	res.Summary.Errors = append(res.Summary.Errors, discovery.Errors...)
	if err != nil {
		return o.abort(res, err)
	}

	drafts, err := o.draftPending(ctx, &res)
	res.Step2GenerateMessages = &drafts
	if err != nil {
		return o.abort(res, err)
	}

	sends, err := o.dispatchReady(ctx, &res)
	res.Step3SendOutreach = &sends
	if err != nil {
		return o.abort(res, err)
	}

	res.Success = true
	o.log.Info("workflow completed",
		zap.Int("found", res.Summary.NewLeadsFound),
		zap.Int("generated", res.Summary.MessagesGenerated),
		zap.Int("sent", res.Summary.MessagesSent),
		zap.Int("errors", len(res.Summary.Errors)))
	return res
}

func (o *OrchestratorUseCase) abort(res WorkflowResult, err error) WorkflowResult {
	o.log.Error("workflow stopped", zap.Error(err))
	res.Success = false
	res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("workflow stopped: %v", err))
	return res
}

func (o *OrchestratorUseCase) draftPending(ctx context.Context, res *WorkflowResult) (DraftReport, error) {
	report := DraftReport{Details: []DraftDetail{}}
	pending, err := o.leads.List(ctx, interfaces.LeadFilter{
		Status:     statusPtr(entities.LeadStatusNotContacted),
		HasMessage: boolPtr(false),
	})
	if err != nil {
		return report, fmt.Errorf("list leads needing messages: %w", err)
	}

	for _, lead := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if v := o.supervisor.ValidateLead(lead); !v.Valid {
			report.Details = append(report.Details, DraftDetail{LeadID: lead.ID, Errors: v.Errors})
			res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("Lead %s: %s", lead.ID, strings.Join(v.Errors, ", ")))
			continue
		}
		msg, err := o.draft(ctx, lead)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			o.log.Error("message generation failed", zap.String("lead_id", lead.ID), zap.Error(err))
			report.Details = append(report.Details, DraftDetail{LeadID: lead.ID, Error: err.Error()})
			res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("Lead %s: %v", lead.ID, err))
			continue
		}
		if msg == "" {
			o.log.Warn("empty message generated", zap.String("lead_id", lead.ID))
			report.Details = append(report.Details, DraftDetail{LeadID: lead.ID, Error: msgEmptyDraft})
			res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("Lead %s: %s", lead.ID, msgEmptyDraft))
			continue
		}
		report.Details = append(report.Details, DraftDetail{LeadID: lead.ID, Success: true})
		res.Summary.MessagesGenerated++
	}
	report.Count = len(report.Details)
	return report, nil
}

// draft generates and stores a message for lead, returning the stored text.
func (o *OrchestratorUseCase) draft(ctx context.Context, lead entities.Lead) (string, error) {
	msg, err := o.content.GenerateMessage(ctx, lead)
	if err != nil {
		return "", err
	}
	msg = TruncateMessage(strings.TrimSpace(msg))
	if msg == "" {
		return "", nil
	}
	if _, err := o.leads.Update(ctx, lead.ID, interfaces.LeadUpdate{OutreachMessage: &msg}); err != nil {
		return "", fmt.Errorf("save message for lead %s: %w", lead.ID, err)
	}
	return msg, nil
}

func (o *OrchestratorUseCase) dispatchReady(ctx context.Context, res *WorkflowResult) (SendReport, error) {
	report := SendReport{Details: []SendDetail{}}
	eligible, err := o.leads.List(ctx, interfaces.LeadFilter{
		Status:     statusPtr(entities.LeadStatusNotContacted),
		HasMessage: boolPtr(true),
	})
	if err != nil {
		return report, fmt.Errorf("list leads ready to send: %w", err)
	}

	queue := o.supervisor.PrioritizeLeads(eligible)
	for i, lead := range queue {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		check := o.supervisor.CanSendMessage(lead)
		if !check.CanSend {
			o.metrics.SendSkipped(skipReasonBlocked)
			report.Details = append(report.Details, SendDetail{LeadID: lead.ID, Name: lead.Name, Blockers: check.Blockers})
			continue
		}

		recent, err := o.supervisor.WasRecentlyContacted(ctx, lead.ID, o.window)
		if err != nil {
			o.log.Error("recency check failed", zap.String("lead_id", lead.ID), zap.Error(err))
			report.Details = append(report.Details, SendDetail{LeadID: lead.ID, Name: lead.Name, Error: err.Error()})
			res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("Lead %s: %v", lead.ID, err))
			continue
		}
		if recent {
			o.metrics.SendSkipped(skipReasonRecent)
			report.Details = append(report.Details, SendDetail{LeadID: lead.ID, Name: lead.Name, Reason: msgRecentlyContact})
			continue
		}

		sent, err := o.outreach.SendMessage(ctx, lead)
		if err != nil {
			report.Details = append(report.Details, SendDetail{LeadID: lead.ID, Name: lead.Name, Error: err.Error()})
			res.Summary.Errors = append(res.Summary.Errors, fmt.Sprintf("Lead %s: %v", lead.ID, err))
		} else {
			report.Details = append(report.Details, SendDetail{LeadID: lead.ID, Name: lead.Name, Sent: sent.Success, Simulated: sent.Simulated})
			if sent.Success {
				res.Summary.MessagesSent++
			}
		}

		if i < len(queue)-1 {
			d := o.pacing()
			o.log.Info("pacing before next message", zap.Duration("delay", d))
			if err := pause(ctx, d); err != nil {
				return report, err
			}
		}
	}
	report.Count = len(report.Details)
	return report, nil
}

func (o *OrchestratorUseCase) GenerateMessageForLead(ctx context.Context, leadID string) (GenerateResult, error) {
	lead, err := o.loadLead(ctx, leadID)
	if err != nil {
		return GenerateResult{}, err
	}
	if v := o.supervisor.ValidateLead(lead); !v.Valid {
		return GenerateResult{}, fmt.Errorf("%w: %s", ErrLeadInvalid, strings.Join(v.Errors, ", "))
	}
	msg, err := o.draft(ctx, lead)
	if err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{Success: true, Message: msg}, nil
}

// SendMessageForLead sends one lead's message through the same gates as a full run.
// Compliance findings are logged, not enforced.
func (o *OrchestratorUseCase) SendMessageForLead(ctx context.Context, leadID string) (SendResult, error) {
	lead, err := o.loadLead(ctx, leadID)
	if err != nil {
		return SendResult{}, err
	}
	if lead.Status.IsTerminal() {
		return SendResult{}, ErrLeadClosed
	}

	check := o.supervisor.CanSendMessage(lead)
	if !check.CanSend {
		return SendResult{}, fmt.Errorf("%w: %s", ErrSendBlocked, strings.Join(check.Blockers, ", "))
	}
	recent, err := o.supervisor.WasRecentlyContacted(ctx, lead.ID, o.window)
	if err != nil {
		return SendResult{}, err
	}
	if recent {
		return SendResult{}, ErrRecentlySent
	}

	if c := o.supervisor.ValidateMessageCompliance(lead.OutreachMessage); !c.Valid {
		o.log.Warn("compliance issues", zap.String("lead_id", lead.ID), zap.Strings("issues", c.Issues))
	}
	return o.outreach.SendMessage(ctx, lead)
}

func (o *OrchestratorUseCase) GetSystemStatus(ctx context.Context) SystemStatus {
	p := o.supervisor.PreFlightCheck(ctx)
	return SystemStatus{Ready: p.Ready, Mode: p.Mode, Checks: p.Checks}
}

func (o *OrchestratorUseCase) loadLead(ctx context.Context, leadID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	lead, err := o.leads.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func statusPtr(s entities.LeadStatus) *entities.LeadStatus { return &s }

func boolPtr(b bool) *bool { return &b }
