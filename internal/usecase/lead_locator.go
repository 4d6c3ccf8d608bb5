package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DiscoveredLead struct {
	ID   string `json:"id"`
	Name string `json:"nama_sppg"`
	City string `json:"kab_kota"`
}

type DiscoveryResult struct {
	Success       bool             `json:"success"`
	NewLeadsCount int              `json:"newLeadsCount"`
	SkippedCount  int              `json:"skippedCount"`
	Leads         []DiscoveredLead `json:"leads"`
	Errors        []string         `json:"errors,omitempty"`
}

// ILeadLocator turns lead source output into stored NotContacted leads.
type ILeadLocator interface {
	FindAndSaveLeads(ctx context.Context) (DiscoveryResult, error)
	ImportLeads(ctx context.Context, source interfaces.ILeadSource) (DiscoveryResult, error)
}

type LeadLocator struct {
	sources    []interfaces.ILeadSource
	leads      interfaces.ILeadRepository
	supervisor ISupervisor
	metrics    interfaces.IOutreachMetrics
	log        *zap.Logger
	now        func() time.Time
}

var _ ILeadLocator = (*LeadLocator)(nil)

func NewLeadLocator(
	sources []interfaces.ILeadSource,
	leads interfaces.ILeadRepository,
	supervisor ISupervisor,
	metrics interfaces.IOutreachMetrics,
	logger *zap.Logger,
) *LeadLocator {
	return &LeadLocator{
		sources:    sources,
		leads:      leads,
		supervisor: supervisor,
		metrics:    orNopMetrics(metrics),
		log:        orNopLogger(logger).Named("locator"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// FindAndSaveLeads pulls every configured source and stores the new leads.
// A failing source marks the result unsuccessful but the others still run.
// Only context cancellation is returned as an error.
func (l *LeadLocator) FindAndSaveLeads(ctx context.Context) (DiscoveryResult, error) {
	res := DiscoveryResult{Success: true, Leads: []DiscoveredLead{}}
	for _, src := range l.sources {
		if err := l.ingest(ctx, src, &res); err != nil {
			return res, err
		}
	}
	l.log.Info("discovery finished", zap.Int("new", res.NewLeadsCount), zap.Int("skipped", res.SkippedCount))
	return res, nil
}

// ImportLeads stores the leads of a single source, e.g. a CSV export.
func (l *LeadLocator) ImportLeads(ctx context.Context, source interfaces.ILeadSource) (DiscoveryResult, error) {
	res := DiscoveryResult{Success: true, Leads: []DiscoveredLead{}}
	if err := l.ingest(ctx, source, &res); err != nil {
		return res, err
	}
	l.log.Info("import finished", zap.String("source", source.Name()), zap.Int("new", res.NewLeadsCount), zap.Int("skipped", res.SkippedCount))
	return res, nil
}

func (l *LeadLocator) ingest(ctx context.Context, src interfaces.ILeadSource, res *DiscoveryResult) error {
	raws, err := src.Discover(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		l.log.Error("lead source failed", zap.String("source", src.Name()), zap.Error(err))
		res.Success = false
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", src.Name(), err))
		return nil
	}
	l.log.Info("lead source returned", zap.String("source", src.Name()), zap.Int("count", len(raws)))

	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return err
		}
		saved, ok, err := l.save(ctx, raw)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", raw.Name, err))
			continue
		}
		if !ok {
			res.SkippedCount++
			continue
		}
		res.NewLeadsCount++
		res.Leads = append(res.Leads, DiscoveredLead{ID: saved.ID, Name: saved.Name, City: saved.City})
	}
	l.metrics.LeadsDiscovered(res.NewLeadsCount)
	return nil
}

// save stores raw unless it is a duplicate or invalid; ok reports whether it was stored.
func (l *LeadLocator) save(ctx context.Context, raw entities.RawLead) (entities.Lead, bool, error) {
	dup, err := l.supervisor.IsDuplicateLead(ctx, raw.Name, raw.City)
	if err != nil {
		return entities.Lead{}, false, err
	}
	if dup {
		l.log.Debug("skipping duplicate", zap.String("lead", raw.Name), zap.String("city", raw.City))
		return entities.Lead{}, false, nil
	}

	lead := raw.ToLead(uuid.NewString(), l.now())
	if v := l.supervisor.ValidateLead(lead); !v.Valid {
		l.log.Info("invalid lead data", zap.String("lead", raw.Name), zap.Strings("errors", v.Errors))
		return entities.Lead{}, false, nil
	}

	saved, err := l.leads.Create(ctx, lead)
	if errors.Is(err, interfaces.ErrDuplicateLead) {
		return entities.Lead{}, false, nil
	}
	if err != nil {
		return entities.Lead{}, false, err
	}
	return saved, true, nil
}
