package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

// LeadRepository keeps leads in process memory. Used by tests and dry runs.
type LeadRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Lead
	byKey map[string]string
}

var _ interfaces.ILeadRepository = (*LeadRepository)(nil)

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		byID:  make(map[string]entities.Lead),
		byKey: make(map[string]string),
	}
}

func (r *LeadRepository) Create(_ context.Context, lead entities.Lead) (entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := lead.DedupKey()
	if _, ok := r.byKey[key]; ok {
		return entities.Lead{}, interfaces.ErrDuplicateLead
	}
	if _, ok := r.byID[lead.ID]; ok {
		return entities.Lead{}, interfaces.ErrDuplicateLead
	}
	r.byID[lead.ID] = lead
	r.byKey[key] = lead.ID
	return lead, nil
}

func (r *LeadRepository) GetByID(_ context.Context, id string) (entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *LeadRepository) FindByNameCity(_ context.Context, name, city string) (entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[entities.DedupKey(name, city)]
	if !ok {
		return entities.Lead{}, nil
	}
	return r.byID[id], nil
}

func (r *LeadRepository) List(_ context.Context, filter interfaces.LeadFilter) ([]entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Lead, 0, len(r.byID))
	for _, l := range r.byID {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *LeadRepository) Update(_ context.Context, id string, upd interfaces.LeadUpdate) (entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[id]
	if !ok {
		return entities.Lead{}, nil
	}
	upd.Apply(&l, time.Now().UTC())
	r.byID[id] = l
	return l, nil
}

func (r *LeadRepository) FindByPhoneSuffix(_ context.Context, suffix string) (entities.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]entities.Lead, 0, 1)
	for _, l := range r.byID {
		if l.PhoneSuffixMatches(suffix) {
			matches = append(matches, l)
		}
	}
	if len(matches) == 0 {
		return entities.Lead{}, nil
	}
	sortNewestFirst(matches)
	return matches[0], nil
}

func (r *LeadRepository) CountByStatus(_ context.Context) (map[entities.LeadStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[entities.LeadStatus]int)
	for _, l := range r.byID {
		out[l.Status]++
	}
	return out, nil
}

func (r *LeadRepository) CountSentSince(_ context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, l := range r.byID {
		if l.SentAt != nil && !l.SentAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *LeadRepository) Ping(context.Context) error { return nil }

func sortNewestFirst(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		if leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].ID < leads[j].ID
		}
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}
