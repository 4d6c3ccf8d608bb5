// Package metrics exposes pipeline counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
)

// Outreach holds the outreach_* collectors.
//
//   - outreach_leads_discovered_total
//   - outreach_messages_drafted_total{mode}
//   - outreach_messages_sent_total{mode,result}
//   - outreach_replies_total{classification}
//   - outreach_sends_skipped_total{reason}
//   - outreach_workflow_duration_seconds{success}
type Outreach struct {
	LeadsDiscoveredTotal prometheus.Counter
	MessagesDraftedTotal *prometheus.CounterVec
	MessagesSentTotal    *prometheus.CounterVec
	RepliesTotal         *prometheus.CounterVec
	SendsSkippedTotal    *prometheus.CounterVec
	WorkflowDuration     *prometheus.HistogramVec
}

var _ interfaces.IOutreachMetrics = (*Outreach)(nil)

// NewOutreach registers the collectors on reg. Registering twice on the same
// registry panics, so the API and CLI build exactly one.
func NewOutreach(reg prometheus.Registerer) *Outreach {
	f := promauto.With(reg)
	return &Outreach{
		LeadsDiscoveredTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "outreach_leads_discovered_total",
			Help: "Total number of new leads stored by discovery",
		}),
		MessagesDraftedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_messages_drafted_total",
			Help: "Total number of outreach messages drafted",
		}, []string{"mode"}),
		MessagesSentTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_messages_sent_total",
			Help: "Total number of dispatch attempts",
		}, []string{"mode", "result"}),
		RepliesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_replies_total",
			Help: "Total number of classified replies",
		}, []string{"classification"}),
		SendsSkippedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "outreach_sends_skipped_total",
			Help: "Total number of leads skipped by the dispatch gate",
		}, []string{"reason"}),
		WorkflowDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "outreach_workflow_duration_seconds",
			Help:    "Duration of full workflow runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}, []string{"success"}),
	}
}

func (m *Outreach) LeadsDiscovered(n int) {
	if n > 0 {
		m.LeadsDiscoveredTotal.Add(float64(n))
	}
}

func (m *Outreach) MessageDrafted(mode entities.DraftingMode) {
	m.MessagesDraftedTotal.WithLabelValues(string(mode)).Inc()
}

func (m *Outreach) MessageSent(mode entities.ChannelMode, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.MessagesSentTotal.WithLabelValues(string(mode), result).Inc()
}

func (m *Outreach) ReplyClassified(c entities.ReplyClassification) {
	m.RepliesTotal.WithLabelValues(string(c)).Inc()
}

func (m *Outreach) SendSkipped(reason string) {
	m.SendsSkippedTotal.WithLabelValues(reason).Inc()
}

func (m *Outreach) WorkflowFinished(d time.Duration, success bool) {
	m.WorkflowDuration.WithLabelValues(strconv.FormatBool(success)).Observe(d.Seconds())
}
