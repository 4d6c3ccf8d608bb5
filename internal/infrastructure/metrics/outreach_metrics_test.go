package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbg_outreach/internal/domain/entities"
)

func TestOutreach(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOutreach(reg)

	m.LeadsDiscovered(3)
	m.LeadsDiscovered(0)
	m.MessageDrafted(entities.DraftingModeTemplate)
	m.MessageSent(entities.ChannelModeSimulation, true)
	m.MessageSent(entities.ChannelModeSimulation, false)
	m.MessageSent(entities.ChannelModeSimulation, true)
	m.ReplyClassified(entities.ReplyInterested)
	m.SendSkipped("recently_contacted")
	m.WorkflowFinished(2*time.Second, true)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.LeadsDiscoveredTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesDraftedTotal.WithLabelValues("template")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MessagesSentTotal.WithLabelValues("simulation", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesSentTotal.WithLabelValues("simulation", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepliesTotal.WithLabelValues("interested")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SendsSkippedTotal.WithLabelValues("recently_contacted")))

	n, err := testutil.GatherAndCount(reg, "outreach_workflow_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
