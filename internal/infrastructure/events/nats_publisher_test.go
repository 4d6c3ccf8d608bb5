package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbg_outreach/internal/domain/entities"
)

func startTestNATSServer(t *testing.T) *natsserver.Server {
	opts := &natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	}

	server, err := natsserver.NewServer(opts)
	require.NoError(t, err)

	go server.Start()

	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})

	return server
}

func TestNATSPublisher_PublishStatusChanged(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	sub, err := nc.SubscribeSync(DefaultSubject)
	require.NoError(t, err)

	pub := NewNATSPublisher(nc, "", nil)
	at := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	err = pub.PublishStatusChanged(context.Background(), entities.LeadStatusChanged{
		LeadID: "lead-1",
		From:   entities.LeadStatusNotContacted,
		To:     entities.LeadStatusSent,
		At:     at,
	})
	require.NoError(t, err)

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var got statusChangedPayload
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, "lead-1", got.LeadID)
	assert.Equal(t, string(entities.LeadStatusNotContacted), got.From)
	assert.Equal(t, string(entities.LeadStatusSent), got.To)
	assert.Equal(t, "2025-01-06T09:00:00Z", got.At)
}

func TestNATSPublisher_CancelledContext(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = NewNATSPublisher(nc, "custom.subject", nil).PublishStatusChanged(ctx, entities.LeadStatusChanged{LeadID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
