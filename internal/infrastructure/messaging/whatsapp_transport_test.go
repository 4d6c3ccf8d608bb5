package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppTransport_Send(t *testing.T) {
	t.Run("posts cloud api payload", func(t *testing.T) {
		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/phone-1/messages", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
		}))
		defer srv.Close()

		tr := NewWhatsAppTransport("tok", "phone-1", nil, WithBaseURL(srv.URL))
		id, err := tr.Send(context.Background(), "0812-3456-7890", "Halo roti halal")
		require.NoError(t, err)
		assert.Equal(t, "wamid.1", id)
		assert.Equal(t, "6281234567890", got.To)
		assert.Equal(t, "whatsapp", got.MessagingProduct)
		assert.Equal(t, "Halo roti halal", got.Text.Body)
	})

	t.Run("api error surfaces message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter","code":100}}`))
		}))
		defer srv.Close()

		tr := NewWhatsAppTransport("tok", "phone-1", nil, WithBaseURL(srv.URL))
		_, err := tr.Send(context.Background(), "081234567890", "x")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "Invalid parameter"))
	})

	t.Run("missing credentials", func(t *testing.T) {
		tr := NewWhatsAppTransport("", "", nil)
		_, err := tr.Send(context.Background(), "081234567890", "x")
		assert.ErrorIs(t, err, ErrWhatsAppNotConfigured)
	})
}

func TestNormalizeMSISDN(t *testing.T) {
	assert.Equal(t, "6281234567890", NormalizeMSISDN("081234567890"))
	assert.Equal(t, "6281234567890", NormalizeMSISDN("+62 812-3456-7890"))
	assert.Equal(t, "", NormalizeMSISDN("n/a"))
}

func TestSimulatedTransport_Send(t *testing.T) {
	tr := NewSimulatedTransport(0, nil)
	id, err := tr.Send(context.Background(), "081234567890", "halo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "sim_"))
	assert.Equal(t, "simulation", string(tr.Mode()))
}
