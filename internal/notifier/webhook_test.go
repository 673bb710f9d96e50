package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_SendOTP(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, 5*time.Second)
	err := n.SendOTP(context.Background(), "user@example.com", "482913")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", gotBody["email"])
	assert.Equal(t, "482913", gotBody["otp"])
}

func TestWebhookNotifier_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, 5*time.Second)
	err := n.SendOTP(context.Background(), "user@example.com", "482913")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhookNotifier_EmptyURLIsNoOp(t *testing.T) {
	// Local/demo operation: no delivery backend configured.
	n := NewWebhookNotifier("", 5*time.Second)
	assert.NoError(t, n.SendOTP(context.Background(), "user@example.com", "482913"))
}
