package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_SendsMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("tok123", "chat456", slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithBaseURL(srv.URL)
	n.Notify(context.Background(), "New lead: *Marta Bianchi*")

	assert.Equal(t, "/bottok123/sendMessage", gotPath)
	assert.Equal(t, "chat456", gotBody.ChatID)
	assert.Equal(t, "New lead: *Marta Bianchi*", gotBody.Text)
	assert.Equal(t, "Markdown", gotBody.ParseMode)
}

func TestTelegramNotifier_Unconfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewTelegramNotifier("", "", slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithBaseURL(srv.URL)
	n.Notify(context.Background(), "ignored")

	assert.False(t, called, "unconfigured notifier must not hit the API")
}

func TestTelegramNotifier_ServerErrorDoesNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewTelegramNotifier("tok", "chat", slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithBaseURL(srv.URL)
	n.Notify(context.Background(), "still fine")
}
