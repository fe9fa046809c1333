package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Notifier pushes short event messages to the studio's notification channel.
// Implementations must never fail the calling use case: delivery problems
// are logged and swallowed.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// NoopNotifier discards all messages.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, string) {}

// TelegramNotifier delivers messages through the Telegram Bot API.
type TelegramNotifier struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
	logger  *slog.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
// An empty token or chat ID yields a notifier that only logs locally.
func NewTelegramNotifier(token, chatID string, logger *slog.Logger) *TelegramNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &TelegramNotifier{
		baseURL: "https://api.telegram.org",
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// WithBaseURL overrides the API host, for tests.
func (n *TelegramNotifier) WithBaseURL(url string) *TelegramNotifier {
	n.baseURL = url
	return n
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) {
	if n.token == "" || n.chatID == "" {
		n.logger.Debug("telegram not configured, skipping notification", "text", text)
		return
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		n.logger.Error("encoding telegram payload", "error", err)
		return
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("building telegram request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("telegram delivery failed", "error", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		n.logger.Warn("telegram rejected message", "status", resp.StatusCode)
	}
}
