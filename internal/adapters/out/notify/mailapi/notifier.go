// Package mailapi sends notification e-mails through an HTTP mail gateway.
package mailapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var _ ports.Notifier = (*Notifier)(nil)

// Config of the gateway client. Only BaseURL is required.
type Config struct {
	BaseURL string
	APIKey  string
	From    string
	Timeout time.Duration
	Retries int
}

type message struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type apiError struct {
	Message string `json:"message"`
}

type Notifier struct {
	client *resty.Client
	from   string
	logger *zap.Logger
}

func NewNotifier(cfg Config, log *zap.Logger) (*Notifier, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("mail gateway base url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Notifier{
		client: client,
		from:   cfg.From,
		logger: logger.Component(log, "mailapi"),
	}, nil
}

// SendEmail posts one message to /messages. Any non-2xx answer is an error.
func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) error {
	var failure apiError
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(message{From: n.from, To: to, Subject: subject, Text: body}).
		SetError(&failure).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("mail gateway: %w", err)
	}
	if resp.IsError() {
		if failure.Message == "" {
			failure.Message = resp.Status()
		}
		return fmt.Errorf("mail gateway: %d %s", resp.StatusCode(), failure.Message)
	}

	n.logger.Debug("mail accepted",
		zap.String("to", to),
		zap.Int("status_code", resp.StatusCode()),
		zap.Duration("took", resp.Time()))
	return nil
}
