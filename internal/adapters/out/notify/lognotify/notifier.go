// Package lognotify writes notifications to the log instead of sending them.
// It is the default when no mail transport is configured.
package lognotify

import (
	"context"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
)

var _ ports.Notifier = (*Notifier)(nil)

type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(log *zap.Logger) *Notifier {
	return &Notifier{logger: logger.Component(log, "lognotify")}
}

func (n *Notifier) SendEmail(_ context.Context, to, subject, body string) error {
	n.logger.Info("email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
