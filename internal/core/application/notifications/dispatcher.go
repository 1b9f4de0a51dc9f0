// Package notifications tells the next responsible party that a workflow step
// was taken. Delivery is fire and forget: failures are logged and dropped.
package notifications

import (
	"context"
	"fmt"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
)

// Notice describes a step that was just committed.
type Notice struct {
	QuoteID        kernel.UUID
	Step           workflow.Step
	Action         workflow.Action
	CustomerEmail  string
	WarehouseEmail string
	Detail         string
}

// Mailboxes maps internal roles to the shared address that receives their notifications.
type Mailboxes map[workflow.Role]string

// Dispatcher resolves the recipient of a notice and hands it to the notifier.
type Dispatcher struct {
	notifier  ports.Notifier
	mailboxes Mailboxes
	logger    *zap.Logger
}

func NewDispatcher(notifier ports.Notifier, mailboxes Mailboxes, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		notifier:  notifier,
		mailboxes: mailboxes,
		logger:    logger.Component(log, "notifications"),
	}
}

// Announce sends the notice to the role that acts next. It never fails.
func (d *Dispatcher) Announce(ctx context.Context, n Notice) {
	role, ok := NextRole(n.Step)
	if !ok {
		return
	}

	to := d.recipient(role, n)
	if to == "" {
		d.logger.Debug("no recipient for notice",
			zap.String("quote_id", n.QuoteID.String()),
			zap.String("step", n.Step.String()),
			zap.String("role", role.String()))
		return
	}

	subject, body := render(n)
	if err := d.notifier.SendEmail(ctx, to, subject, body); err != nil {
		d.logger.Warn("notification dropped",
			zap.String("quote_id", n.QuoteID.String()),
			zap.String("step", n.Step.String()),
			zap.String("to", to),
			zap.Error(err))
		return
	}
	d.logger.Debug("notification sent",
		zap.String("quote_id", n.QuoteID.String()),
		zap.String("step", n.Step.String()),
		zap.String("to", to))
}

func (d *Dispatcher) recipient(role workflow.Role, n Notice) string {
	switch role {
	case workflow.RoleCustomer:
		return n.CustomerEmail
	case workflow.RoleWarehouse:
		if n.WarehouseEmail != "" {
			return n.WarehouseEmail
		}
	}
	return d.mailboxes[role]
}

func render(n Notice) (string, string) {
	title := describe(n.Step, n.Action)
	subject := fmt.Sprintf("Quote %s: %s", n.QuoteID.String(), title)

	var b strings.Builder
	fmt.Fprintf(&b, "Quote %s reached step %s (%s).\n", n.QuoteID.String(), n.Step.String(), title)
	if n.Detail != "" {
		fmt.Fprintf(&b, "\n%s\n", n.Detail)
	}
	return subject, b.String()
}
