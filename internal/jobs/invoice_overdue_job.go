package jobs

import (
	"context"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultInvoiceOverdueSpec runs at the top of every hour.
const DefaultInvoiceOverdueSpec = "0 0 * * * *"

type OverdueInvoiceMarker interface {
	Handle(ctx context.Context, cmd commands.MarkOverdueInvoicesCommand) (int, error)
}

// InvoiceOverdueJob moves sent invoices past their due date to overdue.
type InvoiceOverdueJob struct {
	handler OverdueInvoiceMarker
	spec    string
	now     func() time.Time
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewInvoiceOverdueJob(handler OverdueInvoiceMarker, spec string, log *zap.Logger) *InvoiceOverdueJob {
	if spec == "" {
		spec = DefaultInvoiceOverdueSpec
	}
	return &InvoiceOverdueJob{
		handler: handler,
		spec:    spec,
		now:     func() time.Time { return time.Now().UTC() },
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.Component(log, "invoice_overdue_job"),
	}
}

// Run performs one pass. Batches repeat until a pass marks fewer invoices
// than the batch size.
func (j *InvoiceOverdueJob) Run(ctx context.Context) {
	total := 0
	for {
		cmd, err := commands.NewMarkOverdueInvoicesCommand(j.now(), commands.DefaultRetryBatch)
		if err != nil {
			j.logger.Error("invoice overdue command", zap.Error(err))
			return
		}
		marked, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("invoice overdue pass failed", zap.Error(err))
			return
		}
		total += marked
		if marked < cmd.Limit() || ctx.Err() != nil {
			break
		}
	}
	if total > 0 {
		j.logger.Info("invoices marked overdue", zap.Int("count", total))
	}
}

func (j *InvoiceOverdueJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("invoice overdue job started", zap.String("spec", j.spec))
	return nil
}

func (j *InvoiceOverdueJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("invoice overdue job stopped")
}
