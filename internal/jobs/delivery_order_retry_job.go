package jobs

import (
	"context"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDeliveryOrderRetrySpec runs the retry every thirty seconds.
const DefaultDeliveryOrderRetrySpec = "*/30 * * * * *"

type DeliveryOrderIssuer interface {
	Handle(ctx context.Context, cmd commands.IssuePendingDeliveryOrdersCommand) (int, error)
}

// DeliveryOrderRetryJob issues delivery orders for advices whose order was not
// created in the approval transaction.
type DeliveryOrderRetryJob struct {
	handler DeliveryOrderIssuer
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewDeliveryOrderRetryJob(handler DeliveryOrderIssuer, spec string, log *zap.Logger) *DeliveryOrderRetryJob {
	if spec == "" {
		spec = DefaultDeliveryOrderRetrySpec
	}
	return &DeliveryOrderRetryJob{
		handler: handler,
		spec:    spec,
		timeout: 25 * time.Second,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.Component(log, "delivery_order_retry_job"),
	}
}

// Run performs one retry pass.
func (j *DeliveryOrderRetryJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	cmd, err := commands.NewIssuePendingDeliveryOrdersCommand(commands.DefaultRetryBatch)
	if err != nil {
		j.logger.Error("delivery order retry command", zap.Error(err))
		return
	}
	issued, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("delivery order retry failed", zap.Error(err))
		return
	}
	if issued > 0 {
		j.logger.Info("delivery orders issued", zap.Int("count", issued))
	}
}

func (j *DeliveryOrderRetryJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("delivery order retry job started", zap.String("spec", j.spec))
	return nil
}

// Stop waits for a running pass to finish.
func (j *DeliveryOrderRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("delivery order retry job stopped")
}
