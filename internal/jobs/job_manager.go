package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// Specs holds the cron expressions (with seconds) of the scheduled jobs.
// Empty values fall back to the job defaults.
type Specs struct {
	DeliveryOrderRetry string
	InvoiceOverdue     string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryOrderRetryJob *DeliveryOrderRetryJob
	invoiceOverdueJob     *InvoiceOverdueJob
}

func NewJobManager(
	issuer DeliveryOrderIssuer,
	marker OverdueInvoiceMarker,
	specs Specs,
	log *zap.Logger,
) *JobManager {
	return &JobManager{
		deliveryOrderRetryJob: NewDeliveryOrderRetryJob(issuer, specs.DeliveryOrderRetry, log),
		invoiceOverdueJob:     NewInvoiceOverdueJob(marker, specs.InvoiceOverdue, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryOrderRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery order retry job: %w", err)
	}

	if err := jm.invoiceOverdueJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryOrderRetryJob.Stop()
		return fmt.Errorf("failed to start invoice overdue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceOverdueJob.Stop()
	jm.deliveryOrderRetryJob.Stop()
}
