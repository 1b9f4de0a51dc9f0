// Package jobs provides scheduled background tasks for the procurement workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. DeliveryOrderRetryJob - issues the delivery order for advices left without one
// after a delivery request approval (default every 30 seconds)
// 2. InvoiceOverdueJob - marks sent invoices past their due date as overdue
// (default hourly)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(issueOrdersHandler, markOverdueHandler, jobs.Specs{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Overlapping runs of the same job are skipped
// - Failed job starts will stop any already running jobs
package jobs
