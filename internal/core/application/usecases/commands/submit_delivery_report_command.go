package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/guard"
)

var ErrSubmitDeliveryReportCommandIsNotConstructed = errors.New(
	"SubmitDeliveryReportCommand must be created via NewSubmitDeliveryReportCommand constructor",
)

// SubmitDeliveryReportCommand confirms receipt of the goods at the destination.
type SubmitDeliveryReportCommand struct {
	actor       workflow.Actor
	orderID     kernel.UUID
	reportID    kernel.UUID
	receivedBy  string
	remarks     string
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

func NewSubmitDeliveryReportCommand(
	actor workflow.Actor,
	orderID kernel.UUID,
	receivedBy, remarks string,
	deliveredAt *time.Time,
) (SubmitDeliveryReportCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return SubmitDeliveryReportCommand{}, err
	}
	return SubmitDeliveryReportCommand{
		actor:       actor,
		orderID:     orderID,
		reportID:    kernel.NewUUID(),
		receivedBy:  receivedBy,
		remarks:     remarks,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitDeliveryReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryReportCommandIsNotConstructed)
}

func (c SubmitDeliveryReportCommand) Actor() workflow.Actor { return c.actor }
func (c SubmitDeliveryReportCommand) OrderID() kernel.UUID { return c.orderID }
func (c SubmitDeliveryReportCommand) ReportID() kernel.UUID { return c.reportID }
func (c SubmitDeliveryReportCommand) ReceivedBy() string { return c.receivedBy }
func (c SubmitDeliveryReportCommand) Remarks() string { return c.remarks }
func (c SubmitDeliveryReportCommand) DeliveredAt() *time.Time { return c.deliveredAt }
