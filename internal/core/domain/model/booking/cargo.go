package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrCargoDispatchIsNotConstructed = errors.New("CargoDispatch must be created via NewCargoDispatch constructor")

// CargoDispatch describes the goods a customer sends to the warehouse under a booking.
type CargoDispatch struct {
	id            kernel.UUID
	bookingID     kernel.UUID
	description   string
	packages      int
	weightKg      float64
	status        CargoStatus
	createdAt     time.Time
	isConstructed bool
}

// NewCargoDispatch submits a cargo dispatch for an open booking.
func NewCargoDispatch(
	id kernel.UUID,
	b *Booking,
	description string,
	packages int,
	weightKg float64,
	now time.Time,
) (*CargoDispatch, error) {
	if err := errors.Join(id.Validate(), b.Validate()); err != nil {
		return nil, err
	}
	if !b.IsOpenForCargo() {
		return nil, errs.NewConflictErrorWithCause(
			"cargo dispatch", "booking is not open for cargo", fmt.Errorf("booking status is %s", b.Status()))
	}

	var problems []error
	if strings.TrimSpace(description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if packages <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"packages", fmt.Errorf("%d is not greater than 0", packages)))
	}
	if weightKg < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%g is negative", weightKg)))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &CargoDispatch{
		id:            id,
		bookingID:     b.ID(),
		description:   strings.TrimSpace(description),
		packages:      packages,
		weightKg:      weightKg,
		status:        CargoSubmitted,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreCargoDispatch(
	id, bookingID kernel.UUID,
	description string,
	packages int,
	weightKg float64,
	status CargoStatus,
	createdAt time.Time,
) (*CargoDispatch, error) {
	if err := errors.Join(id.Validate(), bookingID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &CargoDispatch{
		id:            id,
		bookingID:     bookingID,
		description:   description,
		packages:      packages,
		weightKg:      weightKg,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (c *CargoDispatch) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoDispatchIsNotConstructed
	}
	return nil
}

func (c *CargoDispatch) ID() kernel.UUID { return c.id }
func (c *CargoDispatch) BookingID() kernel.UUID { return c.bookingID }
func (c *CargoDispatch) Description() string { return c.description }
func (c *CargoDispatch) Packages() int { return c.packages }
func (c *CargoDispatch) WeightKg() float64 { return c.weightKg }
func (c *CargoDispatch) Status() CargoStatus { return c.status }
func (c *CargoDispatch) CreatedAt() time.Time { return c.createdAt }

// IsCartable reports whether carting may be arranged for the cargo.
func (c *CargoDispatch) IsCartable() bool {
	return c.status == CargoApproved || c.status == CargoProcessing || c.status == CargoCompleted
}

func (c *CargoDispatch) Approve() error {
	if c.status != CargoSubmitted {
		return illegalMove("cargo dispatch", c.status, "approve")
	}
	c.status = CargoApproved
	return nil
}

func (c *CargoDispatch) Reject() error {
	if c.status != CargoSubmitted {
		return illegalMove("cargo dispatch", c.status, "reject")
	}
	c.status = CargoRejected
	return nil
}

// StartProcessing is taken by the warehouse once the goods arrive.
func (c *CargoDispatch) StartProcessing() error {
	if c.status != CargoApproved {
		return illegalMove("cargo dispatch", c.status, "process")
	}
	c.status = CargoProcessing
	return nil
}

func (c *CargoDispatch) Complete() error {
	if c.status != CargoProcessing {
		return illegalMove("cargo dispatch", c.status, "complete")
	}
	c.status = CargoCompleted
	return nil
}
