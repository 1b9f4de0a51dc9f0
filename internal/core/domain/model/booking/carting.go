package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrCartingIsNotConstructed = errors.New("Carting must be created via NewCarting constructor")

// Carting records the vehicle and staging area used to move a cargo dispatch.
type Carting struct {
	id              kernel.UUID
	bookingID       kernel.UUID
	cargoDispatchID kernel.UUID
	vehicleNumber   string
	stagingArea     string
	status          CartingStatus
	createdAt       time.Time
	isConstructed   bool
}

// NewCarting submits carting details for an approved cargo dispatch.
func NewCarting(id kernel.UUID, cargo *CargoDispatch, vehicleNumber, stagingArea string, now time.Time) (*Carting, error) {
	if err := errors.Join(id.Validate(), cargo.Validate()); err != nil {
		return nil, err
	}
	if !cargo.IsCartable() {
		return nil, errs.NewConflictErrorWithCause(
			"carting", "cargo dispatch is not approved", fmt.Errorf("cargo status is %s", cargo.Status()))
	}
	if strings.TrimSpace(vehicleNumber) == "" {
		return nil, errs.NewValueIsRequiredError("vehicleNumber")
	}

	return &Carting{
		id:              id,
		bookingID:       cargo.BookingID(),
		cargoDispatchID: cargo.ID(),
		vehicleNumber:   strings.ToUpper(strings.TrimSpace(vehicleNumber)),
		stagingArea:     strings.TrimSpace(stagingArea),
		status:          CartingSubmitted,
		createdAt:       now.UTC(),
		isConstructed:   true,
	}, nil
}

func RestoreCarting(
	id, bookingID, cargoDispatchID kernel.UUID,
	vehicleNumber, stagingArea string,
	status CartingStatus,
	createdAt time.Time,
) (*Carting, error) {
	if err := errors.Join(id.Validate(), bookingID.Validate(), cargoDispatchID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Carting{
		id:              id,
		bookingID:       bookingID,
		cargoDispatchID: cargoDispatchID,
		vehicleNumber:   vehicleNumber,
		stagingArea:     stagingArea,
		status:          status,
		createdAt:       createdAt.UTC(),
		isConstructed:   true,
	}, nil
}

func (c *Carting) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartingIsNotConstructed
	}
	return nil
}

func (c *Carting) ID() kernel.UUID {
	return c.id
}

func (c *Carting) BookingID() kernel.UUID {
	return c.bookingID
}

func (c *Carting) CargoDispatchID() kernel.UUID {
	return c.cargoDispatchID
}

func (c *Carting) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *Carting) StagingArea() string {
	return c.stagingArea
}

func (c *Carting) Status() CartingStatus {
	return c.status
}

func (c *Carting) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Carting) Confirm() error {
	if c.status != CartingSubmitted {
		return illegalMove("carting", c.status, "confirm")
	}
	c.status = CartingConfirmed
	return nil
}

func (c *Carting) Reject() error {
	if c.status != CartingSubmitted {
		return illegalMove("carting", c.status, "reject")
	}
	c.status = CartingRejected
	return nil
}
