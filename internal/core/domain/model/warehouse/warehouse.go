// Package warehouse models the candidate storage providers RFQs are sent to.
package warehouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a storage provider. OperatorID maps the warehouse role user
// allowed to answer RFQs and act on the warehouse's bookings.
type Warehouse struct {
	id            kernel.UUID
	name          string
	location      string
	capacity      int
	contactEmail  string
	operatorID    kernel.UUID
	createdAt     time.Time
	isConstructed bool
}

func NewWarehouse(
	id kernel.UUID,
	name, location string,
	capacity int,
	contactEmail string,
	operatorID kernel.UUID,
	now time.Time,
) (*Warehouse, error) {
	w := &Warehouse{createdAt: now.UTC(), isConstructed: true}
	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setLocation(location),
		w.setCapacity(capacity),
		w.setContactEmail(contactEmail),
		w.setOperator(operatorID),
	); err != nil {
		return nil, err
	}
	return w, nil
}

// RestoreWarehouse rebuilds a warehouse from storage.
func RestoreWarehouse(
	id kernel.UUID,
	name, location string,
	capacity int,
	contactEmail string,
	operatorID kernel.UUID,
	createdAt time.Time,
) (*Warehouse, error) {
	return NewWarehouse(id, name, location, capacity, contactEmail, operatorID, createdAt)
}

func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) Location() string {
	return w.location
}

func (w *Warehouse) Capacity() int {
	return w.capacity
}

func (w *Warehouse) ContactEmail() string {
	return w.contactEmail
}

func (w *Warehouse) OperatorID() kernel.UUID {
	return w.operatorID
}

func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = strings.TrimSpace(name)
	return nil
}

func (w *Warehouse) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}
	w.location = strings.TrimSpace(location)
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	w.capacity = capacity
	return nil
}

func (w *Warehouse) setContactEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("contactEmail", fmt.Errorf("%q is not an email address", email))
	}
	w.contactEmail = email
	return nil
}

func (w *Warehouse) setOperator(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	w.operatorID = operatorID
	return nil
}
