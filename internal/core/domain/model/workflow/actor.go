package workflow

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated user performing an operation. Warehouse users
// carry the id of the warehouse they operate.
type Actor struct {
	id          kernel.UUID
	role        Role
	email       string
	warehouseID *kernel.UUID
	guard       guard.ConstructorGuard
}

// NewActor validates the identity. A warehouse actor must be mapped to a warehouse.
func NewActor(id kernel.UUID, role Role, email string, warehouseID *kernel.UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	if role == RoleWarehouse && warehouseID == nil {
		return Actor{}, errs.NewValueIsRequiredError("warehouseId")
	}
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return Actor{}, err
		}
		wid := *warehouseID
		warehouseID = &wid
	}
	return Actor{
		id:          id,
		role:        role,
		email:       email,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) Email() string {
	return a.email
}

func (a Actor) WarehouseID() *kernel.UUID {
	if a.warehouseID == nil {
		return nil
	}
	wid := *a.warehouseID
	return &wid
}

// OperatesWarehouse reports whether the actor is the warehouse user mapped to warehouseID.
func (a Actor) OperatesWarehouse(warehouseID kernel.UUID) bool {
	return a.role == RoleWarehouse && a.warehouseID != nil && a.warehouseID.IsEqual(warehouseID)
}

// AuthorizeWarehouse requires the actor to operate warehouseID.
func (a Actor) AuthorizeWarehouse(warehouseID kernel.UUID) error {
	if !a.OperatesWarehouse(warehouseID) {
		return NewWarehouseScopeError(a.role)
	}
	return nil
}

// SystemActor acts for background jobs that complete supervisor steps, such
// as issuing a delivery order left behind by a failed approval.
func SystemActor() Actor {
	return Actor{
		id:    systemID(),
		role:  RoleSupervisor,
		email: "system",
		guard: guard.NewConstructorGuard(),
	}
}

func systemID() kernel.UUID {
	id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")
	return id
}

// IsSystem reports whether the actor is SystemActor.
func (a Actor) IsSystem() bool {
	return a.id.IsEqual(systemID())
}

// AuthorizeOwner requires a customer actor to own the record.
func (a Actor) AuthorizeOwner(customerID kernel.UUID) error {
	if a.role == RoleCustomer && !a.id.IsEqual(customerID) {
		return NewOwnershipError(a.role)
	}
	return nil
}
