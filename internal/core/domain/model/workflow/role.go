package workflow

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Role identifies the party acting on the workflow.
type Role string

const (
	RoleCustomer        Role = "customer"
	RolePurchaseSupport Role = "purchase_support"
	RoleWarehouse       Role = "warehouse"
	RoleSalesSupport    Role = "sales_support"
	RoleSupervisor      Role = "supervisor"
	RoleAccounts        Role = "accounts"
)

// Roles lists every known role in a stable order.
func Roles() []Role {
	return []Role{
		RoleCustomer,
		RolePurchaseSupport,
		RoleWarehouse,
		RoleSalesSupport,
		RoleSupervisor,
		RoleAccounts,
	}
}

// ParseRole converts the wire representation of a role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	for _, known := range Roles() {
		if r == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
}

func (r Role) String() string {
	return string(r)
}
