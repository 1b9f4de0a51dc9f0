package workflow

import (
	"fmt"
	"slices"

	"procurement/internal/pkg/errs"
)

// Gate maps each role to the steps it may take. The table is fixed at
// construction; a step missing from every role's set is denied to everyone.
type Gate struct {
	allowed map[Role]map[Step]struct{}
}

var defaultGate = NewGate()

// NewGate builds the role authorization table.
func NewGate() Gate {
	table := map[Role][]Step{
		RoleCustomer: {
			StepQuoteCreated, StepCustomerAgreed, StepCustomerDeclined, StepCargoDispatchSubmitted,
			StepDeliveryRequested, StepInvoiceRequested, StepPaymentSubmitted,
		},
		RolePurchaseSupport: {
			StepPurchaseAccepted, StepRFQSent, StepPurchaseRejected, StepRateSelected, StepRatesConfirmed,
		},
		RoleWarehouse: {
			StepRFQAcknowledged, StepRateSubmitted, StepWarehouseRejected, StepInvoiceReviewed,
			StepCargoProcessed, StepCartingSubmitted, StepDeliveryOrderExecuted, StepDeliveryReportSubmitted,
		},
		RoleSalesSupport: {
			StepPriceQuoted, StepSalesRejected, StepPriceRevised, StepForwardedToSupervisor,
		},
		RoleSupervisor: {
			StepBookingConfirmed, StepSupervisorRejected, StepDirectBookingConfirmed, StepBookingCancelled,
			StepCargoDispatchApproved, StepCargoDispatchRejected, StepCartingConfirmed, StepCartingRejected,
			StepDeliveryReviewed,
		},
		RoleAccounts: {
			StepInvoiceReviewed,
		},
	}

	allowed := make(map[Role]map[Step]struct{}, len(table))
	for role, steps := range table {
		set := make(map[Step]struct{}, len(steps))
		for _, step := range steps {
			set[step] = struct{}{}
		}
		allowed[role] = set
	}
	return Gate{allowed: allowed}
}

// IsAllowed reports whether role may take step.
func (g Gate) IsAllowed(role Role, step Step) bool {
	_, ok := g.allowed[role][step]
	return ok
}

// Authorize returns a PermissionDeniedError unless the actor's role may take step.
func (g Gate) Authorize(actor Actor, step Step) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !g.IsAllowed(actor.Role(), step) {
		return NewStepDeniedError(actor.Role(), step)
	}
	return nil
}

// StepsFor returns the steps a role may take, ordered by step number.
func (g Gate) StepsFor(role Role) []Step {
	steps := make([]Step, 0, len(g.allowed[role]))
	for step := range g.allowed[role] {
		steps = append(steps, step)
	}
	slices.SortFunc(steps, func(a, b Step) int { return a.Number() - b.Number() })
	return steps
}

// RolesFor returns the roles allowed to take step.
func (g Gate) RolesFor(step Step) []Role {
	var roles []Role
	for _, role := range Roles() {
		if g.IsAllowed(role, step) {
			roles = append(roles, role)
		}
	}
	return roles
}

// Authorize checks actor against the default gate.
func Authorize(actor Actor, step Step) error {
	return defaultGate.Authorize(actor, step)
}

// IsAllowed checks the default gate.
func IsAllowed(role Role, step Step) bool {
	return defaultGate.IsAllowed(role, step)
}

// RolesFor queries the default gate.
func RolesFor(step Step) []Role {
	return defaultGate.RolesFor(step)
}

func stepAction(step Step) string {
	return fmt.Sprintf("take step %s", step)
}

// AuthorizeOnboarding allows purchase support and supervisors to register
// candidate warehouses. Onboarding is not a workflow step.
func AuthorizeOnboarding(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != RolePurchaseSupport && actor.Role() != RoleSupervisor {
		return errs.NewPermissionDeniedError(string(actor.Role()), "register warehouses")
	}
	return nil
}
