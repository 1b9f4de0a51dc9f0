package workflow_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steps(codes ...string) []workflow.Step {
	out := make([]workflow.Step, 0, len(codes))
	for _, c := range codes {
		out = append(out, workflow.Step(c))
	}
	return out
}

func TestGate_StepsFor(t *testing.T) {
	gate := workflow.NewGate()

	tests := []struct {
		role workflow.Role
		want []workflow.Step
	}{
		{workflow.RoleCustomer, steps("C1", "C13", "C14", "C21", "C28", "C31", "C33")},
		{workflow.RolePurchaseSupport, steps("C2", "C3", "C4", "C9", "C10")},
		{workflow.RoleWarehouse, steps("C5", "C6", "C7", "C8", "C24", "C25", "C29", "C30")},
		{workflow.RoleSalesSupport, steps("C11", "C12", "C15", "C16")},
		{workflow.RoleSupervisor, steps("C17", "C18", "C19", "C20", "C22", "C23", "C26", "C27", "C32")},
		{workflow.RoleAccounts, steps("C8")},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, gate.StepsFor(tt.role))
		})
	}
}

func TestGate_EveryStepHasAnOwner(t *testing.T) {
	gate := workflow.NewGate()

	for _, step := range workflow.AllSteps() {
		assert.NotEmpty(t, gate.RolesFor(step), "step %s has no role", step)
	}
}

func TestGate_IsAllowed(t *testing.T) {
	gate := workflow.NewGate()

	assert.True(t, gate.IsAllowed(workflow.RolePurchaseSupport, workflow.StepRateSelected))
	assert.False(t, gate.IsAllowed(workflow.RoleCustomer, workflow.StepRateSelected))
	assert.False(t, gate.IsAllowed(workflow.Role("auditor"), workflow.StepQuoteCreated))
	assert.False(t, gate.IsAllowed(workflow.RoleSupervisor, workflow.Step("C34")))
	assert.True(t, workflow.IsAllowed(workflow.RoleAccounts, workflow.StepInvoiceReviewed))
}

func TestGate_Authorize(t *testing.T) {
	customer, err := workflow.NewActor(kernel.NewUUID(), workflow.RoleCustomer, "c@example.com", nil)
	require.NoError(t, err)

	require.NoError(t, workflow.Authorize(customer, workflow.StepQuoteCreated))

	err = workflow.Authorize(customer, workflow.StepRateSelected)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, `permission denied: role "customer" may not take step C9`, err.Error())

	var unset workflow.Actor
	require.ErrorIs(t, workflow.Authorize(unset, workflow.StepQuoteCreated), workflow.ErrActorIsNotConstructed)
}

func TestGate_StepsForIsACopy(t *testing.T) {
	gate := workflow.NewGate()

	got := gate.StepsFor(workflow.RoleAccounts)
	got[0] = workflow.StepQuoteCreated

	assert.False(t, gate.IsAllowed(workflow.RoleAccounts, workflow.StepQuoteCreated))
}
