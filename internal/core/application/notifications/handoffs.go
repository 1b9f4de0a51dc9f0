package notifications

import (
	"procurement/internal/core/domain/model/workflow"
)

// getHandOffs maps each step to the role that has to act, or be told, next.
func getHandOffs() map[workflow.Step]workflow.Role {
	return map[workflow.Step]workflow.Role{
		workflow.StepQuoteCreated:            workflow.RolePurchaseSupport,
		workflow.StepPurchaseAccepted:        workflow.RoleCustomer,
		workflow.StepRFQSent:                 workflow.RoleWarehouse,
		workflow.StepPurchaseRejected:        workflow.RoleCustomer,
		workflow.StepRFQAcknowledged:         workflow.RolePurchaseSupport,
		workflow.StepRateSubmitted:           workflow.RolePurchaseSupport,
		workflow.StepWarehouseRejected:       workflow.RolePurchaseSupport,
		workflow.StepInvoiceReviewed:         workflow.RoleCustomer,
		workflow.StepRateSelected:            workflow.RoleSalesSupport,
		workflow.StepRatesConfirmed:          workflow.RolePurchaseSupport,
		workflow.StepPriceQuoted:             workflow.RoleCustomer,
		workflow.StepSalesRejected:           workflow.RoleCustomer,
		workflow.StepCustomerAgreed:          workflow.RoleSalesSupport,
		workflow.StepCustomerDeclined:        workflow.RoleSalesSupport,
		workflow.StepPriceRevised:            workflow.RoleCustomer,
		workflow.StepForwardedToSupervisor:   workflow.RoleSupervisor,
		workflow.StepBookingConfirmed:        workflow.RoleCustomer,
		workflow.StepSupervisorRejected:      workflow.RoleCustomer,
		workflow.StepDirectBookingConfirmed:  workflow.RoleCustomer,
		workflow.StepBookingCancelled:        workflow.RoleCustomer,
		workflow.StepCargoDispatchSubmitted:  workflow.RoleSupervisor,
		workflow.StepCargoDispatchApproved:   workflow.RoleWarehouse,
		workflow.StepCargoDispatchRejected:   workflow.RoleCustomer,
		workflow.StepCargoProcessed:          workflow.RoleCustomer,
		workflow.StepCartingSubmitted:        workflow.RoleSupervisor,
		workflow.StepCartingConfirmed:        workflow.RoleWarehouse,
		workflow.StepCartingRejected:         workflow.RoleWarehouse,
		workflow.StepDeliveryRequested:       workflow.RoleSupervisor,
		workflow.StepDeliveryOrderExecuted:   workflow.RoleCustomer,
		workflow.StepDeliveryReportSubmitted: workflow.RoleCustomer,
		workflow.StepInvoiceRequested:        workflow.RoleAccounts,
		workflow.StepDeliveryReviewed:        workflow.RoleWarehouse,
		workflow.StepPaymentSubmitted:        workflow.RoleAccounts,
	}
}

// NextRole returns the role notified after step.
func NextRole(step workflow.Step) (workflow.Role, bool) {
	role, ok := getHandOffs()[step]
	return role, ok
}

func describe(step workflow.Step, action workflow.Action) string {
	switch step {
	case workflow.StepQuoteCreated:
		return "new storage request"
	case workflow.StepPurchaseAccepted:
		return "request accepted by purchase support"
	case workflow.StepRFQSent:
		return "request for quotation"
	case workflow.StepRFQAcknowledged:
		return "request for quotation acknowledged"
	case workflow.StepRateSubmitted:
		return "warehouse rate received"
	case workflow.StepRateSelected:
		return "warehouse selected, ready for pricing"
	case workflow.StepRatesConfirmed:
		return "warehouse rates confirmed"
	case workflow.StepPriceQuoted, workflow.StepPriceRevised:
		return "price quoted"
	case workflow.StepCustomerAgreed:
		return "customer accepted the price"
	case workflow.StepForwardedToSupervisor:
		return "awaiting booking confirmation"
	case workflow.StepBookingConfirmed, workflow.StepDirectBookingConfirmed:
		return "booking confirmed"
	case workflow.StepBookingCancelled:
		return "booking cancelled"
	case workflow.StepCargoDispatchSubmitted:
		return "cargo dispatch submitted"
	case workflow.StepCargoDispatchApproved:
		return "cargo dispatch approved"
	case workflow.StepCargoDispatchRejected:
		return "cargo dispatch rejected"
	case workflow.StepCargoProcessed:
		return "cargo " + action.String()
	case workflow.StepCartingSubmitted:
		return "carting details submitted"
	case workflow.StepCartingConfirmed:
		return "carting confirmed"
	case workflow.StepCartingRejected:
		return "carting rejected"
	case workflow.StepDeliveryRequested:
		return "delivery requested"
	case workflow.StepDeliveryReviewed:
		return "delivery request " + action.String()
	case workflow.StepDeliveryOrderExecuted:
		return "delivery order executed"
	case workflow.StepDeliveryReportSubmitted:
		return "delivery report filed"
	case workflow.StepInvoiceRequested:
		return "invoice requested"
	case workflow.StepInvoiceReviewed:
		return "invoice " + action.String()
	case workflow.StepPaymentSubmitted:
		return "payment details submitted"
	case workflow.StepCustomerDeclined:
		if action == workflow.ActionCancel {
			return "request withdrawn by the customer"
		}
		return "price declined by the customer"
	default:
		return "request rejected"
	}
}
