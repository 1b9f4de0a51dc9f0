package quote

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// FlowType selects the branch a quote follows after it has been priced.
// The direct flow lets the supervisor confirm a quoted price without waiting
// for customer confirmation.
type FlowType string

const (
	FlowStandard FlowType = "standard"
	FlowDirect   FlowType = "direct"
)

// ParseFlowType defaults an empty value to the standard flow.
func ParseFlowType(s string) (FlowType, error) {
	switch FlowType(s) {
	case "", FlowStandard:
		return FlowStandard, nil
	case FlowDirect:
		return FlowDirect, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("flowType", fmt.Errorf("%q is not a flow type", s))
	}
}

func (f FlowType) String() string {
	return string(f)
}
