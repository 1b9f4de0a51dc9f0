package rfq

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")

// Rate is a warehouse's priced answer to an RFQ. At most one rate per quote is accepted.
type Rate struct {
	id            kernel.UUID
	rfqID         kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	amount        kernel.Money
	terms         string
	status        RateStatus
	createdAt     time.Time
	isConstructed bool
}

// NewRate creates a pending rate answering the given RFQ.
func NewRate(id kernel.UUID, r *RFQ, amount kernel.Money, terms string, now time.Time) (*Rate, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(id.Validate(), amount.ValidatePositive("amount")); err != nil {
		return nil, err
	}
	return &Rate{
		id:            id,
		rfqID:         r.ID(),
		quoteID:       r.QuoteID(),
		warehouseID:   r.WarehouseID(),
		amount:        amount,
		terms:         terms,
		status:        RatePending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRate rebuilds a rate from storage.
func RestoreRate(
	id, rfqID, quoteID, warehouseID kernel.UUID,
	amount kernel.Money,
	terms string,
	status RateStatus,
	createdAt time.Time,
) (*Rate, error) {
	if err := errors.Join(
		id.Validate(), rfqID.Validate(), quoteID.Validate(), warehouseID.Validate(),
		amount.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Rate{
		id:            id,
		rfqID:         rfqID,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		amount:        amount,
		terms:         terms,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (r *Rate) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRateIsNotConstructed
	}
	return nil
}

func (r *Rate) ID() kernel.UUID { return r.id }
func (r *Rate) RFQID() kernel.UUID { return r.rfqID }
func (r *Rate) QuoteID() kernel.UUID { return r.quoteID }
func (r *Rate) WarehouseID() kernel.UUID { return r.warehouseID }
func (r *Rate) Amount() kernel.Money { return r.amount }
func (r *Rate) Terms() string { return r.terms }
func (r *Rate) Status() RateStatus { return r.status }
func (r *Rate) CreatedAt() time.Time { return r.createdAt }

// Accept marks the rate as the selected offer.
func (r *Rate) Accept() error {
	if r.status != RatePending {
		return errs.NewConflictErrorWithCause("rate", "not pending", fmt.Errorf("status is %s", r.status))
	}
	r.status = RateAccepted
	return nil
}

// Decline rejects a sibling rate after another one was selected.
// Already rejected rates are left untouched.
func (r *Rate) Decline() error {
	switch r.status {
	case RatePending:
		r.status = RateRejected
		return nil
	case RateRejected:
		return nil
	default:
		return errs.NewConflictErrorWithCause("rate", "cannot reject", fmt.Errorf("status is %s", r.status))
	}
}
