// Package rfq models the negotiation between purchase support and candidate
// warehouses: one RFQ per (quote, warehouse) and the rates warehouses answer with.
package rfq

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// DefaultValidity is how long a warehouse may answer when no deadline is given.
const DefaultValidity = 7 * 24 * time.Hour

var (
	ErrRFQIsNotConstructed = errors.New("RFQ must be created via NewRFQ constructor")

	// ErrExpired is the cause of the conflict returned for a rate submitted after validUntil.
	ErrExpired = errors.New("rfq has expired")
)

// RFQ is a request for quotation sent to a single warehouse for a quote.
type RFQ struct {
	id            kernel.UUID
	quoteID       kernel.UUID
	warehouseID   kernel.UUID
	status        Status
	validUntil    time.Time
	notes         []string
	createdAt     time.Time
	isConstructed bool
}

// NewRFQ creates a sent RFQ. A nil validUntil defaults to now plus DefaultValidity.
func NewRFQ(id, quoteID, warehouseID kernel.UUID, validUntil *time.Time, now time.Time) (*RFQ, error) {
	if err := errors.Join(id.Validate(), quoteID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}

	deadline := now.Add(DefaultValidity)
	if validUntil != nil {
		deadline = *validUntil
	}
	if !deadline.After(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"validUntil",
			fmt.Errorf("%s is not in the future", deadline.UTC().Format(time.RFC3339)),
		)
	}

	return &RFQ{
		id:            id,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		status:        Sent,
		validUntil:    deadline.UTC(),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRFQ rebuilds an RFQ from storage.
func RestoreRFQ(
	id, quoteID, warehouseID kernel.UUID,
	status Status,
	validUntil time.Time,
	notes []string,
	createdAt time.Time,
) (*RFQ, error) {
	if err := errors.Join(id.Validate(), quoteID.Validate(), warehouseID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &RFQ{
		id:            id,
		quoteID:       quoteID,
		warehouseID:   warehouseID,
		status:        status,
		validUntil:    validUntil.UTC(),
		notes:         slices.Clone(notes),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (r *RFQ) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRFQIsNotConstructed
	}
	return nil
}

func (r *RFQ) ID() kernel.UUID { return r.id }
func (r *RFQ) QuoteID() kernel.UUID { return r.quoteID }
func (r *RFQ) WarehouseID() kernel.UUID { return r.warehouseID }
func (r *RFQ) Status() Status { return r.status }
func (r *RFQ) ValidUntil() time.Time { return r.validUntil }
func (r *RFQ) Notes() []string { return slices.Clone(r.notes) }
func (r *RFQ) CreatedAt() time.Time { return r.createdAt }

// IsExpiredAt reports whether the answer deadline has passed.
func (r *RFQ) IsExpiredAt(now time.Time) bool {
	return now.After(r.validUntil)
}

// ValidateRateSubmission checks that a rate may be submitted now: the RFQ must
// still be sent and within its deadline.
func (r *RFQ) ValidateRateSubmission(now time.Time) error {
	if r.status != Sent {
		return errs.NewConflictErrorWithCause(
			"rfq",
			"not awaiting a rate",
			fmt.Errorf("status is %s", r.status),
		)
	}
	if r.IsExpiredAt(now) {
		return errs.NewConflictErrorWithCause("rfq", "rate submission rejected", ErrExpired)
	}
	return nil
}

// MarkResponded records that the warehouse answered with a rate.
func (r *RFQ) MarkResponded(now time.Time) error {
	if err := r.ValidateRateSubmission(now); err != nil {
		return err
	}
	r.status = Responded
	return nil
}

// Accept acknowledges the RFQ without a rate.
func (r *RFQ) Accept(note string) error {
	if r.status != Sent {
		return errs.NewConflictErrorWithCause("rfq", "already answered", fmt.Errorf("status is %s", r.status))
	}
	r.status = Responded
	r.appendNote(note)
	return nil
}

// Reject declines the RFQ on behalf of the warehouse.
func (r *RFQ) Reject(note string) error {
	if r.status != Sent {
		return errs.NewConflictErrorWithCause("rfq", "already answered", fmt.Errorf("status is %s", r.status))
	}
	r.status = Cancelled
	r.appendNote(note)
	return nil
}

// Close cancels a still open RFQ once another warehouse's rate was selected.
// It reports whether the RFQ changed.
func (r *RFQ) Close(note string) bool {
	if !r.status.IsActive() {
		return false
	}
	r.status = Cancelled
	r.appendNote(note)
	return true
}

func (r *RFQ) appendNote(note string) {
	if note = strings.TrimSpace(note); note != "" {
		r.notes = append(r.notes, note)
	}
}
