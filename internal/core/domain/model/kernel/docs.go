// Package kernel provides the value objects shared by all workflow aggregates.
//
// The package includes:
//   - UUID: identifier of quotes, RFQs, rates, bookings, delivery documents, invoices and actors
//   - Money: non-negative decimal amount with two decimal places
//
// Both are immutable and have invalid zero values that fail Validate, so a
// forgotten field is caught when an aggregate is constructed or restored.
package kernel
