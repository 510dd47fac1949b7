// Package models defines the core domain models: users and the dated
// expense records they own.
package models

// Expense is a single dated purchase owned by exactly one user.
//
// TotalPrice is derived: it always equals UnitPrice * Quantity at rest and
// is never settable by clients. The service layer recomputes it on every
// create and on every update that changes UnitPrice or Quantity.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// UserID references the owning User. All reads, updates and deletes
	// are scoped to this owner.
	UserID string `json:"user_id"`

	// Date is the calendar day of the expense as an opaque string
	// (e.g. "2024-03-01"). Stored and matched verbatim, never parsed.
	Date string `json:"date"`

	// ItemName describes what was bought.
	ItemName string `json:"item_name"`

	// UnitPrice is the price per unit. No range validation applies.
	UnitPrice float64 `json:"unit_price"`

	// Quantity is the number of units. No range validation applies.
	Quantity float64 `json:"quantity"`

	// TotalPrice is the derived UnitPrice * Quantity.
	TotalPrice float64 `json:"total_price"`
}
