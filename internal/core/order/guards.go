package order

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Field   string
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateOrderContext provides context for order creation guards.
type CreateOrderContext struct {
	Customer         string
	Priority         Priority // empty means default
	TechnicianID     string   // optional, empty if not specified
	TechnicianExists bool     // only checked if TechnicianID != ""
}

// CanCreateOrder evaluates whether a work order can be created.
// Rules:
// - Customer must be non-blank (the mandatory identity field)
// - Priority must be a known label when provided
// - Technician must exist (if technician_id provided)
func CanCreateOrder(ctx CreateOrderContext) GuardResult {
	if strings.TrimSpace(ctx.Customer) == "" {
		return GuardResult{
			Allowed: false,
			Field:   "customer",
			Reason:  "customer is required",
		}
	}

	if ctx.Priority != "" && !ctx.Priority.Valid() {
		return GuardResult{
			Allowed: false,
			Field:   "priority",
			Reason:  fmt.Sprintf("unknown priority %q", ctx.Priority),
		}
	}

	if ctx.TechnicianID != "" && !ctx.TechnicianExists {
		return GuardResult{
			Allowed: false,
			Field:   "technician",
			Reason:  fmt.Sprintf("technician %s not found", ctx.TechnicianID),
		}
	}

	return GuardResult{Allowed: true}
}
