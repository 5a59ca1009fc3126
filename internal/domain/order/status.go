package order

// Status represents the lifecycle state of a cart
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusValidated Status = "VALIDATED"
	StatusDelivered Status = "DELIVERED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusValidated, StatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
// Transitions are one-directional: DRAFT -> VALIDATED -> DELIVERED
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusValidated
	case StatusValidated:
		return target == StatusDelivered
	case StatusDelivered:
		return false // Terminal state
	}
	return false
}

// Display returns the customer-facing label for the status
func (s Status) Display() string {
	switch s {
	case StatusDraft:
		return "Pending"
	case StatusValidated:
		return "Validated"
	case StatusDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}
