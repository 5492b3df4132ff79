package models

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusProcessed Status = "Processed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

var validStatuses = []Status{StatusPending, StatusProcessed, StatusCancelled, StatusCompleted}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no business rule moves the transaction any further.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus converts text into a Status.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.Valid() {
		return "", newValidationError("status", "must be one of Pending, Processed, Cancelled, Completed")
	}
	return s, nil
}
