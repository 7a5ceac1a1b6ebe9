package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BlocksSlot reports whether a reservation in this status keeps its
// (date, time slot) pair occupied. Only cancellation frees a slot; the
// same rule backs the partial unique index in the store.
func (s Status) BlocksSlot() bool {
	return s != StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}
