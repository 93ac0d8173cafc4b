package request

// LockSeatRequest carries the opaque caller token for a lock attempt. The
// identity is not authenticated; an absent user_id falls back to the
// anonymous sentinel.
type LockSeatRequest struct {
	UserID string `json:"user_id" validate:"omitempty,min=1,max=64"`
}

type ConfirmSeatRequest struct {
	UserID string `json:"user_id" validate:"omitempty,min=1,max=64"`
}
