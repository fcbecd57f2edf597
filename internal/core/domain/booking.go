package domain

// BookingStatus represents the lifecycle state of a service booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status update from s to next is allowed.
// Completed and cancelled bookings are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s != BookingPending {
		return false
	}
	return next == BookingCompleted || next == BookingCancelled
}

// Booking is a service booking record owned by the upstream API.
type Booking struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Address     string        `json:"address"`
	Date        string        `json:"date"`
	Notes       string        `json:"notes,omitempty"`
	Phone       string        `json:"phone"`
	Name        string        `json:"name"`
	WardCode    string        `json:"wardCode"`
	NeedsSurvey bool          `json:"needsSurvey"`
	Status      BookingStatus `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}
