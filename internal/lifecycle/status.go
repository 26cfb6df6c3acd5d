package lifecycle

// Booking statuses. The intended business order is Pending -> Assigned ->
// In-Progress -> Delivered, with Cancelled reachable from any non-terminal
// state. Transitions between known statuses are not restricted: warehouse
// managers routinely correct mis-set statuses, so the endpoint is a direct
// overwrite. Unknown statuses are rejected.
const (
	BookingPending    = "Pending"
	BookingAssigned   = "Assigned"
	BookingInProgress = "In-Progress"
	BookingDelivered  = "Delivered"
	BookingCancelled  = "Cancelled"
)

// Assignment statuses. Delivered and Declined are terminal.
const (
	AssignmentAssigned  = "Assigned"
	AssignmentPickedUp  = "Picked-Up"
	AssignmentDelivered = "Delivered"
	AssignmentDeclined  = "Declined"
)

var bookingStatuses = map[string]bool{
	BookingPending:    true,
	BookingAssigned:   true,
	BookingInProgress: true,
	BookingDelivered:  true,
	BookingCancelled:  true,
}

var assignmentStatuses = map[string]bool{
	AssignmentAssigned:  true,
	AssignmentPickedUp:  true,
	AssignmentDelivered: true,
	AssignmentDeclined:  true,
}

func ValidBookingStatus(s string) bool {
	return bookingStatuses[s]
}

func ValidAssignmentStatus(s string) bool {
	return assignmentStatuses[s]
}
