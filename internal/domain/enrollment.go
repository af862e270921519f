package domain

// Enrollment links one client to one trip. At most one enrollment exists per
// (client, trip) pair — the client_trip table enforces this with its primary key.
//
// RegisteredAt and PaymentDate are calendar dates stored as 8-digit YYYYMMDD
// integers (see DateInt). PaymentDate is nil when no payment has been recorded.
type Enrollment struct {
	ClientID     int
	TripID       int
	RegisteredAt int
	PaymentDate  *int
}
