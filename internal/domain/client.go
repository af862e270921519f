package domain

// Client is a person who can be enrolled in trips.
// Pesel is the natural key: at most one client row exists per Pesel value.
// A client is created either directly or implicitly during trip assignment
// when no row with the submitted Pesel exists yet.
type Client struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Pesel     string
}
