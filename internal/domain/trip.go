// Package domain contains the core data types for the travel agency backend.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip represents a bookable journey with a date range and a capacity limit.
// A trip is the top-level aggregate of the paginated listing: Countries and
// Clients are denormalized display data produced by the listing join, not
// full child entities. Clients carries name pairs only.
//
// DateFrom and DateTo are nil when the trip has no dates set; at the HTTP
// boundary they are rendered as "yyyy-MM-dd" strings.
type Trip struct {
	ID          int
	Name        string
	Description string
	DateFrom    *time.Time
	DateTo      *time.Time
	MaxPeople   int
	Countries   []string
	Clients     []ClientName
}

// ClientName is the first/last name pair attached to a trip in the listing.
type ClientName struct {
	FirstName string
	LastName  string
}

// TripPage is one page of the trip listing plus paging metadata.
// AllPages is computed from the grand total, not from the page contents,
// so a page past the end still reports the correct page count.
type TripPage struct {
	PageNum  int
	PageSize int
	AllPages int
	Trips    []Trip
}
