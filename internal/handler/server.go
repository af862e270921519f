// Package handler implements the HTTP handlers for the travel agency API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, client.go, booking.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/middleware"
	"github.com/mzielinski/travel-agency/internal/service"
)

// maxAssignBodyBytes caps the trip assignment request body.
// The payload is a handful of short personal fields; one megabyte is generous.
const maxAssignBodyBytes = 1 << 20

// TripServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context, p domain.PaginationParams) (domain.TripPage, error)
}

// ClientServicer defines the business operations the client handler depends on.
type ClientServicer interface {
	Delete(ctx context.Context, id int) error
}

// BookingServicer defines the business operations the assignment handler depends on.
type BookingServicer interface {
	AssignClientToTrip(ctx context.Context, tripID int, req service.AssignRequest) error
}

// Server holds the handler dependencies for all API endpoints.
// Wire it in main.go via Routes(). Methods are in domain-specific files but
// all operate on this struct.
type Server struct {
	trips    TripServicer
	clients  ClientServicer
	bookings BookingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, clients ClientServicer, bookings BookingServicer) *Server {
	return &Server{trips: trips, clients: clients, bookings: bookings}
}

// Routes returns the chi router for all API endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trips", s.ListTrips)
		r.With(middleware.NewMaxBodySizeHandler(maxAssignBodyBytes)).
			Post("/trips/{idTrip}/clients", s.AssignClientToTrip)
		r.Delete("/clients/{idClient}", s.DeleteClient)
	})

	return r
}
