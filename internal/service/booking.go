package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/repo"
)

// AssignRequest is the payload of a trip assignment.
// TripID must match the trip addressed in the URL. PaymentDate is optional:
// a blank string means no payment has been recorded yet.
type AssignRequest struct {
	TripID      int
	TripName    string
	FirstName   string
	LastName    string
	Email       string
	Telephone   string
	Pesel       string
	PaymentDate string
}

// BookingService orchestrates the multi-step trip assignment workflow.
type BookingService struct {
	tx repo.TxRunner

	// now is injectable so the past-trip rule and the registration date can
	// be tested against a fixed clock. Defaults to time.Now.
	now func() time.Time
}

// NewBookingService constructs a BookingService backed by the provided TxRunner.
func NewBookingService(tx repo.TxRunner) *BookingService {
	return NewBookingServiceAt(tx, time.Now)
}

// NewBookingServiceAt constructs a BookingService with an explicit clock.
// Tests use it to pin "today" for the past-trip rule and the registration date.
func NewBookingServiceAt(tx repo.TxRunner, now func() time.Time) *BookingService {
	return &BookingService{tx: tx, now: now}
}

// AssignClientToTrip enrolls a client in a trip. The checks run in order and
// each is a hard precondition:
//
//  1. req.TripID must equal tripID.
//  2. The trip must exist.
//  3. req.TripName must match the stored name, case-insensitively.
//  4. The trip must not start before today (date-only comparison).
//  5. The client is resolved by Pesel — reused if a row exists, inserted
//     otherwise. An existing row is never updated from the payload.
//  6. The client must not already be enrolled in the trip.
//  7. The enrollment is inserted with today as registration date and the
//     parsed payment date, or NULL when none was supplied.
//
// Steps 2–7 run inside one transaction; any failure rolls back every write
// made within this call, so a freshly upserted client without an enrollment
// is never committed.
func (s *BookingService) AssignClientToTrip(ctx context.Context, tripID int, req AssignRequest) error {
	if req.TripID != tripID {
		return fmt.Errorf("service.BookingService.AssignClientToTrip: %w: trip id in path and body do not match", domain.ErrInvalidState)
	}

	today := s.now()

	return s.tx.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetSummary(ctx, tripID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("service.BookingService.AssignClientToTrip: trip %d %w", tripID, domain.ErrNotFound)
			}
			return err
		}

		if !strings.EqualFold(trip.Name, req.TripName) {
			return fmt.Errorf("service.BookingService.AssignClientToTrip: %w: trip name does not match", domain.ErrInvalidState)
		}

		if trip.DateFrom != nil && domain.DateInt(*trip.DateFrom) < domain.DateInt(today) {
			return fmt.Errorf("service.BookingService.AssignClientToTrip: %w: cannot assign to a past trip", domain.ErrInvalidState)
		}

		clientID, err := r.Clients.UpsertByPesel(ctx, domain.Client{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Telephone: req.Telephone,
			Pesel:     req.Pesel,
		})
		if err != nil {
			return err
		}

		enrolled, err := r.Enrollments.Exists(ctx, clientID, tripID)
		if err != nil {
			return err
		}
		if enrolled {
			return fmt.Errorf("service.BookingService.AssignClientToTrip: %w: client is already assigned to this trip", domain.ErrInvalidState)
		}

		e := domain.Enrollment{
			ClientID:     clientID,
			TripID:       tripID,
			RegisteredAt: domain.DateInt(today),
		}
		if raw := strings.TrimSpace(req.PaymentDate); raw != "" {
			parsed, err := domain.ParseFlexibleDate(raw)
			if err != nil {
				return fmt.Errorf("service.BookingService.AssignClientToTrip: %w: invalid date format, use yyyy-MM-dd, yyyyMMdd, MM/dd/yyyy or dd.MM.yyyy", domain.ErrInvalidState)
			}
			pd := domain.DateInt(parsed)
			e.PaymentDate = &pd
		}

		return r.Enrollments.Insert(ctx, e)
	})
}
