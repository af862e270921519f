package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/repo"
	"github.com/mzielinski/travel-agency/internal/service"
)

// mockEnrollmentRepo is a hand-written test double for repo.EnrollmentRepo.
type mockEnrollmentRepo struct {
	exists func(ctx context.Context, clientID, tripID int) (bool, error)
	insert func(ctx context.Context, e domain.Enrollment) error
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	return m.exists(ctx, clientID, tripID)
}
func (m *mockEnrollmentRepo) Insert(ctx context.Context, e domain.Enrollment) error {
	return m.insert(ctx, e)
}

var _ repo.EnrollmentRepo = (*mockEnrollmentRepo)(nil)

// fakeTxRunner hands the mock-backed Repos bundle straight to fn.
// The commit/rollback behaviour of the real runner is covered by the
// integration tests in the repo package; here only the step logic matters.
type fakeTxRunner struct {
	repos repo.Repos
	calls int
}

func (f *fakeTxRunner) InTx(_ context.Context, fn func(r repo.Repos) error) error {
	f.calls++
	return fn(f.repos)
}

var _ repo.TxRunner = (*fakeTxRunner)(nil)

// ---- helpers ---------------------------------------------------------------

// fixedToday is the clock all assignment tests run against.
var fixedToday = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func assignRequest() service.AssignRequest {
	return service.AssignRequest{
		TripID:    5,
		TripName:  "Alpine Hike",
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
		Telephone: "+48123456789",
		Pesel:     "90010112345",
	}
}

// bookingHarness wires a BookingService over mocks that succeed at every step:
// the trip exists with a future start date, the client upserts to id 77, and
// no enrollment exists yet. Tests override individual fields to force failures.
type bookingHarness struct {
	svc         *service.BookingService
	tx          *fakeTxRunner
	trips       *mockTripRepo
	clients     *mockClientRepo
	enrollments *mockEnrollmentRepo

	upserted *domain.Client
	inserted *domain.Enrollment
}

func newBookingHarness(t *testing.T) *bookingHarness {
	t.Helper()
	h := &bookingHarness{}

	df := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	h.trips = &mockTripRepo{
		getSummary: func(_ context.Context, _ int) (repo.TripSummary, error) {
			return repo.TripSummary{Name: "Alpine Hike", DateFrom: &df}, nil
		},
	}
	h.clients = &mockClientRepo{
		upsertByPesel: func(_ context.Context, c domain.Client) (int, error) {
			h.upserted = &c
			return 77, nil
		},
	}
	h.enrollments = &mockEnrollmentRepo{
		exists: func(_ context.Context, _, _ int) (bool, error) { return false, nil },
		insert: func(_ context.Context, e domain.Enrollment) error {
			h.inserted = &e
			return nil
		},
	}

	h.tx = &fakeTxRunner{repos: repo.Repos{
		Trips:       h.trips,
		Clients:     h.clients,
		Enrollments: h.enrollments,
	}}
	h.svc = service.NewBookingServiceAt(h.tx, func() time.Time { return fixedToday })
	return h
}

// ---- AssignClientToTrip tests ----------------------------------------------

func TestBookingService_Assign_Success(t *testing.T) {
	h := newBookingHarness(t)

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	require.NoError(t, err)
	require.NotNil(t, h.upserted, "client should be upserted by Pesel")
	assert.Equal(t, "90010112345", h.upserted.Pesel)
	assert.Equal(t, "Jan", h.upserted.FirstName)

	require.NotNil(t, h.inserted, "enrollment should be inserted")
	assert.Equal(t, 77, h.inserted.ClientID)
	assert.Equal(t, 5, h.inserted.TripID)
	assert.Equal(t, 20260901, h.inserted.RegisteredAt, "registration date is today as YYYYMMDD")
	assert.Nil(t, h.inserted.PaymentDate, "blank payment date stores NULL")
}

func TestBookingService_Assign_TripIDMismatch(t *testing.T) {
	h := newBookingHarness(t)

	req := assignRequest()
	req.TripID = 6 // body disagrees with the path

	err := h.svc.AssignClientToTrip(context.Background(), 5, req)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorContains(t, err, "do not match")
	assert.Zero(t, h.tx.calls, "no transaction should be opened for a mismatched id")
}

func TestBookingService_Assign_TripNotFound(t *testing.T) {
	h := newBookingHarness(t)
	h.trips.getSummary = func(_ context.Context, _ int) (repo.TripSummary, error) {
		return repo.TripSummary{}, domain.ErrNotFound
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, h.upserted, "no client write after a failed trip lookup")
}

func TestBookingService_Assign_TripNameMismatch(t *testing.T) {
	h := newBookingHarness(t)

	req := assignRequest()
	req.TripName = "Completely Different"

	err := h.svc.AssignClientToTrip(context.Background(), 5, req)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorContains(t, err, "trip name does not match")
}

func TestBookingService_Assign_TripNameCaseInsensitive(t *testing.T) {
	h := newBookingHarness(t)

	req := assignRequest()
	req.TripName = "ALPINE hike"

	err := h.svc.AssignClientToTrip(context.Background(), 5, req)

	assert.NoError(t, err, "name comparison must ignore case")
}

func TestBookingService_Assign_PastTrip(t *testing.T) {
	h := newBookingHarness(t)
	yesterday := fixedToday.AddDate(0, 0, -1)
	h.trips.getSummary = func(_ context.Context, _ int) (repo.TripSummary, error) {
		return repo.TripSummary{Name: "Alpine Hike", DateFrom: &yesterday}, nil
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorContains(t, err, "past trip")
	assert.Nil(t, h.upserted)
}

func TestBookingService_Assign_TripStartingToday(t *testing.T) {
	h := newBookingHarness(t)
	// The trip starts today at midnight; the call happens in the afternoon.
	// Date-only comparison means today is not "past".
	startOfToday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	h.trips.getSummary = func(_ context.Context, _ int) (repo.TripSummary, error) {
		return repo.TripSummary{Name: "Alpine Hike", DateFrom: &startOfToday}, nil
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	assert.NoError(t, err)
}

func TestBookingService_Assign_AlreadyEnrolled(t *testing.T) {
	h := newBookingHarness(t)
	h.enrollments.exists = func(_ context.Context, clientID, tripID int) (bool, error) {
		assert.Equal(t, 77, clientID, "duplicate check must use the resolved client id")
		return true, nil
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorContains(t, err, "already assigned")
	assert.Nil(t, h.inserted, "no enrollment insert after the duplicate check fails")
}

func TestBookingService_Assign_PaymentDateFormats(t *testing.T) {
	for _, input := range []string{"2024-05-01", "20240501", "05/01/2024", "01.05.2024"} {
		t.Run(input, func(t *testing.T) {
			h := newBookingHarness(t)

			req := assignRequest()
			req.PaymentDate = input

			err := h.svc.AssignClientToTrip(context.Background(), 5, req)

			require.NoError(t, err)
			require.NotNil(t, h.inserted)
			require.NotNil(t, h.inserted.PaymentDate)
			assert.Equal(t, 20240501, *h.inserted.PaymentDate)
		})
	}
}

func TestBookingService_Assign_InvalidPaymentDate(t *testing.T) {
	h := newBookingHarness(t)

	req := assignRequest()
	req.PaymentDate = "not-a-date"

	err := h.svc.AssignClientToTrip(context.Background(), 5, req)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorContains(t, err, "invalid date format")
	// The upsert had already run inside the transaction; the runner rolls it
	// back because the step sequence returned an error.
	assert.Nil(t, h.inserted)
}

func TestBookingService_Assign_BlankPaymentDate(t *testing.T) {
	h := newBookingHarness(t)

	req := assignRequest()
	req.PaymentDate = "   "

	err := h.svc.AssignClientToTrip(context.Background(), 5, req)

	require.NoError(t, err)
	require.NotNil(t, h.inserted)
	assert.Nil(t, h.inserted.PaymentDate)
}

func TestBookingService_Assign_NilTripDateAllowed(t *testing.T) {
	h := newBookingHarness(t)
	h.trips.getSummary = func(_ context.Context, _ int) (repo.TripSummary, error) {
		return repo.TripSummary{Name: "Alpine Hike"}, nil
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	assert.NoError(t, err, "a trip without a start date cannot be in the past")
}

func TestBookingService_Assign_UpsertError(t *testing.T) {
	h := newBookingHarness(t)
	repoErr := errors.New("db exploded")
	h.clients.upsertByPesel = func(_ context.Context, _ domain.Client) (int, error) {
		return 0, repoErr
	}

	err := h.svc.AssignClientToTrip(context.Background(), 5, assignRequest())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, h.inserted)
}
