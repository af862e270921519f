package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mzielinski/travel-agency/internal/domain"
)

// EnrollmentRepo defines the persistence operations for client_trip rows.
// Enrollments are insert-only: nothing in the API updates or deletes them.
type EnrollmentRepo interface {
	// Exists reports whether the client is already enrolled in the trip.
	Exists(ctx context.Context, clientID, tripID int) (bool, error)

	// Insert adds one enrollment row. PaymentDate nil becomes NULL.
	Insert(ctx context.Context, e domain.Enrollment) error
}

// pgEnrollmentRepo is the Postgres implementation of EnrollmentRepo.
type pgEnrollmentRepo struct {
	db db
}

// NewEnrollmentRepo constructs an EnrollmentRepo backed by the provided db connection.
func NewEnrollmentRepo(db db) EnrollmentRepo {
	return &pgEnrollmentRepo{db: db}
}

// Exists reports whether a client_trip row exists for the pair.
func (r *pgEnrollmentRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM client_trip
			WHERE id_client = @id_client AND id_trip = @id_trip
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id_client": clientID, "id_trip": tripID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.EnrollmentRepo.Exists: %w", err)
	}
	return exists, nil
}

// Insert adds one enrollment row.
func (r *pgEnrollmentRepo) Insert(ctx context.Context, e domain.Enrollment) error {
	const q = `
		INSERT INTO client_trip (id_client, id_trip, registered_at, payment_date)
		VALUES (@id_client, @id_trip, @registered_at, @payment_date)`

	args := pgx.NamedArgs{
		"id_client":     e.ClientID,
		"id_trip":       e.TripID,
		"registered_at": e.RegisteredAt,
		"payment_date":  e.PaymentDate, // nil becomes NULL
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.EnrollmentRepo.Insert: %w", err)
	}
	return nil
}
