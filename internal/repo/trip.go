// Package repo contains all database access logic for the travel agency API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mzielinski/travel-agency/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly lets the trip
// assignment workflow run all its statements on one transaction, and lets
// integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripSummary is the subset of trip fields the assignment workflow checks
// before enrolling a client: the stored name and the start date.
type TripSummary struct {
	Name     string
	DateFrom *time.Time
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Count returns the total number of trips.
	Count(ctx context.Context) (int, error)

	// ListPage returns one page of trip aggregates ordered by date_from
	// descending. Pagination applies to the denormalized join rows, so the
	// nested countries and clients of a trip on a page boundary may be split
	// across pages — this mirrors the join semantics of the listing.
	ListPage(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error)

	// GetSummary returns the stored name and start date of a trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetSummary(ctx context.Context, id int) (TripSummary, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Count returns the total number of trip rows.
func (r *pgTripRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trip`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", err)
	}
	return n, nil
}

// ListPage runs the five-way listing join and folds the flat rows into one
// aggregate per trip. The join denormalizes: one row per trip×country×client
// combination, with NULLs where a trip has no countries or no clients.
func (r *pgTripRepo) ListPage(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, error) {
	const q = `
		SELECT t.id_trip, t.name, t.description, t.date_from, t.date_to, t.max_people,
		       c.name  AS country_name,
		       cl.first_name AS client_first_name,
		       cl.last_name  AS client_last_name
		FROM trip t
		LEFT JOIN country_trip ct ON ct.id_trip = t.id_trip
		LEFT JOIN country c       ON c.id_country = ct.id_country
		LEFT JOIN client_trip clt ON clt.id_trip = t.id_trip
		LEFT JOIN client cl       ON cl.id_client = clt.id_client
		ORDER BY t.date_from DESC NULLS LAST, t.id_trip
		OFFSET @offset LIMIT @page_size`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"offset":    p.Offset(),
		"page_size": p.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: %w", err)
	}
	defer rows.Close()

	var flat []tripRow
	for rows.Next() {
		tr, err := scanTripRow(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListPage: scan: %w", err)
		}
		flat = append(flat, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListPage: rows: %w", err)
	}

	return foldTripRows(flat), nil
}

// GetSummary returns the stored name and start date of a trip.
func (r *pgTripRepo) GetSummary(ctx context.Context, id int) (TripSummary, error) {
	const q = `SELECT name, date_from FROM trip WHERE id_trip = @id_trip`

	var (
		s        TripSummary
		dateFrom pgtype.Date
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id_trip": id}).Scan(&s.Name, &dateFrom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TripSummary{}, fmt.Errorf("repo.TripRepo.GetSummary: %w", domain.ErrNotFound)
		}
		return TripSummary{}, fmt.Errorf("repo.TripRepo.GetSummary: %w", err)
	}
	if dateFrom.Valid {
		df := dateFrom.Time
		s.DateFrom = &df
	}
	return s, nil
}

// tripRow is one flat row of the listing join before folding.
type tripRow struct {
	ID              int
	Name            string
	Description     string
	DateFrom        *time.Time
	DateTo          *time.Time
	MaxPeople       int
	CountryName     *string
	ClientFirstName *string
	ClientLastName  *string
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTripRow maps a single join row into a tripRow, converting the nullable
// date and text columns.
func scanTripRow(s scanner) (tripRow, error) {
	var (
		tr        tripRow
		dateFrom  pgtype.Date
		dateTo    pgtype.Date
		country   pgtype.Text
		firstName pgtype.Text
		lastName  pgtype.Text
	)

	err := s.Scan(&tr.ID, &tr.Name, &tr.Description, &dateFrom, &dateTo, &tr.MaxPeople,
		&country, &firstName, &lastName)
	if err != nil {
		return tripRow{}, err
	}

	if dateFrom.Valid {
		df := dateFrom.Time
		tr.DateFrom = &df
	}
	if dateTo.Valid {
		dt := dateTo.Time
		tr.DateTo = &dt
	}
	if country.Valid {
		tr.CountryName = &country.String
	}
	if firstName.Valid {
		tr.ClientFirstName = &firstName.String
	}
	if lastName.Valid {
		tr.ClientLastName = &lastName.String
	}
	return tr, nil
}

// foldTripRows collapses denormalized join rows into one Trip aggregate per
// trip id. The first row seen for a trip initializes its scalar fields; every
// row appends at most one country (skipped when the country join produced
// NULL) and at most one client name pair (skipped when either name is NULL).
//
// Output order is first-appearance order, which follows the query's
// date_from DESC ordering. Nested entries keep append order and are not
// deduplicated: the fan-out of the join is the contract.
func foldTripRows(rows []tripRow) []domain.Trip {
	index := make(map[int]int, len(rows))
	trips := []domain.Trip{}

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(trips)
			index[row.ID] = i
			trips = append(trips, domain.Trip{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				DateFrom:    row.DateFrom,
				DateTo:      row.DateTo,
				MaxPeople:   row.MaxPeople,
			})
		}

		t := &trips[i]
		if row.CountryName != nil {
			t.Countries = append(t.Countries, *row.CountryName)
		}
		if row.ClientFirstName != nil && row.ClientLastName != nil {
			t.Clients = append(t.Clients, domain.ClientName{
				FirstName: *row.ClientFirstName,
				LastName:  *row.ClientLastName,
			})
		}
	}

	return trips
}
