package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mzielinski/travel-agency/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// GetByID retrieves a single client by its integer primary key.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Client, error)

	// CountEnrollments returns the number of trips the client is enrolled in.
	CountEnrollments(ctx context.Context, clientID int) (int, error)

	// Delete removes a client by ID. Returns domain.ErrNotFound if it does
	// not exist. Enrollments are never cascaded: callers must check
	// CountEnrollments first.
	Delete(ctx context.Context, id int) error

	// UpsertByPesel inserts the client if no row with its Pesel exists yet
	// and returns the id of whichever row now owns that Pesel. Existing rows
	// are left unmodified — the incoming personal fields are ignored on
	// conflict. Safe under concurrent inserts of the same Pesel: the unique
	// constraint plus ON CONFLICT makes both callers resolve to the same row.
	UpsertByPesel(ctx context.Context, client domain.Client) (int, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

// GetByID retrieves a client by primary key.
func (r *pgClientRepo) GetByID(ctx context.Context, id int) (domain.Client, error) {
	const q = `
		SELECT id_client, first_name, last_name, email, telephone, pesel
		FROM client
		WHERE id_client = @id_client`

	var c domain.Client
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id_client": id}).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return c, nil
}

// CountEnrollments returns how many client_trip rows reference the client.
func (r *pgClientRepo) CountEnrollments(ctx context.Context, clientID int) (int, error) {
	const q = `SELECT COUNT(*) FROM client_trip WHERE id_client = @id_client`

	var n int
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id_client": clientID}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.ClientRepo.CountEnrollments: %w", err)
	}
	return n, nil
}

// Delete removes a client by primary key.
func (r *pgClientRepo) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM client WHERE id_client = @id_client`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id_client": id})
	if err != nil {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// UpsertByPesel inserts a client or returns the existing row's id on Pesel
// conflict. The DO UPDATE SET trick forces the RETURNING clause to fire even
// when the conflict handler skips the insert — without it, RETURNING returns
// nothing on DO NOTHING conflicts.
func (r *pgClientRepo) UpsertByPesel(ctx context.Context, client domain.Client) (int, error) {
	const q = `
		INSERT INTO client (first_name, last_name, email, telephone, pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		ON CONFLICT (pesel) DO UPDATE SET pesel = EXCLUDED.pesel
		RETURNING id_client`

	args := pgx.NamedArgs{
		"first_name": client.FirstName,
		"last_name":  client.LastName,
		"email":      client.Email,
		"telephone":  client.Telephone,
		"pesel":      client.Pesel,
	}

	var id int
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("repo.ClientRepo.UpsertByPesel: %w", err)
	}
	return id, nil
}
