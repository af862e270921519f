package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Repos bundles the repositories that participate in a single unit of work.
// All three share the same underlying db handle, so when Repos is built over
// a transaction every statement runs inside it.
type Repos struct {
	Trips       TripRepo
	Clients     ClientRepo
	Enrollments EnrollmentRepo
}

// NewRepos constructs the full repository bundle over one db handle.
func NewRepos(db db) Repos {
	return Repos{
		Trips:       NewTripRepo(db),
		Clients:     NewClientRepo(db),
		Enrollments: NewEnrollmentRepo(db),
	}
}

// TxRunner executes a function inside one database transaction.
// The transaction commits only when fn returns nil; any error — or a panic —
// rolls back every statement fn issued. Services use this as a scoped
// resource instead of balancing begin/commit/rollback by hand.
type TxRunner interface {
	InTx(ctx context.Context, fn func(r Repos) error) error
}

// beginner is the subset of *pgxpool.Pool the transaction runner needs.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// pgTxRunner is the pgx implementation of TxRunner.
type pgTxRunner struct {
	db beginner
}

// NewTxRunner constructs a TxRunner backed by the provided pool.
func NewTxRunner(db beginner) TxRunner {
	return &pgTxRunner{db: db}
}

// InTx begins a transaction, runs fn over repositories bound to it, and
// commits on success. The deferred rollback is a no-op after a successful
// commit (pgx returns ErrTxClosed, which is discarded), so every other exit
// path — fn error, commit error, panic — rolls the transaction back.
func (r *pgTxRunner) InTx(ctx context.Context, fn func(r Repos) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: commit: %w", err)
	}
	return nil
}
