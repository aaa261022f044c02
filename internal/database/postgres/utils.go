package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollback, "error", err)
	}
}

// validID reports whether id can be compared against a UUID column.
// Malformed ids cannot match any row, so lookups short-circuit to "not found"
// instead of surfacing a cast error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// dateRange returns the bounds as query args, or two NULLs when either is missing
func dateRange(start, end *domain.Date) (any, any) {
	if start == nil || end == nil {
		return nil, nil
	}
	return start.Time(), end.Time()
}

// hasPgCode reports whether err carries the given SQLSTATE
func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
