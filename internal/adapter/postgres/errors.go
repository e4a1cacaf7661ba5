package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/griederer/ai-visualization-gallery/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		// Class 08 — connection exceptions; class 53 — insufficient resources;
		// 57P01/57P02/57P03 — server shutdown/crash/cannot-connect-now.
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%s %s: %v: %w", entity, id, err, domain.ErrStoreUnavailable)
		}
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// Anything that never reached the server (dial failures, pool timeouts)
	// is a retryable store outage from the caller's point of view.
	if pgconn.Timeout(err) || isDialError(err) {
		return fmt.Errorf("%s %s: %v: %w", entity, id, err, domain.ErrStoreUnavailable)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func isDialError(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
