// Package inbox makes inbound event handling idempotent. The broker delivers
// at least once; recording applied event ids inside the handler's own
// transaction turns that into at-most-once effect.
package inbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daitlovv/gozon-shop/pkg/logger"
)

// Guard wraps a business handler in a single local transaction together with
// the inbox-row insert. The caller acknowledges the delivery only after
// Process returns, so the commit always lands before the ack.
type Guard struct {
	db  *sqlx.DB
	log logger.Logger
}

func NewGuard(log logger.Logger, db *sqlx.DB) *Guard {
	return &Guard{db: db, log: log}
}

// Process runs fn inside a transaction gated by the inbox log. The returned
// applied flag is false when the event id was seen before; the handler is
// then skipped entirely and the caller should ack the duplicate delivery.
// Any error means the transaction rolled back and nothing was applied.
func (g *Guard) Process(
	ctx context.Context,
	eventID uuid.UUID,
	fn func(ctx context.Context, tx *sqlx.Tx) error,
) (applied bool, err error) {
	const op = "inbox.Guard.Process"

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		g.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, fmt.Errorf("%s: rollback: %w", op, rollBackErr))
			}
		}
	}()

	// The row's existence is the whole idempotency proof. ON CONFLICT keeps
	// the check and the claim atomic under concurrent redelivery.
	const insertQuery = `INSERT INTO inbox (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`

	res, err := tx.ExecContext(ctx, insertQuery, eventID)
	if err != nil {
		g.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: insert inbox message: %w", op, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		g.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if inserted == 0 {
		if rollBackErr := tx.Rollback(); rollBackErr != nil {
			return false, fmt.Errorf("%s: rollback duplicate: %w", op, rollBackErr)
		}

		g.log.Info("duplicate event skipped", logger.String("event_id", eventID.String()))

		return false, nil
	}

	if err = fn(ctx, tx); err != nil {
		return false, fmt.Errorf("%s: handle event %s: %w", op, eventID, err)
	}

	if err = tx.Commit(); err != nil {
		g.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: commit: %w", op, err)
	}

	return true, nil
}
