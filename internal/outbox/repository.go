package outbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/daitlovv/gozon-shop/pkg/logger"
)

// Repository persists the outbox log. Each service owns a private database
// with its own "outbox" table, so one implementation serves both.
type Repository struct {
	db  *sqlx.DB
	log logger.Logger
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{db: db, log: log}
}

// InsertTx schedules a message inside the caller's transaction. This is the
// outbox guarantee: the state change and the promise to emit an event commit
// or roll back together.
func (r *Repository) InsertTx(ctx context.Context, tx *sqlx.Tx, msg Message) error {
	const op = "outbox.Repository.InsertTx"

	const query = `INSERT INTO outbox (id, event_type, payload) VALUES ($1, $2, $3)`

	if _, err := tx.ExecContext(ctx, query, msg.ID, msg.EventType, msg.Payload); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: insert outbox message: %w", op, err)
	}

	return nil
}

// Unsent returns up to limit pending messages in creation order.
func (r *Repository) Unsent(ctx context.Context, limit int) ([]Message, error) {
	const op = "outbox.Repository.Unsent"

	const query = `
		SELECT id, event_type, payload, sent, created_at
			FROM outbox
			WHERE sent = FALSE
			ORDER BY created_at
			LIMIT $1`

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, limit); err != nil {
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: select unsent: %w", op, err)
	}

	return messages, nil
}

// MarkSent flips the sent flag for the given ids in one batch write.
func (r *Repository) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	const op = "outbox.Repository.MarkSent"

	if len(ids) == 0 {
		return nil
	}

	const query = `UPDATE outbox SET sent = TRUE WHERE id = ANY($1)`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: mark sent: %w", op, err)
	}

	return nil
}
