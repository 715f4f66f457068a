package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/daitlovv/gozon-shop/internal/orders/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/orders/lib/errors"
	"github.com/daitlovv/gozon-shop/internal/outbox"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type outboxInserter interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, msg outbox.Message) error
}

type Repository struct {
	log logger.Logger
	db  *sqlx.DB

	outboxRepository outboxInserter
}

func NewRepository(log logger.Logger, db *sqlx.DB, outboxRepository outboxInserter) *Repository {
	return &Repository{
		log:              log,
		db:               db,
		outboxRepository: outboxRepository,
	}
}

// CreateWithPaymentRequest writes the order row and its payment request
// outbox row in one transaction. Either both land or neither does; there is
// no state in which an order exists without a scheduled payment request.
func (r *Repository) CreateWithPaymentRequest(
	ctx context.Context,
	order *models.Order,
	msg outbox.Message,
) (err error) {
	const op = "repository.order.CreateWithPaymentRequest"

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				r.log.Error(op, logger.Err(rollBackErr))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	const orderQuery = `
		INSERT INTO "order" (id, user_id, amount, description, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.UserID, order.Amount, order.Description, order.Status, order.CreatedAt,
	); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: insert order: %w", op, err)
	}

	if err = r.outboxRepository.InsertTx(ctx, tx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// ExistsRecentDuplicate reports whether the user already created an order
// with the same amount and description after the given moment.
func (r *Repository) ExistsRecentDuplicate(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	createdAfter time.Time,
) (bool, error) {
	const op = "repository.order.ExistsRecentDuplicate"

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM "order"
				WHERE user_id = $1 AND amount = $2 AND description = $3 AND created_at > $4
		)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, amount, description, createdAfter); err != nil {
		r.log.Error(op, logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

func (r *Repository) ByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.ByID"

	const query = `
		SELECT id, user_id, amount, description, status, created_at
			FROM "order"
			WHERE id = $1`

	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrOrderNotFound
		}
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &order, nil
}

func (r *Repository) ByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	const op = "repository.order.ByUser"

	const query = `
		SELECT id, user_id, amount, description, status, created_at
			FROM "order"
			WHERE user_id = $1
			ORDER BY created_at DESC`

	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return orders, nil
}

// ByIDTx reads the order inside the caller's transaction. Used by the saga
// coordinator so the settlement read and write share one unit of atomicity.
func (r *Repository) ByIDTx(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.ByIDTx"

	const query = `
		SELECT id, user_id, amount, description, status, created_at
			FROM "order"
			WHERE id = $1
			FOR UPDATE`

	var order models.Order
	if err := tx.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrOrderNotFound
		}
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &order, nil
}

func (r *Repository) UpdateStatusTx(
	ctx context.Context,
	tx *sqlx.Tx,
	orderID uuid.UUID,
	status models.OrderStatus,
) error {
	const op = "repository.order.UpdateStatusTx"

	const query = `UPDATE "order" SET status = $1 WHERE id = $2`

	if _, err := tx.ExecContext(ctx, query, status, orderID); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}
