package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/daitlovv/gozon-shop/internal/payments/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

const uniqueViolationCode = "23505"

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (r *Repository) Create(ctx context.Context, account *models.Account) error {
	const op = "repository.account.Create"

	const query = `INSERT INTO account (id, user_id, balance, version) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query,
		account.ID, account.UserID, account.Balance, account.Version,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return internalErrors.ErrAccountExists
		}
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: insert account: %w", op, err)
	}

	return nil
}

func (r *Repository) ByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	const op = "repository.account.ByUserID"

	const query = `SELECT id, user_id, balance, version FROM account WHERE user_id = $1`

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrAccountNotFound
		}
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &account, nil
}

// Update persists the account unconditionally. Deposits use it: account
// funding has a single writer, so no version guard is needed there.
func (r *Repository) Update(ctx context.Context, account *models.Account) error {
	const op = "repository.account.Update"

	const query = `UPDATE account SET balance = $1, version = $2 WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, account.Balance, account.Version, account.ID); err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

// ByUserIDTx reads the latest account row inside the caller's transaction.
func (r *Repository) ByUserIDTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Account, error) {
	const op = "repository.account.ByUserIDTx"

	const query = `SELECT id, user_id, balance, version FROM account WHERE user_id = $1`

	var account models.Account
	if err := tx.GetContext(ctx, &account, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrAccountNotFound
		}
		r.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &account, nil
}

// UpdateWithVersionTx is the optimistic write: it lands only if nobody else
// bumped the version since the caller's read. Zero affected rows means the
// caller lost the race and must re-read before trying again.
func (r *Repository) UpdateWithVersionTx(
	ctx context.Context,
	tx *sqlx.Tx,
	account *models.Account,
	expectedVersion int,
) error {
	const op = "repository.account.UpdateWithVersionTx"

	const query = `UPDATE account SET balance = $1, version = $2 WHERE id = $3 AND version = $4`

	res, err := tx.ExecContext(ctx, query, account.Balance, account.Version, account.ID, expectedVersion)
	if err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 0 {
		return internalErrors.ErrConcurrencyConflict
	}

	return nil
}
