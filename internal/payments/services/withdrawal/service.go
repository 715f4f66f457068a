package withdrawal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daitlovv/gozon-shop/internal/events"
	"github.com/daitlovv/gozon-shop/internal/payments/domain/models"
	internalErrors "github.com/daitlovv/gozon-shop/internal/payments/lib/errors"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

const maxAttempts = 3

type accountRepository interface {
	ByUserIDTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) (*models.Account, error)
	UpdateWithVersionTx(ctx context.Context, tx *sqlx.Tx, account *models.Account, expectedVersion int) error
}

// Result is the tagged outcome of a withdrawal attempt. Business failures
// travel in it as data; TryWithdraw never raises them as errors.
type Result struct {
	OrderID uuid.UUID
	Status  string
	Reason  string
}

type WithdrawalService struct {
	log logger.Logger

	accountRepository accountRepository
}

func New(log logger.Logger, accountRepository accountRepository) *WithdrawalService {
	return &WithdrawalService{
		log:               log,
		accountRepository: accountRepository,
	}
}

// TryWithdraw debits the user's account for the order. On a version race it
// re-reads the latest row and retries, up to 3 attempts in total. Insufficient
// funds returns immediately: retrying cannot change an outcome caused by the
// balance itself, only one caused by a stale version.
func (s *WithdrawalService) TryWithdraw(
	ctx context.Context,
	tx *sqlx.Tx,
	request events.PaymentRequest,
) Result {
	const op = "services.withdrawal.TryWithdraw"

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		account, err := s.accountRepository.ByUserIDTx(ctx, tx, request.UserID)
		if err != nil {
			if errors.Is(err, internalErrors.ErrAccountNotFound) {
				s.log.WarnContext(ctx, op, logger.String("no account for user", request.UserID.String()))
				return s.fail(request.OrderID, events.ReasonNoAccount)
			}
			s.log.Error(op, logger.Err(err))
			return s.fail(request.OrderID, events.ReasonInternalError)
		}

		expectedVersion := account.Version

		if err = account.Withdraw(request.Amount, expectedVersion); err != nil {
			switch {
			case errors.Is(err, internalErrors.ErrInvalidAmount):
				return s.fail(request.OrderID, events.ReasonInvalidAmount)
			case errors.Is(err, internalErrors.ErrInsufficientFunds):
				s.log.WarnContext(ctx, op,
					logger.String("not enough money for order", request.OrderID.String()),
					logger.String("balance", account.Balance.String()),
					logger.Int("attempt", attempt),
				)
				return s.fail(request.OrderID, events.ReasonNotEnoughMoney)
			default:
				s.log.Error(op, logger.Err(err))
				return s.fail(request.OrderID, events.ReasonInternalError)
			}
		}

		err = s.accountRepository.UpdateWithVersionTx(ctx, tx, account, expectedVersion)
		if err == nil {
			s.log.InfoContext(ctx, op,
				logger.String("withdrawn for order", request.OrderID.String()),
				logger.String("new balance", account.Balance.String()),
				logger.Int("attempt", attempt),
			)
			return Result{
				OrderID: request.OrderID,
				Status:  events.StatusSuccess,
				Reason:  events.ReasonOK,
			}
		}

		if !errors.Is(err, internalErrors.ErrConcurrencyConflict) {
			s.log.Error(op, logger.Err(err))
			return s.fail(request.OrderID, events.ReasonInternalError)
		}

		if attempt == maxAttempts {
			s.log.WarnContext(ctx, op,
				logger.String("version conflict for order", request.OrderID.String()),
				logger.Int("attempts", maxAttempts),
			)
			return s.fail(request.OrderID, events.ReasonConcurrencyConflict)
		}

		s.log.Debug(op,
			logger.String("version conflict, retrying order", request.OrderID.String()),
			logger.Int("next attempt", attempt+1),
		)
	}

	return s.fail(request.OrderID, events.ReasonMaxRetriesExceeded)
}

func (s *WithdrawalService) fail(orderID uuid.UUID, reason string) Result {
	return Result{
		OrderID: orderID,
		Status:  events.StatusFail,
		Reason:  reason,
	}
}
