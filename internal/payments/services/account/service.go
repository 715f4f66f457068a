package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daitlovv/gozon-shop/internal/payments/domain/models"
	"github.com/daitlovv/gozon-shop/pkg/logger"
)

type accountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	ByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}

type AccountService struct {
	log logger.Logger

	accountRepository accountRepository
}

func New(log logger.Logger, accountRepository accountRepository) *AccountService {
	return &AccountService{
		log:               log,
		accountRepository: accountRepository,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	const op = "services.account.CreateAccount"

	account := models.NewAccount(userID)

	if err := s.accountRepository.Create(ctx, account); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op, logger.String("account created for user", userID.String()))

	return account.ID, nil
}

func (s *AccountService) Deposit(
	ctx context.Context,
	userID uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	const op = "services.account.Deposit"

	account, err := s.accountRepository.ByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	if err = account.Deposit(amount); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.accountRepository.Update(ctx, account); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op,
		logger.String("user", userID.String()),
		logger.String("new balance", account.Balance.String()),
	)

	return account.Balance, nil
}

func (s *AccountService) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	const op = "services.account.Balance"

	account, err := s.accountRepository.ByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return account.Balance, nil
}
