package application

import (
	"context"
	"strings"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/shopspring/decimal"
)

type AccountsCase struct {
	accountStore domain.AccountStore
	policy       domain.LockPolicy
	logger       logging.Logger
}

func NewAccountsCase(accountStore domain.AccountStore, policy domain.LockPolicy, logger logging.Logger) *AccountsCase {
	return &AccountsCase{
		accountStore: accountStore,
		policy:       policy,
		logger:       logger,
	}
}

func (ac *AccountsCase) CreateAccount(ctx context.Context, accountID string, initialBalance decimal.Decimal) (domain.AccountSnapshot, error) {
	if strings.TrimSpace(accountID) == "" {
		return domain.AccountSnapshot{}, &domain.InvalidArgumentsError{Msg: "Account id must not be empty."}
	}

	if initialBalance.IsNegative() {
		return domain.AccountSnapshot{}, &domain.InvalidArgumentsError{Msg: "Initial balance must be positive."}
	}

	account := domain.NewAccount(accountID, initialBalance)
	if err := ac.accountStore.CreateAccount(ctx, account); err != nil {
		return domain.AccountSnapshot{}, err
	}

	ac.logger.Info("account created", "account_id", accountID)

	return domain.AccountSnapshot{
		AccountID: accountID,
		Balance:   initialBalance,
	}, nil
}

// GetAccount reads the balance under the account lock so a concurrent
// transfer is never observed half way.
func (ac *AccountsCase) GetAccount(ctx context.Context, accountID string) (domain.AccountSnapshot, error) {
	account, err := ac.accountStore.GetAccount(ctx, accountID)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}

	lease, err := account.TryLock(ctx, ac.policy)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}

	if lease == nil {
		return domain.AccountSnapshot{}, &domain.LockContentionError{
			AccountID: accountID,
			Attempts:  ac.policy.MaxAttempts,
		}
	}
	defer lease.Release()

	return lease.Snapshot()
}
