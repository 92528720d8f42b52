package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/database"
	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/shopspring/decimal"
)

// AccountsLoader seeds an account store from the accounts table. Balances are
// read as text to keep their exact decimal value.
type AccountsLoader struct {
	querier database.Querier
	logger  logging.Logger
}

func NewAccountsLoader(querier database.Querier, logger logging.Logger) *AccountsLoader {
	return &AccountsLoader{
		querier: querier,
		logger:  logger,
	}
}

// LoadInto returns the number of accounts created in store. Accounts already
// present in store are skipped.
func (l *AccountsLoader) LoadInto(ctx context.Context, store domain.AccountStore) (int, error) {
	sql := `SELECT account_id, balance::text FROM accounts ORDER BY account_id`

	rows, err := l.querier.Query(ctx, sql)
	if err != nil {
		return 0, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var accountID, rawBalance string
		if err := rows.Scan(&accountID, &rawBalance); err != nil {
			return loaded, fmt.Errorf("failed to scan account: %w", err)
		}

		balance, err := decimal.NewFromString(rawBalance)
		if err != nil {
			return loaded, fmt.Errorf("invalid balance %q for account %s: %w", rawBalance, accountID, err)
		}

		err = store.CreateAccount(ctx, domain.NewAccount(accountID, balance))
		if err != nil {
			if errors.Is(err, &domain.DuplicateAccountError{}) {
				l.logger.Warn("account already loaded, skipping", "account_id", accountID)
				continue
			}

			return loaded, err
		}

		loaded++
	}

	if err := rows.Err(); err != nil {
		return loaded, fmt.Errorf("failed to read accounts: %w", err)
	}

	l.logger.Info("accounts loaded from database", "count", loaded)

	return loaded, nil
}
