package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../../../gen/mocks/transfer/domain.go -package=transfer . AccountStore,TransferNotifier,FundsTransferer,AccountsService

type AccountStore interface {
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	CreateAccount(ctx context.Context, account *Account) error
}

type TransferNotifier interface {
	NotifyAboutTransfer(ctx context.Context, account AccountSnapshot, message string) error
}

type FundsTransferer interface {
	TransferFunds(ctx context.Context, sourceAccountID, destinationAccountID string, amount decimal.Decimal) (TransferReceipt, error)
}

type AccountsService interface {
	CreateAccount(ctx context.Context, accountID string, initialBalance decimal.Decimal) (AccountSnapshot, error)
	GetAccount(ctx context.Context, accountID string) (AccountSnapshot, error)
}

// TransferReceipt holds post-transfer balances captured while both accounts
// were still locked.
type TransferReceipt struct {
	TransferID  uuid.UUID       `json:"transferId"`
	Amount      decimal.Decimal `json:"amount"`
	Source      AccountSnapshot `json:"sourceAccount"`
	Destination AccountSnapshot `json:"destinationAccount"`
}
