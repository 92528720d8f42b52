package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransferCase struct {
	accountStore domain.AccountStore
	coordinator  *LockCoordinator
	notifier     domain.TransferNotifier
	logger       logging.Logger
}

func NewTransferCase(
	accountStore domain.AccountStore,
	coordinator *LockCoordinator,
	notifier domain.TransferNotifier,
	logger logging.Logger,
) *TransferCase {
	return &TransferCase{
		accountStore: accountStore,
		coordinator:  coordinator,
		notifier:     notifier,
		logger:       logger,
	}
}

// TransferFunds moves amount from the source to the destination account. The
// notification and the audit entry are emitted, in that order, only after
// both locks have been released on success.
func (tc *TransferCase) TransferFunds(
	ctx context.Context,
	sourceAccountID string,
	destinationAccountID string,
	amount decimal.Decimal,
) (domain.TransferReceipt, error) {
	if err := validateTransferAmount(amount); err != nil {
		return domain.TransferReceipt{}, err
	}

	source, err := tc.retrieveAccount(ctx, sourceAccountID)
	if err != nil {
		return domain.TransferReceipt{}, err
	}

	destination, err := tc.retrieveAccount(ctx, destinationAccountID)
	if err != nil {
		return domain.TransferReceipt{}, err
	}

	receipt, err := tc.ProcessTransaction(ctx, source, destination, amount)
	if err != nil {
		return domain.TransferReceipt{}, err
	}

	tc.notifyTransferCompletion(ctx, receipt)
	logTransferDetails(tc.logger, receipt)

	return receipt, nil
}

// ProcessTransaction locks both accounts and moves the funds without any
// side effects. A self transfer only checks that the balance covers amount.
func (tc *TransferCase) ProcessTransaction(
	ctx context.Context,
	source *domain.Account,
	destination *domain.Account,
	amount decimal.Decimal,
) (domain.TransferReceipt, error) {
	if err := validateTransferAmount(amount); err != nil {
		return domain.TransferReceipt{}, err
	}

	var receipt domain.TransferReceipt

	err := tc.coordinator.WithLockedPair(ctx, source, destination, func(locks *HeldLocks) error {
		sourceLease := locks.Lease(source)
		destinationLease := locks.Lease(destination)

		if err := performTransaction(sourceLease, destinationLease, amount); err != nil {
			return err
		}

		sourceSnapshot, err := sourceLease.Snapshot()
		if err != nil {
			return err
		}

		destinationSnapshot, err := destinationLease.Snapshot()
		if err != nil {
			return err
		}

		receipt = domain.TransferReceipt{
			TransferID:  uuid.New(),
			Amount:      amount,
			Source:      sourceSnapshot,
			Destination: destinationSnapshot,
		}

		return nil
	})
	if err != nil {
		return domain.TransferReceipt{}, err
	}

	return receipt, nil
}

func performTransaction(source, destination *domain.Lease, amount decimal.Decimal) error {
	if source == destination {
		balance, err := source.Balance()
		if err != nil {
			return err
		}

		if balance.LessThan(amount) {
			return &domain.InsufficientFundsError{
				AccountID: source.Account().ID(),
				Attempted: amount,
				Available: balance,
			}
		}

		return nil
	}

	if err := source.Withdraw(amount); err != nil {
		return err
	}

	if err := destination.Deposit(amount); err != nil {
		if rollbackErr := source.Deposit(amount); rollbackErr != nil {
			return fmt.Errorf("failed to restore source balance: %w", rollbackErr)
		}

		return fmt.Errorf("failed to credit destination account: %w", err)
	}

	return nil
}

func (tc *TransferCase) retrieveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := tc.accountStore.GetAccount(ctx, accountID)
	if err != nil {
		tc.logger.Warn("account lookup failed", "account_id", accountID, "error", err)
		return nil, err
	}

	return account, nil
}

func (tc *TransferCase) notifyTransferCompletion(ctx context.Context, receipt domain.TransferReceipt) {
	message := fmt.Sprintf("Successfully transferred %s from account %s to account %s",
		receipt.Amount, receipt.Source.AccountID, receipt.Destination.AccountID)

	// Post-commit delivery is not bound to the caller's lifetime.
	notifyCtx := context.WithoutCancel(ctx)

	err := tc.notifier.NotifyAboutTransfer(notifyCtx, receipt.Source, message)
	if err != nil {
		tc.logger.Warn("failed to send transfer notification",
			"transfer_id", receipt.TransferID.String(),
			"account_id", receipt.Source.AccountID,
			"error", err,
		)
	}
}

func validateTransferAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &domain.InvalidAmountError{Amount: amount}
	}

	return nil
}
