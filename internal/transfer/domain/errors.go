package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InvalidAmountError

type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("Amount must be greater than zero, got %s", e.Amount)
}

func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

//endregion

//region UnknownAccountError

type UnknownAccountError struct {
	AccountID string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("Account not found for id %s", e.AccountID)
}

func (e *UnknownAccountError) Is(target error) bool {
	_, ok := target.(*UnknownAccountError)
	return ok
}

//endregion

//region DuplicateAccountError

type DuplicateAccountError struct {
	AccountID string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("Account id %s already exists!", e.AccountID)
}

func (e *DuplicateAccountError) Is(target error) bool {
	_, ok := target.(*DuplicateAccountError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	AccountID string
	Attempted decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds: attempted to withdraw %s, but balance is %s", e.Attempted, e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region LockContentionError

type LockContentionError struct {
	AccountID string
	Attempts  int
}

func (e *LockContentionError) Error() string {
	return fmt.Sprintf("Failed to acquire lock on account %s after %d attempts", e.AccountID, e.Attempts)
}

func (e *LockContentionError) Is(target error) bool {
	_, ok := target.(*LockContentionError)
	return ok
}

//endregion

//region CancelledError

type CancelledError struct {
	AccountID string
	Cause     error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("Lock acquisition on account %s was cancelled: %v", e.AccountID, e.Cause)
}

func (e *CancelledError) Is(target error) bool {
	_, ok := target.(*CancelledError)
	return ok
}

func (e *CancelledError) Unwrap() error {
	return e.Cause
}

//endregion
