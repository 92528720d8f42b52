package domain

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

var ErrLockNotHeld = errors.New("account lock is not held")

// Account is a balance holder guarded by its own exclusive lock. The balance
// may only be read or changed through the Lease returned by TryLock.
type Account struct {
	id      string
	balance decimal.Decimal

	lock   *semaphore.Weighted
	holder atomic.Pointer[Lease]
}

type AccountSnapshot struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

func NewAccount(id string, balance decimal.Decimal) *Account {
	return &Account{
		id:      id,
		balance: balance,
		lock:    semaphore.NewWeighted(1),
	}
}

func (a *Account) ID() string {
	return a.id
}

// Balance is only safe once every mutator is known to have finished. Use
// Lease.Balance while transfers may be running.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// TryLock makes up to policy.MaxAttempts attempts to take the lock, each
// waiting at most policy.AttemptTimeout, sleeping policy.RetryDelay between
// attempts. It returns a nil lease when every attempt timed out and a
// CancelledError when ctx ends first.
func (a *Account) TryLock(ctx context.Context, policy LockPolicy) (*Lease, error) {
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		lease, err := a.tryLockOnce(ctx, policy.AttemptTimeout)
		if err != nil || lease != nil {
			return lease, err
		}

		if attempt == policy.MaxAttempts {
			break
		}

		if err := sleepWithContext(ctx, policy.RetryDelay); err != nil {
			return nil, &CancelledError{AccountID: a.id, Cause: err}
		}
	}

	return nil, nil
}

func (a *Account) Locked() bool {
	return a.holder.Load() != nil
}

func (a *Account) tryLockOnce(ctx context.Context, timeout time.Duration) (*Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, &CancelledError{AccountID: a.id, Cause: err}
	}

	if a.lock.TryAcquire(1) {
		return a.grant(), nil
	}

	if timeout <= 0 {
		return nil, nil
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.lock.Acquire(attemptCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &CancelledError{AccountID: a.id, Cause: ctxErr}
		}

		return nil, nil
	}

	return a.grant(), nil
}

func (a *Account) grant() *Lease {
	lease := &Lease{account: a}
	a.holder.Store(lease)
	return lease
}

// Lease is the capability of the current lock holder. It stops working as
// soon as it is released, so a stale or foreign lease can neither release the
// lock nor touch the balance.
type Lease struct {
	account *Account
}

func (l *Lease) Account() *Account {
	return l.account
}

// Release gives the lock back. Releasing more than once is a no-op.
func (l *Lease) Release() {
	if l.account.holder.CompareAndSwap(l, nil) {
		l.account.lock.Release(1)
	}
}

func (l *Lease) Held() bool {
	return l.account.holder.Load() == l
}

func (l *Lease) Balance() (decimal.Decimal, error) {
	if !l.Held() {
		return decimal.Zero, ErrLockNotHeld
	}

	return l.account.balance, nil
}

func (l *Lease) Snapshot() (AccountSnapshot, error) {
	if !l.Held() {
		return AccountSnapshot{}, ErrLockNotHeld
	}

	return AccountSnapshot{
		AccountID: l.account.id,
		Balance:   l.account.balance,
	}, nil
}

func (l *Lease) Withdraw(amount decimal.Decimal) error {
	if !l.Held() {
		return ErrLockNotHeld
	}

	a := l.account
	if a.balance.LessThan(amount) {
		return &InsufficientFundsError{
			AccountID: a.id,
			Attempted: amount,
			Available: a.balance,
		}
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (l *Lease) Deposit(amount decimal.Decimal) error {
	if !l.Held() {
		return ErrLockNotHeld
	}

	l.account.balance = l.account.balance.Add(amount)
	return nil
}

func sleepWithContext(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
