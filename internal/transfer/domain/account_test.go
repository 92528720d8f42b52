package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() LockPolicy {
	return LockPolicy{
		AttemptTimeout: 10 * time.Millisecond,
		MaxAttempts:    3,
		RetryDelay:     5 * time.Millisecond,
	}
}

func mustLock(t *testing.T, account *Account, policy LockPolicy) *Lease {
	t.Helper()

	lease, err := account.TryLock(t.Context(), policy)
	require.NoError(t, err)
	require.NotNil(t, lease)

	return lease
}

func TestAccount_TryLockAndRelease(t *testing.T) {
	t.Parallel()

	account := NewAccount("001", decimal.RequireFromString("100.00"))

	lease := mustLock(t, account, fastPolicy())
	assert.True(t, account.Locked())
	assert.True(t, lease.Held())
	assert.Same(t, account, lease.Account())

	lease.Release()
	assert.False(t, account.Locked())
	assert.False(t, lease.Held())

	second := mustLock(t, account, fastPolicy())
	second.Release()
}

func TestLease_ReleaseTwiceIsNoop(t *testing.T) {
	t.Parallel()

	account := NewAccount("001", decimal.Zero)

	lease := mustLock(t, account, fastPolicy())
	lease.Release()
	lease.Release()

	first := mustLock(t, account, fastPolicy())
	defer first.Release()

	again, err := account.TryLock(t.Context(), LockPolicy{MaxAttempts: 1})
	require.NoError(t, err)
	assert.Nil(t, again, "double release must not free the lock twice")
}

func TestLease_NonHolderIsRejected(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		prepareFn func(t *testing.T, account *Account) (holder *Lease, other *Lease)
	}

	tests := []testCase{
		{
			name: "forged lease",
			prepareFn: func(t *testing.T, account *Account) (*Lease, *Lease) {
				return mustLock(t, account, fastPolicy()), &Lease{account: account}
			},
		},
		{
			name: "stale lease after re-acquisition",
			prepareFn: func(t *testing.T, account *Account) (*Lease, *Lease) {
				stale := mustLock(t, account, fastPolicy())
				stale.Release()
				return mustLock(t, account, fastPolicy()), stale
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := NewAccount("001", decimal.RequireFromString("50.00"))
			holder, other := tt.prepareFn(t, account)
			defer holder.Release()

			other.Release()
			assert.True(t, account.Locked())
			assert.True(t, holder.Held())

			assert.ErrorIs(t, other.Withdraw(decimal.RequireFromString("10")), ErrLockNotHeld)
			assert.ErrorIs(t, other.Deposit(decimal.RequireFromString("10")), ErrLockNotHeld)

			_, err := other.Balance()
			assert.ErrorIs(t, err, ErrLockNotHeld)
			_, err = other.Snapshot()
			assert.ErrorIs(t, err, ErrLockNotHeld)

			blocked, err := account.TryLock(t.Context(), LockPolicy{MaxAttempts: 1})
			require.NoError(t, err)
			assert.Nil(t, blocked)

			balance, err := holder.Balance()
			require.NoError(t, err)
			assert.Equal(t, "50", balance.String())
		})
	}
}

func TestAccount_TryLockGivesUpWithinBound(t *testing.T) {
	t.Parallel()

	account := NewAccount("001", decimal.Zero)
	policy := fastPolicy()

	holder := mustLock(t, account, policy)
	defer holder.Release()

	start := time.Now()
	lease, err := account.TryLock(t.Context(), policy)
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.Nil(t, lease)
	assert.GreaterOrEqual(t, elapsed, time.Duration(policy.MaxAttempts)*policy.AttemptTimeout)
	assert.Less(t, elapsed, policy.MaxWait()+time.Second)
}

func TestAccount_TryLockWaitsForRelease(t *testing.T) {
	t.Parallel()

	account := NewAccount("001", decimal.Zero)
	policy := LockPolicy{AttemptTimeout: time.Second, MaxAttempts: 1}

	holder := mustLock(t, account, policy)

	released := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		holder.Release()
		close(released)
	}()

	lease, err := account.TryLock(t.Context(), policy)
	require.NoError(t, err)
	require.NotNil(t, lease)

	<-released
	assert.True(t, lease.Held())
	lease.Release()
}

func TestAccount_TryLockCancelled(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		prepareFn func(t *testing.T) (context.Context, context.CancelFunc)
		expected  error
	}

	tests := []testCase{
		{
			name: "cancelled before first attempt",
			prepareFn: func(t *testing.T) (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(t.Context())
				cancel()
				return ctx, cancel
			},
			expected: context.Canceled,
		},
		{
			name: "cancelled while waiting",
			prepareFn: func(t *testing.T) (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(t.Context())
				time.AfterFunc(20*time.Millisecond, cancel)
				return ctx, cancel
			},
			expected: context.Canceled,
		},
		{
			name: "deadline while waiting",
			prepareFn: func(t *testing.T) (context.Context, context.CancelFunc) {
				return context.WithTimeout(t.Context(), 20*time.Millisecond)
			},
			expected: context.DeadlineExceeded,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := NewAccount("001", decimal.Zero)
			holder := mustLock(t, account, LockPolicy{MaxAttempts: 1})
			defer holder.Release()

			ctx, cancel := tt.prepareFn(t)
			defer cancel()

			policy := LockPolicy{AttemptTimeout: time.Second, MaxAttempts: 5, RetryDelay: 100 * time.Millisecond}
			lease, err := account.TryLock(ctx, policy)

			assert.Nil(t, lease)
			assert.ErrorIs(t, err, &CancelledError{})
			assert.ErrorIs(t, err, tt.expected)

			var cancelled *CancelledError
			require.True(t, errors.As(err, &cancelled))
			assert.Equal(t, "001", cancelled.AccountID)
		})
	}
}

func TestLease_WithdrawAndDeposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		balance  string
		withdraw string
		deposit  string
		release  bool

		expectedBalance string
		expectedErr     error
	}

	tests := []testCase{
		{
			name:            "withdraw then deposit",
			balance:         "100.00",
			withdraw:        "30.50",
			deposit:         "0.50",
			expectedBalance: "70.00",
		},
		{
			name:            "withdraw whole balance",
			balance:         "100.00",
			withdraw:        "100.00",
			deposit:         "0",
			expectedBalance: "0",
		},
		{
			name:            "insufficient funds",
			balance:         "10.00",
			withdraw:        "30.00",
			expectedBalance: "10.00",
			expectedErr:     &InsufficientFundsError{},
		},
		{
			name:            "mutation after release",
			balance:         "10.00",
			withdraw:        "1.00",
			release:         true,
			expectedBalance: "10.00",
			expectedErr:     ErrLockNotHeld,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := NewAccount("001", decimal.RequireFromString(tt.balance))
			lease := mustLock(t, account, fastPolicy())
			defer lease.Release()

			if tt.release {
				lease.Release()
			}

			err := lease.Withdraw(decimal.RequireFromString(tt.withdraw))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				require.NoError(t, lease.Deposit(decimal.RequireFromString(tt.deposit)))
			}

			assert.True(t, decimal.RequireFromString(tt.expectedBalance).Equal(account.Balance()),
				"expected %s, got %s", tt.expectedBalance, account.Balance())
		})
	}
}

func TestInsufficientFundsError_Details(t *testing.T) {
	t.Parallel()

	account := NewAccount("Source", decimal.RequireFromString("10.00"))
	lease := mustLock(t, account, fastPolicy())
	defer lease.Release()

	err := lease.Withdraw(decimal.RequireFromString("30.00"))

	var insufficient *InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "Source", insufficient.AccountID)
	assert.Equal(t, "30", insufficient.Attempted.String())
	assert.Equal(t, "10", insufficient.Available.String())
	assert.Equal(t, "Insufficient funds: attempted to withdraw 30, but balance is 10", err.Error())
}
