package application

import (
	"testing"
	"time"

	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAccounts(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("acc-1", decimal.Zero)
	b := domain.NewAccount("acc-2", decimal.Zero)

	type testCase struct {
		name           string
		left, right    *domain.Account
		expectedFirst  *domain.Account
		expectedSecond *domain.Account
	}

	tests := []testCase{
		{name: "already ordered", left: a, right: b, expectedFirst: a, expectedSecond: b},
		{name: "reversed", left: b, right: a, expectedFirst: a, expectedSecond: b},
		{name: "same account", left: a, right: a, expectedFirst: a, expectedSecond: nil},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, second := orderAccounts(tt.left, tt.right)
			assert.Same(t, tt.expectedFirst, first)
			if tt.expectedSecond == nil {
				assert.Nil(t, second)
			} else {
				assert.Same(t, tt.expectedSecond, second)
			}
		})
	}
}

func TestLockCoordinator_LockPair(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("A", decimal.Zero)
	b := domain.NewAccount("B", decimal.Zero)
	coordinator := NewLockCoordinator(domain.DefaultLockPolicy())

	locks, err := coordinator.LockPair(t.Context(), b, a)
	require.NoError(t, err)
	assert.True(t, a.Locked())
	assert.True(t, b.Locked())

	assert.True(t, locks.Lease(a).Held())
	assert.True(t, locks.Lease(b).Held())

	locks.Release()
	assert.False(t, a.Locked())
	assert.False(t, b.Locked())

	// Released leases are not handed back again.
	locks.Release()
	relocked, err := coordinator.LockPair(t.Context(), a, b)
	require.NoError(t, err)
	relocked.Release()
}

func TestLockCoordinator_LockPair_SameAccount(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("A", decimal.Zero)
	coordinator := NewLockCoordinator(domain.LockPolicy{MaxAttempts: 1})

	locks, err := coordinator.LockPair(t.Context(), a, a)
	require.NoError(t, err)
	assert.True(t, a.Locked())

	assert.Same(t, locks.Lease(a), locks.Lease(a))
	assert.Nil(t, locks.Lease(domain.NewAccount("B", decimal.Zero)))

	locks.Release()
	assert.False(t, a.Locked())
}

func TestLockCoordinator_LockPair_ReleasesFirstOnFailure(t *testing.T) {
	t.Parallel()

	a := domain.NewAccount("A", decimal.Zero)
	b := domain.NewAccount("B", decimal.Zero)

	holder, err := b.TryLock(t.Context(), domain.DefaultLockPolicy())
	require.NoError(t, err)
	require.NotNil(t, holder)

	coordinator := NewLockCoordinator(domain.LockPolicy{AttemptTimeout: 5 * time.Millisecond, MaxAttempts: 1})

	locks, err := coordinator.LockPair(t.Context(), b, a)
	assert.Nil(t, locks)
	assert.ErrorIs(t, err, &domain.LockContentionError{})
	assert.False(t, a.Locked())
	assert.True(t, b.Locked())

	holder.Release()
}

func TestLockCoordinator_WithLockedPair(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		fn        func(locks *HeldLocks) error
		expectErr error
		panics    bool
	}

	tests := []testCase{
		{
			name: "returns fn result",
			fn: func(_ *HeldLocks) error {
				return nil
			},
		},
		{
			name: "fn error",
			fn: func(_ *HeldLocks) error {
				return assert.AnError
			},
			expectErr: assert.AnError,
		},
		{
			name: "fn panics",
			fn: func(_ *HeldLocks) error {
				panic("boom")
			},
			panics: true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := domain.NewAccount("A", decimal.Zero)
			b := domain.NewAccount("B", decimal.Zero)
			coordinator := NewLockCoordinator(domain.LockPolicy{AttemptTimeout: 5 * time.Millisecond, MaxAttempts: 1})

			run := func() error {
				return coordinator.WithLockedPair(t.Context(), a, b, func(locks *HeldLocks) error {
					assert.True(t, a.Locked())
					assert.True(t, b.Locked())
					return tt.fn(locks)
				})
			}

			if tt.panics {
				assert.Panics(t, func() { _ = run() })
			} else {
				assert.ErrorIs(t, run(), tt.expectErr)
			}

			assert.False(t, a.Locked())
			assert.False(t, b.Locked())

			locks, err := coordinator.LockPair(t.Context(), a, b)
			require.NoError(t, err)
			locks.Release()
		})
	}
}
