package application

import (
	"context"

	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

// LockCoordinator takes the locks of two accounts in ascending account id
// order, so transfers between the same pair in opposite directions cannot
// deadlock.
type LockCoordinator struct {
	policy domain.LockPolicy
}

func NewLockCoordinator(policy domain.LockPolicy) *LockCoordinator {
	return &LockCoordinator{
		policy: policy,
	}
}

func (lc *LockCoordinator) Policy() domain.LockPolicy {
	return lc.policy
}

// HeldLocks holds the leases the current caller acquired. Release gives back
// exactly those and is safe to call more than once.
type HeldLocks struct {
	leases [2]*domain.Lease
}

// LockPair locks both accounts, or a single lock when both ids are equal. On
// failure every lock taken by this call has been released before returning.
func (lc *LockCoordinator) LockPair(ctx context.Context, a, b *domain.Account) (*HeldLocks, error) {
	first, second := orderAccounts(a, b)
	locks := &HeldLocks{}

	if err := locks.acquire(ctx, 0, first, lc.policy); err != nil {
		return nil, err
	}

	if second == nil {
		return locks, nil
	}

	if err := locks.acquire(ctx, 1, second, lc.policy); err != nil {
		locks.Release()
		return nil, err
	}

	return locks, nil
}

// WithLockedPair runs fn while both accounts are locked. The locks are
// released when fn returns, including when it panics.
func (lc *LockCoordinator) WithLockedPair(
	ctx context.Context,
	a, b *domain.Account,
	fn func(locks *HeldLocks) error,
) error {
	locks, err := lc.LockPair(ctx, a, b)
	if err != nil {
		return err
	}
	defer locks.Release()

	return fn(locks)
}

// Lease returns the lease held on account, or nil when this set does not
// hold it. Both sides of a self transfer share one lease.
func (h *HeldLocks) Lease(account *domain.Account) *domain.Lease {
	for _, lease := range h.leases {
		if lease != nil && lease.Account().ID() == account.ID() {
			return lease
		}
	}

	return nil
}

func (h *HeldLocks) Release() {
	for i := len(h.leases) - 1; i >= 0; i-- {
		if h.leases[i] != nil {
			h.leases[i].Release()
		}
	}
}

func (h *HeldLocks) acquire(ctx context.Context, slot int, account *domain.Account, policy domain.LockPolicy) error {
	lease, err := account.TryLock(ctx, policy)
	if err != nil {
		return err
	}

	if lease == nil {
		return &domain.LockContentionError{
			AccountID: account.ID(),
			Attempts:  policy.MaxAttempts,
		}
	}

	h.leases[slot] = lease

	return nil
}

// orderAccounts returns second == nil for a self transfer.
func orderAccounts(a, b *domain.Account) (first, second *domain.Account) {
	switch {
	case a.ID() == b.ID():
		return a, nil
	case a.ID() < b.ID():
		return a, b
	default:
		return b, a
	}
}
