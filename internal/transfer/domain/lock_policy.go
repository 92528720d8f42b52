package domain

import (
	"errors"
	"time"
)

const (
	DefaultLockAttemptTimeout = 100 * time.Millisecond
	DefaultLockMaxAttempts    = 3
	DefaultLockRetryDelay     = 100 * time.Millisecond

	maxLockAttempts = 1000
)

var (
	ErrLockAttemptsInvalid  = errors.New("lock attempts must be at least 1")
	ErrLockAttemptsExceeded = errors.New("lock attempts exceeds maximum")
	ErrLockTimeoutNegative  = errors.New("lock attempt timeout cannot be negative")
	ErrLockDelayNegative    = errors.New("lock retry delay cannot be negative")
)

// LockPolicy bounds account lock acquisition. The worst case wait is
// MaxAttempts * (AttemptTimeout + RetryDelay).
type LockPolicy struct {
	AttemptTimeout time.Duration
	MaxAttempts    int
	RetryDelay     time.Duration
}

func DefaultLockPolicy() LockPolicy {
	return LockPolicy{
		AttemptTimeout: DefaultLockAttemptTimeout,
		MaxAttempts:    DefaultLockMaxAttempts,
		RetryDelay:     DefaultLockRetryDelay,
	}
}

func (p LockPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return ErrLockAttemptsInvalid
	}

	if p.MaxAttempts > maxLockAttempts {
		return ErrLockAttemptsExceeded
	}

	if p.AttemptTimeout < 0 {
		return ErrLockTimeoutNegative
	}

	if p.RetryDelay < 0 {
		return ErrLockDelayNegative
	}

	return nil
}

func (p LockPolicy) MaxWait() time.Duration {
	return time.Duration(p.MaxAttempts) * (p.AttemptTimeout + p.RetryDelay)
}
