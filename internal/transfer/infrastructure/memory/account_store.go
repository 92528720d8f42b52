package memory

import (
	"context"
	"sync"

	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

// AccountStore keeps accounts in process memory. It hands out the same
// *domain.Account for an id on every lookup, so account locks are shared by
// all callers.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

func (s *AccountStore) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, &domain.UnknownAccountError{AccountID: accountID}
	}

	return account, nil
}

func (s *AccountStore) CreateAccount(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID()]; exists {
		return &domain.DuplicateAccountError{AccountID: account.ID()}
	}

	s.accounts[account.ID()] = account
	return nil
}

func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}

func (s *AccountStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.accounts)
}
