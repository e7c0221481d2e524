package storefake

import (
	"sync"

	"github.com/silvercloudhq/silvercloud-cli/credentials"
)

var _ credentials.Store = (*FakeStore)(nil)

// FakeStore is an in-memory credentials.Store for tests. Any of the error
// fields, when set, is returned by the corresponding operation without
// touching the stored value.
type FakeStore struct {
	lock  sync.RWMutex
	creds *credentials.Credentials

	SaveErr  error
	LoadErr  error
	ClearErr error
}

func New() *FakeStore {
	return &FakeStore{}
}

func (s *FakeStore) Save(creds credentials.Credentials) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.creds = &creds
	return nil
}

func (s *FakeStore) Load() (*credentials.Credentials, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.creds == nil || !s.creds.Complete() {
		return nil, nil
	}
	copied := *s.creds
	return &copied, nil
}

func (s *FakeStore) Clear() error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.creds = nil
	return nil
}
