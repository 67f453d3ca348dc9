package repository

import (
	"sync"

	"github.com/NeuralTrust/MailSlot/pkg/domain/email"
)

type emailStore struct {
	mu    sync.RWMutex
	value string
	set   bool
}

func NewEmailStore() email.Store {
	return &emailStore{}
}

func (s *emailStore) Set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.set = true
}

func (s *emailStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.set
}
