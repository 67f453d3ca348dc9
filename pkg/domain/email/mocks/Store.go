package mocks

import (
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (m *Store) Set(value string) {
	m.Called(value)
}

func (m *Store) Get() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}
