package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestClientInputError(t *testing.T) {
	wrapped := fmt.Errorf("decode body: %w", domain.ErrInvalidJSON)

	assert.True(t, domain.IsClientInputError(wrapped))
	assert.False(t, domain.IsInternalError(wrapped))
	assert.ErrorIs(t, wrapped, domain.ErrInvalidJSON)
	assert.NotErrorIs(t, wrapped, domain.ErrNoDataProvided)

	var clientErr *domain.ClientInputError
	assert.True(t, errors.As(wrapped, &clientErr))
	assert.Equal(t, "Invalid JSON data", clientErr.Message)
}

func TestInternalError(t *testing.T) {
	cause := errors.New("boom")
	err := domain.NewInternalError(cause)

	assert.True(t, domain.IsInternalError(err))
	assert.False(t, domain.IsClientInputError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())

	assert.Equal(t, "bad value 3", domain.NewInternalErrorf("bad value %d", 3).Error())
	assert.Equal(t, "internal error", (&domain.InternalError{}).Error())
	assert.False(t, domain.IsInternalError(nil))
	assert.False(t, domain.IsClientInputError(nil))
}
