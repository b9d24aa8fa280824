package store

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaker_PassesThroughSuccess(t *testing.T) {
	b := NewBreaker("test")

	calls := 0
	err := b.Do(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "closed", b.State())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker("test")
	dbDown := errors.New("connection refused")

	for i := 0; i < 3; i++ {
		err := b.Do(func() error { return dbDown })
		assert.ErrorIs(t, err, dbDown)
	}
	assert.Equal(t, "open", b.State())

	// While open, calls short-circuit without invoking the operation.
	calls := 0
	err := b.Do(func() error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 0, calls)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker("test")
	dbDown := errors.New("connection refused")

	_ = b.Do(func() error { return dbDown })
	_ = b.Do(func() error { return dbDown })
	require.NoError(t, b.Do(func() error { return nil }))
	_ = b.Do(func() error { return dbDown })
	_ = b.Do(func() error { return dbDown })

	assert.Equal(t, "closed", b.State())
}
