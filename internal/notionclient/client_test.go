package notionclient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapMapsDeadlineToTimeout(t *testing.T) {
	c := New("token", 3*time.Second)

	err := c.wrap("page create", context.DeadlineExceeded)
	require.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "page create")
	assert.Contains(t, err.Error(), "3s", "the configured bound is reported")

	// SDK errors arrive with the deadline buried in a wrap chain.
	err = c.wrap("append children", fmt.Errorf("do request: %w", context.DeadlineExceeded))
	require.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "append children")
}

func TestWrapPassesThroughOtherErrors(t *testing.T) {
	c := New("token", time.Second)
	cause := errors.New("unauthorized")

	err := c.wrap("database lookup", cause)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "database lookup")
}

func TestNewFallsBackToDefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New("token", 0).timeout)
	assert.Equal(t, DefaultTimeout, New("token", -time.Second).timeout)
	assert.Equal(t, 5*time.Second, New("token", 5*time.Second).timeout)
}
