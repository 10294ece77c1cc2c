package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthChecker(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewHealthChecker(pingFunc(func(context.Context) error { return nil })).Healthy(ctx))
	assert.False(t, NewHealthChecker(pingFunc(func(context.Context) error { return errors.New("closed") })).Healthy(ctx))
	assert.False(t, NewHealthChecker(nil).Healthy(ctx))
}
