package contextutil_test

import (
	"context"
	"testing"

	"go-attendance/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	assert.Same(t, scoped, contextutil.GetLogger(contextutil.WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
