package request_id_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvenkateswarreddy/notes-backend/pkg/logger"
)

func TestNewRequestIDContext(t *testing.T) {
	t.Run("stores provided request ID in context", func(t *testing.T) {
		customID := "test-request-id-123"

		ctx := logger.NewRequestIDContext(context.Background(), customID)

		retrievedID, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, customID, retrievedID)
	})

	t.Run("generates new request ID when empty string provided", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		retrievedID, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, retrievedID)
	})

	t.Run("generates unique IDs for multiple calls", func(t *testing.T) {
		ctx1 := logger.NewRequestIDContext(context.Background(), "")
		ctx2 := logger.NewRequestIDContext(context.Background(), "")

		id1, ok1 := logger.GetRequestID(ctx1)
		require.True(t, ok1)

		id2, ok2 := logger.GetRequestID(ctx2)
		require.True(t, ok2)

		assert.NotEqual(t, id1, id2)
	})

	t.Run("most recent request ID wins in a chain", func(t *testing.T) {
		firstCtx := logger.NewRequestIDContext(context.Background(), "first-request-id")
		secondCtx := logger.NewRequestIDContext(firstCtx, "second-request-id")

		retrievedID, ok := logger.GetRequestID(secondCtx)
		assert.True(t, ok)
		assert.Equal(t, "second-request-id", retrievedID)
	})
}

func TestGetRequestID(t *testing.T) {
	t.Run("returns false for context without request ID", func(t *testing.T) {
		id, ok := logger.GetRequestID(context.Background())

		assert.False(t, ok)
		assert.Empty(t, id)
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("generates a valid UUID", func(t *testing.T) {
		id := logger.GenerateRequestID()

		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}
