package reqid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, FromCtx(ctx))

	id := New()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, New())

	assert.Equal(t, id, FromCtx(WithValue(ctx, id)))
}
