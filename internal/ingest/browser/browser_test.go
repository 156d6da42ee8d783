package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireNotNeeded(t *testing.T) {
	m := NewManager(DefaultConfig(), nil)

	h, err := m.Acquire(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, h)

	// a nil handle is safe to release
	h.Release()
}

func TestHandleReleaseIsIdempotent(t *testing.T) {
	calls := 0
	h := NewHandle(nil, func() { calls++ })

	h.Release()
	h.Release()
	h.Release()

	assert.Equal(t, 1, calls)
}

func TestNilHandleNewPage(t *testing.T) {
	var h *Handle
	_, err := h.NewPage(context.Background())
	assert.Error(t, err)
}
