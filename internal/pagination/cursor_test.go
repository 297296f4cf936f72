package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	token, err := Encode(After(createdAt, id))
	require.NoError(t, err)
	assert.NotContains(t, token, "=")

	c, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.True(t, createdAt.Equal(c.CreatedAt()))
	assert.False(t, c.IsZero())
}

func TestDecode_Empty(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestDecode_Invalid(t *testing.T) {
	for _, token := range []string{"%%%", "bm90LWpzb24"} {
		_, err := Decode(token)
		assert.ErrorIs(t, err, ErrInvalidCursor, token)
	}
}
