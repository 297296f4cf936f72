package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCursor is returned for tokens that cannot be decoded.
var ErrInvalidCursor = errors.New("invalid pagination token")

// Cursor is the opaque keyset pagination state for lists ordered by
// (created_at DESC, id DESC). CreatedMicro keeps full timestamptz precision.
type Cursor struct {
	CreatedMicro int64     `json:"created_micro"`
	ID           uuid.UUID `json:"id"`
}

// After builds the cursor pointing past the given row.
func After(createdAt time.Time, id uuid.UUID) Cursor {
	return Cursor{CreatedMicro: createdAt.UnixMicro(), ID: id}
}

// CreatedAt returns the cursor timestamp.
func (c Cursor) CreatedAt() time.Time {
	return time.UnixMicro(c.CreatedMicro).UTC()
}

// IsZero reports whether the cursor points at the first page.
func (c Cursor) IsZero() bool {
	return c.CreatedMicro == 0 && c.ID == uuid.Nil
}

// Encode converts a Cursor into a URL-safe Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
