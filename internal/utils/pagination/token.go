// Package pagination encodes keyset cursors for newest-first listings.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

var errMalformed = errors.New("malformed pagination token")

// Cursor is the sort key of the last row of a page: (at, created_at, id), all descending.
type Cursor struct {
	At        time.Time
	CreatedAt time.Time
	ID        string
}

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw := strings.Join([]string{c.At.UTC().Format(timeFormat), c.CreatedAt.UTC().Format(timeFormat), c.ID}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Cursor.Encode.
func DecodeCursor(token string) (Cursor, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	parts := strings.SplitN(string(decoded), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, errMalformed
	}

	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	return Cursor{At: at, CreatedAt: createdAt, ID: parts[2]}, nil
}
