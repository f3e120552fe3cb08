package pagination

import (
	"fmt"
	"strconv"
)

// Cursor marks a position in a set ordered by an integer primary key.
// On the wire it is the stringified key.
type Cursor int64

func (c Cursor) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func (c Cursor) Encode() *string {
	s := c.String()
	return &s
}

// Decode parses an encoded cursor. A nil or empty input yields a nil cursor.
func Decode(s *string) (*Cursor, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCursor, *s)
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: %q must be positive", ErrInvalidCursor, *s)
	}
	c := Cursor(id)
	return &c, nil
}
