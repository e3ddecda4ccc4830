package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text holds a backend value that may arrive as a string, a number, a
// boolean or null. A customer's age is stored as an int but defaults to the
// string "N/A".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	// numbers and booleans keep their literal form
	*t = Text(b)
	return nil
}

func (t Text) String() string { return string(t) }

func (t Text) IsEmpty() bool { return strings.TrimSpace(string(t)) == "" }

// Int holds a count that may arrive as a number, a numeric string or null.
type Int int

func (n *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*n = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	*n = Int(math.Trunc(f))
	return nil
}

func (n Int) Int() int { return int(n) }
