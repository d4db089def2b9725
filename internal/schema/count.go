package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Count is an integer form field that tolerates malformed input. Household
// and quantity fields clamp unparseable or below-floor values to the field's
// floor instead of rejecting the submission.
type Count struct {
	Value int
	Valid bool
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else
// leaves the count unset; Or later resolves unset values to the floor.
func (c *Count) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		c.Value, c.Valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			c.Value, c.Valid = n, true
		}
	}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value)
}

// Or resolves the count against its floor: unset or below-floor values
// become the floor.
func (c Count) Or(floor int) int {
	if !c.Valid || c.Value < floor {
		return floor
	}
	return c.Value
}

// ParseCount parses a free-text count with the same clamping rules.
func ParseCount(raw string, floor int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < floor {
		return floor
	}
	return n
}
