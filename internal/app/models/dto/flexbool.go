package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexBool accepts a JSON boolean or the numbers 0 and 1. Older clients send
// is_hod as an integer flag.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool(v)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil && (n == 0 || n == 1) {
		*b = n == 1
		return nil
	}

	return fmt.Errorf("expected boolean or 0/1, got %s", string(data))
}
