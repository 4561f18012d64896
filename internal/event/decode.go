package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as a T. In-process events already carry
// the struct; payloads replayed from the dead-letter file arrive as generic
// JSON maps and are re-decoded.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}

	var out T
	raw, ok := input.(json.RawMessage)
	if !ok {
		var err error
		if raw, err = json.Marshal(input); err != nil {
			return out, fmt.Errorf("failed to encode payload: %w", err)
		}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode payload as %T: %w", out, err)
	}
	return out, nil
}
