// Package decode provides JSON round-trip conversion between maps and structs.
package decode

import "encoding/json"

// FromMap converts a generic map into a typed value via JSON round-trip.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// ToMap converts a typed value into a generic map via JSON round-trip.
func ToMap[T any](value T) (map[string]any, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	err = json.Unmarshal(b, &result)
	return result, err
}
