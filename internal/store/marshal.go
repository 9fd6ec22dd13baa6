package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// marshalList converts a size or color list to JSON TEXT.
// HTML escaping is disabled so that values like "Black & White" are stored
// as written.
func marshalList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	// Encoder adds a trailing newline
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalList parses JSON TEXT to a list. Empty text is an empty list.
func unmarshalList(data string) ([]string, error) {
	values := []string{}
	if data == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	return values, nil
}

// unmarshalMoney parses decimal TEXT.
func unmarshalMoney(column, data string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(data)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unmarshal %s: %w", column, err)
	}
	return d, nil
}
