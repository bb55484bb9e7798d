package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Money is the single numeric type used for every monetary field in the
// system: costs, prices, payment and expense amounts, and report totals.
// Values are plain base-currency units, never pre-formatted.
//
// Upstream records occasionally deliver amounts as quoted strings; the
// coercion happens here, at the JSON ingestion edge, so the join and
// aggregation logic only ever sees numbers.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid money value %s: %w", raw, err)
		}
		unquoted = strings.TrimSpace(unquoted)
		if unquoted == "" {
			*m = 0
			return nil
		}
		raw = unquoted
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", raw, err)
	}
	*m = Money(value)
	return nil
}
