package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// maxSafeInteger is the largest integer a JSON consumer using IEEE-754
// doubles can represent exactly.
const maxSafeInteger = 1<<53 - 1

// BigInt carries a 64-bit database integer (bigserial ids, COUNT(*) results)
// up to the HTTP boundary. It marshals as a JSON number when the value is
// exactly representable by a double and as a decimal string otherwise.
type BigInt int64

func (b BigInt) Int64() int64 {
	return int64(b)
}

// MarshalJSON implements json.Marshaler.
func (b BigInt) MarshalJSON() ([]byte, error) {
	v := int64(b)
	if v > maxSafeInteger || v < -maxSafeInteger {
		return []byte(strconv.Quote(strconv.FormatInt(v, 10))), nil
	}
	return []byte(strconv.FormatInt(v, 10)), nil
}

// UnmarshalJSON accepts both representations produced by MarshalJSON.
func (b *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid bigint string %s: %w", data, err)
		}
		data = []byte(unquoted)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bigint %s: %w", data, err)
	}
	*b = BigInt(v)
	return nil
}
