package registry

import (
	"bytes"
	"encoding/json"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Value holds an arbitrary JSON value. Clients send player numbers as strings
// or numbers and may omit fields entirely, so record fields keep whatever they
// were given, numbers digit for digit. The zero Value is JSON null.
//
// Two Values match when their keys are equal: numbers compare by exact
// numeric value (1 and 1.0 match, 2^53 and 2^53+1 do not), everything else by
// content.
type Value struct {
	raw string
	key string
}

func ValueOf(v any) Value {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}
	}
	var out Value
	if err := out.UnmarshalJSON(data); err != nil {
		return Value{}
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw == "" {
		return []byte("null"), nil
	}
	return []byte(v.raw), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := decodeJSON(data)
	if err != nil {
		return err
	}
	if decoded == nil {
		*v = Value{}
		return nil
	}
	compact, err := json.Marshal(decoded)
	if err != nil {
		return err
	}
	var key strings.Builder
	writeKey(&key, decoded)
	*v = Value{raw: string(compact), key: key.String()}
	return nil
}

func (v Value) IsNull() bool {
	return v.raw == ""
}

// Truthy reports whether the value counts as a yes: null, false, zero,
// empty strings and empty arrays or objects do not.
func (v Value) Truthy() bool {
	switch decoded := v.decode().(type) {
	case nil:
		return false
	case bool:
		return decoded
	case json.Number:
		return !isZeroNumber(decoded.String())
	case string:
		return decoded != ""
	case []any:
		return len(decoded) > 0
	case map[string]any:
		return len(decoded) > 0
	default:
		return true
	}
}

// String returns string contents unquoted and anything else as JSON text.
func (v Value) String() string {
	if v.raw == "" {
		return "null"
	}
	if text, ok := v.decode().(string); ok {
		return text
	}
	return v.raw
}

// Float returns the numeric value, if any.
func (v Value) Float() (float64, bool) {
	number, ok := v.decode().(json.Number)
	if !ok {
		return 0, false
	}
	f, err := number.Float64()
	return f, err == nil
}

func (v Value) decode() any {
	if v.raw == "" {
		return nil
	}
	decoded, err := decodeJSON([]byte(v.raw))
	if err != nil {
		return nil
	}
	return decoded
}

func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func writeKey(b *strings.Builder, decoded any) {
	switch value := decoded.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(value))
	case json.Number:
		b.WriteString("n:")
		b.WriteString(normalizeNumber(value.String()))
	case string:
		b.WriteString(strconv.Quote(value))
	case []any:
		b.WriteByte('[')
		for i, item := range value {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(value))
		for k := range value {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeKey(b, value[k])
		}
		b.WriteByte('}')
	}
}

// maxExponent bounds exact normalisation; big.Rat would otherwise expand
// literals such as 1e999999999 digit by digit.
const maxExponent = 400

// normalizeNumber returns a form in which equal numbers are equal strings.
func normalizeNumber(text string) string {
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		exp, err := strconv.Atoi(strings.TrimPrefix(text[i+1:], "+"))
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return text
		}
	}
	var rat big.Rat
	if _, ok := rat.SetString(text); !ok {
		return text
	}
	return rat.RatString()
}

func isZeroNumber(text string) bool {
	mantissa := text
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		mantissa = text[:i]
	}
	return !strings.ContainsAny(mantissa, "123456789")
}

func numberValue(n int) Value {
	var out Value
	_ = out.UnmarshalJSON([]byte(strconv.Itoa(n)))
	return out
}
