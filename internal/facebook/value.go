package facebook

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rivo/uniseg"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

// DefaultCurrency is used when a payload names no currency.
const DefaultCurrency = "USD"

// isNumeric reports whether v is sent to App Events as a number.
// Booleans count, matching how the SDK treats them.
func isNumeric(v any) bool {
	switch v.(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// ValueToSum reads properties[key] as an amount. Numbers and booleans convert
// directly, strings are parsed; anything else, including an unparsable
// string, counts as missing.
func ValueToSum(properties map[string]any, key string) (float64, bool) {
	v, ok := properties[key]
	if !ok {
		return 0, false
	}
	if _, isString := v.(string); !isString && !isNumeric(v) {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Currency returns the described value of the first property whose key
// matches key ignoring case, or DefaultCurrency.
func Currency(properties map[string]any, key string) string {
	fold := cases.Fold()
	want := fold.String(key)
	for k, v := range properties {
		if fold.String(k) == want {
			return Describe(v)
		}
	}
	return DefaultCurrency
}

// Describe renders a property value as a parameter string:
//
//	nil            "<null>"
//	string         unchanged
//	bool           "true" / "false"
//	integers       base 10
//	floats         shortest representation that round-trips
//	json.Number    its literal
//	fmt.Stringer   String()
//	maps, slices   JSON
//	anything else  fmt.Sprint
func Describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "<null>"
	case string:
		return t
	case json.Number:
		return t.String()
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToString(t)
	case fmt.Stringer:
		return t.String()
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

// truncate keeps the first n user-perceived characters of s.
func truncate(s string, n int) string {
	rest := s
	state := -1
	for i := 0; i < n && rest != ""; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)]
}
