package facebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToSum(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  float64
		found bool
	}{
		{"int", map[string]any{"price": 99}, 99, true},
		{"float", map[string]any{"price": 99.99}, 99.99, true},
		{"numeric string", map[string]any{"price": "123.45"}, 123.45, true},
		{"json number", map[string]any{"price": json.Number("12.5")}, 12.5, true},
		{"true", map[string]any{"price": true}, 1, true},
		{"false", map[string]any{"price": false}, 0, true},
		{"unparsable string", map[string]any{"price": "abc"}, 0, false},
		{"nil", map[string]any{"price": nil}, 0, false},
		{"map", map[string]any{"price": map[string]any{"amount": 1}}, 0, false},
		{"missing", map[string]any{}, 0, false},
		{"case sensitive", map[string]any{"PRICE": 10}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValueToSum(tt.props, "price")
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "EUR", Currency(map[string]any{"CURRENCY": "EUR"}, "currency"))
	assert.Equal(t, "GBP", Currency(map[string]any{"Currency": "GBP", "other": 1}, "currency"))
	assert.Equal(t, "USD", Currency(map[string]any{}, "currency"))
	assert.Equal(t, "USD", Currency(nil, "currency"))
	assert.Equal(t, "<null>", Currency(map[string]any{"currency": nil}, "currency"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "<null>"},
		{"text", "text"},
		{true, "true"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(3), "3"},
		{3.14, "3.14"},
		{float64(123), "123"},
		{float32(1.5), "1.5"},
		{json.Number("10.00"), "10.00"},
		{[]any{"a", 1.0}, `["a",1]`},
		{map[string]any{"k": "v"}, `{"k":"v"}`},
		{struct{ A int }{1}, "{1}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.in))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 40))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("", 2))
	// Combining marks stay with their base character.
	assert.Equal(t, "e\u0301a", truncate("e\u0301ab", 2))
	assert.Equal(t, "héllo", truncate("héllo wörld", 5))
}
