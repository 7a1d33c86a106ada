package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{[]byte("xyz"), "xyz"},
		{json.Number("12345678901234567"), "12345678901234567"},
		{42, "42"},
		{int64(-3), "-3"},
		{true, "true"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToString(tt.in))
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 7, ToInt("7"))
	assert.Equal(t, 7, ToInt(json.Number("7")))
	assert.Equal(t, 2, ToInt(json.Number("2.9")))
	assert.Equal(t, 3, ToInt(uint8(3)))
	assert.Equal(t, 0, ToInt("nope"))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{1, true},
		{json.Number("1"), true},
		{"0", false},
		{"yes", false},
		{0, false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBool(tt.in), "%v", tt.in)
	}
}
