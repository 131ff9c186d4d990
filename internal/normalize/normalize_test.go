package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"trims and collapses", "  a   b \t c ", "a b c", true},
		{"plain", "Glargine Cartridge", "Glargine Cartridge", true},
		{"blank", "", "", false},
		{"whitespace only", "   \t ", "", false},
		{"nan text", "nan", "", false},
		{"NaN text", "NaN", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Text(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextNeverLeavesPadding(t *testing.T) {
	inputs := []string{" x ", "x  y", "\tx\ny\t", "a     b"}
	for _, in := range inputs {
		got, ok := Text(in)
		assert.True(t, ok)
		assert.NotContains(t, got, "  ")
		assert.Equal(t, got, trimAsserted(got))
	}
}

func trimAsserted(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return "<padded>"
	}
	return s
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"strips punctuation", " AB-12_34 ", "AB1234", true},
		{"already clean", "800004403", "800004403", true},
		{"symbols only", "--__--", "", false},
		{"blank", "", "", false},
		{"nan", "nan", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Code(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"collapses underscore runs", "A__B___C_", "A_B_C", true},
		{"trims components", " A _ B ", "A_B", true},
		{"single component", "Glargine", "Glargine", true},
		{"blank", "", "", false},
		{"underscores only", "___", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Model(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidQty(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"3.5", true},
		{" 12 ", true},
		{"0", false},
		{"0.0", false},
		{"-5", false},
		{"nan", false},
		{"", false},
		{"  ", false},
		{"abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidQty(tt.in))
		})
	}
}

func TestQty(t *testing.T) {
	assert.Equal(t, 3.5, Qty("3.5"))
	assert.Equal(t, 0.0, Qty("-5"))
	assert.Equal(t, 0.0, Qty(""))
	assert.Equal(t, 0.0, Qty("abc"))
}

func TestFloat(t *testing.T) {
	if v := Float("2.25"); assert.NotNil(t, v) {
		assert.Equal(t, 2.25, *v)
	}
	assert.Nil(t, Float(""))
	assert.Nil(t, Float("nan"))
	assert.Nil(t, Float("n/a"))
}
