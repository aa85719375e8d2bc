package display

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount *float64
		want   string
	}{
		{"nil is a placeholder", nil, "-"},
		{"zero is formatted", ptr(0), "$0.00"},
		{"cents are padded", ptr(12.5), "$12.50"},
		{"thousands are grouped", ptr(1234.5), "$1,234.50"},
		{"negative", ptr(-5), "-$5.00"},
		{"rounded to cents", ptr(19.999), "$20.00"},
		{"half cent rounds up", ptr(0.125), "$0.13"},
		{"negative half cent rounds away from zero", ptr(-0.125), "-$0.13"},
		{"half cent on an even digit rounds up", ptr(2.345), "$2.35"},
		{"millions", ptr(1234567.891), "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestDate(t *testing.T) {
	edmonton, err := time.LoadLocation("America/Edmonton")
	require.NoError(t, err)
	f := Formatter{Location: edmonton}

	tests := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"2024-01-15", "2024-01-15"},
		{"2024-01-15T10:30:00", "2024-01-15"},
		// 03:00 UTC is still the previous evening in Edmonton.
		{"2024-01-15T03:00:00Z", "2024-01-14"},
		{"2024-01-15 18:00:00+00", "2024-01-15"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Date(tt.in))
		})
	}
}

func TestDate_DateOnlyNeverShifts(t *testing.T) {
	for _, name := range []string{"UTC", "America/Edmonton", "Pacific/Auckland"} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", Formatter{Location: loc}.Date("2024-01-15"), name)
	}
}

func TestTime(t *testing.T) {
	f := Formatter{Location: time.UTC}

	assert.Equal(t, "", f.Time(""), "absent time renders as empty string")
	assert.Equal(t, "09:05 a.m.", f.Time("2024-01-15T09:05:00Z"))
	assert.Equal(t, "02:30 p.m.", f.Time("2024-01-15T14:30:00Z"))
	assert.Equal(t, "12:00 p.m.", f.Time("2024-01-15T12:00:00Z"))
	assert.Equal(t, "12:15 a.m.", f.Time("2024-01-15T00:15:00Z"))
}

func TestDateTime(t *testing.T) {
	f := Formatter{Location: time.UTC}

	assert.Equal(t, "-", f.DateTime(""))
	assert.Equal(t, "2024-01-15 02:30 p.m.", f.DateTime("2024-01-15T14:30:00.123456+00:00"))
	assert.Equal(t, "garbage", f.DateTime("garbage"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindText, k)

	k, err = ParseKind("currency")
	require.NoError(t, err)
	assert.Equal(t, KindCurrency, k)

	_, err = ParseKind("money")
	assert.Error(t, err)
}

func TestValue(t *testing.T) {
	f := Formatter{Location: time.UTC}

	tests := []struct {
		name string
		v    any
		kind Kind
		want string
	}{
		{"nil text", nil, KindText, "-"},
		{"empty text", "", KindText, "-"},
		{"string", "INV-1001", KindText, "INV-1001"},
		{"integer float", float64(42), KindText, "42"},
		{"json number", json.Number("7.25"), KindText, "7.25"},
		{"bool", true, KindText, "Yes"},
		{"object", map[string]any{"a": float64(1)}, KindText, `{"a":1}`},
		{"currency float", 1234.5, KindCurrency, "$1,234.50"},
		{"currency string", "10", KindCurrency, "$10.00"},
		{"currency nil", nil, KindCurrency, "-"},
		{"currency non-numeric", "n/a", KindCurrency, "n/a"},
		{"date", "2024-01-15T14:30:00Z", KindDate, "2024-01-15"},
		{"date nil", nil, KindDate, "-"},
		{"time nil", nil, KindTime, ""},
		{"datetime", "2024-01-15T14:30:00Z", KindDateTime, "2024-01-15 02:30 p.m."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Value(tt.v, tt.kind))
		})
	}
}
