package display

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind selects how a decoded JSON value is displayed.
type Kind string

// Supported kinds.
const (
	KindText     Kind = "text"
	KindCurrency Kind = "currency"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindDateTime Kind = "datetime"
)

// ParseKind validates a kind name. The empty string means KindText.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case "":
		return KindText, nil
	case KindText, KindCurrency, KindDate, KindTime, KindDateTime:
		return k, nil
	default:
		return "", fmt.Errorf("unknown display format %q (want text, currency, date, time or datetime)", s)
	}
}

// Value formats one decoded JSON value with the Default formatter.
func Value(v any, kind Kind) string {
	return Default.Value(v, kind)
}

// Value formats one decoded JSON value (as produced by encoding/json into
// an any) according to kind.
func (f Formatter) Value(v any, kind Kind) string {
	switch kind {
	case KindCurrency:
		if v == nil {
			return Placeholder
		}
		if amount, ok := toFloat(v); ok {
			return formatCAD(amount)
		}
		return Text(v)
	case KindDate:
		return f.Date(stringOf(v))
	case KindTime:
		return f.Time(stringOf(v))
	case KindDateTime:
		return f.DateTime(stringOf(v))
	default:
		return Text(v)
	}
}

// Text renders a decoded JSON value as plain text. nil and "" become
// Placeholder.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return Placeholder
	case string:
		if x == "" {
			return Placeholder
		}
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case []any, map[string]any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
