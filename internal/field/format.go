package field

import (
	"fmt"
	"strconv"
)

//go:generate go tool stringer -type=Format -output=format_string.go

// Format selects how a field value is decoded and rendered.
type Format int

const (
	_ Format = iota // zero value is invalid

	FormatString
	FormatLiteral
	FormatHex
	FormatDecimal
	FormatBool
)

// Literal is a value rendered verbatim, without quotes.
type Literal string

// Python literals used as defaults.
const (
	None  Literal = "None"
	True  Literal = "True"
	False Literal = "False"
)

// Bool returns the literal spelling of b.
func Bool(b bool) Literal {
	if b {
		return True
	}

	return False
}

// Quoted returns true if values of this format are emitted inside quotes.
func (f Format) Quoted() bool {
	return f == FormatString
}

// Render returns the textual form of v, without quotes for FormatString.
func (f Format) Render(v any) (string, error) {
	switch f {
	case FormatString:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%s: expected string, got %T", f, v)
		}

		return s, nil

	case FormatLiteral:
		switch lit := v.(type) {
		case Literal:
			return string(lit), nil
		case bool:
			return string(Bool(lit)), nil
		case string:
			return lit, nil
		case nil:
			return string(None), nil
		default:
			return "", fmt.Errorf("%s: unsupported literal %T", f, v)
		}

	case FormatBool:
		switch b := v.(type) {
		case bool:
			return string(Bool(b)), nil
		case Literal:
			if b == True || b == False {
				return string(b), nil
			}
		}

		return "", fmt.Errorf("%s: expected a boolean, got %v", f, v)

	case FormatHex:
		n, err := toInt64(v)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f, err)
		}

		if n < 0 {
			return "", fmt.Errorf("%s: negative value %d", f, n)
		}

		return fmt.Sprintf("0x%02X", n), nil

	case FormatDecimal:
		n, err := toInt64(v)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f, err)
		}

		return strconv.FormatInt(n, 10), nil

	default:
		return "", fmt.Errorf("unknown format %s", f)
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}
