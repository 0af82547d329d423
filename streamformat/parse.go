package streamformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue is wrapped by every error returned from Parse.
var ErrInvalidValue = errors.New("invalid stream format value")

const maxHexDigits = 16

// Parse reads a stream format written in hex, with or without a 0x prefix.
// Digits may be grouped with '_', '-', ':' or spaces, so the forms used by
// entity model dumps ("0x00A0_0208_4000_0800", "00-a0-02-08-40-00-08-00")
// are all accepted.
func Parse(s string) (Value, error) {
	digits := strings.TrimSpace(s)
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	digits = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ':', ' ':
			return -1
		}
		return r
	}, digits)

	if digits == "" {
		return 0, fmt.Errorf("streamformat: empty value %q: %w", s, ErrInvalidValue)
	}
	if len(digits) > maxHexDigits {
		return 0, fmt.Errorf("streamformat: %q has %d hex digits, want at most %d: %w",
			s, len(digits), maxHexDigits, ErrInvalidValue)
	}
	u, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("streamformat: parse %q: %w", s, errors.Join(ErrInvalidValue, err))
	}
	return Value(u), nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
