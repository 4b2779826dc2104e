package traffic

import (
	"errors"
	"strings"
)

// ErrInvalidICAO is returned when an airport code fails validation.
var ErrInvalidICAO = errors.New("icao must be alphanumeric and 4 characters long")

// NormalizeICAO validates an airport code and returns it uppercased, the
// convention used by the datafeed.
func NormalizeICAO(code string) (string, error) {
	if len(code) != 4 {
		return "", ErrInvalidICAO
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return "", ErrInvalidICAO
		}
	}
	return strings.ToUpper(code), nil
}
