package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeICAO_Uppercases(t *testing.T) {
	icao, err := NormalizeICAO("egll")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "EGLL", icao)
}

func TestNormalizeICAO_AcceptsAlphanumerics(t *testing.T) {
	icao, err := NormalizeICAO("7AK2")
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "7AK2", icao)
}

func TestNormalizeICAO_RejectsBadInput(t *testing.T) {
	for _, code := range []string{"", "EGL", "EGLLL", "EG L", "EG-L", "ÉGLL"} {
		_, err := NormalizeICAO(code)
		assert.ErrorIs(t, err, ErrInvalidICAO, "code %q", code)
	}
}
