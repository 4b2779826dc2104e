package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneral_UpdatedAt_PrefersTimestamp(t *testing.T) {
	g := General{
		Update:          "20240112184853",
		UpdateTimestamp: "2024-01-12T18:48:53.2835926Z",
	}

	updatedAt, err := g.UpdatedAt()
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, 2024, updatedAt.Year())
	assert.Equal(t, 18, updatedAt.Hour())
	assert.Equal(t, time.UTC, updatedAt.Location())
}

func TestGeneral_UpdatedAt_FallsBackToCompactFormat(t *testing.T) {
	g := General{Update: "20240112184853"}

	updatedAt, err := g.UpdatedAt()
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, time.Date(2024, 1, 12, 18, 48, 53, 0, time.UTC), updatedAt)
}

func TestGeneral_UpdatedAt_NoUsableTime(t *testing.T) {
	_, err := General{Update: "not-a-time"}.UpdatedAt()
	assert.Error(t, err)

	_, err = General{}.UpdatedAt()
	assert.Error(t, err)
}

func TestGeneral_ReloadInterval(t *testing.T) {
	assert.Equal(t, time.Minute, General{Reload: 1}.ReloadInterval())
	assert.Equal(t, 90*time.Second, General{Reload: 1.5}.ReloadInterval())
}
