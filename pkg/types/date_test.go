package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2026-01-01").Validate())
	assert.Error(t, DateString("2026-13-01").Validate())
	assert.Error(t, DateString("01.01.2026").Validate())
	assert.Error(t, DateString("").Validate())
}

func TestDateString_Time(t *testing.T) {
	got, err := DateString("2026-08-28").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestDateString_IsBefore(t *testing.T) {
	assert.True(t, DateString("2026-01-01").IsBefore("2026-01-02"))
	assert.True(t, DateString("2025-12-31").IsBefore("2026-01-01"))
	assert.False(t, DateString("2026-01-01").IsBefore("2026-01-01"))
}
