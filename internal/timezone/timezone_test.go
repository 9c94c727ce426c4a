package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.NotNil(t, Location("Not/AZone"))
	assert.False(t, IsValid(""))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("UTC", "2026-03-01", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC), got)

	_, err = ParseDate("UTC", "01/03/2026")
	assert.Error(t, err)
}
