package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCmd_Use(t *testing.T) {
	assert.Equal(t, "schedule", scheduleCmd.Use)
}

func TestScheduleCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"summary", "start", "attendee", "description", "duration"} {
		assert.NotNil(t, scheduleCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestParseStart(t *testing.T) {
	got, err := parseStart("2026-09-14 10:00", "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-14T10:00:00+05:30", got.Format("2006-01-02T15:04:05-07:00"))

	_, err = parseStart("next tuesday", "Asia/Kolkata")
	assert.Error(t, err)

	_, err = parseStart("2026-09-14 10:00", "Not/AZone")
	assert.Error(t, err)
}
