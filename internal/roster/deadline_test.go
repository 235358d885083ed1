package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubmissionDeadlineSaturdayBefore(t *testing.T) {
	deadline, err := SubmissionDeadline(weekStart, DeadlineSaturdayBefore)
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, time.August, 22, 23, 59, 59, 0, time.UTC), deadline)
	require.Equal(t, time.Saturday, deadline.Weekday())
}

func TestSubmissionDeadlineNextWednesday(t *testing.T) {
	deadline, err := SubmissionDeadline(weekStart, DeadlineNextWednesday)
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, time.August, 26, 23, 59, 59, 0, time.UTC), deadline)
	require.Equal(t, time.Wednesday, deadline.Weekday())
}

func TestSubmissionDeadlineUnknownPolicy(t *testing.T) {
	_, err := SubmissionDeadline(weekStart, "whenever")
	require.Error(t, err)
}

func TestParseDeadlinePolicy(t *testing.T) {
	policy, err := ParseDeadlinePolicy("saturday-before")
	require.NoError(t, err)
	require.Equal(t, DeadlineSaturdayBefore, policy)

	policy, err = ParseDeadlinePolicy("next-wednesday")
	require.NoError(t, err)
	require.Equal(t, DeadlineNextWednesday, policy)

	_, err = ParseDeadlinePolicy("monday-after")
	require.Error(t, err)
}
