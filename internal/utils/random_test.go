package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/roster"
)

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.Regexp(t, regexp.MustCompile(`^\d{6}$`), GenerateRandomOTP())
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	require.Len(t, GenerateRandomPassword(12), 12)
}

func TestGenerateUsernameFromChineseName(t *testing.T) {
	for i := 0; i < 100; i++ {
		username := GenerateUsernameFromChineseName(GenerateRandomChineseName())
		require.Regexp(t, regexp.MustCompile(`^[a-z]+\d{1,3}$`), username)
	}
}

func TestGenerateRandomWeeklyAvailabilityIsValid(t *testing.T) {
	weekStart := domain.NewDate(2026, time.August, 23) // 周日

	for i := 0; i < 20; i++ {
		week, err := GenerateRandomWeeklyAvailability(1, "hq", weekStart)
		require.NoError(t, err)
		require.Len(t, week.Days, 7)

		for _, day := range domain.AllDays() {
			sched := week.Days[day]
			if !sched.Available {
				require.Empty(t, sched.Slots)
			}
			for _, slot := range sched.Slots {
				_, err := roster.ResolveSpan(slot)
				require.NoError(t, err)
			}
		}
	}
}

func TestGenerateRandomWeeklyAvailabilityRejectsNonSunday(t *testing.T) {
	_, err := GenerateRandomWeeklyAvailability(1, "hq", domain.NewDate(2026, time.August, 24))
	require.ErrorIs(t, err, roster.ErrWeekStartNotSunday)
}

func TestGenerateRandomShiftRequirementIsValid(t *testing.T) {
	for i := 0; i < 20; i++ {
		req, err := GenerateRandomShiftRequirement("hq", 1)
		require.NoError(t, err)

		for _, day := range domain.AllDays() {
			for _, slot := range req.PerDay[day] {
				require.GreaterOrEqual(t, slot.MinEmployees, int32(1))
				_, err := roster.ResolveSpan(slot.TimeSlot())
				require.NoError(t, err)
			}
		}
	}
}
