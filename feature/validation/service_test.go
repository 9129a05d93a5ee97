package validation

import (
	"testing"
	"time"

	"workday-audit/core/calendar"
	"workday-audit/feature/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const atWork = "in work"

func newCollection(t *testing.T, records ...*schedule.WorkDay) *schedule.Collection {
	t.Helper()
	c := schedule.NewCollection("first", true)
	for _, wd := range records {
		require.NoError(t, c.Add(wd))
	}
	return c
}

func TestService_Validate(t *testing.T) {
	tok := schedule.NewTokenizer(schedule.DefaultSeparators)
	svc := NewService(atWork, calendar.NewHolidaySet(), zap.NewNop())

	t.Run("Saturday warning without count mismatch", func(t *testing.T) {
		c := newCollection(t, &schedule.WorkDay{
			SiteKey:      "S-001-0001",
			Status:       atWork,
			DeclaredDays: 2,
			Days:         tok.Parse("2024/05/03,2024/05/04"),
		})

		report := svc.Validate(c)
		assert.True(t, report.Count.Passed())
		require.Len(t, report.Calendar.Hits, 1)
		assert.Equal(t, calendar.Saturday, report.Calendar.Hits[0].Kind)
		assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), report.Calendar.Hits[0].Day)
		assert.True(t, report.DateErrors.Passed())
		assert.False(t, report.Passed())
	})

	t.Run("Inactive records are ignored", func(t *testing.T) {
		c := newCollection(t, &schedule.WorkDay{
			SiteKey:      "K",
			Status:       "finished",
			DeclaredDays: 9,
			Days:         tok.Parse("2024/05/04,2024/05/04"),
		})

		report := svc.Validate(c)
		assert.True(t, report.Passed())
		assert.Equal(t, 0, report.Count.Checked)
	})

	t.Run("Clean collection passes", func(t *testing.T) {
		c := newCollection(t, &schedule.WorkDay{
			SiteKey:      "K",
			Status:       atWork,
			DeclaredDays: 1,
			Days:         tok.Parse("2024/05/07"),
		})

		assert.True(t, svc.Validate(c).Passed())
	})
}

func TestService_Holidays(t *testing.T) {
	holidays, err := calendar.ParseHolidays("2024/05/06")
	require.NoError(t, err)
	svc := NewService(atWork, holidays, zap.NewNop())

	c := newCollection(t, &schedule.WorkDay{
		SiteKey:      "K",
		Status:       atWork,
		DeclaredDays: 1,
		Days:         schedule.NewTokenizer(schedule.DefaultSeparators).Parse("2024/05/06"),
	})

	report := svc.CheckCalendar(c)
	require.Len(t, report.Hits, 1)
	assert.Equal(t, calendar.Holiday, report.Hits[0].Kind)
}
