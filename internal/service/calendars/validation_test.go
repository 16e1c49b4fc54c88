package calendars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func candidate(workDays []int, rules ...domain.BusinessHourRule) *domain.CalendarInformation {
	return &domain.CalendarInformation{
		Calendar: domain.Calendar{
			Name:     "Test Calendar",
			Status:   domain.StatusActive,
			WorkDays: domain.WorkDays(workDays),
		},
		BusinessHours: rules,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		info    *domain.CalendarInformation
		wantErr error
	}{
		{
			name: "all-days rule covers every work day",
			info: candidate([]int{1, 2, 3, 4, 5},
				domain.BusinessHourRule{Day: domain.DayAllDays, StartTime: "09:00", EndTime: "17:00"}),
		},
		{
			name: "per-day rules cover every work day",
			info: candidate([]int{1, 2, 3},
				domain.BusinessHourRule{Day: 1, StartTime: "09:00", EndTime: "17:00"},
				domain.BusinessHourRule{Day: 2, StartTime: "09:00", EndTime: "17:00"},
				domain.BusinessHourRule{Day: 3, StartTime: "09:00", EndTime: "13:00"}),
		},
		{
			name: "fewer than three work days is rejected even with rules",
			info: candidate([]int{1, 2},
				domain.BusinessHourRule{Day: domain.DayAllDays, StartTime: "09:00", EndTime: "17:00"}),
			wantErr: ErrTooFewWorkDays,
		},
		{
			name:    "no business hours rules",
			info:    candidate([]int{1, 2, 3, 4, 5}),
			wantErr: ErrNoBusinessHours,
		},
		{
			name: "partial per-day coverage is rejected",
			info: candidate([]int{1, 2, 3, 4, 5},
				domain.BusinessHourRule{Day: 1, StartTime: "09:00", EndTime: "17:00"},
				domain.BusinessHourRule{Day: 2, StartTime: "09:00", EndTime: "17:00"}),
			wantErr: ErrIncompleteWorkDayCoverage,
		},
		{
			name: "one all-days rule among partial rules satisfies coverage",
			info: candidate([]int{1, 2, 3, 4, 5},
				domain.BusinessHourRule{Day: 1, StartTime: "09:00", EndTime: "12:00"},
				domain.BusinessHourRule{Day: domain.DayAllDays, StartTime: "13:00", EndTime: "17:00"}),
		},
		{
			name: "rule for a non-work day does not help coverage",
			info: candidate([]int{1, 2, 3},
				domain.BusinessHourRule{Day: 6, StartTime: "09:00", EndTime: "17:00"}),
			wantErr: ErrIncompleteWorkDayCoverage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.info)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidatePayload(t *testing.T) {
	base := func() *domain.CalendarInformation {
		return candidate([]int{1, 2, 3, 4, 5},
			domain.BusinessHourRule{Day: domain.DayAllDays, StartTime: "09:00", EndTime: "17:00"})
	}

	t.Run("valid payload passes", func(t *testing.T) {
		require.NoError(t, validatePayload(base()))
	})

	t.Run("missing name", func(t *testing.T) {
		info := base()
		info.Name = ""
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		info := base()
		info.Status = "PAUSED"
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("work day out of range", func(t *testing.T) {
		info := base()
		info.WorkDays = domain.WorkDays{1, 2, 9}
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("duplicate work day", func(t *testing.T) {
		info := base()
		info.WorkDays = domain.WorkDays{1, 1, 2}
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		info := base()
		info.BusinessHours[0].StartTime = "9am"
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("start not before end", func(t *testing.T) {
		info := base()
		info.BusinessHours[0].StartTime = "17:00"
		info.BusinessHours[0].EndTime = "09:00"
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("holiday without name", func(t *testing.T) {
		info := base()
		info.Holidays = []domain.Holiday{{StartDate: "2026-01-01", EndDate: "2026-01-02"}}
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("holiday ends before it starts", func(t *testing.T) {
		info := base()
		info.Holidays = []domain.Holiday{{Name: "Backwards", StartDate: "2026-01-05", EndDate: "2026-01-01"}}
		assert.ErrorIs(t, validatePayload(info), ErrInvalidInput)
	})

	t.Run("single-day holiday is allowed", func(t *testing.T) {
		info := base()
		info.Holidays = []domain.Holiday{{Name: "May Day", StartDate: "2026-05-01", EndDate: "2026-05-01"}}
		require.NoError(t, validatePayload(info))
	})
}
