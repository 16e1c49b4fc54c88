package calendars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

// In-memory фейки репозиториев с той же append-only семантикой, что и хранилище

type fakeCalendarRepo struct {
	rows   []*domain.Calendar
	nextID int64
}

func (f *fakeCalendarRepo) Create(_ context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
	f.nextID++
	created := *calendar
	created.ID = f.nextID
	f.rows = append(f.rows, &created)
	return &created, nil
}

func (f *fakeCalendarRepo) GetByUID(_ context.Context, uid string) (*domain.Calendar, error) {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UID == uid {
			found := *f.rows[i]
			return &found, nil
		}
	}
	return nil, calendarRepo.ErrCalendarNotFound
}

func (f *fakeCalendarRepo) List(_ context.Context) ([]*domain.Calendar, error) {
	latest := make(map[string]*domain.Calendar)
	order := []string{}
	for _, row := range f.rows {
		if _, ok := latest[row.UID]; !ok {
			order = append(order, row.UID)
		}
		latest[row.UID] = row
	}
	out := make([]*domain.Calendar, 0, len(order))
	for _, uid := range order {
		found := *latest[uid]
		out = append(out, &found)
	}
	return out, nil
}

type fakeBusinessHoursRepo struct {
	rows   []domain.BusinessHourRule
	nextID int64
}

func (f *fakeBusinessHoursRepo) Create(_ context.Context, rule *domain.BusinessHourRule) (*domain.BusinessHourRule, error) {
	f.nextID++
	created := *rule
	created.ID = f.nextID
	f.rows = append(f.rows, created)
	return &created, nil
}

func (f *fakeBusinessHoursRepo) GetByCalendarID(_ context.Context, calendarID int64) ([]domain.BusinessHourRule, error) {
	out := []domain.BusinessHourRule{}
	for _, row := range f.rows {
		if row.CalendarID == calendarID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	rows   []domain.Holiday
	nextID int64
}

func (f *fakeHolidayRepo) Create(_ context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	f.nextID++
	created := *h
	created.ID = f.nextID
	f.rows = append(f.rows, created)
	return &created, nil
}

func (f *fakeHolidayRepo) GetByCalendarID(_ context.Context, calendarID int64) ([]domain.Holiday, error) {
	out := []domain.Holiday{}
	for _, row := range f.rows {
		if row.CalendarID == calendarID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubUIDGen struct{ uid string }

func (s stubUIDGen) Generate() string { return s.uid }

type stubTranslator struct{}

func (stubTranslator) Translate(key string) string { return key }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc           *Service
	calendars     *fakeCalendarRepo
	businessHours *fakeBusinessHoursRepo
	holidays      *fakeHolidayRepo
}

func newFixture(uid string) *fixture {
	f := &fixture{
		calendars:     &fakeCalendarRepo{},
		businessHours: &fakeBusinessHoursRepo{},
		holidays:      &fakeHolidayRepo{},
	}
	f.svc = NewService(
		f.calendars,
		f.businessHours,
		f.holidays,
		fakeTxManager{},
		stubUIDGen{uid: uid},
		stubTranslator{},
		nopLogger{},
	)
	return f
}

func validRequest() *models.SaveCalendarRequest {
	return &models.SaveCalendarRequest{
		Name:     "Night Shift",
		WorkDays: []int{1, 2, 3, 4, 5},
		BusinessHours: []models.BusinessHourPayload{
			{Day: domain.DayAllDays, StartTime: "22:00", EndTime: "23:00"},
		},
		Holidays: []models.HolidayPayload{
			{Name: "New Year", StartDate: "2026-01-01", EndDate: "2026-01-02"},
		},
	}
}

func TestService_EnsureDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture("")

	require.NoError(t, f.svc.EnsureDefault(ctx))

	created, err := f.calendars.GetByUID(ctx, domain.DefaultCalendarUID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkDays, created.WorkDays)
	assert.Equal(t, domain.StatusActive, created.Status)

	// повторный вызов не создает вторую строку
	require.NoError(t, f.svc.EnsureDefault(ctx))
	assert.Len(t, f.calendars.rows, 1)
}

func TestService_GetDefault_BootstrapsLazily(t *testing.T) {
	ctx := context.Background()
	f := newFixture("")

	resp, err := f.svc.GetDefault(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCalendarUID, resp.UID)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, resp.WorkDays)
	require.Len(t, resp.BusinessHours, 1)
	assert.Equal(t, domain.DayAllDays, resp.BusinessHours[0].Day)
	assert.Equal(t, domain.DefaultBusinessStart, resp.BusinessHours[0].StartTime)
	assert.Equal(t, domain.DefaultBusinessEnd, resp.BusinessHours[0].EndTime)
}

func TestService_GetDefinition(t *testing.T) {
	ctx := context.Background()
	f := newFixture("")

	t.Run("missing calendar without fallback", func(t *testing.T) {
		_, err := f.svc.GetDefinition(ctx, "a81a461e51f845e1b871325cb38a7c8c", false)
		assert.ErrorIs(t, err, ErrCalendarNotFound)
	})

	t.Run("missing calendar with fallback returns default", func(t *testing.T) {
		resp, err := f.svc.GetDefinition(ctx, "a81a461e51f845e1b871325cb38a7c8c", true)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCalendarUID, resp.UID)
	})
}

func TestService_SaveInformation(t *testing.T) {
	ctx := context.Background()
	const generated = "3f2a6c1e9b7d4e5fa0c18b2d3e4f5a6b"

	t.Run("generates uid when absent", func(t *testing.T) {
		f := newFixture(generated)

		resp, err := f.svc.SaveInformation(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, generated, resp.UID)
		assert.Equal(t, "Night Shift", resp.Name)
		assert.Equal(t, "ACTIVE", resp.Status)
		require.Len(t, resp.BusinessHours, 1)
		require.Len(t, resp.Holidays, 1)
		assert.Equal(t, "New Year", resp.Holidays[0].Name)
	})

	t.Run("keeps caller-provided uid", func(t *testing.T) {
		f := newFixture(generated)

		req := validRequest()
		req.UID = "b2c3d4e5f60718293a4b5c6d7e8f9012"
		resp, err := f.svc.SaveInformation(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.UID, resp.UID)
	})

	t.Run("children are bound to the created definition row", func(t *testing.T) {
		f := newFixture(generated)

		_, err := f.svc.SaveInformation(ctx, validRequest())
		require.NoError(t, err)

		created, err := f.calendars.GetByUID(ctx, generated)
		require.NoError(t, err)
		require.Len(t, f.businessHours.rows, 1)
		assert.Equal(t, created.ID, f.businessHours.rows[0].CalendarID)
		assert.Equal(t, generated, f.businessHours.rows[0].CalendarUID)
		require.Len(t, f.holidays.rows, 1)
		assert.Equal(t, created.ID, f.holidays.rows[0].CalendarID)
	})

	t.Run("re-save supersedes the previous version", func(t *testing.T) {
		f := newFixture(generated)

		first, err := f.svc.SaveInformation(ctx, validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.UID = first.UID
		req.Name = "Night Shift v2"
		req.BusinessHours = append(req.BusinessHours,
			models.BusinessHourPayload{Day: 6, StartTime: "10:00", EndTime: "14:00"})

		second, err := f.svc.SaveInformation(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first.UID, second.UID)
		assert.Equal(t, "Night Shift v2", second.Name)
		assert.Len(t, second.BusinessHours, 2)

		// чтение по UID видит только новую версию
		resp, err := f.svc.GetFullInformation(ctx, first.UID, false)
		require.NoError(t, err)
		assert.Equal(t, "Night Shift v2", resp.Name)
		assert.Len(t, resp.BusinessHours, 2)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		f := newFixture(generated)

		req := validRequest()
		req.Name = ""
		_, err := f.svc.SaveInformation(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, f.calendars.rows)
	})
}

func TestService_GetFullInformation(t *testing.T) {
	ctx := context.Background()
	const generated = "3f2a6c1e9b7d4e5fa0c18b2d3e4f5a6b"

	t.Run("returns the stored calendar as-is without validation", func(t *testing.T) {
		f := newFixture(generated)

		saved, err := f.svc.SaveInformation(ctx, validRequest())
		require.NoError(t, err)

		resp, err := f.svc.GetFullInformation(ctx, saved.UID, false)
		require.NoError(t, err)
		assert.Equal(t, saved.UID, resp.UID)
	})

	t.Run("missing calendar degrades to default", func(t *testing.T) {
		f := newFixture(generated)

		resp, err := f.svc.GetFullInformation(ctx, "a81a461e51f845e1b871325cb38a7c8c", true)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCalendarUID, resp.UID)
	})

	t.Run("inconsistent calendar degrades to default when validated", func(t *testing.T) {
		f := newFixture(generated)

		// сохраняем напрямую через репозитории, минуя валидацию:
		// правила покрывают не все рабочие дни
		created, err := f.calendars.Create(ctx, &domain.Calendar{
			UID:      generated,
			Name:     "Broken",
			Status:   domain.StatusActive,
			WorkDays: domain.WorkDays{1, 2, 3, 4, 5},
		})
		require.NoError(t, err)
		_, err = f.businessHours.Create(ctx, &domain.BusinessHourRule{
			CalendarID: created.ID, CalendarUID: generated,
			Day: 1, StartTime: "09:00", EndTime: "17:00",
		})
		require.NoError(t, err)

		resp, err := f.svc.GetFullInformation(ctx, generated, true)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCalendarUID, resp.UID)

		// без validate тот же календарь возвращается как есть
		resp, err = f.svc.GetFullInformation(ctx, generated, false)
		require.NoError(t, err)
		assert.Equal(t, generated, resp.UID)
	})

	t.Run("inconsistent default calendar is still returned", func(t *testing.T) {
		f := newFixture(generated)

		// календарь по умолчанию пересохранён без правил
		_, err := f.calendars.Create(ctx, &domain.Calendar{
			UID:      domain.DefaultCalendarUID,
			Name:     "Broken Default",
			Status:   domain.StatusActive,
			WorkDays: domain.WorkDays{1, 2, 3, 4, 5},
		})
		require.NoError(t, err)

		resp, err := f.svc.GetFullInformation(ctx, domain.DefaultCalendarUID, true)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCalendarUID, resp.UID)
		assert.Equal(t, "Broken Default", resp.Name)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture("3f2a6c1e9b7d4e5fa0c18b2d3e4f5a6b")

	require.NoError(t, f.svc.EnsureDefault(ctx))
	_, err := f.svc.SaveInformation(ctx, validRequest())
	require.NoError(t, err)

	resp, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Calendars, 2)
}

func TestService_ValidateInformation(t *testing.T) {
	f := newFixture("")

	t.Run("valid candidate", func(t *testing.T) {
		require.NoError(t, f.svc.ValidateInformation(validRequest()))
	})

	t.Run("payload errors surface as invalid input", func(t *testing.T) {
		req := validRequest()
		req.Status = "PAUSED"
		assert.ErrorIs(t, f.svc.ValidateInformation(req), ErrInvalidInput)
	})

	t.Run("consistency errors surface as tagged validation errors", func(t *testing.T) {
		req := validRequest()
		req.WorkDays = []int{1, 2}
		assert.ErrorIs(t, f.svc.ValidateInformation(req), ErrTooFewWorkDays)

		req = validRequest()
		req.BusinessHours = nil
		assert.ErrorIs(t, f.svc.ValidateInformation(req), ErrNoBusinessHours)

		req = validRequest()
		req.BusinessHours = []models.BusinessHourPayload{
			{Day: 1, StartTime: "09:00", EndTime: "17:00"},
		}
		assert.ErrorIs(t, f.svc.ValidateInformation(req), ErrIncompleteWorkDayCoverage)
	})
}
