package resolve_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

type fakeAssignmentRepo struct {
	// последнее назначение на владельца, как его вернуло бы хранилище
	byOwner map[string]string
}

func (f *fakeAssignmentRepo) FindLatestByOwner(_ context.Context, ownerUID string) (*domain.Assignment, error) {
	calendarUID, ok := f.byOwner[ownerUID]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return &domain.Assignment{OwnerUID: ownerUID, CalendarUID: calendarUID}, nil
}

type fakeCalendarService struct {
	lastUID      string
	lastValidate bool
}

func (f *fakeCalendarService) GetFullInformation(_ context.Context, uid string, validate bool) (*models.CalendarResponse, error) {
	f.lastUID = uid
	f.lastValidate = validate
	return &models.CalendarResponse{UID: uid, Status: "ACTIVE"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(byOwner map[string]string) (*UseCase, *fakeCalendarService) {
	svc := &fakeCalendarService{}
	uc := NewUseCase(&fakeAssignmentRepo{byOwner: byOwner}, svc, nopLogger{})
	return uc, svc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	const (
		calTask    = "1111aaaa1111aaaa1111aaaa1111aaaa"
		calProcess = "2222bbbb2222bbbb2222bbbb2222bbbb"
		calUser    = "3333cccc3333cccc3333cccc3333cccc"
	)

	t.Run("no owner uids is rejected", func(t *testing.T) {
		uc, _ := newUseCase(nil)
		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no assignments resolves to default", func(t *testing.T) {
		uc, svc := newUseCase(nil)

		resp, err := uc.Execute(ctx, &Request{UserUID: "U9", ProcessUID: "P1", TaskUID: "T1"})
		require.NoError(t, err)

		assert.Equal(t, domain.OwnerDefault, resp.Owner)
		assert.Equal(t, domain.DefaultCalendarUID, resp.Calendar.UID)
		assert.Equal(t, domain.DefaultCalendarUID, svc.lastUID)
	})

	t.Run("task assignment wins over process and user", func(t *testing.T) {
		uc, _ := newUseCase(map[string]string{
			"T1": calTask,
			"P1": calProcess,
			"U9": calUser,
		})

		resp, err := uc.Execute(ctx, &Request{UserUID: "U9", ProcessUID: "P1", TaskUID: "T1"})
		require.NoError(t, err)

		assert.Equal(t, domain.OwnerTask, resp.Owner)
		assert.Equal(t, calTask, resp.Calendar.UID)
	})

	t.Run("process assignment wins when task has none", func(t *testing.T) {
		uc, _ := newUseCase(map[string]string{
			"P1": calProcess,
			"U9": calUser,
		})

		resp, err := uc.Execute(ctx, &Request{UserUID: "U9", ProcessUID: "P1", TaskUID: "T1"})
		require.NoError(t, err)

		assert.Equal(t, domain.OwnerProcess, resp.Owner)
		assert.Equal(t, calProcess, resp.Calendar.UID)
	})

	t.Run("user assignment is the last resort before default", func(t *testing.T) {
		uc, _ := newUseCase(map[string]string{
			"U9": calUser,
		})

		resp, err := uc.Execute(ctx, &Request{UserUID: "U9", ProcessUID: "P1", TaskUID: "T1"})
		require.NoError(t, err)

		assert.Equal(t, domain.OwnerUser, resp.Owner)
		assert.Equal(t, calUser, resp.Calendar.UID)
	})

	t.Run("empty owner uids are skipped", func(t *testing.T) {
		uc, _ := newUseCase(map[string]string{
			"U9": calUser,
		})

		resp, err := uc.Execute(ctx, &Request{UserUID: "U9"})
		require.NoError(t, err)

		assert.Equal(t, domain.OwnerUser, resp.Owner)
	})

	t.Run("validate flag is forwarded to the calendar service", func(t *testing.T) {
		uc, svc := newUseCase(map[string]string{"U9": calUser})

		_, err := uc.Execute(ctx, &Request{UserUID: "U9", Validate: true})
		require.NoError(t, err)
		assert.True(t, svc.lastValidate)

		_, err = uc.Execute(ctx, &Request{UserUID: "U9", Validate: false})
		require.NoError(t, err)
		assert.False(t, svc.lastValidate)
	})
}
