package assignments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/service/assignments/models"
)

type fakeAssignmentRepo struct {
	created []*domain.Assignment
	nextID  int64
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	f.nextID++
	created := *a
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

type fakeCalendarRepo struct {
	known map[string]bool
}

func (f *fakeCalendarRepo) GetByUID(_ context.Context, uid string) (*domain.Calendar, error) {
	if f.known[uid] {
		return &domain.Calendar{UID: uid}, nil
	}
	return nil, calendarRepo.ErrCalendarNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	const calUID = "3f2a6c1e9b7d4e5fa0c18b2d3e4f5a6b"

	newService := func(known ...string) (*Service, *fakeAssignmentRepo) {
		repo := &fakeAssignmentRepo{}
		calendars := &fakeCalendarRepo{known: map[string]bool{}}
		for _, uid := range known {
			calendars.known[uid] = true
		}
		return NewService(repo, calendars, nopLogger{}), repo
	}

	t.Run("saves assignment", func(t *testing.T) {
		svc, repo := newService(calUID)

		resp, err := svc.Save(ctx, &models.SaveAssignmentRequest{OwnerUID: "T1", CalendarUID: calUID})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "T1", resp.OwnerUID)
		assert.Equal(t, calUID, resp.CalendarUID)
		require.Len(t, repo.created, 1)
	})

	t.Run("unknown calendar is saved anyway", func(t *testing.T) {
		svc, repo := newService()

		_, err := svc.Save(ctx, &models.SaveAssignmentRequest{OwnerUID: "T1", CalendarUID: calUID})
		require.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})

	t.Run("repeated saves append", func(t *testing.T) {
		svc, repo := newService(calUID)

		_, err := svc.Save(ctx, &models.SaveAssignmentRequest{OwnerUID: "T1", CalendarUID: calUID})
		require.NoError(t, err)
		_, err = svc.Save(ctx, &models.SaveAssignmentRequest{OwnerUID: "T1", CalendarUID: calUID})
		require.NoError(t, err)
		assert.Len(t, repo.created, 2)
	})

	t.Run("missing owner uid", func(t *testing.T) {
		svc, _ := newService(calUID)
		_, err := svc.Save(ctx, &models.SaveAssignmentRequest{CalendarUID: calUID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing calendar uid", func(t *testing.T) {
		svc, _ := newService(calUID)
		_, err := svc.Save(ctx, &models.SaveAssignmentRequest{OwnerUID: "T1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
