package holiday

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Repository репозиторий праздничных дней календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздничных дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый праздничный период
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_holidays").
		Columns(
			"calendar_id",
			"calendar_uid",
			"name",
			"start_date",
			"end_date",
		).
		Values(
			h.CalendarID,
			h.CalendarUID,
			h.Name,
			h.StartDate.String(),
			h.EndDate.String(),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// GetByCalendarID получает все праздничные периоды версии календаря
func (r *Repository) GetByCalendarID(ctx context.Context, calendarID int64) ([]domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"calendar_id",
		"calendar_uid",
		"name",
		"start_date",
		"end_date",
	).
		From("calendar_holidays").
		Where(squirrel.Eq{"calendar_id": calendarID}).
		OrderBy("start_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)

	for rows.Next() {
		var h domain.Holiday
		var startDate, endDate string

		err := rows.Scan(
			&h.ID,
			&h.CalendarID,
			&h.CalendarUID,
			&h.Name,
			&startDate,
			&endDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCalendarID - scan row: %v", ErrScanRow, err)
		}

		h.StartDate = types.DateString(startDate)
		h.EndDate = types.DateString(endDate)

		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}
