package businesshours

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Repository репозиторий правил рабочих часов календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое правило рабочих часов
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, rule *domain.BusinessHourRule) (*domain.BusinessHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_business_hours").
		Columns(
			"calendar_id",
			"calendar_uid",
			"day",
			"start_time",
			"end_time",
		).
		Values(
			rule.CalendarID,
			rule.CalendarUID,
			rule.Day,
			rule.StartTime.String(),
			rule.EndTime.String(),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// GetByCalendarID получает все правила рабочих часов версии календаря
func (r *Repository) GetByCalendarID(ctx context.Context, calendarID int64) ([]domain.BusinessHourRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"calendar_id",
		"calendar_uid",
		"day",
		"start_time",
		"end_time",
	).
		From("calendar_business_hours").
		Where(squirrel.Eq{"calendar_id": calendarID}).
		OrderBy("day ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.BusinessHourRule, 0)

	for rows.Next() {
		var rule domain.BusinessHourRule
		var startTime, endTime string

		err := rows.Scan(
			&rule.ID,
			&rule.CalendarID,
			&rule.CalendarUID,
			&rule.Day,
			&startTime,
			&endTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCalendarID - scan row: %v", ErrScanRow, err)
		}

		rule.StartTime = types.TimeString(startTime)
		rule.EndTime = types.TimeString(endTime)

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
