package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий определений календарей
// Хранилище append-only: повторное сохранение календаря с тем же UID
// добавляет новую строку, чтение возвращает последнюю версию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория определений календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую строку определения календаря
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_definitions").
		Columns(
			"calendar_uid",
			"name",
			"description",
			"status",
			"work_days",
		).
		Values(
			calendar.UID,
			calendar.Name,
			calendar.Description,
			string(calendar.Status),
			calendar.WorkDays.String(),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&calendar.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	calendar.CreatedAt = createdAt.Time
	calendar.UpdatedAt = updatedAt.Time

	return calendar, nil
}

// GetByUID получает последнюю сохранённую версию определения календаря по UID
func (r *Repository) GetByUID(ctx context.Context, uid string) (*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"calendar_uid",
		"name",
		"description",
		"status",
		"work_days",
		"created_at",
		"updated_at",
	).
		From("calendar_definitions").
		Where(squirrel.Eq{"calendar_uid": uid}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCalendar(executor.QueryRowContext(ctx, query, args...), "GetByUID")
}

// List получает последние версии всех определений календарей
func (r *Repository) List(ctx context.Context) ([]*domain.Calendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"DISTINCT ON (calendar_uid) id",
		"calendar_uid",
		"name",
		"description",
		"status",
		"work_days",
		"created_at",
		"updated_at",
	).
		From("calendar_definitions").
		OrderBy("calendar_uid ASC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	calendars := make([]*domain.Calendar, 0)

	for rows.Next() {
		var calendar domain.Calendar
		var status, workDays string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&calendar.ID,
			&calendar.UID,
			&calendar.Name,
			&calendar.Description,
			&status,
			&workDays,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		calendar.Status = domain.CalendarStatus(status)
		calendar.WorkDays, err = domain.ParseWorkDays(workDays)
		if err != nil {
			return nil, fmt.Errorf("%w: List - parse work days: %v", ErrScanRow, err)
		}
		calendar.CreatedAt = createdAt.Time
		calendar.UpdatedAt = updatedAt.Time

		calendars = append(calendars, &calendar)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return calendars, nil
}

// scanCalendar сканирует одну строку определения календаря
func (r *Repository) scanCalendar(row *sql.Row, op string) (*domain.Calendar, error) {
	var calendar domain.Calendar
	var status, workDays string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&calendar.ID,
		&calendar.UID,
		&calendar.Name,
		&calendar.Description,
		&status,
		&workDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan calendar: %v", ErrScanRow, op, err)
	}

	calendar.Status = domain.CalendarStatus(status)
	calendar.WorkDays, err = domain.ParseWorkDays(workDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - parse work days: %v", ErrScanRow, op, err)
	}
	calendar.CreatedAt = createdAt.Time
	calendar.UpdatedAt = updatedAt.Time

	return &calendar, nil
}
