package assignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий назначений календарей владельцам
// Назначения append-only: ни обновлений, ни удалений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое назначение без дедупликации
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_assignments").
		Columns(
			"owner_uid",
			"calendar_uid",
		).
		Values(
			a.OwnerUID,
			a.CalendarUID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time

	return a, nil
}

// FindLatestByOwner получает последнее сохранённое назначение для владельца
func (r *Repository) FindLatestByOwner(ctx context.Context, ownerUID string) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_uid",
		"calendar_uid",
		"created_at",
	).
		From("calendar_assignments").
		Where(squirrel.Eq{"owner_uid": ownerUID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindLatestByOwner - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Assignment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.OwnerUID,
		&a.CalendarUID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindLatestByOwner - scan assignment: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time

	return &a, nil
}
