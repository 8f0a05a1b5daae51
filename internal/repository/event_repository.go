package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var eventColumns = []string{
	"id", "title", "slug", "description", "image", "date", "time", "created_at", "updated_at",
}

type EventRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEventRepository(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *EventRepo) SaveEvent(ctx context.Context, event models.Event) (uuid.UUID, error) {
	const op = "repository.event_repository.SaveEvent"

	query, args, err := r.sb.Insert("events").
		Columns("title", "slug", "description", "image", "date", "time").
		Values(event.Title, event.Slug, event.Description, event.Image, event.Date, event.Time).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if storage.IsUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrDuplicate)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *EventRepo) EventByID(ctx context.Context, id uuid.UUID) (models.Event, error) {
	const op = "repository.event_repository.EventByID"
	return r.one(ctx, op, sq.Eq{"id": id})
}

func (r *EventRepo) EventBySlug(ctx context.Context, slug string) (models.Event, error) {
	const op = "repository.event_repository.EventBySlug"
	return r.one(ctx, op, sq.Eq{"slug": slug})
}

func (r *EventRepo) one(ctx context.Context, op string, where sq.Eq) (models.Event, error) {
	query, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(where).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	var event models.Event
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&event.ID,
		&event.Title,
		&event.Slug,
		&event.Description,
		&event.Image,
		&event.Date,
		&event.Time,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Event{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (r *EventRepo) Events(ctx context.Context) ([]models.Event, error) {
	const op = "repository.event_repository.Events"

	query, args, err := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Slug,
			&event.Description,
			&event.Image,
			&event.Date,
			&event.Time,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *EventRepo) UpdateEvent(ctx context.Context, event models.Event) error {
	const op = "repository.event_repository.UpdateEvent"

	query, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("slug", event.Slug).
		Set("description", event.Description).
		Set("image", event.Image).
		Set("date", event.Date).
		Set("time", event.Time).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrDuplicate)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "repository.event_repository.DeleteEvent"

	query, args, err := r.sb.Delete("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *EventRepo) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	const op = "repository.event_repository.SlugTaken"
	return slugTaken(ctx, r.db, r.sb, "events", slug, exclude, op)
}

func (r *EventRepo) CountEvents(ctx context.Context) (int, error) {
	const op = "repository.event_repository.CountEvents"
	return countRows(ctx, r.db, r.sb, "events", op)
}
