package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type TagRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTagRepository(db *pgxpool.Pool) *TagRepo {
	return &TagRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TagRepo) SaveTag(ctx context.Context, tag models.Tag) (uuid.UUID, error) {
	const op = "repository.tag_repository.SaveTag"

	query, args, err := r.sb.Insert("tags").
		Columns("title").
		Values(tag.Title).
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

func (r *TagRepo) TagByID(ctx context.Context, id uuid.UUID) (models.Tag, error) {
	const op = "repository.tag_repository.TagByID"

	query, args, err := r.sb.Select("id", "title", "created_at").
		From("tags").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	var tag models.Tag
	err = r.db.QueryRow(ctx, query, args...).Scan(&tag.ID, &tag.Title, &tag.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Tag{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	return tag, nil
}

func (r *TagRepo) Tags(ctx context.Context) ([]models.Tag, error) {
	const op = "repository.tag_repository.Tags"

	query, args, err := r.sb.Select("id", "title", "created_at").
		From("tags").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Title, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (r *TagRepo) UpdateTag(ctx context.Context, tag models.Tag) error {
	const op = "repository.tag_repository.UpdateTag"

	query, args, err := r.sb.Update("tags").
		Set("title", tag.Title).
		Where(sq.Eq{"id": tag.ID}).
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

func (r *TagRepo) DeleteTag(ctx context.Context, id uuid.UUID) error {
	const op = "repository.tag_repository.DeleteTag"

	query, args, err := r.sb.Delete("tags").
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
