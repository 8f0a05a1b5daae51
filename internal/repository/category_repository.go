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

type CategoryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CategoryRepo) SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error) {
	const op = "repository.category_repository.SaveCategory"

	query, args, err := r.sb.Insert("categories").
		Columns("title").
		Values(category.Title).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *CategoryRepo) CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	const op = "repository.category_repository.CategoryByID"

	query, args, err := r.sb.Select("id", "title", "created_at").
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	var category models.Category
	err = r.db.QueryRow(ctx, query, args...).Scan(&category.ID, &category.Title, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (r *CategoryRepo) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.category_repository.Categories"

	query, args, err := r.sb.Select("id", "title", "created_at").
		From("categories").
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

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Title, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *CategoryRepo) UpdateCategory(ctx context.Context, category models.Category) error {
	const op = "repository.category_repository.UpdateCategory"

	query, args, err := r.sb.Update("categories").
		Set("title", category.Title).
		Where(sq.Eq{"id": category.ID}).
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

func (r *CategoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "repository.category_repository.DeleteCategory"

	query, args, err := r.sb.Delete("categories").
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

func (r *CategoryRepo) CountCategories(ctx context.Context) (int, error) {
	const op = "repository.category_repository.CountCategories"
	return countRows(ctx, r.db, r.sb, "categories", op)
}
