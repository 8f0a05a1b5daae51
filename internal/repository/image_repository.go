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

var imageColumns = []string{
	"id", "title", "description", "url", "key", "uploaded_by", "created_at",
}

type ImageRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewImageRepository(db *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ImageRepo) SaveImage(ctx context.Context, image models.Image) (uuid.UUID, error) {
	const op = "repository.image_repository.SaveImage"

	query, args, err := r.sb.Insert("images").
		Columns("title", "description", "url", "key", "uploaded_by").
		Values(image.Title, image.Description, image.URL, image.Key, image.UploadedBy).
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

func (r *ImageRepo) ImageByID(ctx context.Context, id uuid.UUID) (models.Image, error) {
	const op = "repository.image_repository.ImageByID"

	query, args, err := r.sb.Select(imageColumns...).
		From("images").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	var image models.Image
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&image.ID,
		&image.Title,
		&image.Description,
		&image.URL,
		&image.Key,
		&image.UploadedBy,
		&image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Image{}, fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
		}
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	return image, nil
}

func (r *ImageRepo) Images(ctx context.Context) ([]models.Image, error) {
	const op = "repository.image_repository.Images"

	query, args, err := r.sb.Select(imageColumns...).
		From("images").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanImages(rows, op)
}

func (r *ImageRepo) UpdateImage(ctx context.Context, image models.Image) error {
	const op = "repository.image_repository.UpdateImage"

	query, args, err := r.sb.Update("images").
		Set("title", image.Title).
		Set("description", image.Description).
		Where(sq.Eq{"id": image.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
	}

	return nil
}

func (r *ImageRepo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	const op = "repository.image_repository.DeleteImage"

	query, args, err := r.sb.Delete("images").
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
		return fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
	}

	return nil
}

func scanImages(rows pgx.Rows, op string) ([]models.Image, error) {
	var images []models.Image
	for rows.Next() {
		var image models.Image
		err := rows.Scan(
			&image.ID,
			&image.Title,
			&image.Description,
			&image.URL,
			&image.Key,
			&image.UploadedBy,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, image)
	}

	return images, nil
}
