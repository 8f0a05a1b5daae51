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
	"github.com/lib/pq"
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Gallery returns the singleton row with its images in display order.
func (r *GalleryRepo) Gallery(ctx context.Context) (models.Gallery, error) {
	const op = "repository.gallery_repository.Gallery"

	query, args, err := r.sb.Select("id", "last_updated_by", "created_at", "updated_at").
		From("gallery").
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	var gallery models.Gallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.LastUpdatedBy,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery.Images, err = r.GalleryImages(ctx, gallery.ID)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

// CreateGallery inserts the singleton row. The unique singleton column makes
// a concurrent second insert fail with ErrGalleryExists.
func (r *GalleryRepo) CreateGallery(ctx context.Context, lastUpdatedBy uuid.NullUUID) (models.Gallery, error) {
	const op = "repository.gallery_repository.CreateGallery"

	query, args, err := r.sb.Insert("gallery").
		Columns("last_updated_by").
		Values(lastUpdatedBy).
		Suffix("RETURNING id, last_updated_by, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	var gallery models.Gallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.LastUpdatedBy,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrGalleryExists)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery.Images = []models.Image{}

	return gallery, nil
}

func (r *GalleryRepo) GalleryImages(ctx context.Context, galleryID uuid.UUID) ([]models.Image, error) {
	const op = "repository.gallery_repository.GalleryImages"

	query, args, err := r.sb.Select(prefixed("i", imageColumns)...).
		From("images i").
		Join("gallery_images gi ON gi.image_id = i.id").
		Where(sq.Eq{"gi.gallery_id": galleryID}).
		OrderBy("gi.position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	images, err := scanImages(rows, op)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.Image{}
	}

	return images, nil
}

func (r *GalleryRepo) GalleryImageIDs(ctx context.Context, galleryID uuid.UUID) ([]uuid.UUID, error) {
	const op = "repository.gallery_repository.GalleryImageIDs"

	query, args, err := r.sb.Select("image_id").
		From("gallery_images").
		Where(sq.Eq{"gallery_id": galleryID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// AppendImage adds the image at the end of the gallery. Appending an image
// already present keeps the order but still stamps the audit fields.
func (r *GalleryRepo) AppendImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error {
	const op = "repository.gallery_repository.AppendImage"

	return r.inTx(ctx, op, func(tx pgx.Tx) error {
		query, args, err := r.sb.Insert("gallery_images").
			Columns("gallery_id", "image_id", "position").
			Values(galleryID, imageID, sq.Expr(
				"(SELECT COALESCE(MAX(position), 0) + 1 FROM gallery_images WHERE gallery_id = ?)", galleryID,
			)).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		return r.touch(ctx, tx, galleryID, updatedBy)
	})
}

func (r *GalleryRepo) RemoveImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error {
	const op = "repository.gallery_repository.RemoveImage"

	return r.inTx(ctx, op, func(tx pgx.Tx) error {
		query, args, err := r.sb.Delete("gallery_images").
			Where(sq.Eq{"gallery_id": galleryID, "image_id": imageID}).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		return r.touch(ctx, tx, galleryID, updatedBy)
	})
}

// ReplaceOrder rewrites every position in one statement so a failure partway
// cannot leave a mixed ordering. The caller validates that imageIDs is a
// permutation of the current membership.
func (r *GalleryRepo) ReplaceOrder(ctx context.Context, galleryID uuid.UUID, imageIDs []uuid.UUID, updatedBy uuid.NullUUID) error {
	const op = "repository.gallery_repository.ReplaceOrder"

	return r.inTx(ctx, op, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE gallery_images gi
			SET position = ord.pos
			FROM unnest($2::uuid[]) WITH ORDINALITY AS ord(image_id, pos)
			WHERE gi.gallery_id = $1 AND gi.image_id = ord.image_id`,
			galleryID, pq.Array(imageIDs),
		)
		if err != nil {
			return err
		}

		return r.touch(ctx, tx, galleryID, updatedBy)
	})
}

func (r *GalleryRepo) touch(ctx context.Context, tx pgx.Tx, galleryID uuid.UUID, updatedBy uuid.NullUUID) error {
	query, args, err := r.sb.Update("gallery").
		Set("last_updated_by", updatedBy).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": galleryID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, query, args...)
	return err
}

func (r *GalleryRepo) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
