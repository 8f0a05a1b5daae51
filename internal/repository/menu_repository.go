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

var menuColumns = []string{
	"id", "title", "slug", "description", "image", "created_at", "updated_at",
}

type MenuRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MenuRepo) SaveMenu(ctx context.Context, menu models.Menu) (uuid.UUID, error) {
	const op = "repository.menu_repository.SaveMenu"

	query, args, err := r.sb.Insert("menus").
		Columns("title", "slug", "description", "image").
		Values(menu.Title, menu.Slug, menu.Description, menu.Image).
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

func (r *MenuRepo) MenuByID(ctx context.Context, id uuid.UUID) (models.Menu, error) {
	const op = "repository.menu_repository.MenuByID"
	return r.one(ctx, op, sq.Eq{"id": id})
}

func (r *MenuRepo) MenuBySlug(ctx context.Context, slug string) (models.Menu, error) {
	const op = "repository.menu_repository.MenuBySlug"
	return r.one(ctx, op, sq.Eq{"slug": slug})
}

func (r *MenuRepo) one(ctx context.Context, op string, where sq.Eq) (models.Menu, error) {
	query, args, err := r.sb.Select(menuColumns...).
		From("menus").
		Where(where).
		ToSql()
	if err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	var menu models.Menu
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&menu.ID,
		&menu.Title,
		&menu.Slug,
		&menu.Description,
		&menu.Image,
		&menu.CreatedAt,
		&menu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Menu{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	return menu, nil
}

func (r *MenuRepo) Menus(ctx context.Context) ([]models.Menu, error) {
	const op = "repository.menu_repository.Menus"

	query, args, err := r.sb.Select(menuColumns...).
		From("menus").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var menus []models.Menu
	for rows.Next() {
		var menu models.Menu
		err := rows.Scan(
			&menu.ID,
			&menu.Title,
			&menu.Slug,
			&menu.Description,
			&menu.Image,
			&menu.CreatedAt,
			&menu.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		menus = append(menus, menu)
	}

	return menus, nil
}

func (r *MenuRepo) UpdateMenu(ctx context.Context, menu models.Menu) error {
	const op = "repository.menu_repository.UpdateMenu"

	query, args, err := r.sb.Update("menus").
		Set("title", menu.Title).
		Set("slug", menu.Slug).
		Set("description", menu.Description).
		Set("image", menu.Image).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": menu.ID}).
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

func (r *MenuRepo) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	const op = "repository.menu_repository.DeleteMenu"

	query, args, err := r.sb.Delete("menus").
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

// AttachItem appends the item at the end of the menu. Attaching an already
// attached item keeps its current position.
func (r *MenuRepo) AttachItem(ctx context.Context, menuID, itemID uuid.UUID) error {
	const op = "repository.menu_repository.AttachItem"

	query, args, err := r.sb.Insert("menu_menu_items").
		Columns("menu_id", "menu_item_id", "position").
		Values(menuID, itemID, sq.Expr(
			"(SELECT COALESCE(MAX(position), 0) + 1 FROM menu_menu_items WHERE menu_id = ?)", menuID,
		)).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *MenuRepo) DetachItem(ctx context.Context, menuID, itemID uuid.UUID) error {
	const op = "repository.menu_repository.DetachItem"

	query, args, err := r.sb.Delete("menu_menu_items").
		Where(sq.Eq{"menu_id": menuID, "menu_item_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *MenuRepo) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	const op = "repository.menu_repository.SlugTaken"
	return slugTaken(ctx, r.db, r.sb, "menus", slug, exclude, op)
}

func (r *MenuRepo) CountMenus(ctx context.Context) (int, error) {
	const op = "repository.menu_repository.CountMenus"
	return countRows(ctx, r.db, r.sb, "menus", op)
}
