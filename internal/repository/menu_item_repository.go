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

var menuItemColumns = []string{
	"id", "title", "description", "slug", "image", "price", "category_id", "created_at", "updated_at",
}

type MenuItemRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewMenuItemRepository(db *pgxpool.Pool) *MenuItemRepo {
	return &MenuItemRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *MenuItemRepo) SaveMenuItem(ctx context.Context, item models.MenuItem) (uuid.UUID, error) {
	const op = "repository.menu_item_repository.SaveMenuItem"

	query, args, err := r.sb.Insert("menu_items").
		Columns("title", "description", "slug", "image", "price", "category_id").
		Values(item.Title, item.Description, item.Slug, item.Image, item.Price, item.CategoryID).
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

func (r *MenuItemRepo) MenuItemByID(ctx context.Context, id uuid.UUID) (models.MenuItem, error) {
	const op = "repository.menu_item_repository.MenuItemByID"
	return r.one(ctx, op, sq.Eq{"id": id})
}

func (r *MenuItemRepo) MenuItemBySlug(ctx context.Context, slug string) (models.MenuItem, error) {
	const op = "repository.menu_item_repository.MenuItemBySlug"
	return r.one(ctx, op, sq.Eq{"slug": slug})
}

func (r *MenuItemRepo) one(ctx context.Context, op string, where sq.Eq) (models.MenuItem, error) {
	query, args, err := r.sb.Select(menuItemColumns...).
		From("menu_items").
		Where(where).
		ToSql()
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var item models.MenuItem
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Slug,
		&item.Image,
		&item.Price,
		&item.CategoryID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	items := []models.MenuItem{item}
	if err := r.attachRelations(ctx, items); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return items[0], nil
}

func (r *MenuItemRepo) MenuItems(ctx context.Context, limit int) ([]models.MenuItem, error) {
	const op = "repository.menu_item_repository.MenuItems"

	builder := r.sb.Select(menuItemColumns...).
		From("menu_items").
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryItems(ctx, op, query, args)
}

func (r *MenuItemRepo) MenuItemsByTag(ctx context.Context, tagID uuid.UUID) ([]models.MenuItem, error) {
	const op = "repository.menu_item_repository.MenuItemsByTag"

	query, args, err := r.sb.Select(prefixed("mi", menuItemColumns)...).
		From("menu_items mi").
		Join("menu_item_tags mit ON mit.menu_item_id = mi.id").
		Where(sq.Eq{"mit.tag_id": tagID}).
		OrderBy("mi.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryItems(ctx, op, query, args)
}

func (r *MenuItemRepo) MenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error) {
	const op = "repository.menu_item_repository.MenuItemsByCategory"

	query, args, err := r.sb.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryItems(ctx, op, query, args)
}

// ItemsForMenu returns the items of a menu in their stored display order.
func (r *MenuItemRepo) ItemsForMenu(ctx context.Context, menuID uuid.UUID) ([]models.MenuItem, error) {
	const op = "repository.menu_item_repository.ItemsForMenu"

	query, args, err := r.sb.Select(prefixed("mi", menuItemColumns)...).
		From("menu_items mi").
		Join("menu_menu_items mmi ON mmi.menu_item_id = mi.id").
		Where(sq.Eq{"mmi.menu_id": menuID}).
		OrderBy("mmi.position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r.queryItems(ctx, op, query, args)
}

func (r *MenuItemRepo) queryItems(ctx context.Context, op, query string, args []interface{}) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Slug,
			&item.Image,
			&item.Price,
			&item.CategoryID,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err := r.attachRelations(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// attachRelations populates Tags and Category for the given items with two
// batch queries instead of one pair per item.
func (r *MenuItemRepo) attachRelations(ctx context.Context, items []models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	categoryIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		if item.CategoryID != nil {
			categoryIDs = append(categoryIDs, *item.CategoryID)
		}
	}

	tagsByItem, err := r.tagsForItems(ctx, itemIDs)
	if err != nil {
		return err
	}

	categories := map[uuid.UUID]models.Category{}
	if len(categoryIDs) > 0 {
		categories, err = r.categoriesByID(ctx, categoryIDs)
		if err != nil {
			return err
		}
	}

	for i := range items {
		items[i].Tags = tagsByItem[items[i].ID]
		if items[i].Tags == nil {
			items[i].Tags = []models.Tag{}
		}
		if items[i].CategoryID != nil {
			if category, ok := categories[*items[i].CategoryID]; ok {
				items[i].Category = &category
			}
		}
	}

	return nil
}

func (r *MenuItemRepo) tagsForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error) {
	query, args, err := r.sb.Select("mit.menu_item_id", "t.id", "t.title", "t.created_at").
		From("menu_item_tags mit").
		Join("tags t ON t.id = mit.tag_id").
		Where(sq.Eq{"mit.menu_item_id": itemIDs}).
		OrderBy("t.title ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tagsByItem := make(map[uuid.UUID][]models.Tag)
	for rows.Next() {
		var itemID uuid.UUID
		var tag models.Tag
		if err := rows.Scan(&itemID, &tag.ID, &tag.Title, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tagsByItem[itemID] = append(tagsByItem[itemID], tag)
	}

	return tagsByItem, nil
}

func (r *MenuItemRepo) categoriesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Category, error) {
	query, args, err := r.sb.Select("id", "title", "created_at").
		From("categories").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make(map[uuid.UUID]models.Category)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Title, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories[category.ID] = category
	}

	return categories, nil
}

func (r *MenuItemRepo) UpdateMenuItem(ctx context.Context, item models.MenuItem) error {
	const op = "repository.menu_item_repository.UpdateMenuItem"

	query, args, err := r.sb.Update("menu_items").
		Set("title", item.Title).
		Set("description", item.Description).
		Set("slug", item.Slug).
		Set("image", item.Image).
		Set("price", item.Price).
		Set("category_id", item.CategoryID).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": item.ID}).
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

func (r *MenuItemRepo) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	const op = "repository.menu_item_repository.DeleteMenuItem"

	query, args, err := r.sb.Delete("menu_items").
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

// AttachTag is idempotent: re-attaching an existing tag is a no-op.
func (r *MenuItemRepo) AttachTag(ctx context.Context, itemID, tagID uuid.UUID) error {
	const op = "repository.menu_item_repository.AttachTag"

	query, args, err := r.sb.Insert("menu_item_tags").
		Columns("menu_item_id", "tag_id").
		Values(itemID, tagID).
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

func (r *MenuItemRepo) DetachTag(ctx context.Context, itemID, tagID uuid.UUID) error {
	const op = "repository.menu_item_repository.DetachTag"

	query, args, err := r.sb.Delete("menu_item_tags").
		Where(sq.Eq{"menu_item_id": itemID, "tag_id": tagID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *MenuItemRepo) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	const op = "repository.menu_item_repository.SlugTaken"
	return slugTaken(ctx, r.db, r.sb, "menu_items", slug, exclude, op)
}

func (r *MenuItemRepo) CountMenuItems(ctx context.Context) (int, error) {
	const op = "repository.menu_item_repository.CountMenuItems"
	return countRows(ctx, r.db, r.sb, "menu_items", op)
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, column := range columns {
		out[i] = alias + "." + column
	}
	return out
}
