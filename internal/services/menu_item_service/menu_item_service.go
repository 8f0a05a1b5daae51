package services

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/lib/slugutil"
	"restaurant_cms/internal/repository"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
)

type MenuItemService struct {
	log  *slog.Logger
	repo repository.MenuItemRepository
	tags repository.TagRepository
}

func NewMenuItemService(log *slog.Logger, repo repository.MenuItemRepository, tags repository.TagRepository) *MenuItemService {
	return &MenuItemService{
		log:  log,
		repo: repo,
		tags: tags,
	}
}

func (s *MenuItemService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (models.MenuItem, error) {
	const op = "service.MenuItemService.CreateMenuItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating menu item")

	slug, err := slugutil.ResolveUnique(ctx, s.repo.SlugTaken, req.Title, uuid.Nil)
	if err != nil {
		log.Error("failed to resolve slug", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveMenuItem(ctx, models.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Slug:        slug,
		Image:       req.Image,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		log.Error("failed to save menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, tagID := range req.TagIDs {
		if err := s.repo.AttachTag(ctx, id, tagID); err != nil {
			log.Error("failed to attach tag", sl.Err(err))
			return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("menu item created", slog.String("item_id", id.String()))

	return s.repo.MenuItemByID(ctx, id)
}

func (s *MenuItemService) MenuItemByID(ctx context.Context, id uuid.UUID) (models.MenuItem, error) {
	const op = "service.MenuItemService.MenuItemByID"

	item, err := s.repo.MenuItemByID(ctx, id)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *MenuItemService) MenuItemBySlug(ctx context.Context, slug string) (models.MenuItem, error) {
	const op = "service.MenuItemService.MenuItemBySlug"

	item, err := s.repo.MenuItemBySlug(ctx, slug)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *MenuItemService) MenuItems(ctx context.Context, limit int) ([]models.MenuItem, error) {
	const op = "service.MenuItemService.MenuItems"

	items, err := s.repo.MenuItems(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *MenuItemService) MenuItemsByTag(ctx context.Context, tagID uuid.UUID) ([]models.MenuItem, error) {
	const op = "service.MenuItemService.MenuItemsByTag"

	if _, err := s.tags.TagByID(ctx, tagID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.repo.MenuItemsByTag(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *MenuItemService) MenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error) {
	const op = "service.MenuItemService.MenuItemsByCategory"

	items, err := s.repo.MenuItemsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *MenuItemService) UpdateMenuItem(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (models.MenuItem, error) {
	const op = "service.MenuItemService.UpdateMenuItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", id.String()),
	)

	item, err := s.repo.MenuItemByID(ctx, id)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil && *req.Title != item.Title {
		item.Title = *req.Title
		item.Slug, err = slugutil.ResolveUnique(ctx, s.repo.SlugTaken, item.Title, item.ID)
		if err != nil {
			log.Error("failed to resolve slug", sl.Err(err))
			return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}

	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		log.Error("failed to update menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu item updated")

	return s.repo.MenuItemByID(ctx, id)
}

func (s *MenuItemService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	const op = "service.MenuItemService.DeleteMenuItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", id.String()),
	)

	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		log.Error("failed to delete menu item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu item deleted")

	return nil
}

// AttachTag links the tag to the item; attaching twice is a no-op.
func (s *MenuItemService) AttachTag(ctx context.Context, itemID, tagID uuid.UUID) (models.MenuItem, error) {
	const op = "service.MenuItemService.AttachTag"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
		slog.String("tag_id", tagID.String()),
	)

	if _, err := s.repo.MenuItemByID(ctx, itemID); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.tags.TagByID(ctx, tagID); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.AttachTag(ctx, itemID, tagID); err != nil {
		log.Error("failed to attach tag", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("tag attached")

	return s.repo.MenuItemByID(ctx, itemID)
}

func (s *MenuItemService) DetachTag(ctx context.Context, itemID, tagID uuid.UUID) (models.MenuItem, error) {
	const op = "service.MenuItemService.DetachTag"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
		slog.String("tag_id", tagID.String()),
	)

	if _, err := s.repo.MenuItemByID(ctx, itemID); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DetachTag(ctx, itemID, tagID); err != nil {
		log.Error("failed to detach tag", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("tag detached")

	return s.repo.MenuItemByID(ctx, itemID)
}
