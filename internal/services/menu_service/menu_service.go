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

type MenuService struct {
	log   *slog.Logger
	repo  repository.MenuRepository
	items repository.MenuItemRepository
}

func NewMenuService(log *slog.Logger, repo repository.MenuRepository, items repository.MenuItemRepository) *MenuService {
	return &MenuService{
		log:   log,
		repo:  repo,
		items: items,
	}
}

func (s *MenuService) CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (models.Menu, error) {
	const op = "service.MenuService.CreateMenu"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating menu")

	slug, err := slugutil.ResolveUnique(ctx, s.repo.SlugTaken, req.Title, uuid.Nil)
	if err != nil {
		log.Error("failed to resolve slug", sl.Err(err))
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveMenu(ctx, models.Menu{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		log.Error("failed to save menu", sl.Err(err))
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, itemID := range req.MenuItemIDs {
		if err := s.repo.AttachItem(ctx, id, itemID); err != nil {
			log.Error("failed to attach menu item", sl.Err(err))
			return models.Menu{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("menu created", slog.String("menu_id", id.String()))

	return s.MenuByID(ctx, id)
}

// MenuByID returns the menu with its items populated in display order.
func (s *MenuService) MenuByID(ctx context.Context, id uuid.UUID) (models.Menu, error) {
	const op = "service.MenuService.MenuByID"

	menu, err := s.repo.MenuByID(ctx, id)
	if err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.populate(ctx, &menu); err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	return menu, nil
}

func (s *MenuService) MenuBySlug(ctx context.Context, slug string) (models.Menu, error) {
	const op = "service.MenuService.MenuBySlug"

	menu, err := s.repo.MenuBySlug(ctx, slug)
	if err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.populate(ctx, &menu); err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	return menu, nil
}

func (s *MenuService) Menus(ctx context.Context) ([]models.Menu, error) {
	const op = "service.MenuService.Menus"

	menus, err := s.repo.Menus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range menus {
		if err := s.populate(ctx, &menus[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return menus, nil
}

func (s *MenuService) populate(ctx context.Context, menu *models.Menu) error {
	items, err := s.items.ItemsForMenu(ctx, menu.ID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	menu.Items = items

	return nil
}

func (s *MenuService) UpdateMenu(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (models.Menu, error) {
	const op = "service.MenuService.UpdateMenu"
	log := s.log.With(
		slog.String("op", op),
		slog.String("menu_id", id.String()),
	)

	menu, err := s.repo.MenuByID(ctx, id)
	if err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil && *req.Title != menu.Title {
		menu.Title = *req.Title
		menu.Slug, err = slugutil.ResolveUnique(ctx, s.repo.SlugTaken, menu.Title, menu.ID)
		if err != nil {
			log.Error("failed to resolve slug", sl.Err(err))
			return models.Menu{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Image != nil {
		menu.Image = req.Image
	}

	if err := s.repo.UpdateMenu(ctx, menu); err != nil {
		log.Error("failed to update menu", sl.Err(err))
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu updated")

	return s.MenuByID(ctx, id)
}

func (s *MenuService) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	const op = "service.MenuService.DeleteMenu"
	log := s.log.With(
		slog.String("op", op),
		slog.String("menu_id", id.String()),
	)

	if err := s.repo.DeleteMenu(ctx, id); err != nil {
		log.Error("failed to delete menu", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu deleted")

	return nil
}

// AttachItem adds the item at the end of the menu; attaching twice is a no-op.
func (s *MenuService) AttachItem(ctx context.Context, menuID, itemID uuid.UUID) (models.Menu, error) {
	const op = "service.MenuService.AttachItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("menu_id", menuID.String()),
		slog.String("item_id", itemID.String()),
	)

	if _, err := s.repo.MenuByID(ctx, menuID); err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.items.MenuItemByID(ctx, itemID); err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.AttachItem(ctx, menuID, itemID); err != nil {
		log.Error("failed to attach menu item", sl.Err(err))
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu item attached")

	return s.MenuByID(ctx, menuID)
}

func (s *MenuService) DetachItem(ctx context.Context, menuID, itemID uuid.UUID) (models.Menu, error) {
	const op = "service.MenuService.DetachItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("menu_id", menuID.String()),
		slog.String("item_id", itemID.String()),
	)

	if _, err := s.repo.MenuByID(ctx, menuID); err != nil {
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DetachItem(ctx, menuID, itemID); err != nil {
		log.Error("failed to detach menu item", sl.Err(err))
		return models.Menu{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("menu item detached")

	return s.MenuByID(ctx, menuID)
}
