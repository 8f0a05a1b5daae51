package services

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/repository"

	"github.com/google/uuid"
)

// TaxonomyService manages tags and categories, the two flat classification
// collections menu items reference.
type TaxonomyService struct {
	log        *slog.Logger
	tags       repository.TagRepository
	categories repository.CategoryRepository
}

func NewTaxonomyService(log *slog.Logger, tags repository.TagRepository, categories repository.CategoryRepository) *TaxonomyService {
	return &TaxonomyService{
		log:        log,
		tags:       tags,
		categories: categories,
	}
}

func (s *TaxonomyService) CreateTag(ctx context.Context, title string) (models.Tag, error) {
	const op = "service.TaxonomyService.CreateTag"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", title),
	)

	id, err := s.tags.SaveTag(ctx, models.Tag{Title: title})
	if err != nil {
		log.Error("failed to save tag", sl.Err(err))
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("tag created", slog.String("tag_id", id.String()))

	return s.tags.TagByID(ctx, id)
}

func (s *TaxonomyService) TagByID(ctx context.Context, id uuid.UUID) (models.Tag, error) {
	const op = "service.TaxonomyService.TagByID"

	tag, err := s.tags.TagByID(ctx, id)
	if err != nil {
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	return tag, nil
}

func (s *TaxonomyService) Tags(ctx context.Context) ([]models.Tag, error) {
	const op = "service.TaxonomyService.Tags"

	tags, err := s.tags.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

func (s *TaxonomyService) UpdateTag(ctx context.Context, id uuid.UUID, title string) (models.Tag, error) {
	const op = "service.TaxonomyService.UpdateTag"
	log := s.log.With(
		slog.String("op", op),
		slog.String("tag_id", id.String()),
	)

	if err := s.tags.UpdateTag(ctx, models.Tag{ID: id, Title: title}); err != nil {
		log.Error("failed to update tag", sl.Err(err))
		return models.Tag{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.tags.TagByID(ctx, id)
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	const op = "service.TaxonomyService.DeleteTag"

	if err := s.tags.DeleteTag(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, title string) (models.Category, error) {
	const op = "service.TaxonomyService.CreateCategory"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", title),
	)

	id, err := s.categories.SaveCategory(ctx, models.Category{Title: title})
	if err != nil {
		log.Error("failed to save category", sl.Err(err))
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category created", slog.String("category_id", id.String()))

	return s.categories.CategoryByID(ctx, id)
}

func (s *TaxonomyService) CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	const op = "service.TaxonomyService.CategoryByID"

	category, err := s.categories.CategoryByID(ctx, id)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (s *TaxonomyService) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "service.TaxonomyService.Categories"

	categories, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id uuid.UUID, title string) (models.Category, error) {
	const op = "service.TaxonomyService.UpdateCategory"
	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id.String()),
	)

	if err := s.categories.UpdateCategory(ctx, models.Category{ID: id, Title: title}); err != nil {
		log.Error("failed to update category", sl.Err(err))
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.categories.CategoryByID(ctx, id)
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "service.TaxonomyService.DeleteCategory"

	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
