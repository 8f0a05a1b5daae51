package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/repository"
	"restaurant_cms/internal/storage"

	"github.com/google/uuid"
)

// ErrInvalidOrder is returned when a reorder request is not an exact
// permutation of the gallery's current images.
var ErrInvalidOrder = errors.New("image ids must be a permutation of the current gallery")

// GalleryService manages the one shared gallery. All operations go through
// GetOrCreate so callers never observe a missing gallery on read.
type GalleryService struct {
	log    *slog.Logger
	repo   repository.GalleryRepository
	images repository.ImageRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, images repository.ImageRepository) *GalleryService {
	return &GalleryService{
		log:    log,
		repo:   repo,
		images: images,
	}
}

// GetOrCreate returns the singleton gallery, creating an empty one attributed
// to the caller on first access. A concurrent create losing the race falls
// back to reading the winner's row.
func (s *GalleryService) GetOrCreate(ctx context.Context, caller uuid.NullUUID) (models.Gallery, error) {
	const op = "service.GalleryService.GetOrCreate"
	log := s.log.With(slog.String("op", op))

	gallery, err := s.repo.Gallery(ctx)
	if err == nil {
		return gallery, nil
	}
	if !errors.Is(err, storage.ErrGalleryNotFound) {
		log.Error("failed to get gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery missing, creating")

	gallery, err = s.repo.CreateGallery(ctx, caller)
	if err != nil {
		if errors.Is(err, storage.ErrGalleryExists) {
			return s.repo.Gallery(ctx)
		}

		log.Error("failed to create gallery", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery created", slog.String("gallery_id", gallery.ID.String()))

	return gallery, nil
}

// AddImage appends a known image to the gallery. Adding an image that is
// already present keeps the order but still records who touched the gallery.
func (s *GalleryService) AddImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error) {
	const op = "service.GalleryService.AddImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("image_id", imageID.String()),
	)

	if _, err := s.images.ImageByID(ctx, imageID); err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	gallery, err := s.GetOrCreate(ctx, caller)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.AppendImage(ctx, gallery.ID, imageID, caller); err != nil {
		log.Error("failed to append image", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image added to gallery")

	return s.repo.Gallery(ctx)
}

// RemoveImage drops the image from the gallery. Removing an image that is not
// in the gallery leaves the membership alone but still records who touched it.
func (s *GalleryService) RemoveImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error) {
	const op = "service.GalleryService.RemoveImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("image_id", imageID.String()),
	)

	gallery, err := s.repo.Gallery(ctx)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.RemoveImage(ctx, gallery.ID, imageID, caller); err != nil {
		log.Error("failed to remove image", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image removed from gallery")

	return s.repo.Gallery(ctx)
}

// Reorder replaces the display order. The request must carry exactly the
// current image set: same length, same membership, no duplicates.
func (s *GalleryService) Reorder(ctx context.Context, imageIDs []uuid.UUID, caller uuid.NullUUID) (models.Gallery, error) {
	const op = "service.GalleryService.Reorder"
	log := s.log.With(slog.String("op", op))

	gallery, err := s.repo.Gallery(ctx)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.repo.GalleryImageIDs(ctx, gallery.ID)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	if !isPermutation(current, imageIDs) {
		log.Warn("reorder rejected",
			slog.Int("current", len(current)),
			slog.Int("requested", len(imageIDs)),
		)
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrInvalidOrder)
	}

	if err := s.repo.ReplaceOrder(ctx, gallery.ID, imageIDs, caller); err != nil {
		log.Error("failed to replace order", sl.Err(err))
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery reordered", slog.Int("images", len(imageIDs)))

	return s.repo.Gallery(ctx)
}

func isPermutation(current, requested []uuid.UUID) bool {
	if len(current) != len(requested) {
		return false
	}

	seen := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}

	for _, id := range requested {
		if !seen[id] {
			return false
		}
		// Each id may appear once.
		seen[id] = false
	}

	return true
}
