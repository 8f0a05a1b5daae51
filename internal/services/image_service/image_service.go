package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/repository"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("not the image owner")

// UploadBroker hands out presigned upload URLs and deletes stored objects.
type UploadBroker interface {
	PresignUpload(ctx context.Context, fileType string) (url, key string, err error)
	DeleteObject(ctx context.Context, key string) error
}

// GalleryAppender is the slice of the gallery service image creation uses for
// the best-effort auto-append.
type GalleryAppender interface {
	AddImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error)
}

type ImageService struct {
	log     *slog.Logger
	repo    repository.ImageRepository
	broker  UploadBroker
	gallery GalleryAppender
}

func NewImageService(log *slog.Logger, repo repository.ImageRepository, broker UploadBroker, gallery GalleryAppender) *ImageService {
	return &ImageService{
		log:     log,
		repo:    repo,
		broker:  broker,
		gallery: gallery,
	}
}

// PresignUpload returns a time-limited PUT URL; the client uploads directly
// to the bucket and then registers the image with CreateImage.
func (s *ImageService) PresignUpload(ctx context.Context, fileType string) (dto.UploadURLResponse, error) {
	const op = "service.ImageService.PresignUpload"
	log := s.log.With(
		slog.String("op", op),
		slog.String("file_type", fileType),
	)

	url, key, err := s.broker.PresignUpload(ctx, fileType)
	if err != nil {
		log.Error("failed to presign upload", sl.Err(err))
		return dto.UploadURLResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("upload url issued", slog.String("key", key))

	return dto.UploadURLResponse{UploadURL: url, Key: key}, nil
}

// CreateImage stores the record for an already-uploaded object and appends it
// to the shared gallery. The append is best-effort: a failure is logged, not
// surfaced, the image record stands either way.
func (s *ImageService) CreateImage(ctx context.Context, callerID uuid.UUID, req dto.CreateImageRequest) (models.Image, error) {
	const op = "service.ImageService.CreateImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
	)

	id, err := s.repo.SaveImage(ctx, models.Image{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Key:         req.Key,
		UploadedBy:  callerID,
	})
	if err != nil {
		log.Error("failed to save image", sl.Err(err))
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image created", slog.String("image_id", id.String()))

	caller := uuid.NullUUID{UUID: callerID, Valid: true}
	if _, err := s.gallery.AddImage(ctx, id, caller); err != nil {
		log.Warn("failed to auto-append image to gallery", sl.Err(err))
	}

	return s.repo.ImageByID(ctx, id)
}

func (s *ImageService) ImageByID(ctx context.Context, id uuid.UUID) (models.Image, error) {
	const op = "service.ImageService.ImageByID"

	image, err := s.repo.ImageByID(ctx, id)
	if err != nil {
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	return image, nil
}

func (s *ImageService) Images(ctx context.Context) ([]models.Image, error) {
	const op = "service.ImageService.Images"

	images, err := s.repo.Images(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

// UpdateImage edits title/description; only the uploader may edit.
func (s *ImageService) UpdateImage(ctx context.Context, id, callerID uuid.UUID, req dto.UpdateImageRequest) (models.Image, error) {
	const op = "service.ImageService.UpdateImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("image_id", id.String()),
	)

	image, err := s.repo.ImageByID(ctx, id)
	if err != nil {
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}
	if image.UploadedBy != callerID {
		log.Warn("caller is not the owner", slog.String("caller_id", callerID.String()))
		return models.Image{}, fmt.Errorf("%s: %w", op, ErrNotOwner)
	}

	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}

	if err := s.repo.UpdateImage(ctx, image); err != nil {
		log.Error("failed to update image", sl.Err(err))
		return models.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image updated")

	return s.repo.ImageByID(ctx, id)
}

// DeleteImage removes the stored object first, then the record. The record
// survives if the object delete fails, so the key is never orphaned silently.
func (s *ImageService) DeleteImage(ctx context.Context, id, callerID uuid.UUID) error {
	const op = "service.ImageService.DeleteImage"
	log := s.log.With(
		slog.String("op", op),
		slog.String("image_id", id.String()),
	)

	image, err := s.repo.ImageByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if image.UploadedBy != callerID {
		log.Warn("caller is not the owner", slog.String("caller_id", callerID.String()))
		return fmt.Errorf("%s: %w", op, ErrNotOwner)
	}

	if err := s.broker.DeleteObject(ctx, image.Key); err != nil {
		log.Error("failed to delete stored object", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteImage(ctx, id); err != nil {
		log.Error("failed to delete image record", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("image deleted")

	return nil
}
