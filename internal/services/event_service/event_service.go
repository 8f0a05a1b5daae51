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

type EventService struct {
	log  *slog.Logger
	repo repository.EventRepository
}

func NewEventService(log *slog.Logger, repo repository.EventRepository) *EventService {
	return &EventService{
		log:  log,
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (models.Event, error) {
	const op = "service.EventService.CreateEvent"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating event")

	slug, err := slugutil.ResolveUnique(ctx, s.repo.SlugTaken, req.Title, uuid.Nil)
	if err != nil {
		log.Error("failed to resolve slug", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveEvent(ctx, models.Event{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		log.Error("failed to save event", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event created", slog.String("event_id", id.String()))

	return s.repo.EventByID(ctx, id)
}

func (s *EventService) EventByID(ctx context.Context, id uuid.UUID) (models.Event, error) {
	const op = "service.EventService.EventByID"

	event, err := s.repo.EventByID(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *EventService) EventBySlug(ctx context.Context, slug string) (models.Event, error) {
	const op = "service.EventService.EventBySlug"

	event, err := s.repo.EventBySlug(ctx, slug)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *EventService) Events(ctx context.Context) ([]models.Event, error) {
	const op = "service.EventService.Events"

	events, err := s.repo.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (models.Event, error) {
	const op = "service.EventService.UpdateEvent"
	log := s.log.With(
		slog.String("op", op),
		slog.String("event_id", id.String()),
	)

	event, err := s.repo.EventByID(ctx, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil && *req.Title != event.Title {
		event.Title = *req.Title
		event.Slug, err = slugutil.ResolveUnique(ctx, s.repo.SlugTaken, event.Title, event.ID)
		if err != nil {
			log.Error("failed to resolve slug", sl.Err(err))
			return models.Event{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		log.Error("failed to update event", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event updated")

	return s.repo.EventByID(ctx, id)
}

func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "service.EventService.DeleteEvent"
	log := s.log.With(
		slog.String("op", op),
		slog.String("event_id", id.String()),
	)

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		log.Error("failed to delete event", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event deleted")

	return nil
}
