package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/patrickmn/go-cache"
)

const statsKey = "dashboard:stats"

// Counter is implemented by every repository exposing a row count.
type Counter func(ctx context.Context) (int, error)

// DashboardService aggregates entity counts for the admin dashboard. Counts
// are cached briefly so a dashboard refresh does not hammer the database.
type DashboardService struct {
	log        *slog.Logger
	cache      *cache.Cache
	events     Counter
	menuItems  Counter
	categories Counter
	menus      Counter
}

func NewDashboardService(log *slog.Logger, ttl time.Duration, events, menuItems, categories, menus Counter) *DashboardService {
	return &DashboardService{
		log:        log,
		cache:      cache.New(ttl, 2*ttl),
		events:     events,
		menuItems:  menuItems,
		categories: categories,
		menus:      menus,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	const op = "service.DashboardService.Stats"
	log := s.log.With(slog.String("op", op))

	if cached, ok := s.cache.Get(statsKey); ok {
		return cached.(dto.DashboardStats), nil
	}

	var stats dto.DashboardStats
	var err error

	if stats.Events, err = s.events(ctx); err != nil {
		log.Error("failed to count events", sl.Err(err))
		return dto.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}
	if stats.MenuItems, err = s.menuItems(ctx); err != nil {
		log.Error("failed to count menu items", sl.Err(err))
		return dto.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}
	if stats.Categories, err = s.categories(ctx); err != nil {
		log.Error("failed to count categories", sl.Err(err))
		return dto.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}
	if stats.Menus, err = s.menus(ctx); err != nil {
		log.Error("failed to count menus", sl.Err(err))
		return dto.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.SetDefault(statsKey, stats)

	return stats, nil
}
