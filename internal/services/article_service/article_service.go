package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/lib/slugutil"
	"restaurant_cms/internal/repository"
	"restaurant_cms/internal/storage"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
)

var ErrNotAuthor = errors.New("not the author")

type ArticleService struct {
	log  *slog.Logger
	repo repository.ArticleRepository
}

func NewArticleService(log *slog.Logger, repo repository.ArticleRepository) *ArticleService {
	return &ArticleService{
		log:  log,
		repo: repo,
	}
}

func (s *ArticleService) CreateArticle(ctx context.Context, authorID uuid.UUID, req dto.CreateArticleRequest) (models.Article, error) {
	const op = "service.ArticleService.CreateArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.String("author_id", authorID.String()),
	)

	log.Info("creating article", slog.String("title", req.Title))

	slug, err := slugutil.ResolveUnique(ctx, s.repo.SlugTaken, req.Title, uuid.Nil)
	if err != nil {
		log.Error("failed to resolve slug", sl.Err(err))
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	article := models.Article{
		Title:      req.Title,
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		AuthorID:   authorID,
	}
	if article.Published {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	id, err := s.repo.SaveArticle(ctx, article)
	if err != nil {
		log.Error("failed to save article", sl.Err(err))
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("article created", slog.String("article_id", id.String()))

	return s.repo.ArticleByID(ctx, id)
}

// ArticleByID returns the caller's article, drafts included. Another author's
// article is indistinguishable from a missing one.
func (s *ArticleService) ArticleByID(ctx context.Context, id, callerID uuid.UUID) (models.Article, error) {
	const op = "service.ArticleService.ArticleByID"

	article, err := s.repo.ArticleByID(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	if article.AuthorID != callerID {
		return models.Article{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return article, nil
}

// ArticleBySlug is the slug counterpart of ArticleByID, same ownership rule.
func (s *ArticleService) ArticleBySlug(ctx context.Context, slug string, callerID uuid.UUID) (models.Article, error) {
	const op = "service.ArticleService.ArticleBySlug"

	article, err := s.repo.ArticleBySlug(ctx, slug)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	if article.AuthorID != callerID {
		return models.Article{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return article, nil
}

// PublishedArticle returns a published article by slug for the public feed.
func (s *ArticleService) PublishedArticle(ctx context.Context, slug string) (models.Article, error) {
	const op = "service.ArticleService.PublishedArticle"

	article, err := s.repo.ArticleBySlug(ctx, slug)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	if !article.Published {
		// Unpublished articles are invisible publicly.
		return models.Article{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return article, nil
}

func (s *ArticleService) PublishedArticles(ctx context.Context) ([]models.Article, error) {
	const op = "service.ArticleService.PublishedArticles"

	articles, err := s.repo.PublishedArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

func (s *ArticleService) ArticlesByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Article, error) {
	const op = "service.ArticleService.ArticlesByAuthor"

	articles, err := s.repo.ArticlesByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return articles, nil
}

// UpdateArticle merges the changed fields. The slug is re-derived only when
// the title actually changes.
func (s *ArticleService) UpdateArticle(ctx context.Context, id, callerID uuid.UUID, req dto.UpdateArticleRequest) (models.Article, error) {
	const op = "service.ArticleService.UpdateArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.String("article_id", id.String()),
	)

	article, err := s.repo.ArticleByID(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	if article.AuthorID != callerID {
		log.Warn("caller is not the author", slog.String("caller_id", callerID.String()))
		return models.Article{}, fmt.Errorf("%s: %w", op, ErrNotAuthor)
	}

	if req.Title != nil && *req.Title != article.Title {
		article.Title = *req.Title
		article.Slug, err = slugutil.ResolveUnique(ctx, s.repo.SlugTaken, article.Title, article.ID)
		if err != nil {
			log.Error("failed to resolve slug", sl.Err(err))
			return models.Article{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.CoverImage != nil {
		article.CoverImage = req.CoverImage
	}

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		log.Error("failed to update article", sl.Err(err))
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("article updated")

	return s.repo.ArticleByID(ctx, id)
}

// TogglePublish flips the published flag: publishing stamps published_at,
// unpublishing clears it.
func (s *ArticleService) TogglePublish(ctx context.Context, id, callerID uuid.UUID) (models.Article, error) {
	const op = "service.ArticleService.TogglePublish"
	log := s.log.With(
		slog.String("op", op),
		slog.String("article_id", id.String()),
	)

	article, err := s.repo.ArticleByID(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}
	if article.AuthorID != callerID {
		log.Warn("caller is not the author", slog.String("caller_id", callerID.String()))
		return models.Article{}, fmt.Errorf("%s: %w", op, ErrNotAuthor)
	}

	article.Published = !article.Published
	if article.Published {
		now := time.Now().UTC()
		article.PublishedAt = &now
	} else {
		article.PublishedAt = nil
	}

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		log.Error("failed to update article", sl.Err(err))
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("article publish state toggled", slog.Bool("published", article.Published))

	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id, callerID uuid.UUID) error {
	const op = "service.ArticleService.DeleteArticle"
	log := s.log.With(
		slog.String("op", op),
		slog.String("article_id", id.String()),
	)

	article, err := s.repo.ArticleByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if article.AuthorID != callerID {
		log.Warn("caller is not the author", slog.String("caller_id", callerID.String()))
		return fmt.Errorf("%s: %w", op, ErrNotAuthor)
	}

	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		log.Error("failed to delete article", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("article deleted")

	return nil
}
