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

var articleColumns = []string{
	"id", "title", "slug", "excerpt", "content", "cover_image",
	"published", "published_at", "author_id", "created_at", "updated_at",
}

type ArticleRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewArticleRepository(db *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ArticleRepo) SaveArticle(ctx context.Context, article models.Article) (uuid.UUID, error) {
	const op = "repository.article_repository.SaveArticle"

	query, args, err := r.sb.Insert("articles").
		Columns("title", "slug", "excerpt", "content", "cover_image", "published", "published_at", "author_id").
		Values(
			article.Title,
			article.Slug,
			article.Excerpt,
			article.Content,
			article.CoverImage,
			article.Published,
			article.PublishedAt,
			article.AuthorID,
		).
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

func (r *ArticleRepo) ArticleByID(ctx context.Context, id uuid.UUID) (models.Article, error) {
	const op = "repository.article_repository.ArticleByID"
	return r.one(ctx, op, sq.Eq{"id": id})
}

func (r *ArticleRepo) ArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	const op = "repository.article_repository.ArticleBySlug"
	return r.one(ctx, op, sq.Eq{"slug": slug})
}

func (r *ArticleRepo) one(ctx context.Context, op string, where sq.Eq) (models.Article, error) {
	query, args, err := r.sb.Select(articleColumns...).
		From("articles").
		Where(where).
		ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	var article models.Article
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Excerpt,
		&article.Content,
		&article.CoverImage,
		&article.Published,
		&article.PublishedAt,
		&article.AuthorID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Article{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Article{}, fmt.Errorf("%s: %w", op, err)
	}

	return article, nil
}

func (r *ArticleRepo) PublishedArticles(ctx context.Context) ([]models.Article, error) {
	const op = "repository.article_repository.PublishedArticles"

	return r.many(ctx, op, sq.Eq{"published": true}, "published_at DESC")
}

func (r *ArticleRepo) ArticlesByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Article, error) {
	const op = "repository.article_repository.ArticlesByAuthor"

	return r.many(ctx, op, sq.Eq{"author_id": authorID}, "created_at DESC")
}

func (r *ArticleRepo) many(ctx context.Context, op string, where sq.Eq, orderBy string) ([]models.Article, error) {
	query, args, err := r.sb.Select(articleColumns...).
		From("articles").
		Where(where).
		OrderBy(orderBy).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Slug,
			&article.Excerpt,
			&article.Content,
			&article.CoverImage,
			&article.Published,
			&article.PublishedAt,
			&article.AuthorID,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func (r *ArticleRepo) UpdateArticle(ctx context.Context, article models.Article) error {
	const op = "repository.article_repository.UpdateArticle"

	query, args, err := r.sb.Update("articles").
		Set("title", article.Title).
		Set("slug", article.Slug).
		Set("excerpt", article.Excerpt).
		Set("content", article.Content).
		Set("cover_image", article.CoverImage).
		Set("published", article.Published).
		Set("published_at", article.PublishedAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": article.ID}).
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

func (r *ArticleRepo) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "repository.article_repository.DeleteArticle"

	query, args, err := r.sb.Delete("articles").
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

func (r *ArticleRepo) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	const op = "repository.article_repository.SlugTaken"

	return slugTaken(ctx, r.db, r.sb, "articles", slug, exclude, op)
}
