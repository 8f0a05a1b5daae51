package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/storage"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) SaveArticle(ctx context.Context, article models.Article) (uuid.UUID, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockArticleRepository) ArticleByID(ctx context.Context, id uuid.UUID) (models.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Article), args.Error(1)
}

func (m *MockArticleRepository) ArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Article), args.Error(1)
}

func (m *MockArticleRepository) PublishedArticles(ctx context.Context) ([]models.Article, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) ArticlesByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Article, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) UpdateArticle(ctx context.Context, article models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, exclude)
	return args.Bool(0), args.Error(1)
}

var (
	testCtx  = context.Background()
	testLog  = slog.New(slog.NewTextHandler(io.Discard, nil))
	authorID = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	otherID  = uuid.MustParse("66666666-6666-6666-6666-666666666666")
)

func TestCreateArticle_PublishedStampsTimestamp(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("SlugTaken", testCtx, "grand-opening", uuid.Nil).Return(false, nil).Once()
	repo.On("SaveArticle", testCtx, mock.MatchedBy(func(article models.Article) bool {
		return article.Published && article.PublishedAt != nil && article.Slug == "grand-opening"
	})).Return(id, nil).Once()
	repo.On("ArticleByID", testCtx, id).Return(models.Article{ID: id}, nil).Once()

	_, err := service.CreateArticle(testCtx, authorID, dto.CreateArticleRequest{
		Title:     "Grand Opening",
		Excerpt:   "we are open",
		Content:   "come visit",
		Published: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateArticle_DraftHasNoTimestamp(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("SlugTaken", testCtx, "draft-post", uuid.Nil).Return(false, nil).Once()
	repo.On("SaveArticle", testCtx, mock.MatchedBy(func(article models.Article) bool {
		return !article.Published && article.PublishedAt == nil
	})).Return(id, nil).Once()
	repo.On("ArticleByID", testCtx, id).Return(models.Article{ID: id}, nil).Once()

	_, err := service.CreateArticle(testCtx, authorID, dto.CreateArticleRequest{
		Title:   "Draft Post",
		Excerpt: "x",
		Content: "y",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTogglePublish_PublishSetsTimestamp(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID, Published: false}, nil).Once()
	repo.On("UpdateArticle", testCtx, mock.MatchedBy(func(article models.Article) bool {
		return article.Published && article.PublishedAt != nil
	})).Return(nil).Once()

	article, err := service.TogglePublish(testCtx, id, authorID)

	assert.NoError(t, err)
	assert.True(t, article.Published)
	assert.NotNil(t, article.PublishedAt)
	repo.AssertExpectations(t)
}

func TestTogglePublish_UnpublishClearsTimestamp(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID, Published: true}, nil).Once()
	repo.On("UpdateArticle", testCtx, mock.MatchedBy(func(article models.Article) bool {
		return !article.Published && article.PublishedAt == nil
	})).Return(nil).Once()

	article, err := service.TogglePublish(testCtx, id, authorID)

	assert.NoError(t, err)
	assert.False(t, article.Published)
	assert.Nil(t, article.PublishedAt)
	repo.AssertExpectations(t)
}

func TestTogglePublish_NotAuthor(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID}, nil).Once()

	_, err := service.TogglePublish(testCtx, id, otherID)

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything)
}

func TestUpdateArticle_SlugKeptWhenTitleUnchanged(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	existing := models.Article{ID: id, AuthorID: authorID, Title: "Grand Opening", Slug: "grand-opening"}

	content := "updated body"
	repo.On("ArticleByID", testCtx, id).Return(existing, nil).Twice()
	repo.On("UpdateArticle", testCtx, mock.MatchedBy(func(article models.Article) bool {
		return article.Slug == "grand-opening" && article.Content == content
	})).Return(nil).Once()

	_, err := service.UpdateArticle(testCtx, id, authorID, dto.UpdateArticleRequest{Content: &content})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "SlugTaken", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestDeleteArticle_NotAuthor(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID}, nil).Once()

	err := service.DeleteArticle(testCtx, id, otherID)

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "DeleteArticle", mock.Anything, mock.Anything)
}

func TestArticleByID_OwnArticle(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID}, nil).Once()

	article, err := service.ArticleByID(testCtx, id, authorID)

	assert.NoError(t, err)
	assert.Equal(t, id, article.ID)
}

func TestArticleByID_OtherAuthorLooksMissing(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	id := uuid.New()
	repo.On("ArticleByID", testCtx, id).
		Return(models.Article{ID: id, AuthorID: authorID, Published: false}, nil).Once()

	_, err := service.ArticleByID(testCtx, id, otherID)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestArticleBySlug_OtherAuthorLooksMissing(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	repo.On("ArticleBySlug", testCtx, "secret-draft").
		Return(models.Article{Slug: "secret-draft", AuthorID: authorID}, nil).Once()

	_, err := service.ArticleBySlug(testCtx, "secret-draft", otherID)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPublishedArticle_HidesDrafts(t *testing.T) {
	repo := new(MockArticleRepository)
	service := NewArticleService(testLog, repo)

	repo.On("ArticleBySlug", testCtx, "draft-post").
		Return(models.Article{Slug: "draft-post", Published: false}, nil).Once()

	_, err := service.PublishedArticle(testCtx, "draft-post")

	assert.ErrorIs(t, err, storage.ErrNotFound)
}
