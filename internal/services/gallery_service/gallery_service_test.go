package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Gallery(ctx context.Context) (models.Gallery, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) CreateGallery(ctx context.Context, lastUpdatedBy uuid.NullUUID) (models.Gallery, error) {
	args := m.Called(ctx, lastUpdatedBy)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GalleryImages(ctx context.Context, galleryID uuid.UUID) ([]models.Image, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockGalleryRepository) GalleryImageIDs(ctx context.Context, galleryID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) AppendImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error {
	args := m.Called(ctx, galleryID, imageID, updatedBy)
	return args.Error(0)
}

func (m *MockGalleryRepository) RemoveImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error {
	args := m.Called(ctx, galleryID, imageID, updatedBy)
	return args.Error(0)
}

func (m *MockGalleryRepository) ReplaceOrder(ctx context.Context, galleryID uuid.UUID, imageIDs []uuid.UUID, updatedBy uuid.NullUUID) error {
	args := m.Called(ctx, galleryID, imageIDs, updatedBy)
	return args.Error(0)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) SaveImage(ctx context.Context, image models.Image) (uuid.UUID, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockImageRepository) ImageByID(ctx context.Context, id uuid.UUID) (models.Image, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Image), args.Error(1)
}

func (m *MockImageRepository) Images(ctx context.Context) ([]models.Image, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockImageRepository) UpdateImage(ctx context.Context, image models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	testCtx     = context.Background()
	testLog     = slog.New(slog.NewTextHandler(io.Discard, nil))
	galleryID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	callerUUID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testCaller  = uuid.NullUUID{UUID: callerUUID, Valid: true}
	testGallery = models.Gallery{ID: galleryID, Images: []models.Image{}}
)

func newService(repo *MockGalleryRepository, images *MockImageRepository) *GalleryService {
	return NewGalleryService(testLog, repo, images)
}

func TestGetOrCreate_ReturnsExisting(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	repo.On("Gallery", testCtx).Return(testGallery, nil).Once()

	gallery, err := service.GetOrCreate(testCtx, testCaller)

	assert.NoError(t, err)
	assert.Equal(t, galleryID, gallery.ID)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "CreateGallery", mock.Anything, mock.Anything)
}

func TestGetOrCreate_CreatesWhenMissing(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	repo.On("Gallery", testCtx).
		Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()
	repo.On("CreateGallery", testCtx, testCaller).Return(testGallery, nil).Once()

	gallery, err := service.GetOrCreate(testCtx, testCaller)

	assert.NoError(t, err)
	assert.Equal(t, galleryID, gallery.ID)
	assert.Empty(t, gallery.Images)
	repo.AssertExpectations(t)
}

func TestGetOrCreate_IsIdempotent(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	repo.On("Gallery", testCtx).
		Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()
	repo.On("CreateGallery", testCtx, testCaller).Return(testGallery, nil).Once()
	// Second call finds the row and must not create again.
	repo.On("Gallery", testCtx).Return(testGallery, nil).Once()

	first, err := service.GetOrCreate(testCtx, testCaller)
	assert.NoError(t, err)

	second, err := service.GetOrCreate(testCtx, testCaller)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	repo.AssertExpectations(t)
}

func TestGetOrCreate_LosingRaceFallsBackToRead(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	repo.On("Gallery", testCtx).
		Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()
	repo.On("CreateGallery", testCtx, testCaller).
		Return(models.Gallery{}, storage.ErrGalleryExists).Once()
	repo.On("Gallery", testCtx).Return(testGallery, nil).Once()

	gallery, err := service.GetOrCreate(testCtx, testCaller)

	assert.NoError(t, err)
	assert.Equal(t, galleryID, gallery.ID)
	repo.AssertExpectations(t)
}

func TestAddImage_UnknownImage(t *testing.T) {
	repo := new(MockGalleryRepository)
	images := new(MockImageRepository)
	service := newService(repo, images)

	imageID := uuid.New()
	images.On("ImageByID", testCtx, imageID).
		Return(models.Image{}, storage.ErrImageNotFound).Once()

	_, err := service.AddImage(testCtx, imageID, testCaller)

	assert.ErrorIs(t, err, storage.ErrImageNotFound)
	repo.AssertNotCalled(t, "AppendImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddImage_Appends(t *testing.T) {
	repo := new(MockGalleryRepository)
	images := new(MockImageRepository)
	service := newService(repo, images)

	imageID := uuid.New()
	images.On("ImageByID", testCtx, imageID).
		Return(models.Image{ID: imageID}, nil).Once()
	repo.On("Gallery", testCtx).Return(testGallery, nil).Twice()
	repo.On("AppendImage", testCtx, galleryID, imageID, testCaller).Return(nil).Once()

	_, err := service.AddImage(testCtx, imageID, testCaller)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestRemoveImage_NoGallery(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	repo.On("Gallery", testCtx).
		Return(models.Gallery{}, storage.ErrGalleryNotFound).Once()

	_, err := service.RemoveImage(testCtx, uuid.New(), testCaller)

	assert.ErrorIs(t, err, storage.ErrGalleryNotFound)
	repo.AssertNotCalled(t, "RemoveImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveImage_AbsentImageIsNoOp(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	imageID := uuid.New()
	repo.On("Gallery", testCtx).Return(testGallery, nil).Twice()
	repo.On("RemoveImage", testCtx, galleryID, imageID, testCaller).Return(nil).Once()

	_, err := service.RemoveImage(testCtx, imageID, testCaller)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReorder_Success(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	reversed := []uuid.UUID{c, b, a}

	repo.On("Gallery", testCtx).Return(testGallery, nil).Twice()
	repo.On("GalleryImageIDs", testCtx, galleryID).
		Return([]uuid.UUID{a, b, c}, nil).Once()
	repo.On("ReplaceOrder", testCtx, galleryID, reversed, testCaller).Return(nil).Once()

	_, err := service.Reorder(testCtx, reversed, testCaller)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReorder_RejectsBadPermutations(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		requested []uuid.UUID
	}{
		{"missing image", []uuid.UUID{a, b}},
		{"extra image", []uuid.UUID{a, b, c, uuid.New()}},
		{"foreign image", []uuid.UUID{a, b, uuid.New()}},
		{"duplicate image", []uuid.UUID{a, b, b}},
		{"empty set", []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockGalleryRepository)
			service := newService(repo, new(MockImageRepository))

			repo.On("Gallery", testCtx).Return(testGallery, nil).Once()
			repo.On("GalleryImageIDs", testCtx, galleryID).
				Return([]uuid.UUID{a, b, c}, nil).Once()

			_, err := service.Reorder(testCtx, tt.requested, testCaller)

			assert.ErrorIs(t, err, ErrInvalidOrder)
			repo.AssertNotCalled(t, "ReplaceOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReorder_RepoErrorSurfaces(t *testing.T) {
	repo := new(MockGalleryRepository)
	service := newService(repo, new(MockImageRepository))

	a := uuid.New()
	expectedErr := errors.New("db down")

	repo.On("Gallery", testCtx).Return(testGallery, nil).Once()
	repo.On("GalleryImageIDs", testCtx, galleryID).Return([]uuid.UUID{a}, nil).Once()
	repo.On("ReplaceOrder", testCtx, galleryID, []uuid.UUID{a}, testCaller).
		Return(expectedErr).Once()

	_, err := service.Reorder(testCtx, []uuid.UUID{a}, testCaller)

	assert.ErrorIs(t, err, expectedErr)
	repo.AssertExpectations(t)
}
