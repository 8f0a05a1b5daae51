package services

import (
	"context"
	"errors"
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

type MockUploadBroker struct {
	mock.Mock
}

func (m *MockUploadBroker) PresignUpload(ctx context.Context, fileType string) (string, string, error) {
	args := m.Called(ctx, fileType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUploadBroker) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockGalleryAppender struct {
	mock.Mock
}

func (m *MockGalleryAppender) AddImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error) {
	args := m.Called(ctx, imageID, caller)
	return args.Get(0).(models.Gallery), args.Error(1)
}

var (
	testCtx    = context.Background()
	testLog    = slog.New(slog.NewTextHandler(io.Discard, nil))
	ownerID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	strangerID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func TestPresignUpload(t *testing.T) {
	broker := new(MockUploadBroker)
	service := NewImageService(testLog, new(MockImageRepository), broker, new(MockGalleryAppender))

	broker.On("PresignUpload", testCtx, "image/png").
		Return("https://bucket.s3.amazonaws.com/uploads/abc.png?sig=x", "uploads/abc.png", nil).Once()

	res, err := service.PresignUpload(testCtx, "image/png")

	assert.NoError(t, err)
	assert.Equal(t, "uploads/abc.png", res.Key)
	assert.NotEmpty(t, res.UploadURL)
	broker.AssertExpectations(t)
}

func TestCreateImage_AppendsToGallery(t *testing.T) {
	repo := new(MockImageRepository)
	gallery := new(MockGalleryAppender)
	service := NewImageService(testLog, repo, new(MockUploadBroker), gallery)

	id := uuid.New()
	caller := uuid.NullUUID{UUID: ownerID, Valid: true}

	repo.On("SaveImage", testCtx, mock.MatchedBy(func(image models.Image) bool {
		return image.UploadedBy == ownerID && image.Key == "uploads/abc.png"
	})).Return(id, nil).Once()
	gallery.On("AddImage", testCtx, id, caller).Return(models.Gallery{}, nil).Once()
	repo.On("ImageByID", testCtx, id).Return(models.Image{ID: id}, nil).Once()

	image, err := service.CreateImage(testCtx, ownerID, dto.CreateImageRequest{
		Title: "Ramen",
		URL:   "https://bucket.s3.amazonaws.com/uploads/abc.png",
		Key:   "uploads/abc.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, id, image.ID)
	gallery.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateImage_GalleryAppendFailureIsNotFatal(t *testing.T) {
	repo := new(MockImageRepository)
	gallery := new(MockGalleryAppender)
	service := NewImageService(testLog, repo, new(MockUploadBroker), gallery)

	id := uuid.New()
	repo.On("SaveImage", testCtx, mock.Anything).Return(id, nil).Once()
	gallery.On("AddImage", testCtx, id, mock.Anything).
		Return(models.Gallery{}, errors.New("gallery unavailable")).Once()
	repo.On("ImageByID", testCtx, id).Return(models.Image{ID: id}, nil).Once()

	_, err := service.CreateImage(testCtx, ownerID, dto.CreateImageRequest{
		Title: "Ramen",
		URL:   "https://example.com/x.png",
		Key:   "uploads/x.png",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateImage_NotOwner(t *testing.T) {
	repo := new(MockImageRepository)
	service := NewImageService(testLog, repo, new(MockUploadBroker), new(MockGalleryAppender))

	id := uuid.New()
	repo.On("ImageByID", testCtx, id).
		Return(models.Image{ID: id, UploadedBy: ownerID}, nil).Once()

	title := "New title"
	_, err := service.UpdateImage(testCtx, id, strangerID, dto.UpdateImageRequest{Title: &title})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "UpdateImage", mock.Anything, mock.Anything)
}

func TestDeleteImage_NotOwner(t *testing.T) {
	repo := new(MockImageRepository)
	broker := new(MockUploadBroker)
	service := NewImageService(testLog, repo, broker, new(MockGalleryAppender))

	id := uuid.New()
	repo.On("ImageByID", testCtx, id).
		Return(models.Image{ID: id, UploadedBy: ownerID}, nil).Once()

	err := service.DeleteImage(testCtx, id, strangerID)

	assert.ErrorIs(t, err, ErrNotOwner)
	broker.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
}

func TestDeleteImage_ObjectDeleteFailureKeepsRecord(t *testing.T) {
	repo := new(MockImageRepository)
	broker := new(MockUploadBroker)
	service := NewImageService(testLog, repo, broker, new(MockGalleryAppender))

	id := uuid.New()
	expectedErr := errors.New("s3 unavailable")

	repo.On("ImageByID", testCtx, id).
		Return(models.Image{ID: id, UploadedBy: ownerID, Key: "uploads/abc.png"}, nil).Once()
	broker.On("DeleteObject", testCtx, "uploads/abc.png").Return(expectedErr).Once()

	err := service.DeleteImage(testCtx, id, ownerID)

	assert.ErrorIs(t, err, expectedErr)
	repo.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
}

func TestDeleteImage_Success(t *testing.T) {
	repo := new(MockImageRepository)
	broker := new(MockUploadBroker)
	service := NewImageService(testLog, repo, broker, new(MockGalleryAppender))

	id := uuid.New()
	repo.On("ImageByID", testCtx, id).
		Return(models.Image{ID: id, UploadedBy: ownerID, Key: "uploads/abc.png"}, nil).Once()
	broker.On("DeleteObject", testCtx, "uploads/abc.png").Return(nil).Once()
	repo.On("DeleteImage", testCtx, id).Return(nil).Once()

	err := service.DeleteImage(testCtx, id, ownerID)

	assert.NoError(t, err)
	broker.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestImageByID_NotFound(t *testing.T) {
	repo := new(MockImageRepository)
	service := NewImageService(testLog, repo, new(MockUploadBroker), new(MockGalleryAppender))

	id := uuid.New()
	repo.On("ImageByID", testCtx, id).
		Return(models.Image{}, storage.ErrImageNotFound).Once()

	_, err := service.ImageByID(testCtx, id)

	assert.ErrorIs(t, err, storage.ErrImageNotFound)
}
