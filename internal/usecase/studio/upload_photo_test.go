package studio

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

type MockStore struct{ mock.Mock }

func (m *MockStore) Get(ctx context.Context, id uint) (*models.Studio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Studio), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, s *models.Studio) error {
	return m.Called(ctx, s).Error(0)
}

type MockObjects struct{ mock.Mock }

func (m *MockObjects) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

type nopSink struct{}

func (nopSink) Log(audit.Event) error { return nil }

func pngBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 16))))
	return buf.Bytes()
}

func TestUploadStudioPhoto(t *testing.T) {
	studios := new(MockStore)
	studios.On("Get", mock.Anything, uint(3)).Return(&models.Studio{ID: 3, Name: "Studio A"}, nil)
	studios.On("Save", mock.Anything, mock.AnythingOfType("*models.Studio")).Return(nil)

	objects := new(MockObjects)
	objects.On("Put", mock.Anything, mock.MatchedBy(func(k string) bool {
		return strings.HasPrefix(k, "studios/3/") && strings.HasSuffix(k, ".webp")
	}), "image/webp", mock.Anything).Return("https://cdn.academy.test/studios/3/x.webp", nil)

	uc := NewUploadStudioPhoto(studios, objects, audit.NewDispatcher(nopSink{}, zap.NewNop()), zap.NewNop())

	s, err := uc.Execute(context.Background(), 1, 3, pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.academy.test/studios/3/x.webp", s.PhotoURL)
	objects.AssertExpectations(t)
	studios.AssertExpectations(t)
}

func TestUploadStudioPhotoRejects(t *testing.T) {
	studios := new(MockStore)
	studios.On("Get", mock.Anything, uint(3)).Return(&models.Studio{ID: 3}, nil)
	studios.On("Get", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	uc := NewUploadStudioPhoto(studios, new(MockObjects), audit.NewDispatcher(nopSink{}, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, 1, 3, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_photo_size"))

	_, err = uc.Execute(ctx, 1, 4, pngBytes(t))
	assert.True(t, httperr.IsBusiness(err, "studio_not_found"))

	_, err = uc.Execute(ctx, 1, 3, []byte("GIF89a nope"))
	assert.True(t, httperr.IsBusiness(err, "unsupported_image"))
}
