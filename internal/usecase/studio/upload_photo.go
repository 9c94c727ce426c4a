package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

// MaxPhotoBytes bounds the raw upload before decoding.
const MaxPhotoBytes = 8 << 20

type Store interface {
	Get(ctx context.Context, id uint) (*models.Studio, error)
	Save(ctx context.Context, s *models.Studio) error
}

type UploadStudioPhoto struct {
	studios Store
	objects storage.ObjectStore
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewUploadStudioPhoto(
	studios Store,
	objects storage.ObjectStore,
	auditor *audit.Dispatcher,
	log *zap.Logger,
) *UploadStudioPhoto {
	return &UploadStudioPhoto{
		studios: studios,
		objects: objects,
		audit:   auditor,
		log:     log,
	}
}

func (uc *UploadStudioPhoto) Execute(
	ctx context.Context,
	adminID uint,
	studioID uint,
	raw []byte,
) (*models.Studio, error) {

	if len(raw) == 0 || len(raw) > MaxPhotoBytes {
		return nil, httperr.ErrBusiness("invalid_photo_size")
	}

	s, err := uc.studios.Get(ctx, studioID)
	if err != nil {
		return nil, httperr.ErrBusiness("studio_not_found")
	}

	webp, err := storage.NormalizePhoto(raw)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			return nil, httperr.ErrBusiness("unsupported_image")
		}
		return nil, err
	}

	key := fmt.Sprintf("studios/%d/%s.webp", s.ID, uuid.NewString())
	url, err := uc.objects.Put(ctx, key, "image/webp", webp)
	if err != nil {
		return nil, err
	}

	s.PhotoURL = url
	if err := uc.studios.Save(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "studio_photo_uploaded",
		Entity:   "studio",
		EntityID: &s.ID,
		Metadata: map[string]any{"key": key, "bytes": len(webp)},
	})
	uc.log.Info("studio photo stored", zap.Uint("studio_id", s.ID), zap.String("key", key))

	return s, nil
}
