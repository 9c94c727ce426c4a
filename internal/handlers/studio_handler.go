package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	studiouc "github.com/BruksfildServices01/academy-scheduler/internal/usecase/studio"
	"github.com/BruksfildServices01/academy-scheduler/internal/usecase/studiobooking"
)

// StudioHandler serves the public studio catalogue and its availability.
// Admin create/update goes through the generic resource controller.
type StudioHandler struct {
	repo         domain.Repository
	availability *studiobooking.GetAvailability
	photos       *studiouc.UploadStudioPhoto
	log          *zap.Logger
}

func NewStudioHandler(
	repo domain.Repository,
	availability *studiobooking.GetAvailability,
	photos *studiouc.UploadStudioPhoto,
	log *zap.Logger,
) *StudioHandler {
	return &StudioHandler{
		repo:         repo,
		availability: availability,
		photos:       photos,
		log:          log,
	}
}

// List returns active studios; ?all=true includes inactive ones.
func (h *StudioHandler) List(c *gin.Context) {
	studios, err := h.repo.ListStudios(c.Request.Context(), c.Query("all") != "true")
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, studios)
}

func (h *StudioHandler) Get(c *gin.Context) {
	studio, err := h.repo.FindStudio(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, h.log, httperr.ErrBusiness("studio_not_found"))
			return
		}
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, studio)
}

// Availability: GET /studios/:id/availability?date=YYYY-MM-DD&duration=2&start=HH:MM
func (h *StudioHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	duration, err := strconv.ParseFloat(c.DefaultQuery("duration", "1"), 64)
	if err != nil {
		writeError(c, h.log, httperr.ErrBusiness("invalid_duration"))
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), studiobooking.AvailabilityInput{
		StudioID:      id,
		Date:          c.Query("date"),
		DurationHours: duration,
		Start:         c.Query("start"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

// UploadPhoto accepts a multipart "photo" field.
func (h *StudioHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_required", "Attach the image as the photo field.")
		return
	}
	if fh.Size > studiouc.MaxPhotoBytes {
		writeError(c, h.log, httperr.ErrBusiness("invalid_photo_size"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, studiouc.MaxPhotoBytes+1))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	studio, err := h.photos.Execute(c.Request.Context(), middleware.UserID(c), id, raw)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, studio)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
