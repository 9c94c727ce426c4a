package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
)

var businessStatus = map[string]int{
	"studio_not_found":  http.StatusNotFound,
	"booking_not_found": http.StatusNotFound,
	"time_conflict":     http.StatusConflict,
	"invalid_state":     http.StatusConflict,
}

var businessMessage = map[string]string{
	"studio_not_found":     "Studio not found.",
	"booking_not_found":    "Booking not found.",
	"time_conflict":        "That time is no longer available.",
	"invalid_state":        "The booking cannot change to that state.",
	"studio_inactive":      "The studio is not taking bookings.",
	"too_soon":             "Bookings must be made further in advance.",
	"invalid_date":         "Date must be YYYY-MM-DD.",
	"invalid_time":         "Time must be HH:MM.",
	"invalid_duration":     "Duration must be between 0 and 24 hours.",
	"invalid_studio_hours": "The studio opening hours are misconfigured.",
	"invalid_photo_size":   "The photo must be between 1 byte and 8 MB.",
	"unsupported_image":    "Upload a JPEG, PNG or WebP image.",
}

// writeError maps use case errors onto the JSON error envelope.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httperr.Invalid(c, verr.Fields)
		return
	}

	if code := httperr.Code(err); code != "" {
		status, ok := businessStatus[code]
		if !ok {
			status = http.StatusBadRequest
		}
		msg, ok := businessMessage[code]
		if !ok {
			msg = code
		}
		httperr.Write(c, status, code, msg)
		return
	}

	log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
