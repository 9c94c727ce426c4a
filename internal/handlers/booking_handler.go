package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/academy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/academy-scheduler/internal/usecase/studiobooking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list    *studiobooking.ListStudioBookings
	mine    *studiobooking.ListMyBookings
	create  *studiobooking.CreateStudioBooking
	cancel  *studiobooking.CancelStudioBooking
	confirm *studiobooking.ConfirmStudioBooking
	log     *zap.Logger
}

func NewBookingHandler(
	list *studiobooking.ListStudioBookings,
	mine *studiobooking.ListMyBookings,
	create *studiobooking.CreateStudioBooking,
	cancel *studiobooking.CancelStudioBooking,
	confirm *studiobooking.ConfirmStudioBooking,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		list:    list,
		mine:    mine,
		create:  create,
		cancel:  cancel,
		confirm: confirm,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateBookingRequest is validated by the selection machine rather than
// binding tags so every missing field is reported at once.
type CreateBookingRequest struct {
	Studio       string  `json:"studio"`
	Date         string  `json:"date"`
	TimeSlot     string  `json:"time_slot"`
	Duration     float64 `json:"duration"`
	CustomerName string  `json:"customer_name"`
	Contact      string  `json:"contact"`
	Notes        string  `json:"notes"`
}

// ======================================================
// ROUTES
// ======================================================

// List: GET /bookings?studio=<id|name>&date=YYYY-MM-DD
func (h *BookingHandler) List(c *gin.Context) {
	studio := c.Query("studio")
	if studio == "" {
		httperr.Invalid(c, map[string]string{"studio": "required"})
		return
	}

	out, err := h.list.Execute(c.Request.Context(), studio, c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	var userID *uint
	if uid := middleware.UserID(c); uid != 0 {
		userID = &uid
	}

	b, err := h.create.Execute(c.Request.Context(), studiobooking.CreateStudioBookingInput{
		UserID:        userID,
		Studio:        req.Studio,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		DurationHours: req.Duration,
		CustomerName:  req.CustomerName,
		Contact:       req.Contact,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, studiobooking.ToDTO(b))
}

func (h *BookingHandler) Mine(c *gin.Context) {
	out, err := h.mine.Execute(c.Request.Context(), middleware.UserID(c), c.Query("status"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), studiobooking.Actor{
		UserID:  middleware.UserID(c),
		IsAdmin: middleware.IsAdmin(c),
	}, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, studiobooking.ToDTO(b))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, studiobooking.ToDTO(b))
}
