package handlers

import (
	"errors"
	"net/http"

	"littlenest/models"
	"littlenest/services/booking"
	"littlenest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking core over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler builds a handler around the booking service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondBookingError maps the core's typed errors onto HTTP statuses.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var (
		provNotFound  booking.ProviderNotFoundError
		provUnavail   booking.ProviderUnavailableError
		childNotFound booking.ChildNotFoundError
		mismatch      booking.ChildrenMismatchError
		badRange      booking.InvalidDateRangeError
		conflict      booking.CapacityConflictError
		bookNotFound  booking.BookingNotFoundError
		illegal       booking.IllegalTransitionError
		concurrent    booking.ConcurrencyConflictError
	)
	switch {
	case errors.As(err, &provNotFound), errors.As(err, &bookNotFound), errors.As(err, &childNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &provUnavail):
		utils.JSONError(c, http.StatusUnprocessableEntity, "provider unavailable", err.Error())
	case errors.As(err, &mismatch), errors.As(err, &badRange):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":            "capacity conflict",
			"details":          err.Error(),
			"unavailableDates": conflict.UnavailableDates,
		})
	case errors.As(err, &illegal):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "illegal transition",
			"from":    illegal.From,
			"to":      illegal.To,
			"details": err.Error(),
		})
	case errors.As(err, &concurrent):
		utils.JSONError(c, http.StatusConflict, "concurrent modification, retry", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "request could not be processed")
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.EmergencyContact != nil && (req.EmergencyContact.Name == "" || req.EmergencyContact.Phone == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "emergency contact requires name and phone")
		return
	}

	created, err := h.Service.CreateBooking(req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListUserBookings handles GET /api/users/:userID/bookings?status=.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(c.Param("userID"), models.BookingStatus(c.Query("status")))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookings handles GET /api/providers/:providerID/bookings?status=.
func (h *BookingHandler) ListProviderBookings(c *gin.Context) {
	bookings, err := h.Service.ListProviderBookings(c.Param("providerID"), models.BookingStatus(c.Query("status")))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// TransitionBooking handles PUT /api/bookings/:id/status.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Transition(c.Param("id"), input.Status)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
		Admin  bool   `json:"admin"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Cancel(c.Param("id"), input.Reason, input.Admin)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}
