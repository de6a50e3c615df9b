package handlers

import (
	"net/http"
	"strconv"

	"littlenest/utils"

	"github.com/gin-gonic/gin"
)

// GetRangeAvailability handles GET /api/providers/:providerID/availability.
// Query params: start, end (YYYY-MM-DD, inclusive).
func (h *BookingHandler) GetRangeAvailability(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start and end query parameters are required")
		return
	}

	days, err := h.Service.GetRangeAvailability(c.Param("providerID"), start, end)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// CheckAvailability handles GET /api/providers/:providerID/availability/check.
// Query params: start, end, children; optional excludeBooking for
// re-validating an existing booking without counting it against itself.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start and end query parameters are required")
		return
	}
	children, err := strconv.Atoi(c.DefaultQuery("children", "1"))
	if err != nil || children < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "children must be a positive integer")
		return
	}

	result, err := h.Service.CheckAvailability(c.Param("providerID"), start, end, children, c.Query("excludeBooking"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
