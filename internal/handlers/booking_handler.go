package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickfixlabs/receptionist/internal/domains/booking"
	"github.com/quickfixlabs/receptionist/pkg/Logger"
)

// BookingHandler handles appointment booking requests
type BookingHandler struct {
	bookings booking.Service
	logger   *Logger.Logger
}

func NewBookingHandler(bookings booking.Service, logger *Logger.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, logger: logger}
}

// BookAppointment schedules the next available appointment window
// @Summary Book an appointment
// @Description Quote the job, reserve the next available window and put it on the calendar
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body booking.Request true "Customer and job details"
// @Success 200 {object} BookAppointmentResponse "Appointment confirmed"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Slot already taken"
// @Failure 502 {object} ErrorResponse "Booking failed"
// @Router /book-appointment [post]
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req booking.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	conf, err := h.bookings.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingDetails):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Customer name is required"})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "That slot was just taken, try again shortly"})
		default:
			h.logger.Errorf("book-appointment error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Booking failed"})
		}
		return
	}

	c.JSON(http.StatusOK, BookAppointmentResponse{Confirmation: conf})
}

// RegisterBookingRoutes registers booking routes
func (h *BookingHandler) RegisterBookingRoutes(r *gin.RouterGroup) {
	r.POST("/book-appointment", h.BookAppointment)
}
