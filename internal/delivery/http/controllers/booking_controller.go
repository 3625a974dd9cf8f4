package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"inkbooking/internal/delivery/http/helpers"
	"inkbooking/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitBookingResponse is the success body for POST /bookings (201).
type SubmitBookingResponse struct {
	Success bool            `json:"success"`
	Booking *domain.Booking `json:"booking"`
	Message string          `json:"message"`
}

// SubmitBooking godoc
// @Summary Submit a booking request
// @Description Validates and persists a booking request for an artist. The booking is always created with status "pending"; any status value in the body is ignored.
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body domain.BookingSubmission true "Booking submission"
// @Success 201 {object} controllers.SubmitBookingResponse
// @Failure 400 {object} helpers.ErrorResponse "Validation failed (with details), past date, or unknown artist"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var sub domain.BookingSubmission
	if !helpers.DecodeJSON(w, r, &sub) {
		return
	}

	booking, err := c.Service.SubmitBooking(r.Context(), sub)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			helpers.WriteValidationError(w, verr.Violations)
		case errors.Is(err, domain.ErrPastDate):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Please select a future date")
		case errors.Is(err, domain.ErrArtistNotFound):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid artist selected")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create booking. Please try again.")
		}
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, SubmitBookingResponse{
		Success: true,
		Booking: booking,
		Message: "Booking request submitted successfully",
	})
}

// ListBookingsResponse is the success body for GET /bookings (200).
type ListBookingsResponse struct {
	Bookings []*domain.BookingWithArtist `json:"bookings"`
}

// ListBookings godoc
// @Summary List booking requests
// @Description Returns bookings newest first, each with the referenced artist's name, capped at 100 rows. Diagnostic endpoint.
// @Tags bookings
// @Produce json
// @Success 200 {object} controllers.ListBookingsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListBookings(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, ListBookingsResponse{Bookings: bookings})
}
