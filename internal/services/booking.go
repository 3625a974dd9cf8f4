package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inkbooking/internal/domain"
)

// bookingListLimit caps the diagnostic bookings listing.
const bookingListLimit = 100

type bookingService struct {
	artistRepo  domain.ArtistRepository
	bookingRepo domain.BookingRepository
	now         func() time.Time
}

// NewBookingService creates a BookingService with the given repositories.
func NewBookingService(
	artistRepo domain.ArtistRepository,
	bookingRepo domain.BookingRepository,
) domain.BookingService {
	return &bookingService{
		artistRepo:  artistRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

func (s *bookingService) SubmitBooking(ctx context.Context, sub domain.BookingSubmission) (*domain.Booking, error) {
	if violations := sub.ValidateShape(); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	// Re-check the date against our own clock. The HTTP entry point can be
	// called directly, so the shared validator alone is not a guarantee.
	date, err := time.ParseInLocation(domain.DateFormat, sub.PreferredDate, s.now().Location())
	if err != nil || date.Before(domain.StartOfDay(s.now())) {
		return nil, domain.ErrPastDate
	}

	// Ensure the referenced artist exists. A failing lookup is treated the
	// same as a missing artist: the reference cannot be trusted either way.
	if _, err := s.artistRepo.GetByID(ctx, sub.ArtistID); err != nil {
		return nil, domain.ErrArtistNotFound
	}

	var message *string
	if sub.Message != nil {
		if trimmed := strings.TrimSpace(*sub.Message); trimmed != "" {
			message = &trimmed
		}
	}

	booking := &domain.Booking{
		ArtistID:      sub.ArtistID,
		Name:          strings.TrimSpace(sub.Name),
		Contact:       strings.TrimSpace(sub.Contact),
		PreferredDate: sub.PreferredDate,
		PreferredTime: sub.PreferredTime,
		Message:       message,
		Status:        domain.StatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]*domain.BookingWithArtist, error) {
	bookings, err := s.bookingRepo.ListWithArtist(ctx, bookingListLimit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.BookingWithArtist{}
	}
	return bookings, nil
}
