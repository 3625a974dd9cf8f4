package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPastDate is returned when the preferred date is before the start of the
// current day on the server clock.
var ErrPastDate = errors.New("preferred date is in the past")

// DateFormat is the calendar date layout used for preferred_date.
const DateFormat = "2006-01-02"

// BookingStatus is the workflow state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a submitted appointment request for an artist.
// swagger:model Booking
type Booking struct {
	ID            string        `json:"id"`
	ArtistID      string        `json:"artist_id"`
	Name          string        `json:"name"`
	Contact       string        `json:"contact"`
	PreferredDate string        `json:"preferred_date"`
	PreferredTime string        `json:"preferred_time"`
	Message       *string       `json:"message"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BookingWithArtist bundles a booking with the referenced artist's display name.
// swagger:model BookingWithArtist
type BookingWithArtist struct {
	Booking
	ArtistName string `json:"artist_name"`
}

// Violation is a single field-level validation failure.
// swagger:model Violation
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered field violations of a rejected submission.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d violation(s)", len(e.Violations))
}

// BookingSubmission is a raw booking request as received from a client.
// Status is deliberately absent: it is never accepted from input.
type BookingSubmission struct {
	ArtistID      string  `json:"artist_id"`
	Name          string  `json:"name"`
	Contact       string  `json:"contact"`
	PreferredDate string  `json:"preferred_date"`
	PreferredTime string  `json:"preferred_time"`
	Message       *string `json:"message"`
}

// ValidateShape runs the per-field rules and returns all violations in rule
// declaration order; nil means valid. Unparseable dates count as a shape
// violation on preferred_date, so the temporal rule never has to judge them.
func (s *BookingSubmission) ValidateShape() []Violation {
	var violations []Violation
	if s.ArtistID == "" {
		violations = append(violations, Violation{Field: "artist_id", Message: "Please select an artist"})
	}
	if len(s.Name) < 2 {
		violations = append(violations, Violation{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if len(s.Contact) < 10 {
		violations = append(violations, Violation{Field: "contact", Message: "Please enter a valid phone number"})
	}
	if _, err := time.ParseInLocation(DateFormat, s.PreferredDate, time.Local); s.PreferredDate == "" || err != nil {
		violations = append(violations, Violation{Field: "preferred_date", Message: "Please select a date"})
	}
	if s.PreferredTime == "" {
		violations = append(violations, Violation{Field: "preferred_time", Message: "Please select a time"})
	}
	return violations
}

// Validate is the full shared schema: the shape rules plus the temporal
// refinement. The refinement runs only when every shape rule passed, and its
// violation is appended last, attached to preferred_date. This is the rule
// set a form client mirrors; the submission pipeline re-checks the date
// against its own clock regardless.
func (s *BookingSubmission) Validate() []Violation {
	return s.ValidateAt(time.Now())
}

// ValidateAt is Validate with the current instant supplied by the caller.
func (s *BookingSubmission) ValidateAt(now time.Time) []Violation {
	violations := s.ValidateShape()
	if violations != nil {
		return violations
	}
	date, err := time.ParseInLocation(DateFormat, s.PreferredDate, now.Location())
	if err == nil && date.Before(StartOfDay(now)) {
		violations = append(violations, Violation{Field: "preferred_date", Message: "Please select a future date"})
	}
	return violations
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create inserts the booking and fills in the store-assigned fields
	// (ID, CreatedAt, UpdatedAt) on the given value.
	Create(ctx context.Context, booking *Booking) error
	// ListWithArtist returns bookings newest first, each joined with the
	// referenced artist's name, capped at limit rows.
	ListWithArtist(ctx context.Context, limit int) ([]*BookingWithArtist, error)
}

// BookingService is the single authoritative path by which bookings are created.
type BookingService interface {
	// SubmitBooking validates, normalizes, and persists a submission.
	// Failures are *ValidationError, ErrPastDate, ErrArtistNotFound, or a
	// wrapped store error; no write occurs on any failure path.
	SubmitBooking(ctx context.Context, sub BookingSubmission) (*Booking, error)
	ListBookings(ctx context.Context) ([]*BookingWithArtist, error)
}
