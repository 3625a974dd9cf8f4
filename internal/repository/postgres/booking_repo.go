package postgres

import (
	"context"
	"database/sql"

	"inkbooking/internal/domain"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{
		DB: db,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (artist_id, name, contact, preferred_date, preferred_time, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		b.ArtistID, b.Name, b.Contact, b.PreferredDate, b.PreferredTime, b.Message, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *bookingRepository) ListWithArtist(ctx context.Context, limit int) ([]*domain.BookingWithArtist, error) {
	query := `
		SELECT b.id, b.artist_id, b.name, b.contact,
		       to_char(b.preferred_date, 'YYYY-MM-DD'), b.preferred_time,
		       b.message, b.status, b.created_at, b.updated_at, a.name
		FROM bookings b
		JOIN artists a ON a.id = b.artist_id
		ORDER BY b.created_at DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.BookingWithArtist, 0)
	for rows.Next() {
		b := &domain.BookingWithArtist{}
		var messageNull sql.NullString
		if err := rows.Scan(
			&b.ID, &b.ArtistID, &b.Name, &b.Contact,
			&b.PreferredDate, &b.PreferredTime,
			&messageNull, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.ArtistName,
		); err != nil {
			return nil, err
		}
		if messageNull.Valid {
			b.Message = &messageNull.String
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
