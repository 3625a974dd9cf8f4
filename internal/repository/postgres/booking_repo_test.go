package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inkbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	message := "small mandala on forearm"

	tests := []struct {
		name    string
		booking *domain.Booking
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			booking: &domain.Booking{
				ArtistID:      "artist-uuid-1",
				Name:          "Jo Lee",
				Contact:       "9876543210",
				PreferredDate: "2025-06-15",
				PreferredTime: "14:00",
				Message:       &message,
				Status:        domain.StatusPending,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings \(artist_id, name, contact, preferred_date, preferred_time, message, status\)`).
					WithArgs("artist-uuid-1", "Jo Lee", "9876543210", "2025-06-15", "14:00", message, "pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow("bk-uuid-1", time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)))
			},
			wantID:  "bk-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			booking: &domain.Booking{
				ArtistID:      "artist-uuid-1",
				Name:          "Jo Lee",
				Contact:       "9876543210",
				PreferredDate: "2025-06-15",
				PreferredTime: "14:00",
				Status:        domain.StatusPending,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewBookingRepository(db)
			err = repo.Create(ctx, tt.booking)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.booking.ID)
			require.False(t, tt.booking.CreatedAt.IsZero())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_ListWithArtist(t *testing.T) {
	ctx := context.Background()
	cols := []string{
		"id", "artist_id", "name", "contact", "to_char", "preferred_time",
		"message", "status", "created_at", "updated_at", "artist_name",
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT b.id, b.artist_id, b.name, b.contact`).
			WithArgs(100).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("bk-2", "artist-1", "Jo Lee", "9876543210", "2025-06-16", "15:00", nil, "pending", now, now, "Priya Sharma").
				AddRow("bk-1", "artist-2", "Sam Roy", "9123456780", "2025-06-15", "11:00", "cover-up", "pending", now.Add(-time.Hour), now.Add(-time.Hour), "Arjun Patel"))

		repo := NewBookingRepository(db)
		bookings, err := repo.ListWithArtist(ctx, 100)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		require.Equal(t, "bk-2", bookings[0].ID)
		require.Equal(t, "Priya Sharma", bookings[0].ArtistName)
		require.Nil(t, bookings[0].Message)
		require.NotNil(t, bookings[1].Message)
		require.Equal(t, "cover-up", *bookings[1].Message)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT b.id, b.artist_id, b.name, b.contact`).
			WithArgs(100).
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewBookingRepository(db)
		bookings, err := repo.ListWithArtist(ctx, 100)
		require.NoError(t, err)
		require.NotNil(t, bookings)
		require.Len(t, bookings, 0)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT b.id, b.artist_id, b.name, b.contact`).
			WillReturnError(sql.ErrConnDone)

		repo := NewBookingRepository(db)
		_, err = repo.ListWithArtist(ctx, 100)
		require.Error(t, err)
	})
}
