package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"inkbooking/internal/domain"
)

type artistRepository struct {
	DB *sql.DB
}

func NewArtistRepository(db *sql.DB) domain.ArtistRepository {
	return &artistRepository{
		DB: db,
	}
}

func (r *artistRepository) Create(ctx context.Context, a *domain.Artist) error {
	query := `
		INSERT INTO artists (name, bio, portfolio, location, specialties)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		a.Name, a.Bio, pq.Array(a.Portfolio), a.Location, pq.Array(a.Specialties),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	query := `
		SELECT id, name, bio, portfolio, location, specialties, created_at, updated_at
		FROM artists
		WHERE id = $1
	`
	a, err := scanArtist(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *artistRepository) List(ctx context.Context, order domain.ArtistOrder, search string) ([]*domain.Artist, error) {
	orderBy := "created_at DESC"
	if order == domain.ArtistOrderName {
		orderBy = "name ASC"
	}
	query := `
		SELECT id, name, bio, portfolio, location, specialties, created_at, updated_at
		FROM artists
	`
	args := []interface{}{}
	if search != "" {
		query += `
		WHERE name ILIKE $1
		   OR location ILIKE $1
		   OR EXISTS (SELECT 1 FROM unnest(specialties) AS sp WHERE sp ILIKE $1)
		`
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY " + orderBy

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM artists WHERE name = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtist(row rowScanner) (*domain.Artist, error) {
	a := &domain.Artist{}
	var bioNull, locationNull sql.NullString
	var portfolio, specialties pq.StringArray
	err := row.Scan(
		&a.ID, &a.Name, &bioNull, &portfolio, &locationNull, &specialties,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bioNull.Valid {
		a.Bio = &bioNull.String
	}
	if locationNull.Valid {
		a.Location = &locationNull.String
	}
	// Portfolio is always a list in responses, even when the column is NULL.
	a.Portfolio = []string(portfolio)
	if a.Portfolio == nil {
		a.Portfolio = []string{}
	}
	a.Specialties = []string(specialties)
	return a, nil
}
