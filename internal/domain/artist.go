package domain

import (
	"context"
	"errors"
	"time"
)

// ErrArtistNotFound is returned when the referenced artist does not exist.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistOrder selects the ordering of an artist listing.
type ArtistOrder string

const (
	// ArtistOrderName orders artists by name, ascending.
	ArtistOrderName ArtistOrder = "name"
	// ArtistOrderNewest orders artists by creation time, newest first.
	ArtistOrderNewest ArtistOrder = "newest"
)

// Artist represents a tattoo artist profile.
// swagger:model Artist
type Artist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio"`
	Portfolio   []string  `json:"portfolio"`
	Location    *string   `json:"location"`
	Specialties []string  `json:"specialties"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArtistRepository defines the interface for artist storage.
type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id string) (*Artist, error)
	// List returns artists in the given order, optionally filtered by query,
	// which is matched against name, location, and specialties.
	List(ctx context.Context, order ArtistOrder, query string) ([]*Artist, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// ArtistService defines the read operations the presentation layer relies on.
type ArtistService interface {
	GetArtist(ctx context.Context, id string) (*Artist, error)
	ListArtists(ctx context.Context, order ArtistOrder, query string) ([]*Artist, error)
}
