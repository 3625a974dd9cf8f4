package services

import (
	"context"
	"errors"
	"fmt"

	"inkbooking/internal/domain"
)

type artistService struct {
	artistRepo domain.ArtistRepository
}

// NewArtistService creates an ArtistService with the given repository.
func NewArtistService(artistRepo domain.ArtistRepository) domain.ArtistService {
	return &artistService{artistRepo: artistRepo}
}

func (s *artistService) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return artist, nil
}

func (s *artistService) ListArtists(ctx context.Context, order domain.ArtistOrder, query string) ([]*domain.Artist, error) {
	if order != domain.ArtistOrderName && order != domain.ArtistOrderNewest {
		order = domain.ArtistOrderNewest
	}
	artists, err := s.artistRepo.List(ctx, order, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	if artists == nil {
		artists = []*domain.Artist{}
	}
	return artists, nil
}
