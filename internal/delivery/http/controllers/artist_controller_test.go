package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkbooking/internal/delivery/http/helpers"
	"inkbooking/internal/domain"
)

type mockArtistService struct {
	artists   []*domain.Artist
	artist    *domain.Artist
	err       error
	lastOrder domain.ArtistOrder
	lastQuery string
}

func (m *mockArtistService) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artist, nil
}

func (m *mockArtistService) ListArtists(ctx context.Context, order domain.ArtistOrder, query string) ([]*domain.Artist, error) {
	m.lastOrder = order
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.artists, nil
}

const testArtistID = "11111111-1111-1111-1111-111111111111"

func TestArtistController_ListArtists_Success(t *testing.T) {
	svc := &mockArtistService{artists: []*domain.Artist{
		{ID: "a1", Name: "Arjun Patel"},
		{ID: "a2", Name: "Priya Sharma"},
	}}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists?order=name&q=mandala", nil)
	w := httptest.NewRecorder()
	ctrl.ListArtists(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.lastOrder != domain.ArtistOrderName {
		t.Fatalf("expected name order, got %q", svc.lastOrder)
	}
	if svc.lastQuery != "mandala" {
		t.Fatalf("expected query to pass through, got %q", svc.lastQuery)
	}

	var resp ListArtistsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(resp.Artists))
	}
}

func TestArtistController_ListArtists_FailsOpenToEmpty(t *testing.T) {
	svc := &mockArtistService{err: errors.New("store down")}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	w := httptest.NewRecorder()
	ctrl.ListArtists(w, req)

	// The directory degrades to an empty page rather than erroring.
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp ListArtistsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Artists == nil || len(resp.Artists) != 0 {
		t.Fatalf("expected empty artist list, got %v", resp.Artists)
	}
}

func TestArtistController_GetArtist_Success(t *testing.T) {
	svc := &mockArtistService{artist: &domain.Artist{ID: testArtistID, Name: "Priya Sharma"}}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists/"+testArtistID, nil)
	req.SetPathValue("artistID", testArtistID)
	w := httptest.NewRecorder()
	ctrl.GetArtist(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp GetArtistResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Artist == nil || resp.Artist.Name != "Priya Sharma" {
		t.Fatalf("unexpected artist %v", resp.Artist)
	}
}

func TestArtistController_GetArtist_NotFound(t *testing.T) {
	svc := &mockArtistService{err: domain.ErrArtistNotFound}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists/"+testArtistID, nil)
	req.SetPathValue("artistID", testArtistID)
	w := httptest.NewRecorder()
	ctrl.GetArtist(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var resp helpers.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != "Artist not found" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestArtistController_GetArtist_InvalidID(t *testing.T) {
	svc := &mockArtistService{}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists/not-a-uuid", nil)
	req.SetPathValue("artistID", "not-a-uuid")
	w := httptest.NewRecorder()
	ctrl.GetArtist(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestArtistController_GetArtist_StoreError(t *testing.T) {
	svc := &mockArtistService{err: errors.New("store down")}
	ctrl := NewArtistController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/artists/"+testArtistID, nil)
	req.SetPathValue("artistID", testArtistID)
	w := httptest.NewRecorder()
	ctrl.GetArtist(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
