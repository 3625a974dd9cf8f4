package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"inkbooking/internal/delivery/http/helpers"
	"inkbooking/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService) *ArtistController {
	return &ArtistController{
		Logger:  logger,
		Service: svc,
	}
}

// ListArtistsResponse is the success body for GET /artists (200).
type ListArtistsResponse struct {
	Artists []*domain.Artist `json:"artists"`
}

// ListArtists godoc
// @Summary List artists
// @Description Returns the artist directory. order=name sorts by name ascending; anything else sorts by creation time, newest first. q filters by name, location, or specialty. A store failure yields an empty list, never an error: listing pages degrade rather than break.
// @Tags artists
// @Produce json
// @Param order query string false "Ordering key: name or newest"
// @Param q query string false "Search filter"
// @Success 200 {object} controllers.ListArtistsResponse
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	order := domain.ArtistOrder(r.URL.Query().Get("order"))
	query := r.URL.Query().Get("q")

	artists, err := c.Service.ListArtists(r.Context(), order, query)
	if err != nil {
		// Fail open to an empty directory; the failure stays observable in logs.
		c.Logger.ErrorContext(r.Context(), "list artists failed", "path", r.URL.Path, "err", err)
		artists = []*domain.Artist{}
	}

	helpers.WriteJSON(w, http.StatusOK, ListArtistsResponse{Artists: artists})
}

// GetArtistResponse is the success body for GET /artists/{artistID} (200).
type GetArtistResponse struct {
	Artist *domain.Artist `json:"artist"`
}

// GetArtist godoc
// @Summary Get an artist profile
// @Description Returns a single artist with bio, portfolio, location, and specialties.
// @Tags artists
// @Produce json
// @Param artistID path string true "Artist ID"
// @Success 200 {object} controllers.GetArtistResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /artists/{artistID} [get]
func (c *ArtistController) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID := r.PathValue("artistID")
	if artistID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing artist id")
		return
	}
	if !uuidRegex.MatchString(artistID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid artist id")
		return
	}

	artist, err := c.Service.GetArtist(r.Context(), artistID)
	if err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Artist not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, GetArtistResponse{Artist: artist})
}
