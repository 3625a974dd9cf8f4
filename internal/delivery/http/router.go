package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"inkbooking/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(artistController *controllers.ArtistController, bookingController *controllers.BookingController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /artists", artistController.ListArtists)
	mux.HandleFunc("GET /artists/{artistID}", artistController.GetArtist)
	mux.HandleFunc("POST /bookings", bookingController.SubmitBooking)
	mux.HandleFunc("GET /bookings", bookingController.ListBookings)

	// Operational
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
