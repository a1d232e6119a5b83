package adaptor

import (
	"net/http"

	"cinema-pos/internal/usecase"
	"cinema-pos/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog usecase.CatalogService
	seatMap usecase.SeatMapService
	log     *zap.Logger
}

func NewCatalogHandler(catalog usecase.CatalogService, seatMap usecase.SeatMapService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		seatMap: seatMap,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// SearchMovies handles GET /api/movies?q=&genre=
func (h *CatalogHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	movies, err := h.catalog.SearchMovies(r.Context(), query.Get("q"), query.Get("genre"))
	if err != nil {
		handleServiceError(h.log, w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// ListGenres handles GET /api/genres
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.ListGenres(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// ListScreenings handles GET /api/screenings?movie=
func (h *CatalogHandler) ListScreenings(w http.ResponseWriter, r *http.Request) {
	movieTitle := r.URL.Query().Get("movie")
	if movieTitle == "" {
		utils.ResponseBadRequest(w, "movie query parameter is required", nil)
		return
	}

	screenings, err := h.catalog.ScreeningsFor(r.Context(), movieTitle)
	if err != nil {
		handleServiceError(h.log, w, err, "list screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// FindScreening handles GET /api/screenings/lookup?movie=&day=&time=
//
// The cashier picks a movie, a day and a start time; this resolves that
// selection to the screening ID the rest of the flow needs.
func (h *CatalogHandler) FindScreening(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	movieTitle := query.Get("movie")
	showDay := query.Get("day")
	startTime := query.Get("time")

	if movieTitle == "" || showDay == "" || startTime == "" {
		utils.ResponseBadRequest(w, "movie, day and time query parameters are required", nil)
		return
	}

	screening, err := h.catalog.FindScreening(r.Context(), movieTitle, showDay, startTime)
	if err != nil {
		handleServiceError(h.log, w, err, "find screening")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// GetScreening handles GET /api/screenings/{id}
func (h *CatalogHandler) GetScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	screening, err := h.catalog.GetScreening(r.Context(), screeningID)
	if err != nil {
		handleServiceError(h.log, w, err, "get screening")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// GetSeatMap handles GET /api/screenings/{id}/seats
func (h *CatalogHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	seatMap, err := h.seatMap.ListSeats(r.Context(), screeningID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "Seat map retrieved successfully", seatMap)
}

// GetVacantCount handles GET /api/screenings/{id}/vacant
func (h *CatalogHandler) GetVacantCount(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	count, err := h.seatMap.VacantCount(r.Context(), screeningID)
	if err != nil {
		handleServiceError(h.log, w, err, "get vacant count")
		return
	}

	utils.ResponseSuccess(w, "Vacant count retrieved successfully", map[string]int64{"vacant_count": count})
}
