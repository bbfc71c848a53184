package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/favorite/usecase/command"
	"github.com/tair/starwars-api/internal/favorite/usecase/query"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/logger"
)

// defaultUserID stands in for the authenticated user until auth lands.
const defaultUserID uint = 1

// FavoriteHandler handles HTTP requests for favorites
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
	resolver      *query.Resolver

	events *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoriteHandler creates a new favorite handler. The events publisher may
// be nil, in which case no events are emitted.
func NewFavoriteHandler(
	favorites domain.FavoriteRepository,
	users userdomain.UserRepository,
	people peopledomain.PeopleRepository,
	planets planetdomain.PlanetRepository,
	events *kafka.Publisher,
) *FavoriteHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_api_requests_total",
			Help: "Total number of requests to the favorite endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorite_api_request_duration_seconds",
			Help:    "Duration of favorite endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	resolver := query.NewResolver(people, planets)

	return &FavoriteHandler{
		addHandler:     command.NewAddFavoriteHandler(favorites, users, people, planets),
		removeHandler:  command.NewRemoveFavoriteHandler(favorites),
		listHandler:    query.NewListFavoritesHandler(favorites, users, resolver),
		resolver:       resolver,
		events:         events,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// favoriteRequest is the add-favorite payload
type favoriteRequest struct {
	UserID *uint `json:"user_id"`
}

// ListFavorites godoc
// @Summary List a user's favorites with resolved names
// @Tags Favorites
// @Produce json
// @Param user_id query int false "User ID (defaults to 1)"
// @Success 200 {array} domain.FavoriteView
// @Failure 404 {object} object{error=string}
// @Router /users/favorites [get]
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	views, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, views)
}

// AddFavoritePerson godoc
// @Summary Add a character to a user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body favoriteRequest false "User (defaults to 1)"
// @Success 201 {object} domain.FavoriteView
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/people/{id} [post]
func (h *FavoriteHandler) AddFavoritePerson(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, domain.TypePeople)
}

// AddFavoritePlanet godoc
// @Summary Add a planet to a user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Planet ID"
// @Param request body favoriteRequest false "User (defaults to 1)"
// @Success 201 {object} domain.FavoriteView
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/planet/{id} [post]
func (h *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, domain.TypePlanet)
}

// RemoveFavoritePerson godoc
// @Summary Remove a character from a user's favorites
// @Tags Favorites
// @Produce json
// @Param id path int true "Character ID"
// @Param user_id query int false "User ID (defaults to 1)"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/people/{id} [delete]
func (h *FavoriteHandler) RemoveFavoritePerson(w http.ResponseWriter, r *http.Request) {
	h.removeFavorite(w, r, domain.TypePeople)
}

// RemoveFavoritePlanet godoc
// @Summary Remove a planet from a user's favorites
// @Tags Favorites
// @Produce json
// @Param id path int true "Planet ID"
// @Param user_id query int false "User ID (defaults to 1)"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /favorite/planet/{id} [delete]
func (h *FavoriteHandler) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.removeFavorite(w, r, domain.TypePlanet)
}

func (h *FavoriteHandler) addFavorite(w http.ResponseWriter, r *http.Request, favoriteType string) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	userID := defaultUserID
	if r.Body != nil && r.ContentLength != 0 {
		var req favoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.UserID != nil {
			userID = *req.UserID
		}
	}

	target, err := domain.ParseTargetRef(favoriteType, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid favorite type")
		return
	}

	favorite, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID: userID,
		Target: target,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrTargetNotFound):
			respondError(w, http.StatusNotFound, targetNotFoundMessage(favoriteType))
		case errors.Is(err, domain.ErrAlreadyFavorited):
			respondError(w, http.StatusBadRequest, "Already in favorites")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if h.events != nil {
		if err := h.events.PublishFavoriteChanged(r.Context(), kafka.EventTypeFavoriteAdded, favorite.UserID, favorite.FavoriteType, favorite.FavoriteID); err != nil {
			logger.Error(r.Context()).Err(err).Uint("user_id", favorite.UserID).Msg("Failed to publish favorite.added event")
		}
	}

	// The response carries the resolved target name, same as the listing
	view, err := h.resolver.Resolve(r.Context(), *favorite)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

func (h *FavoriteHandler) removeFavorite(w http.ResponseWriter, r *http.Request, favoriteType string) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	userID, err := queryUserID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	target, err := domain.ParseTargetRef(favoriteType, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid favorite type")
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID: userID,
		Target: target,
	}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.events != nil {
		if err := h.events.PublishFavoriteChanged(r.Context(), kafka.EventTypeFavoriteRemoved, userID, favoriteType, id); err != nil {
			logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to publish favorite.removed event")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed successfully"})
}

func targetNotFoundMessage(favoriteType string) string {
	if favoriteType == domain.TypePlanet {
		return "Planet not found"
	}
	return "Person not found"
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *FavoriteHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers all favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users/favorites", h.metricsMiddleware("/users/favorites", h.ListFavorites)).Methods("GET")
	router.HandleFunc("/favorite/people/{id}", h.metricsMiddleware("/favorite/people/{id}", h.AddFavoritePerson)).Methods("POST")
	router.HandleFunc("/favorite/people/{id}", h.metricsMiddleware("/favorite/people/{id}", h.RemoveFavoritePerson)).Methods("DELETE")
	router.HandleFunc("/favorite/planet/{id}", h.metricsMiddleware("/favorite/planet/{id}", h.AddFavoritePlanet)).Methods("POST")
	router.HandleFunc("/favorite/planet/{id}", h.metricsMiddleware("/favorite/planet/{id}", h.RemoveFavoritePlanet)).Methods("DELETE")
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// queryUserID reads the user_id query parameter, defaulting when absent
func queryUserID(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return defaultUserID, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
