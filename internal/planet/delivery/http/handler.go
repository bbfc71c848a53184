package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/starwars-api/internal/planet/domain"
	"github.com/tair/starwars-api/internal/planet/usecase/command"
	"github.com/tair/starwars-api/internal/planet/usecase/query"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/logger"
)

// PlanetHandler handles HTTP requests for planets
type PlanetHandler struct {
	createHandler *command.CreatePlanetHandler
	updateHandler *command.UpdatePlanetHandler
	deleteHandler *command.DeletePlanetHandler

	getHandler  *query.GetPlanetHandler
	listHandler *query.ListPlanetsHandler

	events *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPlanetHandler creates a new planet handler. The events publisher may be
// nil, in which case no events are emitted.
func NewPlanetHandler(repo domain.PlanetRepository, favorites domain.FavoriteCounter, events *kafka.Publisher) *PlanetHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planet_api_requests_total",
			Help: "Total number of requests to the planet endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planet_api_request_duration_seconds",
			Help:    "Duration of planet endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &PlanetHandler{
		createHandler:  command.NewCreatePlanetHandler(repo),
		updateHandler:  command.NewUpdatePlanetHandler(repo),
		deleteHandler:  command.NewDeletePlanetHandler(repo, favorites),
		getHandler:     query.NewGetPlanetHandler(repo),
		listHandler:    query.NewListPlanetsHandler(repo),
		events:         events,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// planetRequest is the create/update payload. Pointer fields distinguish
// absent attributes from empty ones on partial updates.
type planetRequest struct {
	Name       *string `json:"name"`
	Diameter   *string `json:"diameter"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
}

// ListPlanets godoc
// @Summary List all planets
// @Tags Planets
// @Produce json
// @Success 200 {array} domain.Planet
// @Router /planets [get]
func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.listHandler.Handle(r.Context(), query.ListPlanetsQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, planets)
}

// GetPlanet godoc
// @Summary Get a planet by ID
// @Tags Planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} domain.Planet
// @Failure 404 {object} object{error=string}
// @Router /planets/{id} [get]
func (h *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	planet, err := h.getHandler.Handle(r.Context(), query.GetPlanetQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Planet not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, planet)
}

// CreatePlanet godoc
// @Summary Create a planet
// @Tags Planets
// @Accept json
// @Produce json
// @Param request body planetRequest true "Planet data"
// @Success 201 {object} domain.Planet
// @Failure 400 {object} object{error=string}
// @Router /planets [post]
func (h *PlanetHandler) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req planetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreatePlanetCommand{
		Diameter:   req.Diameter,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	}
	if req.Name != nil {
		cmd.Name = *req.Name
	}

	planet, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			respondError(w, http.StatusBadRequest, "Name is required")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(w, http.StatusBadRequest, "Planet with this name already exists")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, planet)
}

// UpdatePlanet godoc
// @Summary Update a planet
// @Description Partial update; absent fields keep their previous value
// @Tags Planets
// @Accept json
// @Produce json
// @Param id path int true "Planet ID"
// @Param request body planetRequest true "Fields to update"
// @Success 200 {object} domain.Planet
// @Failure 404 {object} object{error=string}
// @Router /planets/{id} [put]
func (h *PlanetHandler) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	var req planetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdatePlanetCommand{
		ID:         id,
		Name:       req.Name,
		Diameter:   req.Diameter,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	}

	planet, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Planet not found")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(w, http.StatusBadRequest, "Planet with this name already exists")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, planet)
}

// DeletePlanet godoc
// @Summary Delete a planet
// @Description Refused while favorites still reference the planet
// @Tags Planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string,count=int,suggestion=string}
// @Failure 404 {object} object{error=string}
// @Router /planets/{id} [delete]
func (h *PlanetHandler) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	planet, err := h.getHandler.Handle(r.Context(), query.GetPlanetQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Planet not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeletePlanetCommand{ID: id}); err != nil {
		var inUse *domain.InUseError
		switch {
		case errors.As(err, &inUse):
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":      "Cannot delete planet: still referenced by favorites",
				"count":      inUse.Count,
				"suggestion": "Remove the referencing favorites first",
			})
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Planet not found")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if h.events != nil {
		if err := h.events.PublishEntityDeleted(r.Context(), kafka.EventTypePlanetDeleted, planet.ID, planet.Name); err != nil {
			logger.Error(r.Context()).Err(err).Uint("planet_id", planet.ID).Msg("Failed to publish planet.deleted event")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Planet deleted successfully"})
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PlanetHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers all planet routes
func (h *PlanetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/planets", h.metricsMiddleware("/planets", h.ListPlanets)).Methods("GET")
	router.HandleFunc("/planets", h.metricsMiddleware("/planets", h.CreatePlanet)).Methods("POST")
	router.HandleFunc("/planets/{id}", h.metricsMiddleware("/planets/{id}", h.GetPlanet)).Methods("GET")
	router.HandleFunc("/planets/{id}", h.metricsMiddleware("/planets/{id}", h.UpdatePlanet)).Methods("PUT")
	router.HandleFunc("/planets/{id}", h.metricsMiddleware("/planets/{id}", h.DeletePlanet)).Methods("DELETE")
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

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
