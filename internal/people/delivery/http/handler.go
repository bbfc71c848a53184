package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/starwars-api/internal/people/domain"
	"github.com/tair/starwars-api/internal/people/usecase/command"
	"github.com/tair/starwars-api/internal/people/usecase/query"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/logger"
)

// PeopleHandler handles HTTP requests for characters
type PeopleHandler struct {
	createHandler *command.CreatePersonHandler
	updateHandler *command.UpdatePersonHandler
	deleteHandler *command.DeletePersonHandler

	getHandler  *query.GetPersonHandler
	listHandler *query.ListPeopleHandler

	events *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPeopleHandler creates a new people handler. The events publisher may be
// nil, in which case no events are emitted.
func NewPeopleHandler(repo domain.PeopleRepository, favorites domain.FavoriteCounter, events *kafka.Publisher) *PeopleHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "people_api_requests_total",
			Help: "Total number of requests to the people endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "people_api_request_duration_seconds",
			Help:    "Duration of people endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &PeopleHandler{
		createHandler:  command.NewCreatePersonHandler(repo),
		updateHandler:  command.NewUpdatePersonHandler(repo),
		deleteHandler:  command.NewDeletePersonHandler(repo, favorites),
		getHandler:     query.NewGetPersonHandler(repo),
		listHandler:    query.NewListPeopleHandler(repo),
		events:         events,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// personRequest is the create/update payload. Pointer fields distinguish
// absent attributes from empty ones on partial updates.
type personRequest struct {
	Name      *string `json:"name"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	HairColor *string `json:"hair_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// ListPeople godoc
// @Summary List all characters
// @Tags People
// @Produce json
// @Success 200 {array} domain.People
// @Router /people [get]
func (h *PeopleHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.listHandler.Handle(r.Context(), query.ListPeopleQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, people)
}

// GetPerson godoc
// @Summary Get a character by ID
// @Tags People
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.People
// @Failure 404 {object} object{error=string}
// @Router /people/{id} [get]
func (h *PeopleHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid person ID")
		return
	}

	person, err := h.getHandler.Handle(r.Context(), query.GetPersonQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Person not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, person)
}

// CreatePerson godoc
// @Summary Create a character
// @Tags People
// @Accept json
// @Produce json
// @Param request body personRequest true "Character data"
// @Success 201 {object} domain.People
// @Failure 400 {object} object{error=string}
// @Router /people [post]
func (h *PeopleHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreatePersonCommand{
		Height:    req.Height,
		Mass:      req.Mass,
		HairColor: req.HairColor,
		EyeColor:  req.EyeColor,
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
	}
	if req.Name != nil {
		cmd.Name = *req.Name
	}

	person, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			respondError(w, http.StatusBadRequest, "Name is required")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(w, http.StatusBadRequest, "Person with this name already exists")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, person)
}

// UpdatePerson godoc
// @Summary Update a character
// @Description Partial update; absent fields keep their previous value
// @Tags People
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body personRequest true "Fields to update"
// @Success 200 {object} domain.People
// @Failure 404 {object} object{error=string}
// @Router /people/{id} [put]
func (h *PeopleHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid person ID")
		return
	}

	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdatePersonCommand{
		ID:        id,
		Name:      req.Name,
		Height:    req.Height,
		Mass:      req.Mass,
		HairColor: req.HairColor,
		EyeColor:  req.EyeColor,
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
	}

	person, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Person not found")
		case errors.Is(err, domain.ErrDuplicateName):
			respondError(w, http.StatusBadRequest, "Person with this name already exists")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, person)
}

// DeletePerson godoc
// @Summary Delete a character
// @Description Refused while favorites still reference the character
// @Tags People
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string,count=int,suggestion=string}
// @Failure 404 {object} object{error=string}
// @Router /people/{id} [delete]
func (h *PeopleHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid person ID")
		return
	}

	person, err := h.getHandler.Handle(r.Context(), query.GetPersonQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Person not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeletePersonCommand{ID: id}); err != nil {
		var inUse *domain.InUseError
		switch {
		case errors.As(err, &inUse):
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":      "Cannot delete person: still referenced by favorites",
				"count":      inUse.Count,
				"suggestion": "Remove the referencing favorites first",
			})
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Person not found")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if h.events != nil {
		if err := h.events.PublishEntityDeleted(r.Context(), kafka.EventTypePeopleDeleted, person.ID, person.Name); err != nil {
			logger.Error(r.Context()).Err(err).Uint("person_id", person.ID).Msg("Failed to publish people.deleted event")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Person deleted successfully"})
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PeopleHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers all people routes
func (h *PeopleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/people", h.metricsMiddleware("/people", h.ListPeople)).Methods("GET")
	router.HandleFunc("/people", h.metricsMiddleware("/people", h.CreatePerson)).Methods("POST")
	router.HandleFunc("/people/{id}", h.metricsMiddleware("/people/{id}", h.GetPerson)).Methods("GET")
	router.HandleFunc("/people/{id}", h.metricsMiddleware("/people/{id}", h.UpdatePerson)).Methods("PUT")
	router.HandleFunc("/people/{id}", h.metricsMiddleware("/people/{id}", h.DeletePerson)).Methods("DELETE")
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
