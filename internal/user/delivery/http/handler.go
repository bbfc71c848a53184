package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/internal/user/usecase/command"
	"github.com/tair/starwars-api/internal/user/usecase/query"
	"github.com/tair/starwars-api/kafka"
	"github.com/tair/starwars-api/pkg/logger"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	createHandler *command.CreateUserHandler
	deleteHandler *command.DeleteUserHandler

	getHandler  *query.GetUserHandler
	listHandler *query.ListUsersHandler

	events *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler. The events publisher may be nil,
// in which case no events are emitted.
func NewUserHandler(repo domain.UserRepository, events *kafka.Publisher) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_api_requests_total",
			Help: "Total number of requests to the user endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_api_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		createHandler:  command.NewCreateUserHandler(repo),
		deleteHandler:  command.NewDeleteUserHandler(repo),
		getHandler:     query.NewGetUserHandler(repo),
		listHandler:    query.NewListUsersHandler(repo),
		events:         events,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// userRequest is the create payload
type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListUsers godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body userRequest true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} object{error=string}
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.createHandler.Handle(r.Context(), command.CreateUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameRequired):
			respondError(w, http.StatusBadRequest, "Username is required")
		case errors.Is(err, domain.ErrEmailRequired):
			respondError(w, http.StatusBadRequest, "Email is required")
		case errors.Is(err, domain.ErrPasswordRequired):
			respondError(w, http.StatusBadRequest, "Password is required")
		case errors.Is(err, domain.ErrUsernameTaken):
			respondError(w, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, "Email already exists")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// DeleteUser godoc
// @Summary Delete a user and their favorites
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.getHandler.Handle(r.Context(), query.GetUserQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.events != nil {
		if err := h.events.PublishEntityDeleted(r.Context(), kafka.EventTypeUserDeleted, user.ID, user.Username); err != nil {
			logger.Error(r.Context()).Err(err).Uint("user_id", user.ID).Msg("Failed to publish user.deleted event")
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// RegisterRoutes registers all user routes. The favorites listing route is
// owned by the favorite handler.
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.metricsMiddleware("/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/users", h.metricsMiddleware("/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", h.metricsMiddleware("/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}", h.metricsMiddleware("/users/{id}", h.DeleteUser)).Methods("DELETE")
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
