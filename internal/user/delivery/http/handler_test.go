package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/internal/user/repository"
)

var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func setupAPI(t *testing.T) *mux.Router {
	t.Helper()

	setupOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open("file:user_api_test?mode=memory&cache=shared"), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		if err := db.AutoMigrate(&domain.User{}, &favdomain.Favorite{}); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}

		testRouter = mux.NewRouter()
		NewUserHandler(repository.NewGormUserRepository(db), nil).RegisterRoutes(testRouter)
	})

	return testRouter
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateGetDeleteUser(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/users", map[string]string{
		"username": "luke",
		"email":    "luke@rebellion.org",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	// Password never leaves the API
	assert.NotContains(t, w.Body.String(), "secret123")

	w = doJSON(t, router, "GET", fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "luke")

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User deleted successfully")

	w = doJSON(t, router, "GET", fmt.Sprintf("/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestCreateUserValidation(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/users", map[string]string{"email": "x@y.z", "password": "p"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username is required")

	w = doJSON(t, router, "POST", "/users", map[string]string{"username": "x", "password": "p"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")

	w = doJSON(t, router, "POST", "/users", map[string]string{"username": "x", "email": "x@y.z"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password is required")
}

func TestCreateUserConflicts(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/users", map[string]string{
		"username": "han", "email": "han@falcon.sw", "password": "p",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", "/users", map[string]string{
		"username": "han", "email": "other@falcon.sw", "password": "p",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	w = doJSON(t, router, "POST", "/users", map[string]string{
		"username": "solo", "email": "han@falcon.sw", "password": "p",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestDeleteUserNotFound(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "DELETE", "/users/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
