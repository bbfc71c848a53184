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
	favrepo "github.com/tair/starwars-api/internal/favorite/repository"
	peopleDelivery "github.com/tair/starwars-api/internal/people/delivery/http"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	peoplerepo "github.com/tair/starwars-api/internal/people/repository"
	planetDelivery "github.com/tair/starwars-api/internal/planet/delivery/http"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
	planetrepo "github.com/tair/starwars-api/internal/planet/repository"
	userDelivery "github.com/tair/starwars-api/internal/user/delivery/http"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	userrepo "github.com/tair/starwars-api/internal/user/repository"
)

// The handlers register Prometheus collectors, so the router is built once
// and shared by all tests in this package.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func setupAPI(t *testing.T) *mux.Router {
	t.Helper()

	setupOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open("file:favorite_api_test?mode=memory&cache=shared"), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		if err := db.AutoMigrate(
			&userdomain.User{},
			&peopledomain.People{},
			&planetdomain.Planet{},
			&favdomain.Favorite{},
		); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}

		users := userrepo.NewGormUserRepository(db)
		people := peoplerepo.NewGormPeopleRepository(db)
		planets := planetrepo.NewGormPlanetRepository(db)
		favorites := favrepo.NewGormFavoriteRepository(db)

		testRouter = mux.NewRouter()
		NewFavoriteHandler(favorites, users, people, planets, nil).RegisterRoutes(testRouter)
		peopleDelivery.NewPeopleHandler(people, favorites, nil).RegisterRoutes(testRouter)
		planetDelivery.NewPlanetHandler(planets, favorites, nil).RegisterRoutes(testRouter)
		userDelivery.NewUserHandler(users, nil).RegisterRoutes(testRouter)
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

func TestFavoriteLifecycle(t *testing.T) {
	router := setupAPI(t)

	// Default user must exist for the implicit user_id=1
	w := doJSON(t, router, "POST", "/users", map[string]string{
		"username": "luke",
		"email":    "luke@rebellion.org",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", "/people", map[string]string{"name": "Luke Skywalker"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var person struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))

	// Favorite with no body falls back to user 1; the response carries the
	// resolved name just like the listing does
	w = doJSON(t, router, "POST", fmt.Sprintf("/favorite/people/%d", person.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		UserID       uint    `json:"user_id"`
		FavoriteType string  `json:"favorite_type"`
		FavoriteID   uint    `json:"favorite_id"`
		FavoriteName *string `json:"favorite_name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.UserID)
	assert.Equal(t, "people", created.FavoriteType)
	assert.Equal(t, person.ID, created.FavoriteID)
	require.NotNil(t, created.FavoriteName)
	assert.Equal(t, "Luke Skywalker", *created.FavoriteName)

	// The listing resolves the target's name
	w = doJSON(t, router, "GET", "/users/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []struct {
		FavoriteType string  `json:"favorite_type"`
		FavoriteID   uint    `json:"favorite_id"`
		FavoriteName *string `json:"favorite_name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "people", views[0].FavoriteType)
	require.NotNil(t, views[0].FavoriteName)
	assert.Equal(t, "Luke Skywalker", *views[0].FavoriteName)

	// Deleting a favorited character is refused
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/people/%d", person.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var blocked struct {
		Error string `json:"error"`
		Count int64  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &blocked))
	assert.Equal(t, int64(1), blocked.Count)
	assert.Contains(t, blocked.Error, "favorites")

	// Remove the favorite, then the delete goes through
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/favorite/people/%d", person.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Favorite removed successfully")

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/people/%d", person.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAddFavoriteMissingTarget(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/favorite/people/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Person not found")

	w = doJSON(t, router, "POST", "/favorite/planet/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Planet not found")
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/planets", map[string]string{"name": "Dagobah"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var planet struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &planet))

	path := fmt.Sprintf("/favorite/planet/%d", planet.ID)

	w = doJSON(t, router, "POST", path, map[string]uint{"user_id": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", path, map[string]uint{"user_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already in favorites")
}

func TestFavoritesUnknownUser(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "GET", "/users/favorites?user_id=424242", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = doJSON(t, router, "POST", "/favorite/people/1", map[string]uint{"user_id": 424242})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestRemoveFavoriteNotFavorited(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "DELETE", "/favorite/planet/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Favorite not found")
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	router := setupAPI(t)

	w := doJSON(t, router, "POST", "/users", map[string]string{
		"username": "vader",
		"email":    "vader@empire.sw",
		"password": "darkside1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = doJSON(t, router, "POST", "/people", map[string]string{"name": "Emperor Palpatine"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var person struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &person))

	w = doJSON(t, router, "POST", fmt.Sprintf("/favorite/people/%d", person.ID), map[string]uint{"user_id": user.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The favorite is gone with the user, so the character can be deleted
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/people/%d", person.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
