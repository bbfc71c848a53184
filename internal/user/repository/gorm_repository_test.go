package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	favdomain "github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/user/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &favdomain.Favorite{}))
	return db
}

func TestCreateAndFindUser(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &domain.User{Username: "luke", Email: "luke@rebellion.org", Password: "secret"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "luke", found.Username)
	assert.True(t, found.IsActive)

	byName, err := repo.FindByUsername(ctx, "luke")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "luke@rebellion.org")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "han", Email: "han@falcon.sw", Password: "x"}))

	err := repo.Create(ctx, &domain.User{Username: "han", Email: "other@falcon.sw", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "leia", Email: "leia@alderaan.sw", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	other := &domain.User{Username: "chewie", Email: "chewie@kashyyyk.sw", Password: "x"}
	require.NoError(t, repo.Create(ctx, other))

	favorites := []favdomain.Favorite{
		{UserID: user.ID, FavoriteType: favdomain.TypePeople, FavoriteID: 1},
		{UserID: user.ID, FavoriteType: favdomain.TypePlanet, FavoriteID: 2},
		{UserID: other.ID, FavoriteType: favdomain.TypePeople, FavoriteID: 1},
	}
	require.NoError(t, db.Create(&favorites).Error)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&favdomain.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "only the other user's favorite should remain")
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 404), domain.ErrNotFound)
}
