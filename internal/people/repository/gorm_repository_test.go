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

	"github.com/tair/starwars-api/internal/people/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.People{}))
	return db
}

func strptr(s string) *string { return &s }

func TestCreateAndFindPerson(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	person := &domain.People{
		Name:      "Luke Skywalker",
		Height:    strptr("172"),
		BirthYear: strptr("19BBY"),
	}
	require.NoError(t, repo.Create(ctx, person))
	assert.NotZero(t, person.ID)

	found, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", found.Name)
	require.NotNil(t, found.Height)
	assert.Equal(t, "172", *found.Height)

	byName, err := repo.FindByName(ctx, "Luke Skywalker")
	require.NoError(t, err)
	assert.Equal(t, person.ID, byName.ID)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.People{Name: "Yoda"}))

	err := repo.Create(ctx, &domain.People{Name: "Yoda"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestFindPersonNotFound(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindByName(ctx, "Jar Jar Binks")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePerson(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	person := &domain.People{Name: "Leia Organa", Height: strptr("150")}
	require.NoError(t, repo.Create(ctx, person))

	person.Height = strptr("151")
	person.Gender = strptr("female")
	require.NoError(t, repo.Update(ctx, person))

	found, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "151", *found.Height)
	assert.Equal(t, "female", *found.Gender)
}

func TestFindAllOrdered(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Han Solo", "Chewbacca", "Lando Calrissian"} {
		require.NoError(t, repo.Create(ctx, &domain.People{Name: name}))
	}

	people, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Han Solo", people[0].Name)
	assert.Equal(t, "Lando Calrissian", people[2].Name)
}

func TestDeletePerson(t *testing.T) {
	repo := NewGormPeopleRepository(newTestDB(t))
	ctx := context.Background()

	person := &domain.People{Name: "Porkins"}
	require.NoError(t, repo.Create(ctx, person))

	require.NoError(t, repo.Delete(ctx, person.ID))

	_, err := repo.FindByID(ctx, person.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, person.ID), domain.ErrNotFound)
}
