package repositories_test

import (
	"testing"

	"reviewhub/internal/database"
	"reviewhub/internal/models"
	"reviewhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture bundles an isolated in-memory database with its repositories.
type fixture struct {
	db       *gorm.DB
	users    *repositories.GORMUserRepository
	items    *repositories.GORMItemRepository
	reviews  *repositories.GORMReviewRepository
	comments *repositories.GORMCommentRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Reset(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return &fixture{
		db:       db,
		users:    repositories.NewGORMUserRepository(db),
		items:    repositories.NewGORMItemRepository(db),
		reviews:  repositories.NewGORMReviewRepository(db),
		comments: repositories.NewGORMCommentRepository(db),
	}
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Password: "hash-" + name}
	require.NoError(t, f.users.Create(u))
	return u
}

func (f *fixture) item(t *testing.T, name string) *models.Item {
	t.Helper()
	it := &models.Item{Name: name, Description: name + " description"}
	require.NoError(t, f.items.Create(it))
	return it
}

func (f *fixture) review(t *testing.T, u *models.User, it *models.Item, rating float64) *models.Review {
	t.Helper()
	r := &models.Review{Text: "ok", Rating: rating, UserID: u.ID, ItemID: it.ID}
	require.NoError(t, f.reviews.Create(r))
	return r
}
