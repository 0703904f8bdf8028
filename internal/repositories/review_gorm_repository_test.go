package repositories_test

import (
	"testing"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMReviewRepository_OneReviewPerUserAndItem(t *testing.T) {
	f := newFixture(t)
	moe, foo := f.user(t, "moe"), f.item(t, "foo")
	f.review(t, moe, foo, 4)

	err := f.reviews.Create(&models.Review{Text: "again", Rating: 2, UserID: moe.ID, ItemID: foo.ID})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	reviews, err := f.reviews.ListByItem(foo.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "ok", reviews[0].Text)
	assert.Equal(t, 4.0, reviews[0].Rating)
}

func TestGORMReviewRepository_SameUserDifferentItems(t *testing.T) {
	f := newFixture(t)
	moe := f.user(t, "moe")
	f.review(t, moe, f.item(t, "foo"), 4)
	f.review(t, moe, f.item(t, "bar"), 1)
}

func TestGORMReviewRepository_MissingReferences(t *testing.T) {
	f := newFixture(t)
	moe, foo := f.user(t, "moe"), f.item(t, "foo")

	err := f.reviews.Create(&models.Review{Text: "x", Rating: 1, UserID: moe.ID, ItemID: "missing-item"})
	assert.ErrorIs(t, err, repositories.ErrReferenceMissing)

	err = f.reviews.Create(&models.Review{Text: "x", Rating: 1, UserID: "missing-user", ItemID: foo.ID})
	assert.ErrorIs(t, err, repositories.ErrReferenceMissing)
}

func TestGORMReviewRepository_UpdateOwned(t *testing.T) {
	f := newFixture(t)
	moe, lucy, foo := f.user(t, "moe"), f.user(t, "lucy"), f.item(t, "foo")
	r := f.review(t, moe, foo, 4)

	updated, err := f.reviews.UpdateOwned(moe.ID, r.ID, "changed my mind", 1)
	require.NoError(t, err)
	assert.Equal(t, r.ID, updated.ID)
	assert.Equal(t, "changed my mind", updated.Text)
	assert.Equal(t, 1.0, updated.Rating)
	assert.Equal(t, moe.ID, updated.UserID)

	// A non-owner affects zero rows and the review is unchanged.
	_, err = f.reviews.UpdateOwned(lucy.ID, r.ID, "hijacked", 5)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	current, err := f.reviews.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", current.Text)
	assert.Equal(t, 1.0, current.Rating)

	_, err = f.reviews.UpdateOwned(moe.ID, "missing-id", "x", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMReviewRepository_DeleteOwned(t *testing.T) {
	f := newFixture(t)
	moe, lucy, foo := f.user(t, "moe"), f.user(t, "lucy"), f.item(t, "foo")
	r := f.review(t, moe, foo, 4)

	err := f.reviews.DeleteOwned(lucy.ID, r.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	current, err := f.reviews.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "ok", current.Text)

	require.NoError(t, f.reviews.DeleteOwned(moe.ID, r.ID))

	_, err = f.reviews.GetByID(r.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = f.reviews.DeleteOwned(moe.ID, r.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound, "deleting twice matches no row")
}

func TestGORMReviewRepository_DeleteCascadesToComments(t *testing.T) {
	f := newFixture(t)
	moe, lucy, foo := f.user(t, "moe"), f.user(t, "lucy"), f.item(t, "foo")
	r := f.review(t, moe, foo, 4)
	require.NoError(t, f.comments.Create(&models.Comment{Text: "agreed", UserID: lucy.ID, ReviewID: r.ID}))

	require.NoError(t, f.reviews.DeleteOwned(moe.ID, r.ID))

	comments, err := f.comments.ListByUser(lucy.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
