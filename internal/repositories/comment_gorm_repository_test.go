package repositories_test

import (
	"testing"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMCommentRepository_CreateAndList(t *testing.T) {
	f := newFixture(t)
	moe, lucy, foo := f.user(t, "moe"), f.user(t, "lucy"), f.item(t, "foo")
	r := f.review(t, moe, foo, 4)

	// Several comments by the same user on the same review are allowed.
	for _, text := range []string{"first", "second"} {
		require.NoError(t, f.comments.Create(&models.Comment{Text: text, UserID: lucy.ID, ReviewID: r.ID}))
	}
	require.NoError(t, f.comments.Create(&models.Comment{Text: "thanks", UserID: moe.ID, ReviewID: r.ID}))

	lucys, err := f.comments.ListByUser(lucy.ID)
	require.NoError(t, err)
	assert.Len(t, lucys, 2)
	for _, c := range lucys {
		assert.Equal(t, lucy.ID, c.UserID)
	}

	thread, err := f.comments.ListByReview(r.ID)
	require.NoError(t, err)
	assert.Len(t, thread, 3)

	none, err := f.comments.ListByUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGORMCommentRepository_MissingReview(t *testing.T) {
	f := newFixture(t)
	moe := f.user(t, "moe")

	err := f.comments.Create(&models.Comment{Text: "hello?", UserID: moe.ID, ReviewID: "missing-review"})
	assert.ErrorIs(t, err, repositories.ErrReferenceMissing)
}

func TestGORMCommentRepository_OwnershipScopedMutations(t *testing.T) {
	f := newFixture(t)
	moe, lucy, foo := f.user(t, "moe"), f.user(t, "lucy"), f.item(t, "foo")
	r := f.review(t, moe, foo, 4)
	c := &models.Comment{Text: "agreed", UserID: lucy.ID, ReviewID: r.ID}
	require.NoError(t, f.comments.Create(c))

	_, err := f.comments.UpdateOwned(moe.ID, c.ID, "not yours")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, f.comments.DeleteOwned(moe.ID, c.ID), repositories.ErrNotFound)

	updated, err := f.comments.UpdateOwned(lucy.ID, c.ID, "strongly agreed")
	require.NoError(t, err)
	assert.Equal(t, "strongly agreed", updated.Text)
	assert.Equal(t, r.ID, updated.ReviewID)

	require.NoError(t, f.comments.DeleteOwned(lucy.ID, c.ID))
	thread, err := f.comments.ListByReview(r.ID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}
