package store

import (
	"context"
	"testing"

	"linkden/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, s Store, id, email string) {
	t.Helper()
	err := s.CreateUser(context.Background(), &models.User{ID: id, Name: id, Email: email, Password: "x"})
	require.NoError(t, err)
}

func seedPost(t *testing.T, s Store, id, authorID string) {
	t.Helper()
	err := s.CreatePost(context.Background(), &models.Post{ID: id, Title: "t", AuthorID: authorID})
	require.NoError(t, err)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	err := s.CreateUser(context.Background(), &models.User{ID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUserEmailIsCaseSensitive(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	err := s.CreateUser(context.Background(), &models.User{ID: "u2", Email: "A@example.com"})
	assert.NoError(t, err)
}

func TestCreatePostRequiresAuthor(t *testing.T) {
	s := NewMemoryStore()

	err := s.CreatePost(context.Background(), &models.Post{ID: "p1", AuthorID: "nobody"})
	assert.ErrorIs(t, err, ErrNoAuthor)
}

func TestUpsertVoteOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedUser(t, s, "u1", "a@example.com")
	seedPost(t, s, "p1", "u1")

	require.NoError(t, s.UpsertVote(ctx, "u1", "p1", 1))
	sum, err := s.SumVotes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, sum)

	// Re-cast with the opposite polarity replaces, it does not add.
	require.NoError(t, s.UpsertVote(ctx, "u1", "p1", -1))
	sum, err = s.SumVotes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, -1, sum)
}

func TestSumVotesAcrossVoters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedUser(t, s, "u1", "a@example.com")
	seedUser(t, s, "u2", "b@example.com")
	seedUser(t, s, "u3", "c@example.com")
	seedPost(t, s, "p1", "u1")

	require.NoError(t, s.UpsertVote(ctx, "u1", "p1", 1))
	require.NoError(t, s.UpsertVote(ctx, "u2", "p1", 1))
	require.NoError(t, s.UpsertVote(ctx, "u3", "p1", -1))

	sum, err := s.SumVotes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, sum)
}

func TestSumVotesEmpty(t *testing.T) {
	s := NewMemoryStore()
	sum, err := s.SumVotes(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}

func TestDeletePostRemovesVotes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedUser(t, s, "u1", "a@example.com")
	seedPost(t, s, "p1", "u1")
	require.NoError(t, s.UpsertVote(ctx, "u1", "p1", 1))

	require.NoError(t, s.DeletePost(ctx, "p1"))

	_, err := s.GetPost(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	sum, err := s.SumVotes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}

func TestDeletePostMissing(t *testing.T) {
	s := NewMemoryStore()
	err := s.DeletePost(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	s := NewMemoryStore()
	seedUser(t, s, "u1", "a@example.com")

	user, err := s.GetUserByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = s.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
