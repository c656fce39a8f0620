package policy

import (
	"context"
	"testing"

	"linkden/internal/auth"
	"linkden/internal/models"
	"linkden/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	err := st.CreateUser(context.Background(), &models.User{ID: "alice", Name: "Alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)
	return NewEngine(st), st
}

func authed(userID string) auth.Principal {
	return auth.Principal{Authenticated: true, UserID: userID}
}

func TestSignupAndLoginAlwaysAllowed(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, op := range []Operation{OpSignup, OpLogin} {
		decision, err := engine.Authorize(context.Background(), auth.Anonymous(), op, nil)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "op %s", op)
	}
}

func TestListingRequiresAuthentication(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, op := range []Operation{OpListPosts, OpListUsers} {
		decision, err := engine.Authorize(context.Background(), auth.Anonymous(), op, nil)
		require.NoError(t, err)
		assert.False(t, decision.Allowed, "op %s", op)
		assert.Equal(t, ReasonNotAuthorised, decision.Reason)

		decision, err = engine.Authorize(context.Background(), authed("alice"), op, nil)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "op %s", op)
	}
}

func TestMutationsRequireExistingUser(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, op := range []Operation{OpWritePost, OpUpvote, OpDownvote, OpDeletePost} {
		decision, err := engine.Authorize(context.Background(), auth.Anonymous(), op, nil)
		require.NoError(t, err)
		assert.False(t, decision.Allowed, "op %s", op)
		assert.Equal(t, ReasonNotAuthorised, decision.Reason)

		// Authenticated but the user behind the token is gone.
		decision, err = engine.Authorize(context.Background(), authed("ghost"), op, nil)
		require.NoError(t, err)
		assert.False(t, decision.Allowed, "op %s", op)
		assert.Equal(t, ReasonInvalidUser, decision.Reason)

		decision, err = engine.Authorize(context.Background(), authed("alice"), op, nil)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "op %s", op)
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	engine, st := newTestEngine(t)
	err := st.CreateUser(context.Background(), &models.User{ID: "bob", Name: "Bob", Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)

	post := &models.Post{ID: "p1", Title: "Some post", AuthorID: "alice"}

	decision, err := engine.Authorize(context.Background(), authed("bob"), OpDeletePost, post)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNotAuthor, decision.Reason)

	decision, err = engine.Authorize(context.Background(), authed("alice"), OpDeletePost, post)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestUnknownOperationFailsClosed(t *testing.T) {
	engine, _ := newTestEngine(t)

	decision, err := engine.Authorize(context.Background(), authed("alice"), Operation("dropTables"), nil)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonNotAuthorised, decision.Reason)
}

func TestRedactUser(t *testing.T) {
	user := models.User{ID: "alice", Name: "Alice", Email: "alice@example.com"}

	self := RedactUser(authed("alice"), user)
	assert.Equal(t, "alice@example.com", self.Email)

	other := RedactUser(authed("bob"), user)
	assert.Equal(t, "", other.Email)

	anon := RedactUser(auth.Anonymous(), user)
	assert.Equal(t, "", anon.Email)

	// The original value is untouched; redaction is a projection.
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRedactUsers(t *testing.T) {
	users := []models.User{
		{ID: "alice", Email: "alice@example.com"},
		{ID: "bob", Email: "bob@example.com"},
	}

	out := RedactUsers(authed("alice"), users)
	require.Len(t, out, 2)
	assert.Equal(t, "alice@example.com", out[0].Email)
	assert.Equal(t, "", out[1].Email)
}
