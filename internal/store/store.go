package store

import (
	"context"
	"errors"

	"linkden/internal/models"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by CreateUser when the email is already registered.
	ErrEmailTaken = errors.New("email already taken")
	// ErrNoAuthor is returned by CreatePost when the author id references no user.
	ErrNoAuthor = errors.New("author does not exist")
)

// Store is the persistence boundary. Implementations must linearize writes on
// the same (user, post) vote key; callers hold no locks of their own.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	// DeletePost removes the post and all its votes in one unit of work.
	// Returns ErrNotFound when the post does not exist.
	DeletePost(ctx context.Context, id string) error

	// UpsertVote creates the (voterID, postID) vote or overwrites its value,
	// last writer wins.
	UpsertVote(ctx context.Context, voterID, postID string, value int) error
	// SumVotes returns the sum of all vote values for the post; 0 when the
	// post has no votes.
	SumVotes(ctx context.Context, postID string) (int, error)
}
