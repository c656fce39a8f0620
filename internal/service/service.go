package service

import (
	"context"
	"errors"

	"linkden/internal/auth"
	"linkden/internal/models"
	"linkden/internal/policy"
	"linkden/internal/store"

	"github.com/google/uuid"
)

const minPasswordLen = 9

// Service orchestrates policy, store and vote aggregate into the use cases
// exposed to the request layer. Every mutation runs the same single-pass
// pipeline: validate input, authorize, execute, redact.
type Service struct {
	store  store.Store
	engine *policy.Engine
	votes  *VoteAggregate
	issuer auth.TokenIssuer
}

func New(st store.Store, engine *policy.Engine, issuer auth.TokenIssuer) *Service {
	return &Service{
		store:  st,
		engine: engine,
		votes:  NewVoteAggregate(st),
		issuer: issuer,
	}
}

// authorize runs the policy engine and converts a Deny into the matching
// error kind via its reason string.
func (s *Service) authorize(ctx context.Context, principal auth.Principal, op policy.Operation, resource *models.Post) error {
	decision, err := s.engine.Authorize(ctx, principal, op, resource)
	if err != nil {
		return storageError(err)
	}
	if decision.Allowed {
		return nil
	}
	switch decision.Reason {
	case policy.ReasonInvalidUser:
		return errInvalidUser
	case policy.ReasonNotAuthor:
		return errNotAuthor
	default:
		return errNotAuthenticated
	}
}

// Signup creates a user and returns its id. Email uniqueness is a
// case-sensitive exact match, backed by the store's unique index.
func (s *Service) Signup(ctx context.Context, name, email, password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", errWeakPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", storageError(err)
	}
	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return "", errDuplicateEmail
		}
		return "", storageError(err)
	}
	return user.ID, nil
}

// Login checks the credentials and mints a signed token carrying the user id.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", errUnknownEmail
		}
		return "", storageError(err)
	}
	if !auth.CheckPassword(password, user.Password) {
		return "", errWrongPassword
	}
	token, err := s.issuer.Sign(user.ID)
	if err != nil {
		return "", storageError(err)
	}
	return token, nil
}

// WritePost creates a post authored by the principal.
func (s *Service) WritePost(ctx context.Context, principal auth.Principal, title string) (*models.Post, error) {
	if err := s.authorize(ctx, principal, policy.OpWritePost, nil); err != nil {
		return nil, err
	}
	post := &models.Post{
		ID:       uuid.NewString(),
		Title:    title,
		AuthorID: principal.UserID,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		if errors.Is(err, store.ErrNoAuthor) {
			return nil, errInvalidUser
		}
		return nil, storageError(err)
	}
	return post, nil
}

// Upvote casts a +1 vote by the principal on the post.
func (s *Service) Upvote(ctx context.Context, principal auth.Principal, postID string) (*models.Post, error) {
	return s.vote(ctx, principal, policy.OpUpvote, postID, 1)
}

// Downvote casts a -1 vote by the principal on the post.
func (s *Service) Downvote(ctx context.Context, principal auth.Principal, postID string) (*models.Post, error) {
	return s.vote(ctx, principal, policy.OpDownvote, postID, -1)
}

func (s *Service) vote(ctx context.Context, principal auth.Principal, op policy.Operation, postID string, value int) (*models.Post, error) {
	if err := s.authorize(ctx, principal, op, nil); err != nil {
		return nil, err
	}
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidPost
		}
		return nil, storageError(err)
	}
	post, err = s.votes.CastVote(ctx, post, principal.UserID, value)
	if err != nil {
		return nil, storageError(err)
	}
	return post, nil
}

// DeletePost removes the principal's own post together with its votes.
// Deleting an already-deleted id reports Invalid post, same as a never-known
// id.
func (s *Service) DeletePost(ctx context.Context, principal auth.Principal, postID string) (*models.Post, error) {
	if err := s.authorize(ctx, principal, policy.OpDeletePost, nil); err != nil {
		return nil, err
	}
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidPost
		}
		return nil, storageError(err)
	}
	if err := s.authorize(ctx, principal, policy.OpDeletePost, post); err != nil {
		return nil, err
	}
	// Snapshot the score before the votes go away with the post.
	score, err := s.votes.Score(ctx, postID)
	if err != nil {
		return nil, storageError(err)
	}
	post.Score = score
	if err := s.store.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidPost
		}
		return nil, storageError(err)
	}
	return post, nil
}

// ListPosts returns all posts with their scores recomputed on read.
func (s *Service) ListPosts(ctx context.Context, principal auth.Principal) ([]models.Post, error) {
	if err := s.authorize(ctx, principal, policy.OpListPosts, nil); err != nil {
		return nil, err
	}
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	for i := range posts {
		score, err := s.votes.Score(ctx, posts[i].ID)
		if err != nil {
			return nil, storageError(err)
		}
		posts[i].Score = score
	}
	return posts, nil
}

// ListUsers returns all users with the email field projected per viewer.
func (s *Service) ListUsers(ctx context.Context, principal auth.Principal) ([]models.User, error) {
	if err := s.authorize(ctx, principal, policy.OpListUsers, nil); err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return policy.RedactUsers(principal, users), nil
}

// GetPost returns one post with its score. Read path only; same policy as
// listing.
func (s *Service) GetPost(ctx context.Context, principal auth.Principal, postID string) (*models.Post, error) {
	if err := s.authorize(ctx, principal, policy.OpListPosts, nil); err != nil {
		return nil, err
	}
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidPost
		}
		return nil, storageError(err)
	}
	score, err := s.votes.Score(ctx, postID)
	if err != nil {
		return nil, storageError(err)
	}
	post.Score = score
	return post, nil
}
