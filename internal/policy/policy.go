package policy

import (
	"context"
	"errors"

	"linkden/internal/auth"
	"linkden/internal/models"
	"linkden/internal/store"
)

// Operation names an action a principal may ask to perform.
type Operation string

const (
	OpSignup     Operation = "signup"
	OpLogin      Operation = "login"
	OpListPosts  Operation = "listPosts"
	OpListUsers  Operation = "listUsers"
	OpWritePost  Operation = "writePost"
	OpDeletePost Operation = "deletePost"
	OpUpvote     Operation = "upvote"
	OpDownvote   Operation = "downvote"
)

// Deny reasons. The service layer maps these onto its error kinds, so the
// strings are part of the contract.
const (
	ReasonNotAuthorised = "Not Authorised"
	ReasonInvalidUser   = "Invalid user"
	ReasonNotAuthor     = "Only authors are allowed to delete posts"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allowDecision() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// rule checks one operation for one principal. resource is the post being
// acted on, nil when the operation has no target yet.
type rule func(ctx context.Context, e *Engine, principal auth.Principal, resource *models.Post) (Decision, error)

// Engine evaluates the per-operation rule table. Rules are pure except for
// the user-existence check, which reads the store; unknown operations are
// denied (fail closed).
type Engine struct {
	store store.Store
	rules map[Operation]rule
}

func NewEngine(st store.Store) *Engine {
	e := &Engine{store: st}
	e.rules = map[Operation]rule{
		OpSignup:     allow,
		OpLogin:      allow,
		OpListPosts:  isAuthenticated,
		OpListUsers:  isAuthenticated,
		OpWritePost:  isValidUser,
		OpUpvote:     isValidUser,
		OpDownvote:   isValidUser,
		OpDeletePost: isAuthor,
	}
	return e
}

// Authorize evaluates the rule for op. The error return is reserved for
// storage failures; an authorization refusal is a Decision, not an error.
func (e *Engine) Authorize(ctx context.Context, principal auth.Principal, op Operation, resource *models.Post) (Decision, error) {
	r, ok := e.rules[op]
	if !ok {
		return deny(ReasonNotAuthorised), nil
	}
	return r(ctx, e, principal, resource)
}

func allow(_ context.Context, _ *Engine, _ auth.Principal, _ *models.Post) (Decision, error) {
	return allowDecision(), nil
}

func isAuthenticated(_ context.Context, _ *Engine, principal auth.Principal, _ *models.Post) (Decision, error) {
	if !principal.Authenticated {
		return deny(ReasonNotAuthorised), nil
	}
	return allowDecision(), nil
}

// isValidUser requires an authenticated principal whose user id still exists.
// The token may outlive the user it was minted for, so the store is the
// source of truth here.
func isValidUser(ctx context.Context, e *Engine, principal auth.Principal, _ *models.Post) (Decision, error) {
	if !principal.Authenticated {
		return deny(ReasonNotAuthorised), nil
	}
	if _, err := e.store.GetUserByID(ctx, principal.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return deny(ReasonInvalidUser), nil
		}
		return Decision{}, err
	}
	return allowDecision(), nil
}

// isAuthor layers the ownership check on top of isValidUser. With a nil
// resource it only checks the principal, so the service can gate the post
// lookup before re-running the check against the fetched post.
func isAuthor(ctx context.Context, e *Engine, principal auth.Principal, resource *models.Post) (Decision, error) {
	decision, err := isValidUser(ctx, e, principal, resource)
	if err != nil || !decision.Allowed {
		return decision, err
	}
	if resource != nil && resource.AuthorID != principal.UserID {
		return deny(ReasonNotAuthor), nil
	}
	return allowDecision(), nil
}
