package service

import (
	"fmt"
)

// Kind classifies every failure a use case can return. Each use case maps
// exactly one failure path to exactly one kind; handlers select HTTP statuses
// from it.
type Kind int

const (
	KindNotAuthenticated Kind = iota
	KindInvalidUser
	KindInvalidPost
	KindOwnershipViolation
	KindDuplicateEmail
	KindWeakPassword
	KindInvalidCredentials
	KindStorageFailure
)

// Error is a tagged use-case failure.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func storageError(err error) *Error {
	return &Error{
		Kind:    KindStorageFailure,
		Message: fmt.Sprintf("storage failure: %v", err),
		cause:   err,
	}
}

var (
	errNotAuthenticated = newError(KindNotAuthenticated, "Not Authorised")
	errInvalidUser      = newError(KindInvalidUser, "Invalid user")
	errInvalidPost      = newError(KindInvalidPost, "Invalid post")
	errNotAuthor        = newError(KindOwnershipViolation, "Only authors are allowed to delete posts")
	errDuplicateEmail   = newError(KindDuplicateEmail, "User with this email already exists")
	errWeakPassword     = newError(KindWeakPassword, "Password is too short")
	errUnknownEmail     = newError(KindInvalidCredentials, "No user with this email")
	errWrongPassword    = newError(KindInvalidCredentials, "Password is incorrect")
)
