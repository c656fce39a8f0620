package policy

import (
	"linkden/internal/auth"
	"linkden/internal/models"
)

// RedactUser projects a user for the given viewer. Email is visible only to
// the user themselves; everyone else sees an empty string. The field stays
// present rather than being dropped, and the stored entity is never mutated —
// the projection works on a copy.
func RedactUser(principal auth.Principal, user models.User) models.User {
	if !principal.Authenticated || user.ID != principal.UserID {
		user.Email = ""
	}
	return user
}

// RedactUsers applies RedactUser to a whole listing.
func RedactUsers(principal auth.Principal, users []models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = RedactUser(principal, u)
	}
	return out
}
