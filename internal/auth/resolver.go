package auth

// Principal is the resolved identity making a request. The zero value is the
// anonymous principal.
type Principal struct {
	Authenticated bool
	UserID        string
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

// Resolver turns an inbound bearer credential into a Principal.
type Resolver struct {
	verifier TokenVerifier
}

func NewResolver(verifier TokenVerifier) *Resolver {
	return &Resolver{verifier: verifier}
}

// Resolve never fails: a missing, malformed or expired credential degrades to
// the anonymous principal and the policy layer rejects where authentication is
// required. A valid credential yields an authenticated principal carrying the
// user id claim; whether that user still exists is re-checked at authorization
// time, not here.
func (r *Resolver) Resolve(credential string) Principal {
	if credential == "" {
		return Anonymous()
	}
	userID, err := r.verifier.Verify(credential)
	if err != nil {
		return Anonymous()
	}
	return Principal{Authenticated: true, UserID: userID}
}
