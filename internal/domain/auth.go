package domain

// AuthMethod records how a request was authenticated.
type AuthMethod string

const (
	AuthMethodAuth0      AuthMethod = "auth0"
	AuthMethodSingleUser AuthMethod = "single_user"
)
