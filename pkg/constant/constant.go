package constant

const (
	// TokenTypeBearer is the token_type value returned by the login endpoint.
	TokenTypeBearer = "bearer"

	// AuthScheme is the expected Authorization header scheme.
	AuthScheme = "Bearer "
)
