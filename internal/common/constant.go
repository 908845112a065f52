package common

// AuthorizationHeaderName is the HTTP header carrying the bearer credential.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header. The match
// is case-sensitive.
const BearerPrefix = "Bearer "

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultCategory is assigned to articles created without a category.
const DefaultCategory = "general"
