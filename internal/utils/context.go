package utils

import "context"

// ctxKey is a private type for context keys defined in this package.
// A dedicated type prevents collisions with keys from other packages.
type ctxKey string

// UserIDCtxKey is the context key under which the authentication middleware
// stores the ID of the authenticated user.
const UserIDCtxKey ctxKey = "user_id"

// GetUserIDFromContext extracts the authenticated user's ID from ctx.
// The second return value is false when no user is authenticated.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
