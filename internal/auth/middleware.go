package auth

import (
	"context"
	"net/http"

	"github.com/daybook-app/daybook/internal/api/respond"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id placed in the request context
// by Middleware. The second result is false for unauthenticated requests.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// WithUserID is used by tests to fabricate an authenticated context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Middleware verifies the bearer token and stores the user id in the
// request context.
func (t *TokenIssuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := ExtractBearer(r.Header.Get("Authorization"))
		if err != nil {
			respond.WriteUnauthorized(w, "No token, authorization denied")
			return
		}
		userID, err := t.Verify(token)
		if err != nil {
			respond.WriteUnauthorized(w, "Token is not valid")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
