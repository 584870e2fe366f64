package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sportclub/SC-AppointmentService/internal/api/handlers"
)

// RoleAdmin is the role value that grants access to admin routes
const RoleAdmin = "admin"

type ctxKey int

const (
	userIDKey ctxKey = iota
	userRoleKey
)

// Auth requires the X-User-ID header on every request of the subrouter.
// The upstream gateway authenticates the user and forwards the identity
// headers; the service only reads them. The optional X-User-Role header
// is stored alongside the id.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		if role := r.Header.Get("X-User-Role"); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects requests whose role is not admin. Must run after Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated user id from the context
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole returns the forwarded role from the context
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

// IsAdmin reports whether the request carries the admin role
func IsAdmin(ctx context.Context) bool {
	role, ok := GetUserRole(ctx)
	return ok && role == RoleAdmin
}
