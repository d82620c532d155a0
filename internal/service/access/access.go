// Package access owns the single authoritative admin predicate and the
// self-protection rule. Every mutating service operation goes through it;
// nothing else in the codebase re-derives the role check.
package access

import (
	"context"
	"errors"

	"teampoints/internal/models"
)

var (
	ErrForbidden  = errors.New("operation requires admin role")
	ErrSelfAction = errors.New("operation not allowed on own account")
)

// Identity is the authenticated caller as presented by the current
// request's token. It is never cached across requests.
type Identity struct {
	UserID int64
	Role   string
}

type ctxKey int

const identityKey ctxKey = 0

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func IsAdmin(id Identity) bool {
	return id.Role == models.RoleAdmin
}

// RequireIdentity returns the caller's identity, ErrForbidden when the
// request carries none.
func RequireIdentity(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, ErrForbidden
	}
	return id, nil
}

// RequireAdmin returns the caller's identity if it is authenticated and
// holds the admin role, ErrForbidden otherwise.
func RequireAdmin(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok || !IsAdmin(id) {
		return Identity{}, ErrForbidden
	}
	return id, nil
}

// RequireAdminNotSelf is RequireAdmin plus the self-protection rule:
// even an admin may not target their own account.
func RequireAdminNotSelf(ctx context.Context, targetUserID int64) (Identity, error) {
	id, err := RequireAdmin(ctx)
	if err != nil {
		return Identity{}, err
	}
	if id.UserID == targetUserID {
		return Identity{}, ErrSelfAction
	}
	return id, nil
}
