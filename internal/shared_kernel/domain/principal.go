package domain

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the authenticated user behind a request, as asserted by the
// gateway. Usecases receive it explicitly.
type Principal struct {
	UserID ID
	Email  string
	Name   string
}

func (p Principal) IsZero() bool {
	return p.UserID == ""
}

type principalKey struct{}

func ContextWithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, error) {
	principal, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || principal.IsZero() {
		return Principal{}, ErrUnauthenticated
	}
	return principal, nil
}
