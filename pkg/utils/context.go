package utils

import (
	"context"

	"daily-report-system/pkg/contextkeys"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/service"
)

// ClaimsFromCtx returns the session claims stored by the auth middleware.
// Handlers pass the claims on explicitly; nothing else reads the context.
func ClaimsFromCtx(ctx context.Context) (*service.SessionClaims, error) {
	claims, ok := ctx.Value(contextkeys.SessionClaimsKey).(*service.SessionClaims)
	if !ok || claims == nil {
		return nil, apperrors.ErrAuthRequired
	}
	return claims, nil
}

func WithClaims(ctx context.Context, claims *service.SessionClaims) context.Context {
	return context.WithValue(ctx, contextkeys.SessionClaimsKey, claims)
}
