package services

import (
	"errors"
	"time"

	"daily-report-system/internal/authz"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/service"
)

const (
	dateLayout = "2006-01-02"
)

// ActorFromClaims converts session claims into the policy's actor. Handlers
// thread the claims explicitly; there is no ambient current-user state.
func ActorFromClaims(claims *service.SessionClaims) *authz.Actor {
	if claims == nil {
		return nil
	}
	return &authz.Actor{ID: claims.UserID, IsManager: claims.IsManager}
}

func isNotFound(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.Code == apperrors.CodeNotFound
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
