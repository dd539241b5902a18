package authz

import (
	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"
)

// Actor is the authenticated identity a decision is made for. Two roles
// exist: managers and regular sales persons.
type Actor struct {
	ID        int64
	IsManager bool
}

// Can is the single authorization decision function. It is pure: given the
// actor, the requested action and the loaded target record (nil when the
// action needs none), it returns nil to allow or the denial as an error.
//
// Rule order matters and is fixed:
//  1. no actor → AUTH_REQUIRED
//  2. manager-only action without the flag → PERMISSION_DENIED
//  3. report read → manager or owner; denied without a loaded report
//  4. report update/delete → owner only, the manager flag does not override;
//     denied without a loaded report
//  5. deleting one's own account → SELF_DELETE_ERROR, managers included
//  6. everything else → allowed once the coarse checks passed
func Can(actor *Actor, action Action, target interface{}) error {
	if actor == nil {
		return apperrors.ErrAuthRequired
	}

	if managerOnly[action] && !actor.IsManager {
		return apperrors.ErrPermissionDenied
	}

	switch action {
	case ReportsView:
		// The per-record rules need the loaded report; without one the
		// decision fails closed.
		report, ok := target.(*entities.DailyReport)
		if !ok {
			return apperrors.ErrPermissionDenied
		}
		if actor.IsManager || actor.ID == report.SalesPersonID {
			return nil
		}
		return apperrors.ErrPermissionDenied

	case ReportsUpdate, ReportsDelete:
		report, ok := target.(*entities.DailyReport)
		if !ok {
			return apperrors.ErrPermissionDenied
		}
		if actor.ID == report.SalesPersonID {
			return nil
		}
		return apperrors.ErrPermissionDenied

	case SalesPersonsDelete:
		if person, ok := target.(*entities.SalesPerson); ok {
			if actor.ID == person.ID {
				return apperrors.SelfDelete("You cannot delete your own account")
			}
		}
	}

	return nil
}

// ReportListScope narrows a daily-report listing to what the actor may see.
// Non-managers are pinned to their own reports; managers see everything and
// may further filter by an explicit sales person id.
func ReportListScope(actor *Actor, requested *int64) *int64 {
	if actor == nil {
		return nil
	}
	if !actor.IsManager {
		own := actor.ID
		return &own
	}
	return requested
}
