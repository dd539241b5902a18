package authz

import (
	"errors"
	"testing"

	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr.Code
}

func TestCanRequiresActor(t *testing.T) {
	err := Can(nil, ReportsList, nil)
	assert.Equal(t, apperrors.CodeAuthRequired, codeOf(t, err))
}

func TestCanManagerOnlyActions(t *testing.T) {
	salesPerson := &Actor{ID: 2, IsManager: false}
	manager := &Actor{ID: 1, IsManager: true}

	denied := []Action{
		SalesPersonsCreate, SalesPersonsView, SalesPersonsUpdate, SalesPersonsDelete,
		CustomersDelete, CommentsCreate,
	}
	for _, action := range denied {
		err := Can(salesPerson, action, nil)
		assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err), "action %s", action)
	}

	assert.NoError(t, Can(manager, SalesPersonsCreate, nil))
	assert.NoError(t, Can(manager, CommentsCreate, nil))
	assert.NoError(t, Can(manager, CustomersDelete, nil))
}

func TestCanReportView(t *testing.T) {
	report := &entities.DailyReport{ID: 10, SalesPersonID: 2}

	owner := &Actor{ID: 2}
	manager := &Actor{ID: 1, IsManager: true}
	other := &Actor{ID: 3}

	assert.NoError(t, Can(owner, ReportsView, report))
	assert.NoError(t, Can(manager, ReportsView, report))

	err := Can(other, ReportsView, report)
	assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err))
}

func TestCanReportWriteIsOwnerOnly(t *testing.T) {
	report := &entities.DailyReport{ID: 10, SalesPersonID: 2}

	owner := &Actor{ID: 2}
	manager := &Actor{ID: 1, IsManager: true}

	assert.NoError(t, Can(owner, ReportsUpdate, report))
	assert.NoError(t, Can(owner, ReportsDelete, report))

	// The manager flag does not grant write access to someone else's report.
	err := Can(manager, ReportsUpdate, report)
	assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err))
	err = Can(manager, ReportsDelete, report)
	assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err))
}

func TestCanReportActionsFailClosedWithoutTarget(t *testing.T) {
	// Per-record report rules cannot decide without the loaded record; a
	// missing or mistyped target must deny, never silently allow.
	manager := &Actor{ID: 1, IsManager: true}

	for _, action := range []Action{ReportsView, ReportsUpdate, ReportsDelete} {
		err := Can(manager, action, nil)
		assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err), "nil target, action %s", action)

		err = Can(manager, action, &entities.SalesPerson{ID: 1})
		assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err), "wrong-typed target, action %s", action)
	}
}

func TestCanSelfDelete(t *testing.T) {
	manager := &Actor{ID: 1, IsManager: true}
	self := &entities.SalesPerson{ID: 1}
	other := &entities.SalesPerson{ID: 2}

	err := Can(manager, SalesPersonsDelete, self)
	assert.Equal(t, apperrors.CodeSelfDelete, codeOf(t, err))

	assert.NoError(t, Can(manager, SalesPersonsDelete, other))
}

func TestCanPermissionBeforeSelfDelete(t *testing.T) {
	// A non-manager hitting their own id is denied for the missing role,
	// never told about the self-delete rule.
	salesPerson := &Actor{ID: 5, IsManager: false}
	self := &entities.SalesPerson{ID: 5}

	err := Can(salesPerson, SalesPersonsDelete, self)
	assert.Equal(t, apperrors.CodePermissionDenied, codeOf(t, err))
}

func TestReportListScope(t *testing.T) {
	requested := int64(7)

	salesPerson := &Actor{ID: 2}
	scope := ReportListScope(salesPerson, &requested)
	require.NotNil(t, scope)
	assert.Equal(t, int64(2), *scope, "non-managers are pinned to their own reports")

	manager := &Actor{ID: 1, IsManager: true}
	scope = ReportListScope(manager, &requested)
	require.NotNil(t, scope)
	assert.Equal(t, int64(7), *scope)

	assert.Nil(t, ReportListScope(manager, nil))
}
