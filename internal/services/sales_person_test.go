package services

import (
	"context"
	"testing"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSalesPersonService(personRepo *fakeSalesPersonRepo, reportRepo *fakeDailyReportRepo) SalesPersonServiceInterface {
	return NewSalesPersonService(personRepo, reportRepo, zap.NewNop())
}

func TestCreateSalesPersonDuplicateEmail(t *testing.T) {
	repo := newFakeSalesPersonRepo(&entities.SalesPerson{ID: 1, Email: "tanaka@example.com"})
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	_, err := svc.CreateSalesPerson(context.Background(), manager, dto.CreateSalesPersonDTO{
		Name:     "Tanaka",
		Email:    "tanaka@example.com",
		Password: "password123",
	})
	assertCode(t, err, apperrors.CodeDuplicate)
}

func TestCreateSalesPersonHashesPassword(t *testing.T) {
	repo := newFakeSalesPersonRepo()
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	created, err := svc.CreateSalesPerson(context.Background(), manager, dto.CreateSalesPersonDTO{
		Name:     "Suzuki",
		Email:    "suzuki@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	stored := repo.persons[created.ID]
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "password123"))
	assert.False(t, created.IsManager, "the manager flag defaults to false")
}

func TestCreateSalesPersonRequiresManager(t *testing.T) {
	svc := newSalesPersonService(newFakeSalesPersonRepo(), newFakeDailyReportRepo())
	salesPerson := &authz.Actor{ID: 2}

	_, err := svc.CreateSalesPerson(context.Background(), salesPerson, dto.CreateSalesPersonDTO{
		Name: "X", Email: "x@example.com", Password: "password123",
	})
	assertCode(t, err, apperrors.CodePermissionDenied)
}

func TestUpdateSalesPersonKeepsPasswordWhenEmpty(t *testing.T) {
	hashed, err := utils.HashPassword("original-pw")
	require.NoError(t, err)
	repo := newFakeSalesPersonRepo(&entities.SalesPerson{
		ID: 2, Name: "Tanaka", Email: "tanaka@example.com", Password: hashed,
	})
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	_, err = svc.UpdateSalesPerson(context.Background(), manager, 2, dto.UpdateSalesPersonDTO{
		Name:  "Tanaka Ichiro",
		Email: "tanaka@example.com",
	})
	require.NoError(t, err)

	stored := repo.persons[2]
	assert.Equal(t, "Tanaka Ichiro", stored.Name)
	assert.Equal(t, hashed, stored.Password, "an empty password leaves the stored hash alone")
}

func TestUpdateSalesPersonPreservesManagerFlag(t *testing.T) {
	repo := newFakeSalesPersonRepo(&entities.SalesPerson{
		ID: 2, Name: "Tanaka", Email: "tanaka@example.com", IsManager: true,
	})
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	_, err := svc.UpdateSalesPerson(context.Background(), manager, 2, dto.UpdateSalesPersonDTO{
		Name:  "Tanaka",
		Email: "tanaka@example.com",
	})
	require.NoError(t, err)
	assert.True(t, repo.persons[2].IsManager, "a nil isManager keeps the current value")

	off := false
	_, err = svc.UpdateSalesPerson(context.Background(), manager, 2, dto.UpdateSalesPersonDTO{
		Name:      "Tanaka",
		Email:     "tanaka@example.com",
		IsManager: &off,
	})
	require.NoError(t, err)
	assert.False(t, repo.persons[2].IsManager)
}

func TestDeleteSalesPersonSelf(t *testing.T) {
	repo := newFakeSalesPersonRepo(&entities.SalesPerson{ID: 1, Email: "manager@example.com", IsManager: true})
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	err := svc.DeleteSalesPerson(context.Background(), manager, 1)
	assertCode(t, err, apperrors.CodeSelfDelete)
	assert.Empty(t, repo.deleted)
}

func TestDeleteSalesPersonWithReports(t *testing.T) {
	repo := newFakeSalesPersonRepo(
		&entities.SalesPerson{ID: 1, IsManager: true},
		&entities.SalesPerson{ID: 2},
	)
	reportRepo := newFakeDailyReportRepo()
	reportRepo.reportCounts[2] = 3
	svc := newSalesPersonService(repo, reportRepo)
	manager := &authz.Actor{ID: 1, IsManager: true}

	err := svc.DeleteSalesPerson(context.Background(), manager, 2)
	assertCode(t, err, apperrors.CodeReference)
	assert.Empty(t, repo.deleted)
}

func TestDeleteSalesPerson(t *testing.T) {
	repo := newFakeSalesPersonRepo(
		&entities.SalesPerson{ID: 1, IsManager: true},
		&entities.SalesPerson{ID: 2},
	)
	svc := newSalesPersonService(repo, newFakeDailyReportRepo())
	manager := &authz.Actor{ID: 1, IsManager: true}

	require.NoError(t, svc.DeleteSalesPerson(context.Background(), manager, 2))
	assert.Equal(t, []int64{2}, repo.deleted)
}
