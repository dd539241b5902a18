package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"daily-report-system/pkg/customvalidator"
	"daily-report-system/pkg/database/postgresql"
	"daily-report-system/pkg/service"
	"daily-report-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// RouterTestSuite exercises the API end to end against a real database.
// It needs TEST_DATABASE_URL to point at a disposable PostgreSQL instance.
type RouterTestSuite struct {
	suite.Suite
	Echo             *echo.Echo
	DB               *pgxpool.Pool
	ManagerToken     string
	SalesPersonToken string
	SalesPersonID    int64
}

func TestRouterSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")

	s.Require().NoError(postgresql.RunMigrations(dsn))
	s.DB = postgresql.ConnectDB(dsn)

	e := echo.New()
	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	jwtSvc := service.NewJWTService("integration-test-secret", time.Hour)
	InitRouter(e, s.DB, jwtSvc, zap.NewNop())
	s.Echo = e

	s.createAccount("Manager Sato", "manager@test.example", true)
	s.SalesPersonID = s.createAccount("Tanaka Ichiro", "tanaka@test.example", false)

	s.ManagerToken = s.login("manager@test.example")
	s.SalesPersonToken = s.login("tanaka@test.example")
}

func (s *RouterTestSuite) TearDownSuite() {
	if s.DB != nil {
		ctx := context.Background()
		s.DB.Exec(ctx, "DELETE FROM manager_comments")
		s.DB.Exec(ctx, "DELETE FROM visit_records")
		s.DB.Exec(ctx, "DELETE FROM daily_reports")
		s.DB.Exec(ctx, "DELETE FROM customers")
		s.DB.Exec(ctx, "DELETE FROM sales_persons WHERE email LIKE '%@test.example'")
		s.DB.Close()
	}
}

func (s *RouterTestSuite) createAccount(name, email string, isManager bool) int64 {
	hashed, err := utils.HashPassword("password123")
	s.Require().NoError(err)

	var id int64
	err = s.DB.QueryRow(context.Background(),
		`INSERT INTO sales_persons (name, email, password, is_manager)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name, email, hashed, isManager,
	).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *RouterTestSuite) request(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decode(rec *httptest.ResponseRecorder) utils.HTTPResponse {
	var body utils.HTTPResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *RouterTestSuite) login(email string) string {
	rec := s.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NotEmpty(body.Data.Token)
	return body.Data.Token
}

func (s *RouterTestSuite) TestLoginRejectsBadPassword() {
	rec := s.request(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "manager@test.example",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)

	body := s.decode(rec)
	s.Require().NotNil(body.Error)
	s.Equal("AUTH_INVALID", body.Error.Code)
}

func (s *RouterTestSuite) TestUnauthenticatedRequest() {
	rec := s.request(http.MethodGet, "/api/v1/customers", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	body := s.decode(rec)
	s.Require().NotNil(body.Error)
	s.Equal("AUTH_REQUIRED", body.Error.Code)
}

func (s *RouterTestSuite) TestCustomerLifecycle() {
	rec := s.request(http.MethodPost, "/api/v1/customers", s.SalesPersonToken, map[string]interface{}{
		"companyName": "Lifecycle Trading",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/customers/%d", created.Data.ID)

	rec = s.request(http.MethodGet, path, s.SalesPersonToken, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, path, s.SalesPersonToken, map[string]interface{}{
		"companyName": "Lifecycle Trading KK",
	})
	s.Equal(http.StatusOK, rec.Code)

	// Customer delete is manager-only.
	rec = s.request(http.MethodDelete, path, s.SalesPersonToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.request(http.MethodDelete, path, s.ManagerToken, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, path, s.SalesPersonToken, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestSalesPersonRoutesAreManagerOnly() {
	rec := s.request(http.MethodGet, "/api/v1/sales-persons", s.SalesPersonToken, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.request(http.MethodGet, "/api/v1/sales-persons", s.ManagerToken, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestDailyReportLifecycle() {
	rec := s.request(http.MethodPost, "/api/v1/customers", s.SalesPersonToken, map[string]interface{}{
		"companyName": "Report Lifecycle Co.",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var customer struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &customer))

	reportDate := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	rec = s.request(http.MethodPost, "/api/v1/daily-reports", s.SalesPersonToken, map[string]interface{}{
		"reportDate": reportDate,
		"problem":    "pricing pushback",
		"visitRecords": []map[string]interface{}{
			{"customerId": customer.Data.ID, "visitTime": "10:30", "visitContent": "introduced the product"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var report struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))

	// A second report on the same date is rejected.
	rec = s.request(http.MethodPost, "/api/v1/daily-reports", s.SalesPersonToken, map[string]interface{}{
		"reportDate": reportDate,
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Require().NotNil(body.Error)
	s.Equal("DUPLICATE_ERROR", body.Error.Code)

	path := fmt.Sprintf("/api/v1/daily-reports/%d", report.Data.ID)

	// Managers may read but not edit someone else's report.
	rec = s.request(http.MethodGet, path, s.ManagerToken, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPut, path, s.ManagerToken, map[string]interface{}{
		"reportDate": reportDate,
	})
	s.Equal(http.StatusForbidden, rec.Code)

	// A customer with visit records cannot be deleted.
	customerPath := fmt.Sprintf("/api/v1/customers/%d", customer.Data.ID)
	rec = s.request(http.MethodDelete, customerPath, s.ManagerToken, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	body = s.decode(rec)
	s.Require().NotNil(body.Error)
	s.Equal("REFERENCE_ERROR", body.Error.Code)

	rec = s.request(http.MethodGet, customerPath, s.ManagerToken, nil)
	s.Equal(http.StatusOK, rec.Code)

	// Comments are manager-only.
	commentPath := path + "/comments"
	rec = s.request(http.MethodPost, commentPath, s.SalesPersonToken, map[string]interface{}{
		"coment": "self praise",
	})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.request(http.MethodPost, commentPath, s.ManagerToken, map[string]interface{}{
		"coment": "good work, follow up next week",
	})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.request(http.MethodDelete, path, s.SalesPersonToken, nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestMe() {
	rec := s.request(http.MethodGet, "/api/v1/auth/me", s.SalesPersonToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Email     string `json:"email"`
			IsManager bool   `json:"isManager"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal("tanaka@test.example", body.Data.Email)
	s.False(body.Data.IsManager)
}

func (s *RouterTestSuite) TestDashboard() {
	rec := s.request(http.MethodGet, "/api/v1/dashboard", s.SalesPersonToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Today string `json:"today"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.NotEmpty(body.Data.Today)
}

func (s *RouterTestSuite) TestMasterCustomerList() {
	rec := s.request(http.MethodGet, "/api/v1/masters/customers", s.SalesPersonToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	body := s.decode(rec)
	s.True(body.Success)
	s.Nil(body.Error)
}

func (s *RouterTestSuite) TestDailyReportExport() {
	rec := s.request(http.MethodGet, "/api/v1/daily-reports/export", s.ManagerToken, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	s.Contains(rec.Header().Get("Content-Disposition"), "attachment")
	s.NotZero(rec.Body.Len())
}
