package services

import (
	"context"
	"time"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/dto"
	"daily-report-system/internal/entities"
	"daily-report-system/internal/repositories"
	apperrors "daily-report-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DailyReportServiceInterface interface {
	GetDailyReports(ctx context.Context, actor *authz.Actor, filter dto.DailyReportListFilter) ([]dto.DailyReportListItemDTO, int64, error)
	FindDailyReport(ctx context.Context, actor *authz.Actor, id int64) (*dto.DailyReportDetailDTO, error)
	CreateDailyReport(ctx context.Context, actor *authz.Actor, payload dto.CreateDailyReportDTO) (*dto.DailyReportDTO, error)
	UpdateDailyReport(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateDailyReportDTO) (*dto.DailyReportDTO, error)
	DeleteDailyReport(ctx context.Context, actor *authz.Actor, id int64) error
	AddComment(ctx context.Context, actor *authz.Actor, reportID int64, payload dto.CreateCommentDTO) (*dto.CommentDTO, error)
	ExportRows(ctx context.Context, actor *authz.Actor, filter dto.DailyReportListFilter) ([]dto.ReportExportRowDTO, error)
}

type DailyReportService struct {
	dailyReportRepo repositories.DailyReportRepositoryInterface
	commentRepo     repositories.ManagerCommentRepositoryInterface
	txManager       repositories.TxManagerInterface
	logger          *zap.Logger
}

func NewDailyReportService(
	dailyReportRepo repositories.DailyReportRepositoryInterface,
	commentRepo repositories.ManagerCommentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) DailyReportServiceInterface {
	return &DailyReportService{
		dailyReportRepo: dailyReportRepo,
		commentRepo:     commentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *DailyReportService) GetDailyReports(ctx context.Context, actor *authz.Actor, filter dto.DailyReportListFilter) ([]dto.DailyReportListItemDTO, int64, error) {
	if err := authz.Can(actor, authz.ReportsList, nil); err != nil {
		return nil, 0, err
	}

	filter.SalesPersonID = authz.ReportListScope(actor, filter.SalesPersonID)

	reports, total, err := s.dailyReportRepo.GetDailyReports(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.DailyReportListItemDTO, len(reports))
	for i, r := range reports {
		items[i] = dto.DailyReportListItemDTO{
			ID:         r.ID,
			ReportDate: formatDate(r.ReportDate),
			SalesPerson: dto.ShortSalesPersonDTO{
				ID:   r.SalesPersonID,
				Name: r.SalesPersonName,
			},
			VisitCount:   r.VisitCount,
			CommentCount: r.CommentCount,
			CreatedAt:    formatTimestamp(r.CreatedAt),
		}
	}
	return items, total, nil
}

func (s *DailyReportService) FindDailyReport(ctx context.Context, actor *authz.Actor, id int64) (*dto.DailyReportDetailDTO, error) {
	report, err := s.dailyReportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Can(actor, authz.ReportsView, report); err != nil {
		return nil, err
	}

	visits, err := s.dailyReportRepo.GetVisitRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByReport(ctx, id)
	if err != nil {
		return nil, err
	}

	visitDTOs := make([]dto.VisitRecordDetailDTO, len(visits))
	for i, v := range visits {
		visitDTOs[i] = dto.VisitRecordDetailDTO{
			ID: v.ID,
			Customer: dto.ShortCustomerDTO{
				ID:          v.CustomerID,
				CompanyName: v.CustomerName,
			},
			VisitTime:    v.VisitTime.Ptr(),
			VisitContent: v.VisitContent,
		}
	}

	commentDTOs := make([]dto.CommentDTO, len(comments))
	for i, c := range comments {
		commentDTOs[i] = dto.CommentDTO{
			ID: c.ID,
			Manager: dto.ShortSalesPersonDTO{
				ID:   c.ManagerID,
				Name: c.ManagerName,
			},
			Coment:    c.Coment,
			CreatedAt: formatTimestamp(c.CreatedAt),
		}
	}

	return &dto.DailyReportDetailDTO{
		ID:         report.ID,
		ReportDate: formatDate(report.ReportDate),
		SalesPerson: dto.ReportSalesPersonDTO{
			ID:         report.SalesPersonID,
			Name:       report.SalesPersonName,
			Department: report.SalesPersonDepartment.Ptr(),
		},
		Problem:      report.Problem.Ptr(),
		Plan:         report.Plan.Ptr(),
		VisitRecords: visitDTOs,
		Comments:     commentDTOs,
		IsOwner:      actor != nil && actor.ID == report.SalesPersonID,
		CreatedAt:    formatTimestamp(report.CreatedAt),
		UpdatedAt:    formatTimestamp(report.UpdatedAt),
	}, nil
}

func visitEntities(inputs []dto.VisitRecordInputDTO) []entities.VisitRecord {
	records := make([]entities.VisitRecord, len(inputs))
	for i, in := range inputs {
		records[i] = entities.VisitRecord{
			CustomerID:   in.CustomerID,
			VisitTime:    null.StringFromPtr(in.VisitTime),
			VisitContent: in.VisitContent,
		}
	}
	return records
}

func (s *DailyReportService) buildReportDTO(ctx context.Context, report *entities.DailyReport) (*dto.DailyReportDTO, error) {
	visits, err := s.dailyReportRepo.GetVisitRecords(ctx, report.ID)
	if err != nil {
		return nil, err
	}

	visitDTOs := make([]dto.VisitRecordDTO, len(visits))
	for i, v := range visits {
		visitDTOs[i] = dto.VisitRecordDTO{
			ID:           v.ID,
			CustomerID:   v.CustomerID,
			CustomerName: v.CustomerName,
			VisitTime:    v.VisitTime.Ptr(),
			VisitContent: v.VisitContent,
		}
	}

	return &dto.DailyReportDTO{
		ID:            report.ID,
		ReportDate:    formatDate(report.ReportDate),
		SalesPersonID: report.SalesPersonID,
		Problem:       report.Problem.Ptr(),
		Plan:          report.Plan.Ptr(),
		VisitRecords:  visitDTOs,
		CreatedAt:     formatTimestamp(report.CreatedAt),
		UpdatedAt:     formatTimestamp(report.UpdatedAt),
	}, nil
}

// CreateDailyReport writes the report row and its visit records in one
// transaction. A report always belongs to the actor; one report per person
// per date.
func (s *DailyReportService) CreateDailyReport(ctx context.Context, actor *authz.Actor, payload dto.CreateDailyReportDTO) (*dto.DailyReportDTO, error) {
	if err := authz.Can(actor, authz.ReportsCreate, nil); err != nil {
		return nil, err
	}

	reportDate, err := time.Parse(dateLayout, payload.ReportDate)
	if err != nil {
		return nil, apperrors.Validation("reportDate must be a valid date")
	}

	exists, err := s.dailyReportRepo.ExistsForPersonAndDate(ctx, actor.ID, reportDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Duplicate("A daily report for this date already exists")
	}

	entity := &entities.DailyReport{
		SalesPersonID: actor.ID,
		ReportDate:    reportDate,
		Problem:       null.StringFromPtr(payload.Problem),
		Plan:          null.StringFromPtr(payload.Plan),
	}

	var created *entities.DailyReport
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		created, err = s.dailyReportRepo.CreateReport(ctx, tx, entity)
		if err != nil {
			return err
		}
		return s.dailyReportRepo.ReplaceVisitRecords(ctx, tx, created.ID, visitEntities(payload.VisitRecords))
	})
	if err != nil {
		return nil, err
	}

	return s.buildReportDTO(ctx, created)
}

// UpdateDailyReport is owner-only. The submitted visit set replaces the
// stored one wholesale inside the same transaction as the report row update.
func (s *DailyReportService) UpdateDailyReport(ctx context.Context, actor *authz.Actor, id int64, payload dto.UpdateDailyReportDTO) (*dto.DailyReportDTO, error) {
	report, err := s.dailyReportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Can(actor, authz.ReportsUpdate, report); err != nil {
		return nil, err
	}

	reportDate, err := time.Parse(dateLayout, payload.ReportDate)
	if err != nil {
		return nil, apperrors.Validation("reportDate must be a valid date")
	}

	if !reportDate.Equal(report.ReportDate) {
		exists, err := s.dailyReportRepo.ExistsForPersonAndDate(ctx, report.SalesPersonID, reportDate)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Duplicate("A daily report for this date already exists")
		}
	}

	report.ReportDate = reportDate
	report.Problem = null.StringFromPtr(payload.Problem)
	report.Plan = null.StringFromPtr(payload.Plan)

	var updated *entities.DailyReport
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		updated, err = s.dailyReportRepo.UpdateReport(ctx, tx, report)
		if err != nil {
			return err
		}
		return s.dailyReportRepo.ReplaceVisitRecords(ctx, tx, updated.ID, visitEntities(payload.VisitRecords))
	})
	if err != nil {
		return nil, err
	}

	return s.buildReportDTO(ctx, updated)
}

func (s *DailyReportService) DeleteDailyReport(ctx context.Context, actor *authz.Actor, id int64) error {
	report, err := s.dailyReportRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Can(actor, authz.ReportsDelete, report); err != nil {
		return err
	}

	return s.dailyReportRepo.Delete(ctx, id)
}

// AddComment is manager-only and append-only.
func (s *DailyReportService) AddComment(ctx context.Context, actor *authz.Actor, reportID int64, payload dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	if err := authz.Can(actor, authz.CommentsCreate, nil); err != nil {
		return nil, err
	}

	if _, err := s.dailyReportRepo.FindByID(ctx, reportID); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, &entities.ManagerComment{
		ReportID:  reportID,
		ManagerID: actor.ID,
		Coment:    payload.Coment,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CommentDTO{
		ID: created.ID,
		Manager: dto.ShortSalesPersonDTO{
			ID:   created.ManagerID,
			Name: created.ManagerName,
		},
		Coment:    created.Coment,
		CreatedAt: formatTimestamp(created.CreatedAt),
	}, nil
}

// ExportRows flattens reports with their visit records for the XLSX export.
// The same listing scope applies; pagination does not.
func (s *DailyReportService) ExportRows(ctx context.Context, actor *authz.Actor, filter dto.DailyReportListFilter) ([]dto.ReportExportRowDTO, error) {
	if err := authz.Can(actor, authz.ReportsExport, nil); err != nil {
		return nil, err
	}

	filter.SalesPersonID = authz.ReportListScope(actor, filter.SalesPersonID)
	filter.Page = 1
	filter.PerPage = exportRowLimit

	reports, _, err := s.dailyReportRepo.GetDailyReports(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReportExportRowDTO, 0, len(reports))
	for _, r := range reports {
		visits, err := s.dailyReportRepo.GetVisitRecords(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		if len(visits) == 0 {
			rows = append(rows, dto.ReportExportRowDTO{
				ReportDate:  formatDate(r.ReportDate),
				SalesPerson: r.SalesPersonName,
				Department:  r.SalesPersonDepartment.Ptr(),
				Problem:     r.Problem.Ptr(),
				Plan:        r.Plan.Ptr(),
			})
			continue
		}
		for _, v := range visits {
			rows = append(rows, dto.ReportExportRowDTO{
				ReportDate:   formatDate(r.ReportDate),
				SalesPerson:  r.SalesPersonName,
				Department:   r.SalesPersonDepartment.Ptr(),
				Customer:     v.CustomerName,
				VisitTime:    v.VisitTime.Ptr(),
				VisitContent: v.VisitContent,
				Problem:      r.Problem.Ptr(),
				Plan:         r.Plan.Ptr(),
			})
		}
	}
	return rows, nil
}

const exportRowLimit = 10000
