package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"daily-report-system/internal/dto"
	"daily-report-system/internal/services"
	apperrors "daily-report-system/pkg/errors"
	"daily-report-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type DailyReportController struct {
	dailyReportService services.DailyReportServiceInterface
	logger             *zap.Logger
}

func NewDailyReportController(dailyReportService services.DailyReportServiceInterface, logger *zap.Logger) *DailyReportController {
	return &DailyReportController{dailyReportService: dailyReportService, logger: logger}
}

func (ctrl *DailyReportController) parseListFilter(ctx echo.Context) dto.DailyReportListFilter {
	page, perPage := utils.ParsePaginationParams(ctx.Request().URL.Query())
	filter := dto.DailyReportListFilter{
		Page:     page,
		PerPage:  perPage,
		DateFrom: parseDateParam(ctx.QueryParam("date_from")),
		DateTo:   parseDateParam(ctx.QueryParam("date_to")),
	}

	if raw := ctx.QueryParam("sales_person_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			filter.SalesPersonID = &id
		}
	}
	return filter
}

func (ctrl *DailyReportController) GetDailyReports(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	filter := ctrl.parseListFilter(ctx)
	reports, total, err := ctrl.dailyReportService.GetDailyReports(ctx.Request().Context(), actor, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	return utils.SuccessResponse(ctx, utils.PaginatedBody{
		Items:      reports,
		Pagination: utils.NewPaginationMeta(filter.Page, filter.PerPage, total),
	}, http.StatusOK)
}

func (ctrl *DailyReportController) FindDailyReport(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Daily report not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	report, err := ctrl.dailyReportService.FindDailyReport(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, report, http.StatusOK)
}

func (ctrl *DailyReportController) CreateDailyReport(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.CreateDailyReportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	report, err := ctrl.dailyReportService.CreateDailyReport(ctx.Request().Context(), actor, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	ctrl.logger.Info("daily report created", zap.Int64("id", report.ID), zap.Int64("salesPersonID", report.SalesPersonID))
	return utils.SuccessResponse(ctx, report, http.StatusCreated)
}

func (ctrl *DailyReportController) UpdateDailyReport(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Daily report not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.UpdateDailyReportDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	report, err := ctrl.dailyReportService.UpdateDailyReport(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, report, http.StatusOK)
}

func (ctrl *DailyReportController) DeleteDailyReport(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Daily report not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	if err := ctrl.dailyReportService.DeleteDailyReport(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, http.StatusOK)
}

func (ctrl *DailyReportController) AddComment(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	id, err := idParam(ctx, "Daily report not found")
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	var payload dto.CreateCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.Validation("Invalid request body"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	comment, err := ctrl.dailyReportService.AddComment(ctx.Request().Context(), actor, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, comment, http.StatusCreated)
}

var exportHeaders = []string{
	"Date", "Sales Person", "Department", "Customer", "Visit Time", "Visit Content", "Problem", "Plan",
}

func exportRowToSlice(row dto.ReportExportRowDTO) []interface{} {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return []interface{}{
		row.ReportDate, row.SalesPerson, deref(row.Department), row.Customer,
		deref(row.VisitTime), row.VisitContent, deref(row.Problem), deref(row.Plan),
	}
}

// ExportDailyReports streams the filtered reports as an XLSX workbook.
func (ctrl *DailyReportController) ExportDailyReports(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	filter := ctrl.parseListFilter(ctx)
	rows, err := ctrl.dailyReportService.ExportRows(ctx.Request().Context(), actor, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	f := excelize.NewFile()
	sheet := "Daily Reports"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := exportRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "B", "D", 22)
	f.SetColWidth(sheet, "F", "H", 40)

	fileName := fmt.Sprintf("daily_reports_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
