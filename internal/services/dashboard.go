package services

import (
	"context"
	"time"

	"daily-report-system/internal/authz"
	"daily-report-system/internal/dto"
	"daily-report-system/internal/repositories"

	"go.uber.org/zap"
)

const (
	recentReportsLimit = 5
	unreadCommentsDays = 7
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, actor *authz.Actor) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	commentRepo   repositories.ManagerCommentRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	commentRepo repositories.ManagerCommentRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		commentRepo:   commentRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// GetDashboard assembles the signed-in person's home view: whether today's
// report exists, how many manager comments landed on their reports in the
// last week, and their five most recent reports.
func (s *DashboardService) GetDashboard(ctx context.Context, actor *authz.Actor) (*dto.DashboardDTO, error) {
	if err := authz.Can(actor, authz.ReportsList, nil); err != nil {
		return nil, err
	}

	todayDate, _ := time.Parse(dateLayout, s.now().Format(dateLayout))

	reportID, err := s.dashboardRepo.FindReportIDForDate(ctx, actor.ID, todayDate)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -unreadCommentsDays)
	commentCount, err := s.commentRepo.CountForOwnerSince(ctx, actor.ID, since)
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboardRepo.GetRecentReports(ctx, actor.ID, recentReportsLimit)
	if err != nil {
		return nil, err
	}

	recentDTOs := make([]dto.RecentReportDTO, len(recent))
	for i, r := range recent {
		recentDTOs[i] = dto.RecentReportDTO{
			ID:           r.ID,
			ReportDate:   formatDate(r.ReportDate),
			VisitCount:   r.VisitCount,
			CommentCount: r.CommentCount,
		}
	}

	return &dto.DashboardDTO{
		Today: formatDate(todayDate),
		TodayReportStatus: dto.TodayReportStatusDTO{
			HasReport: reportID != nil,
			ReportID:  reportID,
		},
		UnreadCommentsCount: commentCount,
		RecentReports:       recentDTOs,
	}, nil
}
