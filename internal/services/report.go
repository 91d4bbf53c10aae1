package services

import (
	"context"

	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/reports"
)

// ReportService builds the dashboard, report and export views of a history.
type ReportService struct {
	readRepo MoodReader
}

// NewReportService creates a new ReportService.
func NewReportService(readRepo MoodReader) *ReportService {
	return &ReportService{readRepo: readRepo}
}

// Dashboard returns the latest entries of username.
func (s *ReportService) Dashboard(ctx context.Context, username string) (models.DashboardResponse, error) {
	history, err := s.readRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load dashboard", "username", username, "error", err)
		return models.DashboardResponse{}, err
	}

	return models.DashboardResponse{
		Username: username,
		Empty:    len(history) == 0,
		Recent:   reports.RecentEntries(history, reports.DashboardSize),
	}, nil
}

// Report returns the history newest first with its average intensity.
func (s *ReportService) Report(ctx context.Context, username string) (models.ReportResponse, error) {
	history, err := s.readRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load report", "username", username, "error", err)
		return models.ReportResponse{}, err
	}

	resp := models.ReportResponse{
		Empty:   len(history) == 0,
		Entries: reports.SortedByDateDescending(history),
	}
	if avg, ok := reports.Average(history); ok {
		resp.Average = &avg
	}
	return resp, nil
}

// ExportCSV returns the full history of username as CSV.
func (s *ReportService) ExportCSV(ctx context.Context, username string) ([]byte, error) {
	history, err := s.readRepo.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load history for export", "username", username, "error", err)
		return nil, err
	}

	data, err := reports.ToCSV(history)
	if err != nil {
		logger.Log.Errorw("failed to encode csv export", "username", username, "error", err)
		return nil, err
	}
	return data, nil
}
