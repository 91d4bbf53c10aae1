package handlers

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/reports"
)

// DashboardGetter builds the dashboard preview.
type DashboardGetter interface {
	Dashboard(ctx context.Context, username string) (models.DashboardResponse, error)
}

// Reporter builds the full report and its CSV export.
type Reporter interface {
	Report(ctx context.Context, username string) (models.ReportResponse, error)
	ExportCSV(ctx context.Context, username string) ([]byte, error)
}

// NewDashboardHandler returns the last entries of the logged-in user.
// @Summary Dashboard
// @Description Five most recent entries in recording order
// @Tags reports
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		resp, err := svc.Dashboard(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewReportHandler returns the full history, newest first, with the average
// intensity.
// @Summary Report
// @Tags reports
// @Produce json
// @Success 200 {object} models.ReportResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports [get]
// @Security BearerAuth
func NewReportHandler(svc Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		resp, err := svc.Report(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewExportHandler streams the history of the logged-in user as a CSV
// attachment.
// @Summary Export report
// @Tags reports
// @Produce text/csv
// @Success 200 {file} file "raport_mood.csv"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /reports/export [get]
// @Security BearerAuth
func NewExportHandler(svc Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		data, err := svc.ExportCSV(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reports.ExportFileName))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
