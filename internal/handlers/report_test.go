package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardGetter(ctrl)

	t.Run("empty state", func(t *testing.T) {
		mockSvc.EXPECT().Dashboard(gomock.Any(), "alice").
			Return(models.DashboardResponse{Username: "alice", Empty: true, Recent: []models.MoodEntry{}}, nil)

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "alice")
		w := httptest.NewRecorder()
		NewDashboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"alice","empty":true,"recent":[]}`, w.Body.String())
	})

	t.Run("not logged in", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewDashboardHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Dashboard(gomock.Any(), "alice").Return(models.DashboardResponse{}, errors.New("boom"))

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/dashboard", nil), "alice")
		w := httptest.NewRecorder()
		NewDashboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReporter(ctrl)

	t.Run("with average", func(t *testing.T) {
		mockSvc.EXPECT().Report(gomock.Any(), "alice").
			Return(models.ReportResponse{Entries: []models.MoodEntry{{Username: "alice", Mood: models.MoodCalm, Intensity: models.IntPtr(70)}}, Average: models.IntPtr(70)}, nil)

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/reports", nil), "alice")
		w := httptest.NewRecorder()
		NewReportHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.ReportResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.NotNil(t, resp.Average)
		assert.Equal(t, 70, *resp.Average)
		assert.False(t, resp.Empty)
	})

	t.Run("without average", func(t *testing.T) {
		mockSvc.EXPECT().Report(gomock.Any(), "alice").
			Return(models.ReportResponse{Empty: true, Entries: []models.MoodEntry{}}, nil)

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/reports", nil), "alice")
		w := httptest.NewRecorder()
		NewReportHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"empty":true,"entries":[]}`, w.Body.String())
	})

	t.Run("not logged in", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewReportHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Report(gomock.Any(), "alice").Return(models.ReportResponse{}, errors.New("boom"))

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/reports", nil), "alice")
		w := httptest.NewRecorder()
		NewReportHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReporter(ctrl)

	t.Run("attachment", func(t *testing.T) {
		csvData := []byte("Username,Mood,Percentage,Date\nalice,Calm 😌,70,2026-03-14\n")
		mockSvc.EXPECT().ExportCSV(gomock.Any(), "alice").Return(csvData, nil)

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/reports/export", nil), "alice")
		w := httptest.NewRecorder()
		NewExportHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="raport_mood.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, csvData, w.Body.Bytes())
	})

	t.Run("not logged in", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewExportHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/export", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().ExportCSV(gomock.Any(), "alice").Return(nil, errors.New("boom"))

		req, _ := loggedIn(httptest.NewRequest(http.MethodGet, "/reports/export", nil), "alice")
		w := httptest.NewRecorder()
		NewExportHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}
