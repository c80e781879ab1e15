package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/internal/app/service"
	"github.com/ikkim/cinestream-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupAnalyticsControllerTest(t *testing.T) (*gin.Engine, *model.Movie) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	movieRepo := repository.NewMovieRepository(testDB)
	movieService := service.NewMovieService(movieRepo)
	analyticsController := NewAnalyticsController(
		movieService,
		service.NewAnalyticsService(nil),
		service.NewReportService(),
	)

	now := time.Now()
	movie := &model.Movie{
		Title:    "Analytics Movie",
		Director: "Jane Park",
		Reviews: []model.Review{
			{ReviewerID: "u1", Rating: 5, Comment: "Amazing film", ReviewedAt: now.AddDate(0, 0, -1)},
			{ReviewerID: "u2", Rating: 3, Comment: "boring in parts", ReviewedAt: now.AddDate(0, 0, -2)},
			{ReviewerID: "u3", Rating: 4, ReviewedAt: now.AddDate(0, -2, 0)},
		},
	}
	movie.RecalculateRating()
	require.NoError(t, testDB.Create(movie).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/movies/:id/analytics", analyticsController.GetAnalytics)
	router.GET("/movies/:id/report", analyticsController.GetReport)
	router.GET("/movies/:id/report/export", analyticsController.ExportReport)

	return router, movie
}

func getRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyticsController_GetAnalytics(t *testing.T) {
	router, _ := setupAnalyticsControllerTest(t)

	w := getRequest(router, "/movies/1/analytics")
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot service.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 3, snapshot.TotalReviews)
	assert.InDelta(t, 4.0, snapshot.AverageRating, 1e-9)
	assert.Equal(t, [5]int{0, 0, 1, 1, 1}, snapshot.RatingDistribution)
	assert.Equal(t, 2, snapshot.RecentReviews)
	assert.Equal(t, 1, snapshot.Sentiment.Positive)
	assert.Equal(t, 1, snapshot.Sentiment.Negative)
	assert.Equal(t, 1, snapshot.Sentiment.Neutral)
}

func TestAnalyticsController_GetAnalytics_MovieNotFound(t *testing.T) {
	router, _ := setupAnalyticsControllerTest(t)

	w := getRequest(router, "/movies/9999/analytics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsController_GetReport(t *testing.T) {
	router, movie := setupAnalyticsControllerTest(t)

	w := getRequest(router, "/movies/1/report")
	require.Equal(t, http.StatusOK, w.Code)

	var doc service.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc.Title, movie.Title)
	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "Movie Information", doc.Sections[0].Title)
}

func TestAnalyticsController_ExportReport(t *testing.T) {
	router, movie := setupAnalyticsControllerTest(t)

	w := getRequest(router, "/movies/1/report/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "movie-report-1-")

	// The response body must be an openable workbook
	file, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer file.Close()

	title, err := file.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Contains(t, title, movie.Title)
}
