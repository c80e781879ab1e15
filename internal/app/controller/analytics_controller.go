package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/app/service"
	"github.com/ikkim/cinestream-backend/internal/export"
	apperrors "github.com/ikkim/cinestream-backend/internal/errors"
	"github.com/ikkim/cinestream-backend/pkg/logger"
)

type AnalyticsController struct {
	movieService     service.MovieService
	analyticsService *service.AnalyticsService
	reportService    *service.ReportService
}

func NewAnalyticsController(
	movieService service.MovieService,
	analyticsService *service.AnalyticsService,
	reportService *service.ReportService,
) *AnalyticsController {
	return &AnalyticsController{
		movieService:     movieService,
		analyticsService: analyticsService,
		reportService:    reportService,
	}
}

// GetAnalytics 영화 리뷰 분석 조회
// 저장된 값이 아니라 현재 리뷰 집합에서 매번 새로 계산
// @Summary 리뷰 분석
// @Tags Analytics
// @Produce json
// @Param id path int true "영화 ID"
// @Success 200 {object} service.AnalyticsSnapshot
// @Router /movies/{id}/analytics [get]
func (ctrl *AnalyticsController) GetAnalytics(c *gin.Context) {
	movie, ok := ctrl.loadMovie(c)
	if !ok {
		return
	}

	snapshot := ctrl.analyticsService.Compute(movie, time.Now())
	c.JSON(http.StatusOK, snapshot)
}

// GetReport 리포트 문서(JSON) 조회
// @Summary 분석 리포트
// @Tags Analytics
// @Produce json
// @Param id path int true "영화 ID"
// @Success 200 {object} service.Document
// @Router /movies/{id}/report [get]
func (ctrl *AnalyticsController) GetReport(c *gin.Context) {
	movie, ok := ctrl.loadMovie(c)
	if !ok {
		return
	}

	now := time.Now()
	snapshot := ctrl.analyticsService.Compute(movie, now)
	doc, err := ctrl.reportService.Build(movie, snapshot, now)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ReportEmptyInput, "리포트 생성에 필요한 데이터가 없습니다")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ExportReport 리포트를 XLSX 파일로 다운로드
// @Summary 리포트 내보내기
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "영화 ID"
// @Success 200 {file} binary
// @Router /movies/{id}/report/export [get]
func (ctrl *AnalyticsController) ExportReport(c *gin.Context) {
	movie, ok := ctrl.loadMovie(c)
	if !ok {
		return
	}

	now := time.Now()
	snapshot := ctrl.analyticsService.Compute(movie, now)
	doc, err := ctrl.reportService.Build(movie, snapshot, now)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ReportEmptyInput, "리포트 생성에 필요한 데이터가 없습니다")
		return
	}

	file, err := export.WriteXLSX(doc)
	if err != nil {
		logger.Error("Failed to render report workbook", err, map[string]interface{}{
			"movie_id": movie.ID,
		})
		apperrors.InternalError(c, "리포트 파일 생성에 실패했습니다")
		return
	}

	filename := fmt.Sprintf("movie-report-%d-%s.xlsx", movie.ID, now.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		logger.Error("Failed to stream report workbook", err, map[string]interface{}{
			"movie_id": movie.ID,
		})
	}
}

// loadMovie 경로의 영화 ID로 리뷰 포함 영화 로드 (에러 응답까지 처리)
func (ctrl *AnalyticsController) loadMovie(c *gin.Context) (*model.Movie, bool) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return nil, false
	}

	movie, err := ctrl.movieService.GetMovieByID(movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			apperrors.NotFound(c, apperrors.MovieNotFound, "영화를 찾을 수 없습니다")
			return nil, false
		}
		apperrors.InternalError(c, "영화 조회에 실패했습니다")
		return nil, false
	}
	return movie, true
}
