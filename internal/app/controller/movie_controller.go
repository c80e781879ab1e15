package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cinestream-backend/internal/app/service"
	apperrors "github.com/ikkim/cinestream-backend/internal/errors"
)

type MovieController struct {
	movieService service.MovieService
}

func NewMovieController(movieService service.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

// GetAllMovies 전체 영화 목록 조회
// @Summary 영화 목록
// @Tags Movies
// @Produce json
// @Success 200 {array} model.Movie
// @Router /movies [get]
func (ctrl *MovieController) GetAllMovies(c *gin.Context) {
	movies, err := ctrl.movieService.GetAllMovies()
	if err != nil {
		apperrors.InternalError(c, "영화 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovieByID 영화 상세 조회
// @Summary 영화 상세
// @Tags Movies
// @Produce json
// @Param id path int true "영화 ID"
// @Success 200 {object} model.Movie
// @Router /movies/{id} [get]
func (ctrl *MovieController) GetMovieByID(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	movie, err := ctrl.movieService.GetMovieByID(movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			apperrors.NotFound(c, apperrors.MovieNotFound, "영화를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "영화 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movie)
}

// CreateMovie 영화 생성
// @Summary 영화 생성
// @Tags Movies
// @Accept json
// @Produce json
// @Param movie body service.MovieInput true "영화 정보"
// @Success 201 {object} model.Movie
// @Router /movies [post]
func (ctrl *MovieController) CreateMovie(c *gin.Context) {
	var input service.MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	movie, err := ctrl.movieService.CreateMovie(input)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "movie")
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// UpdateMovie 영화 수정
// @Summary 영화 수정
// @Tags Movies
// @Accept json
// @Produce json
// @Param id path int true "영화 ID"
// @Param movie body service.MovieInput true "영화 정보"
// @Success 200 {object} model.Movie
// @Router /movies/{id} [put]
func (ctrl *MovieController) UpdateMovie(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	var input service.MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	movie, err := ctrl.movieService.UpdateMovie(movieID, input)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			apperrors.NotFound(c, apperrors.MovieNotFound, "영화를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "movie")
		return
	}
	c.JSON(http.StatusOK, movie)
}

// DeleteMovie 영화 삭제
// @Summary 영화 삭제
// @Tags Movies
// @Param id path int true "영화 ID"
// @Success 200 {object} object
// @Router /movies/{id} [delete]
func (ctrl *MovieController) DeleteMovie(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	if err := ctrl.movieService.DeleteMovie(movieID); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			apperrors.NotFound(c, apperrors.MovieNotFound, "영화를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "영화 삭제에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "영화가 삭제되었습니다"})
}

// GetTopRatedMovies 평점 상위 영화 목록
// @Summary 평점 상위 영화
// @Tags Movies
// @Produce json
// @Success 200 {array} model.Movie
// @Router /movies/high-rating [get]
func (ctrl *MovieController) GetTopRatedMovies(c *gin.Context) {
	movies, err := ctrl.movieService.GetTopRatedMovies()
	if err != nil {
		apperrors.InternalError(c, "영화 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMoviesByDirector 감독별 영화 목록
// @Summary 감독별 영화
// @Tags Movies
// @Produce json
// @Param director path string true "감독 이름"
// @Success 200 {array} model.Movie
// @Router /movies/director/{director} [get]
func (ctrl *MovieController) GetMoviesByDirector(c *gin.Context) {
	movies, err := ctrl.movieService.GetMoviesByDirector(c.Param("director"))
	if err != nil {
		apperrors.InternalError(c, "영화 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMoviesByGenre 장르별 영화 목록
// @Summary 장르별 영화
// @Tags Movies
// @Produce json
// @Param genre path string true "장르"
// @Success 200 {array} model.Movie
// @Router /movies/genre/{genre} [get]
func (ctrl *MovieController) GetMoviesByGenre(c *gin.Context) {
	movies, err := ctrl.movieService.GetMoviesByGenre(c.Param("genre"))
	if err != nil {
		apperrors.InternalError(c, "영화 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMoviesByDuration 상영 시간 이하 영화 목록
// @Summary 상영 시간별 영화
// @Tags Movies
// @Produce json
// @Param duration path int true "최대 상영 시간 (분)"
// @Success 200 {array} model.Movie
// @Router /movies/duration/{duration} [get]
func (ctrl *MovieController) GetMoviesByDuration(c *gin.Context) {
	duration, err := strconv.Atoi(c.Param("duration"))
	if err != nil || duration < 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "잘못된 상영 시간입니다")
		return
	}

	movies, err := ctrl.movieService.GetMoviesByMaxDuration(duration)
	if err != nil {
		apperrors.InternalError(c, "영화 목록 조회에 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// parseMovieID 경로 파라미터의 영화 ID 파싱 (실패 시 400 응답까지 처리)
func parseMovieID(c *gin.Context) (uint, bool) {
	movieID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 영화 ID입니다")
		return 0, false
	}
	return uint(movieID), true
}
