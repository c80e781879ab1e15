package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/cinestream-backend/internal/app/service"
	apperrors "github.com/ikkim/cinestream-backend/internal/errors"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// SubmitReview 리뷰 등록/갱신
// 같은 사용자가 같은 영화에 다시 제출하면 기존 리뷰가 갱신됨
// @Summary 리뷰 작성
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "영화 ID"
// @Param review body object true "리뷰 정보"
// @Success 200 {object} model.Movie
// @Router /movies/{id}/reviews [post]
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	var input struct {
		UserID  string `json:"user_id" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "평점은 1-5 사이의 정수여야 합니다")
		return
	}

	movie, err := ctrl.reviewService.SubmitReview(movieID, input.UserID, input.Rating, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			apperrors.NotFound(c, apperrors.MovieNotFound, "영화를 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "평점은 1-5 사이의 정수여야 합니다")
		case errors.Is(err, service.ErrInvalidReviewer):
			apperrors.BadRequest(c, apperrors.ReviewInvalidReviewer, "작성자 정보가 필요합니다")
		case errors.Is(err, service.ErrReviewConflict):
			apperrors.Conflict(c, apperrors.ReviewConflict, "잠시 후 다시 시도해주세요")
		default:
			apperrors.InternalError(c, "리뷰 등록에 실패했습니다")
		}
		return
	}

	c.JSON(http.StatusOK, movie)
}
