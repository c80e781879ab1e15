package service

import (
	"errors"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/pkg/lock"
	"github.com/ikkim/cinestream-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidReviewer = errors.New("reviewer id is required")
	ErrReviewConflict  = errors.New("concurrent review write conflict")
)

type ReviewService interface {
	SubmitReview(movieID uint, reviewerID string, rating int, comment string) (*model.Movie, error)
}

type reviewService struct {
	movieRepo repository.MovieRepository
	movieLock *lock.Keyed
	now       func() time.Time
}

func NewReviewService(movieRepo repository.MovieRepository) ReviewService {
	return &reviewService{
		movieRepo: movieRepo,
		movieLock: lock.NewKeyed(),
		now:       time.Now,
	}
}

// SubmitReview 리뷰 등록 또는 갱신 (upsert)
// 같은 사용자가 같은 영화에 다시 제출하면 기존 리뷰를 덮어씀
// 영화별 잠금으로 같은 영화에 대한 동시 제출을 직렬화 - 리뷰 저장과
// 집계 재계산 사이에 다른 쓰기가 끼어들 수 없음
func (s *reviewService) SubmitReview(movieID uint, reviewerID string, rating int, comment string) (*model.Movie, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if reviewerID == "" {
		return nil, ErrInvalidReviewer
	}

	s.movieLock.Lock(movieID)
	defer s.movieLock.Unlock(movieID)

	movie, err := s.upsert(movieID, reviewerID, rating, comment)
	if err != nil && repository.IsDuplicateKey(err) {
		// 프로세스 밖에서 끼어든 동시 등록 - 다시 읽으면 갱신 경로를 타므로 1회 재시도
		logger.Warn("Review insert hit unique index, retrying once", map[string]interface{}{
			"movie_id":    movieID,
			"reviewer_id": reviewerID,
		})
		movie, err = s.upsert(movieID, reviewerID, rating, comment)
		if err != nil {
			if repository.IsDuplicateKey(err) {
				return nil, ErrReviewConflict
			}
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Review submitted", map[string]interface{}{
		"movie_id":       movieID,
		"reviewer_id":    reviewerID,
		"rating":         rating,
		"rating_count":   movie.RatingCount,
		"rating_average": movie.RatingAverage,
	})
	return movie, nil
}

// upsert 읽기-수정-재계산-저장 1회 수행
func (s *reviewService) upsert(movieID uint, reviewerID string, rating int, comment string) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		logger.Error("Failed to load movie for review", err, map[string]interface{}{
			"movie_id": movieID,
		})
		return nil, err
	}

	// 기존 리뷰 탐색: 있으면 제자리 갱신, 없으면 추가
	var review *model.Review
	for i := range movie.Reviews {
		if movie.Reviews[i].ReviewerID == reviewerID {
			review = &movie.Reviews[i]
			break
		}
	}

	if review != nil {
		review.Rating = rating
		review.Comment = comment
		review.ReviewedAt = s.now()
	} else {
		movie.Reviews = append(movie.Reviews, model.Review{
			MovieID:    movieID,
			ReviewerID: reviewerID,
			Rating:     rating,
			Comment:    comment,
			ReviewedAt: s.now(),
		})
		review = &movie.Reviews[len(movie.Reviews)-1]
	}

	// 집계 재계산 후 리뷰와 함께 단일 트랜잭션으로 저장
	movie.RecalculateRating()
	if err := s.movieRepo.SaveReviewAndAggregates(movie, review); err != nil {
		return nil, err
	}
	return movie, nil
}
