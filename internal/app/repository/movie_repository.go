package repository

import (
	"strings"

	"github.com/ikkim/cinestream-backend/internal/app/model"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(movie *model.Movie) error
	BulkCreate(movies []model.Movie, batchSize int) error
	FindByID(id uint) (*model.Movie, error)
	FindAll() ([]model.Movie, error)
	FindTopRated(limit int) ([]model.Movie, error)
	FindByDirector(director string) ([]model.Movie, error)
	FindByGenre(genre string) ([]model.Movie, error)
	FindByMaxDuration(maxDuration int) ([]model.Movie, error)
	Update(movie *model.Movie) error
	Delete(id uint) error
	SaveReviewAndAggregates(movie *model.Movie, review *model.Review) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// Create 영화 생성
func (r *movieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// BulkCreate 영화 일괄 생성 (시드용)
func (r *movieRepository) BulkCreate(movies []model.Movie, batchSize int) error {
	return r.db.CreateInBatches(movies, batchSize).Error
}

// FindByID ID로 영화 조회 (리뷰 포함, 작성 순서 보장)
func (r *movieRepository) FindByID(id uint) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id ASC")
		}).
		First(&movie, id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindAll 전체 영화 목록 조회
func (r *movieRepository) FindAll() ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Order("created_at DESC").Find(&movies).Error
	return movies, err
}

// FindTopRated 평점 상위 영화 목록 조회
func (r *movieRepository) FindTopRated(limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Order("rating_average DESC").Limit(limit).Find(&movies).Error
	return movies, err
}

// FindByDirector 감독별 영화 목록 조회
func (r *movieRepository) FindByDirector(director string) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("director = ?", director).Find(&movies).Error
	return movies, err
}

// FindByGenre 장르별 영화 목록 조회
// genres 컬럼은 JSON 배열 직렬화 - 요소 일치 여부는 따옴표 포함 부분 문자열로 판별
func (r *movieRepository) FindByGenre(genre string) ([]model.Movie, error) {
	var movies []model.Movie
	pattern := "%\"" + strings.ReplaceAll(genre, "%", "") + "\"%"
	err := r.db.Where("genres LIKE ?", pattern).Find(&movies).Error
	return movies, err
}

// FindByMaxDuration 상영 시간 이하 영화 목록 조회
func (r *movieRepository) FindByMaxDuration(maxDuration int) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.Where("duration <= ?", maxDuration).Find(&movies).Error
	return movies, err
}

// Update 영화 카탈로그 필드 수정
// 집계 필드와 리뷰는 리뷰 쓰기 경로가 소유 - 여기서는 컬럼 자체를 쓰지 않음
func (r *movieRepository) Update(movie *model.Movie) error {
	return r.db.Model(movie).
		Select("Title", "Description", "ReleaseDate", "PosterURL", "TrailerURL",
			"Language", "Theme", "Genres", "Actors", "Director", "Duration").
		Updates(movie).Error
}

// Delete 영화 삭제 (소속 리뷰 포함)
func (r *movieRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Movie{}, id).Error
	})
}

// SaveReviewAndAggregates 리뷰 1건과 영화 집계 필드를 단일 트랜잭션으로 저장
// 리뷰 저장과 집계 갱신이 분리되어 보이는 일이 없도록 보장
func (r *movieRepository) SaveReviewAndAggregates(movie *model.Movie, review *model.Review) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return err
		}
		return tx.Model(&model.Movie{}).
			Where("id = ?", movie.ID).
			Updates(map[string]interface{}{
				"rating_average": movie.RatingAverage,
				"rating_count":   movie.RatingCount,
			}).Error
	})
}

// IsDuplicateKey 유일 인덱스 위반 여부 판별 (PostgreSQL/SQLite)
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
