package model

import (
	"time"

	"gorm.io/gorm"
)

// Movie 영화 모델
type Movie struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 영화 기본 정보
	Title       string    `gorm:"not null" json:"title"`                    // 제목
	Description string    `gorm:"type:text" json:"description"`             // 설명
	ReleaseDate time.Time `json:"release_date"`                             // 개봉일
	PosterURL   string    `json:"poster_url"`                               // 포스터 이미지 URL
	TrailerURL  string    `json:"trailer_url"`                              // 예고편 URL
	Language    string    `json:"language"`                                 // 언어
	Theme       string    `json:"theme"`                                    // 테마
	Genres      []string  `gorm:"serializer:json" json:"genre"`             // 장르 목록 (순서 유지)
	Actors      []string  `gorm:"serializer:json" json:"actors"`            // 출연 배우 목록 (순서 유지)
	Director    string    `gorm:"index" json:"director"`                    // 감독
	Duration    int       `json:"duration"`                                 // 상영 시간 (분)

	// 집계 평점 정보 (리뷰 변경 시마다 재계산)
	RatingAverage float64 `gorm:"default:0" json:"rating_average"` // 평균 평점
	RatingCount   int     `gorm:"default:0" json:"rating_count"`   // 리뷰 개수

	// 관계 (ID 오름차순 = 작성 순서)
	Reviews []Review `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"reviews"`
}

func (Movie) TableName() string {
	return "movies"
}

// RecalculateRating 리뷰 목록 기준으로 평점 집계 필드 재계산
// 리뷰가 없으면 평균과 개수 모두 0
func (m *Movie) RecalculateRating() {
	if len(m.Reviews) == 0 {
		m.RatingAverage = 0
		m.RatingCount = 0
		return
	}

	sum := 0
	for _, r := range m.Reviews {
		sum += r.Rating
	}
	m.RatingCount = len(m.Reviews)
	m.RatingAverage = float64(sum) / float64(m.RatingCount)
}

// Review 영화 리뷰 모델
// (MovieID, ReviewerID) 조합은 유일 - 사용자당 영화별 리뷰 1건
type Review struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	MovieID    uint      `gorm:"not null;index:idx_movie_reviewer,unique" json:"-"`
	ReviewerID string    `gorm:"not null;index:idx_movie_reviewer,unique" json:"user_id"` // 작성자 식별자 (외부 참조, 검증하지 않음)
	Rating     int       `gorm:"not null" json:"rating"`                                  // 평점 (1-5)
	Comment    string    `gorm:"type:text" json:"comment"`                                // 리뷰 내용 (선택)
	ReviewedAt time.Time `gorm:"not null" json:"reviewed_at"`                             // 작성 시각 (수정 시 갱신)
}

func (Review) TableName() string {
	return "reviews"
}
