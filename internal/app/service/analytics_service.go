package service

import (
	"math"
	"sort"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/model"
)

// 최근 리뷰 판정 기준 기간
const recentWindow = 30 * 24 * time.Hour

// 월별 추이에 포함할 최대 개월 수
const maxTrendMonths = 6

// 상위 리뷰어 최대 인원
const maxTopReviewers = 5

// AnalyticsSnapshot 영화 1편의 리뷰 집합에서 파생한 분석 결과
// 요청 시마다 새로 계산하며 저장하지 않음
type AnalyticsSnapshot struct {
	TotalReviews       int                 `json:"total_reviews"`
	AverageRating      float64             `json:"average_rating"`      // 소수 1자리 반올림
	RatingDistribution [5]int              `json:"rating_distribution"` // index 0 = 1점, index 4 = 5점
	RecentReviews      int                 `json:"recent_reviews"`      // 최근 30일 이내 리뷰 수
	RecentPercentage   float64             `json:"recent_percentage"`   // 소수 1자리 반올림
	MonthlyTrend       []MonthlyTrendPoint `json:"monthly_trend"`
	TopReviewers       []ReviewerRank      `json:"top_reviewers"`
	Sentiment          SentimentTally      `json:"sentiment"`
}

// MonthlyTrendPoint 리뷰가 1건 이상 있는 달의 집계
type MonthlyTrendPoint struct {
	Month     string  `json:"month"` // 표시용 라벨 (예: "Jan 25")
	Reviews   int     `json:"reviews"`
	AvgRating float64 `json:"avg_rating"`
}

// ReviewerRank 리뷰 수 기준 리뷰어 순위 항목
type ReviewerRank struct {
	ReviewerID string `json:"user_id"`
	Count      int    `json:"count"`
}

// SentimentTally 감성 분류 집계
type SentimentTally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// AnalyticsService 리뷰 분석 엔진
// 순수 계산만 수행하며 저장소에 접근하지 않음
type AnalyticsService struct {
	classify Classifier
}

// NewAnalyticsService 분석 서비스 생성
// classifier가 nil이면 기본 키워드 분류기 사용
func NewAnalyticsService(classifier Classifier) *AnalyticsService {
	if classifier == nil {
		classifier = KeywordClassify
	}
	return &AnalyticsService{classify: classifier}
}

// Compute 리뷰 스냅샷에서 분석 결과 계산
// now를 주입받아 동일 입력이면 항상 동일 결과 (테스트 재현 가능)
func (s *AnalyticsService) Compute(movie *model.Movie, now time.Time) *AnalyticsSnapshot {
	// 계산 도중 외부 변경에 영향받지 않도록 리뷰 목록을 복사해서 사용
	reviews := make([]model.Review, len(movie.Reviews))
	copy(reviews, movie.Reviews)

	snapshot := &AnalyticsSnapshot{
		TotalReviews: len(reviews),
		MonthlyTrend: []MonthlyTrendPoint{},
		TopReviewers: []ReviewerRank{},
	}
	if len(reviews) == 0 {
		return snapshot
	}

	sum := 0
	recentCutoff := now.Add(-recentWindow)
	for _, r := range reviews {
		sum += r.Rating

		// 평점 분포: 내림 후 1-5 범위 밖 값은 버림
		star := int(math.Floor(float64(r.Rating)))
		if star >= 1 && star <= 5 {
			snapshot.RatingDistribution[star-1]++
		}

		if r.ReviewedAt.After(recentCutoff) {
			snapshot.RecentReviews++
		}

		switch s.classify(r.Comment) {
		case SentimentPositive:
			snapshot.Sentiment.Positive++
		case SentimentNegative:
			snapshot.Sentiment.Negative++
		default:
			snapshot.Sentiment.Neutral++
		}
	}

	total := float64(len(reviews))
	snapshot.AverageRating = roundTo1(float64(sum) / total)
	snapshot.RecentPercentage = roundTo1(float64(snapshot.RecentReviews) / total * 100)
	snapshot.MonthlyTrend = monthlyTrend(reviews)
	snapshot.TopReviewers = topReviewers(reviews)

	return snapshot
}

// monthlyTrend 리뷰를 (연, 월)로 묶어 월별 건수/평균 평점 계산
// 시간순 정렬 후 최근 6개 달만 유지 (리뷰가 없는 달은 만들지 않음)
func monthlyTrend(reviews []model.Review) []MonthlyTrendPoint {
	type bucket struct {
		count int
		sum   int
	}

	buckets := make(map[string]*bucket)
	for _, r := range reviews {
		key := r.ReviewedAt.Format("2006-01")
		b, exists := buckets[key]
		if !exists {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		b.sum += r.Rating
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys) // "2006-01" 형식은 사전순 = 시간순

	if len(keys) > maxTrendMonths {
		keys = keys[len(keys)-maxTrendMonths:]
	}

	trend := make([]MonthlyTrendPoint, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		month, _ := time.Parse("2006-01", key)
		trend = append(trend, MonthlyTrendPoint{
			Month:     month.Format("Jan 06"),
			Reviews:   b.count,
			AvgRating: float64(b.sum) / float64(b.count),
		})
	}
	return trend
}

// topReviewers 리뷰어별 리뷰 수 집계 후 상위 5명 반환
// 동률은 리뷰 목록에서 먼저 등장한 순서 유지
func topReviewers(reviews []model.Review) []ReviewerRank {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range reviews {
		if _, seen := counts[r.ReviewerID]; !seen {
			order = append(order, r.ReviewerID)
		}
		counts[r.ReviewerID]++
	}

	ranks := make([]ReviewerRank, 0, len(order))
	for _, reviewerID := range order {
		ranks = append(ranks, ReviewerRank{ReviewerID: reviewerID, Count: counts[reviewerID]})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Count > ranks[j].Count
	})

	if len(ranks) > maxTopReviewers {
		ranks = ranks[:maxTopReviewers]
	}
	return ranks
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
