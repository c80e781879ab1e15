package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/model"
)

var ErrEmptyReport = errors.New("report requires a movie and an analytics snapshot")

// 샘플 리뷰 표 최대 행 수
const sampleReviewLimit = 10

// 샘플 리뷰 코멘트 표시 최대 길이
const commentDisplayLimit = 50

// Document 리포트 문서
// 섹션 순서가 곧 출력 순서 - 파일/HTTP 응답/인쇄 등 전달 방식은 호출자 책임
type Document struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}

// Section 키-값 목록 또는 표 중 하나를 담는 리포트 섹션
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields,omitempty"`
	Table  *Table  `json:"table,omitempty"`
}

// Field 키-값 항목
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table 헤더와 행으로 구성된 표
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ReportService 분석 결과를 고정 레이아웃 문서로 변환
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// Build 영화 메타데이터와 분석 스냅샷으로 리포트 문서 생성
// 동일 입력이면 생성 시각을 제외하고 항상 동일한 문서
// 리뷰가 없어도 실패하지 않고 0으로 채운 표를 만듦
func (s *ReportService) Build(movie *model.Movie, snapshot *AnalyticsSnapshot, generatedAt time.Time) (*Document, error) {
	if movie == nil || snapshot == nil {
		return nil, ErrEmptyReport
	}

	doc := &Document{
		Title:       "Movie Analytics Report: " + movie.Title,
		GeneratedAt: generatedAt,
	}

	doc.Sections = append(doc.Sections, movieInfoSection(movie))
	doc.Sections = append(doc.Sections, keyMetricsSection(snapshot))
	doc.Sections = append(doc.Sections, distributionSection(snapshot))
	doc.Sections = append(doc.Sections, sentimentSection(snapshot))
	// 상위 리뷰어 섹션은 리뷰어가 없으면 통째로 생략
	if len(snapshot.TopReviewers) > 0 {
		doc.Sections = append(doc.Sections, topReviewersSection(snapshot))
	}
	doc.Sections = append(doc.Sections, sampleReviewsSection(movie.Reviews))

	return doc, nil
}

func movieInfoSection(movie *model.Movie) Section {
	return Section{
		Title: "Movie Information",
		Fields: []Field{
			{Label: "Title", Value: movie.Title},
			{Label: "Description", Value: movie.Description},
			{Label: "Genre", Value: orNA(strings.Join(movie.Genres, ", "))},
			{Label: "Director", Value: orNA(movie.Director)},
			{Label: "Release Date", Value: formatDate(movie.ReleaseDate)},
			{Label: "Language", Value: orNA(movie.Language)},
			{Label: "Duration", Value: fmt.Sprintf("%d min", movie.Duration)},
		},
	}
}

func keyMetricsSection(snapshot *AnalyticsSnapshot) Section {
	return Section{
		Title: "Key Metrics",
		Fields: []Field{
			{Label: "Total Reviews", Value: strconv.Itoa(snapshot.TotalReviews)},
			{Label: "Average Rating", Value: fmt.Sprintf("%.1f/5", snapshot.AverageRating)},
			{Label: "Recent Reviews (30 days)", Value: fmt.Sprintf("%d (%.1f%%)", snapshot.RecentReviews, snapshot.RecentPercentage)},
			{Label: "Active Reviewers", Value: strconv.Itoa(len(snapshot.TopReviewers))},
		},
	}
}

// distributionSection 평점 분포 표 (5점부터 내림차순 5행)
func distributionSection(snapshot *AnalyticsSnapshot) Section {
	rows := make([][]string, 0, 5)
	for star := 5; star >= 1; star-- {
		count := snapshot.RatingDistribution[star-1]
		percentage := 0.0
		if snapshot.TotalReviews > 0 {
			percentage = float64(count) / float64(snapshot.TotalReviews) * 100
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d Stars", star),
			strconv.Itoa(count),
			fmt.Sprintf("%.1f%%", percentage),
		})
	}
	return Section{
		Title: "Rating Distribution",
		Table: &Table{
			Headers: []string{"Rating", "Count", "Percentage"},
			Rows:    rows,
		},
	}
}

func sentimentSection(snapshot *AnalyticsSnapshot) Section {
	return Section{
		Title: "Sentiment Analysis",
		Table: &Table{
			Headers: []string{"Sentiment", "Count"},
			Rows: [][]string{
				{"Positive", strconv.Itoa(snapshot.Sentiment.Positive)},
				{"Negative", strconv.Itoa(snapshot.Sentiment.Negative)},
				{"Neutral", strconv.Itoa(snapshot.Sentiment.Neutral)},
			},
		},
	}
}

func topReviewersSection(snapshot *AnalyticsSnapshot) Section {
	rows := make([][]string, 0, len(snapshot.TopReviewers))
	for i, reviewer := range snapshot.TopReviewers {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			reviewer.ReviewerID,
			strconv.Itoa(reviewer.Count),
		})
	}
	return Section{
		Title: "Top Reviewers",
		Table: &Table{
			Headers: []string{"Rank", "User ID", "Reviews"},
			Rows:    rows,
		},
	}
}

// sampleReviewsSection 저장 순서 기준 앞 10건의 리뷰 표
func sampleReviewsSection(reviews []model.Review) Section {
	sample := reviews
	if len(sample) > sampleReviewLimit {
		sample = sample[:sampleReviewLimit]
	}

	rows := make([][]string, 0, len(sample))
	for i, r := range sample {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			r.ReviewerID,
			fmt.Sprintf("%d/5", r.Rating),
			formatDate(r.ReviewedAt),
			formatComment(r.Comment),
		})
	}
	return Section{
		Title: "Recent Reviews Sample",
		Table: &Table{
			Headers: []string{"#", "User ID", "Rating", "Date", "Comment"},
			Rows:    rows,
		},
	}
}

// formatComment 코멘트가 길면 50자에서 잘라 말줄임표를 붙임
func formatComment(comment string) string {
	if comment == "" {
		return "No comment"
	}
	runes := []rune(comment)
	if len(runes) > commentDisplayLimit {
		return string(runes[:commentDisplayLimit]) + "..."
	}
	return comment
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
