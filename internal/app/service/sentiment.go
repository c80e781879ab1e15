package service

import "strings"

// Sentiment 리뷰 코멘트 감성 분류 결과
type Sentiment int

const (
	SentimentNeutral Sentiment = iota
	SentimentPositive
	SentimentNegative
)

// Classifier 코멘트 감성 분류 함수
// 집계 로직 수정 없이 다른 분류기로 교체할 수 있도록 함수 타입으로 분리
type Classifier func(comment string) Sentiment

// 키워드 기반 분류용 고정 단어 목록
var (
	positiveKeywords = []string{
		"amazing", "love", "great", "excellent", "awesome", "good", "best",
		"recommended", "brilliant", "fantastic", "wonderful", "perfect",
		"outstanding", "masterpiece", "enjoyed",
	}
	negativeKeywords = []string{
		"bad", "terrible", "awful", "boring", "disappointing", "poor",
		"worst", "waste", "horrible", "hate", "dislike", "rubbish",
		"garbage", "trash",
	}
)

// KeywordClassify 키워드 부분 일치 기반 감성 분류
// 긍정 단어만 포함 → 긍정, 부정 단어만 포함 → 부정
// 둘 다 포함하거나 둘 다 없으면 중립 (단순 휴리스틱, 반어법 등은 오분류 허용)
func KeywordClassify(comment string) Sentiment {
	lowered := strings.ToLower(comment)

	hasPositive := containsAny(lowered, positiveKeywords)
	hasNegative := containsAny(lowered, negativeKeywords)

	switch {
	case hasPositive && !hasNegative:
		return SentimentPositive
	case hasNegative && !hasPositive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
