package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassify(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    Sentiment
	}{
		{"positive keyword", "I loved this, amazing film", SentimentPositive},
		{"negative keywords", "boring and terrible", SentimentNegative},
		{"no keywords", "it was okay", SentimentNeutral},
		{"mixed keywords", "loved the start but terrible ending", SentimentNeutral},
		{"empty comment", "", SentimentNeutral},
		{"case insensitive", "ABSOLUTELY AMAZING", SentimentPositive},
		{"substring match", "the worst-paced plot ever", SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordClassify(tt.comment))
		})
	}
}
