package export

import (
	"testing"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testDocument() *service.Document {
	return &service.Document{
		Title:       "Movie Analytics Report: Export Movie",
		GeneratedAt: time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC),
		Sections: []service.Section{
			{
				Title: "Key Metrics",
				Fields: []service.Field{
					{Label: "Total Reviews", Value: "3"},
					{Label: "Average Rating", Value: "4.0/5"},
				},
			},
			{
				Title: "Sentiment Analysis",
				Table: &service.Table{
					Headers: []string{"Sentiment", "Count"},
					Rows: [][]string{
						{"Positive", "2"},
						{"Negative", "0"},
						{"Neutral", "1"},
					},
				},
			},
		},
	}
}

func TestWriteXLSX_RendersDocument(t *testing.T) {
	file, err := WriteXLSX(testDocument())
	require.NoError(t, err)

	// Round-trip through the on-disk format
	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reopened.Close()

	title, err := reopened.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Movie Analytics Report: Export Movie", title)

	generated, err := reopened.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Generated on: 2025-07-15 09:30:00", generated)

	// First section: title row, then label/value rows
	sectionTitle, _ := reopened.GetCellValue(sheetName, "A4")
	assert.Equal(t, "Key Metrics", sectionTitle)
	label, _ := reopened.GetCellValue(sheetName, "A5")
	value, _ := reopened.GetCellValue(sheetName, "B5")
	assert.Equal(t, "Total Reviews", label)
	assert.Equal(t, "3", value)

	// Second section after a blank separator row
	tableTitle, _ := reopened.GetCellValue(sheetName, "A8")
	assert.Equal(t, "Sentiment Analysis", tableTitle)
	header, _ := reopened.GetCellValue(sheetName, "A9")
	assert.Equal(t, "Sentiment", header)
	firstRow, _ := reopened.GetCellValue(sheetName, "B10")
	assert.Equal(t, "2", firstRow)
}

func TestWriteXLSX_NilDocument(t *testing.T) {
	_, err := WriteXLSX(nil)
	assert.Error(t, err)
}
