package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ikkim/cinestream-backend/config"
	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// XLSX 컬럼 순서 (헤더 1행 제외)
// 0: 제목, 1: 설명, 2: 개봉일(YYYY-MM-DD), 3: 포스터 URL, 4: 예고편 URL,
// 5: 언어, 6: 테마, 7: 장르(| 구분), 8: 배우(| 구분), 9: 감독, 10: 상영 시간(분)
const movieColumnCount = 11

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Repository 생성
	movieRepo := repository.NewMovieRepository(db.GetDB())

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	movies, err := readMoviesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total movies to import: %d\n", len(movies))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 200
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := movieRepo.BulkCreate(movies, batchSize); err != nil {
		log.Fatal("Failed to bulk create movies:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total movies imported: %d\n", len(movies))
}

func readMoviesFromXLSX(filePath string) ([]model.Movie, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	// 모든 행 읽기
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var movies []model.Movie
	seenTitles := make(map[string]bool) // 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < movieColumnCount {
			skippedCount++
			continue
		}

		title := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		releaseDateStr := strings.TrimSpace(row[2])
		posterURL := strings.TrimSpace(row[3])
		trailerURL := strings.TrimSpace(row[4])
		language := strings.TrimSpace(row[5])
		theme := strings.TrimSpace(row[6])
		genreStr := strings.TrimSpace(row[7])
		actorStr := strings.TrimSpace(row[8])
		director := strings.TrimSpace(row[9])
		durationStr := strings.TrimSpace(row[10])

		// 제목 필수, 중복 제외
		if title == "" || seenTitles[title] {
			skippedCount++
			continue
		}
		seenTitles[title] = true

		releaseDate, err := time.Parse("2006-01-02", releaseDateStr)
		if err != nil {
			skippedCount++
			continue
		}

		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			skippedCount++
			continue
		}

		movies = append(movies, model.Movie{
			Title:       title,
			Description: description,
			ReleaseDate: releaseDate,
			PosterURL:   posterURL,
			TrailerURL:  trailerURL,
			Language:    language,
			Theme:       theme,
			Genres:      splitList(genreStr),
			Actors:      splitList(actorStr),
			Director:    director,
			Duration:    duration,
		})
	}

	fmt.Printf("Skipped rows: %d\n", skippedCount)
	return movies, nil
}

// splitList "|" 구분 문자열을 공백 제거 후 목록으로 변환
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}
