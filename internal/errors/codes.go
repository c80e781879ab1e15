package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // 범위 초과
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 영화 (MOVIE_) ====================
	MovieNotFound = "MOVIE_NOT_FOUND" // 영화 없음

	// ==================== 리뷰 (REVIEW_) ====================
	ReviewInvalidRating   = "REVIEW_INVALID_RATING"   // 잘못된 평점
	ReviewInvalidReviewer = "REVIEW_INVALID_REVIEWER" // 작성자 식별자 누락
	ReviewConflict        = "REVIEW_CONFLICT"         // 동시 쓰기 충돌

	// ==================== 리포트 (REPORT_) ====================
	ReportEmptyInput = "REPORT_EMPTY_INPUT" // 리포트 입력 누락

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"   // 설정 오류
)
