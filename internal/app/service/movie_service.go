package service

import (
	"errors"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/pkg/logger"
	"gorm.io/gorm"
)

// 평점 상위 목록 기본 개수
const topRatedLimit = 10

type MovieService interface {
	GetAllMovies() ([]model.Movie, error)
	GetMovieByID(id uint) (*model.Movie, error)
	CreateMovie(input MovieInput) (*model.Movie, error)
	UpdateMovie(id uint, input MovieInput) (*model.Movie, error)
	DeleteMovie(id uint) error
	GetTopRatedMovies() ([]model.Movie, error)
	GetMoviesByDirector(director string) ([]model.Movie, error)
	GetMoviesByGenre(genre string) ([]model.Movie, error)
	GetMoviesByMaxDuration(maxDuration int) ([]model.Movie, error)
}

// MovieInput 영화 생성/수정 입력
type MovieInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"release_date"`
	PosterURL   string    `json:"poster_url"`
	TrailerURL  string    `json:"trailer_url"`
	Language    string    `json:"language"`
	Theme       string    `json:"theme"`
	Genres      []string  `json:"genre"`
	Actors      []string  `json:"actors"`
	Director    string    `json:"director"`
	Duration    int       `json:"duration"`
}

type movieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

// GetAllMovies 전체 영화 목록 조회
func (s *movieService) GetAllMovies() ([]model.Movie, error) {
	return s.movieRepo.FindAll()
}

// GetMovieByID 영화 상세 조회 (리뷰 포함)
func (s *movieService) GetMovieByID(id uint) (*model.Movie, error) {
	movie, err := s.movieRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

// CreateMovie 영화 생성
func (s *movieService) CreateMovie(input MovieInput) (*model.Movie, error) {
	movie := &model.Movie{
		Title:       input.Title,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		PosterURL:   input.PosterURL,
		TrailerURL:  input.TrailerURL,
		Language:    input.Language,
		Theme:       input.Theme,
		Genres:      input.Genres,
		Actors:      input.Actors,
		Director:    input.Director,
		Duration:    input.Duration,
	}

	if err := s.movieRepo.Create(movie); err != nil {
		logger.Error("Failed to create movie", err, map[string]interface{}{
			"title": input.Title,
		})
		return nil, err
	}

	logger.Info("Movie created", map[string]interface{}{
		"movie_id": movie.ID,
		"title":    movie.Title,
	})
	return movie, nil
}

// UpdateMovie 영화 수정 (집계 필드와 리뷰는 건드리지 않음)
func (s *movieService) UpdateMovie(id uint, input MovieInput) (*model.Movie, error) {
	movie, err := s.GetMovieByID(id)
	if err != nil {
		return nil, err
	}

	movie.Title = input.Title
	movie.Description = input.Description
	movie.ReleaseDate = input.ReleaseDate
	movie.PosterURL = input.PosterURL
	movie.TrailerURL = input.TrailerURL
	movie.Language = input.Language
	movie.Theme = input.Theme
	movie.Genres = input.Genres
	movie.Actors = input.Actors
	movie.Director = input.Director
	movie.Duration = input.Duration

	if err := s.movieRepo.Update(movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie 영화 삭제 (소속 리뷰 포함)
func (s *movieService) DeleteMovie(id uint) error {
	if _, err := s.GetMovieByID(id); err != nil {
		return err
	}

	if err := s.movieRepo.Delete(id); err != nil {
		logger.Error("Failed to delete movie", err, map[string]interface{}{
			"movie_id": id,
		})
		return err
	}

	logger.Info("Movie deleted", map[string]interface{}{
		"movie_id": id,
	})
	return nil
}

// GetTopRatedMovies 평점 상위 영화 목록 조회
func (s *movieService) GetTopRatedMovies() ([]model.Movie, error) {
	return s.movieRepo.FindTopRated(topRatedLimit)
}

// GetMoviesByDirector 감독별 영화 목록 조회
func (s *movieService) GetMoviesByDirector(director string) ([]model.Movie, error) {
	return s.movieRepo.FindByDirector(director)
}

// GetMoviesByGenre 장르별 영화 목록 조회
func (s *movieService) GetMoviesByGenre(genre string) ([]model.Movie, error) {
	return s.movieRepo.FindByGenre(genre)
}

// GetMoviesByMaxDuration 상영 시간 이하 영화 목록 조회
func (s *movieService) GetMoviesByMaxDuration(maxDuration int) ([]model.Movie, error) {
	return s.movieRepo.FindByMaxDuration(maxDuration)
}
