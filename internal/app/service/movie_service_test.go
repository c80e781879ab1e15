package service

import (
	"testing"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/repository"
	"github.com/ikkim/cinestream-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMovieServiceTest(t *testing.T) (MovieService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	movieRepo := repository.NewMovieRepository(testDB)
	return NewMovieService(movieRepo), testDB
}

func movieInput(title string) MovieInput {
	return MovieInput{
		Title:       title,
		Description: "A test movie",
		ReleaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Genres:      []string{"Drama"},
		Actors:      []string{"Actor One"},
		Director:    "Director One",
		Duration:    110,
	}
}

func TestMovieService_CreateAndGet(t *testing.T) {
	svc, _ := setupMovieServiceTest(t)

	created, err := svc.CreateMovie(movieInput("Service Movie"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.GetMovieByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Service Movie", found.Title)
	assert.Equal(t, []string{"Drama"}, found.Genres)
	assert.Equal(t, 0, found.RatingCount)
}

func TestMovieService_GetMovieByID_NotFound(t *testing.T) {
	svc, _ := setupMovieServiceTest(t)

	_, err := svc.GetMovieByID(9999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieService_UpdateMovie_KeepsAggregates(t *testing.T) {
	svc, testDB := setupMovieServiceTest(t)

	created, err := svc.CreateMovie(movieInput("Before Update"))
	require.NoError(t, err)

	// Simulate existing aggregates
	require.NoError(t, testDB.Model(created).Updates(map[string]interface{}{
		"rating_average": 4.5,
		"rating_count":   2,
	}).Error)

	input := movieInput("After Update")
	input.Duration = 95
	updated, err := svc.UpdateMovie(created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "After Update", updated.Title)
	assert.Equal(t, 95, updated.Duration)

	found, err := svc.GetMovieByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.RatingCount)
	assert.InDelta(t, 4.5, found.RatingAverage, 1e-9)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	svc, _ := setupMovieServiceTest(t)

	created, err := svc.CreateMovie(movieInput("To Delete"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(created.ID))

	_, err = svc.GetMovieByID(created.ID)
	assert.ErrorIs(t, err, ErrMovieNotFound)

	assert.ErrorIs(t, svc.DeleteMovie(created.ID), ErrMovieNotFound)
}

func TestMovieService_GetTopRatedMovies(t *testing.T) {
	svc, testDB := setupMovieServiceTest(t)

	for i, rating := range []float64{1.5, 4.9, 3.2} {
		created, err := svc.CreateMovie(movieInput("Rated " + string(rune('A'+i))))
		require.NoError(t, err)
		require.NoError(t, testDB.Model(created).Update("rating_average", rating).Error)
	}

	movies, err := svc.GetTopRatedMovies()
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "Rated B", movies[0].Title)
	assert.Equal(t, "Rated C", movies[1].Title)
	assert.Equal(t, "Rated A", movies[2].Title)
}
