package repository

import (
	"testing"
	"time"

	"github.com/ikkim/cinestream-backend/internal/app/model"
	"github.com/ikkim/cinestream-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMovieRepositoryTest(t *testing.T) (MovieRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewMovieRepository(testDB), testDB
}

func TestMovieRepository_CreateAndFindByID(t *testing.T) {
	repo, _ := setupMovieRepositoryTest(t)

	movie := &model.Movie{
		Title:    "Repo Movie",
		Genres:   []string{"Action", "Sci-Fi"},
		Actors:   []string{"A", "B"},
		Director: "Director X",
		Duration: 140,
	}
	require.NoError(t, repo.Create(movie))
	require.NotZero(t, movie.ID)

	found, err := repo.FindByID(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Repo Movie", found.Title)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, found.Genres)
	assert.Equal(t, []string{"A", "B"}, found.Actors)
}

func TestMovieRepository_FindByID_PreloadsReviewsInInsertionOrder(t *testing.T) {
	repo, testDB := setupMovieRepositoryTest(t)

	movie := &model.Movie{Title: "Ordered Reviews"}
	require.NoError(t, repo.Create(movie))

	for _, reviewerID := range []string{"first", "second", "third"} {
		require.NoError(t, testDB.Create(&model.Review{
			MovieID:    movie.ID,
			ReviewerID: reviewerID,
			Rating:     4,
			ReviewedAt: time.Now(),
		}).Error)
	}

	found, err := repo.FindByID(movie.ID)
	require.NoError(t, err)
	require.Len(t, found.Reviews, 3)
	assert.Equal(t, "first", found.Reviews[0].ReviewerID)
	assert.Equal(t, "second", found.Reviews[1].ReviewerID)
	assert.Equal(t, "third", found.Reviews[2].ReviewerID)
}

func TestMovieRepository_SaveReviewAndAggregates(t *testing.T) {
	repo, testDB := setupMovieRepositoryTest(t)

	movie := &model.Movie{Title: "Aggregate Movie"}
	require.NoError(t, repo.Create(movie))

	review := &model.Review{
		MovieID:    movie.ID,
		ReviewerID: "u1",
		Rating:     5,
		ReviewedAt: time.Now(),
	}
	movie.RatingCount = 1
	movie.RatingAverage = 5.0
	require.NoError(t, repo.SaveReviewAndAggregates(movie, review))

	var stored model.Movie
	require.NoError(t, testDB.First(&stored, movie.ID).Error)
	assert.Equal(t, 1, stored.RatingCount)
	assert.InDelta(t, 5.0, stored.RatingAverage, 1e-9)

	var reviewCount int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("movie_id = ?", movie.ID).Count(&reviewCount).Error)
	assert.EqualValues(t, 1, reviewCount)
}

func TestMovieRepository_DuplicateReviewRejected(t *testing.T) {
	repo, testDB := setupMovieRepositoryTest(t)

	movie := &model.Movie{Title: "Unique Review Movie"}
	require.NoError(t, repo.Create(movie))

	first := &model.Review{MovieID: movie.ID, ReviewerID: "u1", Rating: 5, ReviewedAt: time.Now()}
	require.NoError(t, testDB.Create(first).Error)

	duplicate := &model.Review{MovieID: movie.ID, ReviewerID: "u1", Rating: 3, ReviewedAt: time.Now()}
	err := testDB.Create(duplicate).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestMovieRepository_Update_DoesNotTouchAggregates(t *testing.T) {
	repo, _ := setupMovieRepositoryTest(t)

	movie := &model.Movie{Title: "Catalog Edit Movie"}
	require.NoError(t, repo.Create(movie))

	// Catalog editor reads the movie before any review lands
	stale, err := repo.FindByID(movie.ID)
	require.NoError(t, err)

	// A review commits in between
	review := &model.Review{MovieID: movie.ID, ReviewerID: "u1", Rating: 5, ReviewedAt: time.Now()}
	fresh, err := repo.FindByID(movie.ID)
	require.NoError(t, err)
	fresh.Reviews = append(fresh.Reviews, *review)
	fresh.RecalculateRating()
	require.NoError(t, repo.SaveReviewAndAggregates(fresh, review))

	// The stale catalog write must not revert the aggregates
	stale.Title = "Renamed"
	stale.Duration = 99
	require.NoError(t, repo.Update(stale))

	stored, err := repo.FindByID(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, 99, stored.Duration)
	assert.Equal(t, 1, stored.RatingCount)
	assert.InDelta(t, 5.0, stored.RatingAverage, 1e-9)
	require.Len(t, stored.Reviews, 1)
}

func TestMovieRepository_Delete_RemovesReviews(t *testing.T) {
	repo, testDB := setupMovieRepositoryTest(t)

	movie := &model.Movie{Title: "Doomed Movie"}
	require.NoError(t, repo.Create(movie))
	require.NoError(t, testDB.Create(&model.Review{
		MovieID:    movie.ID,
		ReviewerID: "u1",
		Rating:     2,
		ReviewedAt: time.Now(),
	}).Error)

	require.NoError(t, repo.Delete(movie.ID))

	_, err := repo.FindByID(movie.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var reviewCount int64
	require.NoError(t, testDB.Model(&model.Review{}).Where("movie_id = ?", movie.ID).Count(&reviewCount).Error)
	assert.EqualValues(t, 0, reviewCount)
}

func TestMovieRepository_FindTopRated(t *testing.T) {
	repo, _ := setupMovieRepositoryTest(t)

	for _, m := range []model.Movie{
		{Title: "Low", RatingAverage: 2.1},
		{Title: "High", RatingAverage: 4.8},
		{Title: "Mid", RatingAverage: 3.3},
	} {
		movie := m
		require.NoError(t, repo.Create(&movie))
	}

	movies, err := repo.FindTopRated(2)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "High", movies[0].Title)
	assert.Equal(t, "Mid", movies[1].Title)
}

func TestMovieRepository_FindByGenre(t *testing.T) {
	repo, _ := setupMovieRepositoryTest(t)

	action := &model.Movie{Title: "Action Movie", Genres: []string{"Action", "Drama"}}
	comedy := &model.Movie{Title: "Comedy Movie", Genres: []string{"Comedy"}}
	require.NoError(t, repo.Create(action))
	require.NoError(t, repo.Create(comedy))

	movies, err := repo.FindByGenre("Action")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Action Movie", movies[0].Title)
}

func TestMovieRepository_FindByMaxDuration(t *testing.T) {
	repo, _ := setupMovieRepositoryTest(t)

	require.NoError(t, repo.Create(&model.Movie{Title: "Short", Duration: 90}))
	require.NoError(t, repo.Create(&model.Movie{Title: "Long", Duration: 180}))

	movies, err := repo.FindByMaxDuration(120)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Short", movies[0].Title)
}
