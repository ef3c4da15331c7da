package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/moviescraper/internal/model"
)

func TestUpsert_ReplacesInPlace(t *testing.T) {
	store := NewMovieStore()
	store.Upsert(model.Movie{ID: "tt0000001", Title: "First"})
	store.Upsert(model.Movie{ID: "tt1375666", Title: "Inception", Year: 2009})
	store.Upsert(model.Movie{ID: "tt0000003", Title: "Third"})

	store.Upsert(model.Movie{ID: "tt1375666", Title: "Inception", Year: 2010})

	movies := store.All()
	require.Len(t, movies, 3)
	assert.Equal(t, "First", movies[0].Title)
	assert.Equal(t, "tt1375666", movies[1].ID)
	assert.Equal(t, 2010, movies[1].Year)
	assert.Equal(t, "Third", movies[2].Title)
}

func TestUpsert_EmptyIDAlwaysAppends(t *testing.T) {
	store := NewMovieStore()
	store.Upsert(model.Movie{Title: "Inception", Year: 2010})
	store.Upsert(model.Movie{Title: "Inception", Year: 2010})

	assert.Len(t, store.All(), 2)
}

func TestAll_ReturnsCopy(t *testing.T) {
	store := NewMovieStore()
	rating := 8.8
	store.Upsert(model.Movie{
		ID:     "tt1",
		Title:  "A",
		Rating: &rating,
		Genres: []string{"Drama"},
		Cast:   []model.CastEntry{{Actor: "Actor", Character: "Role", Order: 1}},
	})

	movies := store.All()
	movies[0].Title = "changed"
	movies[0].Genres[0] = "changed"
	movies[0].Cast[0].Actor = "changed"
	*movies[0].Rating = 1

	stored := store.All()[0]
	assert.Equal(t, "A", stored.Title)
	assert.Equal(t, []string{"Drama"}, stored.Genres)
	assert.Equal(t, "Actor", stored.Cast[0].Actor)
	assert.Equal(t, 8.8, *stored.Rating)
}

func TestUpsert_DoesNotAliasCallerSlices(t *testing.T) {
	store := NewMovieStore()
	movie := model.Movie{
		ID:     "tt1",
		Genres: []string{"Drama"},
		Cast:   []model.CastEntry{{Actor: "Actor"}},
	}
	store.Upsert(movie)

	movie.Genres[0] = "changed"
	movie.Cast[0].Actor = "changed"

	stored := store.All()[0]
	assert.Equal(t, "Drama", stored.Genres[0])
	assert.Equal(t, "Actor", stored.Cast[0].Actor)
}

func TestRecordQuery(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMovieStore()
	store.now = func() time.Time { return fixed }

	store.RecordQuery(`site:imdb.com movie "Inception" 2010`, 5)
	store.RecordQuery(`site:imdb.com movie "Heat"`, 0)

	history := store.History()
	require.Len(t, history, 2)
	assert.Equal(t, `site:imdb.com movie "Inception" 2010`, history[0].Query)
	assert.Equal(t, 5, history[0].ResultsCount)
	assert.Equal(t, fixed, history[0].Timestamp)
	assert.Equal(t, 0, history[1].ResultsCount)
}

func TestUpsert_Concurrent(t *testing.T) {
	store := NewMovieStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Upsert(model.Movie{ID: fmt.Sprintf("tt%d", i%10), Title: "x"})
			store.Upsert(model.Movie{Title: "no id"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 60, store.Len())
}
