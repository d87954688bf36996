package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookclub/internal/database"
)

func newFavoritesRouter(db *database.Database, flash Flasher, userID uint) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(testTemplates())
	router.Use(asUser(userID))

	controller := NewFavoritesController(db, flash)
	router.GET("/books/:id/favorite", controller.Favorite)
	router.GET("/books/:id/unfavorite", controller.Unfavorite)
	router.GET("/favorites", controller.FavoritesPage)
	return router
}

func TestFavorite(t *testing.T) {
	t.Run("adds the user to the likes set, at most once", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		uploader := createTestUser(t, db, "jane@example.com")
		other := createTestUser(t, db, "john@example.com")
		book, err := db.CreateBook("Dune", "A desert planet epic", uploader.ID)
		require.NoError(t, err)

		router := newFavoritesRouter(db, &flashRecorder{}, other.ID)
		path := fmt.Sprintf("/books/%d/favorite", book.ID)

		w := getPath(router, path, nil)
		assert.Equal(t, http.StatusFound, w.Code)

		// Liking again leaves the set unchanged
		getPath(router, path, nil)

		loaded, err := db.GetBookByID(book.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.LikedBy, 2) // uploader + other
	})

	t.Run("returns to the referring page", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		user := createTestUser(t, db, "jane@example.com")
		book, err := db.CreateBook("Dune", "A desert planet epic", user.ID)
		require.NoError(t, err)

		router := newFavoritesRouter(db, &flashRecorder{}, user.ID)
		path := fmt.Sprintf("/books/%d/favorite", book.ID)

		w := getPath(router, path, map[string]string{"Referer": "/favorites"})
		assert.Equal(t, "/favorites", w.Header().Get("Location"))

		w = getPath(router, path, nil)
		assert.Equal(t, "/books", w.Header().Get("Location"))
	})

	t.Run("unknown book id gets the not-found page", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		user := createTestUser(t, db, "jane@example.com")
		router := newFavoritesRouter(db, &flashRecorder{}, user.ID)

		w := getPath(router, "/books/9999/favorite", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUnfavorite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	uploader := createTestUser(t, db, "jane@example.com")
	other := createTestUser(t, db, "john@example.com")
	book, err := db.CreateBook("Dune", "A desert planet epic", uploader.ID)
	require.NoError(t, err)
	require.NoError(t, db.AddLike(book.ID, other.ID))

	router := newFavoritesRouter(db, &flashRecorder{}, other.ID)
	path := fmt.Sprintf("/books/%d/unfavorite", book.ID)

	w := getPath(router, path, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/books", w.Header().Get("Location"))

	loaded, err := db.GetBookByID(book.ID)
	require.NoError(t, err)
	require.Len(t, loaded.LikedBy, 1)
	assert.Equal(t, uploader.ID, loaded.LikedBy[0].ID)

	// Removing a like that isn't there is a no-op
	w = getPath(router, path, nil)
	assert.Equal(t, http.StatusFound, w.Code)

	loaded, err = db.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.LikedBy, 1)
}

func TestFavoritesPage(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	uploader := createTestUser(t, db, "jane@example.com")
	reader := createTestUser(t, db, "john@example.com")

	first, err := db.CreateBook("Dune", "A desert planet epic", uploader.ID)
	require.NoError(t, err)
	_, err = db.CreateBook("Hyperion", "Pilgrims tell their tales", uploader.ID)
	require.NoError(t, err)
	require.NoError(t, db.AddLike(first.ID, reader.ID))

	router := newFavoritesRouter(db, &flashRecorder{}, reader.ID)
	w := getPath(router, "/favorites", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dune;", w.Body.String())
}

// Deleting a book also clears it from everyone's favorites.
func TestDeleteClearsFavorites(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	uploader := createTestUser(t, db, "jane@example.com")
	reader := createTestUser(t, db, "john@example.com")
	book, err := db.CreateBook("Dune", "A desert planet epic", uploader.ID)
	require.NoError(t, err)

	favRouter := newFavoritesRouter(db, &flashRecorder{}, reader.ID)
	getPath(favRouter, fmt.Sprintf("/books/%d/favorite", book.ID), nil)

	booksRouter := newBooksRouter(db, &flashRecorder{}, uploader.ID)
	w := getPath(booksRouter, fmt.Sprintf("/books/%d/delete", book.ID), nil)
	assert.Equal(t, http.StatusFound, w.Code)

	w = getPath(favRouter, "/favorites", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
